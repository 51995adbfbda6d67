package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/cache"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/config"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/metrics"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/models"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/testutil"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/utils"
)

type ServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	ctx     context.Context
	cfg     *config.Config
	metrics *metrics.Metrics
}

func (s *ServiceTestSuite) SetupTest() {
	s.db = testutil.NewDB(s.T())
	s.ctx = context.Background()
	s.cfg = &config.Config{JWT: config.JWTConfig{SecretKey: "test-secret", AccessTokenTTL: 1}}
	s.metrics = metrics.New(prometheus.NewRegistry())
	utils.SetJWTSecret(s.cfg.JWT.SecretKey)
}

func (s *ServiceTestSuite) seed(values ...interface{}) {
	testutil.Must(s.T(), s.db, values...)
}

// seedSupplyChain creates supplier S1 with client C1, product P1 in S1's catalogue
// and device D1.
func (s *ServiceTestSuite) seedSupplyChain() *models.Product {
	product := &models.Product{ProductCode: "P1", ProductName: "Tumbler"}
	s.seed(
		testutil.Supplier("S1", "Supplier One"),
		testutil.Client("C1", "S1", "Cafe One", models.WithdrawalActive),
		product,
		&models.Device{DeviceCode: "D1", SupplierCode: "S1"},
	)
	s.seed(&models.SupplyProduct{SupplierCode: "S1", ProductID: product.ID})
	return product
}

func (s *ServiceTestSuite) newScanService() *ScanService {
	devices := NewDeviceService(s.db, cache.NewMemoryCache(100, time.Minute), s.metrics)
	return NewScanService(s.db, devices, s.metrics)
}

func (s *ServiceTestSuite) remain(productCode string) int64 {
	stock, err := NewStockService(s.db).RemainStock(s.ctx, "S1", productCode)
	s.Require().NoError(err)
	return stock.RemainCount
}

func (s *ServiceTestSuite) detail(chip string) models.ProductDetail {
	var d models.ProductDetail
	s.Require().NoError(s.db.Where("rfid_chip_code = ?", chip).First(&d).Error)
	return d
}

// Members

func (s *ServiceTestSuite) TestSignupAndLogin() {
	svc := NewMemberService(s.db, s.cfg)

	supplier, err := svc.Signup(s.ctx, &SignupRequest{
		LoginID: "supplier1", Password: "password1", ClassificationCode: "S1",
		CompanyName: "Supplier One", Grade: models.GradeSupplier,
	})
	s.Require().NoError(err)
	s.NotEqual("password1", supplier.PasswordHash)
	s.Empty(supplier.MotherCode)

	_, err = svc.Signup(s.ctx, &SignupRequest{
		LoginID: "client1", Password: "password1", ClassificationCode: "C1", MotherCode: "S1",
		CompanyName: "Cafe One", Grade: models.GradeClient,
	})
	s.Require().NoError(err)

	resp, err := svc.Login(s.ctx, &LoginRequest{LoginID: "supplier1", Password: "password1"})
	s.Require().NoError(err)
	s.Equal(supplier.ID, resp.MemberID)
	s.Equal("S1", resp.ClassificationCode)
	s.Equal(int(models.GradeSupplier), resp.Grade)

	claims, err := utils.ValidateJWT(resp.AccessToken)
	s.Require().NoError(err)
	s.Equal(supplier.ID, claims.MemberID)

	_, err = svc.Login(s.ctx, &LoginRequest{LoginID: "supplier1", Password: "wrong-pass"})
	s.ErrorIs(err, ErrInvalidCredentials)
	_, err = svc.Login(s.ctx, &LoginRequest{LoginID: "nobody", Password: "password1"})
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceTestSuite) TestSignupRejectsDuplicatesAndUnknownSupplier() {
	svc := NewMemberService(s.db, s.cfg)
	s.seed(testutil.Supplier("S1", "Supplier One"))

	_, err := svc.Signup(s.ctx, &SignupRequest{
		LoginID: "another", Password: "password1", ClassificationCode: "S1",
		CompanyName: "Copycat", Grade: models.GradeSupplier,
	})
	s.ErrorIs(err, ErrConflict)

	_, err = svc.Signup(s.ctx, &SignupRequest{
		LoginID: "client9", Password: "password1", ClassificationCode: "C9", MotherCode: "S9",
		CompanyName: "Orphan", Grade: models.GradeClient,
	})
	s.ErrorIs(err, ErrNotFound)

	// The mother must be a supplier that has not withdrawn.
	withdrawn := testutil.Supplier("SW", "Gone Supplier")
	withdrawn.Withdrawal = models.WithdrawalWithdrawn
	s.seed(withdrawn, testutil.Client("C1", "S1", "Cafe One", models.WithdrawalActive))

	_, err = svc.Signup(s.ctx, &SignupRequest{
		LoginID: "client7", Password: "password1", ClassificationCode: "C7", MotherCode: "C1",
		CompanyName: "Under A Client", Grade: models.GradeClient,
	})
	s.ErrorIs(err, ErrNotFound)

	_, err = svc.Signup(s.ctx, &SignupRequest{
		LoginID: "client6", Password: "password1", ClassificationCode: "C6", MotherCode: "SW",
		CompanyName: "Under Withdrawn", Grade: models.GradeClient,
	})
	s.ErrorIs(err, ErrNotFound)

	var created int64
	s.Require().NoError(s.db.Model(&models.Member{}).Where("classification_code IN ?", []string{"C6", "C7"}).Count(&created).Error)
	s.Zero(created)

	_, err = svc.Signup(s.ctx, &SignupRequest{
		LoginID: "client8", Password: "password1", ClassificationCode: "C8",
		CompanyName: "No Mother", Grade: models.GradeClient,
	})
	s.True(utils.IsValidationError(err))

	_, err = svc.Signup(s.ctx, &SignupRequest{
		LoginID: "admin2", Password: "password1", ClassificationCode: "A2",
		CompanyName: "Admin", Grade: models.GradeAdmin,
	})
	s.True(utils.IsValidationError(err))
}

func (s *ServiceTestSuite) TestWithdrawBlocksLoginAndHidesClient() {
	svc := NewMemberService(s.db, s.cfg)
	s.seed(testutil.Supplier("S1", "Supplier One"))
	client, err := svc.Signup(s.ctx, &SignupRequest{
		LoginID: "client1", Password: "password1", ClassificationCode: "C1", MotherCode: "S1",
		CompanyName: "Cafe One", Grade: models.GradeClient,
	})
	s.Require().NoError(err)

	clients, err := svc.ClientsOfSupplier(s.ctx, "S1")
	s.Require().NoError(err)
	s.Len(clients, 1)

	s.Require().NoError(svc.Withdraw(s.ctx, client.ID))
	s.ErrorIs(svc.Withdraw(s.ctx, client.ID), ErrNotFound)

	active, err := svc.IsActive(s.ctx, client.ID)
	s.Require().NoError(err)
	s.False(active)

	_, err = svc.Login(s.ctx, &LoginRequest{LoginID: "client1", Password: "password1"})
	s.ErrorIs(err, ErrWithdrawn)

	clients, err = svc.ClientsOfSupplier(s.ctx, "S1")
	s.Require().NoError(err)
	s.Empty(clients)
}

// Stock

func (s *ServiceTestSuite) TestRemainStockWithoutOrdersIsZero() {
	stock, err := NewStockService(s.db).RemainStock(s.ctx, "S1", "P1")
	s.Require().NoError(err)
	s.Equal(int64(0), stock.RemainCount)
	s.False(stock.HasOrders)
	s.Equal("S1", stock.SupplierCode)
	s.Equal("P1", stock.ProductCode)
}

func (s *ServiceTestSuite) TestRemainStockSumsLedger() {
	s.seed(
		&models.SupplierOrder{SupplierCode: "S1", ProductCode: "P1", OrderMount: 10},
		&models.SupplierOrder{SupplierCode: "S1", ProductCode: "P1", OrderMount: -10},
		&models.SupplierOrder{SupplierCode: "S2", ProductCode: "P1", OrderMount: 7},
	)

	stock, err := NewStockService(s.db).RemainStock(s.ctx, "S1", "P1")
	s.Require().NoError(err)
	s.Equal(int64(0), stock.RemainCount)
	s.True(stock.HasOrders)
}

func (s *ServiceTestSuite) TestPlaceOrder() {
	s.seedSupplyChain()
	svc := NewStockService(s.db)

	_, err := svc.PlaceOrder(s.ctx, "S1", &PlaceOrderRequest{ProductCode: "P1", OrderMount: 25})
	s.Require().NoError(err)
	s.Equal(int64(25), s.remain("P1"))

	_, err = svc.PlaceOrder(s.ctx, "S2", &PlaceOrderRequest{ProductCode: "P1", OrderMount: 5})
	s.ErrorIs(err, ErrNotFound)

	_, err = svc.PlaceOrder(s.ctx, "S1", &PlaceOrderRequest{ProductCode: "P1", OrderMount: 0})
	s.True(utils.IsValidationError(err))
}

// Scans

func (s *ServiceTestSuite) TestScanLifecycle() {
	s.seedSupplyChain()
	s.seed(&models.SupplierOrder{SupplierCode: "S1", ProductCode: "P1", OrderMount: 10})
	svc := s.newScanService()

	scan := func(status models.ScanStatus, chips ...string) int {
		resp, err := svc.Scan(s.ctx, &ScanRequest{
			DeviceCode: "D1", Status: status, ProductCode: "P1", ClientCode: "C1", RfidChipCodes: chips,
		})
		s.Require().NoError(err)
		s.Empty(resp.Rejected, "status %s", status)
		s.NotZero(resp.ScanHistoryID)
		return resp.Accepted
	}

	s.Equal(2, scan(models.ScanStatusIssue, "A", "B"))
	s.Equal(int64(8), s.remain("P1"))
	s.Equal(models.ProductStatusIssued, s.detail("A").Status)
	s.Equal(1, s.detail("A").Cycle)
	s.Equal("C1", s.detail("A").ClientCode)

	s.Equal(1, scan(models.ScanStatusReceive, "A"))
	s.Equal(2, scan(models.ScanStatusRecall, "A", "B"))
	s.Equal(2, scan(models.ScanStatusWash, "A", "B"))
	s.Equal(int64(10), s.remain("P1"))

	s.Equal(1, scan(models.ScanStatusIssue, "A"))
	s.Equal(2, s.detail("A").Cycle)
	s.Equal(int64(9), s.remain("P1"))

	// B is washed and in stock, A is out with the client; both may be discarded but
	// only B leaves the stock count.
	s.Equal(2, scan(models.ScanStatusDiscard, "A", "B"))
	s.Equal(int64(8), s.remain("P1"))
	s.Equal(models.ProductStatusDiscarded, s.detail("B").Status)

	var discards []models.DiscardHistory
	s.Require().NoError(s.db.Find(&discards).Error)
	s.Require().Len(discards, 1)
	s.Equal(2, discards[0].DiscardMount)

	var histories []models.ProductDetailHistory
	s.Require().NoError(s.db.Where("rfid_chip_code = ?", "A").Order("id").Find(&histories).Error)
	s.Require().Len(histories, 6)
	s.Equal(models.ProductStatus(""), histories[0].PrevStatus)
	s.Equal(models.ProductStatusIssued, histories[0].Status)
	s.Equal(models.ProductStatusIssued, histories[5].PrevStatus)
	s.Equal(models.ProductStatusDiscarded, histories[5].Status)

	var scans int64
	s.Require().NoError(s.db.Model(&models.RfidScanHistory{}).Count(&scans).Error)
	s.Equal(int64(6), scans)

	s.Equal(3.0, promtest.ToFloat64(s.metrics.ScannedChips.WithLabelValues("issue", "accepted")))
}

func (s *ServiceTestSuite) TestScanRejectsChipsWithoutFailingBatch() {
	product := s.seedSupplyChain()
	other := &models.Product{ProductCode: "P2", ProductName: "Tray"}
	s.seed(
		other,
		&models.ProductDetail{ProductID: product.ID, ProductCode: "P1", RfidChipCode: "WASHED", SupplierCode: "S1", Status: models.ProductStatusWashed},
		&models.ProductDetail{ProductID: other.ID, ProductCode: "P2", RfidChipCode: "TRAY", SupplierCode: "S1", Status: models.ProductStatusIssued},
		&models.ProductDetail{ProductID: product.ID, ProductCode: "P1", RfidChipCode: "FOREIGN", SupplierCode: "S2", Status: models.ProductStatusIssued},
		&models.ProductDetail{ProductID: product.ID, ProductCode: "P1", RfidChipCode: "OUT", SupplierCode: "S1", Status: models.ProductStatusIssued},
	)

	resp, err := s.newScanService().Scan(s.ctx, &ScanRequest{
		DeviceCode:    "D1",
		Status:        models.ScanStatusReceive,
		ProductCode:   "P1",
		RfidChipCodes: []string{"OUT", "OUT", "WASHED", "TRAY", "FOREIGN", "NEVER"},
	})
	s.Require().NoError(err)
	s.Equal(1, resp.Accepted)

	reasons := map[string]string{}
	for _, r := range resp.Rejected {
		reasons[r.RfidChipCode] = r.Reason
	}
	s.Equal(RejectDuplicate, reasons["OUT"])
	s.Contains(reasons["WASHED"], ErrInvalidTransition.Error())
	s.Equal(RejectOtherProduct, reasons["TRAY"])
	s.Equal(RejectOtherSupplier, reasons["FOREIGN"])
	s.Equal(RejectUnknownChip, reasons["NEVER"])

	s.Equal(models.ProductStatusReceived, s.detail("OUT").Status)
	s.Equal(models.ProductStatusWashed, s.detail("WASHED").Status)

	var history models.RfidScanHistory
	s.Require().NoError(s.db.First(&history, resp.ScanHistoryID).Error)
	s.Equal(6, history.ScannedCount)
	s.Equal(1, history.AcceptedCount)
}

func (s *ServiceTestSuite) TestScanErrors() {
	s.seedSupplyChain()
	svc := s.newScanService()

	_, err := svc.Scan(s.ctx, &ScanRequest{DeviceCode: "D9", Status: models.ScanStatusWash, ProductCode: "P1", RfidChipCodes: []string{"A"}})
	s.ErrorIs(err, ErrNotFound)

	_, err = svc.Scan(s.ctx, &ScanRequest{DeviceCode: "D1", Status: models.ScanStatusWash, ProductCode: "P9", RfidChipCodes: []string{"A"}})
	s.ErrorIs(err, ErrNotFound)

	_, err = svc.Scan(s.ctx, &ScanRequest{DeviceCode: "D1", Status: models.ScanStatusIssue, ProductCode: "P1", ClientCode: "C9", RfidChipCodes: []string{"A"}})
	s.ErrorIs(err, ErrNotFound)

	// Issue needs a client.
	_, err = svc.Scan(s.ctx, &ScanRequest{DeviceCode: "D1", Status: models.ScanStatusIssue, ProductCode: "P1", RfidChipCodes: []string{"A"}})
	s.True(utils.IsValidationError(err))

	_, err = svc.Scan(s.ctx, &ScanRequest{DeviceCode: "D1", Status: "lost", ProductCode: "P1", RfidChipCodes: []string{"A"}})
	s.True(utils.IsValidationError(err))

	chips := make([]string, 501)
	for i := range chips {
		chips[i] = "X"
	}
	_, err = svc.Scan(s.ctx, &ScanRequest{DeviceCode: "D1", Status: models.ScanStatusWash, ProductCode: "P1", RfidChipCodes: chips})
	s.True(utils.IsValidationError(err))

	var scans int64
	s.Require().NoError(s.db.Model(&models.RfidScanHistory{}).Count(&scans).Error)
	s.Zero(scans)
}

func (s *ServiceTestSuite) TestScanRejectsProductOutsideCatalogue() {
	s.seedSupplyChain()
	s.seed(&models.Product{ProductCode: "P9", ProductName: "Plate"})
	svc := s.newScanService()

	_, err := svc.Scan(s.ctx, &ScanRequest{
		DeviceCode: "D1", Status: models.ScanStatusIssue, ProductCode: "P9", ClientCode: "C1",
		RfidChipCodes: []string{"A", "B"},
	})
	s.ErrorIs(err, ErrNotFound)
	var re *ResourceError
	s.Require().ErrorAs(err, &re)
	s.Equal("product", re.Resource)

	total, err := NewStockService(s.db).RemainStock(s.ctx, "S1", "P9")
	s.Require().NoError(err)
	s.False(total.HasOrders)

	var details int64
	s.Require().NoError(s.db.Model(&models.ProductDetail{}).Count(&details).Error)
	s.Zero(details)
}

func (s *ServiceTestSuite) TestDiscardWithNothingAcceptedWritesNoHistory() {
	s.seedSupplyChain()
	svc := s.newScanService()

	resp, err := svc.Scan(s.ctx, &ScanRequest{
		DeviceCode: "D1", Status: models.ScanStatusDiscard, ProductCode: "P1", RfidChipCodes: []string{"NEVER"},
	})
	s.Require().NoError(err)
	s.Zero(resp.Accepted)
	s.Len(resp.Rejected, 1)

	var discards int64
	s.Require().NoError(s.db.Model(&models.DiscardHistory{}).Count(&discards).Error)
	s.Zero(discards)
}

func (s *ServiceTestSuite) TestScansOfSupplierPaginates() {
	for i := 0; i < 5; i++ {
		s.seed(&models.RfidScanHistory{DeviceCode: "D1", SupplierCode: "S1", ProductCode: "P1", Status: models.ScanStatusWash, LatestReadingAt: time.Now()})
	}
	s.seed(&models.RfidScanHistory{DeviceCode: "D2", SupplierCode: "S2", ProductCode: "P1", Status: models.ScanStatusWash, LatestReadingAt: time.Now()})

	result, err := s.newScanService().ScansOfSupplier(s.ctx, "S1", utils.PaginationParams{Page: 2, Limit: 2})
	s.Require().NoError(err)
	s.Equal(int64(5), result.Total)
	s.Equal(3, result.TotalPages)
	s.Len(result.Data, 2)
}

// Devices

func (s *ServiceTestSuite) TestDeviceLookupIsCached() {
	s.seed(&models.Device{DeviceCode: "D1", SupplierCode: "S1"})
	svc := NewDeviceService(s.db, cache.NewMemoryCache(100, time.Minute), s.metrics)

	first, err := svc.DeviceByCode(s.ctx, "D1")
	s.Require().NoError(err)
	s.Require().NotNil(first)

	// A stale row stays hidden until the entry expires.
	s.Require().NoError(s.db.Model(&models.Device{}).Where("device_code = ?", "D1").Update("supplier_code", "S2").Error)
	second, err := svc.DeviceByCode(s.ctx, "D1")
	s.Require().NoError(err)
	s.Equal("S1", second.SupplierCode)

	s.Equal(1.0, promtest.ToFloat64(s.metrics.DeviceCacheLookups.WithLabelValues("hit")))
	s.Equal(1.0, promtest.ToFloat64(s.metrics.DeviceCacheLookups.WithLabelValues("miss")))
}

func (s *ServiceTestSuite) TestRegisterDeviceBecomesVisible() {
	svc := NewDeviceService(s.db, cache.NewMemoryCache(100, time.Minute), s.metrics)

	missing, err := svc.DeviceByCode(s.ctx, "D1")
	s.Require().NoError(err)
	s.Nil(missing)

	_, err = svc.Register(s.ctx, "S1", &RegisterDeviceRequest{DeviceCode: "D1", DeviceName: "Dock"})
	s.Require().NoError(err)

	found, err := svc.DeviceByCode(s.ctx, "D1")
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal("S1", found.SupplierCode)

	_, err = svc.Register(s.ctx, "S2", &RegisterDeviceRequest{DeviceCode: "D1"})
	s.ErrorIs(err, ErrConflict)
}

type unreachableCache struct {
	cache.DeviceCache
}

func (unreachableCache) Delete(context.Context, string) error {
	return errors.New("redis: connection refused")
}

func (s *ServiceTestSuite) TestRegisterDeviceLogsFailedEviction() {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	svc := NewDeviceService(s.db, unreachableCache{}, s.metrics)
	device, err := svc.Register(s.ctx, "S1", &RegisterDeviceRequest{DeviceCode: "D1"})
	s.Require().NoError(err)
	s.NotZero(device.ID)

	var warned bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel && entry.Data["device_code"] == "D1" {
			warned = true
		}
	}
	s.True(warned)
}

// Products

func (s *ServiceTestSuite) TestCreateProduct() {
	svc := NewProductService(s.db, &StorageService{})

	supply, err := svc.CreateProduct(s.ctx, "S1", &CreateProductRequest{ProductCode: "P1", ProductName: "Tumbler"})
	s.Require().NoError(err)
	s.Equal("S1", supply.SupplierCode)
	s.Equal("P1", supply.Product.ProductCode)

	_, err = svc.CreateProduct(s.ctx, "S2", &CreateProductRequest{ProductCode: "P1", ProductName: "Copy"})
	s.ErrorIs(err, ErrConflict)

	var supplies int64
	s.Require().NoError(s.db.Model(&models.SupplyProduct{}).Count(&supplies).Error)
	s.Equal(int64(1), supplies)

	catalog, err := svc.Catalog(s.ctx)
	s.Require().NoError(err)
	s.Len(catalog, 1)
}

func (s *ServiceTestSuite) TestMapClientProduct() {
	s.seedSupplyChain()
	s.seed(
		testutil.Supplier("S2", "Supplier Two"),
		testutil.Client("C2", "S2", "Other Cafe", models.WithdrawalActive),
	)
	var supply models.SupplyProduct
	s.Require().NoError(s.db.First(&supply).Error)
	svc := NewProductService(s.db, &StorageService{})

	_, err := svc.MapClientProduct(s.ctx, "S1", &MapClientProductRequest{ClientCode: "C2", SupplyProductID: supply.ID})
	s.ErrorIs(err, ErrNotFound)

	_, err = svc.MapClientProduct(s.ctx, "S2", &MapClientProductRequest{ClientCode: "C2", SupplyProductID: supply.ID})
	s.ErrorIs(err, ErrNotFound)

	mapping, err := svc.MapClientProduct(s.ctx, "S1", &MapClientProductRequest{ClientCode: "C1", SupplyProductID: supply.ID})
	s.Require().NoError(err)
	s.Equal("C1", mapping.ClassificationCode)

	_, err = svc.MapClientProduct(s.ctx, "S1", &MapClientProductRequest{ClientCode: "C1", SupplyProductID: supply.ID})
	s.ErrorIs(err, ErrConflict)

	products, err := svc.ClientProducts(s.ctx, "C1")
	s.Require().NoError(err)
	s.Require().Len(products, 1)
	s.Equal("P1", products[0].ProductCode)
	s.Equal("S1", products[0].SupplierCode)
}

// Recalls and FAQs

func (s *ServiceTestSuite) TestRecallRequest() {
	s.seedSupplyChain()
	svc := NewRecallService(s.db)
	pickup := time.Now().Add(24 * time.Hour).Truncate(time.Second)

	recall, err := svc.Request(s.ctx, "C1", &CreateRecallRequest{ProductCode: "P1", RecallMount: 30, PossibleRecallAt: pickup})
	s.Require().NoError(err)
	s.Equal("C1", recall.ClassificationCode)

	_, err = svc.Request(s.ctx, "C1", &CreateRecallRequest{ProductCode: "P9", RecallMount: 1, PossibleRecallAt: pickup})
	s.ErrorIs(err, ErrNotFound)

	_, err = svc.Request(s.ctx, "C1", &CreateRecallRequest{ProductCode: "P1", RecallMount: 0, PossibleRecallAt: pickup})
	s.True(utils.IsValidationError(err))

	mine, err := svc.RecallsOfClient(s.ctx, "C1")
	s.Require().NoError(err)
	s.Len(mine, 1)

	bySupplier, err := svc.RecallsOfSupplier(s.ctx, "S1")
	s.Require().NoError(err)
	s.Require().Len(bySupplier, 1)
	s.Equal(recall.RecallID, bySupplier[0].RecallID)
}

func (s *ServiceTestSuite) TestFaqs() {
	svc := NewFaqService(s.db)

	_, err := svc.Create(s.ctx, &CreateFaqRequest{ClassificationCode: "C1", Question: "How?", Answer: "Like this."})
	s.Require().NoError(err)
	_, err = svc.Create(s.ctx, &CreateFaqRequest{Question: "Why?", Answer: "Because."})
	s.Require().NoError(err)
	_, err = svc.Create(s.ctx, &CreateFaqRequest{Question: "", Answer: "No question"})
	s.True(utils.IsValidationError(err))

	faqs, err := svc.List(s.ctx, "C1")
	s.Require().NoError(err)
	s.Len(faqs, 1)

	all, err := svc.List(s.ctx, "")
	s.Require().NoError(err)
	s.Len(all, 2)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func TestStockDelta(t *testing.T) {
	tests := []struct {
		status models.ScanStatus
		want   int64
	}{
		{models.ScanStatusIssue, -3},
		{models.ScanStatusWash, 3},
		{models.ScanStatusDiscard, -1},
		{models.ScanStatusReceive, 0},
		{models.ScanStatusRecall, 0},
	}
	for _, tt := range tests {
		if got := stockDelta(tt.status, 3, 1); got != tt.want {
			t.Errorf("stockDelta(%s) = %d, want %d", tt.status, got, tt.want)
		}
	}
}

func (s *ServiceTestSuite) TestTraceChip() {
	s.seedSupplyChain()
	svc := s.newScanService()

	for _, status := range []models.ScanStatus{models.ScanStatusIssue, models.ScanStatusReceive} {
		_, err := svc.Scan(s.ctx, &ScanRequest{DeviceCode: "D1", Status: status, ProductCode: "P1", ClientCode: "C1", RfidChipCodes: []string{"A"}})
		s.Require().NoError(err)
	}

	trace, err := svc.TraceChip(s.ctx, "S1", "A")
	s.Require().NoError(err)
	s.Equal(models.ProductStatusReceived, trace.Detail.Status)
	s.Require().Len(trace.History, 2)
	s.Equal(models.ProductStatusIssued, trace.History[0].Status)
	s.Equal(models.ProductStatusReceived, trace.History[1].Status)

	_, err = svc.TraceChip(s.ctx, "S2", "A")
	s.ErrorIs(err, ErrNotFound)

	var re *ResourceError
	s.Require().ErrorAs(err, &re)
	s.Equal("chip", re.Resource)
}

func (s *ServiceTestSuite) TestDashboardStats() {
	product := s.seedSupplyChain()
	s.seed(
		testutil.Client("C2", "S1", "Gone", models.WithdrawalWithdrawn),
		&models.ProductDetail{ProductID: product.ID, ProductCode: "P1", RfidChipCode: "A", SupplierCode: "S1", Status: models.ProductStatusIssued},
		&models.ProductDetail{ProductID: product.ID, ProductCode: "P1", RfidChipCode: "B", SupplierCode: "S1", Status: models.ProductStatusIssued},
		&models.ProductDetail{ProductID: product.ID, ProductCode: "P1", RfidChipCode: "C", SupplierCode: "S1", Status: models.ProductStatusWashed},
		&models.Recall{ClassificationCode: "C1", ProductCode: "P1", RecallMount: 3, PossibleRecallAt: time.Now().Add(time.Hour)},
	)

	stats, err := NewAdminService(s.db).GetDashboardStats(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), stats.TotalSuppliers)
	s.Equal(int64(1), stats.TotalClients)
	s.Equal(int64(1), stats.WithdrawnMembers)
	s.Equal(int64(3), stats.NewMembersThisMonth)
	s.Equal(int64(1), stats.TotalProducts)
	s.Equal(int64(1), stats.TotalDevices)
	s.Equal(map[string]int64{"issued": 2, "washed": 1}, stats.ChipsByStatus)
	s.Equal(int64(1), stats.UpcomingRecalls)
}
