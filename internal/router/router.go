// internal/router/router.go
package router

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/cache"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/config"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/handlers"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/metrics"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/middleware"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/services"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/utils"
)

// Dependencies are the process-wide collaborators built in main. Any of them may be
// left zero: the device cache is then disabled, metrics go to a private registry and
// storage is built from cfg.AWS.
type Dependencies struct {
	DeviceCache cache.DeviceCache
	Metrics     *metrics.Metrics
	Storage     *services.StorageService
}

// Initialize builds the HTTP engine. Background work such as rate-limiter cleanup
// stops when ctx is done.
func Initialize(ctx context.Context, db *gorm.DB, cfg *config.Config, deps Dependencies) *gin.Engine {
	if deps.Metrics == nil {
		deps.Metrics = metrics.New(prometheus.NewRegistry())
	}
	if deps.Storage == nil {
		storageService, err := services.NewStorageService(cfg.AWS)
		if err != nil {
			logrus.WithError(err).Warn("Image storage disabled")
			storageService = &services.StorageService{}
		}
		deps.Storage = storageService
	}

	// Initialize services
	memberService := services.NewMemberService(db, cfg)
	deviceService := services.NewDeviceService(db, deps.DeviceCache, deps.Metrics)
	scanService := services.NewScanService(db, deviceService, deps.Metrics)
	productService := services.NewProductService(db, deps.Storage)
	stockService := services.NewStockService(db)
	recallService := services.NewRecallService(db)
	faqService := services.NewFaqService(db)
	adminService := services.NewAdminService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	memberHandler := handlers.NewMemberHandler(memberService)
	productHandler := handlers.NewProductHandler(productService)
	stockHandler := handlers.NewStockHandler(stockService)
	deviceHandler := handlers.NewDeviceHandler(deviceService, scanService)
	recallHandler := handlers.NewRecallHandler(recallService)
	faqHandler := handlers.NewFaqHandler(faqService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(deps.Metrics.Middleware())
	r.Use(middleware.CORS(cfg.Server.AllowOrigins))
	r.Use(middleware.I18nMiddleware())
	if cfg.RateLimit.RequestsPerSecond > 0 {
		general := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
		go general.Run(ctx)
		r.Use(general.Middleware())
	}

	// Signup and login share a tighter per-IP budget.
	credentialLimit := func(c *gin.Context) { c.Next() }
	if cfg.RateLimit.LoginPerMinute > 0 {
		login := middleware.NewRateLimiter(rate.Every(time.Minute/time.Duration(cfg.RateLimit.LoginPerMinute)), cfg.RateLimit.LoginPerMinute)
		go login.Run(ctx)
		credentialLimit = login.Middleware()
	}

	authRequired := middleware.AuthRequired(memberService)

	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	// Member routes
	member := r.Group("/member")
	{
		member.POST("/signup", credentialLimit, memberHandler.Signup)
		member.POST("/login", credentialLimit, memberHandler.Login)
		member.DELETE("/me", authRequired, memberHandler.Withdraw)
	}

	// Client-facing routes
	cl := r.Group("/cl")
	{
		cl.GET("/member/clients", memberHandler.GetClients)
		cl.GET("/product/catalog", productHandler.GetCatalog)
		cl.GET("/product", productHandler.GetClientProducts)
		cl.GET("/recall", recallHandler.GetClientRecalls)
		cl.POST("/recall", authRequired, middleware.ClientRequired(), recallHandler.RequestRecall)
	}

	// Supplier-facing routes
	sp := r.Group("/sp")
	{
		sp.GET("/member/supplier", memberHandler.GetSupplier)
		sp.GET("/stock", stockHandler.GetRemainStock)
		sp.GET("/scan", deviceHandler.GetScanHistory)
		sp.GET("/recall", recallHandler.GetSupplierRecalls)

		supplier := sp.Group("")
		supplier.Use(authRequired, middleware.SupplierRequired())
		{
			supplier.POST("/product", productHandler.CreateProduct)
			supplier.POST("/product/:id/image", productHandler.UploadImage)
			supplier.POST("/client-product", productHandler.MapClientProduct)
			supplier.POST("/order", stockHandler.PlaceOrder)
			supplier.POST("/device", deviceHandler.RegisterDevice)
			supplier.GET("/chip/:code", deviceHandler.TraceChip)
		}
	}

	// Reader device routes
	device := r.Group("/device")
	{
		device.POST("/scan", deviceHandler.Scan)
		device.GET("/supplier", deviceHandler.GetDeviceSupplier)
	}

	r.GET("/faq", faqHandler.GetFaqs)
	r.POST("/faq", authRequired, middleware.AdminRequired(), faqHandler.CreateFaq)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(authRequired, middleware.AdminRequired())
	{
		admin.GET("/dashboard/stats", adminHandler.GetDashboardStats)
	}

	return r
}
