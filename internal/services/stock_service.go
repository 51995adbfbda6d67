// internal/services/stock_service.go
package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/dto"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/models"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/query"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/repository"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/utils"
)

type StockService struct {
	db     *gorm.DB
	stock  *query.StockQuery
	orders repository.Repository[models.SupplierOrder]
}

type PlaceOrderRequest struct {
	ProductCode string `json:"productCode" validate:"required,code"`
	OrderMount  int64  `json:"orderMount" validate:"gt=0"`
	Memo        string `json:"memo,omitempty" validate:"max=255"`
}

func NewStockService(db *gorm.DB) *StockService {
	return &StockService{
		db:     db,
		stock:  query.NewStockQuery(db),
		orders: repository.New[models.SupplierOrder](db),
	}
}

// RemainStock sums the ledger for a supplier and product. No ledger rows is reported
// as zero stock with HasOrders false.
func (s *StockService) RemainStock(ctx context.Context, supplierCode, productCode string) (*dto.StockResponse, error) {
	total, err := s.stock.SumOrderMount(ctx, supplierCode, productCode)
	if err != nil {
		return nil, err
	}

	resp := &dto.StockResponse{
		SupplierCode: supplierCode,
		ProductCode:  productCode,
	}
	if total != nil {
		resp.RemainCount = *total
		resp.HasOrders = true
	}
	return resp, nil
}

// PlaceOrder books incoming stock for a product the supplier carries.
func (s *StockService) PlaceOrder(ctx context.Context, supplierCode string, req *PlaceOrderRequest) (*models.SupplierOrder, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := requireSupplied(s.db.WithContext(ctx), supplierCode, req.ProductCode); err != nil {
		return nil, err
	}

	order := &models.SupplierOrder{
		SupplierCode: supplierCode,
		ProductCode:  req.ProductCode,
		OrderMount:   req.OrderMount,
		Memo:         req.Memo,
	}
	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
