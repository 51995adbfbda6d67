package query

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/models"
)

type StockQuery struct {
	db *gorm.DB
}

func NewStockQuery(db *gorm.DB) *StockQuery {
	return &StockQuery{db: db}
}

// SumOrderMount sums the ledger for a supplier/product pair. It returns nil when no
// row matches, mirroring SQL SUM over an empty set.
func (q *StockQuery) SumOrderMount(ctx context.Context, supplierCode, productCode string) (*int64, error) {
	if supplierCode == "" || productCode == "" {
		return nil, nil
	}

	var result struct {
		Total *int64
	}
	err := q.db.WithContext(ctx).
		Model(&models.SupplierOrder{}).
		Scopes(SupplierOrderFilter{SupplierCode: supplierCode, ProductCode: productCode}.Scope()).
		Select("SUM(order_mount) AS total").
		Scan(&result).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum supplier orders: %w", err)
	}
	return result.Total, nil
}
