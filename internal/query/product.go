package query

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/dto"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/models"
)

type ProductQuery struct {
	db *gorm.DB
}

func NewProductQuery(db *gorm.DB) *ProductQuery {
	return &ProductQuery{db: db}
}

// ProductCatalog loads every product as a code/name pair for scan auto-completion.
func (q *ProductQuery) ProductCatalog(ctx context.Context) ([]dto.ProductCatalogResponse, error) {
	var catalog []dto.ProductCatalogResponse
	err := q.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("product_code, product_name").
		Order("id").
		Scan(&catalog).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query product catalog: %w", err)
	}
	if catalog == nil {
		catalog = []dto.ProductCatalogResponse{}
	}
	return catalog, nil
}

// ClientProducts lists the supplier products mapped to a client.
func (q *ProductQuery) ClientProducts(ctx context.Context, clientCode string) ([]dto.ClientProductResponse, error) {
	var products []dto.ClientProductResponse
	err := q.db.WithContext(ctx).
		Table("client_products").
		Select("client_products.id AS client_product_id, products.product_code, products.product_name, supply_products.supplier_code").
		Joins("JOIN supply_products ON supply_products.id = client_products.supply_product_id").
		Joins("JOIN products ON products.id = supply_products.product_id").
		Where("client_products.classification_code = ?", clientCode).
		Order("client_products.id").
		Scan(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query client products: %w", err)
	}
	if products == nil {
		products = []dto.ClientProductResponse{}
	}
	return products, nil
}
