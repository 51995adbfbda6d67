// internal/services/product_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/database"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/dto"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/models"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/query"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/utils"
)

type ProductService struct {
	db       *gorm.DB
	storage  *StorageService
	products *query.ProductQuery
}

type CreateProductRequest struct {
	ProductCode string `json:"productCode" validate:"required,code"`
	ProductName string `json:"productName" validate:"required,max=255"`
}

type MapClientProductRequest struct {
	ClientCode      string `json:"clientCode" validate:"required,code"`
	SupplyProductID uint   `json:"supplyProductId" validate:"required"`
}

func NewProductService(db *gorm.DB, storage *StorageService) *ProductService {
	return &ProductService{
		db:       db,
		storage:  storage,
		products: query.NewProductQuery(db),
	}
}

// CreateProduct registers a product and adds it to the supplier's catalogue in one
// transaction.
func (s *ProductService) CreateProduct(ctx context.Context, supplierCode string, req *CreateProductRequest) (*models.SupplyProduct, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var supply *models.SupplyProduct
	err := database.WithTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.Product{}).Where("product_code = ?", req.ProductCode).Count(&existing).Error; err != nil {
			return fmt.Errorf("database error: %w", err)
		}
		if existing > 0 {
			return conflict("product", req.ProductCode)
		}

		product := models.Product{
			ProductCode: req.ProductCode,
			ProductName: req.ProductName,
		}
		if err := tx.Create(&product).Error; err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}

		supply = &models.SupplyProduct{
			SupplierCode: supplierCode,
			ProductID:    product.ID,
		}
		if err := tx.Omit("Product").Create(supply).Error; err != nil {
			return fmt.Errorf("failed to create supply product: %w", err)
		}
		supply.Product = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"supplier_code": supplierCode,
		"product_code":  req.ProductCode,
	}).Info("Product registered")
	return supply, nil
}

// UploadImage stores a product image and points the product at it. Only a supplier
// that carries the product may change its image.
func (s *ProductService) UploadImage(ctx context.Context, supplierCode string, productID uint, file multipart.File, header *multipart.FileHeader) (*models.Product, error) {
	if !s.storage.Enabled() {
		return nil, ErrStorageUnavailable
	}

	var supplied int64
	if err := s.db.WithContext(ctx).Model(&models.SupplyProduct{}).
		Where("supplier_code = ? AND product_id = ?", supplierCode, productID).
		Count(&supplied).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if supplied == 0 {
		return nil, notFound("product", productID)
	}

	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("product", productID)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	result, err := s.storage.UploadFile(ctx, file, header, ProductImageOptions)
	if err != nil {
		return nil, err
	}

	previous := product.ProductImage
	if err := s.db.WithContext(ctx).Model(&product).Update("product_image", result.URL).Error; err != nil {
		return nil, fmt.Errorf("failed to update product image: %w", err)
	}
	product.ProductImage = result.URL
	s.storage.DeleteByURL(ctx, previous)

	return &product, nil
}

// requireSupplied fails with a product not-found error unless the supplier carries the
// product in its catalogue.
func requireSupplied(db *gorm.DB, supplierCode, productCode string) error {
	var supplied int64
	err := db.Table("supply_products").
		Joins("JOIN products ON products.id = supply_products.product_id").
		Where("supply_products.supplier_code = ? AND products.product_code = ?", supplierCode, productCode).
		Count(&supplied).Error
	if err != nil {
		return fmt.Errorf("database error: %w", err)
	}
	if supplied == 0 {
		return notFound("product", productCode)
	}
	return nil
}

// MapClientProduct assigns a supplier catalogue entry to one of the supplier's
// active clients. A catalogue entry maps to at most one client product.
func (s *ProductService) MapClientProduct(ctx context.Context, supplierCode string, req *MapClientProductRequest) (*models.ClientProduct, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var mapping *models.ClientProduct
	err := database.WithTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		var supply models.SupplyProduct
		err := tx.Where("id = ? AND supplier_code = ?", req.SupplyProductID, supplierCode).First(&supply).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("supply_product", req.SupplyProductID)
		}
		if err != nil {
			return fmt.Errorf("database error: %w", err)
		}

		var clients int64
		if err := tx.Model(&models.Member{}).
			Scopes(query.ActiveClientsOf(supplierCode).Scope()).
			Where("classification_code = ?", req.ClientCode).
			Count(&clients).Error; err != nil {
			return fmt.Errorf("database error: %w", err)
		}
		if clients == 0 {
			return notFound("member", req.ClientCode)
		}

		var mapped int64
		if err := tx.Model(&models.ClientProduct{}).Where("supply_product_id = ?", supply.ID).Count(&mapped).Error; err != nil {
			return fmt.Errorf("database error: %w", err)
		}
		if mapped > 0 {
			return conflict("client_product", supply.ID)
		}

		mapping = &models.ClientProduct{
			ClassificationCode: req.ClientCode,
			SupplyProductID:    supply.ID,
		}
		if err := tx.Create(mapping).Error; err != nil {
			return fmt.Errorf("failed to create client product: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mapping, nil
}

func (s *ProductService) Catalog(ctx context.Context) ([]dto.ProductCatalogResponse, error) {
	return s.products.ProductCatalog(ctx)
}

func (s *ProductService) ClientProducts(ctx context.Context, clientCode string) ([]dto.ClientProductResponse, error) {
	if clientCode == "" {
		return []dto.ClientProductResponse{}, nil
	}
	return s.products.ClientProducts(ctx, clientCode)
}

func findProduct(db *gorm.DB, productCode string) (*models.Product, error) {
	var product models.Product
	if err := db.Where("product_code = ?", productCode).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("product", productCode)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}
