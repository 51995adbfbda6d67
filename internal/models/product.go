// internal/models/product.go
package models

import (
	"time"
)

type Product struct {
	BaseModel
	ProductCode  string `json:"productCode" gorm:"uniqueIndex;size:50;not null"`
	ProductName  string `json:"productName" gorm:"size:255;not null"`
	ProductImage string `json:"productImage" gorm:"size:1024"`
}

// SupplyProduct is a product in a supplier's catalogue.
type SupplyProduct struct {
	BaseModel
	SupplierCode string `json:"supplierCode" gorm:"index;size:50;not null"`
	ProductID    uint   `json:"productId" gorm:"index;not null"`

	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// ClientProduct maps a client's product to exactly one supplier catalogue entry.
type ClientProduct struct {
	BaseModel
	ClassificationCode string `json:"classificationCode" gorm:"index;size:50;not null"`
	SupplyProductID    uint   `json:"supplyProductId" gorm:"uniqueIndex;not null"`

	SupplyProduct *SupplyProduct `json:"supplyProduct,omitempty" gorm:"foreignKey:SupplyProductID"`
}

// ProductDetail is one physical RFID-tagged item.
type ProductDetail struct {
	BaseModel
	ProductID       uint          `json:"productId" gorm:"index;not null"`
	ProductCode     string        `json:"productCode" gorm:"index;size:50;not null"`
	RfidChipCode    string        `json:"rfidChipCode" gorm:"uniqueIndex;size:100;not null"`
	SupplierCode    string        `json:"supplierCode" gorm:"index;size:50;not null"`
	ClientCode      string        `json:"clientCode" gorm:"index;size:50"`
	Status          ProductStatus `json:"status" gorm:"type:varchar(20);index;not null"`
	Cycle           int           `json:"cycle" gorm:"not null;default:0"`
	LatestReadingAt *time.Time    `json:"latestReadingAt"`
}

// ProductDetailHistory is an append-only snapshot written on every ProductDetail change.
type ProductDetailHistory struct {
	BaseModel
	ProductDetailID uint          `json:"productDetailId" gorm:"index;not null"`
	ScanHistoryID   uint          `json:"scanHistoryId" gorm:"index"`
	RfidChipCode    string        `json:"rfidChipCode" gorm:"index;size:100;not null"`
	ProductCode     string        `json:"productCode" gorm:"size:50;not null"`
	SupplierCode    string        `json:"supplierCode" gorm:"size:50;not null"`
	ClientCode      string        `json:"clientCode" gorm:"size:50"`
	PrevStatus      ProductStatus `json:"prevStatus" gorm:"type:varchar(20)"`
	Status          ProductStatus `json:"status" gorm:"type:varchar(20);not null"`
	Cycle           int           `json:"cycle" gorm:"not null"`
}

// NewDetailHistory snapshots the current state of a detail.
func NewDetailHistory(d *ProductDetail, prev ProductStatus, scanHistoryID uint) *ProductDetailHistory {
	return &ProductDetailHistory{
		ProductDetailID: d.ID,
		ScanHistoryID:   scanHistoryID,
		RfidChipCode:    d.RfidChipCode,
		ProductCode:     d.ProductCode,
		SupplierCode:    d.SupplierCode,
		ClientCode:      d.ClientCode,
		PrevStatus:      prev,
		Status:          d.Status,
		Cycle:           d.Cycle,
	}
}
