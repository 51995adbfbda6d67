// internal/models/stock.go
package models

import (
	"time"
)

// SupplierOrder is a stock ledger row; summing OrderMount per supplier and product
// yields the remaining stock.
type SupplierOrder struct {
	BaseModel
	SupplierCode string `json:"supplierCode" gorm:"index:idx_supplier_orders_supplier_product;size:50;not null"`
	ProductCode  string `json:"productCode" gorm:"index:idx_supplier_orders_supplier_product;size:50;not null"`
	OrderMount   int64  `json:"orderMount" gorm:"not null"`
	Memo         string `json:"memo" gorm:"size:255"`
}

// Recall is a client's request to have issued product collected. It is a request,
// not the physical retrieval, which is recorded by a recall scan.
type Recall struct {
	BaseModel
	ClassificationCode string    `json:"classificationCode" gorm:"index;size:50;not null"`
	ProductCode        string    `json:"productCode" gorm:"size:50;not null"`
	RecallMount        int       `json:"recallMount" gorm:"not null"`
	PossibleRecallAt   time.Time `json:"possibleRecallAt" gorm:"not null"`
}

type DiscardHistory struct {
	BaseModel
	SupplierCode  string `json:"supplierCode" gorm:"index;size:50;not null"`
	ClientCode    string `json:"clientCode" gorm:"size:50"`
	ProductCode   string `json:"productCode" gorm:"size:50;not null"`
	ScanHistoryID uint   `json:"scanHistoryId" gorm:"index"`
	DiscardMount  int    `json:"discardMount" gorm:"not null"`
	Reason        string `json:"reason" gorm:"size:255"`
}
