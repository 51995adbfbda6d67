// Package dto holds the flat response projections returned to clients.
package dto

import (
	"time"
)

type ClientResponse struct {
	MemberID           uint   `json:"memberId"`
	CompanyName        string `json:"companyName"`
	ClassificationCode string `json:"classificationCode"`
}

type SupplierResponse struct {
	MemberID    uint   `json:"memberId"`
	CompanyName string `json:"companyName"`
}

type DeviceResponse struct {
	DeviceID     uint   `json:"deviceId"`
	SupplierCode string `json:"supplierCode"`
}

type ProductCatalogResponse struct {
	ProductCode string `json:"productCode"`
	ProductName string `json:"productName"`
}

type ClientProductResponse struct {
	ClientProductID uint   `json:"clientProductId"`
	ProductCode     string `json:"productCode"`
	ProductName     string `json:"productName"`
	SupplierCode    string `json:"supplierCode"`
}

// StockResponse reports remaining stock. HasOrders is false when no ledger row
// matched, in which case RemainCount is 0.
type StockResponse struct {
	SupplierCode string `json:"supplierCode"`
	ProductCode  string `json:"productCode"`
	RemainCount  int64  `json:"remainCount"`
	HasOrders    bool   `json:"hasOrders"`
}

type RecallResponse struct {
	RecallID           uint      `json:"recallId"`
	ClassificationCode string    `json:"classificationCode"`
	ProductCode        string    `json:"productCode"`
	RecallMount        int       `json:"recallMount"`
	PossibleRecallAt   time.Time `json:"possibleRecallAt"`
	CreatedAt          time.Time `json:"createdAt"`
}

type LoginResponse struct {
	AccessToken        string `json:"accessToken"`
	MemberID           uint   `json:"memberId"`
	ClassificationCode string `json:"classificationCode"`
	Grade              int    `json:"grade"`
}

type ScanResponse struct {
	ScanHistoryID uint           `json:"scanHistoryId"`
	Accepted      int            `json:"accepted"`
	Rejected      []RejectedChip `json:"rejected"`
}

type RejectedChip struct {
	RfidChipCode string `json:"rfidChipCode"`
	Status       string `json:"status"`
	Reason       string `json:"reason"`
}
