// internal/models/common.go
package models

import (
	"time"
)

// Base model with common fields. CreatedAt/UpdatedAt are maintained by gorm on every
// create and save.
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"modifiedAt" gorm:"column:modified_at;autoUpdateTime"`
}

// Grade distinguishes the platform admin, suppliers and their clients.
type Grade int

const (
	GradeAdmin    Grade = 0
	GradeSupplier Grade = 1
	GradeClient   Grade = 2
)

func (g Grade) String() string {
	switch g {
	case GradeAdmin:
		return "admin"
	case GradeSupplier:
		return "supplier"
	case GradeClient:
		return "client"
	default:
		return "unknown"
	}
}

// Withdrawal is the two-valued soft-delete state of a member, stored as "Y"/"N".
type Withdrawal string

const (
	WithdrawalActive    Withdrawal = "N"
	WithdrawalWithdrawn Withdrawal = "Y"
)

func (w Withdrawal) IsWithdrawn() bool {
	return w == WithdrawalWithdrawn
}

func (w Withdrawal) Valid() bool {
	return w == WithdrawalActive || w == WithdrawalWithdrawn
}

// ProductStatus is the lifecycle position of a single RFID-tagged product. A tag
// enters the lifecycle on its first issue scan.
type ProductStatus string

const (
	ProductStatusIssued    ProductStatus = "issued"
	ProductStatusReceived  ProductStatus = "received"
	ProductStatusRecalled  ProductStatus = "recalled"
	ProductStatusWashed    ProductStatus = "washed"
	ProductStatusDiscarded ProductStatus = "discarded"
)

// InStock reports whether a product in this status is back on the supplier's shelf
// and counts towards remaining stock.
func (s ProductStatus) InStock() bool {
	return s == ProductStatusWashed
}

// ScanStatus is the action a device reports for a batch of tags.
type ScanStatus string

const (
	ScanStatusIssue   ScanStatus = "issue"
	ScanStatusReceive ScanStatus = "receive"
	ScanStatusRecall  ScanStatus = "recall"
	ScanStatusWash    ScanStatus = "wash"
	ScanStatusDiscard ScanStatus = "discard"
)

// Target returns the product status a scan moves a tag into.
func (s ScanStatus) Target() ProductStatus {
	switch s {
	case ScanStatusIssue:
		return ProductStatusIssued
	case ScanStatusReceive:
		return ProductStatusReceived
	case ScanStatusRecall:
		return ProductStatusRecalled
	case ScanStatusWash:
		return ProductStatusWashed
	case ScanStatusDiscard:
		return ProductStatusDiscarded
	}
	return ""
}

var allowedTransitions = map[ProductStatus][]ProductStatus{
	ProductStatusIssued:    {ProductStatusWashed},
	ProductStatusReceived:  {ProductStatusIssued},
	ProductStatusRecalled:  {ProductStatusIssued, ProductStatusReceived},
	ProductStatusWashed:    {ProductStatusRecalled},
	ProductStatusDiscarded: {ProductStatusIssued, ProductStatusReceived, ProductStatusRecalled, ProductStatusWashed},
}

// CanTransition reports whether a tag may move from one status to another.
// An empty from status stands for a tag that has never been scanned; only an
// issue may register it.
func CanTransition(from, to ProductStatus) bool {
	if from == "" {
		return to == ProductStatusIssued
	}
	for _, allowed := range allowedTransitions[to] {
		if allowed == from {
			return true
		}
	}
	return false
}
