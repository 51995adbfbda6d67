// Package query holds the read-only typed queries. Predicates are declared as filter
// structs whose zero fields are ignored; each filter compiles to a gorm scope.
package query

import (
	"gorm.io/gorm"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/models"
)

type Scope = func(*gorm.DB) *gorm.DB

type MemberFilter struct {
	ClassificationCode string
	MotherCode         string
	Grade              *models.Grade
	Withdrawal         models.Withdrawal
}

func (f MemberFilter) Scope() Scope {
	return func(db *gorm.DB) *gorm.DB {
		if f.ClassificationCode != "" {
			db = db.Where("classification_code = ?", f.ClassificationCode)
		}
		if f.MotherCode != "" {
			db = db.Where("mother_code = ?", f.MotherCode)
		}
		if f.Grade != nil {
			db = db.Where("grade = ?", *f.Grade)
		}
		if f.Withdrawal != "" {
			db = db.Where("with_drawal = ?", f.Withdrawal)
		}
		return db
	}
}

// ActiveClientsOf selects the non-withdrawn clients of a supplier.
func ActiveClientsOf(supplierCode string) MemberFilter {
	grade := models.GradeClient
	return MemberFilter{
		MotherCode: supplierCode,
		Grade:      &grade,
		Withdrawal: models.WithdrawalActive,
	}
}

// ActiveSupplier selects the non-withdrawn supplier holding a classification code.
func ActiveSupplier(classificationCode string) MemberFilter {
	grade := models.GradeSupplier
	return MemberFilter{
		ClassificationCode: classificationCode,
		Grade:              &grade,
		Withdrawal:         models.WithdrawalActive,
	}
}

type DeviceFilter struct {
	DeviceCode   string
	SupplierCode string
}

func (f DeviceFilter) Scope() Scope {
	return func(db *gorm.DB) *gorm.DB {
		if f.DeviceCode != "" {
			db = db.Where("device_code = ?", f.DeviceCode)
		}
		if f.SupplierCode != "" {
			db = db.Where("supplier_code = ?", f.SupplierCode)
		}
		return db
	}
}

type SupplierOrderFilter struct {
	SupplierCode string
	ProductCode  string
}

func (f SupplierOrderFilter) Scope() Scope {
	return func(db *gorm.DB) *gorm.DB {
		if f.SupplierCode != "" {
			db = db.Where("supplier_code = ?", f.SupplierCode)
		}
		if f.ProductCode != "" {
			db = db.Where("product_code = ?", f.ProductCode)
		}
		return db
	}
}

// First caps a query at one row, lowest id first.
func First(db *gorm.DB) *gorm.DB {
	return db.Order("id").Limit(1)
}
