package repository

import (
	"gorm.io/gorm"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/models"
)

// Repositories bundles one CRUD accessor per entity.
type Repositories struct {
	Members                Repository[models.Member]
	Products               Repository[models.Product]
	SupplyProducts         Repository[models.SupplyProduct]
	ClientProducts         Repository[models.ClientProduct]
	ProductDetails         Repository[models.ProductDetail]
	ProductDetailHistories Repository[models.ProductDetailHistory]
	Devices                Repository[models.Device]
	RfidScanHistories      Repository[models.RfidScanHistory]
	Recalls                Repository[models.Recall]
	DiscardHistories       Repository[models.DiscardHistory]
	SupplierOrders         Repository[models.SupplierOrder]
	Faqs                   Repository[models.Faq]
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Members:                New[models.Member](db),
		Products:               New[models.Product](db),
		SupplyProducts:         New[models.SupplyProduct](db),
		ClientProducts:         New[models.ClientProduct](db),
		ProductDetails:         New[models.ProductDetail](db),
		ProductDetailHistories: New[models.ProductDetailHistory](db),
		Devices:                New[models.Device](db),
		RfidScanHistories:      New[models.RfidScanHistory](db),
		Recalls:                New[models.Recall](db),
		DiscardHistories:       New[models.DiscardHistory](db),
		SupplierOrders:         New[models.SupplierOrder](db),
		Faqs:                   New[models.Faq](db),
	}
}
