// internal/models/faq.go
package models

type Faq struct {
	BaseModel
	ClassificationCode string `json:"classificationCode" gorm:"index;size:50"`
	Question           string `json:"question" gorm:"type:text;not null"`
	Answer             string `json:"answer" gorm:"type:text;not null"`
}

// All returns every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&Member{},
		&Product{},
		&SupplyProduct{},
		&ClientProduct{},
		&ProductDetail{},
		&ProductDetailHistory{},
		&Device{},
		&RfidScanHistory{},
		&Recall{},
		&DiscardHistory{},
		&SupplierOrder{},
		&Faq{},
	}
}
