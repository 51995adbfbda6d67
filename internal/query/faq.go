package query

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/models"
)

type FaqQuery struct {
	db *gorm.DB
}

func NewFaqQuery(db *gorm.DB) *FaqQuery {
	return &FaqQuery{db: db}
}

// FaqsOf lists FAQs of a classification code, or all FAQs when the code is empty.
func (q *FaqQuery) FaqsOf(ctx context.Context, classificationCode string) ([]models.Faq, error) {
	faqs := []models.Faq{}
	tx := q.db.WithContext(ctx).Order("id")
	if classificationCode != "" {
		tx = tx.Where("classification_code = ?", classificationCode)
	}
	if err := tx.Find(&faqs).Error; err != nil {
		return nil, fmt.Errorf("failed to query faqs: %w", err)
	}
	return faqs, nil
}
