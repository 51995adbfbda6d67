// internal/services/faq_service.go
package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/models"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/query"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/repository"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/utils"
)

type FaqService struct {
	faqs  *query.FaqQuery
	store repository.Repository[models.Faq]
}

type CreateFaqRequest struct {
	ClassificationCode string `json:"classificationCode" validate:"omitempty,code"`
	Question           string `json:"question" validate:"required"`
	Answer             string `json:"answer" validate:"required"`
}

func NewFaqService(db *gorm.DB) *FaqService {
	return &FaqService{faqs: query.NewFaqQuery(db), store: repository.New[models.Faq](db)}
}

func (s *FaqService) List(ctx context.Context, classificationCode string) ([]models.Faq, error) {
	return s.faqs.FaqsOf(ctx, classificationCode)
}

func (s *FaqService) Create(ctx context.Context, req *CreateFaqRequest) (*models.Faq, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	faq := &models.Faq{
		ClassificationCode: req.ClassificationCode,
		Question:           req.Question,
		Answer:             req.Answer,
	}
	if err := s.store.Save(ctx, faq); err != nil {
		return nil, err
	}
	return faq, nil
}
