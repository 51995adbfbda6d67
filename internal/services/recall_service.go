// internal/services/recall_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/dto"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/models"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/query"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/repository"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/utils"
)

type RecallService struct {
	db      *gorm.DB
	recalls *query.RecallQuery
	store   repository.Repository[models.Recall]
}

type CreateRecallRequest struct {
	ProductCode      string    `json:"productCode" validate:"required,code"`
	RecallMount      int       `json:"recallMount" validate:"gt=0"`
	PossibleRecallAt time.Time `json:"possibleRecallAt" validate:"required"`
}

func NewRecallService(db *gorm.DB) *RecallService {
	return &RecallService{
		db:      db,
		recalls: query.NewRecallQuery(db),
		store:   repository.New[models.Recall](db),
	}
}

// Request files a client's recall request for a product.
func (s *RecallService) Request(ctx context.Context, clientCode string, req *CreateRecallRequest) (*dto.RecallResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := findProduct(s.db.WithContext(ctx), req.ProductCode); err != nil {
		return nil, err
	}

	recall := &models.Recall{
		ClassificationCode: clientCode,
		ProductCode:        req.ProductCode,
		RecallMount:        req.RecallMount,
		PossibleRecallAt:   req.PossibleRecallAt,
	}
	if err := s.store.Save(ctx, recall); err != nil {
		return nil, err
	}

	return &dto.RecallResponse{
		RecallID:           recall.ID,
		ClassificationCode: recall.ClassificationCode,
		ProductCode:        recall.ProductCode,
		RecallMount:        recall.RecallMount,
		PossibleRecallAt:   recall.PossibleRecallAt,
		CreatedAt:          recall.CreatedAt,
	}, nil
}

func (s *RecallService) RecallsOfClient(ctx context.Context, clientCode string) ([]dto.RecallResponse, error) {
	return s.recalls.RecallsOfClient(ctx, clientCode)
}

func (s *RecallService) RecallsOfSupplier(ctx context.Context, supplierCode string) ([]dto.RecallResponse, error) {
	return s.recalls.RecallsOfSupplier(ctx, supplierCode)
}
