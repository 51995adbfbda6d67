package query

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/dto"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/models"
)

type RecallQuery struct {
	db *gorm.DB
}

func NewRecallQuery(db *gorm.DB) *RecallQuery {
	return &RecallQuery{db: db}
}

const recallColumns = "id AS recall_id, classification_code, product_code, recall_mount, possible_recall_at, created_at"

// RecallsOfClient lists a client's recall requests, newest first.
func (q *RecallQuery) RecallsOfClient(ctx context.Context, clientCode string) ([]dto.RecallResponse, error) {
	recalls := []dto.RecallResponse{}
	if clientCode == "" {
		return recalls, nil
	}

	err := q.db.WithContext(ctx).
		Model(&models.Recall{}).
		Select(recallColumns).
		Where("classification_code = ?", clientCode).
		Order("id DESC").
		Scan(&recalls).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query recalls: %w", err)
	}
	return recalls, nil
}

// RecallsOfSupplier lists the recall requests of every active client of a supplier.
func (q *RecallQuery) RecallsOfSupplier(ctx context.Context, supplierCode string) ([]dto.RecallResponse, error) {
	recalls := []dto.RecallResponse{}
	if supplierCode == "" {
		return recalls, nil
	}

	clients := q.db.Model(&models.Member{}).
		Select("classification_code").
		Scopes(ActiveClientsOf(supplierCode).Scope())

	err := q.db.WithContext(ctx).
		Model(&models.Recall{}).
		Select(recallColumns).
		Where("classification_code IN (?)", clients).
		Order("id DESC").
		Scan(&recalls).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query supplier recalls: %w", err)
	}
	return recalls, nil
}
