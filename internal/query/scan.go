package query

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/models"
)

type ScanHistoryQuery struct {
	db *gorm.DB
}

func NewScanHistoryQuery(db *gorm.DB) *ScanHistoryQuery {
	return &ScanHistoryQuery{db: db}
}

// ScansOfSupplier pages through a supplier's scan log, newest first.
func (q *ScanHistoryQuery) ScansOfSupplier(ctx context.Context, supplierCode string, offset, limit int) ([]models.RfidScanHistory, int64, error) {
	var (
		scans []models.RfidScanHistory
		total int64
	)

	base := q.db.WithContext(ctx).
		Model(&models.RfidScanHistory{}).
		Where("supplier_code = ?", supplierCode).
		Session(&gorm.Session{})

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count scans: %w", err)
	}
	if err := base.Order("id DESC").Offset(offset).Limit(limit).Find(&scans).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to query scans: %w", err)
	}
	if scans == nil {
		scans = []models.RfidScanHistory{}
	}
	return scans, total, nil
}
