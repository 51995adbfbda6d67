// internal/services/scan_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/database"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/dto"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/metrics"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/models"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/query"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/utils"
)

// Rejection reasons reported per chip.
const (
	RejectDuplicate     = "duplicate chip in request"
	RejectUnknownChip   = "chip has never been issued"
	RejectOtherSupplier = "chip belongs to another supplier"
	RejectOtherProduct  = "chip belongs to another product"
)

type ScanService struct {
	db      *gorm.DB
	devices *DeviceService
	scans   *query.ScanHistoryQuery
	metrics *metrics.Metrics
}

type ScanRequest struct {
	DeviceCode    string            `json:"deviceCode" validate:"required,code"`
	Status        models.ScanStatus `json:"status" validate:"required,oneof=issue receive recall wash discard"`
	ProductCode   string            `json:"productCode" validate:"required,code"`
	ClientCode    string            `json:"clientCode,omitempty" validate:"required_if=Status issue,omitempty,code"`
	RfidChipCodes []string          `json:"rfidChipCodes" validate:"required,min=1,max=500,dive,required,max=100"`
	Reason        string            `json:"reason,omitempty" validate:"max=255"`
}

func NewScanService(db *gorm.DB, devices *DeviceService, m *metrics.Metrics) *ScanService {
	return &ScanService{
		db:      db,
		devices: devices,
		scans:   query.NewScanHistoryQuery(db),
		metrics: m,
	}
}

// Scan applies one device report. Every chip either moves to the scan's target status
// or is listed as rejected; a rejected chip never fails the batch.
func (s *ScanService) Scan(ctx context.Context, req *ScanRequest) (*dto.ScanResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	device, err := s.devices.DeviceByCode(ctx, req.DeviceCode)
	if err != nil {
		return nil, err
	}
	if device == nil {
		return nil, notFound("device", req.DeviceCode)
	}

	product, err := findProduct(s.db.WithContext(ctx), req.ProductCode)
	if err != nil {
		return nil, err
	}
	// A supplier only moves products in its own catalogue, so the ledger stays restockable.
	if err := requireSupplied(s.db.WithContext(ctx), device.SupplierCode, req.ProductCode); err != nil {
		return nil, err
	}

	if req.ClientCode != "" {
		var clients int64
		if err := s.db.WithContext(ctx).Model(&models.Member{}).
			Scopes(query.ActiveClientsOf(device.SupplierCode).Scope()).
			Where("classification_code = ?", req.ClientCode).
			Count(&clients).Error; err != nil {
			return nil, fmt.Errorf("database error: %w", err)
		}
		if clients == 0 {
			return nil, notFound("member", req.ClientCode)
		}
	}

	target := req.Status.Target()
	now := time.Now()
	resp := &dto.ScanResponse{Rejected: []dto.RejectedChip{}}

	err = database.WithTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		history := &models.RfidScanHistory{
			DeviceCode:      req.DeviceCode,
			SupplierCode:    device.SupplierCode,
			ClientCode:      req.ClientCode,
			ProductCode:     req.ProductCode,
			Status:          req.Status,
			ScannedCount:    len(req.RfidChipCodes),
			LatestReadingAt: now,
		}
		if err := tx.Create(history).Error; err != nil {
			return fmt.Errorf("failed to create scan history: %w", err)
		}

		var existing []models.ProductDetail
		if err := tx.Where("rfid_chip_code IN ?", req.RfidChipCodes).Find(&existing).Error; err != nil {
			return fmt.Errorf("failed to load product details: %w", err)
		}
		details := make(map[string]*models.ProductDetail, len(existing))
		for i := range existing {
			details[existing[i].RfidChipCode] = &existing[i]
		}

		seen := make(map[string]bool, len(req.RfidChipCodes))
		accepted, leftStock := 0, 0
		reject := func(code, status, reason string) {
			resp.Rejected = append(resp.Rejected, dto.RejectedChip{RfidChipCode: code, Status: status, Reason: reason})
		}

		for _, code := range req.RfidChipCodes {
			if seen[code] {
				reject(code, "", RejectDuplicate)
				continue
			}
			seen[code] = true

			detail, found := details[code]
			var prev models.ProductStatus
			switch {
			case !found && req.Status != models.ScanStatusIssue:
				reject(code, "", RejectUnknownChip)
				continue
			case !found:
				detail = &models.ProductDetail{
					ProductID:    product.ID,
					ProductCode:  product.ProductCode,
					RfidChipCode: code,
					SupplierCode: device.SupplierCode,
				}
			case detail.SupplierCode != device.SupplierCode:
				reject(code, string(detail.Status), RejectOtherSupplier)
				continue
			case detail.ProductCode != req.ProductCode:
				reject(code, string(detail.Status), RejectOtherProduct)
				continue
			default:
				prev = detail.Status
			}

			if !models.CanTransition(prev, target) {
				reject(code, string(prev), fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, prev, target))
				continue
			}

			if target == models.ProductStatusIssued {
				detail.Cycle++
				detail.ClientCode = req.ClientCode
			}
			if target == models.ProductStatusDiscarded && prev.InStock() {
				leftStock++
			}
			detail.Status = target
			detail.LatestReadingAt = &now

			if err := tx.Save(detail).Error; err != nil {
				return fmt.Errorf("failed to save product detail %s: %w", code, err)
			}
			if err := tx.Create(models.NewDetailHistory(detail, prev, history.ID)).Error; err != nil {
				return fmt.Errorf("failed to append product detail history %s: %w", code, err)
			}
			accepted++
		}

		if delta := stockDelta(req.Status, accepted, leftStock); delta != 0 {
			order := &models.SupplierOrder{
				SupplierCode: device.SupplierCode,
				ProductCode:  req.ProductCode,
				OrderMount:   delta,
				Memo:         fmt.Sprintf("scan #%d %s", history.ID, req.Status),
			}
			if err := tx.Create(order).Error; err != nil {
				return fmt.Errorf("failed to write stock ledger: %w", err)
			}
		}

		if req.Status == models.ScanStatusDiscard && accepted > 0 {
			discard := &models.DiscardHistory{
				SupplierCode:  device.SupplierCode,
				ClientCode:    req.ClientCode,
				ProductCode:   req.ProductCode,
				ScanHistoryID: history.ID,
				DiscardMount:  accepted,
				Reason:        req.Reason,
			}
			if err := tx.Create(discard).Error; err != nil {
				return fmt.Errorf("failed to create discard history: %w", err)
			}
		}

		if err := tx.Model(history).Update("accepted_count", accepted).Error; err != nil {
			return fmt.Errorf("failed to update scan history: %w", err)
		}

		resp.ScanHistoryID = history.ID
		resp.Accepted = accepted
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveScan(string(req.Status), resp.Accepted, len(resp.Rejected))
	logrus.WithFields(logrus.Fields{
		"device_code":  req.DeviceCode,
		"status":       req.Status,
		"product_code": req.ProductCode,
		"accepted":     resp.Accepted,
		"rejected":     len(resp.Rejected),
	}).Info("Scan processed")

	return resp, nil
}

// stockDelta is the ledger movement a scan causes. Issued chips leave stock and
// washed chips return to it; discarding only counts chips that were still in stock.
func stockDelta(status models.ScanStatus, accepted, discardedFromStock int) int64 {
	switch status {
	case models.ScanStatusIssue:
		return -int64(accepted)
	case models.ScanStatusWash:
		return int64(accepted)
	case models.ScanStatusDiscard:
		return -int64(discardedFromStock)
	}
	return 0
}

func (s *ScanService) ScansOfSupplier(ctx context.Context, supplierCode string, params utils.PaginationParams) (utils.PaginationResult, error) {
	scans, total, err := s.scans.ScansOfSupplier(ctx, supplierCode, params.Offset(), params.Limit)
	if err != nil {
		return utils.PaginationResult{}, err
	}
	return utils.CreatePaginationResult(scans, total, params), nil
}

// ChipTrace is a tag's current state with every change it went through.
type ChipTrace struct {
	Detail  models.ProductDetail          `json:"detail"`
	History []models.ProductDetailHistory `json:"history"`
}

// TraceChip returns the lifecycle of one of the supplier's tags, oldest change first.
func (s *ScanService) TraceChip(ctx context.Context, supplierCode, chipCode string) (*ChipTrace, error) {
	trace := &ChipTrace{}
	result := s.db.WithContext(ctx).
		Where("rfid_chip_code = ? AND supplier_code = ?", chipCode, supplierCode).
		Limit(1).
		Find(&trace.Detail)
	if result.Error != nil {
		return nil, fmt.Errorf("database error: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, notFound("chip", chipCode)
	}

	if err := s.db.WithContext(ctx).
		Where("product_detail_id = ?", trace.Detail.ID).
		Order("id").
		Find(&trace.History).Error; err != nil {
		return nil, fmt.Errorf("failed to load chip history: %w", err)
	}
	return trace, nil
}
