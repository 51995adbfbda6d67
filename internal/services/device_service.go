// internal/services/device_service.go
package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/cache"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/dto"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/metrics"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/models"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/query"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/repository"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/utils"
)

type DeviceService struct {
	db      *gorm.DB
	devices *query.DeviceQuery
	store   repository.Repository[models.Device]
	cache   cache.DeviceCache
	metrics *metrics.Metrics
}

type RegisterDeviceRequest struct {
	DeviceCode string `json:"deviceCode" validate:"required,code"`
	DeviceName string `json:"deviceName" validate:"max=100"`
}

// NewDeviceService wires the device lookup. deviceCache may be nil to disable caching.
func NewDeviceService(db *gorm.DB, deviceCache cache.DeviceCache, m *metrics.Metrics) *DeviceService {
	return &DeviceService{
		db:      db,
		devices: query.NewDeviceQuery(db),
		store:   repository.New[models.Device](db),
		cache:   deviceCache,
		metrics: m,
	}
}

// DeviceByCode resolves a device code through the cache. Unknown codes yield nil.
func (s *DeviceService) DeviceByCode(ctx context.Context, deviceCode string) (*dto.DeviceResponse, error) {
	hit := true
	device, err := cache.GetOrLoad(ctx, s.cache, deviceCode, func(ctx context.Context, code string) (*dto.DeviceResponse, error) {
		hit = false
		return s.devices.DeviceByCode(ctx, code)
	})
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveDeviceLookup(hit)
	return device, nil
}

// Register adds a device for a supplier and evicts any cached lookup of its code.
func (s *DeviceService) Register(ctx context.Context, supplierCode string, req *RegisterDeviceRequest) (*models.Device, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var existing int64
	if err := s.db.WithContext(ctx).Model(&models.Device{}).
		Where("device_code = ?", req.DeviceCode).
		Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if existing > 0 {
		return nil, conflict("device", req.DeviceCode)
	}

	device := &models.Device{
		DeviceCode:   req.DeviceCode,
		SupplierCode: supplierCode,
		DeviceName:   req.DeviceName,
	}
	if err := s.store.Save(ctx, device); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, req.DeviceCode); err != nil {
			// A stale entry only lives until its TTL.
			logrus.WithError(err).WithField("device_code", req.DeviceCode).Warn("Failed to evict cached device")
		}
	}
	return device, nil
}
