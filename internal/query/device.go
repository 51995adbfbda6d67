package query

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/dto"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/models"
)

type DeviceQuery struct {
	db *gorm.DB
}

func NewDeviceQuery(db *gorm.DB) *DeviceQuery {
	return &DeviceQuery{db: db}
}

// DeviceByCode returns the device id and owning supplier for a device code, or nil.
func (q *DeviceQuery) DeviceByCode(ctx context.Context, deviceCode string) (*dto.DeviceResponse, error) {
	if deviceCode == "" {
		return nil, nil
	}

	var device dto.DeviceResponse
	result := q.db.WithContext(ctx).
		Model(&models.Device{}).
		Scopes(DeviceFilter{DeviceCode: deviceCode}.Scope(), First).
		Select("id AS device_id, supplier_code").
		Scan(&device)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to query device: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &device, nil
}
