// Package cache keeps device-code lookups close to the scan path. Entries expire after
// a fixed TTL; nothing refreshes them in the background.
package cache

import (
	"context"
	"errors"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/dto"
)

var ErrMiss = errors.New("cache miss")

// DeviceCache maps a device code to its lookup result for a bounded time.
type DeviceCache interface {
	Get(ctx context.Context, deviceCode string) (*dto.DeviceResponse, error)
	Set(ctx context.Context, deviceCode string, device *dto.DeviceResponse) error
	Delete(ctx context.Context, deviceCode string) error
}

// DeviceLoader is the source of truth behind the cache.
type DeviceLoader func(ctx context.Context, deviceCode string) (*dto.DeviceResponse, error)

// GetOrLoad reads through the cache. A nil result from the loader is returned but
// not stored, so a device registered later becomes visible immediately.
func GetOrLoad(ctx context.Context, c DeviceCache, deviceCode string, load DeviceLoader) (*dto.DeviceResponse, error) {
	if c == nil {
		return load(ctx, deviceCode)
	}

	device, err := c.Get(ctx, deviceCode)
	if err == nil {
		return device, nil
	}

	device, err = load(ctx, deviceCode)
	if err != nil || device == nil {
		return device, err
	}

	// Losing a cache write only costs a later DB read.
	_ = c.Set(ctx, deviceCode, device)
	return device, nil
}

func deviceKey(deviceCode string) string {
	return "device:" + deviceCode
}
