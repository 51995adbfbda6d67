package cache

import (
	"context"
	"time"

	"github.com/viccon/sturdyc"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/dto"
)

const (
	numShards          = 16
	evictionPercentage = 10
)

// MemoryCache is an in-process DeviceCache backed by a sturdyc client.
type MemoryCache struct {
	client *sturdyc.Client[dto.DeviceResponse]
}

func NewMemoryCache(capacity int, ttl time.Duration) *MemoryCache {
	if capacity <= 0 {
		capacity = 10000
	}
	return &MemoryCache{
		client: sturdyc.New[dto.DeviceResponse](
			capacity,
			numShards,
			ttl,
			evictionPercentage,
			sturdyc.WithEvictionInterval(ttl),
		),
	}
}

func (c *MemoryCache) Get(_ context.Context, deviceCode string) (*dto.DeviceResponse, error) {
	device, ok := c.client.Get(deviceKey(deviceCode))
	if !ok {
		return nil, ErrMiss
	}
	return &device, nil
}

func (c *MemoryCache) Set(_ context.Context, deviceCode string, device *dto.DeviceResponse) error {
	c.client.Set(deviceKey(deviceCode), *device)
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, deviceCode string) error {
	c.client.Delete(deviceKey(deviceCode))
	return nil
}

func (c *MemoryCache) Size() int {
	return c.client.Size()
}
