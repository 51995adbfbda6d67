package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/dto"
)

const (
	fieldDeviceID     = "deviceId"
	fieldSupplierCode = "supplierCode"
)

// RedisCache stores each device as a Redis hash under device:<code> with an EXPIRE.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// NewRedisClient connects and pings, returning an error when Redis is unreachable.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

func (c *RedisCache) Get(ctx context.Context, deviceCode string) (*dto.DeviceResponse, error) {
	values, err := c.client.HGetAll(ctx, deviceKey(deviceCode)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hgetall: %w", err)
	}
	if len(values) == 0 {
		return nil, ErrMiss
	}
	return decodeDevice(values)
}

func (c *RedisCache) Set(ctx context.Context, deviceCode string, device *dto.DeviceResponse) error {
	key := deviceKey(deviceCode)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, encodeDevice(device))
		pipe.Expire(ctx, key, c.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis hset: %w", err)
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, deviceCode string) error {
	return c.client.Del(ctx, deviceKey(deviceCode)).Err()
}

func encodeDevice(device *dto.DeviceResponse) map[string]interface{} {
	return map[string]interface{}{
		fieldDeviceID:     strconv.FormatUint(uint64(device.DeviceID), 10),
		fieldSupplierCode: device.SupplierCode,
	}
}

func decodeDevice(values map[string]string) (*dto.DeviceResponse, error) {
	id, err := strconv.ParseUint(values[fieldDeviceID], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt cached device id %q: %w", values[fieldDeviceID], err)
	}
	supplierCode, ok := values[fieldSupplierCode]
	if !ok {
		return nil, ErrMiss
	}
	return &dto.DeviceResponse{DeviceID: uint(id), SupplierCode: supplierCode}, nil
}
