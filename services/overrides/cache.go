package overrides

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/redis/go-redis/v9"

	"ratecard/dto"
	"ratecard/models"
	"ratecard/services"
)

const (
	cacheKeyPrefix  = "override_ranges"
	DefaultCacheTTL = 30 * time.Minute
)

// Cache lưu kết quả Coalesce theo content key của tập override
type Cache interface {
	Get(ctx context.Context, key string) ([]dto.OverrideRange, bool, error)
	Set(ctx context.Context, propertyID uint, key string, ranges []dto.OverrideRange) error
	Invalidate(ctx context.Context, propertyID uint) error
}

// ContentKey băm nội dung (không phụ thuộc thứ tự) của tập override thành cache key
func ContentKey(propertyID uint, overrides []models.DateOverride) string {
	h := xxhash.New()
	for _, o := range SortOverrides(overrides) {
		blocked := "0"
		if o.IsBlocked {
			blocked = "1"
		}
		// note đặt cuối và kèm độ dài để không bị nhập nhằng khi chứa dấu phân cách
		note := o.NormalizedNote()
		fmt.Fprintf(h, "%d|%s|%s|%d|%d:%s\n", o.ID, o.Date, blocked, o.NormalizedPrice(), len(note), note)
	}
	return fmt.Sprintf("%s:%d:%016x", cacheKeyPrefix, propertyID, h.Sum64())
}

func indexKey(propertyID uint) string {
	return cacheKeyPrefix + ":" + strconv.FormatUint(uint64(propertyID), 10) + ":keys"
}

// RedisCache lưu range trong Redis, kèm một set chỉ mục các key theo property để xóa
type RedisCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisCache(rdb redis.Cmdable, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &RedisCache{rdb: rdb, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]dto.OverrideRange, bool, error) {
	var ranges []dto.OverrideRange
	found, err := services.GetFromRedis(ctx, c.rdb, key, &ranges)
	if err != nil || !found {
		return nil, false, err
	}
	if ranges == nil {
		ranges = []dto.OverrideRange{}
	}
	return ranges, true, nil
}

func (c *RedisCache) Set(ctx context.Context, propertyID uint, key string, ranges []dto.OverrideRange) error {
	if err := services.SetToRedis(ctx, c.rdb, key, ranges, c.ttl); err != nil {
		return err
	}
	idx := indexKey(propertyID)
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, idx, key)
		pipe.Expire(ctx, idx, c.ttl)
		return nil
	})
	return err
}

func (c *RedisCache) Invalidate(ctx context.Context, propertyID uint) error {
	idx := indexKey(propertyID)
	keys, err := c.rdb.SMembers(ctx, idx).Result()
	if err != nil {
		return err
	}
	return services.DeleteFromRedis(ctx, c.rdb, append(keys, idx)...)
}

// NopCache không lưu gì, luôn miss
type NopCache struct{}

func (NopCache) Get(context.Context, string) ([]dto.OverrideRange, bool, error) {
	return nil, false, nil
}

func (NopCache) Set(context.Context, uint, string, []dto.OverrideRange) error { return nil }

func (NopCache) Invalidate(context.Context, uint) error { return nil }
