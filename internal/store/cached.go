package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"workshop-genie/internal/cache"
	"workshop-genie/internal/model"
	"workshop-genie/internal/worker"

	"github.com/redis/go-redis/v9"
)

// generationKey 每次 workshop 資料變動就遞增；清單快取的 key 內含世代號，
// 舊世代的條目不會再被讀到，交給 TTL 回收。
const generationKey = "workshops:generation"

// warmUpTimeout bounds one background refill of the unfiltered list.
const warmUpTimeout = 5 * time.Second

// Logger is the subset of echo.Logger the cache layer reports to.
type Logger interface {
	Warnf(format string, args ...interface{})
}

// Cached 把 workshop 清單與搜尋結果快取在 Redis。
// 未覆寫的方法直接委派給內層 Store；GetWorkshop 不快取，
// 預約前的容量檢查必須看到最新的 enrolled。
// 快取出錯一律記錄後改走內層 Store，不影響回應。
type Cached struct {
	Store
	cache  cache.Cache
	ttl    time.Duration
	pool   worker.Pool
	logger Logger
}

var _ Store = (*Cached)(nil)

// NewCached wraps inner. pool may be nil, which disables warm-ups.
func NewCached(inner Store, c cache.Cache, ttl time.Duration, pool worker.Pool, logger Logger) *Cached {
	return &Cached{
		Store:  inner,
		cache:  c,
		ttl:    ttl,
		pool:   pool,
		logger: logger,
	}
}

func (c *Cached) GetWorkshops(ctx context.Context) ([]model.Workshop, error) {
	return c.cachedList(ctx, model.WorkshopFilter{}, c.Store.GetWorkshops)
}

func (c *Cached) SearchWorkshops(ctx context.Context, f model.WorkshopFilter) ([]model.Workshop, error) {
	return c.cachedList(ctx, f, func(ctx context.Context) ([]model.Workshop, error) {
		return c.Store.SearchWorkshops(ctx, f)
	})
}

func (c *Cached) CreateWorkshop(ctx context.Context, in model.InsertWorkshop) (*model.Workshop, error) {
	w, err := c.Store.CreateWorkshop(ctx, in)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return w, nil
}

func (c *Cached) UpdateWorkshopEnrollment(ctx context.Context, id, enrolled int) (*model.Workshop, error) {
	w, err := c.Store.UpdateWorkshopEnrollment(ctx, id, enrolled)
	if err != nil {
		return nil, err
	}
	if w != nil {
		c.invalidate(ctx)
	}
	return w, nil
}

func (c *Cached) CreateBooking(ctx context.Context, in model.InsertBooking) (*model.Booking, error) {
	b, err := c.Store.CreateBooking(ctx, in)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return b, nil
}

func (c *Cached) cachedList(
	ctx context.Context,
	f model.WorkshopFilter,
	load func(context.Context) ([]model.Workshop, error),
) ([]model.Workshop, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		c.logger.Warnf("workshop cache: read generation: %v", err)
		return load(ctx)
	}
	key := listKey(gen, f)

	raw, err := c.cache.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var ws []model.Workshop
		if err := json.Unmarshal(raw, &ws); err == nil {
			return ws, nil
		}
		c.logger.Warnf("workshop cache: decode %s: %v", key, err)
	case !errors.Is(err, redis.Nil):
		c.logger.Warnf("workshop cache: get %s: %v", key, err)
	}

	ws, err := load(ctx)
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(ws)
	if err != nil {
		c.logger.Warnf("workshop cache: encode %s: %v", key, err)
		return ws, nil
	}
	if err := c.cache.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warnf("workshop cache: set %s: %v", key, err)
	}
	return ws, nil
}

func (c *Cached) generation(ctx context.Context) (int64, error) {
	v, err := c.cache.Get(ctx, generationKey).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	gen, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("generation %q: %w", v, err)
	}
	return gen, nil
}

// invalidate 遞增世代號，並在背景重建未篩選清單
func (c *Cached) invalidate(ctx context.Context) {
	if err := c.cache.Incr(ctx, generationKey).Err(); err != nil {
		c.logger.Warnf("workshop cache: bump generation: %v", err)
		return
	}
	if c.pool == nil {
		return
	}
	accepted := c.pool.TrySubmit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), warmUpTimeout)
		defer cancel()
		if _, err := c.GetWorkshops(ctx); err != nil {
			c.logger.Warnf("workshop cache: warm up: %v", err)
		}
	})
	if !accepted {
		c.logger.Warnf("workshop cache: warm-up queue full, skipped")
	}
}

func listKey(gen int64, f model.WorkshopFilter) string {
	if f.IsZero() {
		return fmt.Sprintf("workshops:%d:all", gen)
	}
	return fmt.Sprintf("workshops:%d:search:c=%s|l=%s|min=%s|max=%s",
		gen,
		strings.ToLower(f.Category),
		strings.ToLower(f.Location),
		formatBound(f.PriceMin),
		formatBound(f.PriceMax),
	)
}

func formatBound(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}
