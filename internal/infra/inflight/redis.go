package inflight

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"printcanvas/internal/pkg/config"
	"printcanvas/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// guardTTL caps how long a generation slot stays held if the process dies
// before releasing it.
const guardTTL = 3 * time.Minute

// Guard serializes expensive work per customer: at most one generation may be
// in flight for a customer at any time.
type Guard interface {
	Acquire(ctx context.Context, customerID uuid.UUID) (release func(), err error)
}

type RedisGuard struct {
	client *redis.Client
}

func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, func(), error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, nil, errs.Wrap(err, "failed to ping redis")
	}

	cleanup := func() {
		if err := rdb.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
		}
	}
	return rdb, cleanup, nil
}

func NewRedisGuard(client *redis.Client) *RedisGuard {
	return &RedisGuard{client: client}
}

var ErrAlreadyInFlight = errs.New("generation already in flight")

func (g *RedisGuard) Acquire(ctx context.Context, customerID uuid.UUID) (func(), error) {
	key := fmt.Sprintf("generation:inflight:%s", customerID)

	ok, err := g.client.SetNX(ctx, key, "1", guardTTL).Result()
	if err != nil {
		return nil, errs.Wrap(err, "failed to acquire generation slot")
	}
	if !ok {
		return nil, ErrAlreadyInFlight
	}

	release := func() {
		// Release must survive request cancellation.
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := g.client.Del(ctx, key).Err(); err != nil {
			slog.Warn("failed to release generation slot",
				"customer_id", customerID.String(),
				"error", err.Error())
		}
	}
	return release, nil
}
