package instance

import (
	"context"
	"time"
)

type Redis interface {
	Ping(ctx context.Context) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key string) (int, error)
	SetEX(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}
