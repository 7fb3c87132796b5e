package redis

import (
	"context"
	"errors"
	"time"

	"github.com/AdmiralBulldogTv/LeagueRecap/src/instance"
	"github.com/go-redis/redis/v8"
)

var ErrNoAddresses = errors.New("redis: no addresses configured")

type SetupOptions struct {
	Username   string
	Password   string
	MasterName string
	Addresses  []string
	Database   int
	Sentinel   bool
}

type redisInstance struct {
	cl redis.UniversalClient
}

func NewClient(ctx context.Context, opts SetupOptions) (instance.Redis, error) {
	if len(opts.Addresses) == 0 {
		return nil, ErrNoAddresses
	}

	var cl redis.UniversalClient
	if opts.Sentinel {
		cl = redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:    opts.MasterName,
			SentinelAddrs: opts.Addresses,
			Username:      opts.Username,
			Password:      opts.Password,
			DB:            opts.Database,
		})
	} else {
		cl = redis.NewClient(&redis.Options{
			Addr:     opts.Addresses[0],
			Username: opts.Username,
			Password: opts.Password,
			DB:       opts.Database,
		})
	}

	inst := &redisInstance{cl: cl}
	if err := inst.Ping(ctx); err != nil {
		_ = cl.Close()
		return nil, err
	}

	return inst, nil
}

// IsNil reports whether err is a cache miss.
func IsNil(err error) bool {
	return errors.Is(err, redis.Nil)
}

func (r *redisInstance) Ping(ctx context.Context) error {
	return r.cl.Ping(ctx).Err()
}

func (r *redisInstance) Get(ctx context.Context, key string) (string, error) {
	return r.cl.Get(ctx, key).Result()
}

func (r *redisInstance) Del(ctx context.Context, key string) (int, error) {
	v, err := r.cl.Del(ctx, key).Result()
	return int(v), err
}

func (r *redisInstance) SetEX(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return r.cl.SetEX(ctx, key, value, ttl).Err()
}
