package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
)

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
}

// RedisCache is the production TokenCache backed by a redigo connection pool.
type RedisCache struct {
	pool *redis.Pool
}

func NewRedisPool(opts RedisOptions) *redis.Pool {
	return &redis.Pool{
		MaxIdle:     opts.PoolSize,
		MaxActive:   opts.PoolSize,
		IdleTimeout: 5 * time.Minute,
		Wait:        true,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", opts.Addr,
				redis.DialPassword(opts.Password),
				redis.DialDatabase(opts.DB),
				redis.DialConnectTimeout(5*time.Second),
			)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < time.Minute {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}
}

func NewRedisCache(pool *redis.Pool) *RedisCache {
	return &RedisCache{pool: pool}
}

// Ping verifies that the server is reachable.
func (r *RedisCache) Ping(ctx context.Context) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("redis: get connection: %w", err)
	}
	defer conn.Close()

	_, err = redis.DoContext(conn, ctx, "PING")
	return err
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, error) {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return "", fmt.Errorf("redis: get connection: %w", err)
	}
	defer conn.Close()

	value, err := redis.String(redis.DoContext(conn, ctx, "GET", key))
	if errors.Is(err, redis.ErrNil) {
		return "", ErrMiss
	}
	if err != nil {
		return "", fmt.Errorf("redis: GET %s: %w", key, err)
	}
	return value, nil
}

func (r *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("redis: get connection: %w", err)
	}
	defer conn.Close()

	args := redis.Args{}.Add(key, value)
	if ms := ttl.Milliseconds(); ms > 0 {
		args = args.Add("PX", ms)
	}
	if _, err := redis.DoContext(conn, ctx, "SET", args...); err != nil {
		return fmt.Errorf("redis: SET %s: %w", key, err)
	}
	return nil
}

func (r *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("redis: get connection: %w", err)
	}
	defer conn.Close()

	if _, err := redis.DoContext(conn, ctx, "DEL", redis.Args{}.AddFlat(keys)...); err != nil {
		return fmt.Errorf("redis: DEL: %w", err)
	}
	return nil
}

func (r *RedisCache) Close() error {
	return r.pool.Close()
}
