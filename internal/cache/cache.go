// Package cache stores the currently valid access and refresh tokens per
// user so that stateless JWTs can be revoked server-side.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/yukikurage/taskboard-api/internal/constants"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache: key not found")

type TokenCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

func AccessKey(userID string) string {
	return constants.AccessTokenKeyPrefix + userID
}

func RefreshKey(userID string) string {
	return constants.RefreshTokenKeyPrefix + userID
}
