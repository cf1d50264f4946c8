package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionDenylist tracks revoked session tokens by JTI. A sign-out puts the
// token's JTI here until the token would have expired anyway, so a revoked
// token fails on the very next request.
type SessionDenylist struct {
	redis *RedisClient
}

// NewSessionDenylist creates a SessionDenylist.
func NewSessionDenylist(redis *RedisClient) *SessionDenylist {
	return &SessionDenylist{redis: redis}
}

func (d *SessionDenylist) key(jti string) string {
	return fmt.Sprintf("session:revoked:%s", jti)
}

// Revoke marks a token as signed out until its natural expiry. A
// non-positive TTL means the token is already expired and nothing is stored.
func (d *SessionDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return d.redis.Set(ctx, d.key(jti), "1", ttl)
}

// IsRevoked reports whether the token was signed out. A missing key means
// the token is still live.
func (d *SessionDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	ok, err := d.redis.Exists(ctx, d.key(jti))
	if err == redis.Nil {
		return false, nil
	}
	return ok, err
}
