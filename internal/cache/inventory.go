package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mentorly/internal/observability"

	"github.com/redis/go-redis/v9"
)

const (
	AchievementPostKeyPrefix = "achievement_post:%s"
)

const (
	AchievementPostTTL = 30 * time.Minute
)

func AchievementPostKey(id string) string {
	return fmt.Sprintf(AchievementPostKeyPrefix, id)
}

// Invalidate drops key; it is a no-op without a client.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// GetJSON reads key into dest and reports whether it was present.
func GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if client == nil {
		return false, nil
	}
	raw, err := client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores v under key with ttl.
func SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, b, ttl).Err()
}

// Aside tries Redis first; on a miss it calls fetch, which must populate dest, and
// stores the result best-effort. Cache read errors fall through to fetch.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) (hit bool, err error) {
	found, getErr := GetJSON(ctx, key, dest)
	switch {
	case getErr != nil:
		observability.CacheLookups.WithLabelValues("error").Inc()
	case found:
		observability.CacheLookups.WithLabelValues("hit").Inc()
		return true, nil
	case client != nil:
		observability.CacheLookups.WithLabelValues("miss").Inc()
	}

	if err := fetch(); err != nil {
		return false, err
	}

	_ = SetJSON(ctx, key, dest, ttl)
	return false, nil
}
