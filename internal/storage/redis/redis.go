package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cleaning-quote/internal/order"
	rdb "cleaning-quote/pkg/redis"
)

const (
	defaultQuoteTTL      = 24 * time.Hour
	DefaultSubmitLockTTL = 2 * time.Minute
)

// Storage keeps quote sessions, submission locks and rate-limit counters.
type Storage struct {
	client  *rdb.Client
	ttl     time.Duration
	lockTTL time.Duration
}

// New stores sessions for the client's TTL (a day when unset). lockTTL is
// how long a submit lock survives a crashed holder.
func New(client *rdb.Client, lockTTL time.Duration) *Storage {
	ttl := client.TTL()
	if ttl <= 0 {
		ttl = defaultQuoteTTL
	}
	if lockTTL <= 0 {
		lockTTL = DefaultSubmitLockTTL
	}
	return &Storage{client: client, ttl: ttl, lockTTL: lockTTL}
}

// SaveQuote stores the revision and refreshes the session expiry.
func (s *Storage) SaveQuote(ctx context.Context, o order.Order) error {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("marshal quote: %w", err)
	}

	return s.client.Set(ctx, buildQuoteKey(o.ID), data, s.ttl)
}

// GetQuote returns nil without error when the session expired or never
// existed.
func (s *Storage) GetQuote(ctx context.Context, id string) (*order.Order, error) {
	data, err := s.client.Get(ctx, buildQuoteKey(id))
	if rdb.IsMiss(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get quote: %w", err)
	}

	var o order.Order
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("unmarshal quote: %w", err)
	}
	return &o, nil
}

func (s *Storage) AcquireSubmitLock(ctx context.Context, id string) (bool, error) {
	return s.client.SetNX(ctx, buildLockKey(id), []byte("1"), s.lockTTL)
}

func (s *Storage) ReleaseSubmitLock(ctx context.Context, id string) error {
	return s.client.Del(ctx, buildLockKey(id))
}

func (s *Storage) SubmitInFlight(ctx context.Context, id string) (bool, error) {
	return s.client.Exists(ctx, buildLockKey(id))
}

// CheckRateLimit counts one hit for key in a fixed window and reports
// whether the limit is exceeded.
func (s *Storage) CheckRateLimit(ctx context.Context, key, action string, limit int64, window time.Duration) (bool, error) {
	k := fmt.Sprintf("ratelimit:%s:%s", key, action)

	count, err := s.client.Incr(ctx, k)
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	// Set expiry if this is the first increment
	if count == 1 {
		if _, err := s.client.Expire(ctx, k, window); err != nil {
			return false, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	return count > limit, nil
}

func buildQuoteKey(id string) string {
	return "quote:" + id
}

func buildLockKey(id string) string {
	return "quote:" + id + ":submit"
}
