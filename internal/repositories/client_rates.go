package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/CodeWithhamza1/financeflow/internal/logger"
	"github.com/CodeWithhamza1/financeflow/internal/models"
)

// clientCacheKey is the single slot the client-tier rate record lives under.
// Only one target currency's rates are retained at a time, matching the fact
// that a user has exactly one active preferred currency.
const clientCacheKey = "currency_rates_cache"

// ClientRateCacheRepository persists the client-tier rate record in Redis so
// it survives restarts, with a TTL and an exact target-currency match on read.
type ClientRateCacheRepository struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

// NewClientRateCacheRepository creates a repository with the given TTL.
// The clock is injectable for tests; pass nil to use time.Now.
func NewClientRateCacheRepository(client *redis.Client, ttl time.Duration, now func() time.Time) *ClientRateCacheRepository {
	if now == nil {
		now = time.Now
	}
	return &ClientRateCacheRepository{
		client: client,
		ttl:    ttl,
		now:    now,
	}
}

// Get returns the cached rates only when a record exists, is unexpired, and
// was written for exactly the requested currency. Anything else is a miss:
// a record for currency A never answers a query about currency B.
func (r *ClientRateCacheRepository) Get(ctx context.Context, currency string) (models.Rates, bool) {
	val, err := r.client.Get(ctx, clientCacheKey).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Errorw("failed to read client rate cache", "error", err)
		}
		return nil, false
	}

	var record models.ClientRateRecord
	if err := json.Unmarshal([]byte(val), &record); err != nil {
		logger.Log.Errorw("corrupt client rate cache record", "error", err)
		return nil, false
	}

	age := r.now().UnixMilli() - record.Timestamp
	if age >= r.ttl.Milliseconds() || record.Currency != currency {
		return nil, false
	}

	return record.Rates, true
}

// Set replaces any prior record unconditionally with rates for the given
// target currency. Rates are stored at full precision.
func (r *ClientRateCacheRepository) Set(ctx context.Context, rates models.Rates, currency string) error {
	record := models.ClientRateRecord{
		Rates:     rates,
		Timestamp: r.now().UnixMilli(),
		Currency:  currency,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, clientCacheKey, data, r.ttl).Err()

	logger.Log.Infow("client rate cache written",
		"currency", currency,
		"rates", len(rates),
		"error", err,
	)
	return err
}

// Clear removes the record. Called when the user's preferred currency
// changes, so stale rates for the old currency never leak into the new one.
func (r *ClientRateCacheRepository) Clear(ctx context.Context) error {
	err := r.client.Del(ctx, clientCacheKey).Err()

	logger.Log.Infow("client rate cache cleared", "error", err)
	return err
}
