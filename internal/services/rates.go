package services

import (
	"context"

	"github.com/CodeWithhamza1/financeflow/internal/logger"
	"github.com/CodeWithhamza1/financeflow/internal/models"
)

// RateSourceReader fetches current exchange rates from the external provider.
type RateSourceReader interface {
	GetRates(ctx context.Context, base string) (models.Rates, error)
}

// RateSnapshotCache stores fetched rate snapshots in memory with a TTL.
type RateSnapshotCache interface {
	Get(base string) (models.Rates, bool)
	Set(base string, rates models.Rates)
}

// RatesService serves base-relative exchange rates, deduplicating outbound
// provider calls through the snapshot cache.
type RatesService struct {
	source RateSourceReader
	cache  RateSnapshotCache
}

// NewRatesService creates a new service instance.
func NewRatesService(source RateSourceReader, cache RateSnapshotCache) *RatesService {
	return &RatesService{
		source: source,
		cache:  cache,
	}
}

// GetRates returns the rate mapping for a base currency. A valid cached
// snapshot is returned without a network call unless forceRefresh is set.
// On a miss the provider is queried and the result cached; on provider
// failure the cache is left untouched and the error propagates, so stale
// data is never served past its TTL.
//
// Two requests racing on the same expired entry may both fetch; both
// converge to the same snapshot value, so the cost is a redundant call,
// not inconsistent data.
func (svc *RatesService) GetRates(ctx context.Context, base string, forceRefresh bool) (models.Rates, error) {
	if !forceRefresh {
		if rates, ok := svc.cache.Get(base); ok {
			return rates, nil
		}
	}

	rates, err := svc.source.GetRates(ctx, base)
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rates", "base", base, "error", err)
		return nil, err
	}

	svc.cache.Set(base, rates)
	return rates, nil
}
