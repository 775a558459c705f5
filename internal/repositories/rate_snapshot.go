package repositories

import (
	"sync"
	"time"

	"github.com/CodeWithhamza1/financeflow/internal/logger"
	"github.com/CodeWithhamza1/financeflow/internal/models"
)

// RateSnapshotRepository is the process-wide in-memory cache of exchange rate
// snapshots, keyed by base currency. A snapshot is served only while younger
// than the TTL; expired snapshots are evicted on read, never returned.
type RateSnapshotRepository struct {
	mu        sync.RWMutex
	snapshots map[string]models.RateSnapshot
	ttl       time.Duration
	now       func() time.Time
}

// NewRateSnapshotRepository creates a snapshot cache with the given TTL.
// The clock is injectable for tests; pass nil to use time.Now.
func NewRateSnapshotRepository(ttl time.Duration, now func() time.Time) *RateSnapshotRepository {
	if now == nil {
		now = time.Now
	}
	return &RateSnapshotRepository{
		snapshots: make(map[string]models.RateSnapshot),
		ttl:       ttl,
		now:       now,
	}
}

// Get returns the cached rates for a base currency, or ok=false when the
// entry is absent or past its TTL. An expired entry is removed.
func (r *RateSnapshotRepository) Get(base string) (models.Rates, bool) {
	r.mu.RLock()
	snap, exists := r.snapshots[base]
	r.mu.RUnlock()

	if !exists {
		return nil, false
	}

	if r.now().Sub(snap.FetchedAt) >= r.ttl {
		r.mu.Lock()
		// Re-check under the write lock: a concurrent refresh may have
		// replaced the snapshot since the read above.
		if cur, ok := r.snapshots[base]; ok && r.now().Sub(cur.FetchedAt) >= r.ttl {
			delete(r.snapshots, base)
		}
		r.mu.Unlock()
		logger.Log.Debugw("rate snapshot expired", "base", base)
		return nil, false
	}

	return snap.Rates, true
}

// Set stores a freshly fetched snapshot, replacing any prior one for the
// same base currency. Replacement is a full overwrite, never a merge.
func (r *RateSnapshotRepository) Set(base string, rates models.Rates) {
	r.mu.Lock()
	r.snapshots[base] = models.RateSnapshot{
		Base:      base,
		Rates:     rates,
		FetchedAt: r.now(),
	}
	r.mu.Unlock()

	logger.Log.Infow("rate snapshot stored", "base", base, "currencies", len(rates))
}
