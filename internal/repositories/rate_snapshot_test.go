package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeWithhamza1/financeflow/internal/models"
)

// fakeClock is an adjustable clock for TTL boundary tests.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestRateSnapshotRepository_SetAndGet(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)}
	repo := NewRateSnapshotRepository(24*time.Hour, clock.Now)

	rates := models.Rates{"EUR": 0.85, "PKR": 283.5}
	repo.Set("USD", rates)

	got, ok := repo.Get("USD")
	require.True(t, ok)
	assert.Equal(t, rates, got)
}

func TestRateSnapshotRepository_MissForUnknownBase(t *testing.T) {
	repo := NewRateSnapshotRepository(24*time.Hour, nil)

	_, ok := repo.Get("USD")
	assert.False(t, ok)
}

func TestRateSnapshotRepository_TTLBoundary(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)}
	repo := NewRateSnapshotRepository(24*time.Hour, clock.Now)

	repo.Set("USD", models.Rates{"EUR": 0.85})

	// Just before the TTL the snapshot is still served
	clock.Advance(24*time.Hour - time.Millisecond)
	_, ok := repo.Get("USD")
	assert.True(t, ok)

	// At and past the TTL it must be treated as expired
	clock.Advance(2 * time.Millisecond)
	_, ok = repo.Get("USD")
	assert.False(t, ok)

	// The expired entry was evicted, not retained
	_, ok = repo.Get("USD")
	assert.False(t, ok)
}

func TestRateSnapshotRepository_OverwriteReplacesSnapshot(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)}
	repo := NewRateSnapshotRepository(24*time.Hour, clock.Now)

	repo.Set("USD", models.Rates{"EUR": 0.85, "GBP": 0.73})
	repo.Set("USD", models.Rates{"EUR": 0.90})

	got, ok := repo.Get("USD")
	require.True(t, ok)

	// Full overwrite, never a merge
	assert.Equal(t, models.Rates{"EUR": 0.90}, got)
	_, hasGBP := got["GBP"]
	assert.False(t, hasGBP)
}

func TestRateSnapshotRepository_RefreshResetsTTL(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)}
	repo := NewRateSnapshotRepository(24*time.Hour, clock.Now)

	repo.Set("USD", models.Rates{"EUR": 0.85})

	clock.Advance(23 * time.Hour)
	repo.Set("USD", models.Rates{"EUR": 0.86})

	// 23h + 2h is past the original deadline but within the refreshed one
	clock.Advance(2 * time.Hour)
	got, ok := repo.Get("USD")
	require.True(t, ok)
	assert.Equal(t, 0.86, got["EUR"])
}

func TestRateSnapshotRepository_BaseIsolation(t *testing.T) {
	repo := NewRateSnapshotRepository(24*time.Hour, nil)

	repo.Set("USD", models.Rates{"EUR": 0.85})

	_, ok := repo.Get("EUR")
	assert.False(t, ok)
}
