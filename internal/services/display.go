package services

import (
	"context"
	"errors"

	"github.com/CodeWithhamza1/financeflow/internal/logger"
	"github.com/CodeWithhamza1/financeflow/internal/models"
)

// ErrRateUnavailable is returned in strict mode when no cached rate exists
// and no refresh was requested.
var ErrRateUnavailable = errors.New("no exchange rate available")

// Converter converts an amount between two currencies.
type Converter interface {
	Convert(ctx context.Context, amount float64, from, to string, forceRefresh bool) (*models.Conversion, error)
}

// ClientRateCache is the persistent single-slot cache of rates for the
// user's active currency.
type ClientRateCache interface {
	Get(ctx context.Context, currency string) (models.Rates, bool)
	Set(ctx context.Context, rates models.Rates, currency string) error
	Clear(ctx context.Context) error
}

// DisplayOptions control a single DisplayAmount call.
type DisplayOptions struct {
	// ForceRefresh bypasses the client cache and calls the converter.
	// Set only when the user actively changes their currency preference.
	ForceRefresh bool

	// RoundForDisplay applies display rounding even on the to-base leg,
	// which otherwise keeps full precision for persistence.
	RoundForDisplay bool
}

// DisplayService is the conversion facade consumed by presentation code.
// It prefers the client cache, falls back to the converter only on an
// explicit refresh, and otherwise degrades to returning the amount
// unconverted rather than blocking on a network call.
type DisplayService struct {
	converter Converter
	cache     ClientRateCache
	base      string
	strict    bool
}

// NewDisplayService creates a new facade. In strict mode a missing rate is
// an error instead of a silent no-op conversion.
func NewDisplayService(converter Converter, cache ClientRateCache, base string, strict bool) *DisplayService {
	if base == "" {
		base = models.BaseCurrency
	}
	return &DisplayService{
		converter: converter,
		cache:     cache,
		base:      base,
		strict:    strict,
	}
}

// DisplayAmount converts amount from one currency to another for display.
//
// A cached rate is applied locally with the same multiply/divide direction
// logic as the conversion endpoint: multiply when going from the base
// currency, divide when going back to it. Conversions to the base currency
// keep full precision (they feed persistence); everything else gets
// currency-specific display rounding.
func (svc *DisplayService) DisplayAmount(ctx context.Context, amount float64, from, to string, opts DisplayOptions) (float64, error) {
	if from == to {
		return amount, nil
	}

	target := svc.nonBaseLeg(from, to)

	if target != "" && !opts.ForceRefresh {
		if rates, ok := svc.cache.Get(ctx, target); ok {
			if rate, ok := rates[target]; ok && rate != 0 {
				if from == svc.base {
					return svc.finish(amount*rate, to, opts), nil
				}
				return svc.finish(amount/rate, to, opts), nil
			}
		}
	}

	if opts.ForceRefresh {
		conv, err := svc.converter.Convert(ctx, amount, from, to, true)
		if err != nil {
			// The user explicitly asked for a refresh, so surface the
			// failure instead of degrading silently.
			logger.Log.Errorw("forced conversion refresh failed",
				"from", from, "to", to, "error", err)
			return amount, err
		}

		if target != "" && conv.Rate != 0 {
			svc.storeRate(ctx, target, from, conv.Rate)
		}

		return svc.finish(conv.ConvertedAmount, to, opts), nil
	}

	// No cached rate and no refresh requested: degrade to a no-op
	// conversion rather than blocking the caller on a network call.
	logger.Log.Debugw("no cached rate, returning amount unconverted",
		"from", from, "to", to)
	if svc.strict {
		return amount, ErrRateUnavailable
	}
	return amount, nil
}

// ChangeCurrency clears the client cache and warms it for the new active
// currency. Stale rates for the previous currency must never leak into the
// new currency's conversions. The returned error is user-visible: a failed
// refresh after an explicit currency change should produce a notification.
func (svc *DisplayService) ChangeCurrency(ctx context.Context, currency string) error {
	if err := svc.cache.Clear(ctx); err != nil {
		logger.Log.Errorw("failed to clear client rate cache", "error", err)
	}

	if currency == svc.base {
		return nil
	}

	_, err := svc.DisplayAmount(ctx, 1, svc.base, currency, DisplayOptions{ForceRefresh: true})
	return err
}

// nonBaseLeg returns whichever of from/to is not the base currency, or ""
// for a cross-currency pair, which the single-slot client cache cannot serve.
func (svc *DisplayService) nonBaseLeg(from, to string) string {
	switch {
	case from == svc.base:
		return to
	case to == svc.base:
		return from
	default:
		return ""
	}
}

// storeRate writes the returned rate into the client cache keyed by the
// non-base currency. Rates for the same target already cached are kept when
// converting away from base, mirroring how the record accumulates.
func (svc *DisplayService) storeRate(ctx context.Context, target, from string, rate float64) {
	rates := models.Rates{target: rate}
	if from == svc.base {
		if cached, ok := svc.cache.Get(ctx, target); ok {
			for code, r := range cached {
				if code != target {
					rates[code] = r
				}
			}
		}
	}
	if err := svc.cache.Set(ctx, rates, target); err != nil {
		logger.Log.Errorw("failed to write client rate cache",
			"currency", target, "error", err)
	}
}

// finish applies the display rounding policy: conversions to the base
// currency keep full precision unless rounding was explicitly requested.
func (svc *DisplayService) finish(amount float64, to string, opts DisplayOptions) float64 {
	if to == svc.base && !opts.RoundForDisplay {
		return amount
	}
	return models.RoundForDisplay(amount, to)
}
