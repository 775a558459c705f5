package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/CodeWithhamza1/financeflow/internal/logger"
	"github.com/CodeWithhamza1/financeflow/internal/models"
)

// resultPrecision is deliberately far higher than display precision so that
// repeated round-trip conversions do not compound rounding error.
const resultPrecision = 15

// UnsupportedCurrencyError reports a currency code absent from the fetched
// rate set. Conversions never silently fall back to a rate of 1.
type UnsupportedCurrencyError struct {
	Code string
}

func (e *UnsupportedCurrencyError) Error() string {
	return fmt.Sprintf("unsupported currency code: %s", e.Code)
}

// RatesProvider serves base-relative exchange rates.
type RatesProvider interface {
	GetRates(ctx context.Context, base string, forceRefresh bool) (models.Rates, error)
}

// ConversionService converts amounts between currencies, normalizing every
// conversion through the base currency.
type ConversionService struct {
	rates RatesProvider
	base  string
}

// NewConversionService creates a new service instance. An empty base falls
// back to models.BaseCurrency.
func NewConversionService(rates RatesProvider, base string) *ConversionService {
	if base == "" {
		base = models.BaseCurrency
	}
	return &ConversionService{
		rates: rates,
		base:  base,
	}
}

// Convert converts amount from one currency to another.
//
// The returned Rate is chosen per direction so the caller can reuse one
// stored value for both legs: when converting back to the base currency the
// from-leg rate is returned, so a later base-to-currency conversion can
// multiply by the very same factor the divide used.
func (svc *ConversionService) Convert(ctx context.Context, amount float64, from, to string, forceRefresh bool) (*models.Conversion, error) {
	if from == to {
		return &models.Conversion{
			ConvertedAmount: amount,
			Rate:            1,
			From:            from,
			To:              to,
		}, nil
	}

	// One base-relative snapshot serves both legs of the conversion.
	rates, err := svc.rates.GetRates(ctx, svc.base, forceRefresh)
	if err != nil {
		return nil, err
	}

	baseAmount := amount
	var fromRate float64
	if from != svc.base {
		var ok bool
		fromRate, ok = rates[from]
		if !ok || fromRate == 0 {
			return nil, &UnsupportedCurrencyError{Code: from}
		}
		baseAmount = amount / fromRate
	}

	rate := 1.0
	if to != svc.base {
		var ok bool
		rate, ok = rates[to]
		if !ok || rate == 0 {
			return nil, &UnsupportedCurrencyError{Code: to}
		}
	}

	converted := baseAmount * rate

	returnedRate := rate
	if to == svc.base && from != svc.base {
		returnedRate = fromRate
	}

	logger.Log.Debugw("converted amount",
		"amount", amount,
		"from", from,
		"to", to,
		"rate", returnedRate,
	)

	return &models.Conversion{
		ConvertedAmount: roundTo(converted, resultPrecision),
		Rate:            roundTo(returnedRate, resultPrecision),
		From:            from,
		To:              to,
	}, nil
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	s := strconv.FormatFloat(v, 'f', places, 64)
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return v
	}
	return r
}
