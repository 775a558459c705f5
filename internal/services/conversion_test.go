package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeWithhamza1/financeflow/internal/models"
)

func TestConversionService_Identity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No GetRates expectation: the identity path must not touch the cache
	rates := NewMockRatesProvider(ctrl)
	svc := NewConversionService(rates, "USD")

	conv, err := svc.Convert(context.Background(), 123.45, "EUR", "EUR", false)
	require.NoError(t, err)
	assert.Equal(t, 123.45, conv.ConvertedAmount)
	assert.Equal(t, 1.0, conv.Rate)
	assert.Equal(t, "EUR", conv.From)
	assert.Equal(t, "EUR", conv.To)
}

func TestConversionService_FromBase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	rates := NewMockRatesProvider(ctrl)
	rates.EXPECT().
		GetRates(ctx, "USD", false).
		Return(models.Rates{"PKR": 283.5, "EUR": 0.85}, nil)

	svc := NewConversionService(rates, "USD")

	conv, err := svc.Convert(ctx, 100, "USD", "PKR", false)
	require.NoError(t, err)
	assert.InDelta(t, 28350, conv.ConvertedAmount, 1e-9)
	assert.InDelta(t, 283.5, conv.Rate, 1e-9)
}

func TestConversionService_ToBaseReturnsFromLegRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	rates := NewMockRatesProvider(ctrl)
	rates.EXPECT().
		GetRates(ctx, "USD", false).
		Return(models.Rates{"PKR": 283.5}, nil)

	svc := NewConversionService(rates, "USD")

	conv, err := svc.Convert(ctx, 28350, "PKR", "USD", false)
	require.NoError(t, err)
	assert.InDelta(t, 100, conv.ConvertedAmount, 1e-9)

	// The returned rate is the from-leg rate so the caller can reuse the
	// same value for the inverse conversion
	assert.InDelta(t, 283.5, conv.Rate, 1e-9)
}

func TestConversionService_CrossCurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	rates := NewMockRatesProvider(ctrl)

	// One snapshot serves both legs: a single GetRates call
	rates.EXPECT().
		GetRates(ctx, "USD", false).
		Return(models.Rates{"EUR": 0.85, "PKR": 283.5}, nil)

	svc := NewConversionService(rates, "USD")

	conv, err := svc.Convert(ctx, 85, "EUR", "PKR", false)
	require.NoError(t, err)

	// 85 EUR -> 100 USD -> 28350 PKR
	assert.InDelta(t, 28350, conv.ConvertedAmount, 1e-6)
	assert.InDelta(t, 283.5, conv.Rate, 1e-9)
}

func TestConversionService_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	snapshot := models.Rates{"PKR": 283.456789, "EUR": 0.8473}
	rates := NewMockRatesProvider(ctrl)
	rates.EXPECT().GetRates(ctx, "USD", false).Return(snapshot, nil).Times(2)

	svc := NewConversionService(rates, "USD")

	amount := 1234.56
	forward, err := svc.Convert(ctx, amount, "USD", "PKR", false)
	require.NoError(t, err)

	back, err := svc.Convert(ctx, forward.ConvertedAmount, "PKR", "USD", false)
	require.NoError(t, err)

	// Round-trip recovers the original amount within 1e-9 relative error
	relErr := math.Abs(back.ConvertedAmount-amount) / amount
	assert.Less(t, relErr, 1e-9)
}

func TestConversionService_UnsupportedCurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	snapshot := models.Rates{"EUR": 0.85}

	tests := []struct {
		name     string
		from, to string
		wantCode string
	}{
		{"unknown_target", "USD", "ZZZ", "ZZZ"},
		{"unknown_source", "ZZZ", "USD", "ZZZ"},
		{"unknown_source_cross", "ZZZ", "EUR", "ZZZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rates := NewMockRatesProvider(ctrl)
			rates.EXPECT().GetRates(ctx, "USD", false).Return(snapshot, nil)

			svc := NewConversionService(rates, "USD")

			_, err := svc.Convert(ctx, 100, tt.from, tt.to, false)
			require.Error(t, err)

			var unsupported *UnsupportedCurrencyError
			require.True(t, errors.As(err, &unsupported))

			// The error names the offending code; it never silently
			// defaults to a rate of 1
			assert.Equal(t, tt.wantCode, unsupported.Code)
		})
	}
}

func TestConversionService_RatesFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	rates := NewMockRatesProvider(ctrl)
	rates.EXPECT().
		GetRates(ctx, "USD", false).
		Return(nil, errors.New("provider unreachable"))

	svc := NewConversionService(rates, "USD")

	_, err := svc.Convert(ctx, 100, "USD", "EUR", false)
	assert.Error(t, err)
}

func TestConversionService_ForceRefreshPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	rates := NewMockRatesProvider(ctrl)
	rates.EXPECT().
		GetRates(ctx, "USD", true).
		Return(models.Rates{"EUR": 0.85}, nil)

	svc := NewConversionService(rates, "USD")

	_, err := svc.Convert(ctx, 100, "USD", "EUR", true)
	assert.NoError(t, err)
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 0.1, roundTo(0.1, 15))
	assert.Equal(t, 1.0, roundTo(0.9999999999999999, 15))
	assert.Equal(t, 283.5, roundTo(283.5, 15))
}
