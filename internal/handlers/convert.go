package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/CodeWithhamza1/financeflow/internal/models"
	"github.com/CodeWithhamza1/financeflow/internal/services"
)

// CurrencyConverter defines the conversion operation the handler depends on.
type CurrencyConverter interface {
	Convert(ctx context.Context, amount float64, from, to string, forceRefresh bool) (*models.Conversion, error)
}

// NewConvertHandler handles currency conversion requests.
// @Summary Convert an amount between currencies
// @Description Converts an amount from one currency to another, normalizing through the base currency. The returned rate can be cached by the caller and reused for the inverse conversion.
// @Tags currency
// @Produce json
// @Param from query string false "Source currency code" default(USD)
// @Param to query string false "Target currency code" default(USD)
// @Param amount query number false "Amount to convert" default(1)
// @Param refresh query string false "Set to true to bypass the rate cache"
// @Success 200 {object} models.ConversionResponse "Conversion result"
// @Failure 400 {object} models.ConversionErrorResponse "Invalid amount or unsupported currency"
// @Failure 500 {object} models.ConversionErrorResponse "Failed to convert currency"
// @Router /api/currency/convert [get]
func NewConvertHandler(converter CurrencyConverter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		from := q.Get("from")
		if from == "" {
			from = models.BaseCurrency
		}
		to := q.Get("to")
		if to == "" {
			to = models.BaseCurrency
		}

		amount := 1.0
		if raw := q.Get("amount"); raw != "" {
			parsed, err := strconv.ParseFloat(raw, 64)
			if err != nil || parsed < 0 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(models.ConversionErrorResponse{
					Error: "Invalid amount",
				})
				return
			}
			amount = parsed
		}

		forceRefresh := q.Get("refresh") == "true"

		conv, err := converter.Convert(r.Context(), amount, from, to, forceRefresh)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")

			var unsupported *services.UnsupportedCurrencyError
			if errors.As(err, &unsupported) {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(models.ConversionErrorResponse{
					Error: "Invalid currency code: " + unsupported.Code,
				})
				return
			}

			// Upstream fetch or parse failures surface as a fixed message;
			// no provider detail leaks into the response body.
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(models.ConversionErrorResponse{
				Error: "Failed to convert currency",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.ConversionResponse{
			ConvertedAmount: conv.ConvertedAmount,
			Rate:            conv.Rate,
			From:            conv.From,
			To:              conv.To,
		})
	}
}

// RegisterConvertHandler registers the conversion route.
func RegisterConvertHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/api/currency/convert", h)
}
