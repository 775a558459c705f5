package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/CodeWithhamza1/financeflow/internal/models"
)

// RatesReader serves base-relative exchange rates.
type RatesReader interface {
	GetRates(ctx context.Context, base string, forceRefresh bool) (models.Rates, error)
}

// NewGetRatesHandler handles fetching the current exchange rate snapshot.
// @Summary Get exchange rates
// @Description Returns current exchange rates for all supported currencies, relative to the base currency
// @Tags currency
// @Produce json
// @Param refresh query string false "Set to true to bypass the rate cache"
// @Success 200 {object} models.RatesResponse "Exchange rates"
// @Failure 500 {object} models.RatesErrorResponse "Failed to retrieve exchange rates"
// @Router /api/currency/rates [get]
func NewGetRatesHandler(reader RatesReader, base string) http.HandlerFunc {
	if base == "" {
		base = models.BaseCurrency
	}
	return func(w http.ResponseWriter, r *http.Request) {
		forceRefresh := r.URL.Query().Get("refresh") == "true"

		rates, err := reader.GetRates(r.Context(), base, forceRefresh)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(models.RatesErrorResponse{
				Error: "Failed to retrieve exchange rates",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.RatesResponse{
			Base:  base,
			Rates: rates,
		})
	}
}

// RegisterGetRatesHandler registers the rates route.
func RegisterGetRatesHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/api/currency/rates", h)
}
