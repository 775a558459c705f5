package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/CodeWithhamza1/financeflow/internal/models"
	"github.com/CodeWithhamza1/financeflow/internal/services"
)

// AmountDisplayer produces display-ready converted amounts.
type AmountDisplayer interface {
	DisplayAmount(ctx context.Context, amount float64, from, to string, opts services.DisplayOptions) (float64, error)
}

// NewDisplayHandler handles display conversion requests.
// @Summary Convert an amount for display
// @Description Converts an amount using the client-tier rate cache where possible and applies currency-specific display rounding. Without a cached rate and without refresh the amount is returned unconverted.
// @Tags currency
// @Produce json
// @Param from query string false "Source currency code" default(USD)
// @Param to query string false "Target currency code" default(USD)
// @Param amount query number false "Amount to convert" default(1)
// @Param refresh query string false "Set to true to bypass the client cache"
// @Param round query string false "Set to true to apply display rounding even when converting to the base currency"
// @Success 200 {object} models.DisplayResponse "Display-ready amount"
// @Failure 400 {object} models.ConversionErrorResponse "Invalid amount"
// @Failure 502 {object} models.ConversionErrorResponse "Failed to refresh exchange rates"
// @Router /api/currency/display [get]
func NewDisplayHandler(displayer AmountDisplayer) http.HandlerFunc {
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

		opts := services.DisplayOptions{
			ForceRefresh:    q.Get("refresh") == "true",
			RoundForDisplay: q.Get("round") == "true",
		}

		display, err := displayer.DisplayAmount(r.Context(), amount, from, to, opts)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			_ = json.NewEncoder(w).Encode(models.ConversionErrorResponse{
				Error: "Failed to refresh exchange rates",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.DisplayResponse{
			DisplayAmount: display,
			Formatted:     models.FormatAmount(display, to),
			Currency:      to,
		})
	}
}

// RegisterDisplayHandler registers the display route.
func RegisterDisplayHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/api/currency/display", h)
}
