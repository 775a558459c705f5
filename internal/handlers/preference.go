package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CurrencyChanger switches the active preferred currency, clearing the
// client-tier rate cache and warming it for the new currency.
type CurrencyChanger interface {
	ChangeCurrency(ctx context.Context, currency string) error
}

// PreferenceRequest represents the JSON body for a currency preference change
// swagger:model PreferenceRequest
type PreferenceRequest struct {
	// New preferred currency code
	// required: true
	// default: EUR
	Currency string `json:"currency"`
}

// PreferenceResponse represents a successful preference change
// swagger:model PreferenceResponse
type PreferenceResponse struct {
	// Success message
	// default: Currency preference updated
	Message string `json:"message"`

	// Active currency after the change
	// default: EUR
	Currency string `json:"currency"`
}

// PreferenceErrorResponse represents a failed preference change
// swagger:model PreferenceErrorResponse
type PreferenceErrorResponse struct {
	// Error message
	// default: Failed to refresh exchange rates
	Error string `json:"error"`
}

// NewCurrencyPreferenceHandler handles currency preference changes.
// @Summary Change the preferred currency
// @Description Clears cached rates for the previous currency and fetches fresh rates for the new one. Unlike background conversions, a failed refresh here is reported: the user took an explicit action expecting a result.
// @Tags currency
// @Accept json
// @Produce json
// @Param request body handlers.PreferenceRequest true "Preference Request"
// @Success 200 {object} handlers.PreferenceResponse "Preference updated"
// @Failure 400 {object} handlers.PreferenceErrorResponse "Invalid currency code"
// @Failure 502 {object} handlers.PreferenceErrorResponse "Failed to refresh exchange rates"
// @Router /api/currency/preference [post]
func NewCurrencyPreferenceHandler(changer CurrencyChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PreferenceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Currency == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(PreferenceErrorResponse{
				Error: "Invalid currency code",
			})
			return
		}

		if err := changer.ChangeCurrency(r.Context(), req.Currency); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			_ = json.NewEncoder(w).Encode(PreferenceErrorResponse{
				Error: "Failed to refresh exchange rates",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(PreferenceResponse{
			Message:  "Currency preference updated",
			Currency: req.Currency,
		})
	}
}

// RegisterCurrencyPreferenceHandler registers the preference route.
func RegisterCurrencyPreferenceHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/api/currency/preference", h)
}
