package models

import "time"

// Rates maps a currency code to its exchange rate, expressed as
// units of that currency per one unit of the base currency.
type Rates map[string]float64

// RateSnapshot is a server-side cache entry holding all rates fetched
// relative to a single base currency.
type RateSnapshot struct {
	Base      string    `json:"base"`
	Rates     Rates     `json:"rates"`
	FetchedAt time.Time `json:"fetched_at"`
}

// ClientRateRecord is the persisted client-tier cache entry. At most one
// record is retained at a time, keyed by the user's active target currency.
type ClientRateRecord struct {
	Rates     Rates  `json:"rates"`
	Timestamp int64  `json:"timestamp"` // unix milliseconds
	Currency  string `json:"currency"`
}

// RatesResponse represents a successful response with exchange rates
// swagger:model RatesResponse
type RatesResponse struct {
	// Base currency the rates are relative to
	// example: USD
	Base string `json:"base"`

	// Exchange rates keyed by currency code
	Rates Rates `json:"rates"`
}

// RatesErrorResponse represents an error response when fetching exchange rates
// swagger:model RatesErrorResponse
type RatesErrorResponse struct {
	// Error message
	// example: Failed to retrieve exchange rates
	Error string `json:"error"`
}
