package models

// Conversion is the result of converting an amount between two currencies.
//
// Rate is the exact numeric factor that was applied, chosen per direction so
// that the same value serves both the forward and the inverse conversion:
// callers multiply by Rate when converting from the base currency and divide
// by it when converting back to the base currency. One stored rate per
// non-base currency is enough, never two.
type Conversion struct {
	ConvertedAmount float64 `json:"convertedAmount"`
	Rate            float64 `json:"rate"`
	From            string  `json:"from"`
	To              string  `json:"to"`
}

// ConversionResponse represents a successful conversion response
// swagger:model ConversionResponse
type ConversionResponse struct {
	// Converted amount, rounded to 15 decimal places
	// example: 28350
	ConvertedAmount float64 `json:"convertedAmount"`

	// Exchange rate applied (target currency units per base unit)
	// example: 283.5
	Rate float64 `json:"rate"`

	// Source currency code
	// example: USD
	From string `json:"from"`

	// Target currency code
	// example: PKR
	To string `json:"to"`
}

// ConversionErrorResponse represents a failed conversion response
// swagger:model ConversionErrorResponse
type ConversionErrorResponse struct {
	// Error message
	// example: Failed to convert currency
	Error string `json:"error"`
}

// DisplayResponse represents a display-ready converted amount
// swagger:model DisplayResponse
type DisplayResponse struct {
	// Amount after conversion and display rounding
	// example: 28350
	DisplayAmount float64 `json:"displayAmount"`

	// Amount formatted with the target currency symbol
	// example: ₨28,350
	Formatted string `json:"formatted"`

	// Target currency code
	// example: PKR
	Currency string `json:"currency"`
}
