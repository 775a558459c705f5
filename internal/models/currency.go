package models

import (
	"math"
	"strconv"
	"strings"
)

// Supported currency code constants. The fetched rate set from the provider
// covers far more codes; these are the ones the application references directly.
const (
	USD = "USD"
	EUR = "EUR"
	GBP = "GBP"
	JPY = "JPY"
	CAD = "CAD"
	AUD = "AUD"
	CHF = "CHF"
	CNY = "CNY"
	INR = "INR"
	PKR = "PKR"
	KRW = "KRW"
	VND = "VND"
	IDR = "IDR"
)

// BaseCurrency is the fixed reference currency all fetched rates are
// expressed against.
const BaseCurrency = USD

// zeroDecimalCurrencies are conventionally quoted without minor units.
var zeroDecimalCurrencies = map[string]struct{}{
	JPY: {},
	PKR: {},
	KRW: {},
	VND: {},
	IDR: {},
}

var currencySymbols = map[string]string{
	USD: "$",
	EUR: "€",
	GBP: "£",
	JPY: "¥",
	CAD: "C$",
	AUD: "A$",
	CHF: "Fr",
	CNY: "¥",
	INR: "₹",
	PKR: "₨",
}

// DisplayPrecision returns the number of fraction digits used when an amount
// in the given currency is shown to the user: 0 for zero-decimal currencies,
// 2 for everything else.
func DisplayPrecision(currency string) int {
	if _, ok := zeroDecimalCurrencies[currency]; ok {
		return 0
	}
	return 2
}

// RoundForDisplay rounds an amount to the display precision of the currency.
// This is display-only rounding; amounts headed for persistence keep full
// precision.
func RoundForDisplay(amount float64, currency string) float64 {
	if DisplayPrecision(currency) == 0 {
		return math.Round(amount)
	}
	return math.Round(amount*100) / 100
}

// Symbol returns the symbol for a currency code, falling back to the code
// itself for currencies without a well-known symbol.
func Symbol(currency string) string {
	if s, ok := currencySymbols[currency]; ok {
		return s
	}
	return currency
}

// FormatAmount renders an already-converted amount with the currency symbol,
// display precision and thousand separators, e.g. "₨28,350" or "$12,345.67".
func FormatAmount(amount float64, currency string) string {
	precision := DisplayPrecision(currency)
	formatted := strconv.FormatFloat(amount, 'f', precision, 64)

	neg := strings.HasPrefix(formatted, "-")
	if neg {
		formatted = formatted[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(formatted, ".")
	intPart = groupThousands(intPart)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(Symbol(currency))
	b.WriteString(intPart)
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
