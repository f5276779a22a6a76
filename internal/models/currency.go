package models

import "strings"

// CurrencyCode is a 3-letter currency identifier in canonical (uppercase) form.
type CurrencyCode string

// Default rate table currencies.
const (
	USD CurrencyCode = "USD"
	EUR CurrencyCode = "EUR"
	GBP CurrencyCode = "GBP"
	INR CurrencyCode = "INR"
	JPY CurrencyCode = "JPY"
	CNY CurrencyCode = "CNY"
	CAD CurrencyCode = "CAD"
	AUD CurrencyCode = "AUD"
	CHF CurrencyCode = "CHF"
	SGD CurrencyCode = "SGD"
	KRW CurrencyCode = "KRW"
)

// String returns the canonical form.
func (c CurrencyCode) String() string {
	return string(c)
}

// Lower returns the wire form used in response payloads.
func (c CurrencyCode) Lower() string {
	return strings.ToLower(string(c))
}

// ConversionResponse holds the rates of one base currency against every
// other supported currency.
type ConversionResponse struct {
	BaseCurrency CurrencyCode
	Rates        map[CurrencyCode]float64
}

// LowercaseRates returns the rates keyed by lowercase target code.
func (r *ConversionResponse) LowercaseRates() map[string]float64 {
	out := make(map[string]float64, len(r.Rates))
	for code, rate := range r.Rates {
		out[code.Lower()] = rate
	}
	return out
}
