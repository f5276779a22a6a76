package models

// ConversionRatesResponse is the payload of a successful conversion lookup,
// keyed by the lowercase base currency: {"usd": {"eur": 0.92, ...}}.
// swagger:model ConversionRatesResponse
type ConversionRatesResponse map[string]map[string]float64

// ErrorResponse represents a client-visible error.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error category
	// example: Currency not supported
	Error string `json:"error"`

	// Human-readable message
	// example: The currency code 'xyz' is not supported
	Message string `json:"message"`

	// Supported currency codes, set only for unsupported currency errors
	// example: ["usd","eur","gbp","inr","jpy","cny"]
	SupportedCurrencies []string `json:"supportedCurrencies,omitempty"`
}

// SupportedCurrenciesResponse lists every supported base currency.
// swagger:model SupportedCurrenciesResponse
type SupportedCurrenciesResponse struct {
	// Lowercase currency codes
	// example: ["usd","eur","gbp","inr","jpy","cny"]
	SupportedCurrencies []string `json:"supportedCurrencies"`

	// Number of supported currencies
	// example: 6
	Count int `json:"count"`
}

// HealthResponse reports service liveness.
// swagger:model HealthResponse
type HealthResponse struct {
	// example: UP
	Status string `json:"status"`

	// example: Currency Converter API
	Service string `json:"service"`
}
