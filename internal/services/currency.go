package services

import (
	"strings"

	"github.com/sbilibin2017/currency-converter-api/internal/models"
)

// RateReader is the read side of the rate table.
type RateReader interface {
	RatesFor(base models.CurrencyCode) (map[models.CurrencyCode]float64, bool)
	SupportedCurrencies() []models.CurrencyCode
}

// CurrencyService answers conversion queries against a rate table.
// It holds no mutable state.
type CurrencyService struct {
	rates RateReader
}

// NewCurrencyService creates a new service instance
func NewCurrencyService(rates RateReader) *CurrencyService {
	return &CurrencyService{rates: rates}
}

// NormalizeCode is the only place raw currency codes are canonicalized.
func NormalizeCode(code string) models.CurrencyCode {
	return models.CurrencyCode(strings.ToUpper(strings.TrimSpace(code)))
}

// GetConversionRates returns the rates for code, or false if the currency
// is not supported.
func (svc *CurrencyService) GetConversionRates(code string) (*models.ConversionResponse, bool) {
	base := NormalizeCode(code)

	rates, ok := svc.rates.RatesFor(base)
	if !ok {
		return nil, false
	}

	return &models.ConversionResponse{
		BaseCurrency: base,
		Rates:        rates,
	}, true
}

// GetSupportedCurrencies returns every supported base currency.
func (svc *CurrencyService) GetSupportedCurrencies() []models.CurrencyCode {
	return svc.rates.SupportedCurrencies()
}
