package repositories

import "github.com/sbilibin2017/currency-converter-api/internal/models"

// DefaultRates is the fixed seed the service starts with.
func DefaultRates() []BaseRates {
	return []BaseRates{
		{Base: models.USD, Rates: map[models.CurrencyCode]float64{
			models.INR: 83.25,
			models.EUR: 0.92,
			models.GBP: 0.79,
			models.JPY: 149.50,
			models.CNY: 7.24,
			models.CAD: 1.36,
			models.AUD: 1.53,
			models.CHF: 0.88,
			models.SGD: 1.35,
			models.KRW: 1320.50,
		}},
		{Base: models.EUR, Rates: map[models.CurrencyCode]float64{
			models.USD: 1.09,
			models.INR: 90.75,
			models.GBP: 0.86,
			models.JPY: 163.20,
			models.CNY: 7.89,
			models.CAD: 1.48,
			models.AUD: 1.67,
			models.CHF: 0.96,
			models.SGD: 1.47,
			models.KRW: 1440.30,
		}},
		{Base: models.GBP, Rates: map[models.CurrencyCode]float64{
			models.USD: 1.27,
			models.INR: 105.50,
			models.EUR: 1.16,
			models.JPY: 189.80,
			models.CNY: 9.18,
			models.CAD: 1.72,
			models.AUD: 1.94,
			models.CHF: 1.12,
			models.SGD: 1.71,
			models.KRW: 1675.40,
		}},
		{Base: models.INR, Rates: map[models.CurrencyCode]float64{
			models.USD: 0.012,
			models.EUR: 0.011,
			models.GBP: 0.0095,
			models.JPY: 1.80,
			models.CNY: 0.087,
			models.CAD: 0.016,
			models.AUD: 0.018,
			models.CHF: 0.011,
			models.SGD: 0.016,
			models.KRW: 15.87,
		}},
		{Base: models.JPY, Rates: map[models.CurrencyCode]float64{
			models.USD: 0.0067,
			models.INR: 0.56,
			models.EUR: 0.0061,
			models.GBP: 0.0053,
			models.CNY: 0.048,
			models.CAD: 0.0091,
			models.AUD: 0.010,
			models.CHF: 0.0059,
			models.SGD: 0.0090,
			models.KRW: 8.83,
		}},
		{Base: models.CNY, Rates: map[models.CurrencyCode]float64{
			models.USD: 0.138,
			models.INR: 11.50,
			models.EUR: 0.127,
			models.GBP: 0.109,
			models.JPY: 20.65,
			models.CAD: 0.188,
			models.AUD: 0.211,
			models.CHF: 0.122,
			models.SGD: 0.186,
			models.KRW: 182.45,
		}},
	}
}

// NewDefaultRateTable builds the table from DefaultRates.
// It panics if the seed is invalid.
func NewDefaultRateTable() *RateTable {
	t, err := NewRateTable(DefaultRates()...)
	if err != nil {
		panic(err)
	}
	return t
}
