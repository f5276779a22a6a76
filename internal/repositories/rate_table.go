package repositories

import (
	"errors"
	"fmt"

	"github.com/sbilibin2017/currency-converter-api/internal/models"
)

var (
	ErrEmptyRateTable      = errors.New("rate table has no base currencies")
	ErrInvalidCurrencyCode = errors.New("currency code must be 3 uppercase letters")
	ErrInvalidRate         = errors.New("exchange rate must be positive")
	ErrDuplicateBase       = errors.New("duplicate base currency")
)

// BaseRates is one row of the rate table seed.
type BaseRates struct {
	Base  models.CurrencyCode
	Rates map[models.CurrencyCode]float64
}

// RateTable is a read-only mapping of base currency to target rates.
// It is built once and never mutated, so it is safe for concurrent use.
type RateTable struct {
	order []models.CurrencyCode
	rates map[models.CurrencyCode]map[models.CurrencyCode]float64
}

// NewRateTable validates the seed and copies it into a new table.
// The order of the seed is the order of SupportedCurrencies.
func NewRateTable(seed ...BaseRates) (*RateTable, error) {
	if len(seed) == 0 {
		return nil, ErrEmptyRateTable
	}

	t := &RateTable{
		order: make([]models.CurrencyCode, 0, len(seed)),
		rates: make(map[models.CurrencyCode]map[models.CurrencyCode]float64, len(seed)),
	}

	for _, row := range seed {
		if !validCode(row.Base) {
			return nil, fmt.Errorf("base %q: %w", row.Base, ErrInvalidCurrencyCode)
		}
		if _, ok := t.rates[row.Base]; ok {
			return nil, fmt.Errorf("base %q: %w", row.Base, ErrDuplicateBase)
		}

		targets := make(map[models.CurrencyCode]float64, len(row.Rates))
		for target, rate := range row.Rates {
			if !validCode(target) {
				return nil, fmt.Errorf("base %q target %q: %w", row.Base, target, ErrInvalidCurrencyCode)
			}
			if rate <= 0 {
				return nil, fmt.Errorf("base %q target %q: %w", row.Base, target, ErrInvalidRate)
			}
			targets[target] = rate
		}

		t.order = append(t.order, row.Base)
		t.rates[row.Base] = targets
	}

	return t, nil
}

// RatesFor returns a copy of the rates for base. ok is false exactly when
// base is not a supported currency.
func (t *RateTable) RatesFor(base models.CurrencyCode) (map[models.CurrencyCode]float64, bool) {
	targets, ok := t.rates[base]
	if !ok {
		return nil, false
	}

	out := make(map[models.CurrencyCode]float64, len(targets))
	for code, rate := range targets {
		out[code] = rate
	}
	return out, true
}

// SupportedCurrencies returns the base currencies in seed order.
func (t *RateTable) SupportedCurrencies() []models.CurrencyCode {
	out := make([]models.CurrencyCode, len(t.order))
	copy(out, t.order)
	return out
}

func validCode(c models.CurrencyCode) bool {
	if len(c) != 3 {
		return false
	}
	for i := 0; i < len(c); i++ {
		if c[i] < 'A' || c[i] > 'Z' {
			return false
		}
	}
	return true
}
