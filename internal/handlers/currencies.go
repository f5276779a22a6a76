package handlers

import (
	"net/http"

	"github.com/sbilibin2017/currency-converter-api/internal/middlewares"
	"github.com/sbilibin2017/currency-converter-api/internal/models"
)

// SupportedCurrenciesLister lists the supported base currencies.
type SupportedCurrenciesLister interface {
	GetSupportedCurrencies() []models.CurrencyCode
}

// NewGetSupportedCurrenciesHandler returns an HTTP handler listing supported currencies.
// @Summary List supported currencies
// @Description Returns every supported base currency in lowercase with the total count
// @Tags currency
// @Produce json
// @Success 200 {object} models.SupportedCurrenciesResponse
// @Router /currencies [get]
func NewGetSupportedCurrenciesHandler(svc SupportedCurrenciesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		codes := lowercaseCodes(svc.GetSupportedCurrencies())

		middlewares.WriteJSON(w, http.StatusOK, models.SupportedCurrenciesResponse{
			SupportedCurrencies: codes,
			Count:               len(codes),
		})
	}
}
