package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sbilibin2017/currency-converter-api/internal/middlewares"
	"github.com/sbilibin2017/currency-converter-api/internal/models"
)

//go:generate mockgen -source=conversion.go -destination=mock_conversion.go -package=handlers

// CurrencyCodeParam is the path parameter holding the base currency.
const CurrencyCodeParam = "currencyCode"

// CurrencyConverter defines the interface that the service must implement.
type CurrencyConverter interface {
	GetConversionRates(code string) (*models.ConversionResponse, bool)
	GetSupportedCurrencies() []models.CurrencyCode
}

// NewGetConversionRatesHandler returns an HTTP handler for fetching the rates of one base currency.
// @Summary Get conversion rates
// @Description Returns the rates of the base currency against every other supported currency. The code is case-insensitive.
// @Tags currency
// @Produce json
// @Param currencyCode path string true "Base currency code" example(usd)
// @Success 200 {object} models.ConversionRatesResponse "Rates keyed by lowercase base currency"
// @Failure 400 {object} models.ErrorResponse "Missing or unsupported currency code"
// @Router /{currencyCode} [get]
func NewGetConversionRatesHandler(svc CurrencyConverter, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := strings.TrimSpace(chi.URLParam(r, CurrencyCodeParam))
		if code == "" {
			middlewares.WriteJSON(w, http.StatusBadRequest, models.ErrorResponse{
				Error:   "Invalid request",
				Message: "Currency code is required",
			})
			return
		}

		resp, ok := svc.GetConversionRates(code)
		if !ok {
			log.Debugw("unsupported currency requested",
				"request_id", middlewares.GetRequestID(r.Context()),
				"code", code,
			)
			middlewares.WriteJSON(w, http.StatusBadRequest, models.ErrorResponse{
				Error:               "Currency not supported",
				Message:             fmt.Sprintf("The currency code '%s' is not supported", code),
				SupportedCurrencies: lowercaseCodes(svc.GetSupportedCurrencies()),
			})
			return
		}

		log.Debugw("conversion rates served",
			"request_id", middlewares.GetRequestID(r.Context()),
			"base", resp.BaseCurrency,
			"targets", len(resp.Rates),
		)

		middlewares.WriteJSON(w, http.StatusOK, models.ConversionRatesResponse{
			resp.BaseCurrency.Lower(): resp.LowercaseRates(),
		})
	}
}

func lowercaseCodes(codes []models.CurrencyCode) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		out = append(out, c.Lower())
	}
	return out
}
