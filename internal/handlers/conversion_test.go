package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/currency-converter-api/internal/handlers"
	"github.com/sbilibin2017/currency-converter-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// withCurrencyCode attaches a chi route context carrying the path parameter.
func withCurrencyCode(r *http.Request, code string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(handlers.CurrencyCodeParam, code)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetConversionRatesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := handlers.NewMockCurrencyConverter(ctrl)
	handler := handlers.NewGetConversionRatesHandler(mockSvc, zap.NewNop().Sugar())

	supported := []models.CurrencyCode{models.USD, models.EUR, models.GBP, models.INR, models.JPY, models.CNY}

	tests := []struct {
		name      string
		code      string
		mockSetup func()
		wantCode  int
		wantBody  interface{}
	}{
		{
			name: "success",
			code: "usd",
			mockSetup: func() {
				mockSvc.EXPECT().
					GetConversionRates("usd").
					Return(&models.ConversionResponse{
						BaseCurrency: models.USD,
						Rates: map[models.CurrencyCode]float64{
							models.INR: 83.25,
							models.EUR: 0.92,
						},
					}, true)
			},
			wantCode: http.StatusOK,
			wantBody: map[string]interface{}{
				"usd": map[string]interface{}{
					"inr": 83.25,
					"eur": 0.92,
				},
			},
		},
		{
			name: "success_uppercase_input",
			code: "GBP",
			mockSetup: func() {
				mockSvc.EXPECT().
					GetConversionRates("GBP").
					Return(&models.ConversionResponse{
						BaseCurrency: models.GBP,
						Rates:        map[models.CurrencyCode]float64{models.USD: 1.27},
					}, true)
			},
			wantCode: http.StatusOK,
			wantBody: map[string]interface{}{
				"gbp": map[string]interface{}{"usd": 1.27},
			},
		},
		{
			name: "unsupported_currency",
			code: "xyz",
			mockSetup: func() {
				mockSvc.EXPECT().
					GetConversionRates("xyz").
					Return(nil, false)
				mockSvc.EXPECT().
					GetSupportedCurrencies().
					Return(supported)
			},
			wantCode: http.StatusBadRequest,
			wantBody: map[string]interface{}{
				"error":   "Currency not supported",
				"message": "The currency code 'xyz' is not supported",
				"supportedCurrencies": []interface{}{
					"usd", "eur", "gbp", "inr", "jpy", "cny",
				},
			},
		},
		{
			name:      "missing_code",
			code:      "",
			mockSetup: func() {},
			wantCode:  http.StatusBadRequest,
			wantBody: map[string]interface{}{
				"error":   "Invalid request",
				"message": "Currency code is required",
			},
		},
		{
			name:      "blank_code",
			code:      "   ",
			mockSetup: func() {},
			wantCode:  http.StatusBadRequest,
			wantBody: map[string]interface{}{
				"error":   "Invalid request",
				"message": "Currency code is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := withCurrencyCode(httptest.NewRequest(http.MethodGet, "/api/"+tt.code, nil), tt.code)
			w := httptest.NewRecorder()

			handler(w, req)

			res := w.Result()
			defer res.Body.Close()

			require.Equal(t, tt.wantCode, res.StatusCode)
			require.Equal(t, "application/json; charset=utf-8", res.Header.Get("Content-Type"))

			var body map[string]interface{}
			err := json.NewDecoder(res.Body).Decode(&body)
			require.NoError(t, err)
			require.Equal(t, tt.wantBody, body)
		})
	}
}

func TestGetConversionRatesHandler_LogsBusinessEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	core, logs := observer.New(zap.DebugLevel)
	mockSvc := handlers.NewMockCurrencyConverter(ctrl)
	handler := handlers.NewGetConversionRatesHandler(mockSvc, zap.New(core).Sugar())

	mockSvc.EXPECT().
		GetConversionRates("eur").
		Return(&models.ConversionResponse{
			BaseCurrency: models.EUR,
			Rates:        map[models.CurrencyCode]float64{models.USD: 1.09},
		}, true)
	mockSvc.EXPECT().GetConversionRates("xyz").Return(nil, false)
	mockSvc.EXPECT().GetSupportedCurrencies().Return([]models.CurrencyCode{models.EUR})

	handler(httptest.NewRecorder(), withCurrencyCode(httptest.NewRequest(http.MethodGet, "/api/eur", nil), "eur"))
	handler(httptest.NewRecorder(), withCurrencyCode(httptest.NewRequest(http.MethodGet, "/api/xyz", nil), "xyz"))

	served := logs.FilterMessage("conversion rates served").All()
	require.Len(t, served, 1)
	assert.Equal(t, zap.DebugLevel, served[0].Level)
	assert.Equal(t, int64(1), served[0].ContextMap()["targets"])

	unsupported := logs.FilterMessage("unsupported currency requested").All()
	require.Len(t, unsupported, 1)
	assert.Equal(t, "xyz", unsupported[0].ContextMap()["code"])
}
