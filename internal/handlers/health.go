package handlers

import (
	"net/http"

	"github.com/sbilibin2017/currency-converter-api/internal/middlewares"
	"github.com/sbilibin2017/currency-converter-api/internal/models"
)

const (
	healthStatusUp = "UP"
	serviceName    = "Currency Converter API"
)

// NewHealthHandler returns the liveness handler.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		middlewares.WriteJSON(w, http.StatusOK, models.HealthResponse{
			Status:  healthStatusUp,
			Service: serviceName,
		})
	}
}
