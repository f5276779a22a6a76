package handlers

import (
	"fmt"
	"net/http"

	"github.com/sbilibin2017/currency-converter-api/internal/middlewares"
	"github.com/sbilibin2017/currency-converter-api/internal/models"
)

// NewNotFoundHandler answers requests that match no route.
func NewNotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		middlewares.WriteJSON(w, http.StatusNotFound, models.ErrorResponse{
			Error:   "Not found",
			Message: fmt.Sprintf("No route for %s %s", r.Method, r.URL.Path),
		})
	}
}

// NewMethodNotAllowedHandler answers requests whose path exists under another method.
func NewMethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		middlewares.WriteJSON(w, http.StatusMethodNotAllowed, models.ErrorResponse{
			Error:   "Method not allowed",
			Message: fmt.Sprintf("Method %s is not allowed for %s", r.Method, r.URL.Path),
		})
	}
}
