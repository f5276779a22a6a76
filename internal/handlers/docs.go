package handlers

import (
	"net/http"

	"github.com/swaggo/swag"
	"go.uber.org/zap"
)

// NewAPIDocsHandler serves the registered OpenAPI document.
func NewAPIDocsHandler(log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			log.Errorw("failed to read OpenAPI document", "error", err)
			http.Error(w, "OpenAPI specification not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(doc))
	}
}

// NewSwaggerRedirectHandler sends /swagger to the Swagger UI index.
func NewSwaggerRedirectHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	}
}
