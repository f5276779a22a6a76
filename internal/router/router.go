package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/sbilibin2017/currency-converter-api/internal/handlers"
	"github.com/sbilibin2017/currency-converter-api/internal/middlewares"
)

const defaultSwaggerDocURL = "/swagger/doc.json"

// Options configures the router.
type Options struct {
	InstanceName string
	CORS         middlewares.CORSOptions

	// Metrics enables request metrics when non-nil.
	Metrics *middlewares.HTTPMetrics
	// MetricsHandler is served at /metrics when non-nil.
	MetricsHandler http.Handler

	// SwaggerDocURL is where the Swagger UI loads the document from.
	SwaggerDocURL string
}

// Pipeline returns the middleware in the order a request passes through them:
// recovery, metrics, logging, CORS, content negotiation.
func Pipeline(log *zap.SugaredLogger, opts Options) []func(http.Handler) http.Handler {
	return append(sharedPipeline(log, opts), middlewares.ContentNegotiationMiddleware())
}

// sharedPipeline is the part of Pipeline every route runs through,
// including the documentation and metrics routes.
func sharedPipeline(log *zap.SugaredLogger, opts Options) []func(http.Handler) http.Handler {
	pipeline := []func(http.Handler) http.Handler{chimiddleware.Recoverer}
	if opts.Metrics != nil {
		pipeline = append(pipeline, middlewares.MetricsMiddleware(opts.Metrics))
	}
	return append(pipeline,
		middlewares.LoggingMiddleware(log, opts.InstanceName),
		middlewares.CORSMiddleware(opts.CORS),
	)
}

// New builds the HTTP handler of the service.
func New(svc handlers.CurrencyConverter, log *zap.SugaredLogger, opts Options) http.Handler {
	if opts.SwaggerDocURL == "" {
		opts.SwaggerDocURL = defaultSwaggerDocURL
	}

	r := chi.NewRouter()
	r.Use(sharedPipeline(log, opts)...)

	r.NotFound(handlers.NewNotFoundHandler())
	r.MethodNotAllowed(handlers.NewMethodNotAllowedHandler())

	// API routes are JSON only; static segments take precedence over the currency code.
	r.Group(func(r chi.Router) {
		r.Use(middlewares.ContentNegotiationMiddleware())

		conversionHandler := handlers.NewGetConversionRatesHandler(svc, log)

		r.Get("/api/currencies", handlers.NewGetSupportedCurrenciesHandler(svc))
		r.Get("/api/health", handlers.NewHealthHandler())
		r.Get("/api/{"+handlers.CurrencyCodeParam+"}", conversionHandler)
		r.Get("/api/", conversionHandler)
	})

	// Documentation
	r.Get("/api-docs", handlers.NewAPIDocsHandler(log))
	r.Get("/swagger", handlers.NewSwaggerRedirectHandler())
	r.Get("/swagger-ui", handlers.NewSwaggerRedirectHandler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(opts.SwaggerDocURL)))

	if opts.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", opts.MetricsHandler)
	}

	return r
}
