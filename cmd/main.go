package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sbilibin2017/currency-converter-api/docs"
	"github.com/sbilibin2017/currency-converter-api/internal/logger"
	"github.com/sbilibin2017/currency-converter-api/internal/middlewares"
	"github.com/sbilibin2017/currency-converter-api/internal/repositories"
	"github.com/sbilibin2017/currency-converter-api/internal/router"
	"github.com/sbilibin2017/currency-converter-api/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds the service configuration read from the environment.
type config struct {
	AppHost           string        `env:"APP_HOST" env-default:"0.0.0.0"`
	AppPort           string        `env:"APP_PORT" env-default:"8080"`
	LogLevel          string        `env:"APP_LOG_LEVEL" env-default:"info"`
	InstanceName      string        `env:"INSTANCE_NAME" env-default:"Default"`
	ShutdownTimeout   time.Duration `env:"APP_SHUTDOWN_TIMEOUT" env-default:"10s"`
	ReadHeaderTimeout time.Duration `env:"APP_READ_HEADER_TIMEOUT" env-default:"5s"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-default:"*" env-separator:","`
	CORSMaxAgeSeconds  int      `env:"CORS_MAX_AGE_SECONDS" env-default:"3600"`

	MetricsEnabled bool `env:"METRICS_ENABLED" env-default:"true"`
}

// @title Currency Converter API
// @version 1.0.0
// @description Exchange rates between a fixed set of currencies
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from an optional file and reads
// them into the service configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	var cfg config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	return &cfg, nil
}

// run initializes the logger, the rate table, and the HTTP server.
// It blocks until ctx is cancelled or a shutdown signal arrives.
func run(ctx context.Context, cfg *config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	table := repositories.NewDefaultRateTable()
	svc := services.NewCurrencyService(table)
	log.Infow("Rate table loaded", "currencies", len(table.SupportedCurrencies()))

	addr := net.JoinHostPort(cfg.AppHost, cfg.AppPort)
	docs.SwaggerInfo.Host = addr

	cors := middlewares.DefaultCORSOptions()
	cors.AllowedOrigins = cfg.CORSAllowedOrigins
	cors.MaxAge = cfg.CORSMaxAgeSeconds

	opts := router.Options{
		InstanceName: cfg.InstanceName,
		CORS:         cors,
	}
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		opts.Metrics = middlewares.NewHTTPMetrics(reg)
		opts.MetricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           router.New(svc, log, opts),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infow("HTTP server listening", "addr", addr, "instance", cfg.InstanceName)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
