package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/CodeWithhamza1/financeflow/internal/facades"
	"github.com/CodeWithhamza1/financeflow/internal/handlers"
	"github.com/CodeWithhamza1/financeflow/internal/logger"
	"github.com/CodeWithhamza1/financeflow/internal/middlewares"
	"github.com/CodeWithhamza1/financeflow/internal/repositories"
	"github.com/CodeWithhamza1/financeflow/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title financeflow currency API
// @version 1.0.0
// @description Currency conversion and exchange-rate caching service
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		rateAPIURL, rateAPITimeout, rateAPIRetries,
		baseCurrency, rateCacheTTL, clientCacheTTL,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		converterAddr, strictConversion,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		rateAPIURL, rateAPITimeout, rateAPIRetries,
		baseCurrency, rateCacheTTL, clientCacheTTL,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		converterAddr, strictConversion,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, rate provider, cache, and Redis configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	rateAPIURL string, rateAPITimeout time.Duration, rateAPIRetries int,
	baseCurrency string, rateCacheTTL, clientCacheTTL time.Duration,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	converterAddr string, strictConversion bool,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Rate provider config
	rateAPIURL = getEnv("RATE_API_URL", facades.DefaultRateAPIURL)
	var timeoutSec int
	if timeoutSec, err = strconv.Atoi(getEnv("RATE_API_TIMEOUT_SECOND", "10")); err != nil {
		return
	}
	rateAPITimeout = time.Duration(timeoutSec) * time.Second
	if rateAPIRetries, err = strconv.Atoi(getEnv("RATE_API_RETRIES", "1")); err != nil {
		return
	}

	// Cache config
	baseCurrency = getEnv("BASE_CURRENCY", "USD")
	var rateTTLSec, clientTTLSec int
	if rateTTLSec, err = strconv.Atoi(getEnv("RATE_CACHE_TTL_SECOND", "86400")); err != nil {
		return
	}
	rateCacheTTL = time.Duration(rateTTLSec) * time.Second
	if clientTTLSec, err = strconv.Atoi(getEnv("CLIENT_CACHE_TTL_SECOND", "86400")); err != nil {
		return
	}
	clientCacheTTL = time.Duration(clientTTLSec) * time.Second

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Conversion config
	converterAddr = getEnv("CONVERTER_ADDR", "")
	strictConversion = getEnv("CONVERSION_STRICT", "false") == "true"

	return
}

// run initializes the logger and Redis, wires the rate facades, caches,
// services and handlers, and serves HTTP with graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	rateAPIURL string, rateAPITimeout time.Duration, rateAPIRetries int,
	baseCurrency string, rateCacheTTL, clientCacheTTL time.Duration,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	converterAddr string, strictConversion bool,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Initialize facades
	rateSource := facades.NewRateSourceFacade(rateAPIURL, rateAPITimeout, rateAPIRetries)

	// Initialize repositories
	snapshotRepo := repositories.NewRateSnapshotRepository(rateCacheTTL, nil)
	clientCacheRepo := repositories.NewClientRateCacheRepository(rdb, clientCacheTTL, nil)

	// Initialize services
	ratesService := services.NewRatesService(rateSource, snapshotRepo)
	conversionService := services.NewConversionService(ratesService, baseCurrency)

	// The display tier can run against a remote conversion endpoint; by
	// default it uses the in-process service.
	var converter services.Converter = conversionService
	if converterAddr != "" {
		converter = facades.NewConversionHTTPFacade(converterAddr, rateAPITimeout)
		logger.Log.Infof("Using remote conversion endpoint at %s", converterAddr)
	}
	displayService := services.NewDisplayService(converter, clientCacheRepo, baseCurrency, strictConversion)

	// Initialize handlers
	convertHandler := handlers.NewConvertHandler(conversionService)
	ratesHandler := handlers.NewGetRatesHandler(ratesService, baseCurrency)
	displayHandler := handlers.NewDisplayHandler(displayService)
	preferenceHandler := handlers.NewCurrencyPreferenceHandler(displayService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	handlers.RegisterConvertHandler(r, convertHandler)
	handlers.RegisterGetRatesHandler(r, ratesHandler)
	handlers.RegisterDisplayHandler(r, displayHandler)
	handlers.RegisterCurrencyPreferenceHandler(r, preferenceHandler)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
