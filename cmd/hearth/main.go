package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hearthapi/hearth/internal/config"
	"github.com/hearthapi/hearth/internal/db"
	dbMemory "github.com/hearthapi/hearth/internal/db/memory"
	dbMongo "github.com/hearthapi/hearth/internal/db/mongo"
	dbRedis "github.com/hearthapi/hearth/internal/db/redis"
	logpkg "github.com/hearthapi/hearth/internal/logger"
	"github.com/hearthapi/hearth/internal/metrics"
	intakerepo "github.com/hearthapi/hearth/internal/repository/intake"
	listingrepo "github.com/hearthapi/hearth/internal/repository/listing"
	chiTransport "github.com/hearthapi/hearth/internal/transport/chi"
	healthuc "github.com/hearthapi/hearth/internal/usecase/health"
	intakeuc "github.com/hearthapi/hearth/internal/usecase/intake"
	listinguc "github.com/hearthapi/hearth/internal/usecase/listing"
	"github.com/hearthapi/hearth/internal/version"
)

func main() {
	// Local development convenience; a missing .env is fine.
	_ = godotenv.Load()

	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting hearth API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.String("db_name", cfg.Database.Name),
	)

	ctx := context.Background()

	var store db.Store
	switch cfg.Database.Driver {
	case "mongo":
		store, err = dbMongo.NewStore(ctx, dbMongo.Config{
			URI:      cfg.Database.URI,
			Database: cfg.Database.Name,
		})
	case "memory":
		store = dbMemory.NewStore()
	default:
		logger.Fatal("Unknown database driver", zap.String("driver", cfg.Database.Driver))
	}
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register listing metrics explicitly (no init())
	metrics.RegisterListingMetrics()

	// Repositories. The property repo gets a read cache when one is configured.
	baseListings := listingrepo.New(store)
	var listings listinguc.Repository = baseListings
	if addrs := nonEmpty(cfg.Cache.Addrs); len(addrs) > 0 {
		kv, cacheErr := dbRedis.NewClient(dbRedis.Config{
			Addrs:    addrs,
			Password: cfg.Cache.Password,
		})
		if cacheErr != nil {
			logger.Fatal("Failed to create cache client", zap.Error(cacheErr))
		}
		defer kv.Close()

		listings = listingrepo.NewCached(
			baseListings, kv,
			time.Duration(cfg.Cache.TTLSec)*time.Second,
			metrics.PropertyCacheTotal, logger,
		)
		logger.Info("Property read cache enabled", zap.Strings("addrs", addrs))
	}

	// Use case services
	listingSvc := listinguc.New(listings).
		WithLimits(cfg.Search.DefaultLimit, cfg.Search.MaxLimit)
	intakeSvc := intakeuc.New(intakerepo.New(store))
	healthSvc := healthuc.New(store, cfg.Database.Name)

	server := chiTransport.NewServer(listingSvc, intakeSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
	}))
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Use(metrics.Middleware())

	server.Routes(r)
	r.Handle("/metrics", promhttp.Handler())

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// nonEmpty drops blank entries left behind by unset env substitutions.
func nonEmpty(addrs []string) []string {
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		if a != "" {
			out = append(out, a)
		}
	}
	return out
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"error": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
