package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"fraudregistry/internal/audit"
	"fraudregistry/internal/jwtauth"
	"fraudregistry/internal/platform/config"
	"fraudregistry/internal/platform/httpserver"
	"fraudregistry/internal/platform/logger"
	"fraudregistry/internal/platform/metrics"
	"fraudregistry/internal/platform/middleware"
	platformredis "fraudregistry/internal/platform/redis"
	"fraudregistry/internal/registry/handler"
	"fraudregistry/internal/registry/service"
	"fraudregistry/internal/registry/store"
	id "fraudregistry/pkg/domain"
)

func main() {
	log := logger.New()
	slog.SetDefault(log)

	if err := run(log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.FromEnv()
	m := metrics.New()

	registryStore, closeStore, err := buildStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	auditPublisher := audit.NewPublisher(cfg.AuditBuffer, log)
	sinks, closeSinks, err := buildSinks(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeSinks()

	svc, err := service.New(ctx,
		id.AgencyID(cfg.OwnerID), cfg.OwnerName, cfg.OwnerAPIKey,
		service.WithStore(registryStore),
		service.WithAuditPublisher(auditPublisher),
		service.WithMetrics(m),
		service.WithLogger(log),
	)
	if err != nil {
		return err
	}

	tokens := jwtauth.NewService(cfg.JWTSigningKey, cfg.TokenTTL)
	api := handler.New(svc, tokens, log)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.ClientMetadata)
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logger(log))
	router.Use(middleware.Latency(m))
	router.Use(middleware.Timeout(30 * time.Second))

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	router.Handle("/metrics", promhttp.Handler())
	router.Mount("/api/v1", api.Routes(middleware.RequireAuth(tokens, log)))

	server := httpserver.New(cfg.Addr, router)
	worker := audit.NewWorker(auditPublisher.Inbox(), log, sinks...)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down")
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func buildStore(ctx context.Context, cfg config.Config, log *slog.Logger) (store.Store, func(), error) {
	if cfg.PostgresDSN == "" {
		log.Warn("no postgres dsn configured, registry state is in-memory only")
		return store.NewMemory(), func() {}, nil
	}
	pg, err := store.OpenPostgres(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, nil, err
	}
	log.Info("registry store backed by postgres")
	return pg, func() { _ = pg.Close() }, nil
}

// buildSinks assembles the audit fan-out from configuration. Every sink is
// optional; the in-memory trail is always present so /health deployments
// without external brokers still record events.
func buildSinks(ctx context.Context, cfg config.Config, log *slog.Logger) ([]audit.Sink, func(), error) {
	sinks := []audit.Sink{audit.NewMemoryStore()}
	var closers []func()
	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}

	if cfg.RedisURL != "" {
		client, err := platformredis.New(cfg.RedisURL)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		sinks = append(sinks, audit.NewRedisSink(client.Client, cfg.AuditStream, 10_000))
		closers = append(closers, func() { _ = client.Close() })
		log.Info("audit events streaming to redis", "stream", cfg.AuditStream)
	}

	if len(cfg.KafkaBrokers) > 0 {
		kafka, err := audit.NewKafkaSink(ctx, cfg.KafkaBrokers, cfg.AuditTopic)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		sinks = append(sinks, kafka)
		closers = append(closers, kafka.Close)
		log.Info("audit events producing to kafka", "topic", cfg.AuditTopic)
	}

	if cfg.PostgresDSN != "" {
		pg, err := audit.OpenPostgresSink(ctx, cfg.PostgresDSN)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		sinks = append(sinks, pg)
		closers = append(closers, func() { _ = pg.Close() })
	}

	return sinks, closeAll, nil
}
