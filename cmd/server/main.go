// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/glowtours/backoffice/internal/adapters/http"
	"github.com/glowtours/backoffice/internal/adapters/http/handlers"
	"github.com/glowtours/backoffice/internal/adapters/http/middleware"

	"github.com/glowtours/backoffice/internal/adapters/clients/acl"
	"github.com/glowtours/backoffice/internal/app"
	"github.com/glowtours/backoffice/internal/platform/config"
	"github.com/glowtours/backoffice/internal/platform/health"
	"github.com/glowtours/backoffice/internal/platform/httpclient"
	"github.com/glowtours/backoffice/internal/platform/logging"
	"github.com/glowtours/backoffice/internal/platform/telemetry"
	"github.com/glowtours/backoffice/internal/ports"
	"github.com/glowtours/backoffice/internal/store"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*store.Store](injector))
	registry.Register(do.MustInvoke[*httpclient.Client](injector))

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

//nolint:funlen // single linear wiring of the dependency graph
func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	maxAttach := int(cfg.Uploads.MaxAttachmentBytes)

	do.Provide(injector, func(_ do.Injector) (*store.Store, error) {
		return store.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Registry, "registry-api", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.RegistryClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewRegistryClient(client, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	// Application services.
	do.Provide(injector, func(i do.Injector) (ports.CandidateService, error) {
		st := do.MustInvoke[*store.Store](i)
		return app.NewCandidateService(st, logger, maxAttach), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AgentService, error) {
		st := do.MustInvoke[*store.Store](i)
		return app.NewAgentService(st, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ClientService, error) {
		st := do.MustInvoke[*store.Store](i)
		registry := do.MustInvoke[ports.RegistryClient](i)
		return app.NewClientService(st, registry, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.JobService, error) {
		st := do.MustInvoke[*store.Store](i)
		return app.NewJobService(st, logger, maxAttach), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.PlacementService, error) {
		st := do.MustInvoke[*store.Store](i)
		return app.NewPlacementService(st, logger, maxAttach, cfg.Export.FilenamePrefix), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BillingService, error) {
		st := do.MustInvoke[*store.Store](i)
		return app.NewBillingService(st, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.FinanceService, error) {
		st := do.MustInvoke[*store.Store](i)
		return app.NewFinanceService(st, logger, maxAttach), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ContentService, error) {
		st := do.MustInvoke[*store.Store](i)
		return app.NewContentService(st, logger, maxAttach), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DashboardService, error) {
		st := do.MustInvoke[*store.Store](i)
		return app.NewDashboardService(st, logger), nil
	})

	// HTTP handlers and router.
	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		return adapthttp.Handlers{
			Health:     handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			Public:     handlers.NewPublicHandler(do.MustInvoke[ports.JobService](i), do.MustInvoke[ports.ContentService](i)),
			Candidates: handlers.NewCandidateHandler(do.MustInvoke[ports.CandidateService](i)),
			Agents:     handlers.NewAgentHandler(do.MustInvoke[ports.AgentService](i)),
			Clients:    handlers.NewClientHandler(do.MustInvoke[ports.ClientService](i)),
			Jobs:       handlers.NewJobHandler(do.MustInvoke[ports.JobService](i)),
			Placements: handlers.NewPlacementHandler(do.MustInvoke[ports.PlacementService](i)),
			Billing:    handlers.NewBillingHandler(do.MustInvoke[ports.BillingService](i)),
			Finance:    handlers.NewFinanceHandler(do.MustInvoke[ports.FinanceService](i)),
			Content:    handlers.NewContentHandler(do.MustInvoke[ports.ContentService](i)),
			Dashboard:  handlers.NewDashboardHandler(do.MustInvoke[ports.DashboardService](i)),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(h,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
			middleware.AppContext(),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
