// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server and the overdue sweep loop, and
// handles graceful shutdown on SIGINT/SIGTERM.
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

	adapthttp "github.com/peopleops/lifecycle-service/internal/adapters/http"
	"github.com/peopleops/lifecycle-service/internal/adapters/http/handlers"
	"github.com/peopleops/lifecycle-service/internal/adapters/http/middleware"

	"github.com/peopleops/lifecycle-service/internal/adapters/clients/acl"
	"github.com/peopleops/lifecycle-service/internal/adapters/repository/memory"
	"github.com/peopleops/lifecycle-service/internal/adapters/repository/postgres"
	"github.com/peopleops/lifecycle-service/internal/app"
	"github.com/peopleops/lifecycle-service/internal/platform/config"
	pgdb "github.com/peopleops/lifecycle-service/internal/platform/db/postgres"
	"github.com/peopleops/lifecycle-service/internal/platform/health"
	"github.com/peopleops/lifecycle-service/internal/platform/httpclient"
	"github.com/peopleops/lifecycle-service/internal/platform/logging"
	"github.com/peopleops/lifecycle-service/internal/platform/telemetry"
	"github.com/peopleops/lifecycle-service/internal/ports"

	"github.com/jackc/pgx/v5/pgxpool"
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
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
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

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*acl.DirectoryClient](injector))
	registry.Register(do.MustInvoke[*acl.PayrollClient](injector))
	if cfg.Clients.Templates.Enabled {
		registry.Register(do.MustInvoke[*acl.TemplateClient](injector))
	}
	if cfg.Database.Enabled {
		pool := do.MustInvoke[*pgxpool.Pool](injector)
		registry.Register(pgdb.NewHealthChecker(pool))
		defer pool.Close()
	}

	// Background overdue sweep.
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	if cfg.Sweep.Enabled {
		svc := do.MustInvoke[ports.LifecycleService](injector)
		go runSweepLoop(sweepCtx, svc, cfg.Sweep.Interval, logger)
	}

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

	// Graceful shutdown: stop the sweep, drain HTTP requests.
	stopSweep()

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

// runSweepLoop periodically marks past-due tasks overdue across active
// lifecycles. Sweep errors are logged and the loop keeps running; the next
// tick retries.
func runSweepLoop(ctx context.Context, svc ports.LifecycleService, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("overdue sweep started", slog.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			logger.Info("overdue sweep stopped")
			return
		case <-ticker.C:
			touched, err := svc.SweepOverdue(ctx, time.Now())
			if err != nil {
				logger.Error("overdue sweep failed",
					slog.String("operation", "SweepOverdue"),
					slog.Any("error", err),
				)
				continue
			}
			if touched > 0 {
				logger.Info("overdue sweep finished", slog.Int("lifecycles_touched", touched))
			}
		}
	}
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

func registerDependencies(ctx context.Context, injector do.Injector, cfg *config.Config, logger *slog.Logger) {
	// Persistence: postgres when configured, in-memory otherwise.
	do.Provide(injector, func(_ do.Injector) (*pgxpool.Pool, error) {
		return pgdb.NewPool(ctx, cfg.Database)
	})

	do.Provide(injector, func(i do.Injector) (ports.LifecycleRepository, error) {
		if !cfg.Database.Enabled {
			logger.Info("database disabled, using in-memory store")
			return memory.New(), nil
		}
		pool := do.MustInvoke[*pgxpool.Pool](i)
		return postgres.New(pool), nil
	})

	// Downstream clients, one instrumented HTTP client per system.
	do.Provide(injector, func(i do.Injector) (*acl.DirectoryClient, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		client := httpclient.New(&cfg.Clients.Directory, "user-directory", metrics, logger)
		return acl.NewDirectoryClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.PayrollClient, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		client := httpclient.New(&cfg.Clients.Payroll, "payroll-api", metrics, logger)
		return acl.NewPayrollClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.TemplateClient, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		client := httpclient.New(&cfg.Clients.Templates, "template-catalog", metrics, logger)
		return acl.NewTemplateClient(client, logger), nil
	})

	// Application layer.
	do.Provide(injector, func(i do.Injector) (ports.CompletionHandler, error) {
		repo := do.MustInvoke[ports.LifecycleRepository](i)
		directory := do.MustInvoke[*acl.DirectoryClient](i)
		payroll := do.MustInvoke[*acl.PayrollClient](i)
		return app.NewOffboardingCompletionHandler(repo, directory, payroll, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.LifecycleService, error) {
		repo := do.MustInvoke[ports.LifecycleRepository](i)
		directory := do.MustInvoke[*acl.DirectoryClient](i)
		completions := do.MustInvoke[ports.CompletionHandler](i)

		// The template catalog is optional; a nil port means "no extras".
		var templates ports.TemplateCatalog
		if cfg.Clients.Templates.Enabled {
			templates = do.MustInvoke[*acl.TemplateClient](i)
		}

		return app.NewLifecycleService(repo, directory, templates, completions, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	// HTTP adapter.
	do.Provide(injector, func(i do.Injector) (*handlers.LifecycleHandler, error) {
		svc := do.MustInvoke[ports.LifecycleService](i)
		return handlers.NewLifecycleHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		lifecycleH := do.MustInvoke[*handlers.LifecycleHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(lifecycleH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
