package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"k8s.io/client-go/kubernetes"
	metricsv "k8s.io/metrics/pkg/client/clientset/versioned"

	"github.com/skillcoder/kubenexus/internal/adapters/outbound/k8s"
	"github.com/skillcoder/kubenexus/internal/config"
	"github.com/skillcoder/kubenexus/internal/httpserver"
	"github.com/skillcoder/kubenexus/internal/infra/appstate"
	"github.com/skillcoder/kubenexus/internal/infra/logging"
	"github.com/skillcoder/kubenexus/internal/infra/pinger"
	"github.com/skillcoder/kubenexus/internal/infra/shutdown"
	"github.com/skillcoder/kubenexus/internal/infra/tracing"
	"github.com/skillcoder/kubenexus/internal/logic/inventory"
)

type App struct {
	logger     *slog.Logger
	appState   appstater
	signals    signalHandler
	components []component
}

// New creates a new application instance with all dependencies wired.
// A missing cluster configuration is not an error: the API then answers
// every resource request with the provider unavailable error.
func New(ctx context.Context, cfg *config.Config, signals <-chan os.Signal, version string) (*App, error) {
	logger := logging.New(cfg.LogFormat, cfg.LogLevel)

	tracerProvider, err := tracing.New(ctx, logger, tracing.Config{
		Exporter:       cfg.TracingExporter,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		OTLPInsecure:   cfg.OTLPInsecure,
		ServiceName:    cfg.ServiceName,
		ServiceVersion: version,
	})
	if err != nil {
		return nil, fmt.Errorf("create tracer provider: %w", err)
	}

	provider := newClusterProvider(ctx, logger, cfg)

	pingerService := pinger.New(logger, cfg.PingerInterval)
	appState := appstate.New(logger, time.Now(), signals, pingerService)

	inventoryService := inventory.NewService(logger, provider)

	apiServer := httpserver.New(
		logger,
		appState,
		inventoryService,
		cfg.HTTPPort,
		httpserver.LogTail{
			Default: cfg.LogTailLines,
			Max:     cfg.LogTailLinesMax,
		},
	)
	metricsServer := httpserver.NewMetricsServer(logger, cfg.MetricsPort)

	for _, p := range []pinger.Pinger{
		k8s.NewPinger(provider, cfg.ClusterReadyCritical),
		apiServer,
		metricsServer,
	} {
		if err := appState.RegisterPinger(p); err != nil {
			return nil, fmt.Errorf("register pinger %s: %w", p.Name(), err)
		}
	}

	// Shutdown runs in reverse: API server first, tracer provider last.
	for _, s := range []shutdown.Shutdowner{
		tracerProvider,
		metricsServer,
		pingerService,
		apiServer,
	} {
		if err := appState.RegisterShutdowner(s); err != nil {
			return nil, fmt.Errorf("register shutdowner %s: %w", s.Name(), err)
		}
	}

	return &App{
		logger:   logger,
		appState: appState,
		signals:  shutdown.New(logger, appState),
		components: []component{
			metricsServer,
			apiServer,
			pingerService,
		},
	}, nil
}

// newClusterProvider resolves cluster credentials and falls back to the
// unavailable provider when none can be used.
func newClusterProvider(ctx context.Context, logger *slog.Logger, cfg *config.Config) clusterProvider {
	unavailable := func(reason error) clusterProvider {
		logger.WarnContext(ctx, "kubernetes client not configured, resource endpoints will fail",
			"reason", reason,
		)

		return k8s.NewUnavailable(reason)
	}

	restConfig, source, err := k8s.NewRESTConfig(cfg.KubeConfig, cfg.KubeMaster)
	if err != nil {
		return unavailable(err)
	}

	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return unavailable(fmt.Errorf("create clientset: %w", err))
	}

	metricsClientset, err := metricsv.NewForConfig(restConfig)
	if err != nil {
		return unavailable(fmt.Errorf("create metrics clientset: %w", err))
	}

	logger.InfoContext(ctx, "kubernetes client configured",
		"source", source,
		"host", restConfig.Host,
	)

	return k8s.New(logger, clientset, metricsClientset)
}

// Run starts every component, waits for them to be ready and blocks until
// ctx is cancelled or a termination signal arrives, then shuts down.
func (a *App) Run(originCtx context.Context) error {
	ctx, cancel := context.WithCancel(originCtx)
	defer cancel()

	go a.signals.HandleSignals(ctx, cancel)

	if err := a.appState.SetStarting(ctx); err != nil {
		return fmt.Errorf("set starting application state: %w", err)
	}

	readyChans := make([]<-chan struct{}, 0, len(a.components))

	for _, c := range a.components {
		if err := c.Start(ctx); err != nil {
			return a.abort(originCtx, fmt.Errorf("start %s: %w", c.Name(), err))
		}

		readyChans = append(readyChans, c.Ready())
	}

	<-allChannelsClose(ctx, a.logger, readyChans...)

	if ctx.Err() == nil {
		if err := a.appState.SetRunning(ctx); err != nil {
			return a.abort(originCtx, fmt.Errorf("set running application state: %w", err))
		}

		a.logger.InfoContext(ctx, "application is running")

		<-ctx.Done()
	}

	a.logger.InfoContext(originCtx, "shutting down application")

	if err := a.appState.Shutdown(originCtx); err != nil {
		return fmt.Errorf("shutdown application: %w", err)
	}

	return nil
}

func (a *App) abort(ctx context.Context, cause error) error {
	if err := a.appState.Shutdown(ctx); err != nil {
		a.logger.ErrorContext(ctx, "shutdown after failed start", "reason", err)
	}

	return cause
}

// allChannelsClose returns a channel closed once every input channel is
// closed, or once ctx is done.
func allChannelsClose(ctx context.Context, logger *slog.Logger, chans ...<-chan struct{}) <-chan struct{} {
	out := make(chan struct{})

	go func() {
		defer close(out)

		for i, ch := range chans {
			select {
			case <-ch:
			case <-ctx.Done():
				logger.WarnContext(ctx, "stopped waiting for components to become ready",
					"ready", i,
					"total", len(chans),
				)

				return
			}
		}
	}()

	return out
}
