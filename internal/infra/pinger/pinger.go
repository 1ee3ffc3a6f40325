package pinger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/skillcoder/kubenexus/internal/infra/metrics"
	"github.com/skillcoder/kubenexus/internal/infra/shutdown"
)

// defaultPingTimeout applies to pingers that do not declare their own timeout.
const defaultPingTimeout = 1 * time.Second

type pingerInfo struct {
	pinger         Pinger
	readyCritical  bool
	healthCritical bool
	timeout        time.Duration
	stats          *stats
}

// Service runs registered pingers on an interval and keeps their latest results.
type Service struct {
	logger     *slog.Logger
	interval   time.Duration
	mu         sync.RWMutex
	pingers    map[string]*pingerInfo
	ready      chan struct{}
	stop       chan struct{}
	doneCh     chan struct{}
	started    atomic.Bool
	inShutdown atomic.Bool
	wg         sync.WaitGroup
}

// New creates a new pinger service with the specified interval
func New(
	logger *slog.Logger,
	interval time.Duration,
) *Service {
	return &Service{
		logger:   logger,
		interval: interval,
		pingers:  make(map[string]*pingerInfo),
		ready:    make(chan struct{}),
		stop:     make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

var _ shutdown.Shutdowner = (*Service)(nil)

func (s *Service) Name() string {
	return "pinger-service"
}

// Register adds a pinger. Pingers are ready and health critical unless they say otherwise.
func (s *Service) Register(p Pinger) error {
	if p == nil {
		return fmt.Errorf("register pinger: %w", ErrNilPinger)
	}

	name := p.Name()

	info := &pingerInfo{
		pinger:         p,
		readyCritical:  true,
		healthCritical: true,
		timeout:        defaultPingTimeout,
		stats:          &stats{},
	}

	if rc, ok := p.(readyCriticalPinger); ok {
		info.readyCritical = rc.PingerReadyCritical()
	}

	if hc, ok := p.(healthCriticalPinger); ok {
		info.healthCritical = hc.PingerCritical()
	}

	if tp, ok := p.(timeoutPinger); ok && tp.PingerTimeout() > 0 {
		info.timeout = tp.PingerTimeout()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.pingers[name]; exists {
		return fmt.Errorf("register pinger %s: %w", name, ErrPingerAlreadyRegistered)
	}

	s.pingers[name] = info

	s.logger.Info("pinger registered",
		"name", name,
		"readyCritical", info.readyCritical,
		"healthCritical", info.healthCritical,
		"timeout", info.timeout,
	)

	return nil
}

// Start runs the first round of pings in the background and then keeps pinging on the interval.
func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "pinger service is shutting down, skipping start")

		return nil
	}

	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	go s.run(ctx)

	return nil
}

// Ready is closed once the first round of pings has finished.
func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// Shutdown stops the ping loop and waits for in-flight pings.
func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.WarnContext(ctx, "pinger service is already shutting down, skipping shutdown")

		return nil
	}

	close(s.stop)

	if !s.started.Load() {
		return nil
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before pinger loop exited: %w", ctx.Err())
	case <-s.doneCh:
	}

	s.wg.Wait()

	s.logger.InfoContext(ctx, "pinger service shut down")

	return nil
}

// GetStats returns statistics for a specific pinger
func (s *Service) GetStats(name string) (*Statistics, error) {
	s.mu.RLock()
	info, ok := s.pingers[name]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("get stats %s: %w", name, ErrPingerNotFound)
	}

	return info.stats.snapshot(info), nil
}

// GetAllStats returns a snapshot of every pinger's statistics keyed by name.
func (s *Service) GetAllStats() map[string]*Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]*Statistics, len(s.pingers))
	for name, info := range s.pingers {
		result[name] = info.stats.snapshot(info)
	}

	return result
}

// AllReady reports whether every ready-critical pinger passed its last ping.
func (s *Service) AllReady() bool {
	for _, st := range s.GetAllStats() {
		if !st.IsReady {
			return false
		}
	}

	return true
}

// AllHealthy reports whether every health-critical pinger passed its last ping.
func (s *Service) AllHealthy() bool {
	for _, st := range s.GetAllStats() {
		if !st.IsHealthy {
			return false
		}
	}

	return true
}

func (s *Service) run(ctx context.Context) {
	defer close(s.doneCh)

	logger := s.logger.With("component", "pinger-run")

	s.runPingers(ctx, logger)

	close(s.ready)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runPingers(ctx, logger)
		case <-s.stop:
			logger.InfoContext(ctx, "terminating pinger loop")

			return
		case <-ctx.Done():
			logger.InfoContext(ctx, "terminating pinger loop")

			return
		}
	}
}

// runPingers pings every registered pinger in parallel and waits for all of them.
func (s *Service) runPingers(ctx context.Context, logger *slog.Logger) {
	s.mu.RLock()
	infos := make(map[string]*pingerInfo, len(s.pingers))
	for name, info := range s.pingers {
		infos[name] = info
	}
	s.mu.RUnlock()

	var wg sync.WaitGroup

	for name, info := range infos {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		s.wg.Add(1)

		go func() {
			defer wg.Done()
			defer s.wg.Done()

			s.ping(ctx, logger, name, info)
		}()
	}

	wg.Wait()
}

func (s *Service) ping(ctx context.Context, logger *slog.Logger, name string, info *pingerInfo) {
	pingCtx, cancel := context.WithTimeout(ctx, info.timeout)
	defer cancel()

	start := time.Now()
	err := info.pinger.Ping(pingCtx)
	latency := time.Since(start)

	info.stats.record(start, latency, err)
	metrics.RecordDependencyPing(name, err == nil, latency)

	if err != nil {
		logger.DebugContext(ctx, "pinger error",
			"name", name,
			"latency", latency,
			"reason", err,
		)

		return
	}

	logger.DebugContext(ctx, "pinger success",
		"name", name,
		"latency", latency,
	)
}
