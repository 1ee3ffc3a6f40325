package appstate

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/skillcoder/kubenexus/internal/infra/pinger"
	"github.com/skillcoder/kubenexus/internal/infra/shutdown"
)

// State is the lifecycle phase of the process.
type State string

const (
	StateInit        State = "init"
	StateStarting    State = "starting"
	StateRunning     State = "running"
	StateTerminating State = "terminating"
	StateTerminated  State = "terminated"
)

const defaultShutdownersCount = 8

// AppState tracks the lifecycle state and owns the ordered list of components to shut down.
type AppState struct {
	mu            sync.RWMutex
	logger        *slog.Logger
	startedAt     time.Time
	readyAt       *time.Time
	terminatingAt *time.Time
	state         State
	quit          <-chan os.Signal
	pinger        pingerServer
	shutdowners   []shutdown.Shutdowner
}

func New(
	logger *slog.Logger,
	appStart time.Time,
	quit <-chan os.Signal,
	pinger pingerServer,
) *AppState {
	return &AppState{
		logger:      logger,
		startedAt:   appStart,
		state:       StateInit,
		quit:        quit,
		pinger:      pinger,
		shutdowners: make([]shutdown.Shutdowner, 0, defaultShutdownersCount),
	}
}

func (s *AppState) RegisterPinger(p pinger.Pinger) error {
	if err := s.pinger.Register(p); err != nil {
		return fmt.Errorf("register pinger: %w", err)
	}

	return nil
}

// RegisterShutdowner appends a component. Components shut down in reverse registration order.
func (s *AppState) RegisterShutdowner(shutdowner shutdown.Shutdowner) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateTerminating || s.state == StateTerminated {
		return fmt.Errorf("register shutdowner %s: %w", shutdowner.Name(), ErrAlreadyTerminated)
	}

	s.shutdowners = append(s.shutdowners, shutdowner)

	return nil
}

func (s *AppState) GetAllStats() map[string]*pinger.Statistics {
	return s.pinger.GetAllStats()
}

// SetStarting transitions the state from Init to Starting
func (s *AppState) SetStarting(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInit {
		return fmt.Errorf("set starting from %s: %w", s.state, ErrInvalidStateTransition)
	}

	return s.setState(ctx, StateStarting)
}

// SetRunning transitions the state from Starting to Running
func (s *AppState) SetRunning(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateStarting {
		return fmt.Errorf("set running from %s: %w", s.state, ErrInvalidStateTransition)
	}

	now := time.Now()
	s.readyAt = &now

	return s.setState(ctx, StateRunning)
}

// SetTerminating transitions any non-terminated state to Terminating
func (s *AppState) SetTerminating(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateTerminating {
		return nil
	}

	if err := s.setState(ctx, StateTerminating); err != nil {
		return err
	}

	now := time.Now()
	s.terminatingAt = &now

	return nil
}

// setState must be called with mu held.
func (s *AppState) setState(ctx context.Context, newState State) error {
	if s.state == StateTerminated {
		return fmt.Errorf("set state %s: %w", newState, ErrAlreadyTerminated)
	}

	s.logger.InfoContext(ctx, "application state changed",
		"from", string(s.state),
		"to", string(newState),
	)

	s.state = newState

	return nil
}

func (s *AppState) GetState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

func (s *AppState) GetStartTime() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.startedAt
}

func (s *AppState) GetUptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return time.Since(s.startedAt)
}

// IsHealthy reports whether the process is running and no health-critical pinger is failing.
func (s *AppState) IsHealthy() bool {
	s.mu.RLock()
	running := s.state == StateRunning
	s.mu.RUnlock()

	return running && s.pinger.AllHealthy()
}

// IsReady reports whether the process is running and every ready-critical pinger passed.
func (s *AppState) IsReady() bool {
	s.mu.RLock()
	ready := s.state == StateRunning && s.readyAt != nil
	s.mu.RUnlock()

	return ready && s.pinger.AllReady()
}

// Quit returns the channel that receives the termination signal.
func (s *AppState) Quit() <-chan os.Signal {
	return s.quit
}

func (s *AppState) Name() string {
	return "app-state"
}

// Shutdown marks the application terminating, shuts every registered component
// down and ends in the terminated state. Repeated calls are no-ops.
func (s *AppState) Shutdown(ctx context.Context) error {
	if s.GetState() == StateTerminated {
		return nil
	}

	if err := s.SetTerminating(ctx); err != nil {
		return fmt.Errorf("set terminating application state: %w", err)
	}

	s.mu.RLock()
	shutdowners := append([]shutdown.Shutdowner(nil), s.shutdowners...)
	s.mu.RUnlock()

	shutdownErr := shutdown.GracefulShutdown(ctx, s.logger, shutdowners)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateTerminated

	if shutdownErr != nil {
		return fmt.Errorf("shutdown components: %w", shutdownErr)
	}

	return nil
}
