package appstate_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/kubenexus/internal/infra/appstate"
	"github.com/skillcoder/kubenexus/internal/infra/pinger"
	"github.com/skillcoder/kubenexus/internal/infra/shutdown/mocks"
)

type stubPinger struct {
	name string
	err  error
}

func (p stubPinger) Name() string                 { return p.name }
func (p stubPinger) Ping(_ context.Context) error { return p.err }

func newState(t *testing.T) (*appstate.AppState, *pinger.Service) {
	t.Helper()

	logger := slog.Default()
	pingerService := pinger.New(logger, time.Hour)

	return appstate.New(logger, time.Now(), make(chan os.Signal, 1), pingerService), pingerService
}

func TestAppState_StateTransitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		give      []func(*appstate.AppState, context.Context) error
		wantErr   error
		wantState appstate.State
	}{
		{
			name:      "init to starting",
			give:      []func(*appstate.AppState, context.Context) error{(*appstate.AppState).SetStarting},
			wantState: appstate.StateStarting,
		},
		{
			name: "starting to running",
			give: []func(*appstate.AppState, context.Context) error{
				(*appstate.AppState).SetStarting,
				(*appstate.AppState).SetRunning,
			},
			wantState: appstate.StateRunning,
		},
		{
			name: "running to terminating",
			give: []func(*appstate.AppState, context.Context) error{
				(*appstate.AppState).SetStarting,
				(*appstate.AppState).SetRunning,
				(*appstate.AppState).SetTerminating,
			},
			wantState: appstate.StateTerminating,
		},
		{
			name:      "invalid: init to running",
			give:      []func(*appstate.AppState, context.Context) error{(*appstate.AppState).SetRunning},
			wantErr:   appstate.ErrInvalidStateTransition,
			wantState: appstate.StateInit,
		},
		{
			name: "invalid: terminated cannot change",
			give: []func(*appstate.AppState, context.Context) error{
				(*appstate.AppState).SetStarting,
				(*appstate.AppState).Shutdown,
				(*appstate.AppState).SetTerminating,
			},
			wantErr:   appstate.ErrAlreadyTerminated,
			wantState: appstate.StateTerminated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, _ := newState(t)

			var err error
			for _, step := range tt.give {
				if err = step(s, t.Context()); err != nil {
					break
				}
			}

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			require.Equal(t, tt.wantState, s.GetState())
		})
	}
}

func TestAppState_QueryMethods(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	s, pingers := newState(t)

	require.Equal(t, appstate.StateInit, s.GetState())
	require.False(t, s.IsHealthy())
	require.False(t, s.IsReady())

	require.NoError(t, s.SetStarting(ctx))
	require.False(t, s.IsReady())

	require.NoError(t, s.SetRunning(ctx))
	require.True(t, s.IsHealthy())
	require.True(t, s.IsReady())

	require.NoError(t, s.RegisterPinger(stubPinger{name: "db", err: errors.New("down")}))
	require.NoError(t, pingers.Start(ctx))
	<-pingers.Ready()

	require.False(t, s.IsHealthy(), "failing critical pinger makes the process unhealthy")
	require.False(t, s.IsReady())
	require.Contains(t, s.GetAllStats(), "db")

	require.NoError(t, pingers.Shutdown(ctx))
}

func TestAppState_GetUptime(t *testing.T) {
	t.Parallel()

	startTime := time.Now().Add(-time.Minute)
	s := appstate.New(slog.Default(), startTime, nil, pinger.New(slog.Default(), time.Hour))

	require.Equal(t, startTime, s.GetStartTime())
	require.GreaterOrEqual(t, s.GetUptime(), time.Minute)
}

func TestAppState_Shutdown(t *testing.T) {
	t.Parallel()

	t.Run("shuts components down in reverse order and is idempotent", func(t *testing.T) {
		t.Parallel()

		ctx := t.Context()
		s, _ := newState(t)

		var order []string

		first := mocks.NewMockShutdowner(t)
		first.EXPECT().Name().Return("first").Once()
		first.EXPECT().Shutdown(mock.Anything).Run(func(context.Context) {
			order = append(order, "first")
		}).Return(nil).Once()

		second := mocks.NewMockShutdowner(t)
		second.EXPECT().Name().Return("second").Once()
		second.EXPECT().Shutdown(mock.Anything).Run(func(context.Context) {
			order = append(order, "second")
			require.Equal(t, appstate.StateTerminating, s.GetState())
		}).Return(nil).Once()

		require.NoError(t, s.RegisterShutdowner(first))
		require.NoError(t, s.RegisterShutdowner(second))

		require.NoError(t, s.SetStarting(ctx))
		require.NoError(t, s.SetRunning(ctx))

		require.NoError(t, s.Shutdown(ctx))
		require.Equal(t, appstate.StateTerminated, s.GetState())
		require.Equal(t, []string{"second", "first"}, order)

		require.NoError(t, s.Shutdown(ctx))
		require.Equal(t, appstate.StateTerminated, s.GetState())
	})

	t.Run("component error is returned and state still terminates", func(t *testing.T) {
		t.Parallel()

		errClose := errors.New("close failed")
		s, _ := newState(t)

		m := mocks.NewMockShutdowner(t)
		m.EXPECT().Name().Return("server").Once()
		m.EXPECT().Shutdown(mock.Anything).Return(errClose).Once()

		require.NoError(t, s.RegisterShutdowner(m))

		err := s.Shutdown(t.Context())
		require.ErrorIs(t, err, errClose)
		require.Equal(t, appstate.StateTerminated, s.GetState())
	})

	t.Run("register after terminating fails", func(t *testing.T) {
		t.Parallel()

		s, _ := newState(t)
		require.NoError(t, s.SetTerminating(t.Context()))

		m := mocks.NewMockShutdowner(t)
		m.EXPECT().Name().Return("late").Once()

		require.ErrorIs(t, s.RegisterShutdowner(m), appstate.ErrAlreadyTerminated)
	})
}
