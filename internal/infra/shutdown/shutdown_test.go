package shutdown_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/kubenexus/internal/infra/shutdown"
	"github.com/skillcoder/kubenexus/internal/infra/shutdown/mocks"
)

func TestGracefulShutdown(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	t.Run("empty list returns nil", func(t *testing.T) {
		t.Parallel()

		err := shutdown.GracefulShutdown(t.Context(), logger, nil)
		require.NoError(t, err)
	})

	t.Run("one shutdowner success returns nil", func(t *testing.T) {
		t.Parallel()

		m := mocks.NewMockShutdowner(t)
		m.EXPECT().Name().Return("test").Once()
		m.EXPECT().Shutdown(mock.Anything).Return(nil).Once()

		err := shutdown.GracefulShutdown(t.Context(), logger, []shutdown.Shutdowner{m})
		require.NoError(t, err)
	})

	t.Run("one shutdowner error returns error", func(t *testing.T) {
		t.Parallel()

		m := mocks.NewMockShutdowner(t)
		m.EXPECT().Name().Return("test").Once()
		m.EXPECT().Shutdown(mock.Anything).Return(context.DeadlineExceeded).Once()

		err := shutdown.GracefulShutdown(t.Context(), logger, []shutdown.Shutdowner{m})
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("multiple shutdowners called in reverse order", func(t *testing.T) {
		t.Parallel()

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
		}).Return(nil).Once()

		err := shutdown.GracefulShutdown(t.Context(), logger, []shutdown.Shutdowner{first, second})
		require.NoError(t, err)
		require.Equal(t, []string{"second", "first"}, order)
	})

	t.Run("failure does not stop remaining components", func(t *testing.T) {
		t.Parallel()

		errFirst := errors.New("first failed")
		errSecond := errors.New("second failed")

		first := mocks.NewMockShutdowner(t)
		first.EXPECT().Name().Return("first").Once()
		first.EXPECT().Shutdown(mock.Anything).Return(errFirst).Once()

		second := mocks.NewMockShutdowner(t)
		second.EXPECT().Name().Return("second").Once()
		second.EXPECT().Shutdown(mock.Anything).Return(errSecond).Once()

		err := shutdown.GracefulShutdown(t.Context(), logger, []shutdown.Shutdowner{first, second})
		require.ErrorIs(t, err, errFirst)
		require.ErrorIs(t, err, errSecond)
	})

	t.Run("cancelled origin context still shuts down with deadline", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		m := mocks.NewMockShutdowner(t)
		m.EXPECT().Name().Return("test").Once()
		m.EXPECT().Shutdown(mock.Anything).RunAndReturn(func(ctx context.Context) error {
			_, hasDeadline := ctx.Deadline()
			require.True(t, hasDeadline)

			return ctx.Err()
		}).Once()

		err := shutdown.GracefulShutdown(ctx, logger, []shutdown.Shutdowner{m})
		require.NoError(t, err)
	})
}

type signalSource chan os.Signal

func (s signalSource) Quit() <-chan os.Signal {
	return s
}

func TestHandler_HandleSignals(t *testing.T) {
	t.Parallel()

	t.Run("signal cancels", func(t *testing.T) {
		t.Parallel()

		signals := make(signalSource, 1)
		handler := shutdown.New(slog.Default(), signals)

		cancelled := make(chan struct{})

		go handler.HandleSignals(t.Context(), func() { close(cancelled) })

		signals <- syscall.SIGTERM

		select {
		case <-cancelled:
		case <-time.After(time.Second):
			t.Fatal("cancel was not called")
		}
	})

	t.Run("context done returns without cancel", func(t *testing.T) {
		t.Parallel()

		handler := shutdown.New(slog.Default(), make(signalSource))

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		called := false

		handler.HandleSignals(ctx, func() { called = true })
		require.False(t, called)
	})
}
