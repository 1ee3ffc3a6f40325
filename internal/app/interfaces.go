package app

import (
	"context"
	"os"

	"github.com/skillcoder/kubenexus/internal/infra/pinger"
	"github.com/skillcoder/kubenexus/internal/infra/shutdown"
	"github.com/skillcoder/kubenexus/internal/logic/inventory"
)

// appstater defines the interface for application state management
type appstater interface {
	RegisterPinger(pinger pinger.Pinger) error
	RegisterShutdowner(shutdowner shutdown.Shutdowner) error
	Quit() <-chan os.Signal
	SetStarting(ctx context.Context) error
	SetRunning(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type signalHandler interface {
	HandleSignals(ctx context.Context, cancel func())
}

// component is a long-lived part of the process started by Run.
type component interface {
	shutdown.Shutdowner
	Start(ctx context.Context) error
	Ready() <-chan struct{}
}

// clusterProvider is the resource provider that can also be pinged.
type clusterProvider interface {
	inventory.Provider
	Ping(ctx context.Context) error
}
