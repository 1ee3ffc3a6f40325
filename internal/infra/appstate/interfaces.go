package appstate

import (
	"context"
	"time"

	"github.com/skillcoder/kubenexus/internal/infra/pinger"
	"github.com/skillcoder/kubenexus/internal/infra/shutdown"
)

type pingerStatsGetter interface {
	GetAllStats() map[string]*pinger.Statistics
}

// pingerServer is an internal interface for pinger management
type pingerServer interface {
	Start(ctx context.Context) error
	Ready() <-chan struct{}
	shutdown.Shutdowner
	Register(pinger pinger.Pinger) error
	AllReady() bool
	AllHealthy() bool
	pingerStatsGetter
}

type healthChecker interface {
	IsHealthy() bool
}

type readyChecker interface {
	IsReady() bool
}

type statusGetter interface {
	pingerStatsGetter
	GetState() State
	GetUptime() time.Duration
	GetStartTime() time.Time
}
