package httpserver

import (
	"context"
	"time"

	"github.com/skillcoder/kubenexus/internal/infra/appstate"
	"github.com/skillcoder/kubenexus/internal/infra/pinger"
	"github.com/skillcoder/kubenexus/internal/logic/inventory"
	"github.com/skillcoder/kubenexus/internal/logic/summary"
)

// appstater is an internal interface for application state management
type appstater interface {
	GetState() appstate.State
	IsHealthy() bool
	IsReady() bool
	GetUptime() time.Duration
	GetStartTime() time.Time
	GetAllStats() map[string]*pinger.Statistics
}

// inventoryService is the read side the API handlers call.
type inventoryService interface {
	ListNamespacesQuery(ctx context.Context) ([]summary.NamespaceSummary, error)
	GetNamespaceQuery(ctx context.Context, name string) (*summary.NamespaceSummary, error)
	ListPodsQuery(ctx context.Context, namespace string) ([]summary.PodSummary, error)
	GetPodQuery(ctx context.Context, namespace, name string) (*summary.PodSummary, error)
	GetPodLogsQuery(ctx context.Context, namespace, name string, opts inventory.LogOptions) (string, error)
	GetPodUsageQuery(ctx context.Context, namespace, name string) (*inventory.PodUsage, error)
}
