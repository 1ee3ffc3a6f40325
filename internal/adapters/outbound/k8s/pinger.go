package k8s

import (
	"context"
	"time"

	"github.com/skillcoder/kubenexus/internal/infra/pinger"
)

const clusterPingTimeout = 3 * time.Second

type pingTarget interface {
	Ping(ctx context.Context) error
}

// ClusterPinger reports API server reachability to the pinger service.
// It never affects liveness; readiness only when readyCritical is set.
type ClusterPinger struct {
	target        pingTarget
	readyCritical bool
}

// NewPinger wraps target, an Adapter or Unavailable.
func NewPinger(target pingTarget, readyCritical bool) *ClusterPinger {
	return &ClusterPinger{
		target:        target,
		readyCritical: readyCritical,
	}
}

var _ pinger.Pinger = (*ClusterPinger)(nil)

func (p *ClusterPinger) Name() string {
	return "kubernetes-api"
}

func (p *ClusterPinger) Ping(ctx context.Context) error {
	return p.target.Ping(ctx)
}

func (p *ClusterPinger) PingerReadyCritical() bool {
	return p.readyCritical
}

func (p *ClusterPinger) PingerCritical() bool {
	return false
}

func (p *ClusterPinger) PingerTimeout() time.Duration {
	return clusterPingTimeout
}
