package k8s

import (
	"context"
	"fmt"

	"github.com/skillcoder/kubenexus/internal/logic/inventory"
	"github.com/skillcoder/kubenexus/internal/logic/summary"
)

// Unavailable is the provider used when no cluster configuration could be loaded.
// Every call fails with an UnavailableError.
type Unavailable struct {
	reason error
}

// NewUnavailable creates a provider that reports reason from Ping.
func NewUnavailable(reason error) *Unavailable {
	return &Unavailable{reason: reason}
}

var _ inventory.Provider = (*Unavailable)(nil)

func (u *Unavailable) ListNamespacesQuery(context.Context) ([]summary.RawNamespace, error) {
	return nil, fmt.Errorf("list namespaces: %w", errUnavailable)
}

func (u *Unavailable) GetNamespaceQuery(context.Context, string) (*summary.RawNamespace, error) {
	return nil, fmt.Errorf("get namespace: %w", errUnavailable)
}

func (u *Unavailable) ListPodsQuery(context.Context, string) ([]summary.RawPod, error) {
	return nil, fmt.Errorf("list pods: %w", errUnavailable)
}

func (u *Unavailable) GetPodQuery(context.Context, string, string) (*summary.RawPod, error) {
	return nil, fmt.Errorf("get pod: %w", errUnavailable)
}

func (u *Unavailable) GetPodLogsQuery(context.Context, string, string, inventory.LogOptions) (string, error) {
	return "", fmt.Errorf("stream pod logs: %w", errUnavailable)
}

func (u *Unavailable) GetPodUsageQuery(context.Context, string, string) (*inventory.PodUsage, error) {
	return nil, fmt.Errorf("get pod metrics: %w", errUnavailable)
}

// Ping always fails.
func (u *Unavailable) Ping(context.Context) error {
	if u.reason == nil {
		return errUnavailable
	}

	return fmt.Errorf("%w: %w", errUnavailable, u.reason)
}
