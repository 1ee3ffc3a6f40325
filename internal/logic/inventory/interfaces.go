package inventory

import (
	"context"

	"github.com/skillcoder/kubenexus/internal/logic/summary"
)

// Provider is the port interface for reading cluster resources.
// Implementations are provided by adapters in the outbound layer.
type Provider interface {
	ListNamespacesQuery(ctx context.Context) ([]summary.RawNamespace, error)

	GetNamespaceQuery(
		ctx context.Context,
		name string,
	) (*summary.RawNamespace, error)

	// ListPodsQuery lists pods in namespace, or in all namespaces when it is empty.
	ListPodsQuery(
		ctx context.Context,
		namespace string,
	) ([]summary.RawPod, error)

	GetPodQuery(
		ctx context.Context,
		namespace,
		name string,
	) (*summary.RawPod, error)

	GetPodLogsQuery(
		ctx context.Context,
		namespace,
		name string,
		opts LogOptions,
	) (string, error)

	GetPodUsageQuery(
		ctx context.Context,
		namespace,
		name string,
	) (*PodUsage, error)
}

// unavailable is a private interface for checking "provider not configured" errors
// without importing the adapter package.
type unavailable interface {
	IsUnavailable()
}

// notFound is a private interface for checking "not found" errors
// without importing the adapter package.
type notFound interface {
	IsNotFound()
}

// tooManyRequests is a private interface for checking "too many requests" errors
// without importing the adapter package.
type tooManyRequests interface {
	IsTooManyRequests()
}
