package k8s

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	metricsv "k8s.io/metrics/pkg/client/clientset/versioned"

	"github.com/skillcoder/kubenexus/internal/infra/tracing"
	"github.com/skillcoder/kubenexus/internal/logic/inventory"
	"github.com/skillcoder/kubenexus/internal/logic/summary"
)

// maxLogBytes caps the size of a single log response.
const maxLogBytes = 4 << 20

const versionPath = "/version"

const (
	resourceNamespaces = "namespaces"
	resourcePods       = "pods"
	resourcePodMetrics = "podmetrics"
)

// Adapter reads namespaces and pods from a Kubernetes API server.
type Adapter struct {
	logger           *slog.Logger
	clientset        kubernetes.Interface
	metricsClientset metricsv.Interface
}

// New creates a new K8s adapter.
func New(
	logger *slog.Logger,
	clientset kubernetes.Interface,
	metricsClientset metricsv.Interface,
) *Adapter {
	return &Adapter{
		logger:           logger,
		clientset:        clientset,
		metricsClientset: metricsClientset,
	}
}

var _ inventory.Provider = (*Adapter)(nil)

func (a *Adapter) ListNamespacesQuery(ctx context.Context) (_ []summary.RawNamespace, err error) {
	ctx, span := tracing.StartK8sSpan(ctx, "list", resourceNamespaces, "", "")
	defer func() { tracing.EndSpan(span, err) }()

	nsList, err := a.clientset.CoreV1().Namespaces().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list namespaces: %w", mapAPIError(err, resourceNamespaces, "", ""))
	}

	namespaces := make([]summary.RawNamespace, 0, len(nsList.Items))
	for i := range nsList.Items {
		namespaces = append(namespaces, toRawNamespace(&nsList.Items[i]))
	}

	return namespaces, nil
}

func (a *Adapter) GetNamespaceQuery(
	ctx context.Context,
	name string,
) (_ *summary.RawNamespace, err error) {
	ctx, span := tracing.StartK8sSpan(ctx, "get", resourceNamespaces, "", name)
	defer func() { tracing.EndSpan(span, err) }()

	ns, err := a.clientset.CoreV1().Namespaces().Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("get namespace: %w", mapAPIError(err, resourceNamespaces, "", name))
	}

	raw := toRawNamespace(ns)

	return &raw, nil
}

func (a *Adapter) ListPodsQuery(
	ctx context.Context,
	namespace string,
) (_ []summary.RawPod, err error) {
	ctx, span := tracing.StartK8sSpan(ctx, "list", resourcePods, namespace, "")
	defer func() { tracing.EndSpan(span, err) }()

	// metav1.NamespaceAll is "", so an empty namespace lists across the cluster.
	podList, err := a.clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list pods: %w", mapAPIError(err, resourcePods, namespace, ""))
	}

	pods := make([]summary.RawPod, 0, len(podList.Items))
	for i := range podList.Items {
		pods = append(pods, toRawPod(&podList.Items[i]))
	}

	return pods, nil
}

func (a *Adapter) GetPodQuery(
	ctx context.Context,
	namespace,
	name string,
) (_ *summary.RawPod, err error) {
	ctx, span := tracing.StartK8sSpan(ctx, "get", resourcePods, namespace, name)
	defer func() { tracing.EndSpan(span, err) }()

	pod, err := a.clientset.CoreV1().Pods(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("get pod: %w", mapAPIError(err, resourcePods, namespace, name))
	}

	raw := toRawPod(pod)

	return &raw, nil
}

func (a *Adapter) GetPodLogsQuery(
	ctx context.Context,
	namespace,
	name string,
	opts inventory.LogOptions,
) (_ string, err error) {
	ctx, span := tracing.StartK8sSpan(ctx, "logs", resourcePods, namespace, name)
	defer func() { tracing.EndSpan(span, err) }()

	tailLines := opts.TailLines

	req := a.clientset.CoreV1().Pods(namespace).GetLogs(name, &corev1.PodLogOptions{
		Container: opts.Container,
		TailLines: &tailLines,
	})

	stream, err := req.Stream(ctx)
	if err != nil {
		return "", fmt.Errorf("stream pod logs: %w", mapAPIError(err, resourcePods, namespace, name))
	}
	defer stream.Close()

	data, err := io.ReadAll(io.LimitReader(stream, maxLogBytes))
	if err != nil {
		return "", fmt.Errorf("read pod logs: %w", err)
	}

	return string(data), nil
}

func (a *Adapter) GetPodUsageQuery(
	ctx context.Context,
	namespace,
	name string,
) (_ *inventory.PodUsage, err error) {
	ctx, span := tracing.StartK8sSpan(ctx, "get", resourcePodMetrics, namespace, name)
	defer func() { tracing.EndSpan(span, err) }()

	podMetrics, err := a.metricsClientset.MetricsV1beta1().PodMetricses(namespace).Get(
		ctx,
		name,
		metav1.GetOptions{},
	)
	if err != nil {
		return nil, fmt.Errorf("get pod metrics: %w", mapAPIError(err, resourcePodMetrics, namespace, name))
	}

	return toPodUsage(ctx, a.logger, podMetrics), nil
}

// Ping checks that the API server answers GET /version within ctx.
func (a *Adapter) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	discovery := a.clientset.Discovery()

	restClient := discovery.RESTClient()
	if restClient == nil {
		// fake discovery clients have no transport
		if _, err := discovery.ServerVersion(); err != nil {
			return fmt.Errorf("get server version: %w", err)
		}

		return nil
	}

	if err := restClient.Get().AbsPath(versionPath).Do(ctx).Error(); err != nil {
		return fmt.Errorf("get server version: %w", err)
	}

	return nil
}

func mapAPIError(err error, resource, namespace, name string) error {
	switch {
	case apierrors.IsNotFound(err):
		return &NotFoundError{
			Resource:  resource,
			Namespace: namespace,
			Name:      name,
		}
	case apierrors.IsTooManyRequests(err):
		return errTooManyRequests
	}

	return err
}
