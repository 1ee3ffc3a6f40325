package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"k8s.io/apimachinery/pkg/util/validation"

	"github.com/skillcoder/kubenexus/internal/infra/metrics"
	"github.com/skillcoder/kubenexus/internal/logic/summary"
)

type Service struct {
	logger   *slog.Logger
	provider Provider
}

// NewService creates a new inventory service reading through provider.
func NewService(
	logger *slog.Logger,
	provider Provider,
) *Service {
	return &Service{
		logger:   logger,
		provider: provider,
	}
}

// ListNamespacesQuery returns summaries of all namespaces in provider order.
func (s *Service) ListNamespacesQuery(ctx context.Context) ([]summary.NamespaceSummary, error) {
	logger := s.logger.With("query", "ListNamespacesQuery")

	logger.DebugContext(ctx, "fetching namespaces")

	start := time.Now()
	raws, err := s.provider.ListNamespacesQuery(ctx)

	observe(opListNamespaces, start, err)

	if err != nil {
		return nil, classify(ErrListNamespaces, err)
	}

	valid := keepValid(ctx, logger, summary.KindNamespace, raws, namespaceMeta)

	return summary.ProjectAll(valid, summary.ProjectNamespace), nil
}

// GetNamespaceQuery returns the summary of a single namespace.
func (s *Service) GetNamespaceQuery(ctx context.Context, name string) (*summary.NamespaceSummary, error) {
	if errs := validation.IsDNS1123Label(name); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w: namespace %q: %s", ErrGetNamespace, ErrInvalidArgument, name, errs[0])
	}

	start := time.Now()
	raw, err := s.provider.GetNamespaceQuery(ctx, name)

	observe(opGetNamespace, start, err)

	if err != nil {
		return nil, classify(ErrGetNamespace, err)
	}

	if raw == nil {
		return nil, fmt.Errorf("%w: %w: namespace %q", ErrGetNamespace, ErrNotFound, name)
	}

	if err := summary.Validate(raw.RawResource); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGetNamespace, err)
	}

	out := summary.ProjectNamespace(*raw)

	return &out, nil
}

// ListPodsQuery returns summaries of pods in namespace, or in all namespaces
// when namespace is empty, in provider order.
func (s *Service) ListPodsQuery(ctx context.Context, namespace string) ([]summary.PodSummary, error) {
	logger := s.logger.With("query", "ListPodsQuery")

	filter := namespace
	if filter == "" {
		filter = allNamespaces
	}

	logger.DebugContext(ctx, "fetching pods", "namespace", filter)

	start := time.Now()
	raws, err := s.provider.ListPodsQuery(ctx, namespace)

	observe(opListPods, start, err)

	if err != nil {
		return nil, classify(ErrListPods, err)
	}

	valid := keepValid(ctx, logger, summary.KindPod, raws, podMeta)

	return summary.ProjectAll(valid, summary.ProjectPod), nil
}

// GetPodQuery returns the summary of a single pod.
func (s *Service) GetPodQuery(ctx context.Context, namespace, name string) (*summary.PodSummary, error) {
	if err := validatePodRef(namespace, name); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGetPod, err)
	}

	start := time.Now()
	raw, err := s.provider.GetPodQuery(ctx, namespace, name)

	observe(opGetPod, start, err)

	if err != nil {
		return nil, classify(ErrGetPod, err)
	}

	if raw == nil {
		return nil, fmt.Errorf("%w: %w: pod %s/%s", ErrGetPod, ErrNotFound, namespace, name)
	}

	if err := summary.Validate(raw.RawResource); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGetPod, err)
	}

	out := summary.ProjectPod(*raw)

	return &out, nil
}

// GetPodLogsQuery returns the tail of a pod's container log.
func (s *Service) GetPodLogsQuery(
	ctx context.Context,
	namespace,
	name string,
	opts LogOptions,
) (string, error) {
	if err := validatePodRef(namespace, name); err != nil {
		return "", fmt.Errorf("%w: %w", ErrGetPodLogs, err)
	}

	if opts.TailLines <= 0 {
		return "", fmt.Errorf("%w: %w: tail lines must be positive, got %d",
			ErrGetPodLogs, ErrInvalidArgument, opts.TailLines)
	}

	start := time.Now()
	logs, err := s.provider.GetPodLogsQuery(ctx, namespace, name, opts)

	observe(opGetPodLogs, start, err)

	if err != nil {
		return "", classify(ErrGetPodLogs, err)
	}

	return logs, nil
}

// GetPodUsageQuery returns current CPU and memory usage of a pod.
func (s *Service) GetPodUsageQuery(ctx context.Context, namespace, name string) (*PodUsage, error) {
	if err := validatePodRef(namespace, name); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGetPodUsage, err)
	}

	start := time.Now()
	usage, err := s.provider.GetPodUsageQuery(ctx, namespace, name)

	observe(opGetPodUsage, start, err)

	if err != nil {
		return nil, classify(ErrGetPodUsage, err)
	}

	return usage, nil
}

// classify wraps a provider error with the operation sentinel and its error kind.
func classify(op, err error) error {
	var u unavailable
	if errors.As(err, &u) {
		return fmt.Errorf("%w: %w: %w", op, ErrProviderUnavailable, err)
	}

	var nf notFound
	if errors.As(err, &nf) {
		return fmt.Errorf("%w: %w: %w", op, ErrNotFound, err)
	}

	var tmr tooManyRequests
	if errors.As(err, &tmr) {
		return fmt.Errorf("%w: %w: %w", op, ErrTooManyRequests, err)
	}

	return fmt.Errorf("%w: %w", op, err)
}

func observe(operation string, start time.Time, err error) {
	metrics.RecordProviderCall(operation, providerResult(err), time.Since(start))
}

// providerResult maps a provider error to the result label, following classify.
func providerResult(err error) string {
	if err == nil {
		return metrics.ResultSuccess
	}

	var (
		u   unavailable
		nf  notFound
		tmr tooManyRequests
	)

	switch {
	case errors.As(err, &u):
		return metrics.ResultUnavailable
	case errors.As(err, &nf):
		return metrics.ResultNotFound
	case errors.As(err, &tmr):
		return metrics.ResultThrottled
	default:
		return metrics.ResultError
	}
}

// keepValid drops resources without a uid or name, logging each one.
func keepValid[R any](
	ctx context.Context,
	logger *slog.Logger,
	kind string,
	raws []R,
	meta func(R) summary.RawResource,
) []R {
	out := make([]R, 0, len(raws))

	for _, raw := range raws {
		if err := summary.Validate(meta(raw)); err != nil {
			logger.WarnContext(ctx, "skipping malformed resource",
				"kind", kind,
				"reason", err,
			)
			metrics.RecordMalformedResourceSkipped(kind)

			continue
		}

		out = append(out, raw)
	}

	return out
}

func namespaceMeta(raw summary.RawNamespace) summary.RawResource {
	return raw.RawResource
}

func podMeta(raw summary.RawPod) summary.RawResource {
	return raw.RawResource
}

func validatePodRef(namespace, name string) error {
	if errs := validation.IsDNS1123Label(namespace); len(errs) > 0 {
		return fmt.Errorf("%w: namespace %q: %s", ErrInvalidArgument, namespace, errs[0])
	}

	if errs := validation.IsDNS1123Subdomain(name); len(errs) > 0 {
		return fmt.Errorf("%w: pod name %q: %s", ErrInvalidArgument, name, errs[0])
	}

	return nil
}
