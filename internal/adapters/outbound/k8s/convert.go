package k8s

import (
	"context"
	"log/slog"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	metricsv1beta1 "k8s.io/metrics/pkg/apis/metrics/v1beta1"

	"github.com/skillcoder/kubenexus/internal/logic/inventory"
	"github.com/skillcoder/kubenexus/internal/logic/summary"
)

func toRawNamespace(ns *corev1.Namespace) summary.RawNamespace {
	return summary.RawNamespace{
		RawResource: toRawResource(&ns.ObjectMeta),
		Phase:       optional(string(ns.Status.Phase)),
	}
}

func toRawPod(pod *corev1.Pod) summary.RawPod {
	statuses := make([]summary.ContainerStatus, 0, len(pod.Status.ContainerStatuses))

	for i := range pod.Status.ContainerStatuses {
		statuses = append(statuses, summary.ContainerStatus{
			Name:         pod.Status.ContainerStatuses[i].Name,
			RestartCount: pod.Status.ContainerStatuses[i].RestartCount,
		})
	}

	return summary.RawPod{
		RawResource:       toRawResource(&pod.ObjectMeta),
		Phase:             optional(string(pod.Status.Phase)),
		NodeName:          optional(pod.Spec.NodeName),
		ContainerStatuses: statuses,
	}
}

func toRawResource(meta *metav1.ObjectMeta) summary.RawResource {
	var created *time.Time

	if !meta.CreationTimestamp.IsZero() {
		t := meta.CreationTimestamp.UTC()
		created = &t
	}

	return summary.RawResource{
		UID:               string(meta.UID),
		Name:              meta.Name,
		Namespace:         optional(meta.Namespace),
		CreationTimestamp: created,
	}
}

func toPodUsage(
	ctx context.Context,
	logger *slog.Logger,
	podMetrics *metricsv1beta1.PodMetrics,
) *inventory.PodUsage {
	out := &inventory.PodUsage{
		Namespace:  podMetrics.Namespace,
		Name:       podMetrics.Name,
		Timestamp:  podMetrics.Timestamp.UTC(),
		Window:     podMetrics.Window.Duration.String(),
		Containers: make([]inventory.ContainerUsage, 0, len(podMetrics.Containers)),
	}

	for i := range podMetrics.Containers {
		container := &podMetrics.Containers[i]

		usage := inventory.ContainerUsage{
			Name:          container.Name,
			CPUMillicores: container.Usage.Cpu().MilliValue(),
			MemoryBytes:   container.Usage.Memory().Value(),
		}

		out.Containers = append(out.Containers, usage)
		out.CPUMillicores += usage.CPUMillicores
		out.MemoryBytes += usage.MemoryBytes

		logger.DebugContext(ctx, "container usage",
			"pod", podMetrics.Name,
			"namespace", podMetrics.Namespace,
			"container", container.Name,
			"cpu", container.Usage.Cpu().String(),
			"memory", container.Usage.Memory().String(),
		)
	}

	return out
}

// optional returns nil for the empty string.
func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
