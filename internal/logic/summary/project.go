package summary

import (
	"fmt"
	"time"
)

// DefaultPhase returns the phase, or PhaseUnknown when it is nil or empty.
func DefaultPhase(phase *string) string {
	if phase == nil || *phase == "" {
		return PhaseUnknown
	}

	return *phase
}

// TotalRestarts sums restart counts across containers. Negative counts are ignored.
func TotalRestarts(statuses []ContainerStatus) int64 {
	var total int64

	for i := range statuses {
		if statuses[i].RestartCount > 0 {
			total += int64(statuses[i].RestartCount)
		}
	}

	return total
}

// Validate reports whether raw carries the identifiers a summary needs.
func Validate(raw RawResource) error {
	if raw.UID == "" {
		return fmt.Errorf("%w: missing uid (name %q)", ErrMalformedResource, raw.Name)
	}

	if raw.Name == "" {
		return fmt.Errorf("%w: missing name (uid %q)", ErrMalformedResource, raw.UID)
	}

	return nil
}

// ProjectNamespace maps a raw namespace to its summary.
// The caller must have validated raw beforehand.
func ProjectNamespace(raw RawNamespace) NamespaceSummary {
	return NamespaceSummary{
		Resource: projectResource(raw.RawResource),
		Phase:    DefaultPhase(raw.Phase),
	}
}

// ProjectPod maps a raw pod to its summary.
// The caller must have validated raw beforehand.
func ProjectPod(raw RawPod) PodSummary {
	return PodSummary{
		Resource: projectResource(raw.RawResource),
		Status:   DefaultPhase(raw.Phase),
		Restarts: TotalRestarts(raw.ContainerStatuses),
		Node:     nonEmpty(raw.NodeName),
	}
}

// ProjectAll applies project to every element of raws, keeping input order.
// The result is never nil.
func ProjectAll[R, S any](raws []R, project func(R) S) []S {
	out := make([]S, 0, len(raws))

	for _, raw := range raws {
		out = append(out, project(raw))
	}

	return out
}

func projectResource(raw RawResource) Resource {
	var created *time.Time

	if raw.CreationTimestamp != nil {
		t := *raw.CreationTimestamp
		created = &t
	}

	return Resource{
		UID:               raw.UID,
		Name:              raw.Name,
		Namespace:         nonEmpty(raw.Namespace),
		CreationTimestamp: created,
	}
}

// nonEmpty returns a copy of s, or nil when s is nil or empty.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}

	v := *s

	return &v
}
