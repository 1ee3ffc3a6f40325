package summary

import "time"

// RawResource is the metadata every resource returned by a provider carries.
// Namespace and CreationTimestamp are nil when the control plane omits them.
type RawResource struct {
	UID               string     `json:"uid"`
	Name              string     `json:"name"`
	Namespace         *string    `json:"namespace,omitempty"`
	CreationTimestamp *time.Time `json:"creationTimestamp,omitempty"`
}

// RawNamespace is a namespace as listed by the provider.
type RawNamespace struct {
	RawResource

	Phase *string `json:"phase,omitempty"`
}

// ContainerStatus is the subset of a container status used for aggregation.
type ContainerStatus struct {
	Name         string `json:"name"`
	RestartCount int32  `json:"restartCount"`
}

// RawPod is a pod as listed by the provider.
type RawPod struct {
	RawResource

	Phase             *string           `json:"phase,omitempty"`
	NodeName          *string           `json:"nodeName,omitempty"`
	ContainerStatuses []ContainerStatus `json:"containerStatuses,omitempty"`
}

// Resource holds the fields shared by all summaries.
type Resource struct {
	UID               string     `json:"uid"`
	Name              string     `json:"name"`
	Namespace         *string    `json:"namespace"`
	CreationTimestamp *time.Time `json:"creation_timestamp"`
}

// NamespaceSummary is the display record for a namespace.
type NamespaceSummary struct {
	Resource

	Phase string `json:"phase"`
}

// PodSummary is the display record for a pod.
type PodSummary struct {
	Resource

	Status   string  `json:"status"`
	Restarts int64   `json:"restarts"`
	Node     *string `json:"node"`
}
