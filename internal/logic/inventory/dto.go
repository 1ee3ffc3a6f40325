package inventory

import "time"

// LogOptions narrows a pod log request.
type LogOptions struct {
	// Container is required for multi-container pods; empty selects the only container.
	Container string
	TailLines int64
}

// ContainerUsage is the current resource usage of one container.
type ContainerUsage struct {
	Name          string `json:"name"`
	CPUMillicores int64  `json:"cpu_millicores"`
	MemoryBytes   int64  `json:"memory_bytes"`
}

// PodUsage is the current resource usage of a pod as reported by metrics-server.
type PodUsage struct {
	Namespace     string           `json:"namespace"`
	Name          string           `json:"name"`
	Timestamp     time.Time        `json:"timestamp"`
	Window        string           `json:"window"`
	Containers    []ContainerUsage `json:"containers"`
	CPUMillicores int64            `json:"cpu_millicores"`
	MemoryBytes   int64            `json:"memory_bytes"`
}
