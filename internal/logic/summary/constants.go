package summary

// PhaseUnknown is reported when the control plane gives no phase.
const PhaseUnknown = "Unknown"

const (
	KindNamespace = "namespace"
	KindPod       = "pod"
)
