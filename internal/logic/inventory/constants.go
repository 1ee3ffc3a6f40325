package inventory

// Operation names used as metric labels.
const (
	opListNamespaces = "list_namespaces"
	opGetNamespace   = "get_namespace"
	opListPods       = "list_pods"
	opGetPod         = "get_pod"
	opGetPodLogs     = "get_pod_logs"
	opGetPodUsage    = "get_pod_usage"
)

// allNamespaces is logged in place of an empty namespace filter.
const allNamespaces = "ALL"
