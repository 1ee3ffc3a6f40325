package config

import "time"

// Env key constants. All service configuration env vars use the KUBENEXUS_ prefix;
// duration values support explicit units (e.g. 5s, 1m).

// Path to a single kubeconfig file. If unset, the standard loading rules apply
// (the KUBECONFIG list, then ~/.kube/config).
const envKeyKubeConfig = "KUBENEXUS_KUBECONFIG"

// Kubernetes API server URL. If unset, KUBERNETES_MASTER is used as fallback.
const envKeyKubeMaster = "KUBENEXUS_KUBE_MASTER"

// Log level: debug, info, warn, error.
const envKeyLogLevel = "KUBENEXUS_LOG_LEVEL"

// Log format: json or text.
const envKeyLogFormat = "KUBENEXUS_LOG_FORMAT"

// Port for the API server (namespaces, pods, health).
const envKeyHTTPPort = "KUBENEXUS_HTTP_PORT"

// Port for Prometheus metrics (GET /metrics).
const envKeyMetricsPort = "KUBENEXUS_METRICS_PORT"

// Pinger check interval. Units: s, m, h (e.g. 10s, 1m).
const (
	envKeyPingerInterval = "KUBENEXUS_PINGER_INTERVAL"
	envMinPingerInterval = time.Second
)

// When true, /-/readyz fails while the Kubernetes API is unreachable.
const envKeyClusterReadyCritical = "KUBENEXUS_CLUSTER_READY_CRITICAL"

// Default and maximum number of log lines returned by the pod logs endpoint.
const (
	envKeyLogTailLines    = "KUBENEXUS_LOG_TAIL_LINES"
	envKeyLogTailLinesMax = "KUBENEXUS_LOG_TAIL_LINES_MAX"
)

// Span exporter: none, stdout or otlp.
const envKeyTracingExporter = "KUBENEXUS_TRACING_EXPORTER"

// OTLP/HTTP collector endpoint (host:port) and whether to use plain HTTP.
const (
	envKeyOTLPEndpoint = "KUBENEXUS_OTLP_ENDPOINT"
	envKeyOTLPInsecure = "KUBENEXUS_OTLP_INSECURE"
)

// service.name reported on spans.
const envKeyServiceName = "KUBENEXUS_SERVICE_NAME"

// Standard k8s env key used as fallback when KUBENEXUS_KUBE_MASTER is unset.
const envKeyKubeMasterFallback = "KUBERNETES_MASTER"
