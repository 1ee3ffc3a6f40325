package httpserver

import "time"

const (
	defaultPort = "8000"

	readTimeout       = 3 * time.Second
	readHeaderTimeout = 3 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	maxHeaderBytes    = 1 << 12 // 4kb
)

// Query parameters and URL params.
const (
	paramNamespace = "namespace"
	paramName      = "name"
	paramContainer = "container"
	paramTailLines = "tail_lines"
)

// Error details returned in the {"detail": ...} envelope.
const (
	detailProviderUnavailable = "K8s Client not configured"
	detailNotFound            = "not found"
	detailThrottled           = "cluster API is throttling requests"
)

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"
)
