package inventory

import "errors"

var (
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInvalidArgument     = errors.New("invalid argument")

	ErrListNamespaces = errors.New("list namespaces")
	ErrGetNamespace   = errors.New("get namespace")
	ErrListPods       = errors.New("list pods")
	ErrGetPod         = errors.New("get pod")
	ErrGetPodLogs     = errors.New("get pod logs")
	ErrGetPodUsage    = errors.New("get pod usage")
)
