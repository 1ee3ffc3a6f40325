package k8s

import (
	"errors"
	"fmt"
)

// ErrNoKubeConfig is returned when neither in-cluster nor local configuration is usable.
var ErrNoKubeConfig = errors.New("no kubernetes configuration found")

const unavailableMessage = "K8s Client not configured"

// UnavailableError is returned by every call of the Unavailable provider.
type UnavailableError struct{}

func (e *UnavailableError) Error() string {
	return unavailableMessage
}

func (e *UnavailableError) IsUnavailable() {}

var errUnavailable = &UnavailableError{}

// TooManyRequestsError represents the API server throttling the client.
type TooManyRequestsError struct{}

func (e *TooManyRequestsError) Error() string {
	return "too many requests"
}

func (e *TooManyRequestsError) IsTooManyRequests() {}

var errTooManyRequests = &TooManyRequestsError{}

// NotFoundError represents a resource that does not exist.
type NotFoundError struct {
	Resource  string
	Namespace string
	Name      string
}

func (e *NotFoundError) Error() string {
	if e.Namespace == "" {
		return fmt.Sprintf("%s %q not found", e.Resource, e.Name)
	}

	return fmt.Sprintf("%s %s/%s not found", e.Resource, e.Namespace, e.Name)
}

func (e *NotFoundError) IsNotFound() {}
