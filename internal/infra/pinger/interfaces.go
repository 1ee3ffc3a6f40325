package pinger

import (
	"context"
	"time"
)

// Pinger defines the interface for health check pingers
type Pinger interface {
	Name() string
	Ping(ctx context.Context) error
}

type readyCriticalPinger interface {
	PingerReadyCritical() bool
}

type healthCriticalPinger interface {
	PingerCritical() bool
}

type timeoutPinger interface {
	PingerTimeout() time.Duration
}
