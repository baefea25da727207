package pinger

import (
	"context"
	"time"
)

// Pinger is a dependency health check.
type Pinger interface {
	Name() string
	Ping(ctx context.Context) error
}

// Optional interfaces a Pinger may implement to tune how its result counts.
type readyCriticalPinger interface {
	PingerReadyCritical() bool
}

type healthCriticalPinger interface {
	PingerCritical() bool
}

type timeoutPinger interface {
	PingerTimeout() time.Duration
}
