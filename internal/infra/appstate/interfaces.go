package appstate

import (
	"time"

	"github.com/skillcoder/kubedev-controller/internal/infra/pinger"
)

type pingerStatsGetter interface {
	GetAllStats() map[string]*pinger.Statistics
}

// pingerServer is the part of the pinger service the app state depends on.
type pingerServer interface {
	Register(p pinger.Pinger) error
	IsReady() bool
	IsHealthy() bool
	pingerStatsGetter
}

type healthChecker interface {
	IsHealthy() bool
}

type readyChecker interface {
	IsReady() bool
}

type statusGetter interface {
	pingerStatsGetter
	GetState() State
	GetUptime() time.Duration
	GetStartTime() time.Time
}
