package pinger

import "time"

// Statistics is a point-in-time copy of one check's results.
type Statistics struct {
	IsReady             bool      `json:"ready"`
	IsHealthy           bool      `json:"healthy"`
	ReadyCritical       bool      `json:"readyCritical"`
	HealthCritical      bool      `json:"healthCritical"`
	LastRun             time.Time `json:"lastRun,omitzero"`
	LastSuccess         time.Time `json:"lastSuccess,omitzero"`
	LastLatency         string    `json:"lastLatency,omitempty"`
	LastError           string    `json:"lastError,omitempty"`
	SuccessCount        uint64    `json:"successCount"`
	ErrorCount          uint64    `json:"errorCount"`
	ConsecutiveFailures int       `json:"consecutiveFailures"`
}

type stats struct {
	lastRun             time.Time
	lastSuccess         time.Time
	lastLatency         time.Duration
	lastErr             error
	successCount        uint64
	errorCount          uint64
	consecutiveFailures int
}

func (s *stats) record(now time.Time, latency time.Duration, err error) {
	s.lastRun = now
	s.lastLatency = latency
	s.lastErr = err

	if err != nil {
		s.errorCount++
		s.consecutiveFailures++

		return
	}

	s.successCount++
	s.consecutiveFailures = 0
	s.lastSuccess = now
}

// ready is true once the check has run and its last run succeeded.
func (s *stats) ready() bool {
	return !s.lastRun.IsZero() && s.lastErr == nil
}

// healthy tolerates up to threshold-1 consecutive failures.
func (s *stats) healthy(threshold int) bool {
	return s.consecutiveFailures < threshold
}

func (c *check) snapshot(threshold int) *Statistics {
	out := &Statistics{
		IsReady:             !c.readyCritical || c.stats.ready(),
		IsHealthy:           !c.healthCritical || c.stats.healthy(threshold),
		ReadyCritical:       c.readyCritical,
		HealthCritical:      c.healthCritical,
		LastRun:             c.stats.lastRun,
		LastSuccess:         c.stats.lastSuccess,
		SuccessCount:        c.stats.successCount,
		ErrorCount:          c.stats.errorCount,
		ConsecutiveFailures: c.stats.consecutiveFailures,
	}

	if !c.stats.lastRun.IsZero() {
		out.LastLatency = c.stats.lastLatency.String()
	}

	if c.stats.lastErr != nil {
		out.LastError = c.stats.lastErr.Error()
	}

	return out
}
