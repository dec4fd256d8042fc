package store

import (
	"context"
	"time"
)

// Health statuses.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	StatusDisabled  = "disabled"
)

// HealthStatus is the result of a database ping.
type HealthStatus struct {
	Status       string        `json:"status"`
	Timestamp    time.Time     `json:"timestamp"`
	Environment  string        `json:"environment"`
	ResponseTime time.Duration `json:"response_time"`
	Error        string        `json:"error,omitempty"`
}

// Healthy reports whether the check passed or was disabled.
func (h HealthStatus) Healthy() bool {
	return h.Status != StatusUnhealthy
}

// Health pings the pool within the configured health check timeout.
func (s *Store) Health(ctx context.Context) HealthStatus {
	checks := s.Config.Observability.HealthChecks

	status := HealthStatus{
		Status:      StatusHealthy,
		Timestamp:   time.Now().UTC(),
		Environment: s.Config.Primary.Env,
	}

	if !checks.Enabled {
		status.Status = StatusDisabled
		return status
	}

	logger := s.Logger.With().Str("operation", "health_check").Logger()

	ctx, cancel := context.WithTimeout(ctx, checks.Timeout)
	defer cancel()

	start := time.Now()
	err := s.pool.Ping(ctx)
	status.ResponseTime = time.Since(start)

	if err != nil {
		status.Status = StatusUnhealthy
		status.Error = err.Error()

		logger.Error().
			Err(err).
			Dur("response_time", status.ResponseTime).
			Msg("database health check failed")
		return status
	}

	logger.Debug().
		Dur("response_time", status.ResponseTime).
		Msg("database health check passed")
	return status
}
