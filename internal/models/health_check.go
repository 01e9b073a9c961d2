package models

import "time"

// Overall statuses reported by GET /api/v1/health.
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"
)

// HealthCheck is the health payload. Services maps each backend (redis,
// supabase) to its own status line.
type HealthCheck struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// NewHealthCheck stamps the report with the current time and derives the
// overall status: unhealthy as soon as one service is not ok.
func NewHealthCheck(services map[string]string, ok func(status string) bool) HealthCheck {
	status := HealthStatusHealthy
	for _, s := range services {
		if !ok(s) {
			status = HealthStatusUnhealthy
			break
		}
	}
	return HealthCheck{
		Status:    status,
		Timestamp: time.Now(),
		Services:  services,
	}
}

func (h HealthCheck) Healthy() bool {
	return h.Status == HealthStatusHealthy
}
