package model

// QueryResult is the outcome of a successful round trip to the backend
type QueryResult struct {
	Answer     string `json:"answer"`
	Succeeded  bool   `json:"success"`
	StatusNote string `json:"message"`
	Cached     bool   `json:"cached"` // Answer came from a fast path (quick answer or cache)
}

// HealthStatus is the advisory connectivity state of the backend
type HealthStatus string

const (
	HealthChecking  HealthStatus = "checking"  // No probe has completed yet
	HealthHealthy   HealthStatus = "healthy"   // Last probe or query succeeded
	HealthUnhealthy HealthStatus = "unhealthy" // Last probe or query failed
)

// HealthReport is the result of a single health probe
type HealthReport struct {
	Status  HealthStatus `json:"status"`
	Message string       `json:"message"`
}
