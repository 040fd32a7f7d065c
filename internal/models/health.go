package models

// HealthStatus contains health status of the calculator and its store.
type HealthStatus struct {
	Calculator string `json:"calculator"`
	Database   string `json:"database"`
}
