package model

// APIInfo is the static descriptor served at the root path.
type APIInfo struct {
	Message   string       `json:"message"`
	Version   string       `json:"version"`
	Endpoints APIEndpoints `json:"endpoints"`
}

// APIEndpoints lists the top-level resources.
type APIEndpoints struct {
	Users  string `json:"users"`
	Health string `json:"health"`
}

// HealthStatus is served by the health endpoint.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
