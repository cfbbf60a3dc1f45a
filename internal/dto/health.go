package dto

// HealthResponse is the body served to deployment probes. Details
// carries per-dependency state on the readiness endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Details any    `json:"details,omitempty"`
}
