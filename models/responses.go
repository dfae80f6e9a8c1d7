package models

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Message string `json:"message"`
}

// FieldError describes a single rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx JSON response.
//
// Detail is a human-readable description; Errors lists per-field problems
// for validation failures and is omitted otherwise.
type ErrorResponse struct {
	Detail string       `json:"detail"`
	Errors []FieldError `json:"errors,omitempty"`
}

// BuildInfoResponse exposes build metadata over HTTP.
type BuildInfoResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
