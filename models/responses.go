package models

// CreatedResponse is returned by every endpoint that persists a new record.
// ID is the storage-assigned identifier of the created document.
type CreatedResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// MessageResponse is a minimal informational body, used by the root route.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the JSON error body for failed requests.
// Error carries the textual cause reported to the client.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// DiagnosticReport is the body of the GET /test diagnostic route.
// The field set and the human-readable status strings follow the operational
// dashboard that consumes this endpoint, so key names are fixed.
type DiagnosticReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
