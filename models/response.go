package models

// MessageResponse is returned on success
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is returned on failure
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by the liveness endpoints
type HealthResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
	Database string `json:"database,omitempty"`
	OTPStore string `json:"otpStore,omitempty"`
}
