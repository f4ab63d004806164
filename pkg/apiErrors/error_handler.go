package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned by the operational API
const (
	// Validation errors
	ErrInvalidRequest      = "VAL_001" // Malformed request
	ErrMissingRequiredData = "VAL_002" // Required data absent
	ErrInvalidFormat       = "VAL_003" // Bad data format (e.g. date)

	// Server errors
	ErrInternalServer  = "SRV_001" // Internal error
	ErrExternalService = "SRV_003" // Upstream sales API failure

	// Export errors
	ErrExportRunning = "EXP_001" // An export run is already in progress
)

var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrExportRunning:       http.StatusConflict,
}

// APIError is the standard error envelope of the operational API
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standard error envelope to the HTTP response
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
