package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned by the reporting API
const (
	// Authentication errors (AUTH_*)
	ErrMissingToken = "AUTH_001" // Authorization header absent
	ErrInvalidToken = "AUTH_002" // Malformed or unverifiable token
	ErrExpiredToken = "AUTH_003" // Token no longer valid

	// Validation errors (VAL_*)
	ErrInvalidRequest = "VAL_001" // Request could not be processed
	ErrInvalidDate    = "VAL_002" // Date not in YYYY-MM-DD format
	ErrInvalidChannel = "VAL_003" // Unknown sales channel
	ErrInvalidLimit   = "VAL_004" // Limit is not a positive integer

	// Server errors (SRV_*)
	ErrInternalServer    = "SRV_001" // Unexpected failure
	ErrDatabaseOperation = "SRV_002" // Analytical store query failed
)

var httpStatusMap = map[string]int{
	ErrMissingToken:      http.StatusUnauthorized,
	ErrInvalidToken:      http.StatusUnauthorized,
	ErrExpiredToken:      http.StatusUnauthorized,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrInvalidDate:       http.StatusBadRequest,
	ErrInvalidChannel:    http.StatusBadRequest,
	ErrInvalidLimit:      http.StatusBadRequest,
	ErrInternalServer:    http.StatusInternalServerError,
	ErrDatabaseOperation: http.StatusInternalServerError,
}

// APIError is the standard error payload
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes a standardized error to the HTTP response
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

// FromError wraps an existing error in an API error payload
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
