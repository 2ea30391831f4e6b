package apiErrors

import (
	"encoding/json"
	"net/http"
)

// API error codes
const (
	// Validation errors
	ErrInvalidRequest      = "VAL_001" // malformed request body
	ErrMissingRequiredData = "VAL_002" // required attribute absent or empty
	ErrInvalidFormat       = "VAL_003" // attribute has the wrong shape

	// Resource errors
	ErrRankItemNotFound = "RES_001" // no item with the given id
	ErrRankItemConflict = "RES_002" // duplicate site name or rank

	// Server errors
	ErrInternalServer    = "SRV_001" // unexpected failure
	ErrDatabaseOperation = "SRV_002" // storage operation failed
)

// Error code to HTTP status mapping
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrRankItemNotFound:    http.StatusNotFound,
	ErrRankItemConflict:    http.StatusConflict,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
}

// APIError is the fixed response shape for every failed request. Message is
// a generic human-readable description; internal error detail stays in the
// server logs.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error response.
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
