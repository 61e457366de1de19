package api

import (
	"encoding/json"
	"net/http"

	"github.com/leadscout-hq/leadscout/internal/domain"
)

// SuccessResponse wraps successful API responses
type SuccessResponse struct {
	Data interface{} `json:"data"`
}

// ErrorResponse represents an error API response. Kind, Field and Reason are
// populated when the error originated from the search error taxonomy so the
// UI can highlight the offending form field.
type ErrorResponse struct {
	Error  string `json:"error"`
	Kind   string `json:"kind,omitempty"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// JSON writes a JSON response with the given status code
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// Success writes a successful JSON response
func Success(w http.ResponseWriter, status int, data interface{}) {
	JSON(w, status, SuccessResponse{Data: data})
}

// Error writes an error JSON response
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Error: message})
}

// Failure writes a search failure with its taxonomy metadata.
func Failure(w http.ResponseWriter, serr *domain.SearchError) {
	JSON(w, SearchErrorToHTTP(serr), ErrorResponse{
		Error:  serr.Message,
		Kind:   string(serr.Kind),
		Field:  serr.Field,
		Reason: serr.Reason,
	})
}

// SearchErrorToHTTP maps search error kinds to HTTP status codes. Validation
// is the user's to fix; everything else is an upstream problem.
func SearchErrorToHTTP(serr *domain.SearchError) int {
	if serr == nil {
		return http.StatusOK
	}

	switch serr.Kind {
	case domain.ErrKindValidation:
		return http.StatusBadRequest
	case domain.ErrKindRejected, domain.ErrKindTransport, domain.ErrKindProtocol:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
