package domain

import "fmt"

// ErrorKind classifies a failed search outcome.
type ErrorKind string

const (
	// ErrKindValidation marks input the user can fix before resubmitting.
	// Validation failures are never sent over the network.
	ErrKindValidation ErrorKind = "validation"
	// ErrKindProtocol marks a response body that was empty or failed to
	// decode as the expected schema.
	ErrKindProtocol ErrorKind = "protocol"
	// ErrKindRejected marks a non-2xx response carrying a server message.
	ErrKindRejected ErrorKind = "rejected"
	// ErrKindTransport marks a network-level failure with no response.
	ErrKindTransport ErrorKind = "transport"
)

// Validation reasons surfaced on SearchError.Reason.
const (
	ReasonRequired = "required"
	ReasonUnmapped = "unmapped"
)

// SearchError describes why a submission failed. None of the kinds are fatal
// to the orchestrator; every failure settles the lifecycle and a new
// submission may follow.
type SearchError struct {
	Kind       ErrorKind `json:"kind"`
	Field      string    `json:"field,omitempty"`  // offending raw-input field (validation only)
	Reason     string    `json:"reason,omitempty"` // "required" or "unmapped" (validation only)
	StatusCode int       `json:"status_code,omitempty"`
	Message    string    `json:"message"`
	Err        error     `json:"-"`
}

// Error implements the error interface.
func (e *SearchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *SearchError) Unwrap() error {
	return e.Err
}

// NewRequiredFieldError reports a missing required raw-input field.
func NewRequiredFieldError(field string) *SearchError {
	return &SearchError{
		Kind:    ErrKindValidation,
		Field:   field,
		Reason:  ReasonRequired,
		Message: fmt.Sprintf("%s is required", field),
	}
}

// NewUnmappedLabelError reports a filter label with no canonical token.
func NewUnmappedLabelError(field, label string) *SearchError {
	return &SearchError{
		Kind:    ErrKindValidation,
		Field:   field,
		Reason:  ReasonUnmapped,
		Message: fmt.Sprintf("unrecognized %s label %q", field, label),
	}
}

// NewProtocolError reports a response body that could not be decoded. The
// message always names the decoding failure.
func NewProtocolError(message string, err error) *SearchError {
	return &SearchError{
		Kind:    ErrKindProtocol,
		Message: message,
		Err:     err,
	}
}

// NewRejectedError reports a non-2xx backend response.
func NewRejectedError(statusCode int, message string) *SearchError {
	return &SearchError{
		Kind:       ErrKindRejected,
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewTransportError reports a network failure with no response received.
func NewTransportError(err error) *SearchError {
	return &SearchError{
		Kind:    ErrKindTransport,
		Message: "request failed",
		Err:     err,
	}
}
