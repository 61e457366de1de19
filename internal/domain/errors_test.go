package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchError_Error(t *testing.T) {
	err := NewRejectedError(500, "rate limited")
	assert.Equal(t, "[rejected] rate limited", err.Error())
	assert.Equal(t, 500, err.StatusCode)
}

func TestSearchError_ErrorWithCause(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := NewProtocolError("failed to decode search response", cause)
	assert.Contains(t, err.Error(), "failed to decode search response")
	assert.Contains(t, err.Error(), "unexpected end of JSON input")
}

func TestSearchError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewTransportError(cause)
	assert.True(t, errors.Is(err, cause))
	assert.NotEmpty(t, err.Message)
}

func TestNewRequiredFieldError(t *testing.T) {
	err := NewRequiredFieldError("keywords")
	require.NotNil(t, err)
	assert.Equal(t, ErrKindValidation, err.Kind)
	assert.Equal(t, "keywords", err.Field)
	assert.Equal(t, ReasonRequired, err.Reason)
	assert.Equal(t, "keywords is required", err.Message)
}

func TestNewUnmappedLabelError(t *testing.T) {
	err := NewUnmappedLabelError("employment_type", "Gig")
	assert.Equal(t, ErrKindValidation, err.Kind)
	assert.Equal(t, ReasonUnmapped, err.Reason)
	assert.Contains(t, err.Message, `"Gig"`)
}
