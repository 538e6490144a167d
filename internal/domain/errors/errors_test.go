package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrPageOutOfRange.WithDetails("page 12 of 10")

	assert.Equal(t, "page 12 of 10", err.Details())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.ErrorIs(t, err, ErrPageOutOfRange)
	assert.NotErrorIs(t, err, ErrInvalidPage)
}

func TestUpstreamError(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewUpstreamError(ErrRouteUnavailable, cause)

	assert.ErrorIs(t, err, ErrRouteUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusServiceUnavailable, err.HTTPCode())
	assert.Equal(t, "ROUTE_UNAVAILABLE", err.ErrorCode())
	assert.Equal(t, "connection refused", err.Details())
	assert.Contains(t, err.Error(), "connection refused")

	var appErr AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Route could not be loaded", appErr.Message())
}
