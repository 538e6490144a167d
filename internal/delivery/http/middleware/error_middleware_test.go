package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"locus/internal/delivery/http/response"
	domainerrors "locus/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{
			name:     "app error",
			err:      domainerrors.ErrPageOutOfRange.WithDetails("page 12 of 10"),
			wantCode: http.StatusBadRequest,
			wantErr:  "PAGE_OUT_OF_RANGE",
		},
		{
			name:     "upstream error",
			err:      domainerrors.NewUpstreamError(domainerrors.ErrPanoramaUnavailable, errors.New("status 403")),
			wantCode: http.StatusBadGateway,
			wantErr:  "PANORAMA_UNAVAILABLE",
		},
		{
			name:     "echo error",
			err:      echo.NewHTTPError(http.StatusNotFound, "Not Found"),
			wantCode: http.StatusNotFound,
			wantErr:  "HTTP_ERROR",
		},
		{
			name:     "unknown error",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantErr:  "INTERNAL_ERROR",
		},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/view", nil), rec)

			m.HandleHTTPError(tt.err, c)

			require.Equal(t, tt.wantCode, rec.Code)

			var body response.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantCode, body.Code)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantErr, body.Error.Code)
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/panorama", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "partial"))

	m.HandleHTTPError(errors.New("stream broke"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}
