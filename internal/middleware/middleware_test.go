package middleware

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/travel-api/internal/errs"
	"github.com/deppfellow/travel-api/internal/server"
	"github.com/deppfellow/travel-api/internal/testutil"
)

func newTestServer(t *testing.T) *server.Server {
	t.Helper()

	return &server.Server{
		Config: testutil.NewConfig(t),
		Logger: testutil.NewLogger(),
	}
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	e := echo.New()

	var seen string
	handler := RequestID()(func(c echo.Context) error {
		seen = GetRequestID(c)
		return c.NoContent(http.StatusOK)
	})

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req, rec)))

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	})
}

func TestGetLoggerFallsBackToNop(t *testing.T) {
	t.Parallel()

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Equal(t, zerolog.Disabled, GetLogger(c).GetLevel())
	assert.Equal(t, zerolog.Disabled, GetLoggerFromContext(context.Background()).GetLevel())
}

func TestEnhanceContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	s := newTestServer(t)
	s.Logger = &logger

	e := echo.New()
	handler := RequestID()(NewContextEnhancer(s).EnhanceContext()(func(c echo.Context) error {
		require.Same(t, GetLogger(c), GetLoggerFromContext(c.Request().Context()))
		GetLoggerFromContext(c.Request().Context()).Info().Msg("inside")
		return nil
	}))

	req := httptest.NewRequest(http.MethodGet, "/destinations", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	require.NoError(t, handler(e.NewContext(req, httptest.NewRecorder())))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, http.MethodGet, line["method"])
	assert.Equal(t, "inside", line["message"])
}

func TestGlobalErrorHandler(t *testing.T) {
	t.Parallel()

	global := NewGlobalMiddlewares(newTestServer(t))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   map[string]any
	}{
		{
			name:       "application error",
			err:        errs.NewNotFoundError("Destination not found!", true, nil),
			wantStatus: http.StatusNotFound,
			wantBody:   map[string]any{"error": "Destination not found!", "code": "NOT_FOUND"},
		},
		{
			name: "wrapped validation error",
			err: errors.Wrap(errs.NewBadRequestError("Validation failed", true, nil,
				[]errs.FieldError{{Field: "rating", Error: "is required"}}), "create"),
			wantStatus: http.StatusBadRequest,
			wantBody: map[string]any{
				"error":  "Validation failed",
				"code":   "BAD_REQUEST",
				"errors": []any{map[string]any{"field": "rating", "error": "is required"}},
			},
		},
		{
			name:       "unknown route",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   map[string]any{"error": "Route not found", "code": "NOT_FOUND"},
		},
		{
			name:       "method not allowed",
			err:        echo.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   map[string]any{"error": "Method Not Allowed", "code": "METHOD_NOT_ALLOWED"},
		},
		{
			name:       "no rows",
			err:        errors.Wrap(sql.ErrNoRows, "select"),
			wantStatus: http.StatusNotFound,
			wantBody:   map[string]any{"error": "Resource not found", "code": "NOT_FOUND"},
		},
		{
			name:       "internal error is not leaked",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   map[string]any{"error": "Internal Server Error", "code": "INTERNAL_SERVER_ERROR"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/destinations/1", nil), rec)

			global.GlobalErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestGlobalErrorHandlerCommittedResponse(t *testing.T) {
	t.Parallel()

	global := NewGlobalMiddlewares(newTestServer(t))

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	global.GlobalErrorHandler(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}

func TestTracingWithoutNewRelic(t *testing.T) {
	t.Parallel()

	tm := NewTracingMiddleware(newTestServer(t), nil)

	called := false
	handler := tm.NewRelicMiddleware()(tm.EnhanceTracing()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	require.NoError(t, handler(echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))

	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
