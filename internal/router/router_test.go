package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/travel-api/internal/handler"
	"github.com/deppfellow/travel-api/internal/model"
	"github.com/deppfellow/travel-api/internal/repository"
	"github.com/deppfellow/travel-api/internal/server"
	"github.com/deppfellow/travel-api/internal/service"
	"github.com/deppfellow/travel-api/internal/testutil"
)

type testApp struct {
	server *server.Server
	repos  *repository.Repositories
	router *echo.Echo
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	srv, err := server.New(testutil.NewConfig(t), testutil.NewLogger(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.DB.Close() })

	repos, err := repository.NewRepositories(srv)
	require.NoError(t, err)

	services, err := service.NewService(srv, repos)
	require.NoError(t, err)

	return &testApp{
		server: srv,
		repos:  repos,
		router: NewRouter(srv, handler.NewHandlers(srv, services)),
	}
}

func (a *testApp) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (a *testApp) seedEiffelTower(t *testing.T) {
	t.Helper()

	created, err := a.repos.Destination.Create(t.Context(), "Eiffel Tower", "France", 4.8)
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
}

func TestDestinationLifecycle(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	app.seedEiffelTower(t)

	rec := app.do(t, http.MethodGet, "/destinations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []model.Destination{
		{ID: 1, Destination: "Eiffel Tower", Country: "France", Rating: 4.8},
	}, decode[[]model.Destination](t, rec))

	rec = app.do(t, http.MethodPost, "/destinations", `{"destination":"Great Wall","country":"China","rating":4.7}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[model.Destination](t, rec)
	assert.Equal(t, model.Destination{ID: 2, Destination: "Great Wall", Country: "China", Rating: 4.7}, created)

	rec = app.do(t, http.MethodGet, "/destinations/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decode[model.Destination](t, rec))

	rec = app.do(t, http.MethodPut, "/destinations/1", `{"destination":"Eiffel Tower Updated","rating":5.0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.Destination{ID: 1, Destination: "Eiffel Tower Updated", Country: "France", Rating: 5.0},
		decode[model.Destination](t, rec))

	rec = app.do(t, http.MethodDelete, "/destinations/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.MessageResponse{Message: "Destination was deleted"}, decode[model.MessageResponse](t, rec))

	rec = app.do(t, http.MethodGet, "/destinations/1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Destination not found!", decode[map[string]any](t, rec)["error"])

	rec = app.do(t, http.MethodGet, "/destinations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.Destination](t, rec), 1)
}

func TestListEmpty(t *testing.T) {
	t.Parallel()

	rec := newTestApp(t).do(t, http.MethodGet, "/destinations", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestUpdateEmptyBodyKeepsRecord(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	app.seedEiffelTower(t)

	rec := app.do(t, http.MethodPut, "/destinations/1", `{}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.Destination{ID: 1, Destination: "Eiffel Tower", Country: "France", Rating: 4.8},
		decode[model.Destination](t, rec))
}

func TestCreateMissingField(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/destinations", `{"destination":"Colosseum","country":"Italy"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.Equal(t, "Validation failed", body["error"])
	assert.Equal(t, []any{map[string]any{"field": "rating", "error": "is required"}}, body["errors"])

	// Nothing was stored.
	rec = app.do(t, http.MethodGet, "/destinations", "")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreateZeroRating(t *testing.T) {
	t.Parallel()

	rec := newTestApp(t).do(t, http.MethodPost, "/destinations", `{"destination":"Colosseum","country":"Italy","rating":0}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Zero(t, decode[model.Destination](t, rec).Rating)
}

func TestCreateLongNames(t *testing.T) {
	t.Parallel()

	name := strings.Repeat("x", 80)
	rec := newTestApp(t).do(t, http.MethodPost, "/destinations",
		`{"destination":"`+name+`","country":"Kazakhstan","rating":3.9}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, name, decode[model.Destination](t, rec).Destination)
}

func TestUnknownID(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	tests := []struct {
		method  string
		body    string
		message string
	}{
		{method: http.MethodGet, message: "Destination not found!"},
		{method: http.MethodPut, body: `{"rating":1}`, message: "Destination not found"},
		{method: http.MethodDelete, message: "Destination not found"},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rec := app.do(t, tt.method, "/destinations/999", tt.body)

			require.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, tt.message, decode[map[string]any](t, rec)["error"])
		})
	}
}

func TestBadRequests(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{name: "non numeric id", method: http.MethodGet, target: "/destinations/abc"},
		{name: "malformed json", method: http.MethodPost, target: "/destinations", body: `{"destination":`},
		{name: "wrong type", method: http.MethodPut, target: "/destinations/1", body: `{"rating":"high"}`},
		{name: "out of range id", method: http.MethodGet, target: "/destinations/99999999999999999999"},
		{name: "array body", method: http.MethodPut, target: "/destinations/1", body: `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(t, tt.method, tt.target, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decode[map[string]any](t, rec)
			assert.Equal(t, "BAD_REQUEST", body["code"])
			assert.Equal(t, "Invalid request", body["error"])
		})
	}
}

func TestWelcome(t *testing.T) {
	t.Parallel()

	rec := newTestApp(t).do(t, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Welcome to the travel API"}`, rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()

	rec := newTestApp(t).do(t, http.MethodGet, "/nowhere", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decode[map[string]any](t, rec)["error"])
}

func TestRequestIDHeader(t *testing.T) {
	t.Parallel()

	rec := newTestApp(t).do(t, http.MethodGet, "/", "")

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestStatus(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "test", body["environment"])

	require.NoError(t, app.server.DB.Close())

	rec = app.do(t, http.MethodGet, "/status", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "unhealthy", decode[map[string]any](t, rec)["status"])
}

func TestDocs(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/docs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/docs/openapi.json")

	rec = app.do(t, http.MethodGet, "/docs/openapi.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	document := decode[map[string]any](t, rec)
	assert.Contains(t, document["paths"], "/destinations/{id}")
}
