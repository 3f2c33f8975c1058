package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iamigrante/portal/internal/config"
	"github.com/iamigrante/portal/internal/events"
)

// recordingPublisher keeps published events in memory
type recordingPublisher struct {
	mu     sync.Mutex
	events []*events.AnswersSubmittedEvent
}

func (p *recordingPublisher) AnswersSubmitted(
	_ context.Context,
	event *events.AnswersSubmittedEvent,
) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Events() []*events.AnswersSubmittedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*events.AnswersSubmittedEvent(nil), p.events...)
}

// TestApp holds all the test dependencies
type TestApp struct {
	App       *App
	Router    http.Handler
	Publisher *recordingPublisher
}

// testConfig mirrors the defaults with limits high enough for tests
func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:           8080,
			BaseURL:        "http://localhost:8080",
			RateLimitRPS:   1000,
			RateLimitBurst: 2000,
			MaxBodySize:    1 << 20,
			EnableDocs:     true,
		},
		Logging: config.LoggingConfig{Level: "info", Format: "json"},
		Site: config.SiteConfig{
			FirmName:     "Bufete Prueba",
			ContactEmail: "hola@example.com",
			Phone:        "555-0100",
		},
	}
}

// SetupTestApp builds the full router over in-memory dependencies
func SetupTestApp(t *testing.T, cfg *config.Config) *TestApp {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := &recordingPublisher{}

	app, err := newApp(cfg, publisher, logger)
	require.NoError(t, err)

	return &TestApp{
		App:       app,
		Router:    newRouter(app, cfg.Server),
		Publisher: publisher,
	}
}

// Do sends a request through the router
func (ta *TestApp) Do(t *testing.T, method, target, body string, opts ...func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}
	w := httptest.NewRecorder()
	ta.Router.ServeHTTP(w, req)
	return w
}

// AssertJSONEqual compares two JSON strings for semantic equality
func AssertJSONEqual(t *testing.T, expected, actual string, msgAndArgs ...interface{}) {
	var expectedJSON, actualJSON interface{}
	require.NoError(t, json.Unmarshal([]byte(expected), &expectedJSON))
	require.NoError(t, json.Unmarshal([]byte(actual), &actualJSON))
	require.Equal(t, expectedJSON, actualJSON, msgAndArgs...)
}

// TestHealthEndpoint tests the health check endpoint
func TestHealthEndpoint(t *testing.T) {
	ta := SetupTestApp(t, nil)

	w := ta.Do(t, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	AssertJSONEqual(t, `{"status":"ok"}`, w.Body.String())

	// Test OpenAPI JSON spec endpoint
	w = ta.Do(t, http.MethodGet, "/openapi.json", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "json")

	var spec map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &spec))
	require.Contains(t, spec, "openapi", "Should contain openapi version")
	require.Contains(t, spec, "paths", "Should contain paths section")

	info, ok := spec["info"].(map[string]interface{})
	require.True(t, ok, "info should be an object")
	require.Equal(t, "Portal API", info["title"])
	require.Equal(t, "0.1.0", info["version"])

	paths, ok := spec["paths"].(map[string]interface{})
	require.True(t, ok, "paths should be an object")
	require.Contains(t, paths, "/api/documents/questions")
	require.Contains(t, paths, "/api/user")
}

func TestDocsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Server.EnableDocs = false
	ta := SetupTestApp(t, cfg)

	w := ta.Do(t, http.MethodGet, "/openapi.json", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Server.RateLimitRPS = 1
	cfg.Server.RateLimitBurst = 1
	ta := SetupTestApp(t, cfg)

	require.Equal(t, http.StatusOK, ta.Do(t, http.MethodGet, "/api/user", "").Code)
	require.Equal(t, http.StatusTooManyRequests, ta.Do(t, http.MethodGet, "/api/user", "").Code)
}

func TestNewApp_CustomUsers(t *testing.T) {
	cfg := testConfig()
	cfg.Users = []config.UserConfig{
		{ID: 10, Email: "a@example.com", Name: "A", Role: "admin"},
		{ID: 11, Email: "b@example.com", Name: "B", Role: "lawyer"},
		{ID: 12, Email: "c@example.com", Name: "C", Role: "paralegal"},
		{ID: 13, Email: "d@example.com", Name: "D", Role: "client"},
	}
	ta := SetupTestApp(t, cfg)

	w := ta.Do(t, http.MethodGet, "/api/user", "")
	require.Equal(t, http.StatusOK, w.Code)
	AssertJSONEqual(t, `{"id":13,"email":"d@example.com","name":"D","role":"client"}`, w.Body.String())
}

func TestNewApp_InvalidUsers(t *testing.T) {
	cfg := testConfig()
	cfg.Users = []config.UserConfig{{ID: 1, Email: "a@example.com", Name: "A", Role: "admin"}}

	_, err := newApp(cfg, events.NopPublisher{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
}

func TestNewApp_MissingTemplateFile(t *testing.T) {
	cfg := testConfig()
	cfg.Catalog.TemplatePath = t.TempDir() + "/missing.json"

	_, err := newApp(cfg, events.NopPublisher{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	_, err := newLogger(config.LoggingConfig{Level: "debug", Format: "text"})
	require.NoError(t, err)

	_, err = newLogger(config.LoggingConfig{Level: "loud", Format: "json"})
	require.Error(t, err)
}
