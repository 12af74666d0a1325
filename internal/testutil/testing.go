package testutil

import (
	"captive-portal/internal/config"
	"captive-portal/internal/middlewares"
	"captive-portal/internal/mocks"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"
)

const TestRedirectURL = "http://hotspot.test.local"

// TestContext holds everything needed for testing
type TestContext struct {
	AppContext     *middlewares.AppContext
	Request        *http.Request
	Response       *httptest.ResponseRecorder
	MockController *gomock.Controller
	MockStorage    *mocks.MockStorageProvider
	LogHandler     *TestLogHandler
}

// NewTestConfig returns a validated-looking config pointing storage at dir.
func NewTestConfig(dir string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:         config.DefaultServerConfig.Port,
			PublicDir:    dir,
			MaxBodyBytes: config.DefaultServerConfig.MaxBodyBytes,
		},
		Portal: config.PortalConfig{
			RedirectURL: TestRedirectURL,
		},
		Storage: config.StorageConfig{
			Directory: dir,
			FileName:  config.DefaultStorageConfig.FileName,
		},
		Log:  config.DefaultLogConfig,
		CORS: config.DefaultCORSConfig,
	}
}

// NewTestContextWithRequest wires req into an AppContext backed by a mock store.
func NewTestContextWithRequest(t *testing.T, req *http.Request) *TestContext {
	logHandler := NewTestLogHandler()
	logger := slog.New(logHandler)

	ctrl := gomock.NewController(t)
	mockStorage := mocks.NewMockStorageProvider(ctrl)

	rr := httptest.NewRecorder()

	appCtx := &middlewares.AppContext{
		Context:  req.Context(),
		Config:   NewTestConfig(t.TempDir()),
		Logger:   logger,
		Storage:  mockStorage,
		Request:  req,
		Response: rr,
	}

	return &TestContext{
		AppContext:     appCtx,
		Request:        req,
		Response:       rr,
		MockController: ctrl,
		MockStorage:    mockStorage,
		LogHandler:     logHandler,
	}
}

// NewTestContextWithURL creates a complete test setup with sensible defaults
func NewTestContextWithURL(t *testing.T, method, url string) *TestContext {
	return NewTestContextWithRequest(t, httptest.NewRequest(method, url, nil))
}

// Finish should be called at the end of tests to clean up mocks
func (tc *TestContext) Finish() {
	if tc.MockController != nil {
		tc.MockController.Finish()
	}
}

func (tc *TestContext) AssertLogContains(t *testing.T, level slog.Level, message string) {
	t.Helper()
	if !tc.LogHandler.ContainsMessage(level, message) {
		t.Errorf("Expected to find log entry with level %v containing message: %s", level, message)
	}
}

func (tc *TestContext) AssertLogCount(t *testing.T, level slog.Level, expectedCount int) {
	t.Helper()
	count := tc.LogHandler.CountByLevel(level)
	if count != expectedCount {
		t.Errorf("Expected %d log entries at level %v, got %d", expectedCount, level, count)
	}
}

// CallHandler executes a handler with the test context
func (tc *TestContext) CallHandler(handler middlewares.AppHandler) {
	handler(tc.AppContext)
}

// AssertStatus checks the HTTP status code
func (tc *TestContext) AssertStatus(t *testing.T, expectedStatus int) {
	t.Helper()
	if tc.Response.Code != expectedStatus {
		t.Errorf("Expected status %d, got %d", expectedStatus, tc.Response.Code)
	}
}

// AssertRedirect checks for a 302 to the configured portal redirect.
func (tc *TestContext) AssertRedirect(t *testing.T) {
	t.Helper()
	tc.AssertStatus(t, http.StatusFound)
	if location := tc.Response.Header().Get("Location"); location != tc.AppContext.Config.Portal.RedirectURL {
		t.Errorf("Expected redirect to %s, got %s", tc.AppContext.Config.Portal.RedirectURL, location)
	}
}

// AssertContentType checks the content type header
func (tc *TestContext) AssertContentType(t *testing.T, expectedType string) {
	t.Helper()
	if ct := tc.Response.Header().Get("Content-Type"); ct != expectedType {
		t.Errorf("Expected content type %s, got %s", expectedType, ct)
	}
}

// AssertJSONField checks a top-level string field of a JSON response.
func (tc *TestContext) AssertJSONField(t *testing.T, field, expected string) {
	t.Helper()
	response := tc.GetJSONResponse(t)
	if got, _ := response[field].(string); got != expected {
		t.Errorf("Expected JSON field %s to be %q, got %v", field, expected, response[field])
	}
}

// GetJSONResponse parses the response body as JSON
func (tc *TestContext) GetJSONResponse(t *testing.T) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(tc.Response.Body.Bytes(), &response); err != nil {
		t.Fatalf("Could not parse JSON response: %v", err)
	}
	return response
}
