package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"funbook/pkg/response"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Stub catalog handler; the route behavior itself is covered in the delivery
// package tests.
type stubBookHandler struct{}

func (stubBookHandler) List(c *gin.Context)       { c.Status(http.StatusOK) }
func (stubBookHandler) Categories(c *gin.Context) { c.Status(http.StatusOK) }
func (stubBookHandler) Detail(c *gin.Context)     { c.Status(http.StatusOK) }
func (stubBookHandler) Note(c *gin.Context)       { c.Status(http.StatusOK) }
func (stubBookHandler) Refresh(c *gin.Context)    { c.Status(http.StatusOK) }

func newTestServer(t *testing.T) HTTPServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := HTTPServer{
		l:           &mockLogger{},
		gin:         gin.New(),
		port:        8080,
		mode:        gin.TestMode,
		environment: "development",
		bookHandler: stubBookHandler{},
	}
	if err := srv.mapHandlers(); err != nil {
		t.Fatalf("mapHandlers: %v", err)
	}
	return srv
}

func serve(srv HTTPServer, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	srv.gin.ServeHTTP(w, req)
	return w
}

func TestSystemRoutes(t *testing.T) {
	t.Run("health", func(t *testing.T) {
		srv := newTestServer(t)

		w := serve(srv, http.MethodGet, "/health")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown route gets the 404 envelope", func(t *testing.T) {
		srv := newTestServer(t)

		w := serve(srv, http.MethodGet, "/no/such/route")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp.Message != "route not found" {
			t.Errorf("unexpected message: %s", resp.Message)
		}
	})

	t.Run("panic recovers into the 500 envelope", func(t *testing.T) {
		srv := newTestServer(t)
		srv.gin.GET("/boom", func(c *gin.Context) {
			panic("kaput")
		})

		w := serve(srv, http.MethodGet, "/boom")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp.Message != response.DefaultErrorMessage {
			t.Errorf("panic detail must not leak, got %s", resp.Message)
		}
	})
}
