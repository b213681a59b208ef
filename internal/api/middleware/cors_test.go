package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func corsRouter(allowed []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware(allowed))
	r.GET("/api/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		method     string
		origin     string
		wantStatus int
		wantOrigin string
	}{
		{"allowed origin", []string{"http://app.local"}, http.MethodGet, "http://app.local", http.StatusOK, "http://app.local"},
		{"foreign origin", []string{"http://app.local"}, http.MethodGet, "http://evil.local", http.StatusOK, ""},
		{"no config allows all", nil, http.MethodGet, "http://any.local", http.StatusOK, "http://any.local"},
		{"wildcard", []string{"*"}, http.MethodGet, "http://any.local", http.StatusOK, "http://any.local"},
		{"preflight", []string{"http://app.local"}, http.MethodOptions, "http://app.local", http.StatusNoContent, "http://app.local"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/ping", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			corsRouter(tt.allowed).ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Fatalf("allow origin = %q, want %q", got, tt.wantOrigin)
			}
			if tt.wantOrigin != "" && w.Header().Get("Access-Control-Expose-Headers") == "" {
				t.Fatal("expose headers missing")
			}
		})
	}
}

func TestTraceMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceMiddleware())
	var seen string
	r.GET("/", func(c *gin.Context) { seen = c.GetString("trace_id") })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceHeader, "abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if seen != "abc" || w.Header().Get(traceHeader) != "abc" {
		t.Fatalf("incoming trace id not reused: seen=%q header=%q", seen, w.Header().Get(traceHeader))
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if seen == "" || seen == "abc" || w.Header().Get(traceHeader) != seen {
		t.Fatalf("expected a generated trace id, got %q", seen)
	}
}
