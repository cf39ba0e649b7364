package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-api/config"
	"clinic-api/internal/delivery/http/middleware"
	"clinic-api/pkg/jwt"
	"clinic-api/pkg/ratelimit"

	"github.com/sirupsen/logrus"
)

func newTestRouter() http.Handler {
	log := logrus.New()
	log.SetOutput(io.Discard)

	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	limiter := ratelimit.NewMemoryLimiter(100, 15*time.Minute)

	r := NewRouter(
		nil, nil, nil, nil, nil,
		middleware.NewAuthMiddleware(jwtService),
		middleware.NewCORSMiddleware([]string{"http://localhost:5173"}),
		middleware.NewRateLimitMiddleware(limiter, log),
		middleware.NewRecoveryMiddleware(log),
	)
	return r.Setup()
}

func TestRouterPreflightOnProtectedRoute(t *testing.T) {
	handler := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/patients", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("expected origin echoed back, got %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type, Authorization" {
		t.Errorf("expected Authorization in allowed headers, got %q", got)
	}
}

func TestRouterPreflightDisallowedOrigin(t *testing.T) {
	handler := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/patients", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no allow-origin header, got %q", got)
	}
}

func TestRouterMeRequiresToken(t *testing.T) {
	handler := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRouterHealthWithoutOrigin(t *testing.T) {
	handler := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}
