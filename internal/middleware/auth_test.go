package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/workdeck/workdeck/internal/auth"
)

const testSecret = "test-secret"

func newAuthRouter(t *testing.T) (*gin.Engine, *string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var seen string
	r := gin.New()
	r.Use(OptionalAuth(testSecret))
	r.GET("/whoami", func(c *gin.Context) {
		seen = MemberID(c)
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func TestOptionalAuthMissingHeaderPassesThrough(t *testing.T) {
	r, seen := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, anonymous requests should reach the handler", w.Code)
	}
	if *seen != "" {
		t.Errorf("member id = %q, want empty for anonymous request", *seen)
	}
}

func TestOptionalAuthValidToken(t *testing.T) {
	r, seen := newAuthRouter(t)

	token, err := auth.GenerateToken("tm-2", "sarah.chen@company.com", testSecret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	if *seen != "tm-2" {
		t.Errorf("member id = %q, want tm-2", *seen)
	}
}

func TestOptionalAuthRejectsBadHeaders(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not-a-jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, seen := newAuthRouter(t)

			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			req.Header.Set("Authorization", tc.header)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("code = %d, want 401", w.Code)
			}
			if *seen != "" {
				t.Error("handler ran despite an invalid token")
			}
		})
	}
}
