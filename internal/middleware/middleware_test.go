package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/ExamPortal/internal/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(v *auth.TokenVerifier) *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/staff", JWTAuth(v), RequireRole(auth.RoleAdmin, auth.RoleFaculty), func(c *gin.Context) {
		caller, _ := CallerFrom(c)
		c.String(http.StatusOK, string(caller.Role))
	})
	return r
}

func TestJWTAuthAndRequireRole(t *testing.T) {
	v := auth.NewTokenVerifier("secret")
	faculty, _ := v.IssueToken(auth.Caller{UserID: 2, Role: auth.RoleFaculty, Course: "MATH"}, time.Hour)
	student, _ := v.IssueToken(auth.Caller{UserID: 3, Role: auth.RoleStudent}, time.Hour)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"student on staff route", "Bearer " + student, http.StatusForbidden},
		{"faculty", "Bearer " + faculty, http.StatusOK},
	}
	r := newRouter(v)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/staff", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	r := newRouter(auth.NewTokenVerifier("secret"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/staff", nil))
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("no request id assigned")
	}

	req := httptest.NewRequest(http.MethodGet, "/staff", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("request id = %q, want the incoming one", got)
	}
}
