package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tomengsanchez/ecosys-main-sub000/internal/utils"
)

const testSecret = "test-secret"

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestJWTAuth(t *testing.T) {
	token, err := utils.NewAccessToken(testSecret, 42, "ADMIN", 5)
	if err != nil {
		t.Fatalf("NewAccessToken() error = %v", err)
	}
	wrongKey, err := utils.NewAccessToken("other-secret", 42, "ADMIN", 5)
	if err != nil {
		t.Fatalf("NewAccessToken() error = %v", err)
	}

	tests := []struct {
		name     string
		header   string
		wantCode int
	}{
		{name: "valid token", header: "Bearer " + token.Token, wantCode: http.StatusOK},
		{name: "missing header", header: "", wantCode: http.StatusUnauthorized},
		{name: "not a bearer scheme", header: "Basic abc", wantCode: http.StatusUnauthorized},
		{name: "wrong signing key", header: "Bearer " + wrongKey.Token, wantCode: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not.a.jwt", wantCode: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := JWTAuth(testSecret)(okHandler)(c); err != nil {
				t.Fatalf("middleware error = %v", err)
			}
			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
		})
	}
}

func TestJWTAuthInjectsClaims(t *testing.T) {
	token, err := utils.NewAccessToken(testSecret, 42, "REQUESTER", 5)
	if err != nil {
		t.Fatalf("NewAccessToken() error = %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token.Token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		if got, ok := c.Get("role").(string); !ok || got != "REQUESTER" {
			t.Errorf("role claim = %v, want REQUESTER", c.Get("role"))
		}
		// JSON numbers decode as float64.
		if got, ok := c.Get("user_id").(float64); !ok || got != 42 {
			t.Errorf("user_id claim = %v, want 42", c.Get("user_id"))
		}
		return c.NoContent(http.StatusOK)
	}
	if err := JWTAuth(testSecret)(handler)(c); err != nil {
		t.Fatalf("middleware error = %v", err)
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		role     interface{}
		allowed  []string
		wantCode int
	}{
		{name: "role allowed", role: "ADMIN", allowed: []string{"ADMIN"}, wantCode: http.StatusOK},
		{name: "one of several", role: "REQUESTER", allowed: []string{"ADMIN", "REQUESTER"}, wantCode: http.StatusOK},
		{name: "role not allowed", role: "REQUESTER", allowed: []string{"ADMIN"}, wantCode: http.StatusForbidden},
		{name: "role missing", role: nil, allowed: []string{"ADMIN"}, wantCode: http.StatusForbidden},
		{name: "role not a string", role: 7, allowed: []string{"ADMIN"}, wantCode: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.role != nil {
				c.Set("role", tt.role)
			}

			if err := RequireRole(tt.allowed...)(okHandler)(c); err != nil {
				t.Fatalf("middleware error = %v", err)
			}
			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
		})
	}
}
