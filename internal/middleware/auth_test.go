package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAuthenticateNoTokenConfigured(t *testing.T) {
	m := NewAuthMiddleware("")
	called := false
	h := m.Authenticate(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if !called {
		t.Error("handler not called when auth is disabled")
	}
}

func TestAuthenticateValidToken(t *testing.T) {
	m := NewAuthMiddleware("secret")
	called := false
	h := m.Authenticate(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	h(rec, req)

	if !called {
		t.Error("handler not called with valid token")
	}
}

func TestAuthenticateRejections(t *testing.T) {
	m := NewAuthMiddleware("secret")
	h := m.Authenticate(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler called on rejected request")
	})

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic secret"},
		{"wrong token", "Bearer wrong"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h(rec, req)
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}
