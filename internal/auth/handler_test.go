package auth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"log/slog"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoginHandler(t *testing.T) {
	svc := newTestService(t)
	h := &LoginHandler{Service: svc, Logger: discardLogger()}

	cases := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"success", `{"correo":"cliente@clinica.test","contraseña":"secreto123","role":"cliente"}`, http.StatusOK},
		{"wrong password", `{"correo":"cliente@clinica.test","contraseña":"mala","role":"cliente"}`, http.StatusBadRequest},
		{"unknown email", `{"correo":"x@y.test","contraseña":"secreto123","role":"cliente"}`, http.StatusBadRequest},
		{"wrong collection", `{"correo":"vet@clinica.test","contraseña":"secreto123","role":"cliente"}`, http.StatusBadRequest},
		{"unknown role", `{"correo":"cliente@clinica.test","contraseña":"secreto123","role":"admin"}`, http.StatusBadRequest},
		{"bad body", `{`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/login/", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tc.wantStatus {
				t.Fatalf("status: got %d want %d (body %s)", rec.Code, tc.wantStatus, rec.Body)
			}
			if tc.wantStatus == http.StatusOK {
				var out struct {
					AccessToken string `json:"access_token"`
					TokenType   string `json:"token_type"`
				}
				if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if out.AccessToken == "" || out.TokenType != "bearer" {
					t.Fatalf("unexpected body: %+v", out)
				}
			}
		})
	}
}

func TestVerifyClientHandler(t *testing.T) {
	svc := newTestService(t)
	h := &VerifyClientHandler{Service: svc, Logger: discardLogger()}

	cases := []struct {
		name       string
		query      string
		wantStatus int
	}{
		{"correct", "correo=cliente@clinica.test&contraseña=secreto123", http.StatusOK},
		{"incorrect", "correo=cliente@clinica.test&contraseña=mala", http.StatusBadRequest},
		{"not found", "correo=nadie@clinica.test&contraseña=secreto123", http.StatusNotFound},
		{"missing params", "", http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/verify-client/?"+tc.query, nil)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tc.wantStatus {
				t.Fatalf("status: got %d want %d (body %s)", rec.Code, tc.wantStatus, rec.Body)
			}
		})
	}
}

func TestProtectedRoute(t *testing.T) {
	svc := newTestService(t)
	protected := Middleware(svc)(&ProtectedHandler{})

	tok, err := svc.Login(context.Background(), "cliente@clinica.test", "secreto123", RoleClient)
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d (body %s)", rec.Code, rec.Body)
	}
	var out map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out["email"] != "cliente@clinica.test" {
		t.Fatalf("email mismatch: %+v", out)
	}
}

func TestProtectedRouteRejections(t *testing.T) {
	svc := newTestService(t)
	protected := Middleware(svc)(&ProtectedHandler{})

	expiredIssuer := &TokenIssuer{secret: []byte("secret"), ttl: -time.Minute, now: time.Now}
	expired, err := expiredIssuer.Issue("cliente@clinica.test")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	cases := []struct {
		name       string
		authHeader string
		wantDetail string
	}{
		{"no token", "", "Not authenticated"},
		{"not bearer", "Basic abc", "Not authenticated"},
		{"garbage token", "Bearer no.es.jwt", "Token inválido"},
		{"expired token", "Bearer " + expired, "Token expirado"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected/", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status: got %d want 401", rec.Code)
			}
			var out map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if out["detail"] != tc.wantDetail {
				t.Fatalf("detail: got %q want %q", out["detail"], tc.wantDetail)
			}
		})
	}
}
