package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/classtrack/attendance-api/internal/infrastructure/config"
	"github.com/classtrack/attendance-api/internal/infrastructure/db/sqlite"
)

// TestRouter_EndToEnd drives the whole stack (echo, middleware, services,
// SQLite) through the register → login → CRUD lifecycle. It runs as one
// sequential scenario because the router registers Prometheus collectors
// that must only be created once per process.
func TestRouter_EndToEnd(t *testing.T) {
	store, err := sqlite.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("open storage: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := &config.Config{
		Port:                     "8080",
		JWTSecret:                "test-secret",
		JWTAlgorithm:             "HS256",
		AccessTokenExpireMinutes: 15,
	}
	e := NewRouter(cfg, store, zerolog.Nop())

	do := func(method, target, token, body string) *httptest.ResponseRecorder {
		t.Helper()
		var req *http.Request
		if body != "" {
			req = httptest.NewRequest(method, target, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
		} else {
			req = httptest.NewRequest(method, target, nil)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	// --- Registration ---
	rec := do(http.MethodPost, "/register", "", `{"username":"alice","email":"alice@x.com","password":"pw1234"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "pw1234") || strings.Contains(strings.ToLower(rec.Body.String()), "password") {
		t.Fatalf("register response leaked password material: %s", rec.Body.String())
	}

	rec = do(http.MethodPost, "/register", "", `{"username":"alice","email":"alice2@x.com","password":"pw5678"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: expected 400, got %d", rec.Code)
	}

	// --- Login ---
	rec = do(http.MethodPost, "/token", "", `{"username":"alice","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad login: expected 401, got %d", rec.Code)
	}

	rec = do(http.MethodPost, "/token", "", `{"username":"alice","password":"pw1234"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var tokenResp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &tokenResp); err != nil {
		t.Fatalf("decode token response: %v", err)
	}
	if tokenResp.TokenType != "bearer" || tokenResp.AccessToken == "" {
		t.Fatalf("unexpected token response: %+v", tokenResp)
	}
	token := tokenResp.AccessToken

	// --- Auth gating ---
	studentBody := `{"studentID":"S1","studentName":"Alice","courseName":"Math","date":"01/06/2024"}`
	if rec = do(http.MethodPost, "/student", "", studentBody); rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated create: expected 401, got %d", rec.Code)
	}

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	expiredToken, _ := expired.SignedString([]byte(cfg.JWTSecret))
	if rec = do(http.MethodPost, "/student", expiredToken, studentBody); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expired token: expected 401, got %d", rec.Code)
	}

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	forgedToken, _ := forged.SignedString([]byte("wrong-secret"))
	if rec = do(http.MethodGet, "/students", forgedToken, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("forged token: expected 401, got %d", rec.Code)
	}

	// No record may exist after the rejected attempts.
	if rec = do(http.MethodGet, "/student/S1", token, ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 before create, got %d", rec.Code)
	}

	// --- Create ---
	if rec = do(http.MethodPost, "/student", token, studentBody); rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec = do(http.MethodPost, "/student", token, studentBody); rec.Code != http.StatusConflict {
		t.Fatalf("duplicate create: expected 409, got %d", rec.Code)
	}

	badDate := `{"studentID":"S2","studentName":"Bob","courseName":"Math","date":"2024-06-01"}`
	if rec = do(http.MethodPost, "/student", token, badDate); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("bad date: expected 422, got %d: %s", rec.Code, rec.Body.String())
	}

	// --- Read ---
	rec = do(http.MethodGet, "/student/S1", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}
	var student map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &student)
	if student["date"] != "01/06/2024" {
		t.Fatalf("date did not round-trip: %v", student["date"])
	}

	rec = do(http.MethodGet, "/students", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	var students []map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &students)
	if len(students) != 1 {
		t.Fatalf("expected 1 student, got %d", len(students))
	}

	// --- Update ---
	updateBody := `{"studentID":"S1","studentName":"Alice","courseName":"Physics","date":"01/06/2024"}`
	if rec = do(http.MethodPut, "/student/S1", token, updateBody); rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = do(http.MethodGet, "/student/S1", token, "")
	_ = json.Unmarshal(rec.Body.Bytes(), &student)
	if student["courseName"] != "Physics" {
		t.Fatalf("update not reflected: %v", student)
	}

	if rec = do(http.MethodPut, "/student/missing", token, updateBody); rec.Code != http.StatusNotFound {
		t.Fatalf("update missing: expected 404, got %d", rec.Code)
	}

	// --- Delete ---
	if rec = do(http.MethodDelete, "/student/S1", token, ""); rec.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", rec.Code)
	}
	if rec = do(http.MethodGet, "/student/S1", token, ""); rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", rec.Code)
	}
	if rec = do(http.MethodDelete, "/student/S1", token, ""); rec.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", rec.Code)
	}

	// --- Probes ---
	if rec = do(http.MethodGet, "/health", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("liveness: expected 200, got %d", rec.Code)
	}
	if rec = do(http.MethodGet, "/health/ready", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("readiness: expected 200, got %d", rec.Code)
	}
}
