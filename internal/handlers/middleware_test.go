package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus/hooks/test"

	"kanjiquest/internal/security"
)

type fakeAuth map[string]*security.Claims

func (f fakeAuth) Authenticate(token string) (*security.Claims, error) {
	if c, ok := f[token]; ok {
		return c, nil
	}
	return nil, security.ErrInvalidToken
}

func newTestMiddleware(rate int) (*Middleware, *test.Hook) {
	log, hook := test.NewNullLogger()
	auth := fakeAuth{
		"child":  {RegisteredClaims: jwt.RegisteredClaims{Subject: "7"}},
		"parent": {Parent: true, RegisteredClaims: jwt.RegisteredClaims{Subject: "7"}},
	}
	return NewMiddleware(auth, security.NewRateLimiter(rate, time.Minute), log), hook
}

func echoPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := playerID(r)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	respondJSON(w, http.StatusOK, map[string]int64{"player_id": id})
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "bearer  abc ", want: "abc"},
		{header: "Basic abc", want: ""},
		{header: "abc", want: ""},
		{header: "", want: ""},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			r.Header.Set("Authorization", tt.header)
		}
		if got := bearerToken(r); got != tt.want {
			t.Errorf("bearerToken(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestRequirePlayerAndParent(t *testing.T) {
	m, _ := newTestMiddleware(10)

	tests := []struct {
		name       string
		token      string
		parentOnly bool
		wantStatus int
	}{
		{name: "no token", wantStatus: http.StatusUnauthorized},
		{name: "bad token", token: "forged", wantStatus: http.StatusUnauthorized},
		{name: "child token", token: "child", wantStatus: http.StatusOK},
		{name: "child on parent route", token: "child", parentOnly: true, wantStatus: http.StatusForbidden},
		{name: "parent on parent route", token: "parent", parentOnly: true, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := m.RequirePlayer(echoPlayer)
			if tt.parentOnly {
				h = m.RequireParent(echoPlayer)
			}

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.token != "" {
				r.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			h(rec, r)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	m, hook := newTestMiddleware(2)
	h := m.RateLimit(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		r := httptest.NewRequest(http.MethodPost, "/api/players", nil)
		r.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		h(rec, r)
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusNoContent || codes[1] != http.StatusNoContent || codes[2] != http.StatusTooManyRequests {
		t.Errorf("codes = %v", codes)
	}
	if e := hook.LastEntry(); e == nil || e.Data["ip"] != "10.0.0.1" {
		t.Errorf("expected a rate limit warning, got %+v", e)
	}
}

func TestLoggingRecordsStatus(t *testing.T) {
	m, hook := newTestMiddleware(1)
	h := m.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/brew", nil))

	e := hook.LastEntry()
	if e == nil || e.Data["status"] != http.StatusTeapot || e.Data["path"] != "/brew" {
		t.Errorf("log entry = %+v", e)
	}
}

func TestPlayerIDWithoutClaims(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := playerID(r); !errors.Is(err, security.ErrInvalidToken) {
		t.Errorf("error = %v, want ErrInvalidToken", err)
	}
}

func TestStartupStatus(t *testing.T) {
	s := NewStartupStatus()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	h := s.RequireReady(next)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/catalog/stages", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status before ready = %d", rec.Code)
	}

	s.CompleteStep(StepDatabase)
	rec = httptest.NewRecorder()
	s.ShowStartupStatus(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("healthz before ready = %d", rec.Code)
	}

	s.MarkReady()
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/catalog/stages", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status after ready = %d", rec.Code)
	}
}
