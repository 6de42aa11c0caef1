package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dosada05/league-standings/handlers"
	"github.com/go-chi/chi/v5"
)

func newTestRouter() http.Handler {
	r := chi.NewRouter()
	SetupRoutes(r, Handlers{
		Auth:      handlers.NewAuthHandler(nil),
		Standing:  handlers.NewStandingHandler(nil),
		Bracket:   handlers.NewBracketHandler(nil),
		Match:     handlers.NewMatchHandler(nil),
		Team:      handlers.NewTeamHandler(nil),
		WebSocket: handlers.NewWebSocketHandler(nil, nil, nil),
		Health:    handlers.NewHealthHandler(nil),
	}, Options{
		JWTSecret:         "secret",
		AllowedOrigins:    []string{"*"},
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
	})
	return r
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{
		"/tournaments/t1/knockout",
		"/tournaments/t1/standings/snapshot",
		"/matches/m1/result",
	} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: want 401, got %d", path, rec.Code)
		}
	}
}

func TestHealthAndNotFound(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("/health: want 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("/nowhere: want 404, got %d", rec.Code)
	}
}
