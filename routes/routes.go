package routes

import (
	"net/http"
	"time"

	_ "github.com/Dosada05/league-standings/docs"
	"github.com/Dosada05/league-standings/handlers"
	"github.com/Dosada05/league-standings/middleware"
	"github.com/Dosada05/league-standings/models"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	Standing  *handlers.StandingHandler
	Bracket   *handlers.BracketHandler
	Match     *handlers.MatchHandler
	Team      *handlers.TeamHandler
	WebSocket *handlers.WebSocketHandler
	Health    *handlers.HealthHandler
}

type Options struct {
	JWTSecret         string
	AllowedOrigins    []string
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

func SetupRoutes(r chi.Router, h Handlers, opts Options) {
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health.Health)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Get("/ws/tournaments/{tournamentID}", h.WebSocket.ServeWs)

	authenticated := middleware.Authenticate(opts.JWTSecret)
	staffOnly := middleware.RequireRole(models.RoleAdmin, models.RoleManager)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(opts.RateLimitRequests, opts.RateLimitWindow))

		r.Post("/auth/login", h.Auth.Login)

		r.Route("/tournaments/{tournamentID}", func(r chi.Router) {
			r.Get("/standings", h.Standing.GetStandings)
			r.Get("/standings/groups", h.Standing.GetGroupStandings)
			r.Get("/scorers", h.Standing.GetTopScorers)
			r.Get("/players/stats", h.Standing.GetPlayerStats)
			r.Get("/teams", h.Team.ListTeams)
			r.Get("/matches", h.Match.ListMatches)

			r.Group(func(r chi.Router) {
				r.Use(authenticated, staffOnly)
				r.Post("/knockout", h.Bracket.BuildKnockout)
				r.Post("/standings/snapshot", h.Standing.PublishSnapshot)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticated, staffOnly)
			r.Post("/matches/{matchID}/result", h.Match.ConfirmResult)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"the requested resource could not be found"}` + "\n"))
	})
}
