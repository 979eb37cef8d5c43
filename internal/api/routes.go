package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(loggingMiddleware)
	r.Use(recoveryMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(s.profileMiddleware)

			r.Get("/quiz/questions", s.handleQuizInfo)
			r.Post("/quiz/sessions", s.handleStartSession)
			r.Route("/quiz/sessions/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetSession)
				r.Post("/restart", s.handleRestartSession)
				r.Post("/answer", s.handleSubmitAnswer)
				r.Post("/advance", s.handleAdvance)
				if !s.ServerClock {
					r.Post("/tick", s.handleTick)
				}
				r.Get("/stream", s.handleSessionStream)
			})

			r.Get("/leaderboard", s.handleLeaderboard)

			r.Get("/articles", s.handleArticles)
			r.Get("/articles/{slug}", s.handleArticle)
			r.Get("/timeline", s.handleTimeline)

			r.Post("/profiles", s.handleLogin)
			r.Post("/profiles/logout", s.handleLogout)
			r.Get("/profiles/me", s.handleCurrentProfile)
			r.Get("/profiles/me/results", s.handleProfileResults)
			r.Get("/profiles/me/results/{playID}", s.handleProfileResult)
		})

		r.Group(func(r chi.Router) {
			r.Use(corsMiddleware)
			r.Post("/oracle", s.handleOracle)
			// preflight is answered by corsMiddleware
			r.Options("/oracle", s.handleOracle)
		})
	})

	return r
}
