// apps/go-cli/internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge" mode.
// Exposes two endpoints under /daily:
//   - GET  /daily     → today's date key and board dimensions
//   - POST /daily/new → start a game whose secret is today's daily word
//
// Daily games are ordinary sessions afterwards; guesses go through
// POST /games/{id}/guesses. Word selection is date + salt (daily package).

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/", s.handleDailyInfo)
		r.Post("/new", s.handleDailyNew)
	})
}

func (s *Server) dailyChooser() daily.Chooser {
	return daily.Chooser{Salt: s.cfg.DailySalt, Now: s.now}
}

// dailyInfoRes is returned by GET /daily.
type dailyInfoRes struct {
	Date        string `json:"date"`
	WordLength  int    `json:"wordLength"`
	MaxAttempts int    `json:"maxAttempts"`
}

func (s *Server) handleDailyInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dailyInfoRes{
		Date:        s.dailyChooser().Date(),
		WordLength:  s.dict.WordLength(),
		MaxAttempts: s.cfg.MaxAttempts,
	})
}

// handleDailyNew starts a session on today's word.
func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	c := s.dailyChooser()
	s.startGame(w, r, c, c.Date())
}
