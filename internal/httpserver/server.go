// apps/go-cli/internal/httpserver/server.go
//
// HTTP server wiring for `wordle serve`.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /games, GET /games/{id}, POST /games/{id}/guesses.
//   - Daily endpoints: mounted under /daily (routes_daily.go).
//
// Notes:
//   - Sessions live in a store.Store; every guess runs inside Store.Update so
//     submissions to one game are applied one at a time.
//   - Each new game returns a signed token (token.go) that the game routes require.
//   - The answer is only ever sent once the game is won or lost.
//   - While serving, sessions whose token has expired are swept from the store.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

// Server bundles router, session store, dictionary and settings.
type Server struct {
	r     *chi.Mux
	store store.Store
	dict  *words.Dictionary
	cfg   config.Config
	now   func() time.Time
}

// Option customizes a Server.
type Option func(*Server)

// WithClock overrides time.Now (daily word selection, token timestamps).
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, dict *words.Dictionary, cfg config.Config, opts ...Option) *Server {
	s := &Server{r: chi.NewRouter(), store: st, dict: dict, cfg: cfg, now: time.Now}
	for _, o := range opts {
		o(s)
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                       // zerolog access line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(cfg.ClientOrigin))          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "wordle-go",
			"endpoints": []string{"/health", "POST /games", "GET /games/{id}", "POST /games/{id}/guesses", "GET /daily", "POST /daily/new"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.dict.Stats()
		writeJSON(w, http.StatusOK, map[string]int{"answers": a, "allowed": g, "length": s.dict.WordLength()})
	})

	// --- games ---
	s.r.Post("/games", s.handleNewGame)
	s.r.Route("/games/{id}", func(r chi.Router) {
		r.Use(s.requireGameToken)
		r.Get("/", s.handleGetGame)
		r.Post("/guesses", s.handleGuess)
	})

	s.mountDaily(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})
	return s
}

// ServeHTTP lets the Server be used directly as an http.Handler (tests, embedding).
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.r.ServeHTTP(w, r) }

// Start serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	hs := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()
	go s.sweepLoop(ctx, sweepInterval)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info().Msg("shutting down")
		return hs.Shutdown(shutdownCtx)
	}
}

// sweepInterval is how often expired sessions are evicted while serving.
const sweepInterval = 10 * time.Minute

// Sweep evicts sessions whose game token has expired.
func (s *Server) Sweep(ctx context.Context) (int, error) {
	n, err := s.store.Sweep(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.Debug().Int("evicted", n).Int("live", s.store.Len()).Msg("expired games swept")
	}
	return n, nil
}

func (s *Server) sweepLoop(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if _, err := s.Sweep(ctx); err != nil && ctx.Err() == nil {
				log.Warn().Err(err).Msg("sweep expired games")
			}
		}
	}
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// accessLog writes one debug line per request.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("reqId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /games and POST /daily/new.
type newGameReq struct {
	Answer string `json:"answer"` // optional fixed answer (only with AllowFixedAnswer)
}
type newGameRes struct {
	GameID      string `json:"gameId"`
	Token       string `json:"token"`
	WordLength  int    `json:"wordLength"`
	MaxAttempts int    `json:"maxAttempts"`
	Policy      string `json:"policy"`
	Date        string `json:"date,omitempty"` // daily games only
}

// handleNewGame starts a game with a random secret, or a fixed one when enabled.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var chooser words.Chooser = words.RandomChooser{}
	if req.Answer != "" {
		if !s.cfg.AllowFixedAnswer {
			writeError(w, http.StatusForbidden, "fixed_answer_disabled")
			return
		}
		chooser = words.FixedChooser(req.Answer)
	}
	s.startGame(w, r, chooser, "")
}

// startGame picks the secret, stores a new session and replies with its token.
func (s *Server) startGame(w http.ResponseWriter, r *http.Request, chooser words.Chooser, date string) {
	secret, err := chooser.Choose(s.dict.Answers())
	if err != nil {
		log.Error().Err(err).Msg("choose secret")
		writeError(w, http.StatusInternalServerError, "no_answers")
		return
	}
	// A secret outside the vocabulary could never be guessed.
	if !s.dict.Contains(secret) {
		writeError(w, http.StatusBadRequest, "invalid_answer")
		return
	}
	g, err := game.NewSession(secret, s.cfg.MaxAttempts, s.dict, game.WithPolicy(s.cfg.DuplicatePolicy()))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_answer")
		return
	}
	tok, exp, err := s.signGameToken(g.ID())
	if err != nil {
		log.Error().Err(err).Str("gameId", g.ID()).Msg("sign game token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	// The session is unreachable once its token expires.
	if err := s.store.Save(r.Context(), g, exp); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	s.setGameCookie(w, tok, exp)

	log.Info().Str("gameId", g.ID()).Str("date", date).Msg("game started")
	writeJSON(w, http.StatusCreated, newGameRes{
		GameID:      g.ID(),
		Token:       tok,
		WordLength:  g.WordLength(),
		MaxAttempts: g.MaxAttempts(),
		Policy:      g.Policy().String(),
		Date:        date,
	})
}

// guessReq/Res payloads for POST /games/{id}/guesses.
type guessReq struct {
	Guess string `json:"guess"`
}
type guessRes struct {
	Feedback  []game.Mark `json:"feedback"`
	Pattern   string      `json:"pattern"` // e.g. "_GGYG"
	Outcome   string      `json:"outcome"` // "playing" | "won" | "lost"
	Attempts  int         `json:"attempts"`
	Remaining int         `json:"remaining"`
	Answer    string      `json:"answer,omitempty"`
}

// handleGuess applies a guess under the store lock and reports the feedback.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	id := chi.URLParam(r, "id")

	var res guessRes
	err := s.store.Update(r.Context(), id, func(g *game.Session) error {
		fb, outcome, err := g.SubmitGuess(req.Guess)
		if err != nil {
			return err
		}
		res = guessRes{
			Feedback:  fb,
			Pattern:   fb.String(),
			Outcome:   outcome.String(),
			Attempts:  g.Attempts(),
			Remaining: g.Remaining(),
		}
		res.Answer, _ = g.SecretWord()
		return nil
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, game.ErrInvalidGuessLength):
		writeError(w, http.StatusBadRequest, "invalid_length")
	case errors.Is(err, game.ErrNotInVocabulary):
		writeError(w, http.StatusUnprocessableEntity, "not_in_word_list")
	case errors.Is(err, game.ErrSessionTerminal):
		log.Warn().Str("gameId", id).Msg("guess after game end")
		writeError(w, http.StatusConflict, "game_finished")
	case err != nil:
		log.Error().Err(err).Str("gameId", id).Msg("apply guess")
		writeError(w, http.StatusInternalServerError, "server_error")
	default:
		if res.Outcome != game.OutcomeInProgress.String() {
			log.Info().Str("gameId", id).Str("outcome", res.Outcome).Int("attempts", res.Attempts).Msg("game over")
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// turnRes is one history entry in GET /games/{id}.
type turnRes struct {
	Guess    string      `json:"guess"`
	Feedback []game.Mark `json:"feedback"`
	Pattern  string      `json:"pattern"`
}
type gameRes struct {
	GameID      string    `json:"gameId"`
	Outcome     string    `json:"outcome"`
	Attempts    int       `json:"attempts"`
	MaxAttempts int       `json:"maxAttempts"`
	WordLength  int       `json:"wordLength"`
	History     []turnRes `json:"history"`
	Answer      string    `json:"answer,omitempty"`
}

// handleGetGame returns the current state and history of a game.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var res gameRes
	err := s.store.Get(r.Context(), id, func(g *game.Session) error {
		res = gameRes{
			GameID:      g.ID(),
			Outcome:     g.Outcome().String(),
			Attempts:    g.Attempts(),
			MaxAttempts: g.MaxAttempts(),
			WordLength:  g.WordLength(),
			History:     []turnRes{},
		}
		for _, t := range g.History() {
			res.History = append(res.History, turnRes{Guess: t.Guess, Feedback: t.Feedback, Pattern: t.Feedback.String()})
		}
		res.Answer, _ = g.SecretWord()
		return nil
	})
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
