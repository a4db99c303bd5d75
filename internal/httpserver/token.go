// apps/go-cli/internal/httpserver/token.go
//
// Per-game access tokens.
// Responsibilities:
//   - Sign an HS256 JWT naming one game ID (gid) with a 24h expiry.
//   - requireGameToken middleware: accept "Authorization: Bearer" or the game
//     cookie, and reject tokens for any other {id}.
//
// There are no user accounts; holding the token is what lets a client play.

package httpserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
)

// gameTokenTTL bounds how long a game can be resumed with its token.
const gameTokenTTL = 24 * time.Hour

// signGameToken creates an HS256 JWT binding the bearer to one game ID.
func (s *Server) signGameToken(gameID string) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(gameTokenTTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"gid": gameID,
		"iat": now.Unix(),
		"exp": exp.Unix(),
	})
	ss, err := t.SignedString([]byte(s.cfg.JWTSecret))
	return ss, exp, err
}

// requireGameToken rejects requests whose token does not name the {id} in the path.
func (s *Server) requireGameToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := s.bearerOrCookie(r)
		if tokenStr == "" {
			writeError(w, http.StatusUnauthorized, "missing_token")
			return
		}
		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(s.cfg.JWTSecret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
		if err != nil || !token.Valid {
			writeError(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		if gid, _ := claims["gid"].(string); gid == "" || gid != chi.URLParam(r, "id") {
			writeError(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// setGameCookie stores the latest game token so browser clients need no header.
func (s *Server) setGameCookie(w http.ResponseWriter, token string, exp time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  exp,
	})
}

// bearerOrCookie extracts a bearer token from Authorization header or the game cookie.
func (s *Server) bearerOrCookie(r *http.Request) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(s.cfg.CookieName); err == nil {
		return c.Value
	}
	return ""
}
