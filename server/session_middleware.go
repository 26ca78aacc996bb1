package server

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-owasp-assistant/sessions"
	"github.com/rs/zerolog/log"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeySession stores the *sessions.Session of the current request
const ContextKeySession ContextKey = "session"

// SessionMiddleware loads the browser session named by the session cookie, starting a new
// empty one when the cookie is missing or the session has expired.
func (s *Server) SessionMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := s.loadSession(r)
		if session == nil {
			session = sessions.New(uuid.NewString())
			if err := s.sessions.Upsert(session); err != nil {
				log.Err(err).Msg("Failed to create session")
				http.Error(w, "Failed to create session", http.StatusInternalServerError)
				return
			}
			s.SetSessionCookie(w, r, session.ID)
		}

		ctx := context.WithValue(r.Context(), ContextKeySession, session)
		next(w, r.WithContext(ctx))
	}
}

func (s *Server) loadSession(r *http.Request) *sessions.Session {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	session, err := s.sessions.Get(cookie.Value)
	if err != nil {
		return nil
	}
	return session
}

// saveSession writes the request's session back after a handler changed it
func (s *Server) saveSession(session *sessions.Session) {
	if err := s.sessions.Upsert(session); err != nil {
		log.Err(err).Str("session_id", session.ID).Msg("Failed to save session")
	}
}

func sessionFromContext(ctx context.Context) *sessions.Session {
	session, _ := ctx.Value(ContextKeySession).(*sessions.Session)
	return session
}
