package server

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// LogoutHandler clears the session and sends the browser to the provider's logout endpoint
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionFromContext(r.Context())

		logoutURL := s.auth.Logout(session)

		if err := s.sessions.Delete(session.ID); err != nil {
			log.Err(err).Msg("Failed to delete session")
		}
		s.ClearSessionCookie(w, r)

		redirectSuccess(w, r, logoutURL)
	}
}
