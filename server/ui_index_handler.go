package server

import (
	"net/http"

	"github.com/jrsteele09/go-owasp-assistant/auth"
	"github.com/jrsteele09/go-owasp-assistant/sessions"
	"github.com/rs/zerolog/log"
)

const contentTypeHTML = "text/html; charset=utf-8"

// PageData is the template model for the single assistant page
type PageData struct {
	AppName       string
	Authenticated bool
	Email         string
	LoginURL      string
	Question      string
	Answer        string
	Error         string
	ErrorDetail   string // Raw backend response, shown verbatim
}

// IndexHandler renders the login link or the question form. A redirect back from the
// provider carrying a code is exchanged here first.
func (s *Server) IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionFromContext(r.Context())

		if !session.Authenticated() {
			transition, err := s.auth.CompleteExchange(r.Context(), session, r.URL.Query())
			s.saveSession(session)
			if err != nil {
				s.renderPage(w, session, PageData{Error: "Login failed."})
				return
			}
			if transition == auth.Rerender {
				// Drop the consumed code from the address bar
				redirectSuccess(w, r, RouteIndex)
				return
			}
		}

		s.renderPage(w, session, PageData{})
	}
}

// renderPage fills in the session-derived fields and writes the page
func (s *Server) renderPage(w http.ResponseWriter, session *sessions.Session, data PageData) {
	data.AppName = s.config.GetAppName()
	data.Authenticated = auth.StateOf(session) == auth.Authenticated
	if data.Authenticated {
		data.Email = session.Email
	} else {
		data.LoginURL = s.auth.AuthorizationURL(session)
		s.saveSession(session)
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	if err := s.page.Execute(w, data); err != nil {
		log.Err(err).Msg("Failed to render index template")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}
