package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jrsteele09/go-owasp-assistant/query"
)

// AskHandler relays the submitted question to the backend and renders the answer
func (s *Server) AskHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionFromContext(r.Context())

		token, ok := session.Token()
		if !ok {
			redirectSuccess(w, r, RouteIndex)
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		question := strings.TrimSpace(r.PostForm.Get("question"))
		if question == "" {
			s.renderPage(w, session, PageData{})
			return
		}

		data := PageData{Question: question}
		answer, err := s.relay.Ask(r.Context(), question, token)
		if err != nil {
			data.Error = "Failed to get a response from the backend."
			var backendErr *query.BackendError
			if errors.As(err, &backendErr) {
				data.ErrorDetail = backendErr.Body
			} else {
				data.ErrorDetail = err.Error()
			}
		} else {
			data.Answer = answer
		}

		s.renderPage(w, session, data)
	}
}
