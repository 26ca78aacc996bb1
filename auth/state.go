package auth

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/jrsteele09/go-owasp-assistant/sessions"
)

const stateLength = 32

// State is the authentication state of a session
type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	switch s {
	case Authenticated:
		return "AUTHENTICATED"
	default:
		return "UNAUTHENTICATED"
	}
}

// StateOf derives the state from the session; a stored token is the only signal.
func StateOf(s *sessions.Session) State {
	if s != nil && s.Authenticated() {
		return Authenticated
	}
	return Unauthenticated
}

// Transition tells the hosting UI whether the session changed and the page should be re-rendered.
type Transition int

const (
	NoChange Transition = iota
	Rerender
)

// generateState creates a random base64url OAuth2 state value
func generateState() string {
	b := make([]byte, stateLength)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
