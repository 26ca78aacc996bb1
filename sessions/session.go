package sessions

import "time"

// Session is the per-browser state of one user. The presence of AccessToken is the only
// signal that the user is authenticated; no expiry or validity flag is tracked.
type Session struct {
	ID          string    // Opaque session identifier (UUID), carried in the session cookie
	AccessToken string    // Bearer credential for the backend; the provider's ID token
	Email       string    // Display-only identity, extracted from the ID token when possible
	AuthState   string    // Pending OAuth2 state parameter issued with the last login link
	CreatedAt   time.Time // When the browser session started
}

// New creates an empty, unauthenticated session.
func New(id string) *Session {
	return &Session{
		ID:        id,
		CreatedAt: time.Now(),
	}
}

// Token returns the stored bearer token and whether one is present.
func (s *Session) Token() (string, bool) {
	return s.AccessToken, s.AccessToken != ""
}

func (s *Session) SetToken(token string) {
	s.AccessToken = token
}

// Clear drops every authentication artifact. It is safe to call on an empty session.
func (s *Session) Clear() {
	s.AccessToken = ""
	s.Email = ""
	s.AuthState = ""
}

func (s *Session) Authenticated() bool {
	_, ok := s.Token()
	return ok
}
