package auth

import (
	"net/http"

	"github.com/jrsteele09/go-owasp-assistant/sessions"
)

// Controller drives the Authorization Code flow for one provider registration and
// keeps a session's token in step with it.
type Controller struct {
	providerDomain string
	clientID       string
	redirectURI    string

	client       *http.Client
	verifier     Verifier
	requireState bool
	newState     func() string
}

type Option func(*Controller)

// WithHTTPClient sets the client used for the token exchange
func WithHTTPClient(client *http.Client) Option {
	return func(c *Controller) {
		c.client = client
	}
}

// WithVerifier verifies ID tokens before they are stored
func WithVerifier(v Verifier) Option {
	return func(c *Controller) {
		c.verifier = v
	}
}

// WithStateCheck issues a state parameter with every login link and requires it on the way back
func WithStateCheck(required bool) Option {
	return func(c *Controller) {
		c.requireState = required
	}
}

func NewController(providerDomain, clientID, redirectURI string, opts ...Option) *Controller {
	c := &Controller{
		providerDomain: providerDomain,
		clientID:       clientID,
		redirectURI:    redirectURI,
		client:         http.DefaultClient,
		newState:       generateState,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AuthorizationURL returns the login link for a session. With state checking enabled
// a fresh state is recorded on the session and appended to the URL.
func (c *Controller) AuthorizationURL(s *sessions.Session) string {
	if !c.requireState {
		return BuildAuthorizationURL(c.providerDomain, c.clientID, c.redirectURI)
	}
	state := c.newState()
	s.AuthState = state
	return oauth2Config(c.providerDomain, c.clientID, c.redirectURI).AuthCodeURL(state)
}

func (c *Controller) LogoutURL() string {
	return BuildLogoutURL(c.providerDomain, c.clientID, c.redirectURI)
}

// Logout clears the session unconditionally and returns where the browser should go next.
func (c *Controller) Logout(s *sessions.Session) string {
	s.Clear()
	return c.LogoutURL()
}
