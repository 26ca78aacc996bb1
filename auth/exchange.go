package auth

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	apperrors "github.com/jrsteele09/go-owasp-assistant/internal/errors"
	"github.com/jrsteele09/go-owasp-assistant/sessions"
	"github.com/rs/zerolog/log"
)

const maxTokenResponseSize = 1 << 20

// tokenResponse is the part of the token endpoint reply this client uses.
// Access and refresh tokens are ignored.
type tokenResponse struct {
	IDToken string `json:"id_token"`
}

// CompleteExchange finishes a login when the redirect back from the provider carries a code.
// Without a code nothing happens. On success the ID token is stored on the session and
// Rerender is returned so the single-use code is not submitted again; on failure the
// session stays unauthenticated.
func (c *Controller) CompleteExchange(ctx context.Context, s *sessions.Session, params url.Values) (Transition, error) {
	code := params.Get("code")
	if code == "" {
		if providerErr := params.Get("error"); providerErr != "" {
			s.AuthState = ""
			return NoChange, &ExchangeError{Reason: strings.TrimSpace(providerErr + " " + params.Get("error_description"))}
		}
		return NoChange, nil
	}

	if s.Authenticated() {
		return NoChange, nil
	}

	// The pending state is single use, whatever the outcome
	expected := s.AuthState
	s.AuthState = ""
	if expected != "" || c.requireState {
		got := params.Get("state")
		if expected == "" || subtle.ConstantTimeCompare([]byte(got), []byte(expected)) != 1 {
			return NoChange, apperrors.ErrStateMismatch
		}
	}

	idToken, err := c.exchangeCode(ctx, code)
	if err != nil {
		log.Err(err).Str("session_id", s.ID).Msg("Token exchange failed")
		return NoChange, err
	}

	identity, err := c.identify(ctx, idToken)
	if err != nil {
		log.Err(err).Str("session_id", s.ID).Msg("ID token verification failed")
		return NoChange, &ExchangeError{Reason: "id token rejected", Err: err}
	}

	s.SetToken(idToken)
	s.Email = identity.Email
	log.Info().Str("session_id", s.ID).Str("subject", identity.Subject).Msg("User authenticated")
	return Rerender, nil
}

func (c *Controller) exchangeCode(ctx context.Context, code string) (string, error) {
	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("client_id", c.clientID)
	data.Set("code", code)
	data.Set("redirect_uri", c.redirectURI)

	tokenURL := providerEndpoint(c.providerDomain).TokenURL
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", &ExchangeError{Reason: "creating request", Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &ExchangeError{Reason: "executing request", Err: fmt.Errorf("%w: %w", apperrors.ErrNetworkFailure, err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTokenResponseSize))
	if err != nil {
		return "", &ExchangeError{StatusCode: resp.StatusCode, Reason: "reading response", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &ExchangeError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var tokens tokenResponse
	if err := json.Unmarshal(body, &tokens); err != nil {
		return "", &ExchangeError{StatusCode: resp.StatusCode, Body: string(body), Reason: "decoding response", Err: err}
	}
	if tokens.IDToken == "" {
		return "", &ExchangeError{StatusCode: resp.StatusCode, Body: string(body), Reason: "no id_token in response"}
	}
	return tokens.IDToken, nil
}

func (c *Controller) identify(ctx context.Context, rawIDToken string) (Identity, error) {
	if c.verifier == nil {
		return UnverifiedIdentity(rawIDToken), nil
	}
	return c.verifier.Verify(ctx, rawIDToken)
}
