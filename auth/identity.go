package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
	apperrors "github.com/jrsteele09/go-owasp-assistant/internal/errors"
)

// Identity is who the ID token says the user is
type Identity struct {
	Subject string
	Email   string
}

type Verifier interface {
	Verify(ctx context.Context, rawIDToken string) (Identity, error)
}

// OIDCVerifier checks ID token signature, issuer, audience and expiry
type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier
}

var _ Verifier = (*OIDCVerifier)(nil)

func NewOIDCVerifier(verifier *oidc.IDTokenVerifier) *OIDCVerifier {
	return &OIDCVerifier{verifier: verifier}
}

// DiscoverVerifier loads the issuer's discovery document and builds a verifier for clientID.
func DiscoverVerifier(ctx context.Context, client *http.Client, issuerURL, clientID string) (*OIDCVerifier, error) {
	if client != nil {
		ctx = oidc.ClientContext(ctx, client)
	}
	provider, err := oidc.NewProvider(ctx, issuerURL)
	if err != nil {
		return nil, fmt.Errorf("[auth DiscoverVerifier] failed to create OIDC provider: %w", err)
	}
	return NewOIDCVerifier(provider.Verifier(&oidc.Config{ClientID: clientID})), nil
}

func (v *OIDCVerifier) Verify(ctx context.Context, rawIDToken string) (Identity, error) {
	idToken, err := v.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", apperrors.ErrInvalidIDToken, err)
	}

	var claims struct {
		Email string `json:"email"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return Identity{}, fmt.Errorf("%w: extracting claims: %w", apperrors.ErrInvalidIDToken, err)
	}
	return Identity{Subject: idToken.Subject, Email: claims.Email}, nil
}

// UnverifiedIdentity reads sub and email from a JWT without checking its signature.
// It is for display only; an opaque token gives an empty Identity.
func UnverifiedIdentity(rawIDToken string) Identity {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(rawIDToken, claims); err != nil {
		return Identity{}
	}
	subject, _ := claims.GetSubject()
	email, _ := claims["email"].(string)
	return Identity{Subject: subject, Email: email}
}
