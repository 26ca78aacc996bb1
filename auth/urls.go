package auth

import (
	"net/url"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// Provider endpoint paths, relative to the hosted UI domain
const (
	authorizePath = "/oauth2/authorize"
	tokenPath     = "/oauth2/token"
	logoutPath    = "/logout"
)

var loginScopes = []string{oidc.ScopeOpenID, "email"}

func providerEndpoint(providerDomain string) oauth2.Endpoint {
	return oauth2.Endpoint{
		AuthURL:   "https://" + providerDomain + authorizePath,
		TokenURL:  "https://" + providerDomain + tokenPath,
		AuthStyle: oauth2.AuthStyleInParams,
	}
}

func oauth2Config(providerDomain, clientID, redirectURI string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:    clientID,
		Endpoint:    providerEndpoint(providerDomain),
		RedirectURL: redirectURI,
		Scopes:      loginScopes,
	}
}

// BuildAuthorizationURL returns the provider login URL carrying exactly
// response_type, client_id, redirect_uri and scope. Identical inputs give identical output.
func BuildAuthorizationURL(providerDomain, clientID, redirectURI string) string {
	return oauth2Config(providerDomain, clientID, redirectURI).AuthCodeURL("")
}

// BuildLogoutURL returns the provider logout URL, which sends the browser back to redirectURI.
func BuildLogoutURL(providerDomain, clientID, redirectURI string) string {
	q := url.Values{}
	q.Set("client_id", clientID)
	q.Set("logout_uri", redirectURI)
	return "https://" + providerDomain + logoutPath + "?" + q.Encode()
}
