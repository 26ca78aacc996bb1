package auth_test

import (
	"net/url"
	"testing"

	"github.com/jrsteele09/go-owasp-assistant/auth"
	"github.com/stretchr/testify/require"
)

const (
	testDomain      = "auth.example.com"
	testClientID    = "test-client-1"
	testRedirectURI = "http://localhost:8501/"
)

func TestBuildAuthorizationURL(t *testing.T) {
	got := auth.BuildAuthorizationURL(testDomain, testClientID, testRedirectURI)

	require.Equal(t,
		"https://auth.example.com/oauth2/authorize?client_id=test-client-1&redirect_uri=http%3A%2F%2Flocalhost%3A8501%2F&response_type=code&scope=openid+email",
		got)
}

func TestBuildAuthorizationURLParameters(t *testing.T) {
	tests := []struct {
		name        string
		clientID    string
		redirectURI string
	}{
		{name: "plain", clientID: "abc", redirectURI: "https://app.example.com"},
		{name: "path and query", clientID: "7f3k2", redirectURI: "https://app.example.com/callback?x=1&y=2"},
		{name: "needs escaping", clientID: "client with spaces&amp", redirectURI: "http://localhost:8501/a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(auth.BuildAuthorizationURL(testDomain, tt.clientID, tt.redirectURI))
			require.NoError(t, err)

			require.Equal(t, "https", u.Scheme)
			require.Equal(t, testDomain, u.Host)
			require.Equal(t, "/oauth2/authorize", u.Path)
			require.Equal(t, url.Values{
				"response_type": {"code"},
				"client_id":     {tt.clientID},
				"redirect_uri":  {tt.redirectURI},
				"scope":         {"openid email"},
			}, u.Query())
		})
	}
}

func TestBuildLogoutURL(t *testing.T) {
	got := auth.BuildLogoutURL(testDomain, testClientID, testRedirectURI)

	require.Equal(t,
		"https://auth.example.com/logout?client_id=test-client-1&logout_uri=http%3A%2F%2Flocalhost%3A8501%2F",
		got)
}

func TestURLBuildersAreStable(t *testing.T) {
	require.Equal(t,
		auth.BuildAuthorizationURL(testDomain, testClientID, testRedirectURI),
		auth.BuildAuthorizationURL(testDomain, testClientID, testRedirectURI))
	require.Equal(t,
		auth.BuildLogoutURL(testDomain, testClientID, testRedirectURI),
		auth.BuildLogoutURL(testDomain, testClientID, testRedirectURI))
}
