package server

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/jrsteele09/go-owasp-assistant/auth"
	"github.com/jrsteele09/go-owasp-assistant/internal/config"
	"github.com/jrsteele09/go-owasp-assistant/query"
	"github.com/jrsteele09/go-owasp-assistant/sessions"
	"github.com/rs/zerolog/log"
)

type Server struct {
	env      string // Environment (e.g., "DEV", "PROD")
	mux      *http.ServeMux
	routes   []string
	config   config.Config
	auth     *auth.Controller
	relay    *query.Relay
	sessions sessions.Repo
	page     *template.Template
}

type options struct {
	httpClient  *http.Client
	sessionRepo sessions.Repo
}

type Option func(*options)

// WithHTTPClient sets the client used for the provider and the backend
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithSessionRepo replaces the default in-process session repository
func WithSessionRepo(repo sessions.Repo) Option {
	return func(o *options) {
		o.sessionRepo = repo
	}
}

func New(ctx context.Context, config config.Config, opts ...Option) (*Server, error) {
	o := options{httpClient: http.DefaultClient}
	for _, opt := range opts {
		opt(&o)
	}
	if o.sessionRepo == nil {
		o.sessionRepo = sessions.NewCacheRepo(config.GetMaxSessionAge())
	}

	authOpts := []auth.Option{
		auth.WithHTTPClient(o.httpClient),
		auth.WithStateCheck(config.GetRequireState()),
	}
	if issuerURL := config.GetIssuerURL(); issuerURL != "" {
		verifier, err := auth.DiscoverVerifier(ctx, o.httpClient, issuerURL, config.GetClientID())
		if err != nil {
			return nil, fmt.Errorf("[Server New] failed to create id token verifier: %w", err)
		}
		authOpts = append(authOpts, auth.WithVerifier(verifier))
	}

	page, err := ParseTemplate("index.html")
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to parse index template: %w", err)
	}

	s := &Server{
		env:      config.GetEnv(),
		mux:      http.NewServeMux(),
		config:   config,
		auth:     auth.NewController(config.GetCognitoDomain(), config.GetClientID(), config.GetRedirectURI(), authOpts...),
		relay:    query.NewRelay(config.GetAPIURL(), o.httpClient),
		sessions: o.sessionRepo,
		page:     page,
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Info().Msgf("[%-19s] %s", displayMethod, path)
}

// Helper function to determine the scheme (http/https)
func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
