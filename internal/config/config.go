package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
	apperrors "github.com/jrsteele09/go-owasp-assistant/internal/errors"
	"github.com/joho/godotenv"
)

type Config interface {
	EnvConfig
	ProviderConfig
	BackendConfig
	SecurityConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
}

type BackendConfig interface {
	GetAPIURL() string
}

type mainConfig struct {
	EnvVars
	Provider
	Backend
	Security
}

// Load reads an optional .env file and then the process environment.
// A missing required value is returned as an error; callers treat it as fatal.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("[config Load] reading env file: %w", err)
	}

	var c mainConfig
	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("[config Load] %w: %w", apperrors.ErrInvalidConfig, err)
	}

	c.Provider.CognitoDomain = normaliseDomain(c.Provider.CognitoDomain)
	if c.Provider.CognitoDomain == "" {
		return nil, fmt.Errorf("[config Load] %w: COGNITO_DOMAIN is empty", apperrors.ErrInvalidConfig)
	}
	if _, err := url.ParseRequestURI(c.Backend.APIURL); err != nil {
		return nil, fmt.Errorf("[config Load] %w: API_URL: %w", apperrors.ErrInvalidConfig, err)
	}
	if _, err := url.ParseRequestURI(c.Provider.RedirectURI); err != nil {
		return nil, fmt.Errorf("[config Load] %w: REDIRECT_URI: %w", apperrors.ErrInvalidConfig, err)
	}
	return c, nil
}

// normaliseDomain accepts "auth.example.com" as well as "https://auth.example.com/".
func normaliseDomain(domain string) string {
	domain = strings.TrimSpace(domain)
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	return strings.TrimRight(domain, "/")
}

type Backend struct {
	APIURL string `env:"API_URL,required,notEmpty"`
}

var _ BackendConfig = Backend{}

func (b Backend) GetAPIURL() string {
	return b.APIURL
}
