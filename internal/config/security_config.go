package config

import "time"

type SecurityConfig interface {
	GetRequireState() bool
	GetMaxSessionAge() time.Duration
}

type Security struct {
	RequireState  bool          `env:"REQUIRE_STATE" envDefault:"true"`
	MaxSessionAge time.Duration `env:"SESSION_MAX_AGE" envDefault:"24h"`
}

var _ SecurityConfig = Security{}

func (s Security) GetRequireState() bool {
	return s.RequireState
}

func (s Security) GetMaxSessionAge() time.Duration {
	return s.MaxSessionAge
}
