package sdk

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envConfig is the PORTALGRID_* environment surface.
type envConfig struct {
	BaseURL       string        `envconfig:"BASE_URL" required:"true"`
	TokenPath     string        `envconfig:"TOKEN_PATH"`
	UserAgent     string        `envconfig:"USER_AGENT"`
	RetryAttempts int           `envconfig:"RETRY_ATTEMPTS"`
	RetryBackoff  time.Duration `envconfig:"RETRY_BACKOFF"`
}

// ConfigFromEnv builds a Config from PORTALGRID_* environment variables,
// wiring an AntiforgeryTokenProvider against the site's token endpoint.
// PORTALGRID_BASE_URL is required; everything else falls back to defaults.
func ConfigFromEnv() (Config, error) {
	var ec envConfig
	if err := envconfig.Process("portalgrid", &ec); err != nil {
		return Config{}, ConfigError{Reason: err.Error()}
	}
	provider, err := NewAntiforgeryTokenProvider(AntiforgeryTokenProviderConfig{
		BaseURL: ec.BaseURL,
		Path:    ec.TokenPath,
	})
	if err != nil {
		return Config{}, err
	}
	return Config{
		BaseURL:       ec.BaseURL,
		TokenProvider: provider,
		UserAgent:     ec.UserAgent,
		Retry: RetryConfig{
			MaxAttempts: ec.RetryAttempts,
			Backoff:     ec.RetryBackoff,
		},
	}, nil
}
