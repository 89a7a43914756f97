// Package ads provides access to the NASA ADS API: paper search, metrics,
// and personal libraries.
package ads

import (
	"errors"
	"os"
	"time"
)

const (
	// BaseURL is the NASA ADS API endpoint
	BaseURL = "https://api.adsabs.harvard.edu/v1"

	// DefaultTimeout for API requests
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies the client to the ADS API
	DefaultUserAgent = "nasa-ads-mcp-server/1.0 (github.com/adstools/nasa-ads-mcp-server)"
)

// Config holds ADS API connection settings
type Config struct {
	// Token is the ADS API token (https://ui.adsabs.harvard.edu/user/settings/token)
	Token string

	// BaseURL is the API endpoint, overridable for testing
	BaseURL string

	// Timeout for API requests
	Timeout time.Duration

	// UserAgent identifies the client to the ADS API
	UserAgent string
}

// LoadConfig loads configuration from environment variables.
// ADS_API_TOKEN is required; everything else has defaults.
func LoadConfig() (*Config, error) {
	token := os.Getenv("ADS_API_TOKEN")
	if token == "" {
		return nil, errors.New("ADS_API_TOKEN not found in environment; create a .env file with your NASA ADS API token")
	}

	baseURL := os.Getenv("ADS_API_URL")
	if baseURL == "" {
		baseURL = BaseURL
	}

	timeout := DefaultTimeout
	if t := os.Getenv("ADS_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			timeout = d
		}
	}

	userAgent := os.Getenv("ADS_USER_AGENT")
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Config{
		Token:     token,
		BaseURL:   baseURL,
		Timeout:   timeout,
		UserAgent: userAgent,
	}, nil
}
