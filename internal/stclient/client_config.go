package stclient

import (
	"os"
	"strings"
)

const DefaultBaseURL = "http://localhost:8384"

// Config is the configuration for the daemon client.
type Config struct {
	BaseURL string // BaseURL is required
	APIKey  string // APIKey is required; a literal secret or a path to a file holding it
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrNoBaseURL
	}

	if c.APIKey == "" {
		return ErrNoAPIKey
	}

	return nil
}

// ResolveSecret returns the value itself, or the trimmed contents of the
// file it names when such a file exists.
func ResolveSecret(input string) (string, error) {
	if _, err := os.Stat(input); err != nil {
		return input, nil
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(data)), nil
}
