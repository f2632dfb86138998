package stclient

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		cfg := &Config{BaseURL: "http://localhost:8384", APIKey: "abc"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing base url fails", func(t *testing.T) {
		cfg := &Config{APIKey: "abc"}
		assert.ErrorIs(t, cfg.Validate(), ErrNoBaseURL)
	})

	t.Run("missing api key fails", func(t *testing.T) {
		cfg := &Config{BaseURL: "http://localhost:8384"}
		assert.ErrorIs(t, cfg.Validate(), ErrNoAPIKey)
	})
}

func TestResolveSecret(t *testing.T) {
	t.Run("literal passes through", func(t *testing.T) {
		got, err := ResolveSecret("plain-token")
		require.NoError(t, err)
		assert.Equal(t, "plain-token", got)
	})

	t.Run("existing file is read and trimmed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "api-key")
		require.NoError(t, os.WriteFile(path, []byte("  secret-from-file\n"), 0600))

		got, err := ResolveSecret(path)
		require.NoError(t, err)
		assert.Equal(t, "secret-from-file", got)
	})
}
