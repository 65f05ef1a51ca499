package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultSECFeedURL, cfg.SEC.FeedURL)
	assert.Equal(t, []string{"SC 13D", "SC 13G", "8-K"}, cfg.SEC.Forms)
	assert.Equal(t, DefaultFrankfurtFeedURL, cfg.Frankfurt.FeedURL)
	assert.Equal(t, DefaultMaxItems, cfg.Frankfurt.MaxItems)
	assert.Equal(t, DefaultMaxEvents, cfg.Store.MaxEvents)
	assert.Equal(t, Duration(DefaultTimeout), cfg.HTTP.Timeout)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
user_agent: "Jane Analyst jane@example.org"
sec:
  forms: ["SC 13D"]
frankfurt:
  max_items: 40
http:
  timeout: 10s
store:
  max_events: 500
`), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "Jane Analyst jane@example.org", cfg.UserAgent)
	assert.Equal(t, []string{"SC 13D"}, cfg.SEC.Forms)
	assert.Equal(t, 40, cfg.Frankfurt.MaxItems)
	assert.Equal(t, Duration(10*time.Second), cfg.HTTP.Timeout)
	assert.Equal(t, 500, cfg.Store.MaxEvents)
	// untouched sections still get defaults
	assert.Equal(t, DefaultSECFeedURL, cfg.SEC.FeedURL)
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  max_events: -5\n"), 0o644))

	_, err := Load(path)

	assert.ErrorContains(t, err, "store.max_events")
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("sec: [unbalanced"), 0o644))

	_, err := Load(path)

	assert.Error(t, err)
}

func TestResolveUserAgentEnvOverride(t *testing.T) {
	cfg := Config{UserAgent: "from config"}

	t.Setenv(UserAgentEnv, "from env")
	assert.Equal(t, "from env", cfg.ResolveUserAgent())

	t.Setenv(UserAgentEnv, "")
	assert.Equal(t, "from config", cfg.ResolveUserAgent())
}
