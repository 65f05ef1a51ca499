package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults mirror the original deployment; every field in the YAML file
// is optional.
const (
	DefaultSECFeedURL       = "https://www.sec.gov/cgi-bin/browse-edgar?action=getcurrent&output=atom"
	DefaultFrankfurtFeedURL = "https://api.boerse-frankfurt.de/v1/feeds/news.rss"
	DefaultUserAgent        = "ownership-watch admin@ownership-watch.invalid"
	DefaultMaxItems         = 120
	DefaultMaxEvents        = 2000
	DefaultTimeout          = 30 * time.Second
	DefaultRetries          = 3
	DefaultRetryWait        = 2 * time.Second
	DefaultStoreDir         = "./data"
	DefaultMetricsListen    = ":9090"
)

// UserAgentEnv overrides the identification header; the name is kept
// from the original deployment so existing environments keep working.
const UserAgentEnv = "SEC_USER_AGENT"

// Duration decodes YAML strings like "30s" or "1m30s"; yaml.v3 does not
// handle time.Duration on its own.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

type SECConfig struct {
	FeedURL string   `yaml:"feed_url"`
	Forms   []string `yaml:"forms"` // accepted form codes
}

type FrankfurtConfig struct {
	FeedURL  string `yaml:"feed_url"`
	MaxItems int    `yaml:"max_items"` // per-run cap on inspected feed items
}

type HTTPConfig struct {
	Timeout   Duration `yaml:"timeout"`
	Retries   int      `yaml:"retries"`
	RetryWait Duration `yaml:"retry_wait"`
}

type StoreConfig struct {
	Dir       string `yaml:"dir"`        // seen.json / events.json / events.csv
	MaxEvents int    `yaml:"max_events"` // ledger retention cap
}

type MetricsConfig struct {
	Enable bool   `yaml:"enable"`
	Listen string `yaml:"listen"`
}

type Config struct {
	UserAgent string          `yaml:"user_agent"`
	SEC       SECConfig       `yaml:"sec"`
	Frankfurt FrankfurtConfig `yaml:"frankfurt"`
	HTTP      HTTPConfig      `yaml:"http"`
	Store     StoreConfig     `yaml:"store"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// Load reads the YAML file at path, fills defaults and validates. A
// missing file is not an error: the defaults alone are a runnable
// configuration.
func Load(path string) (Config, error) {
	var c Config
	b, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(b, &c); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.SEC.FeedURL == "" {
		c.SEC.FeedURL = DefaultSECFeedURL
	}
	if len(c.SEC.Forms) == 0 {
		c.SEC.Forms = []string{"SC 13D", "SC 13G", "8-K"}
	}
	if c.Frankfurt.FeedURL == "" {
		c.Frankfurt.FeedURL = DefaultFrankfurtFeedURL
	}
	if c.Frankfurt.MaxItems == 0 {
		c.Frankfurt.MaxItems = DefaultMaxItems
	}
	if c.HTTP.Timeout == 0 {
		c.HTTP.Timeout = Duration(DefaultTimeout)
	}
	if c.HTTP.Retries == 0 {
		c.HTTP.Retries = DefaultRetries
	}
	if c.HTTP.RetryWait == 0 {
		c.HTTP.RetryWait = Duration(DefaultRetryWait)
	}
	if c.Store.Dir == "" {
		c.Store.Dir = DefaultStoreDir
	}
	if c.Store.MaxEvents == 0 {
		c.Store.MaxEvents = DefaultMaxEvents
	}
	if c.Metrics.Listen == "" {
		c.Metrics.Listen = DefaultMetricsListen
	}
}

// Validate rejects values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Store.MaxEvents < 1 {
		return fmt.Errorf("store.max_events must be >= 1, got %d", c.Store.MaxEvents)
	}
	if c.Frankfurt.MaxItems < 1 {
		return fmt.Errorf("frankfurt.max_items must be >= 1, got %d", c.Frankfurt.MaxItems)
	}
	if c.HTTP.Timeout <= 0 {
		return fmt.Errorf("http.timeout must be positive, got %s", c.HTTP.Timeout)
	}
	return nil
}

// ResolveUserAgent applies the environment override on top of the
// configured value.
func (c *Config) ResolveUserAgent() string {
	if ua := os.Getenv(UserAgentEnv); ua != "" {
		return ua
	}
	return c.UserAgent
}
