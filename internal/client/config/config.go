package config

import "time"

// Config holds runtime settings for the bankcli client.
//
// Fields:
//   - ServerBaseURL: root of the banking REST API, including the /api prefix.
//   - RequestTimeout: overall per-request timeout for API calls.
//   - DatabasePath: location of the local SQLite database holding the
//     credential pair.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000/api"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "bank.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
