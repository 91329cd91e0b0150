package config

import "time"

// Config holds runtime settings for the shopsync POS client.
//
// Units: all intervals are time.Durations (e.g., 3*time.Second).
type Config struct {
	// APIBaseURL is the root of the shop backend REST API.
	APIBaseURL string
	// DatabasePath is the local SQLite file backing the offline queue and
	// catalog snapshots.
	DatabasePath string
	// OnlineCheckInterval is how often the client probes backend reachability.
	OnlineCheckInterval time.Duration
	// CacheTTL bounds the freshness of memoized list reads.
	CacheTTL time.Duration
	// SessionCacheTTL bounds the freshness of sale-session lists, which
	// change faster than catalog data.
	SessionCacheTTL time.Duration
	// RetentionWindow is how long synced offline sales are kept before the
	// retention sweep removes them.
	RetentionWindow time.Duration
	// PageSize is the default list page size.
	PageSize int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000/api"
	c.DatabasePath = "shopsync.db"
	c.OnlineCheckInterval = 3 * time.Second
	c.CacheTTL = 5 * time.Minute
	c.SessionCacheTTL = 2 * time.Minute
	c.RetentionWindow = 7 * 24 * time.Hour
	c.PageSize = 20
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
