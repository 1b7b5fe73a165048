// Package config handles configuration for the HelpNet persistence layer,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the HelpNet data layer.
//
// Fields:
//   - DatabaseDSN: backing store DSN. A postgres:// URL selects the pgx
//     driver; anything else is treated as a SQLite database path
//     (an optional sqlite: prefix is stripped by the storage gateway).
//   - LogLevel: minimum slog level ("debug", "info", "warn", "error").
type Config struct {
	DatabaseDSN string
	LogLevel    string
}

// LoadDefaults populates Config with local-development defaults.
// The SQLite default mirrors the platform's single-file dev database.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "sqlite:community_support.db"
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
