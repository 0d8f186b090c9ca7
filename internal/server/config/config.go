// Package config handles configuration for the server component, layering
// defaults, an optional JSON file, environment variables, and command-line
// flags (later sources win).
package config

import "time"

// Config holds runtime settings for the credkeeper server.
//
// Fields:
//   - EndpointAddr: bind address for the public HTTP endpoint.
//   - DatabaseDSN: postgres:// DSN (pgx) or a SQLite file path.
//   - SecretKey: HMAC secret for signing bearer tokens (HS256). Must be
//     supplied out-of-band; an empty value is a fatal startup condition.
//   - AccessTokenValidityDuration: bearer token lifetime.
//   - BcryptCost: work factor for the password hasher.
type Config struct {
	EndpointAddr                string
	DatabaseDSN                 string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	BcryptCost                  int
}

// LoadDefaults populates Config with development defaults. The secret key
// deliberately has no default.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DatabaseDSN = "credkeeper.db"
	c.SecretKey = ""
	c.AccessTokenValidityDuration = 30 * time.Minute
	c.BcryptCost = 10
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
