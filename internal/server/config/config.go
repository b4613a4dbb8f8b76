// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the despesas server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP API.
//   - DatabaseDSN: "postgres://..." selects PostgreSQL (pgx); any other
//     value is treated as a SQLite database path.
//   - SecretKey: HMAC secret for signing JWTs (HS256). There is no default;
//     the server refuses to start without one.
//   - TokenValidityDuration: access token lifetime. Zero disables expiry.
//   - CORSAllowedOrigins: comma-separated origin list for the CORS layer.
type Config struct {
	EndpointAddr          string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	CORSAllowedOrigins    string
}

// LoadDefaults populates Config with development defaults. The secret key is
// deliberately left empty so it must come from a config file or flag.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DatabaseDSN = "despesas.db"
	c.SecretKey = ""
	c.TokenValidityDuration = 24 * time.Hour
	c.CORSAllowedOrigins = "*"
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
