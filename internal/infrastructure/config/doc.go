// Package config provides 12-factor configuration management for fishkit.
//
// Values start from Default(), are overlaid by an optional TOML file and
// finally by environment variables, so the environment always wins.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host)
//   - Logging: Log level and output format
//   - RateLimit: Per-IP rate limiting configuration
//   - RefData: Reference database path and seeding
//   - Generator: Batch limit and log fingerprint key
//
// Example Usage:
//
//	cfg, err := config.LoadFile("fishkit.toml")
//	fmt.Printf("Server running on %s:%s\n", cfg.Server.Host, cfg.Server.Port)
//
// Environment Variables:
//   - PORT, HOST
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
//   - REFDATA_PATH, REFDATA_SEED
//   - GEN_MAX_BATCH, FINGERPRINT_KEY
package config
