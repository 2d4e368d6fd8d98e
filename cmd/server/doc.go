// Package main is the entry point for the fishkit HTTP server.
//
// The server exposes identity number and bank card checksums, synthetic
// test number generation and reference lookups as tools on a service
// registry, plus a few direct JSON routes.
//
// Configuration:
//   - Defaults for development
//   - TOML file given with -config
//   - Environment variables (12-factor, override the file)
//   - CLI flags (override everything)
//
// Usage:
//
//	# Production mode
//	./server -config /etc/fishkit.toml
//
//	# Development mode (colored logs, debug level)
//	./server -dev -port 8080
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
