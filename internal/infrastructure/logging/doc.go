// Package logging provides structured logging using uber/zap.
//
// Two output modes:
//   - Production: JSON lines for log shippers
//   - Development: colored console output
//
// Identifiers such as card or identity numbers must never be logged in the
// clear; log a fingerprint (see utils.Hasher) or a masked form instead.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("Server starting", zap.String("port", "8000"))
//	logger.Error("Seed failed", zap.Error(err))
package logging
