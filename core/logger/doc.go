// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) for a command-line tool that talks to a remote
// API.
//
// # Run Correlation
//
// The WithRunID helper attaches a fresh run_id field to the logger, ensuring
// that all logs belonging to one command invocation can be correlated after
// the fact.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (machine-readable) or console (interactive use)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRunID(log)
//	log.Info("push started")
package logger
