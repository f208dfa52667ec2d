// Package log provides the structured logging facade used by the fastuuid
// CLI and its supporting services.
//
// # Overview
//
// The package exposes a small Logger interface with leveled methods and a
// Field type for structured context. Records flow through log/slog into a
// bridge handler that formats them with a Formatter and writes them to one
// or more Outputs.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	    log.WithOutput(log.NewConsoleOutput()),
//	)
//	l = l.With(log.Component("audit"))
//	l.Info("recorded ids", log.Int("count", 1000))
//
// # Configuration
//
// ApplyConfig builds a logger from a declarative Config with text or JSON
// formatting and console, file or null outputs.
//
// # Interop
//
// Libraries that log through the standard library (Pebble does) can be
// routed into a Logger with RedirectStdLog or ToStdLogger.
package log
