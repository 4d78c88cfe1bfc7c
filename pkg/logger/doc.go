// Package logger provides structured logging with context extraction and
// optional Sentry integration.
//
// The package extends log/slog with automatic context-based attribute
// injection (request IDs attached to request-scoped logs) and Sentry
// error reporting with graceful fallback when unconfigured.
//
// # Basic Usage
//
// Create a logger with context extractors:
//
//	log := logger.New(slog.LevelInfo, middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "server starting")
//
// # Sentry
//
// NewWithSentry fans logs out to stdout and Sentry; an empty DSN falls
// back to stdout only, so local development needs no configuration:
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//	    DSN:         cfg.Sentry.DSN,
//	    Environment: cfg.Sentry.Environment,
//	}, middlewares.RequestIDExtractor())
package logger
