package siteverify

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/siteverify/internal"
	"github.com/dmitrymomot/siteverify/pkg/logger"
)

// Type aliases - public API
type (
	// App orchestrates the application lifecycle.
	// It manages HTTP routing, middleware, and graceful shutdown.
	App = internal.App

	// Router is the interface handlers use to declare routes.
	Router = internal.Router

	// Context provides request/response access and helper methods.
	Context = internal.Context

	// Handler declares routes on a router.
	Handler = internal.Handler

	// HandlerFunc is the signature for route handlers.
	HandlerFunc = internal.HandlerFunc

	// Middleware wraps a HandlerFunc to add cross-cutting concerns.
	Middleware = internal.Middleware

	// ErrorHandler handles errors returned from handlers.
	ErrorHandler = internal.ErrorHandler

	// Option configures the application.
	Option = internal.Option

	// RunOption configures the server runtime.
	RunOption = internal.RunOption

	// HealthOption configures health check endpoints.
	HealthOption = internal.HealthOption

	// HTTPError represents an HTTP error with structured data for error handlers.
	HTTPError = internal.HTTPError

	// ResponseWriter wraps http.ResponseWriter with status tracking.
	ResponseWriter = internal.ResponseWriter

	// ContextExtractor extracts a slog attribute from context.
	// Used with the logger package to add request-scoped values to logs.
	ContextExtractor = logger.ContextExtractor
)

// Constructors

// New creates a new application with the given options.
// The App is immutable after creation.
//
// Example:
//
//	app := siteverify.New(
//	    siteverify.WithMiddleware(middlewares.CORS()),
//	    siteverify.WithHandlers(responder.New(cfg)),
//	)
//
//	err := app.Run(":8080", siteverify.Logger(slog))
func New(opts ...Option) *App {
	return internal.New(opts...)
}

// Options - application configuration

var (
	// WithLogger sets the application logger.
	WithLogger = internal.WithLogger

	// WithMiddleware adds global middleware to the application.
	WithMiddleware = internal.WithMiddleware

	// WithHandlers registers handlers that declare routes.
	WithHandlers = internal.WithHandlers

	// WithErrorHandler sets a custom error handler for handler errors.
	WithErrorHandler = internal.WithErrorHandler

	// WithNotFoundHandler sets a custom 404 handler.
	WithNotFoundHandler = internal.WithNotFoundHandler

	// WithMethodNotAllowedHandler sets a custom 405 handler.
	WithMethodNotAllowedHandler = internal.WithMethodNotAllowedHandler

	// WithHealthChecks enables health check endpoints.
	WithHealthChecks = internal.WithHealthChecks

	// WithLivenessPath sets a custom liveness endpoint path.
	WithLivenessPath = internal.WithLivenessPath

	// WithReadinessPath sets a custom readiness endpoint path.
	WithReadinessPath = internal.WithReadinessPath

	// WithReadinessCheck adds a named readiness check.
	WithReadinessCheck = internal.WithReadinessCheck
)

// Run options - server runtime configuration

// Logger sets the runtime logger.
func Logger(l *slog.Logger) RunOption {
	return internal.Logger(l)
}

// ShutdownTimeout sets the timeout for graceful shutdown.
var ShutdownTimeout = internal.ShutdownTimeout

// ShutdownHook registers a cleanup function to run during shutdown.
func ShutdownHook(fn func(context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

// WithContext sets a custom base context for signal handling.
var WithContext = internal.WithContext
