// Package internal provides the core types and implementation for the
// siteverify service shell.
//
// This package is internal and should not be used directly. Import
// "github.com/dmitrymomot/siteverify" instead, which re-exports the
// public API.
//
// # Core Types
//
//   - App: Orchestrates the application lifecycle, HTTP routing, and graceful shutdown
//   - Context: Provides request/response access and helper methods
//   - Router: Interface handlers use to declare routes with HTTP methods and grouping
//   - Handler: Interface implemented by types that declare routes on a router
//   - HandlerFunc: Signature for individual route handlers that return errors
//   - Middleware: Wraps handlers to add cross-cutting concerns
//   - ErrorHandler: Custom error handling function for handler errors
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed directly to any
// function that expects a standard library context. The Deadline, Done,
// Err, and Value methods delegate to the underlying request context.
//
// # Application Structure
//
// Create an application with New() and configure it using options:
//
//	app := internal.New(
//	    internal.WithHandlers(responderHandler),
//	    internal.WithMiddleware(corsMiddleware, recoverMiddleware),
//	    internal.WithHealthChecks(),
//	)
//
// Handlers receive dependencies via constructor injection, not context
// helpers. This keeps handler logic explicit and testable.
package internal
