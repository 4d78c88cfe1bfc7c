// Package siteverify implements a small, stateless HTTP service that
// answers a social platform's domain-ownership verification queries with
// a fixed verification token.
//
// The platform's crawler requests the site and expects the token back as
// plain text, as JSON, or as a pseudo DNS TXT record document depending
// on query parameters. The service holds no state: the token is an
// immutable configuration value and every request is answered
// independently with HTTP 200.
//
// # Quick Start
//
// Create an application with New(), register the responder, and call
// Run() to start the HTTP server:
//
//	app := siteverify.New(
//	    siteverify.WithLogger(log),
//	    siteverify.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.Recover(),
//	        middlewares.CORS(middlewares.WithApplyToAllResponses()),
//	    ),
//	    siteverify.WithHandlers(responder.New(cfg)),
//	    siteverify.WithHealthChecks(),
//	)
//
//	if err := app.Run(":8080", siteverify.Logger(log)); err != nil {
//	    log.Error("server error", "error", err)
//	    os.Exit(1)
//	}
//
// # Handlers
//
// Handlers implement the [Handler] interface to declare routes:
//
//	func (h *Responder) Routes(r siteverify.Router) {
//	    r.GET("/", h.respond)
//	    r.POST("/", h.respond)
//	}
//
// Handlers return errors instead of writing error responses directly;
// a configurable [ErrorHandler] renders them.
package siteverify
