// Package middlewares provides HTTP middleware for the siteverify service.
//
// All middleware follows the functional options pattern and operates on
// the siteverify Context:
//
//	app := siteverify.New(
//	    siteverify.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.Recover(),
//	        middlewares.CORS(
//	            middlewares.WithAllowMethods("GET", "POST", "OPTIONS"),
//	            middlewares.WithAllowHeaders("Content-Type"),
//	            middlewares.WithApplyToAllResponses(),
//	        ),
//	    ),
//	)
//
// CORS here differs from the usual origin-gated variant: the platform's
// verification crawler and browser-based checks both expect the
// Access-Control headers present on every response, Origin or not, and a
// 200 preflight. WithApplyToAllResponses enables that contract.
package middlewares
