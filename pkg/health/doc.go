// Package health provides HTTP handlers for liveness and readiness probes.
//
// LivenessHandler always reports OK while the process runs. ReadinessHandler
// runs named checks in parallel and aggregates the result. Responses are
// plain text by default; clients get JSON by sending Accept:
// application/json or the format=json query parameter.
//
// The verification responder itself has no dependencies, so its readiness
// probe usually carries no checks; the option surface exists for
// deployments that front the service with something they want probed.
package health
