// Command siteverifyd serves domain-ownership verification queries.
//
// Usage:
//
//	siteverifyd [-config siteverify.yaml]
//
// Configuration comes from the optional YAML file plus environment
// overrides; see the internal/config package for the recognized keys.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/dmitrymomot/siteverify"
	"github.com/dmitrymomot/siteverify/internal/config"
	"github.com/dmitrymomot/siteverify/middlewares"
	"github.com/dmitrymomot/siteverify/pkg/logger"
	"github.com/dmitrymomot/siteverify/responder"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := newLogger(cfg).With("app", "siteverifyd")

	variant, err := responder.ParseVariant(cfg.Responder.Variant)
	if err != nil {
		// Load validates the variant; this only fires if validation drifts.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	h := responder.New(responder.Config{
		Token:    cfg.Responder.Token,
		Variant:  variant,
		TTL:      cfg.Responder.TTL,
		Platform: cfg.Responder.Platform,
	})

	app := siteverify.New(
		siteverify.WithLogger(log),
		siteverify.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Recover(),
			middlewares.CORS(
				middlewares.WithAllowMethods(http.MethodGet, http.MethodPost, http.MethodOptions),
				middlewares.WithAllowHeaders("Content-Type"),
				middlewares.WithApplyToAllResponses(),
				middlewares.WithPreflightStatus(http.StatusOK),
			),
		),
		siteverify.WithHandlers(h),
		// The platform's crawler probes arbitrary paths and methods;
		// every request answers the verification query.
		siteverify.WithNotFoundHandler(h.Respond),
		siteverify.WithMethodNotAllowedHandler(h.Respond),
		siteverify.WithHealthChecks(),
		siteverify.WithErrorHandler(degradeToToken(h)),
	)

	log.Info("starting siteverifyd",
		"addr", cfg.Server.Addr,
		"variant", string(variant),
	)

	if err := app.Run(
		cfg.Server.Addr,
		siteverify.Logger(log),
		siteverify.ShutdownTimeout(cfg.Server.ShutdownTimeout.Std()),
	); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

// newLogger builds the process logger from configuration. Sentry fan-out
// is enabled only when a DSN is configured.
func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.Sentry.DSN != "" {
		return logger.NewWithSentry(logger.SentryConfig{
			DSN:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
		}, middlewares.RequestIDExtractor())
	}
	return logger.New(logger.ParseLevel(cfg.Log.Level), middlewares.RequestIDExtractor())
}

// degradeToToken returns an error handler that logs the failure and
// falls back to the default textual response. The verification contract
// has no failure states, so even an internal error answers 200 with the
// token.
func degradeToToken(h *responder.Responder) siteverify.ErrorHandler {
	return func(c siteverify.Context, err error) error {
		c.LogError("handler error", "error", err)
		return c.String(http.StatusOK, h.Token())
	}
}
