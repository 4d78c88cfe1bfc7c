package responder

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrymomot/siteverify/internal"
)

// DefaultToken is the site-verification token issued by the platform for
// this deployment. It must be served byte-for-byte.
const DefaultToken = "tiktok-developers-site-verification=Vppdkkg17zPwMXE5vCnTmcHXvGI2moBj"

const (
	defaultTTL      = 300
	defaultPlatform = "tiktok-developers"

	recordTypeTXT      = "TXT"
	verificationMethod = "DNS TXT Record"
	statusActive       = "active"
)

// Variant selects which observed response policy the responder follows.
type Variant string

const (
	// VariantLegacy answers every request with the JSON verification
	// document, matching the first deployed revision of the endpoint.
	VariantLegacy Variant = "legacy"

	// VariantStandard serves the raw token as plain text by default and
	// honors the type/record/format query parameters.
	VariantStandard Variant = "standard"
)

// ParseVariant maps a configuration string to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantLegacy:
		return VariantLegacy, nil
	case VariantStandard, "":
		return VariantStandard, nil
	default:
		return "", fmt.Errorf("unknown responder variant %q", s)
	}
}

// Config holds the responder configuration.
// It is immutable after New; the token is the complete semantic payload
// of the service and is identical for every request.
type Config struct {
	// Token is the verification string returned to the platform.
	Token string

	// Variant selects the response policy. Defaults to VariantStandard.
	Variant Variant

	// TTL is the advertised record TTL in seconds, also used for the
	// Cache-Control max-age. Defaults to 300.
	TTL int

	// Platform names the platform the token verifies for.
	// Defaults to "tiktok-developers".
	Platform string
}

// Option configures the Responder.
type Option func(*Responder)

// WithClock sets the timestamp source. Used by tests to pin time.
func WithClock(now func() time.Time) Option {
	return func(h *Responder) {
		if now != nil {
			h.now = now
		}
	}
}

// Responder is the verification endpoint handler.
type Responder struct {
	cfg          Config
	now          func() time.Time
	cacheControl string
	render       map[Format]internal.HandlerFunc
}

// New creates a Responder, filling config defaults.
func New(cfg Config, opts ...Option) *Responder {
	if cfg.Token == "" {
		cfg.Token = DefaultToken
	}
	if cfg.Variant == "" {
		cfg.Variant = VariantStandard
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}
	if cfg.Platform == "" {
		cfg.Platform = defaultPlatform
	}

	h := &Responder{
		cfg:          cfg,
		now:          time.Now,
		cacheControl: fmt.Sprintf("public, max-age=%d", cfg.TTL),
	}

	for _, opt := range opts {
		opt(h)
	}

	h.render = map[Format]internal.HandlerFunc{
		FormatText: h.plainToken,
		FormatTXT:  h.plainToken,
		FormatJSON: h.recordJSON,
	}

	return h
}

// Token returns the configured verification token.
func (h *Responder) Token() string {
	return h.cfg.Token
}

// Routes declares the verification routes. The responder should also be
// installed as the app's NotFound and MethodNotAllowed handler so that
// any path and method answer the verification query.
func (h *Responder) Routes(r internal.Router) {
	r.GET("/", h.Respond)
	r.POST("/", h.Respond)
}

// Respond answers a verification query. Every input produces HTTP 200;
// there are no failure states.
func (h *Responder) Respond(c internal.Context) error {
	if h.cfg.Variant == VariantLegacy {
		return h.legacyJSON(c)
	}

	c.SetHeader("Cache-Control", h.cacheControl)

	format := ResolveFormat(c.Request().URL.Query())
	return h.render[format](c)
}

// VerificationDocument is the legacy JSON response body.
type VerificationDocument struct {
	Verification string `json:"verification"`
	Domain       string `json:"domain"`
	Method       string `json:"method"`
	Status       string `json:"status"`
	Timestamp    string `json:"timestamp"`
}

// RecordDocument is the pseudo DNS TXT record response body. It mimics
// the content of a DNS TXT record over HTTP; the service never touches
// the DNS protocol itself.
type RecordDocument struct {
	Domain      string   `json:"domain"`
	RecordType  string   `json:"record_type"`
	Value       string   `json:"value"`
	TTL         int      `json:"ttl"`
	Status      string   `json:"status"`
	VerifiedFor []string `json:"verified_for"`
	Timestamp   string   `json:"timestamp"`
}

func (h *Responder) plainToken(c internal.Context) error {
	return c.String(http.StatusOK, h.cfg.Token)
}

func (h *Responder) recordJSON(c internal.Context) error {
	return c.JSON(http.StatusOK, RecordDocument{
		Domain:      c.Host(),
		RecordType:  recordTypeTXT,
		Value:       h.cfg.Token,
		TTL:         h.cfg.TTL,
		Status:      statusActive,
		VerifiedFor: []string{h.cfg.Platform},
		Timestamp:   h.timestamp(),
	})
}

func (h *Responder) legacyJSON(c internal.Context) error {
	return c.JSON(http.StatusOK, VerificationDocument{
		Verification: h.cfg.Token,
		Domain:       c.Host(),
		Method:       verificationMethod,
		Status:       statusActive,
		Timestamp:    h.timestamp(),
	})
}

func (h *Responder) timestamp() string {
	return h.now().UTC().Format(time.RFC3339)
}
