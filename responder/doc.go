// Package responder implements the domain-verification endpoint.
//
// A social platform verifies site ownership by fetching the site and
// expecting a fixed verification token back. The responder answers every
// request with HTTP 200 and the token, shaped by query parameters:
//
//	GET /?type=TXT      -> raw token, text/plain
//	GET /?record=TXT    -> raw token, text/plain
//	GET /?format=json   -> pseudo DNS TXT record as JSON
//	GET /               -> raw token, text/plain
//
// Two response policies exist, selected by [Config.Variant]:
// [VariantStandard] behaves as above, [VariantLegacy] reproduces the
// first deployed revision of the endpoint, which answered every request
// with a JSON verification document and ignored query parameters.
//
// The responder is stateless. The token is fixed at construction and
// every request is answered independently; malformed or unrecognized
// query shapes degrade to the default response instead of failing.
package responder
