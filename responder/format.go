package responder

import "net/url"

// Format identifies the response shape selected by a verification query.
type Format int

const (
	// FormatText is the default: the raw token as plain text.
	FormatText Format = iota

	// FormatTXT is an explicit TXT-record request (type=TXT or
	// record=TXT). The body is the same raw token; the selection is kept
	// distinct because it takes precedence over format=json.
	FormatTXT

	// FormatJSON renders the token as a pseudo DNS TXT record document.
	FormatJSON
)

// String returns a human-readable name for the format.
func (f Format) String() string {
	switch f {
	case FormatTXT:
		return "txt"
	case FormatJSON:
		return "json"
	default:
		return "text"
	}
}

// ResolveFormat computes the response format from query parameters.
// An explicit TXT request wins over format=json. Matching is exact and
// case-sensitive ("TXT", "json"); anything else degrades to the plain
// text default rather than failing.
func ResolveFormat(q url.Values) Format {
	if q.Get("type") == recordTypeTXT || q.Get("record") == recordTypeTXT {
		return FormatTXT
	}
	if q.Get("format") == "json" {
		return FormatJSON
	}
	return FormatText
}
