package responder_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/siteverify/responder"
)

func TestResolveFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  responder.Format
	}{
		{"empty query", "", responder.FormatText},
		{"type TXT", "type=TXT", responder.FormatTXT},
		{"record TXT", "record=TXT", responder.FormatTXT},
		{"format json", "format=json", responder.FormatJSON},
		{"TXT wins over json", "type=TXT&format=json", responder.FormatTXT},
		{"record TXT wins over json", "record=TXT&format=json", responder.FormatTXT},
		{"type is case sensitive", "type=txt", responder.FormatText},
		{"format is case sensitive", "format=JSON", responder.FormatText},
		{"unknown type value", "type=A", responder.FormatText},
		{"unknown format value", "format=xml", responder.FormatText},
		{"unrelated parameters", "foo=bar&baz=1", responder.FormatText},
		{"repeated parameter uses first value", "type=TXT&type=A", responder.FormatTXT},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, responder.ResolveFormat(q))
		})
	}
}

func TestFormatString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "text", responder.FormatText.String())
	assert.Equal(t, "txt", responder.FormatTXT.String())
	assert.Equal(t, "json", responder.FormatJSON.String())
}
