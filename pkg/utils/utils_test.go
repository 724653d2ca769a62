package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"nested markup", "<p>Fun <b>times</b></p>", "Fun times"},
		{"plain text untouched", "Just text", "Just text"},
		{"entities unescaped", "<p>Surf &amp; Turf</p>", "Surf & Turf"},
		{"whitespace trimmed", "  <p>Padded</p>\n", "Padded"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripTags(tt.input))
		})
	}
}

func TestMailtoURL(t *testing.T) {
	got := MailtoURL("Trip Plan", "Hi there,\n\nPack sunscreen")

	assert.Contains(t, got, "mailto:?subject=Trip%20Plan")
	assert.Contains(t, got, "body=Hi%20there%2C%0A%0APack%20sunscreen")
	assert.NotContains(t, got, "+")
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "75", FormatPrice(75))
	assert.Equal(t, "29.99", FormatPrice(29.99))
	assert.Equal(t, "0", FormatPrice(0))
}
