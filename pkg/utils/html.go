package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict strips every tag; safe for concurrent use once built.
var strict = bluemonday.StrictPolicy()

// StripTags removes all markup from a rendered WordPress field, leaving
// plain text. Entities introduced by sanitization are unescaped so
// "<p>Fun <b>times</b></p>" comes back as "Fun times".
func StripTags(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
