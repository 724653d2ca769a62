package utils

import (
	"net/url"
	"strings"
)

// MailtoURL builds a pre-filled compose link. Query escaping is adjusted
// for mailto: mail clients expect %20 for spaces, not "+".
func MailtoURL(subject, body string) string {
	esc := func(s string) string {
		return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
	}
	return "mailto:?subject=" + esc(subject) + "&body=" + esc(body)
}
