package utils

import (
	"net/url"
	"strings"
)

// WhatsAppLink builds a wa.me deep link that opens a chat with the given
// number pre-filled with text.  wa.me accepts only digits in the path, so
// every non-digit (plus sign, spaces, dashes) is stripped from the number.
// The text is query-encoded.  An empty text yields a bare chat link.
func WhatsAppLink(number, text string) string {
	var digits strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	link := "https://wa.me/" + digits.String()
	if text != "" {
		// %20 rather than + for spaces; wa.me renders + literally in some clients.
		link += "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	}
	return link
}
