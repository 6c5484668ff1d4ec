package serialize

import "strings"

// EscapeText escapes a string for inclusion in element text content.
// Ampersands are replaced before angle brackets so that entities
// introduced by the second pass cannot be escaped again. Only & and <
// are rewritten; the output is not safe for other contexts.
func EscapeText(s string) string {
	if !strings.ContainsAny(s, "&<") {
		return s
	}
	var buf strings.Builder
	buf.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

// EscapeAttribute escapes a string for inclusion in a double-quoted
// attribute value. Only & and " are rewritten; single-quoted attribute
// values are never produced, so ' is left alone.
func EscapeAttribute(s string) string {
	if !strings.ContainsAny(s, `&"`) {
		return s
	}
	var buf strings.Builder
	buf.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '"':
			buf.WriteString("&quot;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
