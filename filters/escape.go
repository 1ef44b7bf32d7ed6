package filters

import (
	"net/url"
	"strings"
)

// xmlEscaper uses named entities where they exist; html.EscapeString would
// emit numeric references for quotes.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// XMLEscape replaces HTML-significant characters (&, <, >, ", ') in the
// string form of v with entities. Non-string inputs are stringified first.
func XMLEscape(v any) string {
	return xmlEscaper.Replace(stringify(v))
}

// CGIEscape percent-encodes s for use as a URL query component. It follows
// form-encoding rules: most non-alphanumerics are encoded (comma, semicolon,
// question mark included) and space becomes "+".
func CGIEscape(s string) string {
	return url.QueryEscape(s)
}

// uriSafe holds the bytes URIEscape leaves untouched: unreserved characters
// plus the URI syntax characters that are already valid in a full URI.
var uriSafe [256]bool

func init() {
	const safe = "abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"0123456789" +
		"-_.~!*'();/?:@&=+$,[]#"
	for i := 0; i < len(safe); i++ {
		uriSafe[safe[i]] = true
	}
}

const upperhex = "0123456789ABCDEF"

// URIEscape percent-encodes the characters of s that are unsafe in a full
// URI while leaving valid URI syntax (:/?#[]@!$&'()*+,;=) untouched. Space
// becomes "%20". Unlike CGIEscape, reserved delimiters survive, so an
// already-formed URI keeps its structure.
func URIEscape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if uriSafe[c] {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xF])
	}
	return b.String()
}
