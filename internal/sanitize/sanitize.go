// Package sanitize escapes untrusted snapshot text before it is embedded in markup.
package sanitize

import (
	"net/url"
	"strings"
)

// entityReplacer maps the five markup-significant characters to entities.
// Existing entities are escaped again, not preserved.
var entityReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape replaces & < > " ' with their entity equivalents.
func Escape(s string) string {
	return entityReplacer.Replace(s)
}

// allowedSchemes are the URL schemes permitted in href attributes.
var allowedSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
}

// URL returns raw escaped for an attribute value, or "#" when raw does not
// parse or uses a scheme outside http, https and mailto. Relative URLs pass.
func URL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "#"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "#"
	}
	if u.Scheme != "" && !allowedSchemes[strings.ToLower(u.Scheme)] {
		return "#"
	}
	return Escape(raw)
}
