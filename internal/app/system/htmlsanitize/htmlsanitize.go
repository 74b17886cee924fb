// Package htmlsanitize prepares user-supplied text for inclusion in
// outbound notification emails.
//
// Escape is used for the HTML body, where submitted text must render
// literally. StripTags is used for the plain-text alternative body, where
// any markup a visitor typed is dropped instead of shown.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// entityReplacer performs a single left-to-right pass, so entities it
// produces are never escaped a second time.
var entityReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// strict removes every element and attribute. Script and style contents
// are dropped entirely rather than kept as text.
var strict = bluemonday.StrictPolicy()

// Escape replaces the five HTML-significant characters with entities:
// & → &amp;, < → &lt;, > → &gt;, " → &quot;, ' → &#039;.
func Escape(s string) string {
	if s == "" {
		return ""
	}
	return entityReplacer.Replace(s)
}

// StripTags removes all markup from s and returns readable plain text.
// Entities left behind by the sanitizer are decoded again, so
// "Tom & Jerry" comes back unchanged.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	return html.UnescapeString(strict.Sanitize(s))
}

// IsPlainText reports whether s contains nothing that looks like a tag.
func IsPlainText(s string) bool {
	return !strings.ContainsAny(s, "<>")
}
