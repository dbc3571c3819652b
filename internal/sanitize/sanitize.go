// Package sanitize is the single trust boundary for stored rich text and
// embed markup. Every rich-text or embed field passes through it before
// being rendered, on all surfaces, with no exception for trusted authors.
package sanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

var (
	richTextPolicy = newRichTextPolicy()
	embedPolicy    = newEmbedPolicy()
)

func newRichTextPolicy() *bluemonday.Policy {
	policy := bluemonday.NewPolicy()
	policy.AllowElements(
		"p", "br", "b", "strong", "i", "em", "u", "s",
		"h1", "h2", "h3", "h4",
		"ul", "ol", "li",
		"blockquote", "span",
	)
	policy.AllowAttrs("href").OnElements("a")
	policy.AllowStandardURLs()
	policy.AllowStyles(
		"color", "background-color", "font-size", "font-weight",
		"text-align", "text-decoration",
	).OnElements("span", "p")
	policy.AllowAttrs("class").OnElements("span", "p")
	return policy
}

func newEmbedPolicy() *bluemonday.Policy {
	policy := bluemonday.NewPolicy()
	policy.AllowElements("iframe")
	policy.AllowAttrs(
		"src", "width", "height", "frameborder", "allow",
		"allowfullscreen", "title", "referrerpolicy", "loading",
	).OnElements("iframe")
	policy.AllowURLSchemes("http", "https")
	policy.RequireParseableURLs(true)
	return policy
}

// RichText sanitizes author-provided rich text to the allow-listed subset
// of formatting markup. Empty input yields an empty string; stripped
// content disappears silently.
func RichText(html string) string {
	if html == "" {
		return ""
	}
	return richTextPolicy.Sanitize(html)
}

// Embed sanitizes third-party embed code down to bare iframes with a fixed
// attribute allow-list.
func Embed(html string) string {
	if html == "" {
		return ""
	}
	return embedPolicy.Sanitize(html)
}

var strictPolicy = bluemonday.StrictPolicy()

// PlainText strips all markup, for fields that must never carry HTML
// (labels, button captions, option texts).
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	return strictPolicy.Sanitize(s)
}
