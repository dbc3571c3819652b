package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRichText_KeepsAllowedFormatting(t *testing.T) {
	in := `<p>Hello <strong>world</strong> and <em>friends</em></p>`
	assert.Equal(t, in, RichText(in))
}

func TestRichText_KeepsLinksWithHref(t *testing.T) {
	in := `<a href="https://example.com">go</a>`
	out := RichText(in)
	assert.Contains(t, out, `href="https://example.com"`)
}

func TestRichText_StripsScripts(t *testing.T) {
	out := RichText(`<p>hi</p><script>alert("x")</script>`)
	assert.Equal(t, `<p>hi</p>`, out)
	assert.NotContains(t, out, "script")
}

func TestRichText_StripsEventHandlers(t *testing.T) {
	out := RichText(`<p onclick="steal()">hi</p>`)
	assert.Equal(t, `<p>hi</p>`, out)
}

func TestRichText_StripsJavascriptURLs(t *testing.T) {
	out := RichText(`<a href="javascript:alert(1)">x</a>`)
	assert.NotContains(t, out, "javascript:")
}

func TestRichText_KeepsAllowedInlineStyles(t *testing.T) {
	out := RichText(`<span style="color: red">warm</span>`)
	assert.Contains(t, out, "color: red")
}

func TestRichText_StripsDisallowedStyles(t *testing.T) {
	out := RichText(`<span style="position: fixed">x</span>`)
	assert.NotContains(t, out, "position")
}

func TestRichText_EmptyInput(t *testing.T) {
	assert.Equal(t, "", RichText(""))
}

func TestRichText_Idempotent(t *testing.T) {
	in := `<p>Hi <b>there</b> <span style="color: red">red</span></p>`
	once := RichText(in)
	assert.Equal(t, once, RichText(once))
}

func TestEmbed_KeepsIframesOnly(t *testing.T) {
	in := `<iframe src="https://www.youtube.com/embed/abc" allowfullscreen="true"></iframe><script>x()</script><div>nope</div>`
	out := Embed(in)
	assert.Contains(t, out, "<iframe")
	assert.Contains(t, out, `src="https://www.youtube.com/embed/abc"`)
	assert.NotContains(t, out, "script")
	assert.NotContains(t, out, "div")
}

func TestEmbed_RejectsNonHTTPSchemes(t *testing.T) {
	out := Embed(`<iframe src="javascript:alert(1)"></iframe>`)
	assert.False(t, strings.Contains(out, "javascript:"))
}

func TestEmbed_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Embed(""))
}

func TestPlainText_StripsEverything(t *testing.T) {
	assert.Equal(t, "hello", PlainText("<b>hello</b>"))
	assert.Equal(t, "", PlainText(""))
}
