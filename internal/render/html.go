package render

import (
	"html"
	"strconv"
	"strings"

	"github.com/Cari-app/cari-quizzies-sub001/internal/models"
)

func escape(s string) string {
	return html.EscapeString(s)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// writeIdentity emits the data attributes the host runtime uses to route
// interaction callbacks back to the component.
func writeIdentity(b *strings.Builder, component models.Component) {
	b.WriteString(` data-component-id="` + escape(component.ID) + `"`)
	b.WriteString(` data-component-type="` + escape(string(component.Type)) + `"`)
	if component.CustomID != "" {
		b.WriteString(` data-custom-id="` + escape(component.CustomID) + `"`)
	}
}

// openBlock starts the wrapping element shared by all component kinds.
func openBlock(b *strings.Builder, component models.Component, class string) {
	b.WriteString(`<div class="component ` + class + `"`)
	writeIdentity(b, component)
	b.WriteString(`>`)
}

func closeBlock(b *strings.Builder) {
	b.WriteString(`</div>`)
}

// disabledAttr renders controls inert on the read-only preview.
func disabledAttr(ctx Context) string {
	if ctx.Interactive() {
		return ""
	}
	return " disabled"
}

func styleAttr(rules ...string) string {
	filtered := rules[:0]
	for _, r := range rules {
		if r != "" {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == 0 {
		return ""
	}
	return ` style="` + escape(strings.Join(filtered, ";")) + `"`
}
