package render

import (
	"strings"

	"github.com/Cari-app/cari-quizzies-sub001/internal/models"
)

// prefill returns the already-collected value for a component, for live
// re-renders after back-navigation.
func prefill(ctx Context, component models.Component) string {
	if ctx.State == nil {
		return ""
	}
	value, ok := ctx.State.Value(component.ResponseKey())
	if !ok {
		return ""
	}
	if s, isString := value.(string); isString {
		return s
	}
	return ""
}

func writeLabel(b *strings.Builder, ctx Context, label string, required bool) {
	if label == "" {
		return
	}
	b.WriteString(`<label>` + escape(ctx.text(label)))
	if required {
		b.WriteString(`<span class="required">*</span>`)
	}
	b.WriteString(`</label>`)
}

func renderInput(ctx Context, component models.Component, cfg *models.InputConfig) string {
	var b strings.Builder
	openBlock(&b, component, "component-input")
	writeLabel(&b, ctx, cfg.Label, cfg.Required)
	if cfg.Description != "" {
		b.WriteString(`<p class="description">` + escape(ctx.text(cfg.Description)) + `</p>`)
	}
	value := prefill(ctx, component)
	if cfg.Multiline {
		b.WriteString(`<textarea placeholder="` + escape(cfg.Placeholder) + `"` + maxLengthAttr(cfg.MaxLength) + disabledAttr(ctx) + `>` + escape(value) + `</textarea>`)
	} else {
		b.WriteString(`<input type="text" placeholder="` + escape(cfg.Placeholder) + `" value="` + escape(value) + `"` + maxLengthAttr(cfg.MaxLength) + disabledAttr(ctx) + `>`)
	}
	closeBlock(&b)
	return b.String()
}

func maxLengthAttr(n int) string {
	if n <= 0 {
		return ""
	}
	return ` maxlength="` + itoa(n) + `"`
}

func renderEmail(ctx Context, component models.Component, cfg *models.EmailConfig) string {
	var b strings.Builder
	openBlock(&b, component, "component-email")
	writeLabel(&b, ctx, cfg.Label, cfg.Required)
	b.WriteString(`<input type="email" placeholder="` + escape(cfg.Placeholder) + `" value="` + escape(prefill(ctx, component)) + `"` + disabledAttr(ctx) + `>`)
	closeBlock(&b)
	return b.String()
}

func renderPhone(ctx Context, component models.Component, cfg *models.PhoneConfig) string {
	var b strings.Builder
	openBlock(&b, component, "component-phone")
	writeLabel(&b, ctx, cfg.Label, cfg.Required)
	b.WriteString(`<div class="phone-row">`)
	b.WriteString(`<span class="country-code">` + escape(cfg.CountryCode) + `</span>`)
	b.WriteString(`<input type="tel" placeholder="` + escape(cfg.Placeholder) + `" value="` + escape(prefill(ctx, component)) + `"` + disabledAttr(ctx) + `>`)
	b.WriteString(`</div>`)
	closeBlock(&b)
	return b.String()
}

func renderRating(ctx Context, component models.Component, cfg *models.RatingConfig) string {
	var b strings.Builder
	openBlock(&b, component, "component-rating")
	writeLabel(&b, ctx, cfg.Label, cfg.Required)
	b.WriteString(`<div class="rating-row" data-icon-style="` + escape(cfg.IconStyle) + `">`)
	for i := 1; i <= cfg.MaxRating; i++ {
		b.WriteString(`<button type="button" data-rating-value="` + itoa(i) + `"` + disabledAttr(ctx) + `>`)
		if cfg.IconStyle == "number" {
			b.WriteString(itoa(i))
		}
		b.WriteString(`</button>`)
	}
	b.WriteString(`</div>`)
	closeBlock(&b)
	return b.String()
}

func renderSlider(ctx Context, component models.Component, cfg *models.SliderConfig) string {
	var b strings.Builder
	openBlock(&b, component, "component-slider")
	writeLabel(&b, ctx, cfg.Label, false)
	value := prefill(ctx, component)
	if value == "" {
		value = ftoa(cfg.DefaultValue)
	}
	b.WriteString(`<input type="range" min="` + ftoa(cfg.MinValue) + `" max="` + ftoa(cfg.MaxValue) + `" step="` + ftoa(cfg.Step) + `" value="` + escape(value) + `"` + disabledAttr(ctx) + `>`)
	b.WriteString(`<div class="slider-value">` + escape(value))
	if cfg.Unit != "" {
		b.WriteString(` ` + escape(cfg.Unit))
	}
	b.WriteString(`</div>`)
	closeBlock(&b)
	return b.String()
}
