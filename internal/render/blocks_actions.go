package render

import (
	"strings"

	"github.com/Cari-app/cari-quizzies-sub001/internal/models"
	"github.com/Cari-app/cari-quizzies-sub001/internal/templating"
)

// renderButton derives the terminal action block. A link action opens in a
// new browsing context and never touches response state; next/submit hand
// the trigger to the navigation resolver.
func renderButton(ctx Context, component models.Component, cfg *models.ButtonConfig) string {
	var b strings.Builder
	openBlock(&b, component, "component-button")

	width := ""
	if cfg.FullWidth {
		width = "width:100%"
	}
	style := styleAttr(
		"background:"+cfg.ButtonColor,
		"color:"+cfg.TextColor,
		"border-radius:"+BorderRadiusCSS(cfg.ButtonBorderRadius),
		"box-shadow:"+ShadowCSS(cfg.ButtonShadow),
		"padding:"+ButtonPaddingCSS(cfg.Size),
		width,
	)

	if cfg.ButtonAction == models.ActionLink && cfg.ButtonLink != "" && ctx.Interactive() {
		b.WriteString(`<a href="` + escape(cfg.ButtonLink) + `" target="_blank" rel="noopener" class="button" data-action="link"` + style + `>`)
		b.WriteString(escape(ctx.text(cfg.ButtonText)))
		b.WriteString(`</a>`)
	} else {
		b.WriteString(`<button type="button" class="button" data-action="` + escape(string(cfg.ButtonAction)) + `"`)
		if cfg.ButtonLink != "" {
			b.WriteString(` data-link="` + escape(cfg.ButtonLink) + `"`)
		}
		b.WriteString(style + disabledAttr(ctx) + `>`)
		b.WriteString(escape(ctx.text(cfg.ButtonText)))
		b.WriteString(`</button>`)
	}
	closeBlock(&b)
	return b.String()
}

func renderPrice(ctx Context, component models.Component, cfg *models.PriceConfig) string {
	var b strings.Builder
	openBlock(&b, component, "component-price")
	b.WriteString(`<div class="price-card`)
	if cfg.Highlight {
		b.WriteString(` highlight`)
	}
	b.WriteString(`"` + styleAttr(
		"border-radius:"+BorderRadiusCSS(cfg.BorderRadius),
		"box-shadow:"+ShadowCSS(cfg.Shadow),
	) + `>`)

	if cfg.Title != "" {
		b.WriteString(`<h3>` + escape(ctx.text(cfg.Title)) + `</h3>`)
	}
	if cfg.OriginalValue > cfg.PriceValue {
		b.WriteString(`<s class="original">` + escape(cfg.Currency) + ` ` + ftoa(cfg.OriginalValue) + `</s>`)
	}
	b.WriteString(`<div class="price">` + escape(cfg.Currency) + ` ` + ftoa(cfg.PriceValue) + `</div>`)
	if cfg.Installments > 1 {
		per := cfg.PriceValue / float64(cfg.Installments)
		b.WriteString(`<div class="installments">` + itoa(cfg.Installments) + `x ` + escape(cfg.Currency) + ` ` + ftoa(per) + `</div>`)
	}
	if len(cfg.Features) > 0 {
		b.WriteString(`<ul class="features">`)
		for _, feature := range cfg.Features {
			b.WriteString(`<li>` + escape(ctx.text(feature)) + `</li>`)
		}
		b.WriteString(`</ul>`)
	}

	b.WriteString(`<button type="button" class="button" data-action="` + escape(string(cfg.ButtonAction)) + `"`)
	if cfg.ButtonLink != "" {
		b.WriteString(` data-link="` + escape(cfg.ButtonLink) + `"`)
	}
	b.WriteString(disabledAttr(ctx) + `>` + escape(ctx.text(cfg.ButtonText)) + `</button>`)

	b.WriteString(`</div>`)
	closeBlock(&b)
	return b.String()
}

// renderNotification resolves the @1..@3 variation tokens before the
// regular field tokens, then shows one rotating toast.
func renderNotification(ctx Context, component models.Component, cfg *models.NotificationConfig) string {
	message := templating.ProcessVariations(cfg.Template, cfg.Variations)
	message = templating.Process(message, ctx.State)

	var b strings.Builder
	openBlock(&b, component, "component-notification")
	b.WriteString(`<div class="toast toast-` + escape(cfg.Variant) + `" data-interval="` + itoa(cfg.IntervalSeconds) + `">`)
	b.WriteString(escape(message))
	b.WriteString(`</div>`)
	closeBlock(&b)
	return b.String()
}
