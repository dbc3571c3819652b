package render

import (
	"strings"

	"github.com/Cari-app/cari-quizzies-sub001/internal/models"
)

// isSelected reports whether an option value is part of the collected
// answer for this component. Multi-select answers may arrive as []string
// from a fresh session or as []any after a JSON round trip.
func isSelected(ctx Context, component models.Component, value string) bool {
	if ctx.State == nil {
		return false
	}
	collected, ok := ctx.State.Value(component.ResponseKey())
	if !ok {
		return false
	}
	switch v := collected.(type) {
	case string:
		return v == value
	case []string:
		for _, entry := range v {
			if entry == value {
				return true
			}
		}
	case []any:
		for _, entry := range v {
			if s, ok := entry.(string); ok && s == value {
				return true
			}
		}
	}
	return false
}

func selectionMode(allowMultiple bool) string {
	if allowMultiple {
		return "multiple"
	}
	return "single"
}

// renderOptions derives the choice list. Selecting in single mode replaces
// the value and, when autoAdvance is set, the host triggers navigation
// with the option's destination; multiple mode toggles membership and
// never advances. Those transition rules ride on the data attributes.
func renderOptions(ctx Context, component models.Component, cfg *models.OptionsConfig) string {
	var b strings.Builder
	openBlock(&b, component, "component-options")
	writeLabel(&b, ctx, cfg.Label, cfg.Required)
	b.WriteString(`<div class="option-list" data-mode="` + selectionMode(cfg.AllowMultiple) + `"`)
	if cfg.AutoAdvance && !cfg.AllowMultiple {
		b.WriteString(` data-auto-advance="true"`)
	}
	b.WriteString(styleAttr("gap:" + SpacingCSS(cfg.OptionSpacing)))
	b.WriteString(`>`)

	optionStyle := styleAttr(
		"border-radius:"+BorderRadiusCSS(cfg.OptionBorderRadius),
		"box-shadow:"+ShadowCSS(cfg.OptionShadow),
	)
	for _, option := range cfg.Options {
		writeOption(&b, ctx, component, option, optionStyle, false)
	}
	b.WriteString(`</div>`)
	closeBlock(&b)
	return b.String()
}

func renderImageOptions(ctx Context, component models.Component, cfg *models.ImageOptionsConfig) string {
	var b strings.Builder
	openBlock(&b, component, "component-image-options")
	writeLabel(&b, ctx, cfg.Label, false)
	b.WriteString(`<div class="option-grid" data-mode="` + selectionMode(cfg.AllowMultiple) + `"`)
	if cfg.AutoAdvance && !cfg.AllowMultiple {
		b.WriteString(` data-auto-advance="true"`)
	}
	b.WriteString(` data-columns="` + itoa(cfg.Columns) + `">`)

	optionStyle := styleAttr(
		"border-radius:"+BorderRadiusCSS(cfg.OptionBorderRadius),
		"box-shadow:"+ShadowCSS(cfg.OptionShadow),
	)
	for _, option := range cfg.Options {
		writeOption(&b, ctx, component, option, optionStyle, true)
	}
	b.WriteString(`</div>`)
	closeBlock(&b)
	return b.String()
}

func writeOption(b *strings.Builder, ctx Context, component models.Component, option models.OptionItem, style string, withMedia bool) {
	b.WriteString(`<button type="button" class="option`)
	if isSelected(ctx, component, option.Value) {
		b.WriteString(` selected`)
	}
	b.WriteString(`" data-option-id="` + escape(option.ID) + `"`)
	b.WriteString(` data-option-value="` + escape(option.Value) + `"`)
	if option.Destination != "" {
		b.WriteString(` data-destination="` + escape(string(option.Destination)) + `"`)
	}
	if option.DestinationStageID != "" {
		b.WriteString(` data-destination-stage="` + escape(option.DestinationStageID) + `"`)
	}
	b.WriteString(style + disabledAttr(ctx) + `>`)

	if withMedia || option.MediaURL != "" {
		writeOptionMedia(b, option.MediaURL)
	}
	b.WriteString(`<span class="option-text">` + escape(ctx.text(option.Text)) + `</span>`)
	b.WriteString(`</button>`)
}

// writeOptionMedia renders the option's media reference: an image, an
// emoji glyph, or a placeholder when nothing usable is configured.
func writeOptionMedia(b *strings.Builder, mediaURL string) {
	switch {
	case mediaURL == "":
		b.WriteString(`<span class="media-placeholder"></span>`)
	case IsEmoji(mediaURL):
		b.WriteString(`<span class="emoji">` + escape(mediaURL) + `</span>`)
	default:
		b.WriteString(`<img src="` + escape(mediaURL) + `" alt="">`)
	}
}

func renderYesNo(ctx Context, component models.Component, cfg *models.YesNoConfig) string {
	yes := models.OptionItem{
		ID:                 component.ID + ":yes",
		Text:               cfg.YesText,
		Value:              "yes",
		Destination:        cfg.YesDestination,
		DestinationStageID: cfg.YesDestinationStageID,
	}
	no := models.OptionItem{
		ID:                 component.ID + ":no",
		Text:               cfg.NoText,
		Value:              "no",
		Destination:        cfg.NoDestination,
		DestinationStageID: cfg.NoDestinationStageID,
	}

	var b strings.Builder
	openBlock(&b, component, "component-yes-no")
	writeLabel(&b, ctx, cfg.Label, false)
	b.WriteString(`<div class="option-list" data-mode="single"`)
	if cfg.AutoAdvance {
		b.WriteString(` data-auto-advance="true"`)
	}
	b.WriteString(`>`)
	optionStyle := styleAttr("border-radius:" + BorderRadiusCSS(cfg.OptionBorderRadius))
	writeOption(&b, ctx, component, yes, optionStyle, false)
	writeOption(&b, ctx, component, no, optionStyle, false)
	b.WriteString(`</div>`)
	closeBlock(&b)
	return b.String()
}
