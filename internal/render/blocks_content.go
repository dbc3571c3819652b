package render

import (
	"strings"

	"github.com/Cari-app/cari-quizzies-sub001/internal/models"
	"github.com/Cari-app/cari-quizzies-sub001/internal/sanitize"
	"github.com/Cari-app/cari-quizzies-sub001/internal/templating"
)

func renderText(ctx Context, component models.Component, cfg *models.TextConfig) string {
	var b strings.Builder
	openBlock(&b, component, "component-text")
	content := sanitize.RichText(templating.ProcessHTML(cfg.Content, ctx.State))
	b.WriteString(`<div class="rich-text"` + styleAttr(
		"font-size:"+FontSizeCSS(cfg.FontSize),
		"text-align:"+cfg.Alignment,
		"color:"+cfg.TextColor,
	) + `>`)
	b.WriteString(content)
	b.WriteString(`</div>`)
	closeBlock(&b)
	return b.String()
}

func renderTitle(ctx Context, component models.Component, cfg *models.TitleConfig) string {
	tag := "h" + itoa(cfg.Level)
	var b strings.Builder
	openBlock(&b, component, "component-title")
	b.WriteString(`<` + tag + styleAttr(
		"text-align:"+cfg.Alignment,
		"color:"+cfg.TextColor,
	) + `>`)
	b.WriteString(escape(ctx.text(cfg.Text)))
	b.WriteString(`</` + tag + `>`)
	closeBlock(&b)
	return b.String()
}

func renderImage(ctx Context, component models.Component, cfg *models.ImageConfig) string {
	var b strings.Builder
	openBlock(&b, component, "component-image")
	switch {
	case cfg.MediaURL == "":
		b.WriteString(`<div class="media-placeholder">Image</div>`)
	case IsEmoji(cfg.MediaURL):
		b.WriteString(`<span class="emoji">` + escape(cfg.MediaURL) + `</span>`)
	default:
		width := "100%"
		if cfg.Width == "half" {
			width = "50%"
		} else if cfg.Width == "auto" {
			width = "auto"
		}
		b.WriteString(`<img src="` + escape(cfg.MediaURL) + `" alt="` + escape(cfg.AltText) + `"` + styleAttr(
			"width:"+width,
			"border-radius:"+BorderRadiusCSS(cfg.BorderRadius),
			"box-shadow:"+ShadowCSS(cfg.Shadow),
		) + `>`)
	}
	closeBlock(&b)
	return b.String()
}

func renderVideo(ctx Context, component models.Component, cfg *models.VideoConfig) string {
	var b strings.Builder
	openBlock(&b, component, "component-video")
	frameStyle := styleAttr(
		"aspect-ratio:"+AspectRatioCSS(cfg.AspectRatio),
		"border-radius:"+BorderRadiusCSS(cfg.BorderRadius),
	)

	switch {
	case cfg.EmbedCode != "":
		// author-pasted embed code, reduced to iframe-only markup
		b.WriteString(`<div class="video-frame"` + frameStyle + `>`)
		b.WriteString(sanitize.Embed(cfg.EmbedCode))
		b.WriteString(`</div>`)
	case cfg.MediaURL == "":
		b.WriteString(`<div class="media-placeholder">Video</div>`)
	default:
		if embedURL, ok := EmbedURL(cfg.MediaURL); ok {
			src := embedURL
			if cfg.AutoPlay {
				src += "?autoplay=1"
			}
			b.WriteString(`<div class="video-frame"` + frameStyle + `>`)
			b.WriteString(`<iframe src="` + escape(src) + `" frameborder="0" allowfullscreen allow="autoplay; encrypted-media"></iframe>`)
			b.WriteString(`</div>`)
		} else if IsMediaFile(cfg.MediaURL) {
			autoplay := ""
			if cfg.AutoPlay {
				autoplay = " autoplay muted"
			}
			b.WriteString(`<video src="` + escape(cfg.MediaURL) + `" controls` + autoplay + frameStyle + `></video>`)
		} else if IsHTTPURL(cfg.MediaURL) {
			// unknown dialect with a plausible URL: raw iframe
			b.WriteString(`<div class="video-frame"` + frameStyle + `>`)
			b.WriteString(`<iframe src="` + escape(cfg.MediaURL) + `" frameborder="0" allowfullscreen></iframe>`)
			b.WriteString(`</div>`)
		} else {
			b.WriteString(`<div class="media-placeholder">Video</div>`)
		}
	}
	closeBlock(&b)
	return b.String()
}

func renderSpacer(_ Context, component models.Component, cfg *models.SpacerConfig) string {
	var b strings.Builder
	openBlock(&b, component, "component-spacer")
	b.WriteString(`<div` + styleAttr("height:"+SpacerHeightCSS(cfg.Height)) + `></div>`)
	closeBlock(&b)
	return b.String()
}
