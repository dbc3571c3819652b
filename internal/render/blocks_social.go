package render

import (
	"strings"

	"github.com/Cari-app/cari-quizzies-sub001/internal/models"
	"github.com/Cari-app/cari-quizzies-sub001/internal/sanitize"
	"github.com/Cari-app/cari-quizzies-sub001/internal/templating"
)

func renderCarousel(ctx Context, component models.Component, cfg *models.CarouselConfig) string {
	var b strings.Builder
	openBlock(&b, component, "component-carousel")
	b.WriteString(`<div class="carousel"`)
	if cfg.AutoPlay {
		b.WriteString(` data-autoplay="true" data-interval="` + itoa(cfg.IntervalSeconds) + `"`)
	}
	b.WriteString(`>`)
	for i, item := range cfg.Items {
		b.WriteString(`<div class="slide" data-slide-id="` + escape(item.ID) + `" data-index="` + itoa(i) + `">`)
		if item.MediaURL != "" {
			if IsEmoji(item.MediaURL) {
				b.WriteString(`<span class="emoji">` + escape(item.MediaURL) + `</span>`)
			} else {
				b.WriteString(`<img src="` + escape(item.MediaURL) + `" alt=""` + styleAttr("border-radius:"+BorderRadiusCSS(cfg.BorderRadius)) + `>`)
			}
		} else {
			b.WriteString(`<div class="media-placeholder"></div>`)
		}
		if item.Caption != "" {
			b.WriteString(`<p class="caption">` + escape(ctx.text(item.Caption)) + `</p>`)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	closeBlock(&b)
	return b.String()
}

func renderTestimonials(ctx Context, component models.Component, cfg *models.TestimonialsConfig) string {
	var b strings.Builder
	openBlock(&b, component, "component-testimonials")
	b.WriteString(`<div class="testimonials" data-layout="` + escape(cfg.Layout) + `">`)
	for _, item := range cfg.Items {
		b.WriteString(`<figure data-item-id="` + escape(item.ID) + `">`)
		if item.AvatarURL != "" {
			if IsEmoji(item.AvatarURL) {
				b.WriteString(`<span class="emoji">` + escape(item.AvatarURL) + `</span>`)
			} else {
				b.WriteString(`<img class="avatar" src="` + escape(item.AvatarURL) + `" alt="">`)
			}
		}
		b.WriteString(`<blockquote>` + escape(ctx.text(item.Text)) + `</blockquote>`)
		b.WriteString(`<figcaption>` + escape(item.Name))
		if item.Role != "" {
			b.WriteString(`<span class="role">` + escape(item.Role) + `</span>`)
		}
		b.WriteString(`</figcaption>`)
		if item.Rating > 0 {
			b.WriteString(`<span class="stars" data-rating="` + itoa(item.Rating) + `"></span>`)
		}
		b.WriteString(`</figure>`)
	}
	b.WriteString(`</div>`)
	closeBlock(&b)
	return b.String()
}

func renderFaq(ctx Context, component models.Component, cfg *models.FaqConfig) string {
	var b strings.Builder
	openBlock(&b, component, "component-faq")
	b.WriteString(`<div class="faq"`)
	if cfg.AllowMultipleOpen {
		b.WriteString(` data-multiple-open="true"`)
	}
	b.WriteString(`>`)
	for _, item := range cfg.Items {
		b.WriteString(`<details data-item-id="` + escape(item.ID) + `">`)
		b.WriteString(`<summary>` + escape(ctx.text(item.Question)) + `</summary>`)
		b.WriteString(`<div class="answer">` + sanitize.RichText(templating.ProcessHTML(item.Answer, ctx.State)) + `</div>`)
		b.WriteString(`</details>`)
	}
	b.WriteString(`</div>`)
	closeBlock(&b)
	return b.String()
}

func renderArguments(ctx Context, component models.Component, cfg *models.ArgumentsConfig) string {
	var b strings.Builder
	openBlock(&b, component, "component-arguments")
	b.WriteString(`<div class="arguments" data-columns="` + itoa(cfg.Columns) + `">`)
	for _, item := range cfg.Items {
		b.WriteString(`<div class="argument" data-item-id="` + escape(item.ID) + `">`)
		if item.Icon != "" {
			b.WriteString(`<span class="icon" data-icon="` + escape(item.Icon) + `"></span>`)
		}
		b.WriteString(`<strong>` + escape(ctx.text(item.Title)) + `</strong>`)
		if item.Description != "" {
			b.WriteString(`<p>` + escape(ctx.text(item.Description)) + `</p>`)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	closeBlock(&b)
	return b.String()
}

func renderMetrics(ctx Context, component models.Component, cfg *models.MetricsConfig) string {
	var b strings.Builder
	openBlock(&b, component, "component-metrics")
	b.WriteString(`<div class="metrics" data-style="` + escape(cfg.Style) + `">`)
	for _, item := range cfg.Items {
		b.WriteString(`<div class="metric" data-item-id="` + escape(item.ID) + `">`)
		b.WriteString(`<span class="label">` + escape(ctx.text(item.Label)) + `</span>`)
		b.WriteString(`<span class="value"` + styleAttr(colorRule(item.Color)) + `>` + ftoa(item.Value))
		if item.Unit != "" {
			b.WriteString(escape(item.Unit))
		}
		b.WriteString(`</span>`)
		if cfg.Style == "bars" {
			width := item.Value
			if width > 100 {
				width = 100
			}
			b.WriteString(`<div class="bar"><div class="fill"` + styleAttr("width:"+ftoa(width)+"%", backgroundRule(item.Color)) + `></div></div>`)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	closeBlock(&b)
	return b.String()
}

func renderCharts(_ Context, component models.Component, cfg *models.ChartsConfig) string {
	chart := cfg.Chart
	max := chart.MaxValue()

	var b strings.Builder
	openBlock(&b, component, "component-charts")
	b.WriteString(`<div class="chart" data-kind="` + escape(string(chart.Kind)) + `"` + styleAttr("height:"+itoa(cfg.Height)+"px") + `>`)
	if chart.Title != "" {
		b.WriteString(`<h4>` + escape(chart.Title) + `</h4>`)
	}
	for _, ds := range chart.DataSets {
		b.WriteString(`<div class="dataset" data-label="` + escape(ds.Label) + `"` + styleAttr(colorRule(ds.Color)) + `>`)
		for _, point := range ds.Points {
			height := 0.0
			if max > 0 {
				height = point.Value / max * 100
			}
			b.WriteString(`<span class="point" data-label="` + escape(point.Label) + `" data-value="` + ftoa(point.Value) + `"` + styleAttr("--point:"+ftoa(height)+"%") + `></span>`)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	closeBlock(&b)
	return b.String()
}

func colorRule(color string) string {
	if color == "" {
		return ""
	}
	return "color:" + color
}

func backgroundRule(color string) string {
	if color == "" {
		return ""
	}
	return "background:" + color
}
