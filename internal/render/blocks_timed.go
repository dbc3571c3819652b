package render

import (
	"strings"

	"github.com/Cari-app/cari-quizzies-sub001/internal/models"
)

// Timed components render their configured duration as data attributes;
// the live player's scheduler owns the actual countdown and fires the
// navigation trigger server-side, exactly once per stage entry.

func renderTimer(ctx Context, component models.Component, cfg *models.TimerConfig) string {
	var b strings.Builder
	openBlock(&b, component, "component-timer")
	b.WriteString(`<div class="timer" data-duration="` + itoa(cfg.TimerDuration) + `"`)
	writeTimedNavigation(&b, ctx, cfg.TimerNavigation, cfg.TimerDestinationID, cfg.TimerDestinationURL)
	b.WriteString(styleAttr("color:" + cfg.AccentColor))
	b.WriteString(`>`)
	if cfg.Label != "" {
		b.WriteString(`<span class="label">` + escape(ctx.text(cfg.Label)) + `</span>`)
	}
	b.WriteString(`<span class="countdown">` + formatClock(cfg.TimerDuration) + `</span>`)
	b.WriteString(`</div>`)
	closeBlock(&b)
	return b.String()
}

func renderLoading(ctx Context, component models.Component, cfg *models.LoadingConfig) string {
	var b strings.Builder
	openBlock(&b, component, "component-loading")
	b.WriteString(`<div class="loading" data-style="` + escape(cfg.Style) + `"`)
	b.WriteString(` data-duration="` + itoa(cfg.LoadingDuration) + `" data-delay="` + itoa(cfg.LoadingDelay) + `"`)
	writeTimedNavigation(&b, ctx, cfg.LoadingNavigation, cfg.LoadingDestinationID, cfg.LoadingDestinationURL)
	b.WriteString(`>`)
	if cfg.LoadingText != "" {
		b.WriteString(`<span class="label">` + escape(ctx.text(cfg.LoadingText)) + `</span>`)
	}
	if cfg.Style == "bar" {
		b.WriteString(`<div class="bar"><div class="fill"` + styleAttr("background:"+cfg.BarColor) + `></div></div>`)
	} else {
		b.WriteString(`<div class="spinner"` + styleAttr("border-color:"+cfg.BarColor) + `></div>`)
	}
	b.WriteString(`</div>`)
	closeBlock(&b)
	return b.String()
}

func renderLevel(ctx Context, component models.Component, cfg *models.LevelConfig) string {
	var b strings.Builder
	openBlock(&b, component, "component-level")
	b.WriteString(`<div class="level" data-value="` + itoa(cfg.LevelValue) + `" data-duration="` + itoa(cfg.LevelDuration) + `"`)
	writeTimedNavigation(&b, ctx, cfg.LevelNavigation, cfg.LevelDestinationID, cfg.LevelDestinationURL)
	b.WriteString(`>`)
	if cfg.Label != "" {
		b.WriteString(`<span class="label">` + escape(ctx.text(cfg.Label)) + `</span>`)
	}
	b.WriteString(`<div class="gauge"><div class="fill"` + styleAttr("width:"+itoa(cfg.LevelValue)+"%", "background:"+cfg.Color) + `></div></div>`)
	b.WriteString(`<span class="value">` + itoa(cfg.LevelValue) + `%</span>`)
	b.WriteString(`</div>`)
	closeBlock(&b)
	return b.String()
}

// writeTimedNavigation emits navigation data attributes only on
// interactive surfaces, so the read-only preview never schedules a timer.
func writeTimedNavigation(b *strings.Builder, ctx Context, nav models.TimedNavigation, stageID, url string) {
	if !ctx.Interactive() || nav == models.TimedNone || nav == "" {
		return
	}
	b.WriteString(` data-navigation="` + escape(string(nav)) + `"`)
	if stageID != "" {
		b.WriteString(` data-destination-stage="` + escape(stageID) + `"`)
	}
	if url != "" {
		b.WriteString(` data-destination-url="` + escape(url) + `"`)
	}
}

func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	m := seconds / 60
	s := seconds % 60
	return pad2(m) + ":" + pad2(s)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + itoa(n)
	}
	return itoa(n)
}
