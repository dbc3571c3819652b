// Package render derives style and markup for every component kind. One
// derivation function per kind serves all three surfaces; the surfaces
// differ only through the Context, never through separate render paths.
package render

import (
	"strings"

	"github.com/Cari-app/cari-quizzies-sub001/internal/models"
	"github.com/Cari-app/cari-quizzies-sub001/internal/templating"
)

// Surface identifies which consumer is rendering.
type Surface string

const (
	// SurfaceEditor is the admin edit-mode preview, interactive authoring.
	SurfaceEditor Surface = "editor"
	// SurfacePreview is the read-only, style-accurate preview.
	SurfacePreview Surface = "preview"
	// SurfaceLive is the respondent-facing player.
	SurfaceLive Surface = "live"
)

// Context carries everything a renderer may read: the surface, the
// respondent's collected answers for template substitution and prefill,
// and the stage order for destination hints.
type Context struct {
	Surface Surface
	State   templating.State
}

// Interactive reports whether the surface reacts to input. The read-only
// preview renders the same markup with controls disabled.
func (c Context) Interactive() bool {
	return c.Surface != SurfacePreview
}

// text runs template substitution over a plain-text field.
func (c Context) text(s string) string {
	return templating.Process(s, c.State)
}

// Render dispatches a component to its kind's derivation function. The
// config is normalized exactly once here, so every surface reads the same
// defaulted view. Unknown types always reach the fallback branch; Render
// never fails.
func Render(ctx Context, component models.Component) string {
	if component.Config == nil {
		return renderFallback(component)
	}

	switch cfg := component.Config.Normalized().(type) {
	case *models.TextConfig:
		return renderText(ctx, component, cfg)
	case *models.TitleConfig:
		return renderTitle(ctx, component, cfg)
	case *models.ImageConfig:
		return renderImage(ctx, component, cfg)
	case *models.VideoConfig:
		return renderVideo(ctx, component, cfg)
	case *models.SpacerConfig:
		return renderSpacer(ctx, component, cfg)
	case *models.InputConfig:
		return renderInput(ctx, component, cfg)
	case *models.EmailConfig:
		return renderEmail(ctx, component, cfg)
	case *models.PhoneConfig:
		return renderPhone(ctx, component, cfg)
	case *models.RatingConfig:
		return renderRating(ctx, component, cfg)
	case *models.SliderConfig:
		return renderSlider(ctx, component, cfg)
	case *models.OptionsConfig:
		return renderOptions(ctx, component, cfg)
	case *models.YesNoConfig:
		return renderYesNo(ctx, component, cfg)
	case *models.ImageOptionsConfig:
		return renderImageOptions(ctx, component, cfg)
	case *models.CarouselConfig:
		return renderCarousel(ctx, component, cfg)
	case *models.TestimonialsConfig:
		return renderTestimonials(ctx, component, cfg)
	case *models.FaqConfig:
		return renderFaq(ctx, component, cfg)
	case *models.ArgumentsConfig:
		return renderArguments(ctx, component, cfg)
	case *models.MetricsConfig:
		return renderMetrics(ctx, component, cfg)
	case *models.ChartsConfig:
		return renderCharts(ctx, component, cfg)
	case *models.ButtonConfig:
		return renderButton(ctx, component, cfg)
	case *models.PriceConfig:
		return renderPrice(ctx, component, cfg)
	case *models.TimerConfig:
		return renderTimer(ctx, component, cfg)
	case *models.LoadingConfig:
		return renderLoading(ctx, component, cfg)
	case *models.LevelConfig:
		return renderLevel(ctx, component, cfg)
	case *models.NotificationConfig:
		return renderNotification(ctx, component, cfg)
	default:
		return renderFallback(component)
	}
}

// RenderStage renders every component of the unified stage content view.
func RenderStage(ctx Context, stage *models.Stage) (string, error) {
	components, err := models.StageComponents(stage)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(`<div class="stage" data-stage-id="` + escape(stage.ID) + `">`)
	for _, component := range components {
		b.WriteString(Render(ctx, component))
	}
	b.WriteString(`</div>`)
	return b.String(), nil
}

// renderFallback shows the component's name and icon in place of markup
// for types the registry does not know. It is the unconditional safety
// branch: a malformed type degrades to a placeholder, never a failure.
func renderFallback(component models.Component) string {
	var b strings.Builder
	b.WriteString(`<div class="component component-unknown"`)
	writeIdentity(&b, component)
	b.WriteString(`>`)
	if component.Icon != "" {
		b.WriteString(`<span class="icon" data-icon="` + escape(component.Icon) + `"></span>`)
	}
	name := component.Name
	if name == "" {
		name = string(component.Type)
	}
	b.WriteString(`<span class="name">` + escape(name) + `</span>`)
	b.WriteString(`</div>`)
	return b.String()
}
