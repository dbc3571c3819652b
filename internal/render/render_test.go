package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Cari-app/cari-quizzies-sub001/internal/models"
	"github.com/Cari-app/cari-quizzies-sub001/internal/templating"
)

func liveCtx() Context {
	return Context{Surface: SurfaceLive}
}

func TestRender_UnknownTypeFallsBack(t *testing.T) {
	component := models.Component{
		ID:     "c1",
		Type:   models.ComponentType("mystery"),
		Name:   "Mystery block",
		Icon:   "box",
		Config: models.GenericConfig{"foo": "bar"},
	}

	for _, surface := range []Surface{SurfaceEditor, SurfacePreview, SurfaceLive} {
		out := Render(Context{Surface: surface}, component)
		assert.NotEmpty(t, out)
		assert.Contains(t, out, "Mystery block")
	}
}

func TestRender_NilConfigFallsBack(t *testing.T) {
	component := models.Component{ID: "c1", Type: models.TypeText, Name: "Text"}
	out := Render(liveCtx(), component)
	assert.NotEmpty(t, out)
}

func TestRender_IdentityAttributes(t *testing.T) {
	component := models.Component{
		ID:       "c1",
		Type:     models.TypeTitle,
		CustomID: "headline",
		Config:   &models.TitleConfig{Text: "Hi"},
	}
	out := Render(liveCtx(), component)

	assert.Contains(t, out, `data-component-id="c1"`)
	assert.Contains(t, out, `data-component-type="title"`)
	assert.Contains(t, out, `data-custom-id="headline"`)
}

func TestRenderTitle_SubstitutesTemplateTokens(t *testing.T) {
	component := models.Component{
		ID:     "c1",
		Type:   models.TypeTitle,
		Config: &models.TitleConfig{Text: "Hello {{name}}!"},
	}
	ctx := Context{Surface: SurfaceLive, State: templating.MapState{"name": "Ana"}}

	out := Render(ctx, component)
	assert.Contains(t, out, "Hello Ana!")
}

func TestRenderText_SanitizesRichText(t *testing.T) {
	component := models.Component{
		ID:     "c1",
		Type:   models.TypeText,
		Config: &models.TextConfig{Content: `<p>ok</p><script>alert(1)</script>`},
	}
	out := Render(liveCtx(), component)

	assert.Contains(t, out, "<p>ok</p>")
	assert.NotContains(t, out, "script")
}

func TestRenderOptions_AutoAdvanceOnlyWhenSingleSelect(t *testing.T) {
	single := models.Component{
		ID:   "c1",
		Type: models.TypeOptions,
		Config: &models.OptionsConfig{
			Options:     []models.OptionItem{{ID: "o1", Text: "A", Value: "a"}},
			AutoAdvance: true,
		},
	}
	out := Render(liveCtx(), single)
	assert.Contains(t, out, `data-auto-advance="true"`)
	assert.Contains(t, out, `data-mode="single"`)

	multi := models.Component{
		ID:   "c2",
		Type: models.TypeOptions,
		Config: &models.OptionsConfig{
			Options:       []models.OptionItem{{ID: "o1", Text: "A", Value: "a"}},
			AllowMultiple: true,
			AutoAdvance:   true,
		},
	}
	out = Render(liveCtx(), multi)
	assert.NotContains(t, out, "data-auto-advance")
	assert.Contains(t, out, `data-mode="multiple"`)
}

func TestRenderOptions_PreviewDisablesControls(t *testing.T) {
	component := models.Component{
		ID:   "c1",
		Type: models.TypeOptions,
		Config: &models.OptionsConfig{
			Options: []models.OptionItem{{ID: "o1", Text: "A", Value: "a"}},
		},
	}

	preview := Render(Context{Surface: SurfacePreview}, component)
	assert.Contains(t, preview, " disabled")

	live := Render(liveCtx(), component)
	assert.NotContains(t, live, " disabled")
}

func TestRenderOptions_SelectedStateFromAnswers(t *testing.T) {
	component := models.Component{
		ID:       "c1",
		Type:     models.TypeOptions,
		CustomID: "color",
		Config: &models.OptionsConfig{
			Options: []models.OptionItem{
				{ID: "o1", Text: "Red", Value: "red"},
				{ID: "o2", Text: "Blue", Value: "blue"},
			},
		},
	}
	ctx := Context{Surface: SurfaceLive, State: templating.MapState{"color": "blue"}}

	out := Render(ctx, component)
	assert.Contains(t, out, "selected")
}

func TestRenderOptions_MultiSelectStateSurvivesJSONRoundTrip(t *testing.T) {
	component := models.Component{
		ID:       "c1",
		Type:     models.TypeOptions,
		CustomID: "colors",
		Config: &models.OptionsConfig{
			AllowMultiple: true,
			Options: []models.OptionItem{
				{ID: "o1", Text: "Red", Value: "red"},
				{ID: "o2", Text: "Blue", Value: "blue"},
				{ID: "o3", Text: "Green", Value: "green"},
			},
		},
	}
	// Session state reloaded from the store decodes slices as []any.
	ctx := Context{Surface: SurfaceLive, State: templating.MapState{"colors": []any{"red", "green"}}}

	out := Render(ctx, component)
	assert.Contains(t, out, `class="option selected" data-option-id="o1"`)
	assert.Contains(t, out, `class="option" data-option-id="o2"`)
	assert.Contains(t, out, `class="option selected" data-option-id="o3"`)
}

func TestRenderYesNo_SynthesizedOptionIDs(t *testing.T) {
	component := models.Component{
		ID:     "c1",
		Type:   models.TypeYesNo,
		Config: &models.YesNoConfig{},
	}
	out := Render(liveCtx(), component)

	assert.Contains(t, out, `data-option-id="c1:yes"`)
	assert.Contains(t, out, `data-option-id="c1:no"`)
	assert.Contains(t, out, `data-option-value="yes"`)
	assert.Contains(t, out, `data-option-value="no"`)
}

func TestRenderTimed_NavigationAttrsOmittedOnPreview(t *testing.T) {
	component := models.Component{
		ID:   "c1",
		Type: models.TypeLoading,
		Config: &models.LoadingConfig{
			LoadingDuration:   5,
			LoadingNavigation: models.TimedNext,
		},
	}

	live := Render(liveCtx(), component)
	assert.Contains(t, live, `data-navigation="next"`)
	assert.Contains(t, live, `data-duration="5"`)

	preview := Render(Context{Surface: SurfacePreview}, component)
	assert.NotContains(t, preview, "data-navigation")
}

func TestRenderTimer_NoNavigationAttrWhenNone(t *testing.T) {
	component := models.Component{
		ID:     "c1",
		Type:   models.TypeTimer,
		Config: &models.TimerConfig{TimerDuration: 30},
	}
	out := Render(liveCtx(), component)

	assert.Contains(t, out, `data-duration="30"`)
	assert.NotContains(t, out, "data-navigation")
}

func TestRenderButton_LinkActionIsAnchorWhenInteractive(t *testing.T) {
	component := models.Component{
		ID:   "c1",
		Type: models.TypeButton,
		Config: &models.ButtonConfig{
			ButtonText:   "Visit",
			ButtonAction: models.ActionLink,
			ButtonLink:   "https://example.com",
		},
	}

	live := Render(liveCtx(), component)
	assert.Contains(t, live, "<a ")
	assert.Contains(t, live, `href="https://example.com"`)
	assert.Contains(t, live, `rel="noopener"`)

	preview := Render(Context{Surface: SurfacePreview}, component)
	assert.NotContains(t, preview, "<a ")
}

func TestRenderVideo_KnownDialectBecomesIframe(t *testing.T) {
	component := models.Component{
		ID:     "c1",
		Type:   models.TypeVideo,
		Config: &models.VideoConfig{MediaURL: "https://youtu.be/dQw4w9WgXcQ"},
	}
	out := Render(liveCtx(), component)

	assert.Contains(t, out, "<iframe")
	assert.Contains(t, out, "https://www.youtube.com/embed/dQw4w9WgXcQ")
}

func TestRenderStage_ConcatenatesComponentsInOrder(t *testing.T) {
	stage := &models.Stage{ID: "s1"}
	err := stage.SetComponents([]models.Component{
		{ID: "a", Type: models.TypeTitle, Config: &models.TitleConfig{Text: "First"}},
		{ID: "b", Type: models.TypeText, Config: &models.TextConfig{Content: "<p>Second</p>"}},
	})
	assert.NoError(t, err)

	out, err := RenderStage(liveCtx(), stage)
	assert.NoError(t, err)
	assert.Less(t, indexOf(out, "First"), indexOf(out, "Second"))
}

func TestRenderStage_LegacyScreensProjected(t *testing.T) {
	stage := &models.Stage{ID: "s1"}
	screens := []models.QuizScreen{
		{ID: "scr1", Kind: "title", Title: "Welcome"},
		{ID: "scr2", Kind: "question", Title: "Pick", Options: []models.QuizOption{
			{ID: "o1", Text: "A", Value: "a", NextScreenID: "scr9"},
		}},
	}
	raw, err := json.Marshal(screens)
	assert.NoError(t, err)
	stage.Screens = raw

	out, err := RenderStage(liveCtx(), stage)
	assert.NoError(t, err)
	assert.Contains(t, out, "Welcome")
	assert.Contains(t, out, `data-destination="specific"`)
	assert.Contains(t, out, `data-destination-stage="scr9"`)
}

func indexOf(haystack, needle string) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return i
		}
	}
	return -1
}
