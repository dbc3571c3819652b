// Package components holds the per-type registry: default-config factory,
// palette metadata and the editor form schema for each component kind.
package components

import (
	"github.com/Cari-app/cari-quizzies-sub001/internal/models"
)

// FieldKind tells the admin UI which control edits a config field.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldRichText FieldKind = "richtext"
	FieldToggle   FieldKind = "toggle"
	FieldSelect   FieldKind = "select"
	FieldNumber   FieldKind = "number"
	FieldColor    FieldKind = "color"
	FieldMedia    FieldKind = "media"
	FieldList     FieldKind = "list"
	FieldStageRef FieldKind = "stage"
)

// FieldSpec describes one row of a component's editor tab.
type FieldSpec struct {
	Key     string    `json:"key"`
	Label   string    `json:"label"`
	Kind    FieldKind `json:"kind"`
	Options []string  `json:"options,omitempty"`
}

// Definition is the capability record for one component type: palette
// metadata, the default-config factory and the editor form schema.
type Definition struct {
	Type         models.ComponentType
	Label        string
	Icon         string
	NewConfig    func() models.ComponentConfig
	EditorFields []FieldSpec

	// CollectsResponse marks components whose value lands in the
	// response-state map under the customId/id key.
	CollectsResponse bool
}

// Lookup returns the definition for a type and whether it is known. The
// dispatcher's fallback branch handles the unknown case; callers must not
// treat it as an error.
func Lookup(t models.ComponentType) (Definition, bool) {
	def, ok := definitions[t]
	return def, ok
}

// All returns the palette in editor order.
func All() []Definition {
	out := make([]Definition, 0, len(models.KnownTypes))
	for _, t := range models.KnownTypes {
		out = append(out, definitions[t])
	}
	return out
}

var definitions = map[models.ComponentType]Definition{
	models.TypeText: {
		Type: models.TypeText, Label: "Text", Icon: "text",
		NewConfig: newTextConfig,
		EditorFields: []FieldSpec{
			{Key: "content", Label: "Content", Kind: FieldRichText},
			{Key: "fontSize", Label: "Font size", Kind: FieldSelect, Options: []string{"small", "medium", "large"}},
			{Key: "alignment", Label: "Alignment", Kind: FieldSelect, Options: []string{"left", "center", "right"}},
			{Key: "textColor", Label: "Text color", Kind: FieldColor},
		},
	},
	models.TypeTitle: {
		Type: models.TypeTitle, Label: "Title", Icon: "heading",
		NewConfig: newTitleConfig,
		EditorFields: []FieldSpec{
			{Key: "text", Label: "Text", Kind: FieldText},
			{Key: "level", Label: "Level", Kind: FieldSelect, Options: []string{"1", "2", "3"}},
			{Key: "alignment", Label: "Alignment", Kind: FieldSelect, Options: []string{"left", "center", "right"}},
			{Key: "textColor", Label: "Text color", Kind: FieldColor},
		},
	},
	models.TypeImage: {
		Type: models.TypeImage, Label: "Image", Icon: "image",
		NewConfig: newImageConfig,
		EditorFields: []FieldSpec{
			{Key: "mediaUrl", Label: "Image", Kind: FieldMedia},
			{Key: "altText", Label: "Alt text", Kind: FieldText},
			{Key: "width", Label: "Width", Kind: FieldSelect, Options: []string{"full", "half", "auto"}},
			{Key: "borderRadius", Label: "Border radius", Kind: FieldSelect, Options: radiusOptions},
			{Key: "shadow", Label: "Shadow", Kind: FieldSelect, Options: shadowOptions},
		},
	},
	models.TypeVideo: {
		Type: models.TypeVideo, Label: "Video", Icon: "video",
		NewConfig: newVideoConfig,
		EditorFields: []FieldSpec{
			{Key: "mediaUrl", Label: "Video URL", Kind: FieldText},
			{Key: "embedCode", Label: "Embed code", Kind: FieldText},
			{Key: "aspectRatio", Label: "Aspect ratio", Kind: FieldSelect, Options: []string{"16:9", "9:16", "1:1"}},
			{Key: "autoPlay", Label: "Auto play", Kind: FieldToggle},
		},
	},
	models.TypeButton: {
		Type: models.TypeButton, Label: "Button", Icon: "square",
		NewConfig: newButtonConfig,
		EditorFields: []FieldSpec{
			{Key: "buttonText", Label: "Text", Kind: FieldText},
			{Key: "buttonAction", Label: "Action", Kind: FieldSelect, Options: []string{"next", "submit", "link"}},
			{Key: "buttonLink", Label: "Link", Kind: FieldText},
			{Key: "buttonColor", Label: "Color", Kind: FieldColor},
			{Key: "buttonBorderRadius", Label: "Border radius", Kind: FieldSelect, Options: radiusOptions},
			{Key: "buttonShadow", Label: "Shadow", Kind: FieldSelect, Options: shadowOptions},
			{Key: "fullWidth", Label: "Full width", Kind: FieldToggle},
		},
	},
	models.TypeInput: {
		Type: models.TypeInput, Label: "Text input", Icon: "input",
		NewConfig: newInputConfig, CollectsResponse: true,
		EditorFields: []FieldSpec{
			{Key: "label", Label: "Label", Kind: FieldText},
			{Key: "placeholder", Label: "Placeholder", Kind: FieldText},
			{Key: "required", Label: "Required", Kind: FieldToggle},
			{Key: "multiline", Label: "Multiline", Kind: FieldToggle},
		},
	},
	models.TypeEmail: {
		Type: models.TypeEmail, Label: "Email", Icon: "mail",
		NewConfig: newEmailConfig, CollectsResponse: true,
		EditorFields: []FieldSpec{
			{Key: "label", Label: "Label", Kind: FieldText},
			{Key: "placeholder", Label: "Placeholder", Kind: FieldText},
			{Key: "required", Label: "Required", Kind: FieldToggle},
		},
	},
	models.TypePhone: {
		Type: models.TypePhone, Label: "Phone", Icon: "phone",
		NewConfig: newPhoneConfig, CollectsResponse: true,
		EditorFields: []FieldSpec{
			{Key: "label", Label: "Label", Kind: FieldText},
			{Key: "placeholder", Label: "Placeholder", Kind: FieldText},
			{Key: "countryCode", Label: "Country code", Kind: FieldText},
			{Key: "required", Label: "Required", Kind: FieldToggle},
		},
	},
	models.TypeOptions: {
		Type: models.TypeOptions, Label: "Options", Icon: "list",
		NewConfig: newOptionsConfig, CollectsResponse: true,
		EditorFields: []FieldSpec{
			{Key: "label", Label: "Question", Kind: FieldText},
			{Key: "options", Label: "Options", Kind: FieldList},
			{Key: "allowMultiple", Label: "Allow multiple", Kind: FieldToggle},
			{Key: "autoAdvance", Label: "Auto advance", Kind: FieldToggle},
			{Key: "optionBorderRadius", Label: "Border radius", Kind: FieldSelect, Options: radiusOptions},
			{Key: "optionShadow", Label: "Shadow", Kind: FieldSelect, Options: shadowOptions},
			{Key: "optionSpacing", Label: "Spacing", Kind: FieldSelect, Options: spacingOptions},
		},
	},
	models.TypeYesNo: {
		Type: models.TypeYesNo, Label: "Yes / No", Icon: "toggle",
		NewConfig: newYesNoConfig, CollectsResponse: true,
		EditorFields: []FieldSpec{
			{Key: "label", Label: "Question", Kind: FieldText},
			{Key: "yesText", Label: "Yes label", Kind: FieldText},
			{Key: "noText", Label: "No label", Kind: FieldText},
			{Key: "autoAdvance", Label: "Auto advance", Kind: FieldToggle},
			{Key: "yesDestinationStageId", Label: "Yes goes to", Kind: FieldStageRef},
			{Key: "noDestinationStageId", Label: "No goes to", Kind: FieldStageRef},
		},
	},
	models.TypeImageOptions: {
		Type: models.TypeImageOptions, Label: "Image options", Icon: "grid",
		NewConfig: newImageOptionsConfig, CollectsResponse: true,
		EditorFields: []FieldSpec{
			{Key: "label", Label: "Question", Kind: FieldText},
			{Key: "options", Label: "Options", Kind: FieldList},
			{Key: "columns", Label: "Columns", Kind: FieldSelect, Options: []string{"2", "3"}},
			{Key: "allowMultiple", Label: "Allow multiple", Kind: FieldToggle},
			{Key: "autoAdvance", Label: "Auto advance", Kind: FieldToggle},
		},
	},
	models.TypeRating: {
		Type: models.TypeRating, Label: "Rating", Icon: "star",
		NewConfig: newRatingConfig, CollectsResponse: true,
		EditorFields: []FieldSpec{
			{Key: "label", Label: "Label", Kind: FieldText},
			{Key: "maxRating", Label: "Scale", Kind: FieldNumber},
			{Key: "iconStyle", Label: "Icon", Kind: FieldSelect, Options: []string{"star", "heart", "number"}},
		},
	},
	models.TypeSlider: {
		Type: models.TypeSlider, Label: "Slider", Icon: "sliders",
		NewConfig: newSliderConfig, CollectsResponse: true,
		EditorFields: []FieldSpec{
			{Key: "label", Label: "Label", Kind: FieldText},
			{Key: "minValue", Label: "Min", Kind: FieldNumber},
			{Key: "maxValue", Label: "Max", Kind: FieldNumber},
			{Key: "step", Label: "Step", Kind: FieldNumber},
			{Key: "unit", Label: "Unit", Kind: FieldText},
		},
	},
	models.TypeSpacer: {
		Type: models.TypeSpacer, Label: "Spacer", Icon: "minus",
		NewConfig: newSpacerConfig,
		EditorFields: []FieldSpec{
			{Key: "height", Label: "Height", Kind: FieldSelect, Options: []string{"small", "medium", "large"}},
		},
	},
	models.TypeCarousel: {
		Type: models.TypeCarousel, Label: "Carousel", Icon: "images",
		NewConfig: newCarouselConfig,
		EditorFields: []FieldSpec{
			{Key: "items", Label: "Slides", Kind: FieldList},
			{Key: "autoPlay", Label: "Auto play", Kind: FieldToggle},
			{Key: "intervalSeconds", Label: "Interval (s)", Kind: FieldNumber},
		},
	},
	models.TypeTestimonials: {
		Type: models.TypeTestimonials, Label: "Testimonials", Icon: "quote",
		NewConfig: newTestimonialsConfig,
		EditorFields: []FieldSpec{
			{Key: "items", Label: "Testimonials", Kind: FieldList},
			{Key: "layout", Label: "Layout", Kind: FieldSelect, Options: []string{"stacked", "carousel"}},
		},
	},
	models.TypeFaq: {
		Type: models.TypeFaq, Label: "FAQ", Icon: "help",
		NewConfig: newFaqConfig,
		EditorFields: []FieldSpec{
			{Key: "items", Label: "Questions", Kind: FieldList},
			{Key: "allowMultipleOpen", Label: "Allow multiple open", Kind: FieldToggle},
		},
	},
	models.TypeArguments: {
		Type: models.TypeArguments, Label: "Arguments", Icon: "check",
		NewConfig: newArgumentsConfig,
		EditorFields: []FieldSpec{
			{Key: "items", Label: "Arguments", Kind: FieldList},
			{Key: "columns", Label: "Columns", Kind: FieldSelect, Options: []string{"1", "2"}},
		},
	},
	models.TypeMetrics: {
		Type: models.TypeMetrics, Label: "Metrics", Icon: "bar-chart",
		NewConfig: newMetricsConfig,
		EditorFields: []FieldSpec{
			{Key: "items", Label: "Metrics", Kind: FieldList},
			{Key: "style", Label: "Style", Kind: FieldSelect, Options: []string{"bars", "cards"}},
		},
	},
	models.TypeCharts: {
		Type: models.TypeCharts, Label: "Chart", Icon: "line-chart",
		NewConfig: newChartsConfig,
		EditorFields: []FieldSpec{
			{Key: "chart", Label: "Chart data", Kind: FieldList},
			{Key: "height", Label: "Height", Kind: FieldNumber},
		},
	},
	models.TypePrice: {
		Type: models.TypePrice, Label: "Price card", Icon: "tag",
		NewConfig: newPriceConfig,
		EditorFields: []FieldSpec{
			{Key: "title", Label: "Title", Kind: FieldText},
			{Key: "priceValue", Label: "Price", Kind: FieldNumber},
			{Key: "originalValue", Label: "Original price", Kind: FieldNumber},
			{Key: "installments", Label: "Installments", Kind: FieldNumber},
			{Key: "features", Label: "Features", Kind: FieldList},
			{Key: "buttonText", Label: "Button text", Kind: FieldText},
			{Key: "buttonAction", Label: "Button action", Kind: FieldSelect, Options: []string{"next", "submit", "link"}},
			{Key: "buttonLink", Label: "Button link", Kind: FieldText},
		},
	},
	models.TypeTimer: {
		Type: models.TypeTimer, Label: "Timer", Icon: "clock",
		NewConfig: newTimerConfig,
		EditorFields: []FieldSpec{
			{Key: "timerDuration", Label: "Duration (s)", Kind: FieldNumber},
			{Key: "timerNavigation", Label: "When it ends", Kind: FieldSelect, Options: []string{"none", "next", "submit", "specific", "link"}},
			{Key: "timerDestinationStageId", Label: "Go to stage", Kind: FieldStageRef},
			{Key: "timerDestinationUrl", Label: "Go to URL", Kind: FieldText},
		},
	},
	models.TypeLoading: {
		Type: models.TypeLoading, Label: "Loading", Icon: "loader",
		NewConfig: newLoadingConfig,
		EditorFields: []FieldSpec{
			{Key: "loadingDuration", Label: "Duration (s)", Kind: FieldNumber},
			{Key: "loadingDelay", Label: "Delay (s)", Kind: FieldNumber},
			{Key: "loadingText", Label: "Text", Kind: FieldText},
			{Key: "loadingNavigation", Label: "When it ends", Kind: FieldSelect, Options: []string{"next", "submit", "specific", "link"}},
			{Key: "loadingDestinationStageId", Label: "Go to stage", Kind: FieldStageRef},
		},
	},
	models.TypeLevel: {
		Type: models.TypeLevel, Label: "Level", Icon: "gauge",
		NewConfig: newLevelConfig,
		EditorFields: []FieldSpec{
			{Key: "label", Label: "Label", Kind: FieldText},
			{Key: "levelValue", Label: "Value (%)", Kind: FieldNumber},
			{Key: "levelDuration", Label: "Animation (s)", Kind: FieldNumber},
			{Key: "levelNavigation", Label: "When it ends", Kind: FieldSelect, Options: []string{"none", "next", "submit", "specific"}},
			{Key: "levelDestinationStageId", Label: "Go to stage", Kind: FieldStageRef},
		},
	},
	models.TypeNotification: {
		Type: models.TypeNotification, Label: "Notification", Icon: "bell",
		NewConfig: newNotificationConfig,
		EditorFields: []FieldSpec{
			{Key: "template", Label: "Message", Kind: FieldText},
			{Key: "variations", Label: "Variations", Kind: FieldList},
			{Key: "intervalSeconds", Label: "Interval (s)", Kind: FieldNumber},
			{Key: "variant", Label: "Style", Kind: FieldSelect, Options: []string{"info", "success", "warning"}},
		},
	},
}

var (
	radiusOptions  = []string{"none", "small", "medium", "large", "full"}
	shadowOptions  = []string{"none", "sm", "md", "lg"}
	spacingOptions = []string{"small", "medium", "large"}
)
