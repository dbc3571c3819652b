package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ComponentConfig is the per-type configuration of a component. Saved
// documents are versionless JSON blobs, so absent fields must always
// resolve through Normalized defaults; renderers never assume presence.
type ComponentConfig interface {
	Kind() ComponentType

	// Normalized returns a copy with the documented defaults filled in
	// for every absent field. All renderer surfaces read this view.
	Normalized() ComponentConfig
}

// DecodeConfig decodes a raw config blob against the shape selected by
// the component type. Unknown types decode into GenericConfig so the
// dispatcher can still render its fallback.
func DecodeConfig(t ComponentType, raw json.RawMessage) (ComponentConfig, error) {
	if len(raw) == 0 || string(raw) == "null" {
		raw = json.RawMessage("{}")
	}

	var cfg ComponentConfig
	switch t {
	case TypeText:
		cfg = &TextConfig{}
	case TypeTitle:
		cfg = &TitleConfig{}
	case TypeImage:
		cfg = &ImageConfig{}
	case TypeVideo:
		cfg = &VideoConfig{}
	case TypeButton:
		cfg = &ButtonConfig{}
	case TypeInput:
		cfg = &InputConfig{}
	case TypeEmail:
		cfg = &EmailConfig{}
	case TypePhone:
		cfg = &PhoneConfig{}
	case TypeOptions:
		cfg = &OptionsConfig{}
	case TypeYesNo:
		cfg = &YesNoConfig{}
	case TypeImageOptions:
		cfg = &ImageOptionsConfig{}
	case TypeRating:
		cfg = &RatingConfig{}
	case TypeSlider:
		cfg = &SliderConfig{}
	case TypeSpacer:
		cfg = &SpacerConfig{}
	case TypeCarousel:
		cfg = &CarouselConfig{}
	case TypeTestimonials:
		cfg = &TestimonialsConfig{}
	case TypeFaq:
		cfg = &FaqConfig{}
	case TypeArguments:
		cfg = &ArgumentsConfig{}
	case TypeMetrics:
		cfg = &MetricsConfig{}
	case TypeCharts:
		cfg = &ChartsConfig{}
	case TypePrice:
		cfg = &PriceConfig{}
	case TypeTimer:
		cfg = &TimerConfig{}
	case TypeLoading:
		cfg = &LoadingConfig{}
	case TypeLevel:
		cfg = &LevelConfig{}
	case TypeNotification:
		cfg = &NotificationConfig{}
	default:
		g := GenericConfig{}
		if err := json.Unmarshal(raw, &g); err != nil {
			return nil, err
		}
		return g, nil
	}

	if err := json.Unmarshal(raw, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// CloneConfig deep-copies a config through its JSON form and reassigns
// fresh ids to every nested list item, so duplicated components never
// share item identity with their source.
func CloneConfig(cfg ComponentConfig) (ComponentConfig, error) {
	if cfg == nil {
		return GenericConfig{}, nil
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	clone, err := DecodeConfig(cfg.Kind(), raw)
	if err != nil {
		return nil, err
	}
	ReassignItemIDs(clone)
	return clone, nil
}

// ReassignItemIDs replaces the id of every nested list item in place.
func ReassignItemIDs(cfg ComponentConfig) {
	switch c := cfg.(type) {
	case *OptionsConfig:
		for i := range c.Options {
			c.Options[i].ID = uuid.NewString()
		}
	case *ImageOptionsConfig:
		for i := range c.Options {
			c.Options[i].ID = uuid.NewString()
		}
	case *CarouselConfig:
		for i := range c.Items {
			c.Items[i].ID = uuid.NewString()
		}
	case *TestimonialsConfig:
		for i := range c.Items {
			c.Items[i].ID = uuid.NewString()
		}
	case *FaqConfig:
		for i := range c.Items {
			c.Items[i].ID = uuid.NewString()
		}
	case *ArgumentsConfig:
		for i := range c.Items {
			c.Items[i].ID = uuid.NewString()
		}
	case *MetricsConfig:
		for i := range c.Items {
			c.Items[i].ID = uuid.NewString()
		}
	}
}

// GenericConfig is the open shape used for unrecognized component types.
type GenericConfig map[string]any

func (GenericConfig) Kind() ComponentType { return "" }
func (g GenericConfig) Normalized() ComponentConfig {
	if g == nil {
		return GenericConfig{}
	}
	return g
}

// ===== CONTENT COMPONENTS =====

type TextConfig struct {
	Content   string `json:"content,omitempty"` // rich text, sanitized at render time
	FontSize  string `json:"fontSize,omitempty"`
	Alignment string `json:"alignment,omitempty"`
	TextColor string `json:"textColor,omitempty"`
}

func (*TextConfig) Kind() ComponentType { return TypeText }
func (c *TextConfig) Normalized() ComponentConfig {
	out := *c
	out.FontSize = defaultString(out.FontSize, "medium")
	out.Alignment = defaultString(out.Alignment, "left")
	out.TextColor = defaultString(out.TextColor, "#1f2937")
	return &out
}

type TitleConfig struct {
	Text      string `json:"text,omitempty"`
	Level     int    `json:"level,omitempty"` // heading level 1..3
	Alignment string `json:"alignment,omitempty"`
	TextColor string `json:"textColor,omitempty"`
}

func (*TitleConfig) Kind() ComponentType { return TypeTitle }
func (c *TitleConfig) Normalized() ComponentConfig {
	out := *c
	if out.Level < 1 || out.Level > 3 {
		out.Level = 2
	}
	out.Alignment = defaultString(out.Alignment, "center")
	out.TextColor = defaultString(out.TextColor, "#111827")
	return &out
}

type ImageConfig struct {
	MediaURL     string `json:"mediaUrl,omitempty"`
	AltText      string `json:"altText,omitempty"`
	Width        string `json:"width,omitempty"` // full | half | auto
	BorderRadius string `json:"borderRadius,omitempty"`
	Shadow       string `json:"shadow,omitempty"`
}

func (*ImageConfig) Kind() ComponentType { return TypeImage }
func (c *ImageConfig) Normalized() ComponentConfig {
	out := *c
	out.Width = defaultString(out.Width, "full")
	out.BorderRadius = defaultString(out.BorderRadius, "small")
	out.Shadow = defaultString(out.Shadow, "none")
	return &out
}

type VideoConfig struct {
	MediaURL     string `json:"mediaUrl,omitempty"`
	EmbedCode    string `json:"embedCode,omitempty"` // raw embed HTML, sanitized to iframe-only
	AspectRatio  string `json:"aspectRatio,omitempty"`
	AutoPlay     bool   `json:"autoPlay,omitempty"`
	BorderRadius string `json:"borderRadius,omitempty"`
}

func (*VideoConfig) Kind() ComponentType { return TypeVideo }
func (c *VideoConfig) Normalized() ComponentConfig {
	out := *c
	out.AspectRatio = defaultString(out.AspectRatio, "16:9")
	out.BorderRadius = defaultString(out.BorderRadius, "small")
	return &out
}

// ===== INPUT COMPONENTS =====

type InputConfig struct {
	Label       string `json:"label,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required,omitempty"`
	MaxLength   int    `json:"maxLength,omitempty"`
	Multiline   bool   `json:"multiline,omitempty"`
}

func (*InputConfig) Kind() ComponentType { return TypeInput }
func (c *InputConfig) Normalized() ComponentConfig {
	out := *c
	out.Label = defaultString(out.Label, "Your answer")
	return &out
}

type EmailConfig struct {
	Label       string `json:"label,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	Required    bool   `json:"required,omitempty"`
}

func (*EmailConfig) Kind() ComponentType { return TypeEmail }
func (c *EmailConfig) Normalized() ComponentConfig {
	out := *c
	out.Label = defaultString(out.Label, "Email")
	out.Placeholder = defaultString(out.Placeholder, "name@example.com")
	return &out
}

type PhoneConfig struct {
	Label       string `json:"label,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	Required    bool   `json:"required,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
}

func (*PhoneConfig) Kind() ComponentType { return TypePhone }
func (c *PhoneConfig) Normalized() ComponentConfig {
	out := *c
	out.Label = defaultString(out.Label, "Phone")
	out.CountryCode = defaultString(out.CountryCode, "+55")
	return &out
}

type RatingConfig struct {
	Label     string `json:"label,omitempty"`
	MaxRating int    `json:"maxRating,omitempty"`
	IconStyle string `json:"iconStyle,omitempty"` // star | heart | number
	Required  bool   `json:"required,omitempty"`
}

func (*RatingConfig) Kind() ComponentType { return TypeRating }
func (c *RatingConfig) Normalized() ComponentConfig {
	out := *c
	if out.MaxRating <= 0 {
		out.MaxRating = 5
	}
	out.IconStyle = defaultString(out.IconStyle, "star")
	return &out
}

type SliderConfig struct {
	Label        string  `json:"label,omitempty"`
	MinValue     float64 `json:"minValue,omitempty"`
	MaxValue     float64 `json:"maxValue,omitempty"`
	Step         float64 `json:"step,omitempty"`
	Unit         string  `json:"unit,omitempty"`
	DefaultValue float64 `json:"defaultValue,omitempty"`
}

func (*SliderConfig) Kind() ComponentType { return TypeSlider }
func (c *SliderConfig) Normalized() ComponentConfig {
	out := *c
	if out.MaxValue <= out.MinValue {
		out.MaxValue = out.MinValue + 100
	}
	if out.Step <= 0 {
		out.Step = 1
	}
	if out.DefaultValue < out.MinValue || out.DefaultValue > out.MaxValue {
		out.DefaultValue = out.MinValue
	}
	return &out
}

// ===== CHOICE COMPONENTS =====

type OptionsConfig struct {
	Label              string       `json:"label,omitempty"`
	Options            []OptionItem `json:"options,omitempty"`
	AllowMultiple      bool         `json:"allowMultiple,omitempty"`
	AutoAdvance        bool         `json:"autoAdvance,omitempty"`
	Required           bool         `json:"required,omitempty"`
	OptionBorderRadius string       `json:"optionBorderRadius,omitempty"`
	OptionShadow       string       `json:"optionShadow,omitempty"`
	OptionSpacing      string       `json:"optionSpacing,omitempty"`
}

func (*OptionsConfig) Kind() ComponentType { return TypeOptions }
func (c *OptionsConfig) Normalized() ComponentConfig {
	out := *c
	out.OptionBorderRadius = defaultString(out.OptionBorderRadius, "small")
	out.OptionShadow = defaultString(out.OptionShadow, "none")
	out.OptionSpacing = defaultString(out.OptionSpacing, "medium")
	for i := range out.Options {
		if out.Options[i].Destination == "" {
			out.Options[i].Destination = DestinationNext
		}
	}
	return &out
}

type YesNoConfig struct {
	Label                 string      `json:"label,omitempty"`
	YesText               string      `json:"yesText,omitempty"`
	NoText                string      `json:"noText,omitempty"`
	AutoAdvance           bool        `json:"autoAdvance,omitempty"`
	YesDestination        Destination `json:"yesDestination,omitempty"`
	YesDestinationStageID string      `json:"yesDestinationStageId,omitempty"`
	NoDestination         Destination `json:"noDestination,omitempty"`
	NoDestinationStageID  string      `json:"noDestinationStageId,omitempty"`
	OptionBorderRadius    string      `json:"optionBorderRadius,omitempty"`
}

func (*YesNoConfig) Kind() ComponentType { return TypeYesNo }
func (c *YesNoConfig) Normalized() ComponentConfig {
	out := *c
	out.YesText = defaultString(out.YesText, "Yes")
	out.NoText = defaultString(out.NoText, "No")
	out.YesDestination = Destination(defaultString(string(out.YesDestination), string(DestinationNext)))
	out.NoDestination = Destination(defaultString(string(out.NoDestination), string(DestinationNext)))
	out.OptionBorderRadius = defaultString(out.OptionBorderRadius, "small")
	return &out
}

type ImageOptionsConfig struct {
	Label              string       `json:"label,omitempty"`
	Options            []OptionItem `json:"options,omitempty"`
	Columns            int          `json:"columns,omitempty"`
	AllowMultiple      bool         `json:"allowMultiple,omitempty"`
	AutoAdvance        bool         `json:"autoAdvance,omitempty"`
	OptionBorderRadius string       `json:"optionBorderRadius,omitempty"`
	OptionShadow       string       `json:"optionShadow,omitempty"`
}

func (*ImageOptionsConfig) Kind() ComponentType { return TypeImageOptions }
func (c *ImageOptionsConfig) Normalized() ComponentConfig {
	out := *c
	if out.Columns != 2 && out.Columns != 3 {
		out.Columns = 2
	}
	out.OptionBorderRadius = defaultString(out.OptionBorderRadius, "medium")
	out.OptionShadow = defaultString(out.OptionShadow, "sm")
	for i := range out.Options {
		if out.Options[i].Destination == "" {
			out.Options[i].Destination = DestinationNext
		}
	}
	return &out
}

// ===== LAYOUT AND SOCIAL-PROOF COMPONENTS =====

type SpacerConfig struct {
	Height string `json:"height,omitempty"` // small | medium | large
}

func (*SpacerConfig) Kind() ComponentType { return TypeSpacer }
func (c *SpacerConfig) Normalized() ComponentConfig {
	out := *c
	out.Height = defaultString(out.Height, "medium")
	return &out
}

type CarouselConfig struct {
	Items           []CarouselItem `json:"items,omitempty"`
	AutoPlay        bool           `json:"autoPlay,omitempty"`
	IntervalSeconds int            `json:"intervalSeconds,omitempty"`
	BorderRadius    string         `json:"borderRadius,omitempty"`
}

func (*CarouselConfig) Kind() ComponentType { return TypeCarousel }
func (c *CarouselConfig) Normalized() ComponentConfig {
	out := *c
	if out.IntervalSeconds <= 0 {
		out.IntervalSeconds = 5
	}
	out.BorderRadius = defaultString(out.BorderRadius, "medium")
	return &out
}

type TestimonialsConfig struct {
	Items  []TestimonialItem `json:"items,omitempty"`
	Layout string            `json:"layout,omitempty"` // stacked | carousel
}

func (*TestimonialsConfig) Kind() ComponentType { return TypeTestimonials }
func (c *TestimonialsConfig) Normalized() ComponentConfig {
	out := *c
	out.Layout = defaultString(out.Layout, "stacked")
	return &out
}

type FaqConfig struct {
	Items             []FaqItem `json:"items,omitempty"`
	AllowMultipleOpen bool      `json:"allowMultipleOpen,omitempty"`
}

func (*FaqConfig) Kind() ComponentType { return TypeFaq }
func (c *FaqConfig) Normalized() ComponentConfig {
	out := *c
	return &out
}

type ArgumentsConfig struct {
	Items   []ArgumentItem `json:"items,omitempty"`
	Columns int            `json:"columns,omitempty"`
}

func (*ArgumentsConfig) Kind() ComponentType { return TypeArguments }
func (c *ArgumentsConfig) Normalized() ComponentConfig {
	out := *c
	if out.Columns != 1 && out.Columns != 2 {
		out.Columns = 1
	}
	return &out
}

type MetricsConfig struct {
	Items []MetricItem `json:"items,omitempty"`
	Style string       `json:"style,omitempty"` // bars | cards
}

func (*MetricsConfig) Kind() ComponentType { return TypeMetrics }
func (c *MetricsConfig) Normalized() ComponentConfig {
	out := *c
	out.Style = defaultString(out.Style, "bars")
	return &out
}

type ChartsConfig struct {
	Chart  ChartConfig `json:"chart,omitempty"`
	Height int         `json:"height,omitempty"`
}

func (*ChartsConfig) Kind() ComponentType { return TypeCharts }
func (c *ChartsConfig) Normalized() ComponentConfig {
	out := *c
	if out.Height <= 0 {
		out.Height = 240
	}
	if out.Chart.Kind == "" {
		out.Chart.Kind = ChartLine
	}
	return &out
}

// ===== ACTION AND COMMERCE COMPONENTS =====

type ButtonConfig struct {
	ButtonText         string       `json:"buttonText,omitempty"`
	ButtonAction       ButtonAction `json:"buttonAction,omitempty"`
	ButtonLink         string       `json:"buttonLink,omitempty"`
	ButtonColor        string       `json:"buttonColor,omitempty"`
	TextColor          string       `json:"textColor,omitempty"`
	ButtonBorderRadius string       `json:"buttonBorderRadius,omitempty"`
	ButtonShadow       string       `json:"buttonShadow,omitempty"`
	Size               string       `json:"size,omitempty"`
	FullWidth          bool         `json:"fullWidth,omitempty"`
}

func (*ButtonConfig) Kind() ComponentType { return TypeButton }
func (c *ButtonConfig) Normalized() ComponentConfig {
	out := *c
	out.ButtonText = defaultString(out.ButtonText, "Continue")
	out.ButtonAction = ButtonAction(defaultString(string(out.ButtonAction), string(ActionNext)))
	out.ButtonColor = defaultString(out.ButtonColor, "#2563eb")
	out.TextColor = defaultString(out.TextColor, "#ffffff")
	out.ButtonBorderRadius = defaultString(out.ButtonBorderRadius, "small")
	out.ButtonShadow = defaultString(out.ButtonShadow, "none")
	out.Size = defaultString(out.Size, "medium")
	return &out
}

type PriceConfig struct {
	Title         string       `json:"title,omitempty"`
	PriceValue    float64      `json:"priceValue,omitempty"`
	OriginalValue float64      `json:"originalValue,omitempty"`
	Currency      string       `json:"currency,omitempty"`
	Installments  int          `json:"installments,omitempty"`
	Features      []string     `json:"features,omitempty"`
	Highlight     bool         `json:"highlight,omitempty"`
	ButtonText    string       `json:"buttonText,omitempty"`
	ButtonAction  ButtonAction `json:"buttonAction,omitempty"`
	ButtonLink    string       `json:"buttonLink,omitempty"`
	BorderRadius  string       `json:"borderRadius,omitempty"`
	Shadow        string       `json:"shadow,omitempty"`
}

func (*PriceConfig) Kind() ComponentType { return TypePrice }
func (c *PriceConfig) Normalized() ComponentConfig {
	out := *c
	out.Currency = defaultString(out.Currency, "R$")
	out.ButtonText = defaultString(out.ButtonText, "Buy now")
	out.ButtonAction = ButtonAction(defaultString(string(out.ButtonAction), string(ActionNext)))
	out.BorderRadius = defaultString(out.BorderRadius, "medium")
	out.Shadow = defaultString(out.Shadow, "md")
	return &out
}

// ===== TIMED COMPONENTS =====

type TimerConfig struct {
	TimerDuration       int             `json:"timerDuration,omitempty"` // seconds
	Label               string          `json:"label,omitempty"`
	TimerNavigation     TimedNavigation `json:"timerNavigation,omitempty"`
	TimerDestinationID  string          `json:"timerDestinationStageId,omitempty"`
	TimerDestinationURL string          `json:"timerDestinationUrl,omitempty"`
	AccentColor         string          `json:"accentColor,omitempty"`
}

func (*TimerConfig) Kind() ComponentType { return TypeTimer }
func (c *TimerConfig) Normalized() ComponentConfig {
	out := *c
	if out.TimerDuration <= 0 {
		out.TimerDuration = 60
	}
	out.TimerNavigation = TimedNavigation(defaultString(string(out.TimerNavigation), string(TimedNone)))
	out.AccentColor = defaultString(out.AccentColor, "#dc2626")
	return &out
}

type LoadingConfig struct {
	LoadingDuration       int             `json:"loadingDuration,omitempty"` // seconds
	LoadingDelay          int             `json:"loadingDelay,omitempty"`    // seconds before the bar starts
	LoadingText           string          `json:"loadingText,omitempty"`
	Style                 string          `json:"style,omitempty"` // bar | spinner
	BarColor              string          `json:"barColor,omitempty"`
	LoadingNavigation     TimedNavigation `json:"loadingNavigation,omitempty"`
	LoadingDestinationID  string          `json:"loadingDestinationStageId,omitempty"`
	LoadingDestinationURL string          `json:"loadingDestinationUrl,omitempty"`
}

func (*LoadingConfig) Kind() ComponentType { return TypeLoading }
func (c *LoadingConfig) Normalized() ComponentConfig {
	out := *c
	if out.LoadingDuration <= 0 {
		out.LoadingDuration = 3
	}
	out.LoadingText = defaultString(out.LoadingText, "Loading...")
	out.Style = defaultString(out.Style, "bar")
	out.BarColor = defaultString(out.BarColor, "#2563eb")
	out.LoadingNavigation = TimedNavigation(defaultString(string(out.LoadingNavigation), string(TimedNext)))
	return &out
}

type LevelConfig struct {
	Label               string          `json:"label,omitempty"`
	LevelValue          int             `json:"levelValue,omitempty"` // 0..100
	LevelDuration       int             `json:"levelDuration,omitempty"`
	Color               string          `json:"color,omitempty"`
	LevelNavigation     TimedNavigation `json:"levelNavigation,omitempty"`
	LevelDestinationID  string          `json:"levelDestinationStageId,omitempty"`
	LevelDestinationURL string          `json:"levelDestinationUrl,omitempty"`
}

func (*LevelConfig) Kind() ComponentType { return TypeLevel }
func (c *LevelConfig) Normalized() ComponentConfig {
	out := *c
	if out.LevelValue < 0 {
		out.LevelValue = 0
	}
	if out.LevelValue > 100 {
		out.LevelValue = 100
	}
	if out.LevelDuration <= 0 {
		out.LevelDuration = 2
	}
	out.Color = defaultString(out.Color, "#16a34a")
	out.LevelNavigation = TimedNavigation(defaultString(string(out.LevelNavigation), string(TimedNone)))
	return &out
}

// NotificationConfig renders a rotating toast. Template may reference the
// variation tokens @1 @2 @3, resolved against Variations in order.
type NotificationConfig struct {
	Template        string   `json:"template,omitempty"`
	Variations      []string `json:"variations,omitempty"`
	IntervalSeconds int      `json:"intervalSeconds,omitempty"`
	Variant         string   `json:"variant,omitempty"` // info | success | warning
}

func (*NotificationConfig) Kind() ComponentType { return TypeNotification }
func (c *NotificationConfig) Normalized() ComponentConfig {
	out := *c
	out.Template = defaultString(out.Template, "@1 just joined")
	if out.IntervalSeconds <= 0 {
		out.IntervalSeconds = 4
	}
	out.Variant = defaultString(out.Variant, "info")
	return &out
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
