package models

import (
	"encoding/json"
)

// ComponentType tags a dropped component and selects its config shape,
// editor form and renderer.
type ComponentType string

const (
	TypeText         ComponentType = "text"
	TypeTitle        ComponentType = "title"
	TypeImage        ComponentType = "image"
	TypeVideo        ComponentType = "video"
	TypeButton       ComponentType = "button"
	TypeInput        ComponentType = "input"
	TypeEmail        ComponentType = "email"
	TypePhone        ComponentType = "phone"
	TypeOptions      ComponentType = "options"
	TypeYesNo        ComponentType = "yes_no"
	TypeImageOptions ComponentType = "image_options"
	TypeRating       ComponentType = "rating"
	TypeSlider       ComponentType = "slider"
	TypeSpacer       ComponentType = "spacer"
	TypeCarousel     ComponentType = "carousel"
	TypeTestimonials ComponentType = "testimonials"
	TypeFaq          ComponentType = "faq"
	TypeArguments    ComponentType = "arguments"
	TypeMetrics      ComponentType = "metrics"
	TypeCharts       ComponentType = "charts"
	TypePrice        ComponentType = "price"
	TypeTimer        ComponentType = "timer"
	TypeLoading      ComponentType = "loading"
	TypeLevel        ComponentType = "level"
	TypeNotification ComponentType = "notification"
)

// KnownTypes lists every component type the registry dispatches on.
// Order matches the editor palette.
var KnownTypes = []ComponentType{
	TypeText, TypeTitle, TypeImage, TypeVideo, TypeButton,
	TypeInput, TypeEmail, TypePhone,
	TypeOptions, TypeYesNo, TypeImageOptions, TypeRating, TypeSlider,
	TypeSpacer, TypeCarousel, TypeTestimonials, TypeFaq, TypeArguments,
	TypeMetrics, TypeCharts, TypePrice,
	TypeTimer, TypeLoading, TypeLevel, TypeNotification,
}

// Destination is the navigation target configured on an option.
type Destination string

const (
	DestinationNext     Destination = "next"
	DestinationSubmit   Destination = "submit"
	DestinationSpecific Destination = "specific"
)

// ButtonAction is the navigation target configured on a button.
type ButtonAction string

const (
	ActionNext   ButtonAction = "next"
	ActionSubmit ButtonAction = "submit"
	ActionLink   ButtonAction = "link"
)

// TimedNavigation is the post-delay navigation of loading/level/timer components.
type TimedNavigation string

const (
	TimedNext     TimedNavigation = "next"
	TimedSubmit   TimedNavigation = "submit"
	TimedSpecific TimedNavigation = "specific"
	TimedLink     TimedNavigation = "link"
	TimedNone     TimedNavigation = "none"
)

// Component is one typed, configurable block placed on a stage.
// ID is system-assigned and immutable; CustomID is the user-editable slug
// used as the response-field key.
type Component struct {
	ID       string          `json:"id"`
	Type     ComponentType   `json:"type"`
	Name     string          `json:"name"`
	Icon     string          `json:"icon"`
	CustomID string          `json:"customId,omitempty"`
	Config   ComponentConfig `json:"config"`
}

// ResponseKey returns the key under which this component's collected value
// is stored: the customId when set, otherwise the system id.
func (c Component) ResponseKey() string {
	if c.CustomID != "" {
		return c.CustomID
	}
	return c.ID
}

func (c *Component) UnmarshalJSON(data []byte) error {
	var shell struct {
		ID       string          `json:"id"`
		Type     ComponentType   `json:"type"`
		Name     string          `json:"name"`
		Icon     string          `json:"icon"`
		CustomID string          `json:"customId"`
		Config   json.RawMessage `json:"config"`
	}
	if err := json.Unmarshal(data, &shell); err != nil {
		return err
	}

	cfg, err := DecodeConfig(shell.Type, shell.Config)
	if err != nil {
		return err
	}

	c.ID = shell.ID
	c.Type = shell.Type
	c.Name = shell.Name
	c.Icon = shell.Icon
	c.CustomID = shell.CustomID
	c.Config = cfg
	return nil
}

// ===== CHILD ITEM RECORDS =====
// Each list-valued config field owns its items; every item carries its own
// id so the editor can address it without positional indexes.

// OptionItem is one selectable entry of an options / yes_no / image_options
// component. Destination is only honored in single-choice mode.
type OptionItem struct {
	ID                 string      `json:"id"`
	Text               string      `json:"text"`
	Value              string      `json:"value"`
	MediaURL           string      `json:"mediaUrl,omitempty"`
	Destination        Destination `json:"destination,omitempty"`
	DestinationStageID string      `json:"destinationStageId,omitempty"`
}

// ArgumentItem is one benefit/selling-point row.
type ArgumentItem struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type TestimonialItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role,omitempty"`
	Text      string `json:"text"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Rating    int    `json:"rating,omitempty"`
}

type FaqItem struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"` // rich text, sanitized at render time
}

type CarouselItem struct {
	ID       string `json:"id"`
	MediaURL string `json:"mediaUrl"`
	Caption  string `json:"caption,omitempty"`
}

type MetricItem struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
	Color string  `json:"color,omitempty"`
}
