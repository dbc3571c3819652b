package components

import (
	"github.com/google/uuid"

	"github.com/Cari-app/cari-quizzies-sub001/internal/models"
)

// DefaultConfig builds the fully-populated starter config for a type.
// Pure apart from id generation: every nested list item gets a fresh id,
// never shared across calls. Unknown types yield an empty generic config
// so the dispatcher can still render its fallback.
func DefaultConfig(t models.ComponentType) models.ComponentConfig {
	def, ok := definitions[t]
	if !ok {
		return models.GenericConfig{}
	}
	return def.NewConfig()
}

// NewComponent assembles a freshly dropped component: system id, palette
// metadata and the type's default config. customId starts empty.
func NewComponent(t models.ComponentType) models.Component {
	component := models.Component{
		ID:     uuid.NewString(),
		Type:   t,
		Config: DefaultConfig(t),
	}
	if def, ok := definitions[t]; ok {
		component.Name = def.Label
		component.Icon = def.Icon
	} else {
		component.Name = string(t)
		component.Icon = "box"
	}
	return component
}

// Duplicate clones a component: deep-copied config with fresh item ids, a
// new system id, and a cleared customId so response keys never collide.
func Duplicate(c models.Component) (models.Component, error) {
	cfg, err := models.CloneConfig(c.Config)
	if err != nil {
		return models.Component{}, err
	}
	return models.Component{
		ID:     uuid.NewString(),
		Type:   c.Type,
		Name:   c.Name,
		Icon:   c.Icon,
		Config: cfg,
	}, nil
}

func newTextConfig() models.ComponentConfig {
	return &models.TextConfig{
		Content: "<p>Write something persuasive here.</p>",
	}
}

func newTitleConfig() models.ComponentConfig {
	return &models.TitleConfig{
		Text:  "Your headline",
		Level: 2,
	}
}

func newImageConfig() models.ComponentConfig {
	return &models.ImageConfig{
		AltText: "Illustration",
	}
}

func newVideoConfig() models.ComponentConfig {
	return &models.VideoConfig{}
}

func newButtonConfig() models.ComponentConfig {
	return &models.ButtonConfig{
		ButtonText:   "Continue",
		ButtonAction: models.ActionNext,
		FullWidth:    true,
	}
}

func newInputConfig() models.ComponentConfig {
	return &models.InputConfig{
		Label:       "Your answer",
		Placeholder: "Type here",
	}
}

func newEmailConfig() models.ComponentConfig {
	return &models.EmailConfig{
		Label:       "Email",
		Placeholder: "name@example.com",
		Required:    true,
	}
}

func newPhoneConfig() models.ComponentConfig {
	return &models.PhoneConfig{
		Label:       "Phone",
		Placeholder: "(00) 00000-0000",
	}
}

func newOptionsConfig() models.ComponentConfig {
	return &models.OptionsConfig{
		Label: "Pick one",
		Options: []models.OptionItem{
			{ID: uuid.NewString(), Text: "First option", Value: "option-1", Destination: models.DestinationNext},
			{ID: uuid.NewString(), Text: "Second option", Value: "option-2", Destination: models.DestinationNext},
		},
		AutoAdvance: true,
	}
}

func newYesNoConfig() models.ComponentConfig {
	return &models.YesNoConfig{
		Label:       "Does this sound like you?",
		AutoAdvance: true,
	}
}

func newImageOptionsConfig() models.ComponentConfig {
	return &models.ImageOptionsConfig{
		Label: "Pick one",
		Options: []models.OptionItem{
			{ID: uuid.NewString(), Text: "First", Value: "option-1", Destination: models.DestinationNext},
			{ID: uuid.NewString(), Text: "Second", Value: "option-2", Destination: models.DestinationNext},
		},
		Columns:     2,
		AutoAdvance: true,
	}
}

func newRatingConfig() models.ComponentConfig {
	return &models.RatingConfig{
		Label: "How would you rate it?",
	}
}

func newSliderConfig() models.ComponentConfig {
	return &models.SliderConfig{
		Label:    "Slide to your value",
		MinValue: 0,
		MaxValue: 100,
	}
}

func newSpacerConfig() models.ComponentConfig {
	return &models.SpacerConfig{}
}

func newCarouselConfig() models.ComponentConfig {
	return &models.CarouselConfig{
		Items: []models.CarouselItem{
			{ID: uuid.NewString(), Caption: "First slide"},
			{ID: uuid.NewString(), Caption: "Second slide"},
		},
	}
}

func newTestimonialsConfig() models.ComponentConfig {
	return &models.TestimonialsConfig{
		Items: []models.TestimonialItem{
			{ID: uuid.NewString(), Name: "Ana", Text: "This changed everything for me.", Rating: 5},
		},
	}
}

func newFaqConfig() models.ComponentConfig {
	return &models.FaqConfig{
		Items: []models.FaqItem{
			{ID: uuid.NewString(), Question: "How does it work?", Answer: "<p>Answer goes here.</p>"},
		},
	}
}

func newArgumentsConfig() models.ComponentConfig {
	return &models.ArgumentsConfig{
		Items: []models.ArgumentItem{
			{ID: uuid.NewString(), Icon: "check", Title: "First benefit", Description: "Why it matters."},
			{ID: uuid.NewString(), Icon: "check", Title: "Second benefit", Description: "Why it matters."},
		},
	}
}

func newMetricsConfig() models.ComponentConfig {
	return &models.MetricsConfig{
		Items: []models.MetricItem{
			{ID: uuid.NewString(), Label: "Satisfaction", Value: 92, Unit: "%"},
		},
	}
}

func newChartsConfig() models.ComponentConfig {
	return &models.ChartsConfig{
		Chart: models.ChartConfig{
			Kind:   models.ChartLine,
			Labels: []string{"Week 1", "Week 2", "Week 3"},
			DataSets: []models.DataSet{
				{Label: "Progress", Points: []models.DataPoint{
					{Label: "Week 1", Value: 20},
					{Label: "Week 2", Value: 55},
					{Label: "Week 3", Value: 90},
				}},
			},
		},
	}
}

func newPriceConfig() models.ComponentConfig {
	return &models.PriceConfig{
		Title:        "Full access",
		PriceValue:   97,
		Installments: 12,
		Features:     []string{"Everything included", "Cancel anytime"},
		ButtonText:   "Buy now",
		ButtonAction: models.ActionLink,
	}
}

func newTimerConfig() models.ComponentConfig {
	return &models.TimerConfig{
		TimerDuration: 300,
	}
}

func newLoadingConfig() models.ComponentConfig {
	return &models.LoadingConfig{
		LoadingDuration:   3,
		LoadingText:       "Preparing your result...",
		LoadingNavigation: models.TimedNext,
	}
}

func newLevelConfig() models.ComponentConfig {
	return &models.LevelConfig{
		Label:      "Your level",
		LevelValue: 70,
	}
}

func newNotificationConfig() models.ComponentConfig {
	return &models.NotificationConfig{
		Template:   "@1 just got their result",
		Variations: []string{"Maria", "João", "Carla"},
	}
}
