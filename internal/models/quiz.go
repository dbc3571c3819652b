package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuizStatus string

const (
	QuizDraft     QuizStatus = "Draft"
	QuizPublished QuizStatus = "Published"
	QuizArchived  QuizStatus = "Archived"
)

type Quiz struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid"`
	Title       string     `json:"title" gorm:"not null;size:200;index" validate:"required,min=1,max=200"`
	Description *string    `json:"description" gorm:"type:text" validate:"omitempty,max=1000"`
	Status      QuizStatus `json:"status" gorm:"default:Draft;index" validate:"omitempty,oneof=Draft Published Archived"`

	// Metadata
	CreatedBy string         `json:"created_by" gorm:"not null;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Version int `json:"version" gorm:"default:1"`

	// Relations
	Stages []Stage `json:"stages" gorm:"foreignKey:QuizID"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// Stage is one screen of the funnel: an ordered component list plus the
// stage-level webhook marker consumed by the external delivery collaborator.
type Stage struct {
	ID       string `json:"id" gorm:"primaryKey;type:uuid"`
	QuizID   string `json:"quiz_id" gorm:"not null;index;type:uuid"`
	Title    string `json:"title" gorm:"size:200" validate:"omitempty,max=200"`
	Position int    `json:"position" gorm:"not null;index"`

	// Webhook trigger contract: when active, reaching this stage signals
	// the delivery collaborator to POST everything collected so far.
	WebhookActive      bool   `json:"webhook_active" gorm:"default:false"`
	WebhookDescription string `json:"webhook_description" gorm:"size:500"`

	// Components is the versionless JSON blob holding the ordered
	// dropped-component list ([]Component).
	Components datatypes.JSON `json:"components" gorm:"type:jsonb"`

	// Screens carries the legacy screen-level authoring model
	// ([]QuizScreen). The two models co-exist; see StageContent.
	Screens datatypes.JSON `json:"screens,omitempty" gorm:"type:jsonb"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Stage) TableName() string {
	return "stages"
}

// ComponentList decodes the stored component blob. A missing or empty blob
// decodes to an empty list, never an error worth halting rendering over.
func (s *Stage) ComponentList() ([]Component, error) {
	if len(s.Components) == 0 {
		return nil, nil
	}
	var out []Component
	if err := json.Unmarshal(s.Components, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Stage) SetComponents(components []Component) error {
	raw, err := json.Marshal(components)
	if err != nil {
		return err
	}
	s.Components = raw
	return nil
}

// ScreenList decodes the legacy screen blob.
func (s *Stage) ScreenList() ([]QuizScreen, error) {
	if len(s.Screens) == 0 {
		return nil, nil
	}
	var out []QuizScreen
	if err := json.Unmarshal(s.Screens, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ===== LEGACY SCREEN MODEL =====
// QuizScreen/QuizOption predate the dropped-component list. They are kept
// as a parallel read path: ScreenComponents projects them into components
// for rendering only, no write-back into the legacy blob.

type QuizScreen struct {
	ID       string       `json:"id"`
	Kind     string       `json:"kind"` // title | question
	Title    string       `json:"title"`
	Required bool         `json:"required,omitempty"`
	Options  []QuizOption `json:"options,omitempty"`
}

type QuizOption struct {
	ID           string `json:"id"`
	Text         string `json:"text"`
	Value        string `json:"value"`
	NextScreenID string `json:"nextScreenId,omitempty"`
}

// ScreenComponents converts legacy screens into the component model so the
// renderer and resolver core only ever see one stage-content shape.
func ScreenComponents(screens []QuizScreen) []Component {
	out := make([]Component, 0, len(screens))
	for _, screen := range screens {
		switch screen.Kind {
		case "title":
			out = append(out, Component{
				ID:     screen.ID,
				Type:   TypeTitle,
				Name:   "Title",
				Icon:   "heading",
				Config: &TitleConfig{Text: screen.Title},
			})
		default:
			options := make([]OptionItem, 0, len(screen.Options))
			for _, opt := range screen.Options {
				item := OptionItem{
					ID:          opt.ID,
					Text:        opt.Text,
					Value:       opt.Value,
					Destination: DestinationNext,
				}
				if opt.NextScreenID != "" {
					item.Destination = DestinationSpecific
					item.DestinationStageID = opt.NextScreenID
				}
				options = append(options, item)
			}
			out = append(out, Component{
				ID:   screen.ID,
				Type: TypeOptions,
				Name: "Question",
				Icon: "list",
				Config: &OptionsConfig{
					Label:       screen.Title,
					Options:     options,
					Required:    screen.Required,
					AutoAdvance: true,
				},
			})
		}
	}
	return out
}

// StageComponents returns the unified content view of a stage: the dropped
// component list when present, otherwise the projected legacy screens.
func StageComponents(s *Stage) ([]Component, error) {
	components, err := s.ComponentList()
	if err != nil {
		return nil, err
	}
	if len(components) > 0 {
		return components, nil
	}
	screens, err := s.ScreenList()
	if err != nil {
		return nil, err
	}
	return ScreenComponents(screens), nil
}
