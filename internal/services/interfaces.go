package services

import (
	"context"
	"encoding/json"

	"github.com/Cari-app/cari-quizzies-sub001/internal/components"
	"github.com/Cari-app/cari-quizzies-sub001/internal/models"
	"github.com/Cari-app/cari-quizzies-sub001/internal/navigation"
	"github.com/Cari-app/cari-quizzies-sub001/internal/render"
	"github.com/Cari-app/cari-quizzies-sub001/internal/repositories"
)

// ===== REQUEST / RESPONSE DTOS =====

type CreateQuizRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

type UpdateQuizRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

type CreateStageRequest struct {
	Title string `json:"title" validate:"omitempty,max=200"`
}

type UpdateStageRequest struct {
	Title              *string `json:"title" validate:"omitempty,max=200"`
	WebhookActive      *bool   `json:"webhook_active"`
	WebhookDescription *string `json:"webhook_description" validate:"omitempty,max=500"`
}

type AddComponentRequest struct {
	Type     models.ComponentType `json:"type" validate:"required,component_type"`
	Position *int                 `json:"position"`
}

type UpdateComponentRequest struct {
	Name     *string         `json:"name" validate:"omitempty,max=100"`
	CustomID *string         `json:"custom_id" validate:"omitempty,custom_id"`
	Config   json.RawMessage `json:"config"`
}

type MoveComponentRequest struct {
	Position int `json:"position" validate:"min=0"`
}

// AdvanceRequest identifies what completed on the current stage. OptionID
// selects the branch for choice components; Auto marks scheduler-driven
// and auto-advance transitions.
type AdvanceRequest struct {
	ComponentID string `json:"component_id"`
	OptionID    string `json:"option_id"`
	Auto        bool   `json:"auto"`
}

// AdvanceResult reports where the session went. Submission is set only
// when the flow completed.
type AdvanceResult struct {
	SessionID  string                `json:"session_id"`
	Resolution navigation.Resolution `json:"resolution"`
	Submitted  bool                  `json:"submitted"`
	Submission *models.Submission    `json:"submission,omitempty"`
}

type AnswerRequest struct {
	ComponentID string               `json:"component_id" validate:"required"`
	Value       models.ResponseValue `json:"value"`
}

// ===== SERVICE INTERFACES =====

// BuilderService covers the authoring surface: quizzes, stages and the
// per-stage component list.
type BuilderService interface {
	CreateQuiz(ctx context.Context, req *CreateQuizRequest, creatorID string) (*models.Quiz, error)
	GetQuiz(ctx context.Context, id string) (*models.Quiz, error)
	ListQuizzes(ctx context.Context, filters repositories.QuizFilters) ([]*models.Quiz, int64, error)
	UpdateQuiz(ctx context.Context, id string, req *UpdateQuizRequest) (*models.Quiz, error)
	DeleteQuiz(ctx context.Context, id string) error
	UpdateQuizStatus(ctx context.Context, id string, status models.QuizStatus) error

	AddStage(ctx context.Context, quizID string, req *CreateStageRequest) (*models.Stage, error)
	GetStage(ctx context.Context, stageID string) (*models.Stage, error)
	UpdateStage(ctx context.Context, stageID string, req *UpdateStageRequest) (*models.Stage, error)
	DeleteStage(ctx context.Context, stageID string) error
	ReorderStages(ctx context.Context, quizID string, stageIDs []string) error

	AddComponent(ctx context.Context, stageID string, req *AddComponentRequest) (*models.Component, error)
	UpdateComponent(ctx context.Context, stageID, componentID string, req *UpdateComponentRequest) (*models.Component, error)
	MoveComponent(ctx context.Context, stageID, componentID string, position int) error
	DuplicateComponent(ctx context.Context, stageID, componentID string) (*models.Component, error)
	RemoveComponent(ctx context.Context, stageID, componentID string) error

	ValidateQuiz(ctx context.Context, quizID string) ([]navigation.Warning, error)
	Palette() []components.Definition
}

// PlayerService covers the respondent surface: sessions, answers,
// navigation and rendering.
type PlayerService interface {
	StartSession(ctx context.Context, quizID string) (*models.Session, error)
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	RenderStage(ctx context.Context, stageID string, surface render.Surface, sessionID string) (string, error)
	RecordAnswer(ctx context.Context, sessionID string, req *AnswerRequest) (*models.Session, error)
	Advance(ctx context.Context, sessionID string, req *AdvanceRequest) (*AdvanceResult, error)
	Submit(ctx context.Context, sessionID string) (*models.Submission, error)

	// SubscribeNavigation delivers scheduler-driven advances for one
	// session. The returned cancel func must be called when the
	// subscriber goes away.
	SubscribeNavigation(sessionID string) (<-chan AdvanceResult, func())
}

// ExportService produces downloadable artifacts from collected responses.
type ExportService interface {
	ExportSubmissions(ctx context.Context, quizID string) ([]byte, string, error)
}

// ServiceManager aggregates all services behind one constructor.
type ServiceManager interface {
	Builder() BuilderService
	Player() PlayerService
	Export() ExportService
}
