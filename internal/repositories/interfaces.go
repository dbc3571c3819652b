package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Cari-app/cari-quizzies-sub001/internal/models"
)

// ===== SHARED FILTER STRUCTS =====

type QuizFilters struct {
	Status    *models.QuizStatus `json:"status"`
	CreatedBy *string            `json:"created_by"`
	DateFrom  *time.Time         `json:"date_from"`
	DateTo    *time.Time         `json:"date_to"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
	SortBy    string             `json:"sort_by"`    // "created_at", "title", "updated_at"
	SortOrder string             `json:"sort_order"` // "asc", "desc"
}

type SubmissionFilters struct {
	QuizID   string     `json:"quiz_id"`
	DateFrom *time.Time `json:"date_from"`
	DateTo   *time.Time `json:"date_to"`
	Limit    int        `json:"limit"`
	Offset   int        `json:"offset"`
}

// QuizRepository handles quiz and stage persistence.
type QuizRepository interface {
	Create(ctx context.Context, quiz *models.Quiz) error
	GetByID(ctx context.Context, id string) (*models.Quiz, error)
	GetByIDWithStages(ctx context.Context, id string) (*models.Quiz, error)
	Update(ctx context.Context, quiz *models.Quiz) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters QuizFilters) ([]*models.Quiz, int64, error)
	UpdateStatus(ctx context.Context, id string, status models.QuizStatus) error

	CreateStage(ctx context.Context, stage *models.Stage) error
	GetStage(ctx context.Context, id string) (*models.Stage, error)
	GetStagesByQuiz(ctx context.Context, quizID string) ([]*models.Stage, error)
	UpdateStage(ctx context.Context, stage *models.Stage) error
	DeleteStage(ctx context.Context, id string) error
	ReorderStages(ctx context.Context, quizID string, stageIDs []string) error
}

// SubmissionRepository handles completed response sets.
type SubmissionRepository interface {
	Create(ctx context.Context, submission *models.Submission) error
	GetByID(ctx context.Context, id string) (*models.Submission, error)
	GetByQuiz(ctx context.Context, filters SubmissionFilters) ([]*models.Submission, int64, error)
	CountByQuiz(ctx context.Context, quizID string) (int64, error)
}

// Repository aggregates all repositories behind one constructor.
type Repository interface {
	Quiz() QuizRepository
	Submission() SubmissionRepository
}

// IsNotFoundError reports whether err means the record does not exist.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
