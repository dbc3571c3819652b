package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Cari-app/cari-quizzies-sub001/internal/models"
	"github.com/Cari-app/cari-quizzies-sub001/internal/repositories"
)

type QuizPostgreSQL struct {
	db *gorm.DB
}

func NewQuizPostgreSQL(db *gorm.DB) repositories.QuizRepository {
	return &QuizPostgreSQL{db: db}
}

// Create creates a new quiz in Draft status
func (q *QuizPostgreSQL) Create(ctx context.Context, quiz *models.Quiz) error {
	quiz.Status = models.QuizDraft
	quiz.Version = 1
	if err := q.db.WithContext(ctx).Create(quiz).Error; err != nil {
		return fmt.Errorf("failed to create quiz: %w", err)
	}
	return nil
}

// GetByID retrieves a quiz by ID without its stages
func (q *QuizPostgreSQL) GetByID(ctx context.Context, id string) (*models.Quiz, error) {
	var quiz models.Quiz
	err := q.db.WithContext(ctx).First(&quiz, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// GetByIDWithStages retrieves a quiz with its stages in position order
func (q *QuizPostgreSQL) GetByIDWithStages(ctx context.Context, id string) (*models.Quiz, error) {
	var quiz models.Quiz
	err := q.db.WithContext(ctx).
		Preload("Stages", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&quiz, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// Update saves quiz changes and bumps the version
func (q *QuizPostgreSQL) Update(ctx context.Context, quiz *models.Quiz) error {
	return q.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Quiz
		if err := tx.First(&current, "id = ?", quiz.ID).Error; err != nil {
			return fmt.Errorf("quiz not found: %w", err)
		}

		quiz.Version = current.Version + 1
		quiz.UpdatedAt = time.Now()

		if err := tx.Omit("Stages").Save(quiz).Error; err != nil {
			return fmt.Errorf("failed to update quiz: %w", err)
		}
		return nil
	})
}

// Delete soft-deletes a quiz and its stages
func (q *QuizPostgreSQL) Delete(ctx context.Context, id string) error {
	return q.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", id).Delete(&models.Stage{}).Error; err != nil {
			return fmt.Errorf("failed to delete stages: %w", err)
		}
		if err := tx.Delete(&models.Quiz{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete quiz: %w", err)
		}
		return nil
	})
}

// List retrieves quizzes matching the filters with a total count
func (q *QuizPostgreSQL) List(ctx context.Context, filters repositories.QuizFilters) ([]*models.Quiz, int64, error) {
	query := q.db.WithContext(ctx).Model(&models.Quiz{})

	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.CreatedBy != nil {
		query = query.Where("created_by = ?", *filters.CreatedBy)
	}
	if filters.DateFrom != nil {
		query = query.Where("created_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("created_at <= ?", *filters.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count quizzes: %w", err)
	}

	sortBy := filters.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	sortOrder := filters.SortOrder
	if sortOrder != "asc" {
		sortOrder = "desc"
	}
	query = query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder))

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var quizzes []*models.Quiz
	if err := query.Find(&quizzes).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list quizzes: %w", err)
	}
	return quizzes, total, nil
}

// UpdateStatus changes the quiz status
func (q *QuizPostgreSQL) UpdateStatus(ctx context.Context, id string, status models.QuizStatus) error {
	result := q.db.WithContext(ctx).Model(&models.Quiz{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update quiz status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CreateStage appends a stage at the end of the quiz
func (q *QuizPostgreSQL) CreateStage(ctx context.Context, stage *models.Stage) error {
	return q.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if stage.Position == 0 {
			var maxPosition int
			row := tx.Model(&models.Stage{}).
				Where("quiz_id = ?", stage.QuizID).
				Select("COALESCE(MAX(position), 0)").
				Row()
			if err := row.Scan(&maxPosition); err != nil {
				return fmt.Errorf("failed to determine stage position: %w", err)
			}
			stage.Position = maxPosition + 1
		}
		if err := tx.Create(stage).Error; err != nil {
			return fmt.Errorf("failed to create stage: %w", err)
		}
		return nil
	})
}

// GetStage retrieves a stage by ID
func (q *QuizPostgreSQL) GetStage(ctx context.Context, id string) (*models.Stage, error) {
	var stage models.Stage
	err := q.db.WithContext(ctx).First(&stage, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &stage, nil
}

// GetStagesByQuiz retrieves all stages of a quiz in position order
func (q *QuizPostgreSQL) GetStagesByQuiz(ctx context.Context, quizID string) ([]*models.Stage, error) {
	var stages []*models.Stage
	err := q.db.WithContext(ctx).
		Where("quiz_id = ?", quizID).
		Order("position ASC").
		Find(&stages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get stages: %w", err)
	}
	return stages, nil
}

// UpdateStage saves stage changes
func (q *QuizPostgreSQL) UpdateStage(ctx context.Context, stage *models.Stage) error {
	stage.UpdatedAt = time.Now()
	if err := q.db.WithContext(ctx).Save(stage).Error; err != nil {
		return fmt.Errorf("failed to update stage: %w", err)
	}
	return nil
}

// DeleteStage soft-deletes a stage and compacts positions
func (q *QuizPostgreSQL) DeleteStage(ctx context.Context, id string) error {
	return q.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stage models.Stage
		if err := tx.First(&stage, "id = ?", id).Error; err != nil {
			return fmt.Errorf("stage not found: %w", err)
		}
		if err := tx.Delete(&stage).Error; err != nil {
			return fmt.Errorf("failed to delete stage: %w", err)
		}
		err := tx.Model(&models.Stage{}).
			Where("quiz_id = ? AND position > ?", stage.QuizID, stage.Position).
			UpdateColumn("position", gorm.Expr("position - 1")).Error
		if err != nil {
			return fmt.Errorf("failed to compact stage positions: %w", err)
		}
		return nil
	})
}

// ReorderStages rewrites positions to match the given stage ID order
func (q *QuizPostgreSQL) ReorderStages(ctx context.Context, quizID string, stageIDs []string) error {
	return q.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, stageID := range stageIDs {
			result := tx.Model(&models.Stage{}).
				Where("id = ? AND quiz_id = ?", stageID, quizID).
				Update("position", i+1)
			if result.Error != nil {
				return fmt.Errorf("failed to reorder stage %s: %w", stageID, result.Error)
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("stage %s does not belong to quiz %s", stageID, quizID)
			}
		}
		return nil
	})
}
