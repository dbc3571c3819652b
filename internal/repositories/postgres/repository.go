package postgres

import (
	"gorm.io/gorm"

	"github.com/Cari-app/cari-quizzies-sub001/internal/repositories"
)

type repository struct {
	quiz       repositories.QuizRepository
	submission repositories.SubmissionRepository
}

// NewRepository wires all PostgreSQL repositories over one gorm handle.
func NewRepository(db *gorm.DB) repositories.Repository {
	return &repository{
		quiz:       NewQuizPostgreSQL(db),
		submission: NewSubmissionPostgreSQL(db),
	}
}

func (r *repository) Quiz() repositories.QuizRepository {
	return r.quiz
}

func (r *repository) Submission() repositories.SubmissionRepository {
	return r.submission
}
