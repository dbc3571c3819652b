package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Cari-app/cari-quizzies-sub001/internal/components"
	"github.com/Cari-app/cari-quizzies-sub001/internal/models"
	"github.com/Cari-app/cari-quizzies-sub001/internal/repositories"
)

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{
		repo:   repo,
		logger: logger,
	}
}

// ExportSubmissions writes every submission of a quiz into an xlsx sheet.
// Columns follow the component order of the flow, keyed by each collecting
// component's response key; keys only present in old submissions are
// appended at the end.
func (s *exportService) ExportSubmissions(ctx context.Context, quizID string) ([]byte, string, error) {
	quiz, err := s.repo.Quiz().GetByID(ctx, quizID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, "", ErrQuizNotFound
		}
		return nil, "", fmt.Errorf("failed to get quiz: %w", err)
	}

	keys, err := s.responseKeys(ctx, quizID)
	if err != nil {
		return nil, "", err
	}

	submissions, _, err := s.repo.Submission().GetByQuiz(ctx, repositories.SubmissionFilters{QuizID: quizID})
	if err != nil {
		return nil, "", fmt.Errorf("failed to get submissions: %w", err)
	}

	// Pick up keys that only exist in historical submissions.
	known := make(map[string]bool, len(keys))
	for _, key := range keys {
		known[key] = true
	}
	decoded := make([]models.ResponseState, len(submissions))
	for i, submission := range submissions {
		fields := models.ResponseState{}
		if len(submission.Fields) > 0 {
			if err := json.Unmarshal(submission.Fields, &fields); err != nil {
				s.logger.Error("Skipping malformed submission fields",
					"submission_id", submission.ID, "error", err)
			}
		}
		decoded[i] = fields
		for key := range fields {
			if !known[key] {
				known[key] = true
				keys = append(keys, key)
			}
		}
	}

	f := excelize.NewFile()
	sheetName := "Responses"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := append([]string{"Submission ID", "Submitted At"}, keys...)
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, "", fmt.Errorf("failed to build cell name: %w", err)
		}
		f.SetCellValue(sheetName, cell, header)
	}

	for rowIndex, submission := range submissions {
		row := []interface{}{submission.ID, submission.SubmittedAt.Format(time.RFC3339)}
		for _, key := range keys {
			row = append(row, cellValue(decoded[rowIndex][key]))
		}
		for colIndex, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIndex+1, rowIndex+2)
			if err != nil {
				return nil, "", fmt.Errorf("failed to build cell name: %w", err)
			}
			f.SetCellValue(sheetName, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	filename := fmt.Sprintf("%s-responses-%s.xlsx",
		sanitizeFilename(quiz.Title), time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

// responseKeys walks the stages in position order and collects the
// response key of every collecting component.
func (s *exportService) responseKeys(ctx context.Context, quizID string) ([]string, error) {
	stages, err := s.repo.Quiz().GetStagesByQuiz(ctx, quizID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stages: %w", err)
	}

	var keys []string
	seen := map[string]bool{}
	for _, stage := range stages {
		list, err := models.StageComponents(stage)
		if err != nil {
			continue
		}
		for _, component := range list {
			def, ok := components.Lookup(component.Type)
			if !ok || !def.CollectsResponse {
				continue
			}
			key := component.ResponseKey()
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
	}
	return keys, nil
}

// cellValue flattens a response value into something excelize can write.
func cellValue(value models.ResponseValue) interface{} {
	switch v := value.(type) {
	case nil:
		return ""
	case []string:
		return strings.Join(v, ", ")
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprintf("%v", item))
		}
		return strings.Join(parts, ", ")
	default:
		return v
	}
}

func sanitizeFilename(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	replacer := strings.NewReplacer(" ", "-", "/", "-", "\\", "-", ":", "-")
	name = replacer.Replace(name)
	if name == "" {
		name = "quiz"
	}
	return name
}
