package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/Cari-app/cari-quizzies-sub001/internal/components"
	"github.com/Cari-app/cari-quizzies-sub001/internal/models"
	"github.com/Cari-app/cari-quizzies-sub001/internal/navigation"
	"github.com/Cari-app/cari-quizzies-sub001/internal/repositories"
	"github.com/Cari-app/cari-quizzies-sub001/internal/utils"
)

type builderService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *utils.Validator
}

func NewBuilderService(repo repositories.Repository, logger *slog.Logger, validator *utils.Validator) BuilderService {
	return &builderService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

// ===== QUIZ OPERATIONS =====

func (s *builderService) CreateQuiz(ctx context.Context, req *CreateQuizRequest, creatorID string) (*models.Quiz, error) {
	s.logger.Info("Creating quiz", "creator_id", creatorID, "title", req.Title)

	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	quiz := &models.Quiz{
		ID:          utils.NewID(),
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   creatorID,
	}
	if err := s.repo.Quiz().Create(ctx, quiz); err != nil {
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}
	return quiz, nil
}

func (s *builderService) GetQuiz(ctx context.Context, id string) (*models.Quiz, error) {
	quiz, err := s.repo.Quiz().GetByIDWithStages(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}
	return quiz, nil
}

func (s *builderService) ListQuizzes(ctx context.Context, filters repositories.QuizFilters) ([]*models.Quiz, int64, error) {
	return s.repo.Quiz().List(ctx, filters)
}

func (s *builderService) UpdateQuiz(ctx context.Context, id string, req *UpdateQuizRequest) (*models.Quiz, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	quiz, err := s.repo.Quiz().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}
	if quiz.Status == models.QuizArchived {
		return nil, ErrQuizNotEditable
	}

	if req.Title != nil {
		quiz.Title = *req.Title
	}
	if req.Description != nil {
		quiz.Description = req.Description
	}
	if err := s.repo.Quiz().Update(ctx, quiz); err != nil {
		return nil, fmt.Errorf("failed to update quiz: %w", err)
	}
	return quiz, nil
}

func (s *builderService) DeleteQuiz(ctx context.Context, id string) error {
	if _, err := s.repo.Quiz().GetByID(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrQuizNotFound
		}
		return fmt.Errorf("failed to get quiz: %w", err)
	}
	return s.repo.Quiz().Delete(ctx, id)
}

func (s *builderService) UpdateQuizStatus(ctx context.Context, id string, status models.QuizStatus) error {
	if status == models.QuizPublished {
		stages, err := s.repo.Quiz().GetStagesByQuiz(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get stages: %w", err)
		}
		if len(stages) == 0 {
			return NewBusinessRuleError("publish_requires_stages",
				"a quiz must have at least one stage before publishing",
				map[string]interface{}{"quiz_id": id})
		}
	}
	if err := s.repo.Quiz().UpdateStatus(ctx, id, status); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrQuizNotFound
		}
		return fmt.Errorf("failed to update quiz status: %w", err)
	}
	s.logger.Info("Quiz status updated", "quiz_id", id, "status", status)
	return nil
}

// ===== STAGE OPERATIONS =====

func (s *builderService) AddStage(ctx context.Context, quizID string, req *CreateStageRequest) (*models.Stage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	if _, err := s.repo.Quiz().GetByID(ctx, quizID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}

	stage := &models.Stage{
		ID:     utils.NewID(),
		QuizID: quizID,
		Title:  req.Title,
	}
	if err := stage.SetComponents([]models.Component{}); err != nil {
		return nil, fmt.Errorf("failed to initialize components: %w", err)
	}
	if err := s.repo.Quiz().CreateStage(ctx, stage); err != nil {
		return nil, fmt.Errorf("failed to create stage: %w", err)
	}
	return stage, nil
}

func (s *builderService) GetStage(ctx context.Context, stageID string) (*models.Stage, error) {
	stage, err := s.repo.Quiz().GetStage(ctx, stageID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrStageNotFound
		}
		return nil, fmt.Errorf("failed to get stage: %w", err)
	}
	return stage, nil
}

func (s *builderService) UpdateStage(ctx context.Context, stageID string, req *UpdateStageRequest) (*models.Stage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	stage, err := s.GetStage(ctx, stageID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		stage.Title = *req.Title
	}
	if req.WebhookActive != nil {
		stage.WebhookActive = *req.WebhookActive
	}
	if req.WebhookDescription != nil {
		stage.WebhookDescription = *req.WebhookDescription
	}
	if err := s.repo.Quiz().UpdateStage(ctx, stage); err != nil {
		return nil, fmt.Errorf("failed to update stage: %w", err)
	}
	return stage, nil
}

func (s *builderService) DeleteStage(ctx context.Context, stageID string) error {
	if err := s.repo.Quiz().DeleteStage(ctx, stageID); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrStageNotFound
		}
		return fmt.Errorf("failed to delete stage: %w", err)
	}
	return nil
}

func (s *builderService) ReorderStages(ctx context.Context, quizID string, stageIDs []string) error {
	stages, err := s.repo.Quiz().GetStagesByQuiz(ctx, quizID)
	if err != nil {
		return fmt.Errorf("failed to get stages: %w", err)
	}
	if len(stageIDs) != len(stages) {
		return NewValidationError("stage_ids", "reorder list must contain every stage exactly once", stageIDs)
	}
	return s.repo.Quiz().ReorderStages(ctx, quizID, stageIDs)
}

// ===== COMPONENT OPERATIONS =====

func (s *builderService) AddComponent(ctx context.Context, stageID string, req *AddComponentRequest) (*models.Component, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	if _, ok := components.Lookup(req.Type); !ok {
		return nil, ErrComponentInvalidType
	}

	stage, err := s.GetStage(ctx, stageID)
	if err != nil {
		return nil, err
	}
	list, err := stage.ComponentList()
	if err != nil {
		return nil, fmt.Errorf("failed to decode components: %w", err)
	}

	component := components.NewComponent(req.Type)
	position := len(list)
	if req.Position != nil && *req.Position >= 0 && *req.Position < len(list) {
		position = *req.Position
	}
	list = append(list, models.Component{})
	copy(list[position+1:], list[position:])
	list[position] = component

	if err := s.saveComponents(ctx, stage, list); err != nil {
		return nil, err
	}
	s.logger.Info("Component added", "stage_id", stageID, "type", req.Type, "component_id", component.ID)
	return &component, nil
}

func (s *builderService) UpdateComponent(ctx context.Context, stageID, componentID string, req *UpdateComponentRequest) (*models.Component, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	stage, err := s.GetStage(ctx, stageID)
	if err != nil {
		return nil, err
	}
	list, err := stage.ComponentList()
	if err != nil {
		return nil, fmt.Errorf("failed to decode components: %w", err)
	}

	idx := indexOfComponent(list, componentID)
	if idx < 0 {
		return nil, ErrComponentNotFound
	}

	if req.Name != nil {
		list[idx].Name = *req.Name
	}
	if req.CustomID != nil {
		list[idx].CustomID = uniqueCustomID(list, idx, *req.CustomID)
	}
	if len(req.Config) > 0 {
		cfg, err := models.DecodeConfig(list[idx].Type, req.Config)
		if err != nil {
			return nil, NewValidationError("config", "malformed component config", string(req.Config))
		}
		list[idx].Config = cfg
	}

	if err := s.saveComponents(ctx, stage, list); err != nil {
		return nil, err
	}
	return &list[idx], nil
}

func (s *builderService) MoveComponent(ctx context.Context, stageID, componentID string, position int) error {
	stage, err := s.GetStage(ctx, stageID)
	if err != nil {
		return err
	}
	list, err := stage.ComponentList()
	if err != nil {
		return fmt.Errorf("failed to decode components: %w", err)
	}

	idx := indexOfComponent(list, componentID)
	if idx < 0 {
		return ErrComponentNotFound
	}
	if position < 0 {
		position = 0
	}
	if position >= len(list) {
		position = len(list) - 1
	}

	component := list[idx]
	list = append(list[:idx], list[idx+1:]...)
	list = append(list, models.Component{})
	copy(list[position+1:], list[position:])
	list[position] = component

	return s.saveComponents(ctx, stage, list)
}

func (s *builderService) DuplicateComponent(ctx context.Context, stageID, componentID string) (*models.Component, error) {
	stage, err := s.GetStage(ctx, stageID)
	if err != nil {
		return nil, err
	}
	list, err := stage.ComponentList()
	if err != nil {
		return nil, fmt.Errorf("failed to decode components: %w", err)
	}

	idx := indexOfComponent(list, componentID)
	if idx < 0 {
		return nil, ErrComponentNotFound
	}

	duplicate, err := components.Duplicate(list[idx])
	if err != nil {
		return nil, fmt.Errorf("failed to duplicate component: %w", err)
	}

	// Insert right after the original.
	list = append(list, models.Component{})
	copy(list[idx+2:], list[idx+1:])
	list[idx+1] = duplicate

	if err := s.saveComponents(ctx, stage, list); err != nil {
		return nil, err
	}
	return &duplicate, nil
}

func (s *builderService) RemoveComponent(ctx context.Context, stageID, componentID string) error {
	stage, err := s.GetStage(ctx, stageID)
	if err != nil {
		return err
	}
	list, err := stage.ComponentList()
	if err != nil {
		return fmt.Errorf("failed to decode components: %w", err)
	}

	idx := indexOfComponent(list, componentID)
	if idx < 0 {
		return ErrComponentNotFound
	}
	list = append(list[:idx], list[idx+1:]...)
	return s.saveComponents(ctx, stage, list)
}

// ===== VALIDATION =====

// ValidateQuiz walks every stage and reports editor-facing warnings:
// dangling destinations, empty choice lists, link buttons without a url
// and duplicate response keys.
func (s *builderService) ValidateQuiz(ctx context.Context, quizID string) ([]navigation.Warning, error) {
	stages, err := s.repo.Quiz().GetStagesByQuiz(ctx, quizID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stages: %w", err)
	}

	stageOrder := make([]string, len(stages))
	for i, stage := range stages {
		stageOrder[i] = stage.ID
	}

	warnings := []navigation.Warning{}
	seenKeys := map[string]string{}

	for _, stage := range stages {
		list, err := models.StageComponents(stage)
		if err != nil {
			warnings = append(warnings, navigation.Warning{
				Code:    "malformed_components",
				Message: "stage component blob failed to decode",
				StageID: stage.ID,
			})
			continue
		}
		for _, component := range list {
			def, ok := components.Lookup(component.Type)
			if ok && def.CollectsResponse {
				key := component.ResponseKey()
				if prior, dup := seenKeys[key]; dup && prior != component.ID {
					warnings = append(warnings, navigation.Warning{
						Code:    "duplicate_response_key",
						Message: fmt.Sprintf("response key %q is used by more than one component", key),
						StageID: stage.ID,
					})
				} else {
					seenKeys[key] = component.ID
				}
			}
			warnings = append(warnings, componentWarnings(component, stageOrder, stage.ID)...)
		}
	}
	return warnings, nil
}

func (s *builderService) Palette() []components.Definition {
	return components.All()
}

// ===== HELPERS =====

func (s *builderService) saveComponents(ctx context.Context, stage *models.Stage, list []models.Component) error {
	if err := stage.SetComponents(list); err != nil {
		return fmt.Errorf("failed to encode components: %w", err)
	}
	if err := s.repo.Quiz().UpdateStage(ctx, stage); err != nil {
		return fmt.Errorf("failed to save stage: %w", err)
	}
	return nil
}

func indexOfComponent(list []models.Component, componentID string) int {
	for i, c := range list {
		if c.ID == componentID {
			return i
		}
	}
	return -1
}

// uniqueCustomID appends a numeric suffix when the requested id collides
// with another component on the same stage. Clearing the id is always
// allowed.
func uniqueCustomID(list []models.Component, selfIdx int, requested string) string {
	if requested == "" {
		return ""
	}
	taken := func(candidate string) bool {
		for i, c := range list {
			if i != selfIdx && c.CustomID == candidate {
				return true
			}
		}
		return false
	}
	if !taken(requested) {
		return requested
	}
	for n := 2; ; n++ {
		candidate := requested + "_" + strconv.Itoa(n)
		if !taken(candidate) {
			return candidate
		}
	}
}

// componentWarnings resolves every configured destination on a component
// against the current stage order and collects the fallout.
func componentWarnings(component models.Component, stageOrder []string, stageID string) []navigation.Warning {
	if component.Config == nil {
		return nil
	}
	var out []navigation.Warning
	collect := func(trigger navigation.Trigger) {
		_, warnings := navigation.ResolveNext(trigger, stageOrder, stageID)
		out = append(out, warnings...)
	}

	switch cfg := component.Config.Normalized().(type) {
	case *models.ButtonConfig:
		collect(navigation.ButtonTrigger(cfg.ButtonAction, cfg.ButtonLink))
	case *models.OptionsConfig:
		if len(cfg.Options) == 0 {
			out = append(out, navigation.Warning{
				Code:    "empty_options",
				Message: "choice component has no options",
				StageID: stageID,
			})
		}
		for _, opt := range cfg.Options {
			collect(navigation.OptionTrigger(opt.Destination, opt.DestinationStageID))
		}
	case *models.ImageOptionsConfig:
		if len(cfg.Options) == 0 {
			out = append(out, navigation.Warning{
				Code:    "empty_options",
				Message: "choice component has no options",
				StageID: stageID,
			})
		}
		for _, opt := range cfg.Options {
			collect(navigation.OptionTrigger(opt.Destination, opt.DestinationStageID))
		}
	case *models.YesNoConfig:
		collect(navigation.OptionTrigger(cfg.YesDestination, cfg.YesDestinationStageID))
		collect(navigation.OptionTrigger(cfg.NoDestination, cfg.NoDestinationStageID))
	case *models.TimerConfig:
		collect(navigation.TimedTrigger(cfg.TimerNavigation, cfg.TimerDestinationID, cfg.TimerDestinationURL))
	case *models.LoadingConfig:
		collect(navigation.TimedTrigger(cfg.LoadingNavigation, cfg.LoadingDestinationID, cfg.LoadingDestinationURL))
	case *models.LevelConfig:
		collect(navigation.TimedTrigger(cfg.LevelNavigation, cfg.LevelDestinationID, cfg.LevelDestinationURL))
	}
	return out
}
