package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Cari-app/cari-quizzies-sub001/internal/cache"
	"github.com/Cari-app/cari-quizzies-sub001/internal/components"
	"github.com/Cari-app/cari-quizzies-sub001/internal/events"
	"github.com/Cari-app/cari-quizzies-sub001/internal/models"
	"github.com/Cari-app/cari-quizzies-sub001/internal/navigation"
	"github.com/Cari-app/cari-quizzies-sub001/internal/render"
	"github.com/Cari-app/cari-quizzies-sub001/internal/repositories"
	"github.com/Cari-app/cari-quizzies-sub001/internal/templating"
	"github.com/Cari-app/cari-quizzies-sub001/internal/utils"
)

type playerService struct {
	repo      repositories.Repository
	sessions  cache.SessionStore
	publisher events.EventPublisher
	scheduler Scheduler
	clock     Clock
	logger    *slog.Logger

	mu          sync.Mutex
	subscribers map[string][]chan AdvanceResult
}

func NewPlayerService(
	repo repositories.Repository,
	sessions cache.SessionStore,
	publisher events.EventPublisher,
	scheduler Scheduler,
	clock Clock,
	logger *slog.Logger,
) PlayerService {
	return &playerService{
		repo:        repo,
		sessions:    sessions,
		publisher:   publisher,
		scheduler:   scheduler,
		clock:       clock,
		logger:      logger,
		subscribers: make(map[string][]chan AdvanceResult),
	}
}

// ===== SESSION LIFECYCLE =====

func (s *playerService) StartSession(ctx context.Context, quizID string) (*models.Session, error) {
	quiz, err := s.repo.Quiz().GetByIDWithStages(ctx, quizID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}
	if quiz.Status != models.QuizPublished {
		return nil, ErrQuizNotPublished
	}
	if len(quiz.Stages) == 0 {
		return nil, ErrQuizHasNoStages
	}

	session := models.NewSession(quizID, quiz.Stages[0].ID)
	session.StageEnteredAt = s.clock.Now()
	session.CreatedAt = session.StageEnteredAt

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	s.logger.Info("Session started", "session_id", session.ID, "quiz_id", quizID)

	s.enterStage(ctx, session, &quiz.Stages[0])
	return session, nil
}

func (s *playerService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// ===== RENDERING =====

func (s *playerService) RenderStage(ctx context.Context, stageID string, surface render.Surface, sessionID string) (string, error) {
	stage, err := s.repo.Quiz().GetStage(ctx, stageID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return "", ErrStageNotFound
		}
		return "", fmt.Errorf("failed to get stage: %w", err)
	}

	renderCtx := render.Context{Surface: surface}
	if sessionID != "" {
		session, err := s.GetSession(ctx, sessionID)
		if err != nil {
			return "", err
		}
		renderCtx.State = templating.MapState(session.Fields)
	}

	html, err := render.RenderStage(renderCtx, stage)
	if err != nil {
		return "", fmt.Errorf("failed to render stage: %w", err)
	}
	return html, nil
}

// ===== ANSWERS =====

func (s *playerService) RecordAnswer(ctx context.Context, sessionID string, req *AnswerRequest) (*models.Session, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Submitted {
		return nil, ErrSessionAlreadySubmitted
	}

	component, _, err := s.findComponent(ctx, session.CurrentStageID, req.ComponentID)
	if err != nil {
		return nil, err
	}
	def, ok := components.Lookup(component.Type)
	if !ok || !def.CollectsResponse {
		return nil, ErrAnswerNotCollectable
	}

	// Last write wins per response key.
	session.Fields[component.ResponseKey()] = req.Value
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}

// ===== NAVIGATION =====

func (s *playerService) Advance(ctx context.Context, sessionID string, req *AdvanceRequest) (*AdvanceResult, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Submitted {
		return nil, ErrSessionAlreadySubmitted
	}

	trigger := navigation.Trigger{}
	if req.ComponentID != "" {
		component, _, err := s.findComponent(ctx, session.CurrentStageID, req.ComponentID)
		if err != nil {
			return nil, err
		}
		trigger, err = buildTrigger(component, req)
		if err != nil {
			return nil, err
		}
		// Multi-select components never navigate on selection alone.
		if req.Auto && isMultiSelect(component) {
			return &AdvanceResult{
				SessionID:  session.ID,
				Resolution: navigation.Resolution{Kind: navigation.KindStage, StageID: session.CurrentStageID},
			}, nil
		}
	}

	stageOrder, err := s.stageOrder(ctx, session.QuizID)
	if err != nil {
		return nil, err
	}
	resolution, _ := navigation.ResolveNext(trigger, stageOrder, session.CurrentStageID)
	return s.applyResolution(ctx, session, resolution)
}

func (s *playerService) Submit(ctx context.Context, sessionID string) (*models.Submission, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Submitted {
		return nil, ErrSessionAlreadySubmitted
	}
	result, err := s.applyResolution(ctx, session, navigation.Resolution{Kind: navigation.KindSubmit})
	if err != nil {
		return nil, err
	}
	return result.Submission, nil
}

// applyResolution commits a resolved navigation: link stays in place,
// stage moves the session, submit finalizes it. Timers for the departed
// stage are always cancelled before new ones are scheduled.
func (s *playerService) applyResolution(ctx context.Context, session *models.Session, resolution navigation.Resolution) (*AdvanceResult, error) {
	result := &AdvanceResult{SessionID: session.ID, Resolution: resolution}

	switch resolution.Kind {
	case navigation.KindLink:
		// Opens externally; the respondent stays on the current stage.
		return result, nil

	case navigation.KindStage:
		if resolution.StageID == session.CurrentStageID {
			return result, nil
		}
		s.scheduler.CancelPrefix(session.ID + ":")
		session.RecordVisit(s.clock.Now(), resolution.StageID)
		if err := s.sessions.Save(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to save session: %w", err)
		}
		stage, err := s.repo.Quiz().GetStage(ctx, resolution.StageID)
		if err != nil {
			return nil, fmt.Errorf("failed to get stage: %w", err)
		}
		s.enterStage(ctx, session, stage)
		return result, nil

	case navigation.KindSubmit:
		submission, err := s.finalize(ctx, session)
		if err != nil {
			return nil, err
		}
		result.Submitted = true
		result.Submission = submission
		return result, nil
	}
	return result, nil
}

// finalize closes the session: last visit recorded, submission persisted,
// hand-off event published, timers cancelled.
func (s *playerService) finalize(ctx context.Context, session *models.Session) (*models.Submission, error) {
	s.scheduler.CancelPrefix(session.ID + ":")
	session.RecordVisit(s.clock.Now(), "")
	session.Submitted = true

	fields, err := json.Marshal(session.Fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode fields: %w", err)
	}
	visits, err := json.Marshal(session.Visits)
	if err != nil {
		return nil, fmt.Errorf("failed to encode visits: %w", err)
	}
	submission := &models.Submission{
		ID:          utils.NewID(),
		QuizID:      session.QuizID,
		SessionID:   session.ID,
		Fields:      fields,
		Visits:      visits,
		SubmittedAt: s.clock.Now(),
	}
	if err := s.repo.Submission().Create(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to persist submission: %w", err)
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	event := events.NewFlowSubmittedEvent(session.QuizID, session.ID, session.Fields.Clone(), session.Visits)
	if err := s.publisher.PublishWebhookEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish submission event", "session_id", session.ID, "error", err)
	}

	s.logger.Info("Session submitted", "session_id", session.ID, "quiz_id", session.QuizID)
	return submission, nil
}

// enterStage runs the side effects of arriving on a stage: the webhook
// trigger contract and timed component scheduling.
func (s *playerService) enterStage(ctx context.Context, session *models.Session, stage *models.Stage) {
	if stage.WebhookActive {
		event := events.NewWebhookTriggerEvent(
			session.QuizID, session.ID, stage.ID,
			stage.WebhookDescription, session.Fields.Clone())
		if err := s.publisher.PublishWebhookEvent(ctx, event); err != nil {
			s.logger.Error("Failed to publish webhook trigger",
				"session_id", session.ID, "stage_id", stage.ID, "error", err)
		}
	}
	s.scheduleTimers(session, stage)
}

// scheduleTimers arms one timer per timed component whose navigation is
// configured. Keys embed the session, stage and component ids so a fire
// can verify the respondent is still where the timer was set.
func (s *playerService) scheduleTimers(session *models.Session, stage *models.Stage) {
	list, err := models.StageComponents(stage)
	if err != nil {
		s.logger.Error("Failed to decode stage components", "stage_id", stage.ID, "error", err)
		return
	}
	for _, component := range list {
		if component.Config == nil {
			continue
		}
		var (
			seconds int
			nav     models.TimedNavigation
		)
		switch cfg := component.Config.Normalized().(type) {
		case *models.TimerConfig:
			seconds, nav = cfg.TimerDuration, cfg.TimerNavigation
		case *models.LoadingConfig:
			seconds, nav = cfg.LoadingDelay+cfg.LoadingDuration, cfg.LoadingNavigation
		case *models.LevelConfig:
			seconds, nav = cfg.LevelDuration, cfg.LevelNavigation
		default:
			continue
		}
		if nav == "" || nav == models.TimedNone {
			continue
		}
		key := timerKey(session.ID, stage.ID, component.ID)
		componentID := component.ID
		stageID := stage.ID
		sessionID := session.ID
		s.scheduler.Schedule(key, time.Duration(seconds)*time.Second, func() {
			s.fireTimer(sessionID, stageID, componentID)
		})
	}
}

// fireTimer runs when a timed component elapses. The advance is skipped
// if the session moved on or submitted in the meantime.
func (s *playerService) fireTimer(sessionID, stageID, componentID string) {
	ctx := context.Background()
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return
	}
	if session.Submitted || session.CurrentStageID != stageID {
		return
	}

	result, err := s.Advance(ctx, sessionID, &AdvanceRequest{ComponentID: componentID, Auto: true})
	if err != nil {
		s.logger.Error("Timed navigation failed",
			"session_id", sessionID, "component_id", componentID, "error", err)
		return
	}
	s.notify(sessionID, *result)
}

// ===== SUBSCRIPTIONS =====

func (s *playerService) SubscribeNavigation(sessionID string) (<-chan AdvanceResult, func()) {
	ch := make(chan AdvanceResult, 4)
	s.mu.Lock()
	s.subscribers[sessionID] = append(s.subscribers[sessionID], ch)
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		subs := s.subscribers[sessionID]
		for i, sub := range subs {
			if sub == ch {
				s.subscribers[sessionID] = append(subs[:i], subs[i+1:]...)
				close(ch)
				break
			}
		}
		if len(s.subscribers[sessionID]) == 0 {
			delete(s.subscribers, sessionID)
		}
	}
	return ch, cancel
}

func (s *playerService) notify(sessionID string, result AdvanceResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subscribers[sessionID] {
		select {
		case ch <- result:
		default:
			// Slow subscribers drop events rather than block the timer.
		}
	}
}

// ===== HELPERS =====

func (s *playerService) findComponent(ctx context.Context, stageID, componentID string) (*models.Component, *models.Stage, error) {
	stage, err := s.repo.Quiz().GetStage(ctx, stageID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, nil, ErrStageNotFound
		}
		return nil, nil, fmt.Errorf("failed to get stage: %w", err)
	}
	list, err := models.StageComponents(stage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode components: %w", err)
	}
	for i := range list {
		if list[i].ID == componentID {
			return &list[i], stage, nil
		}
	}
	// Yes/no synthesizes option ids from the component id.
	if idx := strings.IndexByte(componentID, ':'); idx > 0 {
		base := componentID[:idx]
		for i := range list {
			if list[i].ID == base {
				return &list[i], stage, nil
			}
		}
	}
	return nil, nil, ErrComponentNotFound
}

func (s *playerService) stageOrder(ctx context.Context, quizID string) ([]string, error) {
	stages, err := s.repo.Quiz().GetStagesByQuiz(ctx, quizID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stages: %w", err)
	}
	order := make([]string, len(stages))
	for i, stage := range stages {
		order[i] = stage.ID
	}
	return order, nil
}

func timerKey(sessionID, stageID, componentID string) string {
	return sessionID + ":" + stageID + ":" + componentID
}

// buildTrigger maps the completed component and the chosen branch onto a
// navigation trigger.
func buildTrigger(component *models.Component, req *AdvanceRequest) (navigation.Trigger, error) {
	if component.Config == nil {
		return navigation.Trigger{}, nil
	}
	switch cfg := component.Config.Normalized().(type) {
	case *models.ButtonConfig:
		return navigation.ButtonTrigger(cfg.ButtonAction, cfg.ButtonLink), nil
	case *models.PriceConfig:
		return navigation.ButtonTrigger(cfg.ButtonAction, cfg.ButtonLink), nil
	case *models.OptionsConfig:
		return optionTrigger(cfg.Options, req.OptionID), nil
	case *models.ImageOptionsConfig:
		return optionTrigger(cfg.Options, req.OptionID), nil
	case *models.YesNoConfig:
		if strings.HasSuffix(req.OptionID, ":no") || req.OptionID == "no" {
			return navigation.OptionTrigger(cfg.NoDestination, cfg.NoDestinationStageID), nil
		}
		return navigation.OptionTrigger(cfg.YesDestination, cfg.YesDestinationStageID), nil
	case *models.TimerConfig:
		return navigation.TimedTrigger(cfg.TimerNavigation, cfg.TimerDestinationID, cfg.TimerDestinationURL), nil
	case *models.LoadingConfig:
		return navigation.TimedTrigger(cfg.LoadingNavigation, cfg.LoadingDestinationID, cfg.LoadingDestinationURL), nil
	case *models.LevelConfig:
		return navigation.TimedTrigger(cfg.LevelNavigation, cfg.LevelDestinationID, cfg.LevelDestinationURL), nil
	}
	return navigation.Trigger{}, nil
}

func optionTrigger(options []models.OptionItem, optionID string) navigation.Trigger {
	for _, opt := range options {
		if opt.ID == optionID {
			return navigation.OptionTrigger(opt.Destination, opt.DestinationStageID)
		}
	}
	return navigation.Trigger{}
}

func isMultiSelect(component *models.Component) bool {
	switch cfg := component.Config.Normalized().(type) {
	case *models.OptionsConfig:
		return cfg.AllowMultiple
	case *models.ImageOptionsConfig:
		return cfg.AllowMultiple
	}
	return false
}
