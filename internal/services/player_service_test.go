package services

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/Cari-app/cari-quizzies-sub001/internal/cache"
	"github.com/Cari-app/cari-quizzies-sub001/internal/events"
	"github.com/Cari-app/cari-quizzies-sub001/internal/models"
	"github.com/Cari-app/cari-quizzies-sub001/internal/navigation"
	"github.com/Cari-app/cari-quizzies-sub001/internal/repositories"
)

// ===== TEST DOUBLES =====

// stubRepository keeps quizzes, stages and submissions in memory.
type stubRepository struct {
	mu          sync.Mutex
	quizzes     map[string]*models.Quiz
	stages      map[string]*models.Stage
	submissions []*models.Submission
}

func newStubRepository() *stubRepository {
	return &stubRepository{
		quizzes: map[string]*models.Quiz{},
		stages:  map[string]*models.Stage{},
	}
}

func (r *stubRepository) Quiz() repositories.QuizRepository             { return (*stubQuizRepo)(r) }
func (r *stubRepository) Submission() repositories.SubmissionRepository { return (*stubSubmissionRepo)(r) }

type stubQuizRepo stubRepository

func (r *stubQuizRepo) Create(_ context.Context, quiz *models.Quiz) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quizzes[quiz.ID] = quiz
	return nil
}

func (r *stubQuizRepo) GetByID(_ context.Context, id string) (*models.Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	quiz, ok := r.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return quiz, nil
}

func (r *stubQuizRepo) GetByIDWithStages(ctx context.Context, id string) (*models.Quiz, error) {
	quiz, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	stages, _ := r.GetStagesByQuiz(ctx, id)
	quiz.Stages = nil
	for _, stage := range stages {
		quiz.Stages = append(quiz.Stages, *stage)
	}
	return quiz, nil
}

func (r *stubQuizRepo) Update(_ context.Context, quiz *models.Quiz) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quizzes[quiz.ID] = quiz
	return nil
}

func (r *stubQuizRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.quizzes, id)
	return nil
}

func (r *stubQuizRepo) List(_ context.Context, _ repositories.QuizFilters) ([]*models.Quiz, int64, error) {
	return nil, 0, nil
}

func (r *stubQuizRepo) UpdateStatus(_ context.Context, id string, status models.QuizStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	quiz, ok := r.quizzes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	quiz.Status = status
	return nil
}

func (r *stubQuizRepo) CreateStage(_ context.Context, stage *models.Stage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if stage.Position == 0 {
		stage.Position = len(r.stages) + 1
	}
	r.stages[stage.ID] = stage
	return nil
}

func (r *stubQuizRepo) GetStage(_ context.Context, id string) (*models.Stage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stage, ok := r.stages[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return stage, nil
}

func (r *stubQuizRepo) GetStagesByQuiz(_ context.Context, quizID string) ([]*models.Stage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var stages []*models.Stage
	for _, stage := range r.stages {
		if stage.QuizID == quizID {
			stages = append(stages, stage)
		}
	}
	for i := 0; i < len(stages); i++ {
		for j := i + 1; j < len(stages); j++ {
			if stages[j].Position < stages[i].Position {
				stages[i], stages[j] = stages[j], stages[i]
			}
		}
	}
	return stages, nil
}

func (r *stubQuizRepo) UpdateStage(_ context.Context, stage *models.Stage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stages[stage.ID] = stage
	return nil
}

func (r *stubQuizRepo) DeleteStage(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.stages, id)
	return nil
}

func (r *stubQuizRepo) ReorderStages(_ context.Context, quizID string, stageIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, id := range stageIDs {
		if stage, ok := r.stages[id]; ok && stage.QuizID == quizID {
			stage.Position = i + 1
		}
	}
	return nil
}

type stubSubmissionRepo stubRepository

func (r *stubSubmissionRepo) Create(_ context.Context, submission *models.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submissions = append(r.submissions, submission)
	return nil
}

func (r *stubSubmissionRepo) GetByID(_ context.Context, id string) (*models.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, submission := range r.submissions {
		if submission.ID == id {
			return submission, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSubmissionRepo) GetByQuiz(_ context.Context, filters repositories.SubmissionFilters) ([]*models.Submission, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Submission
	for _, submission := range r.submissions {
		if submission.QuizID == filters.QuizID {
			out = append(out, submission)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubSubmissionRepo) CountByQuiz(_ context.Context, quizID string) (int64, error) {
	out, total, _ := r.GetByQuiz(context.Background(), repositories.SubmissionFilters{QuizID: quizID})
	_ = out
	return total, nil
}

// fakeClock advances only when told to.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fakeScheduler records pending callbacks and fires them on demand.
type fakeScheduler struct {
	mu      sync.Mutex
	pending map[string]scheduledEntry
}

type scheduledEntry struct {
	delay time.Duration
	fn    func()
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{pending: map[string]scheduledEntry{}}
}

func (s *fakeScheduler) Schedule(key string, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[key] = scheduledEntry{delay: delay, fn: fn}
}

func (s *fakeScheduler) Cancel(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, key)
}

func (s *fakeScheduler) CancelPrefix(prefix string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.pending {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(s.pending, key)
		}
	}
}

// Fire runs and removes every pending callback, simulating elapsed timers.
func (s *fakeScheduler) Fire() int {
	s.mu.Lock()
	entries := make([]func(), 0, len(s.pending))
	for key, entry := range s.pending {
		entries = append(entries, entry.fn)
		delete(s.pending, key)
	}
	s.mu.Unlock()
	for _, fn := range entries {
		fn()
	}
	return len(entries)
}

func (s *fakeScheduler) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// ===== FIXTURE =====

type playerFixture struct {
	repo      *stubRepository
	publisher *events.MockEventPublisher
	scheduler *fakeScheduler
	clock     *fakeClock
	service   PlayerService
}

func newPlayerFixture(t *testing.T) *playerFixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	repo := newStubRepository()
	publisher := events.NewMockEventPublisher(logger)
	scheduler := newFakeScheduler()
	clock := newFakeClock()
	service := NewPlayerService(repo, cache.NewMemorySessionStore(), publisher, scheduler, clock, logger)
	return &playerFixture{
		repo:      repo,
		publisher: publisher,
		scheduler: scheduler,
		clock:     clock,
		service:   service,
	}
}

func (f *playerFixture) seedQuiz(t *testing.T, stages ...*models.Stage) *models.Quiz {
	t.Helper()
	ctx := context.Background()
	quiz := &models.Quiz{ID: "quiz-1", Title: "Funnel", Status: models.QuizPublished, CreatedBy: "u1"}
	assert.NoError(t, f.repo.Quiz().Create(ctx, quiz))
	for i, stage := range stages {
		stage.QuizID = quiz.ID
		stage.Position = i + 1
		assert.NoError(t, f.repo.Quiz().CreateStage(ctx, stage))
	}
	return quiz
}

func stageWith(t *testing.T, id string, components ...models.Component) *models.Stage {
	t.Helper()
	stage := &models.Stage{ID: id}
	assert.NoError(t, stage.SetComponents(components))
	return stage
}

// ===== TESTS =====

func TestStartSession_PositionsAtFirstStage(t *testing.T) {
	f := newPlayerFixture(t)
	f.seedQuiz(t, stageWith(t, "s1"), stageWith(t, "s2"))

	session, err := f.service.StartSession(context.Background(), "quiz-1")

	assert.NoError(t, err)
	assert.Equal(t, "s1", session.CurrentStageID)
	assert.Empty(t, session.Fields)
	assert.False(t, session.Submitted)
}

func TestStartSession_RequiresPublishedQuiz(t *testing.T) {
	f := newPlayerFixture(t)
	quiz := &models.Quiz{ID: "quiz-1", Title: "Draft", Status: models.QuizDraft}
	assert.NoError(t, f.repo.Quiz().Create(context.Background(), quiz))

	_, err := f.service.StartSession(context.Background(), "quiz-1")
	assert.ErrorIs(t, err, ErrQuizNotPublished)
}

func TestStartSession_PublishesWebhookForActiveFirstStage(t *testing.T) {
	f := newPlayerFixture(t)
	stage := stageWith(t, "s1")
	stage.WebhookActive = true
	stage.WebhookDescription = "lead capture"
	f.seedQuiz(t, stage)

	session, err := f.service.StartSession(context.Background(), "quiz-1")
	assert.NoError(t, err)

	published := f.publisher.GetPublishedEvents()
	assert.Len(t, published, 1)
	assert.Equal(t, events.EventWebhookTrigger, published[0].Type)
	assert.Equal(t, "s1", published[0].StageID)
	assert.Equal(t, session.ID, published[0].SessionID)
	assert.Equal(t, "lead capture", published[0].Description)
}

func TestRecordAnswer_LastWriteWins(t *testing.T) {
	f := newPlayerFixture(t)
	input := models.Component{
		ID: "c1", Type: models.TypeInput, CustomID: "first_name",
		Config: &models.InputConfig{Label: "Name"},
	}
	f.seedQuiz(t, stageWith(t, "s1", input))
	session, _ := f.service.StartSession(context.Background(), "quiz-1")

	_, err := f.service.RecordAnswer(context.Background(), session.ID, &AnswerRequest{ComponentID: "c1", Value: "Ana"})
	assert.NoError(t, err)
	updated, err := f.service.RecordAnswer(context.Background(), session.ID, &AnswerRequest{ComponentID: "c1", Value: "Beatriz"})
	assert.NoError(t, err)

	assert.Equal(t, "Beatriz", updated.Fields["first_name"])
	assert.Len(t, updated.Fields, 1)
}

func TestRecordAnswer_RejectsDisplayComponents(t *testing.T) {
	f := newPlayerFixture(t)
	title := models.Component{ID: "c1", Type: models.TypeTitle, Config: &models.TitleConfig{Text: "Hi"}}
	f.seedQuiz(t, stageWith(t, "s1", title))
	session, _ := f.service.StartSession(context.Background(), "quiz-1")

	_, err := f.service.RecordAnswer(context.Background(), session.ID, &AnswerRequest{ComponentID: "c1", Value: "x"})
	assert.ErrorIs(t, err, ErrAnswerNotCollectable)
}

func TestAdvance_OptionSpecificDestination(t *testing.T) {
	f := newPlayerFixture(t)
	options := models.Component{
		ID: "c1", Type: models.TypeOptions,
		Config: &models.OptionsConfig{Options: []models.OptionItem{
			{ID: "o1", Text: "A", Value: "a", Destination: models.DestinationSpecific, DestinationStageID: "s3"},
			{ID: "o2", Text: "B", Value: "b"},
		}},
	}
	f.seedQuiz(t, stageWith(t, "s1", options), stageWith(t, "s2"), stageWith(t, "s3"))
	session, _ := f.service.StartSession(context.Background(), "quiz-1")

	result, err := f.service.Advance(context.Background(), session.ID, &AdvanceRequest{ComponentID: "c1", OptionID: "o1"})

	assert.NoError(t, err)
	assert.Equal(t, navigation.KindStage, result.Resolution.Kind)
	assert.Equal(t, "s3", result.Resolution.StageID)

	reloaded, _ := f.service.GetSession(context.Background(), session.ID)
	assert.Equal(t, "s3", reloaded.CurrentStageID)
}

func TestAdvance_MultiSelectNeverAutoAdvances(t *testing.T) {
	f := newPlayerFixture(t)
	multi := models.Component{
		ID: "c1", Type: models.TypeOptions,
		Config: &models.OptionsConfig{
			AllowMultiple: true,
			AutoAdvance:   true,
			Options:       []models.OptionItem{{ID: "o1", Text: "A", Value: "a"}},
		},
	}
	f.seedQuiz(t, stageWith(t, "s1", multi), stageWith(t, "s2"))
	session, _ := f.service.StartSession(context.Background(), "quiz-1")

	result, err := f.service.Advance(context.Background(), session.ID, &AdvanceRequest{ComponentID: "c1", OptionID: "o1", Auto: true})

	assert.NoError(t, err)
	assert.Equal(t, "s1", result.Resolution.StageID)

	reloaded, _ := f.service.GetSession(context.Background(), session.ID)
	assert.Equal(t, "s1", reloaded.CurrentStageID)
}

func TestAdvance_MultiSelectImageOptionsNeverAutoAdvances(t *testing.T) {
	f := newPlayerFixture(t)
	multi := models.Component{
		ID: "c1", Type: models.TypeImageOptions,
		Config: &models.ImageOptionsConfig{
			AllowMultiple: true,
			AutoAdvance:   true,
			Options:       []models.OptionItem{{ID: "o1", Text: "A", Value: "a"}},
		},
	}
	f.seedQuiz(t, stageWith(t, "s1", multi), stageWith(t, "s2"))
	session, _ := f.service.StartSession(context.Background(), "quiz-1")

	result, err := f.service.Advance(context.Background(), session.ID, &AdvanceRequest{ComponentID: "c1", OptionID: "o1", Auto: true})

	assert.NoError(t, err)
	assert.Equal(t, "s1", result.Resolution.StageID)

	reloaded, _ := f.service.GetSession(context.Background(), session.ID)
	assert.Equal(t, "s1", reloaded.CurrentStageID)
}

func TestAdvance_LinkDoesNotMoveSession(t *testing.T) {
	f := newPlayerFixture(t)
	button := models.Component{
		ID: "c1", Type: models.TypeButton,
		Config: &models.ButtonConfig{ButtonAction: models.ActionLink, ButtonLink: "https://example.com"},
	}
	f.seedQuiz(t, stageWith(t, "s1", button), stageWith(t, "s2"))
	session, _ := f.service.StartSession(context.Background(), "quiz-1")

	result, err := f.service.Advance(context.Background(), session.ID, &AdvanceRequest{ComponentID: "c1"})

	assert.NoError(t, err)
	assert.Equal(t, navigation.KindLink, result.Resolution.Kind)
	assert.Equal(t, "https://example.com", result.Resolution.URL)

	reloaded, _ := f.service.GetSession(context.Background(), session.ID)
	assert.Equal(t, "s1", reloaded.CurrentStageID)
}

func TestAdvance_PastLastStageSubmits(t *testing.T) {
	f := newPlayerFixture(t)
	f.seedQuiz(t, stageWith(t, "s1"))
	session, _ := f.service.StartSession(context.Background(), "quiz-1")

	result, err := f.service.Advance(context.Background(), session.ID, &AdvanceRequest{})

	assert.NoError(t, err)
	assert.True(t, result.Submitted)
	assert.NotNil(t, result.Submission)
	assert.Len(t, f.repo.submissions, 1)
}

func TestAdvance_RecordsStageVisitTiming(t *testing.T) {
	f := newPlayerFixture(t)
	f.seedQuiz(t, stageWith(t, "s1"), stageWith(t, "s2"))
	session, _ := f.service.StartSession(context.Background(), "quiz-1")

	f.clock.Advance(7 * time.Second)
	_, err := f.service.Advance(context.Background(), session.ID, &AdvanceRequest{})
	assert.NoError(t, err)

	reloaded, _ := f.service.GetSession(context.Background(), session.ID)
	assert.Len(t, reloaded.Visits, 1)
	assert.Equal(t, "s1", reloaded.Visits[0].StageID)
	assert.Equal(t, int64(7000), reloaded.Visits[0].TimeSpentMS)
}

func TestSubmit_PublishesHandoffEvent(t *testing.T) {
	f := newPlayerFixture(t)
	input := models.Component{
		ID: "c1", Type: models.TypeEmail, CustomID: "email",
		Config: &models.EmailConfig{},
	}
	f.seedQuiz(t, stageWith(t, "s1", input))
	session, _ := f.service.StartSession(context.Background(), "quiz-1")
	_, err := f.service.RecordAnswer(context.Background(), session.ID, &AnswerRequest{ComponentID: "c1", Value: "a@b.co"})
	assert.NoError(t, err)

	submission, err := f.service.Submit(context.Background(), session.ID)
	assert.NoError(t, err)
	assert.NotNil(t, submission)

	published := f.publisher.GetPublishedEvents()
	assert.Len(t, published, 1)
	assert.Equal(t, events.EventFlowSubmitted, published[0].Type)
	assert.Equal(t, "a@b.co", published[0].Fields["email"])
}

func TestSubmit_Twice(t *testing.T) {
	f := newPlayerFixture(t)
	f.seedQuiz(t, stageWith(t, "s1"))
	session, _ := f.service.StartSession(context.Background(), "quiz-1")

	_, err := f.service.Submit(context.Background(), session.ID)
	assert.NoError(t, err)
	_, err = f.service.Submit(context.Background(), session.ID)
	assert.ErrorIs(t, err, ErrSessionAlreadySubmitted)
}

// ===== TIMED NAVIGATION =====

func TestTimedComponent_SchedulesOnStageEntry(t *testing.T) {
	f := newPlayerFixture(t)
	loading := models.Component{
		ID: "c1", Type: models.TypeLoading,
		Config: &models.LoadingConfig{LoadingDuration: 3, LoadingNavigation: models.TimedNext},
	}
	f.seedQuiz(t, stageWith(t, "s1", loading), stageWith(t, "s2"))

	_, err := f.service.StartSession(context.Background(), "quiz-1")

	assert.NoError(t, err)
	assert.Equal(t, 1, f.scheduler.PendingCount())
}

func TestTimedComponent_NoneNavigationSchedulesNothing(t *testing.T) {
	f := newPlayerFixture(t)
	timer := models.Component{
		ID: "c1", Type: models.TypeTimer,
		Config: &models.TimerConfig{TimerDuration: 60},
	}
	f.seedQuiz(t, stageWith(t, "s1", timer))

	_, err := f.service.StartSession(context.Background(), "quiz-1")

	assert.NoError(t, err)
	assert.Equal(t, 0, f.scheduler.PendingCount())
}

func TestTimedComponent_FiresExactlyOnce(t *testing.T) {
	f := newPlayerFixture(t)
	loading := models.Component{
		ID: "c1", Type: models.TypeLoading,
		Config: &models.LoadingConfig{LoadingDuration: 3, LoadingNavigation: models.TimedNext},
	}
	f.seedQuiz(t, stageWith(t, "s1", loading), stageWith(t, "s2"))
	session, _ := f.service.StartSession(context.Background(), "quiz-1")

	fired := f.scheduler.Fire()
	assert.Equal(t, 1, fired)

	reloaded, _ := f.service.GetSession(context.Background(), session.ID)
	assert.Equal(t, "s2", reloaded.CurrentStageID)

	// Nothing left to fire; the session stays put.
	assert.Equal(t, 0, f.scheduler.Fire())
	reloaded, _ = f.service.GetSession(context.Background(), session.ID)
	assert.Equal(t, "s2", reloaded.CurrentStageID)
}

func TestTimedComponent_CancelledByManualNavigation(t *testing.T) {
	f := newPlayerFixture(t)
	loading := models.Component{
		ID: "c1", Type: models.TypeLoading,
		Config: &models.LoadingConfig{LoadingDuration: 3, LoadingNavigation: models.TimedNext},
	}
	button := models.Component{
		ID: "c2", Type: models.TypeButton,
		Config: &models.ButtonConfig{ButtonAction: models.ActionNext},
	}
	f.seedQuiz(t, stageWith(t, "s1", loading, button), stageWith(t, "s2"), stageWith(t, "s3"))
	session, _ := f.service.StartSession(context.Background(), "quiz-1")
	assert.Equal(t, 1, f.scheduler.PendingCount())

	_, err := f.service.Advance(context.Background(), session.ID, &AdvanceRequest{ComponentID: "c2"})
	assert.NoError(t, err)

	// The stale timer was cancelled on stage exit.
	assert.Equal(t, 0, f.scheduler.PendingCount())
}

func TestTimedComponent_StaleFireIgnored(t *testing.T) {
	f := newPlayerFixture(t)
	loading := models.Component{
		ID: "c1", Type: models.TypeLoading,
		Config: &models.LoadingConfig{LoadingDuration: 3, LoadingNavigation: models.TimedNext},
	}
	f.seedQuiz(t, stageWith(t, "s1", loading), stageWith(t, "s2"), stageWith(t, "s3"))
	session, _ := f.service.StartSession(context.Background(), "quiz-1")

	// Capture the armed callback, then navigate away manually.
	var stale func()
	f.scheduler.mu.Lock()
	for _, entry := range f.scheduler.pending {
		stale = entry.fn
	}
	f.scheduler.mu.Unlock()
	_, err := f.service.Advance(context.Background(), session.ID, &AdvanceRequest{})
	assert.NoError(t, err)

	stale()

	reloaded, _ := f.service.GetSession(context.Background(), session.ID)
	assert.Equal(t, "s2", reloaded.CurrentStageID)
}

func TestTimedComponent_SubmitNavigation(t *testing.T) {
	f := newPlayerFixture(t)
	level := models.Component{
		ID: "c1", Type: models.TypeLevel,
		Config: &models.LevelConfig{LevelDuration: 2, LevelNavigation: models.TimedSubmit},
	}
	f.seedQuiz(t, stageWith(t, "s1", level))
	session, _ := f.service.StartSession(context.Background(), "quiz-1")

	updates, cancel := f.service.SubscribeNavigation(session.ID)
	defer cancel()

	assert.Equal(t, 1, f.scheduler.Fire())

	select {
	case result := <-updates:
		assert.True(t, result.Submitted)
	default:
		t.Fatal("expected a navigation event for the subscriber")
	}

	reloaded, _ := f.service.GetSession(context.Background(), session.ID)
	assert.True(t, reloaded.Submitted)
	assert.Len(t, f.repo.submissions, 1)
}

func TestRenderStage_LiveUsesSessionState(t *testing.T) {
	f := newPlayerFixture(t)
	input := models.Component{
		ID: "c1", Type: models.TypeInput, CustomID: "name",
		Config: &models.InputConfig{Label: "Name"},
	}
	title := models.Component{
		ID: "c2", Type: models.TypeTitle,
		Config: &models.TitleConfig{Text: "Hi {{name}}"},
	}
	f.seedQuiz(t, stageWith(t, "s1", input, title))
	session, _ := f.service.StartSession(context.Background(), "quiz-1")
	_, err := f.service.RecordAnswer(context.Background(), session.ID, &AnswerRequest{ComponentID: "c1", Value: "Ana"})
	assert.NoError(t, err)

	html, err := f.service.RenderStage(context.Background(), "s1", "live", session.ID)
	assert.NoError(t, err)
	assert.Contains(t, html, "Hi Ana")

	// Without a session the token resolves to empty.
	html, err = f.service.RenderStage(context.Background(), "s1", "preview", "")
	assert.NoError(t, err)
	assert.Contains(t, html, "Hi ")
	assert.NotContains(t, html, "{{name}}")
}
