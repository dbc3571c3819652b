package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Cari-app/cari-quizzies-sub001/internal/models"
	"github.com/Cari-app/cari-quizzies-sub001/internal/utils"
)

type builderFixture struct {
	repo    *stubRepository
	service BuilderService
}

func newBuilderFixture(t *testing.T) *builderFixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	repo := newStubRepository()
	return &builderFixture{
		repo:    repo,
		service: NewBuilderService(repo, logger, utils.NewValidator()),
	}
}

func (f *builderFixture) seedStage(t *testing.T, components ...models.Component) (*models.Quiz, *models.Stage) {
	t.Helper()
	ctx := context.Background()
	quiz, err := f.service.CreateQuiz(ctx, &CreateQuizRequest{Title: "Funnel"}, "u1")
	assert.NoError(t, err)
	stage, err := f.service.AddStage(ctx, quiz.ID, &CreateStageRequest{Title: "Step 1"})
	assert.NoError(t, err)
	if len(components) > 0 {
		assert.NoError(t, stage.SetComponents(components))
		assert.NoError(t, f.repo.Quiz().UpdateStage(ctx, stage))
	}
	return quiz, stage
}

func componentIDs(t *testing.T, f *builderFixture, stageID string) []string {
	t.Helper()
	stage, err := f.service.GetStage(context.Background(), stageID)
	assert.NoError(t, err)
	list, err := stage.ComponentList()
	assert.NoError(t, err)
	ids := make([]string, len(list))
	for i, c := range list {
		ids[i] = c.ID
	}
	return ids
}

func TestCreateQuiz_StartsAsDraft(t *testing.T) {
	f := newBuilderFixture(t)

	quiz, err := f.service.CreateQuiz(context.Background(), &CreateQuizRequest{Title: "Onboarding"}, "u1")

	assert.NoError(t, err)
	assert.NotEmpty(t, quiz.ID)
	assert.Equal(t, "u1", quiz.CreatedBy)
}

func TestCreateQuiz_RequiresTitle(t *testing.T) {
	f := newBuilderFixture(t)

	_, err := f.service.CreateQuiz(context.Background(), &CreateQuizRequest{}, "u1")
	assert.Error(t, err)
}

func TestUpdateQuiz_ArchivedIsReadOnly(t *testing.T) {
	f := newBuilderFixture(t)
	quiz, _ := f.seedStage(t)
	assert.NoError(t, f.repo.Quiz().UpdateStatus(context.Background(), quiz.ID, models.QuizArchived))

	title := "New title"
	_, err := f.service.UpdateQuiz(context.Background(), quiz.ID, &UpdateQuizRequest{Title: &title})
	assert.ErrorIs(t, err, ErrQuizNotEditable)
}

func TestPublish_RequiresAtLeastOneStage(t *testing.T) {
	f := newBuilderFixture(t)
	quiz, err := f.service.CreateQuiz(context.Background(), &CreateQuizRequest{Title: "Empty"}, "u1")
	assert.NoError(t, err)

	err = f.service.UpdateQuizStatus(context.Background(), quiz.ID, models.QuizPublished)

	var ruleErr *BusinessRuleError
	assert.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, "publish_requires_stages", ruleErr.Rule)
}

func TestPublish_SucceedsWithStages(t *testing.T) {
	f := newBuilderFixture(t)
	quiz, _ := f.seedStage(t)

	err := f.service.UpdateQuizStatus(context.Background(), quiz.ID, models.QuizPublished)
	assert.NoError(t, err)

	reloaded, err := f.service.GetQuiz(context.Background(), quiz.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.QuizPublished, reloaded.Status)
}

// ===== COMPONENT EDITING =====

func TestAddComponent_AppendsByDefault(t *testing.T) {
	f := newBuilderFixture(t)
	_, stage := f.seedStage(t)
	ctx := context.Background()

	first, err := f.service.AddComponent(ctx, stage.ID, &AddComponentRequest{Type: models.TypeTitle})
	assert.NoError(t, err)
	second, err := f.service.AddComponent(ctx, stage.ID, &AddComponentRequest{Type: models.TypeButton})
	assert.NoError(t, err)

	assert.Equal(t, []string{first.ID, second.ID}, componentIDs(t, f, stage.ID))
}

func TestAddComponent_InsertsAtPosition(t *testing.T) {
	f := newBuilderFixture(t)
	_, stage := f.seedStage(t)
	ctx := context.Background()

	first, _ := f.service.AddComponent(ctx, stage.ID, &AddComponentRequest{Type: models.TypeTitle})
	second, _ := f.service.AddComponent(ctx, stage.ID, &AddComponentRequest{Type: models.TypeText})
	pos := 1
	inserted, err := f.service.AddComponent(ctx, stage.ID, &AddComponentRequest{Type: models.TypeButton, Position: &pos})
	assert.NoError(t, err)

	assert.Equal(t, []string{first.ID, inserted.ID, second.ID}, componentIDs(t, f, stage.ID))
}

func TestAddComponent_UnknownTypeRejected(t *testing.T) {
	f := newBuilderFixture(t)
	_, stage := f.seedStage(t)

	_, err := f.service.AddComponent(context.Background(), stage.ID, &AddComponentRequest{Type: "holograph"})
	assert.Error(t, err)
}

func TestUpdateComponent_AppliesConfig(t *testing.T) {
	f := newBuilderFixture(t)
	_, stage := f.seedStage(t)
	ctx := context.Background()

	component, _ := f.service.AddComponent(ctx, stage.ID, &AddComponentRequest{Type: models.TypeTitle})

	updated, err := f.service.UpdateComponent(ctx, stage.ID, component.ID, &UpdateComponentRequest{
		Config: json.RawMessage(`{"text":"Welcome","level":1}`),
	})

	assert.NoError(t, err)
	cfg, ok := updated.Config.(*models.TitleConfig)
	assert.True(t, ok)
	assert.Equal(t, "Welcome", cfg.Text)
	assert.Equal(t, 1, cfg.Level)
}

func TestUpdateComponent_MalformedConfigRejected(t *testing.T) {
	f := newBuilderFixture(t)
	_, stage := f.seedStage(t)
	ctx := context.Background()

	component, _ := f.service.AddComponent(ctx, stage.ID, &AddComponentRequest{Type: models.TypeTitle})

	_, err := f.service.UpdateComponent(ctx, stage.ID, component.ID, &UpdateComponentRequest{
		Config: json.RawMessage(`{"text":`),
	})
	assert.Error(t, err)
}

func TestUpdateComponent_CustomIDCollisionGetsSuffix(t *testing.T) {
	f := newBuilderFixture(t)
	_, stage := f.seedStage(t)
	ctx := context.Background()

	first, _ := f.service.AddComponent(ctx, stage.ID, &AddComponentRequest{Type: models.TypeInput})
	second, _ := f.service.AddComponent(ctx, stage.ID, &AddComponentRequest{Type: models.TypeInput})
	third, _ := f.service.AddComponent(ctx, stage.ID, &AddComponentRequest{Type: models.TypeInput})

	wanted := "first_name"
	updated, err := f.service.UpdateComponent(ctx, stage.ID, first.ID, &UpdateComponentRequest{CustomID: &wanted})
	assert.NoError(t, err)
	assert.Equal(t, "first_name", updated.CustomID)

	updated, err = f.service.UpdateComponent(ctx, stage.ID, second.ID, &UpdateComponentRequest{CustomID: &wanted})
	assert.NoError(t, err)
	assert.Equal(t, "first_name_2", updated.CustomID)

	updated, err = f.service.UpdateComponent(ctx, stage.ID, third.ID, &UpdateComponentRequest{CustomID: &wanted})
	assert.NoError(t, err)
	assert.Equal(t, "first_name_3", updated.CustomID)
}

func TestUpdateComponent_ClearingCustomIDAlwaysAllowed(t *testing.T) {
	f := newBuilderFixture(t)
	_, stage := f.seedStage(t)
	ctx := context.Background()

	component, _ := f.service.AddComponent(ctx, stage.ID, &AddComponentRequest{Type: models.TypeInput})
	wanted := "email"
	_, err := f.service.UpdateComponent(ctx, stage.ID, component.ID, &UpdateComponentRequest{CustomID: &wanted})
	assert.NoError(t, err)

	empty := ""
	updated, err := f.service.UpdateComponent(ctx, stage.ID, component.ID, &UpdateComponentRequest{CustomID: &empty})
	assert.NoError(t, err)
	assert.Equal(t, "", updated.CustomID)
}

func TestMoveComponent_ClampsPosition(t *testing.T) {
	f := newBuilderFixture(t)
	_, stage := f.seedStage(t)
	ctx := context.Background()

	first, _ := f.service.AddComponent(ctx, stage.ID, &AddComponentRequest{Type: models.TypeTitle})
	second, _ := f.service.AddComponent(ctx, stage.ID, &AddComponentRequest{Type: models.TypeText})
	third, _ := f.service.AddComponent(ctx, stage.ID, &AddComponentRequest{Type: models.TypeButton})

	assert.NoError(t, f.service.MoveComponent(ctx, stage.ID, first.ID, 99))
	assert.Equal(t, []string{second.ID, third.ID, first.ID}, componentIDs(t, f, stage.ID))

	assert.NoError(t, f.service.MoveComponent(ctx, stage.ID, first.ID, 0))
	assert.Equal(t, []string{first.ID, second.ID, third.ID}, componentIDs(t, f, stage.ID))
}

func TestDuplicateComponent_InsertsAfterOriginal(t *testing.T) {
	f := newBuilderFixture(t)
	_, stage := f.seedStage(t)
	ctx := context.Background()

	first, _ := f.service.AddComponent(ctx, stage.ID, &AddComponentRequest{Type: models.TypeOptions})
	second, _ := f.service.AddComponent(ctx, stage.ID, &AddComponentRequest{Type: models.TypeButton})

	duplicate, err := f.service.DuplicateComponent(ctx, stage.ID, first.ID)
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, duplicate.ID)
	assert.Equal(t, models.TypeOptions, duplicate.Type)
	assert.Equal(t, []string{first.ID, duplicate.ID, second.ID}, componentIDs(t, f, stage.ID))
}

func TestRemoveComponent(t *testing.T) {
	f := newBuilderFixture(t)
	_, stage := f.seedStage(t)
	ctx := context.Background()

	component, _ := f.service.AddComponent(ctx, stage.ID, &AddComponentRequest{Type: models.TypeTitle})
	assert.NoError(t, f.service.RemoveComponent(ctx, stage.ID, component.ID))
	assert.Empty(t, componentIDs(t, f, stage.ID))

	err := f.service.RemoveComponent(ctx, stage.ID, component.ID)
	assert.ErrorIs(t, err, ErrComponentNotFound)
}

// ===== STAGE REORDERING =====

func TestReorderStages_RejectsPartialList(t *testing.T) {
	f := newBuilderFixture(t)
	quiz, stage := f.seedStage(t)
	_, err := f.service.AddStage(context.Background(), quiz.ID, &CreateStageRequest{Title: "Step 2"})
	assert.NoError(t, err)

	err = f.service.ReorderStages(context.Background(), quiz.ID, []string{stage.ID})
	assert.Error(t, err)
}

// ===== VALIDATION =====

func TestValidateQuiz_FlagsDanglingDestination(t *testing.T) {
	f := newBuilderFixture(t)
	quiz, _ := f.seedStage(t, models.Component{
		ID: "c1", Type: models.TypeOptions,
		Config: &models.OptionsConfig{Options: []models.OptionItem{
			{ID: "o1", Text: "A", Value: "a", Destination: models.DestinationSpecific, DestinationStageID: "gone"},
		}},
	})

	warnings, err := f.service.ValidateQuiz(context.Background(), quiz.ID)
	assert.NoError(t, err)
	assert.Len(t, warnings, 1)
	assert.Equal(t, "dangling_destination", warnings[0].Code)
}

func TestValidateQuiz_FlagsEmptyOptions(t *testing.T) {
	f := newBuilderFixture(t)
	quiz, _ := f.seedStage(t, models.Component{
		ID: "c1", Type: models.TypeOptions, Config: &models.OptionsConfig{},
	})

	warnings, err := f.service.ValidateQuiz(context.Background(), quiz.ID)
	assert.NoError(t, err)
	assert.Len(t, warnings, 1)
	assert.Equal(t, "empty_options", warnings[0].Code)
}

func TestValidateQuiz_FlagsDuplicateResponseKeys(t *testing.T) {
	f := newBuilderFixture(t)
	quiz, _ := f.seedStage(t,
		models.Component{ID: "c1", Type: models.TypeInput, CustomID: "email", Config: &models.InputConfig{}},
		models.Component{ID: "c2", Type: models.TypeEmail, CustomID: "email", Config: &models.EmailConfig{}},
	)

	warnings, err := f.service.ValidateQuiz(context.Background(), quiz.ID)
	assert.NoError(t, err)
	assert.Len(t, warnings, 1)
	assert.Equal(t, "duplicate_response_key", warnings[0].Code)
}

func TestValidateQuiz_FlagsLinkButtonWithoutURL(t *testing.T) {
	f := newBuilderFixture(t)
	quiz, _ := f.seedStage(t, models.Component{
		ID: "c1", Type: models.TypeButton,
		Config: &models.ButtonConfig{ButtonAction: models.ActionLink},
	})

	warnings, err := f.service.ValidateQuiz(context.Background(), quiz.ID)
	assert.NoError(t, err)
	assert.Len(t, warnings, 1)
	assert.Equal(t, "empty_button_link", warnings[0].Code)
}

func TestValidateQuiz_CleanQuizHasNoWarnings(t *testing.T) {
	f := newBuilderFixture(t)
	quiz, _ := f.seedStage(t,
		models.Component{ID: "c1", Type: models.TypeTitle, Config: &models.TitleConfig{Text: "Hi"}},
		models.Component{ID: "c2", Type: models.TypeButton, Config: &models.ButtonConfig{ButtonAction: models.ActionNext}},
	)

	warnings, err := f.service.ValidateQuiz(context.Background(), quiz.ID)
	assert.NoError(t, err)
	assert.Empty(t, warnings)
}

// ===== PALETTE =====

func TestPalette_CoversEveryKnownType(t *testing.T) {
	f := newBuilderFixture(t)

	palette := f.service.Palette()
	assert.NotEmpty(t, palette)

	seen := map[models.ComponentType]bool{}
	for _, def := range palette {
		seen[def.Type] = true
		assert.NotEmpty(t, def.Label)
	}
	assert.True(t, seen[models.TypeTitle])
	assert.True(t, seen[models.TypeYesNo])
	assert.True(t, seen[models.TypeTimer])
}

func TestAddComponent_MissingStage(t *testing.T) {
	f := newBuilderFixture(t)

	_, err := f.service.AddComponent(context.Background(), "missing", &AddComponentRequest{Type: models.TypeTitle})
	assert.ErrorIs(t, err, ErrStageNotFound)
}
