package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Cari-app/cari-quizzies-sub001/internal/models"
	"github.com/Cari-app/cari-quizzies-sub001/internal/repositories"
	"github.com/Cari-app/cari-quizzies-sub001/internal/services"
	"github.com/Cari-app/cari-quizzies-sub001/internal/utils"
)

// BuilderHandler exposes the authoring surface: quizzes, stages and the
// per-stage component list.
type BuilderHandler struct {
	BaseHandler
	service services.BuilderService
}

func NewBuilderHandler(service services.BuilderService, logger utils.Logger) *BuilderHandler {
	return &BuilderHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ===== QUIZ ENDPOINTS =====

// CreateQuiz creates a new quiz
// @Summary Create quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body services.CreateQuizRequest true "Quiz data"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/quizzes [post]
func (h *BuilderHandler) CreateQuiz(c *gin.Context) {
	var req services.CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	creatorID := c.GetHeader("X-User-ID")
	quiz, err := h.service.CreateQuiz(c.Request.Context(), &req, creatorID)
	if err != nil {
		h.RespondWithServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusCreated, "quiz created", quiz)
}

// ListQuizzes lists quizzes with optional filters
// @Summary List quizzes
// @Tags quizzes
// @Produce json
// @Param status query string false "Filter by status"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/quizzes [get]
func (h *BuilderHandler) ListQuizzes(c *gin.Context) {
	filters := repositories.QuizFilters{
		Limit:  parseIntQuery(c, "limit", 20),
		Offset: parseIntQuery(c, "offset", 0),
		SortBy: c.Query("sort_by"),
	}
	if status := c.Query("status"); status != "" {
		s := models.QuizStatus(status)
		filters.Status = &s
	}

	quizzes, total, err := h.service.ListQuizzes(c.Request.Context(), filters)
	if err != nil {
		h.RespondWithServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "quizzes retrieved", gin.H{
		"quizzes": quizzes,
		"total":   total,
	})
}

// GetQuiz retrieves a quiz with its stages
// @Summary Get quiz
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/quizzes/{id} [get]
func (h *BuilderHandler) GetQuiz(c *gin.Context) {
	quiz, err := h.service.GetQuiz(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.RespondWithServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "quiz retrieved", quiz)
}

// UpdateQuiz updates quiz metadata
// @Summary Update quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param request body services.UpdateQuizRequest true "Quiz changes"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/quizzes/{id} [put]
func (h *BuilderHandler) UpdateQuiz(c *gin.Context) {
	var req services.UpdateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	quiz, err := h.service.UpdateQuiz(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.RespondWithServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "quiz updated", quiz)
}

// DeleteQuiz deletes a quiz
// @Summary Delete quiz
// @Tags quizzes
// @Param id path string true "Quiz ID"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/quizzes/{id} [delete]
func (h *BuilderHandler) DeleteQuiz(c *gin.Context) {
	if err := h.service.DeleteQuiz(c.Request.Context(), c.Param("id")); err != nil {
		h.RespondWithServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "quiz deleted", nil)
}

// PublishQuiz moves a quiz to Published
// @Summary Publish quiz
// @Tags quizzes
// @Param id path string true "Quiz ID"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/quizzes/{id}/publish [post]
func (h *BuilderHandler) PublishQuiz(c *gin.Context) {
	if err := h.service.UpdateQuizStatus(c.Request.Context(), c.Param("id"), models.QuizPublished); err != nil {
		h.RespondWithServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "quiz published", nil)
}

// ArchiveQuiz moves a quiz to Archived
// @Summary Archive quiz
// @Tags quizzes
// @Param id path string true "Quiz ID"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/quizzes/{id}/archive [post]
func (h *BuilderHandler) ArchiveQuiz(c *gin.Context) {
	if err := h.service.UpdateQuizStatus(c.Request.Context(), c.Param("id"), models.QuizArchived); err != nil {
		h.RespondWithServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "quiz archived", nil)
}

// ValidateQuiz reports editor-facing configuration warnings
// @Summary Validate quiz navigation and response keys
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/quizzes/{id}/validate [get]
func (h *BuilderHandler) ValidateQuiz(c *gin.Context) {
	warnings, err := h.service.ValidateQuiz(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.RespondWithServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "quiz validated", gin.H{"warnings": warnings})
}

// ===== STAGE ENDPOINTS =====

// AddStage appends a stage to a quiz
// @Summary Add stage
// @Tags stages
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param request body services.CreateStageRequest true "Stage data"
// @Success 201 {object} SuccessResponse
// @Router /api/v1/quizzes/{id}/stages [post]
func (h *BuilderHandler) AddStage(c *gin.Context) {
	var req services.CreateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	stage, err := h.service.AddStage(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.RespondWithServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusCreated, "stage created", stage)
}

// GetStage retrieves one stage
// @Summary Get stage
// @Tags stages
// @Produce json
// @Param id path string true "Stage ID"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/stages/{id} [get]
func (h *BuilderHandler) GetStage(c *gin.Context) {
	stage, err := h.service.GetStage(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.RespondWithServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "stage retrieved", stage)
}

// UpdateStage updates stage metadata and the webhook marker
// @Summary Update stage
// @Tags stages
// @Accept json
// @Produce json
// @Param id path string true "Stage ID"
// @Param request body services.UpdateStageRequest true "Stage changes"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/stages/{id} [put]
func (h *BuilderHandler) UpdateStage(c *gin.Context) {
	var req services.UpdateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	stage, err := h.service.UpdateStage(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.RespondWithServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "stage updated", stage)
}

// DeleteStage removes a stage
// @Summary Delete stage
// @Tags stages
// @Param id path string true "Stage ID"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/stages/{id} [delete]
func (h *BuilderHandler) DeleteStage(c *gin.Context) {
	if err := h.service.DeleteStage(c.Request.Context(), c.Param("id")); err != nil {
		h.RespondWithServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "stage deleted", nil)
}

// ReorderStages rewrites the stage order of a quiz
// @Summary Reorder stages
// @Tags stages
// @Accept json
// @Param id path string true "Quiz ID"
// @Param request body object true "Ordered stage IDs"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/quizzes/{id}/stages/reorder [put]
func (h *BuilderHandler) ReorderStages(c *gin.Context) {
	var req struct {
		StageIDs []string `json:"stage_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := h.service.ReorderStages(c.Request.Context(), c.Param("id"), req.StageIDs); err != nil {
		h.RespondWithServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "stages reordered", nil)
}

// ===== COMPONENT ENDPOINTS =====

// GetPalette lists every component definition available to the editor
// @Summary Get component palette
// @Tags components
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/components/palette [get]
func (h *BuilderHandler) GetPalette(c *gin.Context) {
	h.RespondWithSuccess(c, http.StatusOK, "palette retrieved", h.service.Palette())
}

// AddComponent drops a new component onto a stage
// @Summary Add component
// @Tags components
// @Accept json
// @Produce json
// @Param id path string true "Stage ID"
// @Param request body services.AddComponentRequest true "Component type and position"
// @Success 201 {object} SuccessResponse
// @Router /api/v1/stages/{id}/components [post]
func (h *BuilderHandler) AddComponent(c *gin.Context) {
	var req services.AddComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	component, err := h.service.AddComponent(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.RespondWithServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusCreated, "component added", component)
}

// UpdateComponent updates a component's name, custom id or config
// @Summary Update component
// @Tags components
// @Accept json
// @Produce json
// @Param id path string true "Stage ID"
// @Param component_id path string true "Component ID"
// @Param request body services.UpdateComponentRequest true "Component changes"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/stages/{id}/components/{component_id} [put]
func (h *BuilderHandler) UpdateComponent(c *gin.Context) {
	var req services.UpdateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	component, err := h.service.UpdateComponent(c.Request.Context(), c.Param("id"), c.Param("component_id"), &req)
	if err != nil {
		h.RespondWithServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "component updated", component)
}

// MoveComponent repositions a component within its stage
// @Summary Move component
// @Tags components
// @Accept json
// @Param id path string true "Stage ID"
// @Param component_id path string true "Component ID"
// @Param request body services.MoveComponentRequest true "Target position"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/stages/{id}/components/{component_id}/move [put]
func (h *BuilderHandler) MoveComponent(c *gin.Context) {
	var req services.MoveComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := h.service.MoveComponent(c.Request.Context(), c.Param("id"), c.Param("component_id"), req.Position); err != nil {
		h.RespondWithServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "component moved", nil)
}

// DuplicateComponent copies a component with fresh identifiers
// @Summary Duplicate component
// @Tags components
// @Produce json
// @Param id path string true "Stage ID"
// @Param component_id path string true "Component ID"
// @Success 201 {object} SuccessResponse
// @Router /api/v1/stages/{id}/components/{component_id}/duplicate [post]
func (h *BuilderHandler) DuplicateComponent(c *gin.Context) {
	component, err := h.service.DuplicateComponent(c.Request.Context(), c.Param("id"), c.Param("component_id"))
	if err != nil {
		h.RespondWithServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusCreated, "component duplicated", component)
}

// RemoveComponent deletes a component from its stage
// @Summary Remove component
// @Tags components
// @Param id path string true "Stage ID"
// @Param component_id path string true "Component ID"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/stages/{id}/components/{component_id} [delete]
func (h *BuilderHandler) RemoveComponent(c *gin.Context) {
	if err := h.service.RemoveComponent(c.Request.Context(), c.Param("id"), c.Param("component_id")); err != nil {
		h.RespondWithServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "component removed", nil)
}

// ===== HELPERS =====

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
