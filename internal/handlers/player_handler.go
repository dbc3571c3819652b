package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Cari-app/cari-quizzies-sub001/internal/render"
	"github.com/Cari-app/cari-quizzies-sub001/internal/services"
	"github.com/Cari-app/cari-quizzies-sub001/internal/utils"
)

// PlayerHandler exposes the respondent surface: sessions, answers,
// navigation, rendering and response export.
type PlayerHandler struct {
	BaseHandler
	player services.PlayerService
	export services.ExportService
}

func NewPlayerHandler(player services.PlayerService, export services.ExportService, logger utils.Logger) *PlayerHandler {
	return &PlayerHandler{
		BaseHandler: NewBaseHandler(logger),
		player:      player,
		export:      export,
	}
}

// StartSession starts a run through a published quiz
// @Summary Start session
// @Tags sessions
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/quizzes/{id}/sessions [post]
func (h *PlayerHandler) StartSession(c *gin.Context) {
	session, err := h.player.StartSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.RespondWithServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusCreated, "session started", session)
}

// GetSession retrieves session state
// @Summary Get session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/sessions/{id} [get]
func (h *PlayerHandler) GetSession(c *gin.Context) {
	session, err := h.player.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.RespondWithServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "session retrieved", session)
}

// RenderStage renders a stage for one of the three surfaces
// @Summary Render stage markup
// @Tags render
// @Produce html
// @Param id path string true "Stage ID"
// @Param surface query string false "editor | preview | live" default(preview)
// @Param session_id query string false "Session for template substitution and prefill"
// @Success 200 {string} string "text/html"
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/stages/{id}/render [get]
func (h *PlayerHandler) RenderStage(c *gin.Context) {
	surface := render.Surface(c.DefaultQuery("surface", string(render.SurfacePreview)))
	switch surface {
	case render.SurfaceEditor, render.SurfacePreview, render.SurfaceLive:
	default:
		h.RespondWithError(c, http.StatusBadRequest, "unknown surface", nil)
		return
	}

	html, err := h.player.RenderStage(c.Request.Context(), c.Param("id"), surface, c.Query("session_id"))
	if err != nil {
		h.RespondWithServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// RecordAnswer stores one answer on the session
// @Summary Record answer
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body services.AnswerRequest true "Component and value"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/sessions/{id}/answers [post]
func (h *PlayerHandler) RecordAnswer(c *gin.Context) {
	var req services.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	session, err := h.player.RecordAnswer(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.RespondWithServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "answer recorded", session)
}

// Advance resolves navigation for a completed component
// @Summary Advance session
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body services.AdvanceRequest true "Completed component and branch"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/sessions/{id}/advance [post]
func (h *PlayerHandler) Advance(c *gin.Context) {
	var req services.AdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	result, err := h.player.Advance(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.RespondWithServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "session advanced", result)
}

// Submit ends the session and persists the submission
// @Summary Submit session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/sessions/{id}/submit [post]
func (h *PlayerHandler) Submit(c *gin.Context) {
	submission, err := h.player.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.RespondWithServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "session submitted", submission)
}

// ExportResponses downloads every submission of a quiz as xlsx
// @Summary Export responses
// @Tags responses
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Quiz ID"
// @Success 200 {file} binary
// @Router /api/v1/quizzes/{id}/responses/export [get]
func (h *PlayerHandler) ExportResponses(c *gin.Context) {
	data, filename, err := h.export.ExportSubmissions(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.RespondWithServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
