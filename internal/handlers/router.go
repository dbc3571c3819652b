package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Cari-app/cari-quizzies-sub001/internal/services"
	"github.com/Cari-app/cari-quizzies-sub001/internal/utils"
)

type HandlerManager struct {
	builderHandler *BuilderHandler
	playerHandler  *PlayerHandler
	wsHandler      *WSHandler
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		builderHandler: NewBuilderHandler(serviceManager.Builder(), logger),
		playerHandler:  NewPlayerHandler(serviceManager.Player(), serviceManager.Export(), logger),
		wsHandler:      NewWSHandler(serviceManager.Player(), logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Quiz routes
		quizzes := v1.Group("/quizzes")
		{
			quizzes.POST("", hm.builderHandler.CreateQuiz)
			quizzes.GET("", hm.builderHandler.ListQuizzes)
			quizzes.GET("/:id", hm.builderHandler.GetQuiz)
			quizzes.PUT("/:id", hm.builderHandler.UpdateQuiz)
			quizzes.DELETE("/:id", hm.builderHandler.DeleteQuiz)
			quizzes.POST("/:id/publish", hm.builderHandler.PublishQuiz)
			quizzes.POST("/:id/archive", hm.builderHandler.ArchiveQuiz)
			quizzes.GET("/:id/validate", hm.builderHandler.ValidateQuiz)

			// Stage management
			quizzes.POST("/:id/stages", hm.builderHandler.AddStage)
			quizzes.PUT("/:id/stages/reorder", hm.builderHandler.ReorderStages)

			// Respondent sessions
			quizzes.POST("/:id/sessions", hm.playerHandler.StartSession)

			// Response export
			quizzes.GET("/:id/responses/export", hm.playerHandler.ExportResponses)
		}

		// Stage routes
		stages := v1.Group("/stages")
		{
			stages.GET("/:id", hm.builderHandler.GetStage)
			stages.PUT("/:id", hm.builderHandler.UpdateStage)
			stages.DELETE("/:id", hm.builderHandler.DeleteStage)
			stages.GET("/:id/render", hm.playerHandler.RenderStage)

			// Component management
			stages.POST("/:id/components", hm.builderHandler.AddComponent)
			stages.PUT("/:id/components/:component_id", hm.builderHandler.UpdateComponent)
			stages.PUT("/:id/components/:component_id/move", hm.builderHandler.MoveComponent)
			stages.POST("/:id/components/:component_id/duplicate", hm.builderHandler.DuplicateComponent)
			stages.DELETE("/:id/components/:component_id", hm.builderHandler.RemoveComponent)
		}

		// Component palette
		components := v1.Group("/components")
		{
			components.GET("/palette", hm.builderHandler.GetPalette)
		}

		// Session routes
		sessions := v1.Group("/sessions")
		{
			sessions.GET("/:id", hm.playerHandler.GetSession)
			sessions.POST("/:id/answers", hm.playerHandler.RecordAnswer)
			sessions.POST("/:id/advance", hm.playerHandler.Advance)
			sessions.POST("/:id/submit", hm.playerHandler.Submit)
			sessions.GET("/:id/ws", hm.wsHandler.ServeWS)
		}
	}
}
