package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/Cari-app/cari-quizzies-sub001/internal/models"
)

type EventType string

const (
	// EventWebhookTrigger fires when a respondent reaches a stage whose
	// webhookActive marker is set. The external delivery collaborator
	// consumes it and performs the actual POST.
	EventWebhookTrigger EventType = "webhook.trigger"
	// EventFlowSubmitted fires when a flow completes and the collected
	// payload is handed off.
	EventFlowSubmitted EventType = "flow.submitted"
)

// WebhookEvent is the message published for both event kinds. Fields is
// the flat response map collected so far, keyed by customId-or-id.
type WebhookEvent struct {
	ID          string               `json:"id"`
	Type        EventType            `json:"type"`
	QuizID      string               `json:"quiz_id"`
	SessionID   string               `json:"session_id"`
	StageID     string               `json:"stage_id,omitempty"`
	Description string               `json:"description,omitempty"`
	Fields      models.ResponseState `json:"fields"`
	Visits      []models.StageVisit  `json:"visits,omitempty"`
	Timestamp   time.Time            `json:"timestamp"`
	Source      string               `json:"source"`
	Version     string               `json:"version"`
}

// NewWebhookTriggerEvent builds the stage-level trigger event.
func NewWebhookTriggerEvent(quizID, sessionID, stageID, description string, fields models.ResponseState) *WebhookEvent {
	return &WebhookEvent{
		ID:          uuid.NewString(),
		Type:        EventWebhookTrigger,
		QuizID:      quizID,
		SessionID:   sessionID,
		StageID:     stageID,
		Description: description,
		Fields:      fields,
		Timestamp:   time.Now().UTC(),
		Source:      "quiz-flow-service",
		Version:     "1.0",
	}
}

// NewFlowSubmittedEvent builds the end-of-flow hand-off event.
func NewFlowSubmittedEvent(quizID, sessionID string, fields models.ResponseState, visits []models.StageVisit) *WebhookEvent {
	return &WebhookEvent{
		ID:        uuid.NewString(),
		Type:      EventFlowSubmitted,
		QuizID:    quizID,
		SessionID: sessionID,
		Fields:    fields,
		Visits:    visits,
		Timestamp: time.Now().UTC(),
		Source:    "quiz-flow-service",
		Version:   "1.0",
	}
}
