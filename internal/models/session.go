package models

import (
	"time"

	"github.com/google/uuid"
)

// Session tracks one respondent's run through a published quiz. Fields
// accumulates answers keyed by each component's response key, Visits
// records per-stage timing in visit order.
type Session struct {
	ID             string        `json:"id"`
	QuizID         string        `json:"quiz_id"`
	CurrentStageID string        `json:"current_stage_id"`
	Fields         ResponseState `json:"fields"`
	Visits         []StageVisit  `json:"visits"`
	StageEnteredAt time.Time     `json:"stage_entered_at"`
	Submitted      bool          `json:"submitted"`
	CreatedAt      time.Time     `json:"created_at"`
}

// NewSession starts a session positioned at the given stage.
func NewSession(quizID, firstStageID string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:             uuid.NewString(),
		QuizID:         quizID,
		CurrentStageID: firstStageID,
		Fields:         make(ResponseState),
		Visits:         []StageVisit{},
		StageEnteredAt: now,
		CreatedAt:      now,
	}
}

// RecordVisit closes out the current stage, appending a visit entry with
// the elapsed time, and moves the session to the next stage.
func (s *Session) RecordVisit(now time.Time, nextStageID string) {
	s.Visits = append(s.Visits, StageVisit{
		StageID:     s.CurrentStageID,
		StageOrder:  len(s.Visits) + 1,
		TimeSpentMS: now.Sub(s.StageEnteredAt).Milliseconds(),
	})
	s.CurrentStageID = nextStageID
	s.StageEnteredAt = now
}
