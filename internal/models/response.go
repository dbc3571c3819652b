package models

import (
	"time"

	"gorm.io/datatypes"
)

// ResponseValue is one collected answer: string, float64 or []string for
// multi-select. Stored last-write-wins per response key.
type ResponseValue = any

// ResponseState is the flat map from customId-or-id to the last submitted
// value for one respondent session.
type ResponseState map[string]ResponseValue

// Clone returns a shallow copy safe to hand to renderers and publishers.
func (rs ResponseState) Clone() ResponseState {
	out := make(ResponseState, len(rs))
	for k, v := range rs {
		out[k] = v
	}
	return out
}

// StageVisit is the per-stage metadata recorded by the session when the
// respondent navigates away from a stage.
type StageVisit struct {
	StageID     string `json:"stage_id"`
	StageOrder  int    `json:"stage_order"`
	TimeSpentMS int64  `json:"time_spent_ms"`
}

// Submission is a completed flow persisted for export and analytics.
// Fields holds the flat ResponseState map; Visits the per-stage metadata.
type Submission struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid"`
	QuizID      string         `json:"quiz_id" gorm:"not null;index;type:uuid"`
	SessionID   string         `json:"session_id" gorm:"not null;index;type:uuid"`
	Fields      datatypes.JSON `json:"fields" gorm:"type:jsonb"`
	Visits      datatypes.JSON `json:"visits" gorm:"type:jsonb"`
	SubmittedAt time.Time      `json:"submitted_at"`
}

func (Submission) TableName() string {
	return "submissions"
}
