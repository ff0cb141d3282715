package model

import (
	"time"

	"gorm.io/datatypes"
)

// QuizAttempt is the append-only audit record of one quiz submission.
// Rows are inserted once and never updated or deleted; the mutable
// per-course summary lives in UserProgress.
//
// swagger:model QuizAttempt
type QuizAttempt struct {
	BaseModel
	UserID      string                                `gorm:"size:64;index" json:"userId"`
	QuizID      string                                `gorm:"size:64;index" json:"quizId"`
	Answers     datatypes.JSONType[map[string]string] `gorm:"type:json" json:"answers"`
	Score       float64                               `gorm:"not null" json:"score"`
	Passed      bool                                  `gorm:"not null" json:"passed"`
	CompletedAt time.Time                             `json:"completedAt"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
