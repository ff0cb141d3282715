package model

import (
	"time"

	"gorm.io/datatypes"
)

// QuizScoreEntry is the aggregate view of the latest submission for one
// quiz. Resubmission overwrites it; the full history stays in quiz_attempts.
type QuizScoreEntry struct {
	Score  float64   `json:"score"`
	Passed bool      `json:"passed"`
	Date   time.Time `json:"date"`
}

// UserProgress holds the single live progress record per (user, course)
// pair. Completed chapters keep insertion order for display; completion
// percentage is derived, never stored.
//
// swagger:model UserProgress
type UserProgress struct {
	BaseModel
	UserID            string                                        `gorm:"size:64;uniqueIndex:idx_user_course" json:"userId"`
	CourseID          string                                        `gorm:"size:64;uniqueIndex:idx_user_course" json:"courseId"`
	CompletedChapters datatypes.JSONSlice[string]                   `gorm:"type:json" json:"completedChapters"`
	QuizScores        datatypes.JSONType[map[string]QuizScoreEntry] `gorm:"type:json" json:"quizScores"`
	StreakDays        int                                           `gorm:"default:0" json:"streakDays"`
	LastAccessed      time.Time                                     `json:"lastAccessed"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

// HasCompleted reports whether the chapter is already in the completed set.
func (p *UserProgress) HasCompleted(chapterID string) bool {
	for _, id := range p.CompletedChapters {
		if id == chapterID {
			return true
		}
	}
	return false
}
