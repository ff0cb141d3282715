package model

import (
	"gorm.io/datatypes"
)

// QuizQuestion is one entry of a quiz's embedded question list. The
// canonical answer is a single string compared verbatim at grading time.
type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// swagger:model Quiz
type Quiz struct {
	StringIDBase
	CourseID     string                            `gorm:"size:64;index;not null" json:"courseId"`
	ChapterID    string                            `gorm:"size:64;index" json:"chapterId"`
	Title        string                            `gorm:"size:255" json:"title"`
	Questions    datatypes.JSONSlice[QuizQuestion] `gorm:"type:json" json:"questions"`
	// A zero passing score is legal (every submission passes), so the
	// column carries no default.
	PassingScore float64 `json:"passingScore"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
