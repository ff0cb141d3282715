package repository

import (
	"course_companion_backend/internal/model"

	"gorm.io/gorm"
)

// QuizAttemptRepository owns the append-only attempt log. There is
// deliberately no update or delete method.
type QuizAttemptRepository struct {
	DB *gorm.DB
}

func NewQuizAttemptRepository(db *gorm.DB) *QuizAttemptRepository {
	return &QuizAttemptRepository{DB: db}
}

func (r *QuizAttemptRepository) Create(tx *gorm.DB, attempt *model.QuizAttempt) error {
	if tx == nil {
		tx = r.DB
	}
	return tx.Create(attempt).Error
}

func (r *QuizAttemptRepository) ListByUserAndQuiz(userID, quizID string) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Order("completed_at desc").Find(&attempts).Error
	return attempts, err
}

func (r *QuizAttemptRepository) CountByUserAndQuiz(userID, quizID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.QuizAttempt{}).
		Where("user_id = ? AND quiz_id = ?", userID, quizID).Count(&count).Error
	return count, err
}
