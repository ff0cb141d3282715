package repository

import (
	"course_companion_backend/internal/model"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) Find(userID, courseID string) (*model.UserProgress, error) {
	var progress model.UserProgress
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *ProgressRepository) ListByUser(userID string) ([]model.UserProgress, error) {
	var progresses []model.UserProgress
	err := r.DB.Where("user_id = ?", userID).Find(&progresses).Error
	return progresses, err
}

// GetOrCreateForUpdate fetches the (user, course) progress row inside tx,
// creating it lazily on first touch. On MySQL the row is locked so that
// concurrent submissions for the same pair serialize instead of racing
// last-write-wins on the quiz_scores map. SQLite has no row locks and
// serializes writers itself.
func (r *ProgressRepository) GetOrCreateForUpdate(tx *gorm.DB, userID, courseID string) (*model.UserProgress, error) {
	q := tx
	if tx.Dialector.Name() == "mysql" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var progress model.UserProgress
	err := q.Where("user_id = ? AND course_id = ?", userID, courseID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		progress = model.UserProgress{
			UserID:       userID,
			CourseID:     courseID,
			StreakDays:   0,
			LastAccessed: time.Now(),
		}
		if err := tx.Create(&progress).Error; err != nil {
			return nil, err
		}
		return &progress, nil
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *ProgressRepository) Save(tx *gorm.DB, progress *model.UserProgress) error {
	if tx == nil {
		tx = r.DB
	}
	return tx.Save(progress).Error
}

// ResetStreak zeroes streak_days on every progress row the user owns.
func (r *ProgressRepository) ResetStreak(userID string) error {
	return r.DB.Model(&model.UserProgress{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"streak_days":   0,
			"last_accessed": time.Now(),
		}).Error
}
