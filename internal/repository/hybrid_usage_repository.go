package repository

import (
	"course_companion_backend/internal/model"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Counter column names of the hybrid_usage table.
const (
	UsageAdaptiveLearning = "adaptive_learning"
	UsageLLMAssessment    = "llm_assessment"
	UsageSynthesis        = "synthesis"
	UsageMentorSessions   = "mentor_sessions"
)

type HybridUsageRepository struct {
	DB *gorm.DB
}

func NewHybridUsageRepository(db *gorm.DB) *HybridUsageRepository {
	return &HybridUsageRepository{DB: db}
}

func (r *HybridUsageRepository) FindForMonth(userID, monthYear string) (*model.HybridUsage, error) {
	var usage model.HybridUsage
	err := r.DB.Where("user_id = ? AND month_year = ?", userID, monthYear).First(&usage).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &usage, nil
}

// IncrementCounter bumps one usage counter for (user, month), creating
// the row on first use.
func (r *HybridUsageRepository) IncrementCounter(userID, monthYear, column string) error {
	switch column {
	case UsageAdaptiveLearning, UsageLLMAssessment, UsageSynthesis, UsageMentorSessions:
	default:
		return fmt.Errorf("unknown usage counter %q", column)
	}

	return r.DB.Transaction(func(tx *gorm.DB) error {
		var usage model.HybridUsage
		err := tx.Where("user_id = ? AND month_year = ?", userID, monthYear).First(&usage).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			usage = model.HybridUsage{UserID: userID, MonthYear: monthYear}
			if err := tx.Create(&usage).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		return tx.Model(&usage).UpdateColumn(column, gorm.Expr(column+" + 1")).Error
	})
}
