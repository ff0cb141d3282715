package repository

import (
	"course_companion_backend/internal/model"
	"errors"

	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	DB *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{DB: db}
}

// FindActiveByUser returns the user's single active subscription, or
// (nil, nil) when none exists.
func (r *SubscriptionRepository) FindActiveByUser(userID string) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.DB.Where("user_id = ? AND is_active = ?", userID, true).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) Create(sub *model.Subscription) error {
	return r.DB.Create(sub).Error
}
