package service

import (
	"course_companion_backend/internal/model"
	"course_companion_backend/internal/repository"
	"time"
)

const upsellMessage = "Upgrade to Premium for advanced features like AI mentoring and adaptive learning paths."

// AccessService is the freemium gate: it reports a user's tier, it does
// not enforce anything. Subscription rows are written by the billing
// side.
type AccessService struct {
	SubscriptionRepo *repository.SubscriptionRepository
}

func NewAccessService(subscriptionRepo *repository.SubscriptionRepository) *AccessService {
	return &AccessService{SubscriptionRepo: subscriptionRepo}
}

type AccessStatus struct {
	UserID     string         `json:"user_id"`
	HasPremium bool           `json:"has_premium"`
	PlanType   model.PlanType `json:"plan_type"`
	ExpiresAt  *time.Time     `json:"expires_at,omitempty"`
	Message    string         `json:"message,omitempty"`
}

type PricingTier struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Features []string `json:"features"`
}

func (s *AccessService) CheckAccess(userID string) (*AccessStatus, error) {
	sub, err := s.SubscriptionRepo.FindActiveByUser(userID)
	if err != nil {
		return nil, err
	}

	if sub == nil {
		return &AccessStatus{
			UserID:     userID,
			HasPremium: false,
			PlanType:   model.PlanFree,
			Message:    upsellMessage,
		}, nil
	}

	return &AccessStatus{
		UserID:     userID,
		HasPremium: true,
		PlanType:   sub.PlanType,
		ExpiresAt:  sub.EndDate,
	}, nil
}

// Pricing returns the fixed tier table used by the marketing page.
func (s *AccessService) Pricing() []PricingTier {
	return []PricingTier{
		{Name: "Free", Price: "$0", Features: []string{"First 3 chapters", "Basic quizzes", "ChatGPT tutoring"}},
		{Name: "Premium", Price: "$9.99/mo", Features: []string{"All chapters", "All quizzes", "Progress tracking"}},
		{Name: "Pro", Price: "$19.99/mo", Features: []string{"Premium + Adaptive Path + LLM Assessments"}},
		{Name: "Team", Price: "$49.99/mo", Features: []string{"Pro + Analytics + Multiple seats"}},
	}
}
