package model

import (
	"time"
)

type PlanType string

const (
	PlanFree    PlanType = "free"
	PlanPremium PlanType = "premium"
	PlanPro     PlanType = "pro"
	PlanTeam    PlanType = "team"
)

// Subscription rows are created and updated by the billing side; this
// service only reads them. At most one active row governs a user's
// access at query time.
//
// swagger:model Subscription
type Subscription struct {
	BaseModel
	UserID    string     `gorm:"size:64;index" json:"userId"`
	PlanType  PlanType   `gorm:"size:20;default:'free'" json:"planType"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	// No column default: gorm drops zero values for defaulted fields,
	// which would silently store an inactive row as active.
	IsActive bool `gorm:"index" json:"isActive"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
