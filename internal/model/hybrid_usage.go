package model

// HybridUsage counts hybrid-intelligence calls per user and calendar
// month (YYYY-MM) for cost tracking.
//
// swagger:model HybridUsage
type HybridUsage struct {
	BaseModel
	UserID           string `gorm:"size:64;uniqueIndex:idx_user_month" json:"userId"`
	MonthYear        string `gorm:"size:7;uniqueIndex:idx_user_month" json:"monthYear"`
	AdaptiveLearning int    `gorm:"default:0" json:"adaptiveLearning"`
	LLMAssessment    int    `gorm:"default:0" json:"llmAssessment"`
	Synthesis        int    `gorm:"default:0" json:"synthesis"`
	MentorSessions   int    `gorm:"default:0" json:"mentorSessions"`
}

func (HybridUsage) TableName() string {
	return "hybrid_usage"
}
