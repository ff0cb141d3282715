package service

import (
	"context"
	"time"

	"course_companion_backend/internal/model"
	"course_companion_backend/internal/repository"
)

// HybridService fronts the premium intelligence features. Every call is
// counted per user per month before the provider runs, so usage reflects
// requests rather than successful answers.
type HybridService struct {
	CourseRepo  *repository.CourseRepository
	ChapterRepo *repository.ChapterRepository
	UsageRepo   *repository.HybridUsageRepository
	Provider    IntelligenceProvider
}

func NewHybridService(
	courseRepo *repository.CourseRepository,
	chapterRepo *repository.ChapterRepository,
	usageRepo *repository.HybridUsageRepository,
	provider IntelligenceProvider,
) *HybridService {
	return &HybridService{
		CourseRepo:  courseRepo,
		ChapterRepo: chapterRepo,
		UsageRepo:   usageRepo,
		Provider:    provider,
	}
}

type AdaptiveLearningRequest struct {
	UserID           string             `json:"user_id" binding:"required"`
	CourseID         string             `json:"course_id" binding:"required"`
	CurrentChapterID string             `json:"current_chapter_id" binding:"required"`
	QuizPerformance  map[string]float64 `json:"quiz_performance"`
	TimeSpent        map[string]int     `json:"time_spent"`
}

type AssessmentRequest struct {
	UserID          string `json:"user_id" binding:"required"`
	QuizID          string `json:"quiz_id" binding:"required"`
	QuestionID      string `json:"question_id" binding:"required"`
	UserResponse    string `json:"user_response"`
	CorrectAnswer   string `json:"correct_answer"`
	QuestionContext string `json:"question_context"`
}

type SynthesisRequest struct {
	UserID        string   `json:"user_id" binding:"required"`
	CourseID      string   `json:"course_id" binding:"required"`
	ChapterIDs    []string `json:"chapter_ids"`
	LearningGoals []string `json:"learning_goals"`
}

type MentorSessionRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	CourseID  string `json:"course_id" binding:"required"`
	ChapterID string `json:"chapter_id"`
	Question  string `json:"question" binding:"required"`
	Context   string `json:"context"`
}

// currentMonth is the usage bucket key, UTC.
func currentMonth() string {
	return time.Now().UTC().Format("2006-01")
}

func (s *HybridService) AdaptiveLearning(ctx context.Context, req AdaptiveLearningRequest) (*AdaptiveLearningResult, error) {
	if err := s.UsageRepo.IncrementCounter(req.UserID, currentMonth(), repository.UsageAdaptiveLearning); err != nil {
		return nil, err
	}

	if _, err := s.CourseRepo.FindByID(req.CourseID); err != nil {
		return nil, err
	}

	chapters, err := s.ChapterRepo.ListByCourse(req.CourseID)
	if err != nil {
		return nil, err
	}

	return s.Provider.AdaptiveLearning(ctx, AdaptiveLearningInput{
		UserID:           req.UserID,
		CourseID:         req.CourseID,
		CurrentChapterID: req.CurrentChapterID,
		QuizPerformance:  req.QuizPerformance,
		TimeSpent:        req.TimeSpent,
		Chapters:         chapters,
	})
}

func (s *HybridService) AssessmentFeedback(ctx context.Context, req AssessmentRequest) (*AssessmentResult, error) {
	if err := s.UsageRepo.IncrementCounter(req.UserID, currentMonth(), repository.UsageLLMAssessment); err != nil {
		return nil, err
	}

	return s.Provider.AssessmentFeedback(ctx, AssessmentInput{
		UserID:          req.UserID,
		QuizID:          req.QuizID,
		QuestionID:      req.QuestionID,
		UserResponse:    req.UserResponse,
		CorrectAnswer:   req.CorrectAnswer,
		QuestionContext: req.QuestionContext,
	})
}

func (s *HybridService) Synthesis(ctx context.Context, req SynthesisRequest) (*SynthesisResult, error) {
	if err := s.UsageRepo.IncrementCounter(req.UserID, currentMonth(), repository.UsageSynthesis); err != nil {
		return nil, err
	}

	// 未知的章节 ID 直接忽略
	chapters, err := s.ChapterRepo.ListByIDs(req.ChapterIDs)
	if err != nil {
		return nil, err
	}

	return s.Provider.Synthesis(ctx, SynthesisInput{
		UserID:        req.UserID,
		CourseID:      req.CourseID,
		LearningGoals: req.LearningGoals,
		Chapters:      chapters,
	})
}

func (s *HybridService) MentorSession(ctx context.Context, req MentorSessionRequest) (*MentorSessionResult, error) {
	if err := s.UsageRepo.IncrementCounter(req.UserID, currentMonth(), repository.UsageMentorSessions); err != nil {
		return nil, err
	}

	return s.Provider.MentorSession(ctx, MentorSessionInput{
		UserID:    req.UserID,
		CourseID:  req.CourseID,
		ChapterID: req.ChapterID,
		Question:  req.Question,
		Context:   req.Context,
	})
}

// GetUsage returns the current month's counters, zero-valued when the user
// has not touched any hybrid feature this month.
func (s *HybridService) GetUsage(userID string) (*model.HybridUsage, error) {
	month := currentMonth()

	usage, err := s.UsageRepo.FindForMonth(userID, month)
	if err != nil {
		return nil, err
	}
	if usage == nil {
		usage = &model.HybridUsage{UserID: userID, MonthYear: month}
	}
	return usage, nil
}
