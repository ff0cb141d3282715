package service

import (
	"context"
	"strings"
	"testing"

	"course_companion_backend/internal/repository"
	"course_companion_backend/internal/util"

	"gorm.io/gorm"
)

func newHybridServiceForTest(t *testing.T) (*HybridService, *gorm.DB) {
	db := newTestDB(t)
	courseRepo, chapterRepo, _, _, _ := newTestRepos(db)
	usageRepo := repository.NewHybridUsageRepository(db)
	return NewHybridService(courseRepo, chapterRepo, usageRepo, HeuristicProvider{}), db
}

func TestAdaptiveLearning(t *testing.T) {
	svc, _ := newHybridServiceForTest(t)

	result, err := svc.AdaptiveLearning(context.Background(), AdaptiveLearningRequest{
		UserID:           "user-1",
		CourseID:         "course-python-intro",
		CurrentChapterID: "ch1-intro",
		QuizPerformance:  map[string]float64{"quiz-a": 0.9, "quiz-b": 0.5},
		TimeSpent:        map[string]int{"ch1-intro": 200},
	})
	if err != nil {
		t.Fatalf("AdaptiveLearning: %v", err)
	}

	if result.RecommendedNextChapter != "ch2-basics" {
		t.Errorf("recommended = %s, want ch2-basics", result.RecommendedNextChapter)
	}
	if result.Confidence != 0.85 {
		t.Errorf("confidence = %v", result.Confidence)
	}
	if result.LearningStyle != "kinesthetic" {
		t.Errorf("style = %s, want kinesthetic for 200s", result.LearningStyle)
	}
	if len(result.ImprovementAreas) != 1 || result.ImprovementAreas[0] != "quiz-b" {
		t.Errorf("weak areas = %v, want [quiz-b]", result.ImprovementAreas)
	}
	if result.EstimatedTimeToMastery != "2-3 weeks" {
		t.Errorf("estimate = %q", result.EstimatedTimeToMastery)
	}
}

func TestAdaptiveLearningVisualStyleAndLastChapter(t *testing.T) {
	svc, _ := newHybridServiceForTest(t)

	result, err := svc.AdaptiveLearning(context.Background(), AdaptiveLearningRequest{
		UserID:           "user-1",
		CourseID:         "course-python-intro",
		CurrentChapterID: "ch3-functions",
		TimeSpent:        map[string]int{"ch1-intro": 200, "ch2-basics": 150},
	})
	if err != nil {
		t.Fatalf("AdaptiveLearning: %v", err)
	}
	if result.LearningStyle != "visual" {
		t.Errorf("style = %s, want visual for 350s", result.LearningStyle)
	}
	// 已在最后一章时原地推荐
	if result.RecommendedNextChapter != "ch3-functions" {
		t.Errorf("recommended = %s, want ch3-functions", result.RecommendedNextChapter)
	}
}

func TestAdaptiveLearningUnknownCourse(t *testing.T) {
	svc, _ := newHybridServiceForTest(t)

	_, err := svc.AdaptiveLearning(context.Background(), AdaptiveLearningRequest{
		UserID:           "user-1",
		CourseID:         "course-missing",
		CurrentChapterID: "ch1-intro",
	})
	if !util.IsNotFound(err) {
		t.Fatalf("err = %v, want not-found", err)
	}
}

func TestAssessmentFeedback(t *testing.T) {
	svc, _ := newHybridServiceForTest(t)
	ctx := context.Background()

	tests := []struct {
		name             string
		response         string
		correct          string
		wantFragment     string
		wantMisconceived bool
	}{
		{
			name:             "brief wrong answer",
			response:         "no idea",
			correct:          "x = 5",
			wantFragment:     "Consider reviewing",
			wantMisconceived: true,
		},
		{
			name:             "contains the key concept",
			response:         "I believe x = 5 is how you declare a variable in Python because it binds the name dynamically without a type keyword",
			correct:          "x = 5",
			wantFragment:     "Good job",
			wantMisconceived: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.AssessmentFeedback(ctx, AssessmentRequest{
				UserID:        "user-1",
				QuizID:        "quiz-python-basics",
				QuestionID:    "q1",
				UserResponse:  tt.response,
				CorrectAnswer: tt.correct,
			})
			if err != nil {
				t.Fatalf("AssessmentFeedback: %v", err)
			}
			if !strings.Contains(result.Feedback, tt.wantFragment) {
				t.Errorf("feedback = %q, want fragment %q", result.Feedback, tt.wantFragment)
			}
			if got := len(result.Misconceptions) > 0; got != tt.wantMisconceived {
				t.Errorf("misconceptions = %v", result.Misconceptions)
			}
			if result.Score != 0.8 || result.ConfidenceLevel != "high" {
				t.Errorf("score/confidence = %v/%s", result.Score, result.ConfidenceLevel)
			}
		})
	}
}

func TestSynthesis(t *testing.T) {
	svc, _ := newHybridServiceForTest(t)

	result, err := svc.Synthesis(context.Background(), SynthesisRequest{
		UserID:     "user-1",
		CourseID:   "course-python-intro",
		ChapterIDs: []string{"ch1-intro", "ch2-basics", "ch-missing"},
	})
	if err != nil {
		t.Fatalf("Synthesis: %v", err)
	}
	if len(result.SynthesizedConcepts) != 2 {
		t.Fatalf("concepts = %v, unknown ids must be skipped", result.SynthesizedConcepts)
	}
	if len(result.ConnectionsIdentified) == 0 || len(result.BigPictureInsights) == 0 || len(result.PracticalApplications) == 0 {
		t.Error("synthesis sections must be populated")
	}
}

func TestMentorSession(t *testing.T) {
	svc, _ := newHybridServiceForTest(t)

	result, err := svc.MentorSession(context.Background(), MentorSessionRequest{
		UserID:   "user-1",
		CourseID: "course-python-intro",
		Question: "How do decorators work?",
		Context:  "Functions chapter",
	})
	if err != nil {
		t.Fatalf("MentorSession: %v", err)
	}
	if !strings.Contains(result.Response, "How do decorators work?") {
		t.Errorf("response = %q, must echo the question", result.Response)
	}
	if len(result.TeachingPoints) == 0 || len(result.FollowUpQuestions) == 0 {
		t.Error("mentor guidance sections must be populated")
	}
}

func TestUsageCounters(t *testing.T) {
	svc, _ := newHybridServiceForTest(t)
	ctx := context.Background()

	usage, err := svc.GetUsage("user-1")
	if err != nil {
		t.Fatalf("GetUsage: %v", err)
	}
	if usage.AdaptiveLearning != 0 || usage.LLMAssessment != 0 || usage.Synthesis != 0 || usage.MentorSessions != 0 {
		t.Fatalf("fresh usage = %+v, want zeros", usage)
	}

	for i := 0; i < 2; i++ {
		if _, err := svc.AdaptiveLearning(ctx, AdaptiveLearningRequest{
			UserID:           "user-1",
			CourseID:         "course-python-intro",
			CurrentChapterID: "ch1-intro",
		}); err != nil {
			t.Fatalf("AdaptiveLearning: %v", err)
		}
	}
	if _, err := svc.MentorSession(ctx, MentorSessionRequest{
		UserID: "user-1", CourseID: "course-python-intro", Question: "q",
	}); err != nil {
		t.Fatalf("MentorSession: %v", err)
	}

	usage, err = svc.GetUsage("user-1")
	if err != nil {
		t.Fatalf("GetUsage: %v", err)
	}
	if usage.AdaptiveLearning != 2 {
		t.Errorf("adaptive = %d, want 2", usage.AdaptiveLearning)
	}
	if usage.MentorSessions != 1 {
		t.Errorf("mentor = %d, want 1", usage.MentorSessions)
	}
	if usage.LLMAssessment != 0 || usage.Synthesis != 0 {
		t.Errorf("untouched counters moved: %+v", usage)
	}
}

func TestUsageCountsFailedRequests(t *testing.T) {
	svc, db := newHybridServiceForTest(t)

	// 课程不存在也计一次调用
	if _, err := svc.AdaptiveLearning(context.Background(), AdaptiveLearningRequest{
		UserID:           "user-1",
		CourseID:         "course-missing",
		CurrentChapterID: "ch1-intro",
	}); err == nil {
		t.Fatal("expected not-found")
	}

	usageRepo := repository.NewHybridUsageRepository(db)
	usage, err := usageRepo.FindForMonth("user-1", currentMonth())
	if err != nil {
		t.Fatalf("FindForMonth: %v", err)
	}
	if usage == nil || usage.AdaptiveLearning != 1 {
		t.Errorf("usage = %+v, want adaptive 1", usage)
	}
}
