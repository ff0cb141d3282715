package service

import (
	"context"
	"testing"

	"course_companion_backend/internal/model"
	"course_companion_backend/internal/util"

	"gorm.io/datatypes"
)

func seededQuiz() *model.Quiz {
	return &model.Quiz{
		StringIDBase: model.StringIDBase{ID: "quiz-python-basics"},
		CourseID:     "course-python-intro",
		Questions: datatypes.JSONSlice[model.QuizQuestion]{
			{ID: "q1", CorrectAnswer: "x = 5"},
			{ID: "q2", CorrectAnswer: "def my_func():"},
		},
		PassingScore: 0.7,
	}
}

func TestGrade(t *testing.T) {
	tests := []struct {
		name       string
		answers    map[string]string
		wantScore  float64
		wantPassed bool
	}{
		{
			name:       "all correct",
			answers:    map[string]string{"q1": "x = 5", "q2": "def my_func():"},
			wantScore:  1.0,
			wantPassed: true,
		},
		{
			name:       "half correct fails at 0.7 threshold",
			answers:    map[string]string{"q1": "x = 5", "q2": "function my_func():"},
			wantScore:  0.5,
			wantPassed: false,
		},
		{
			name:       "no answers",
			answers:    map[string]string{},
			wantScore:  0,
			wantPassed: false,
		},
		{
			name:       "unknown question ids are ignored",
			answers:    map[string]string{"q99": "x = 5"},
			wantScore:  0,
			wantPassed: false,
		},
		{
			name:       "exact string match only",
			answers:    map[string]string{"q1": "X = 5", "q2": "def my_func():"},
			wantScore:  0.5,
			wantPassed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, passed := Grade(seededQuiz(), tt.answers)
			if score != tt.wantScore {
				t.Errorf("score = %v, want %v", score, tt.wantScore)
			}
			if passed != tt.wantPassed {
				t.Errorf("passed = %v, want %v", passed, tt.wantPassed)
			}
		})
	}
}

func TestGradeEmptyQuiz(t *testing.T) {
	quiz := &model.Quiz{PassingScore: 0.7}
	score, passed := Grade(quiz, map[string]string{"q1": "anything"})
	if score != 0 {
		t.Errorf("score = %v, want 0", score)
	}
	if passed {
		t.Error("empty quiz must not pass with a positive threshold")
	}
}

func TestZeroPassingScorePersists(t *testing.T) {
	svc, db := newQuizServiceForTest(t)

	quiz := &model.Quiz{
		StringIDBase: model.StringIDBase{ID: "quiz-ungated"},
		CourseID:     "course-python-intro",
		Title:        "Ungated Quiz",
		Questions: datatypes.JSONSlice[model.QuizQuestion]{
			{ID: "q1", CorrectAnswer: "yes"},
		},
		PassingScore: 0,
	}
	if err := db.Create(quiz).Error; err != nil {
		t.Fatalf("create quiz: %v", err)
	}

	var stored model.Quiz
	if err := db.First(&stored, "id = ?", "quiz-ungated").Error; err != nil {
		t.Fatalf("load quiz: %v", err)
	}
	if stored.PassingScore != 0 {
		t.Fatalf("passing score persisted as %v, want 0", stored.PassingScore)
	}

	// 阈值为 0 时任何提交都通过
	result, err := svc.Submit(context.Background(), QuizSubmission{
		UserID:  "user-1",
		QuizID:  "quiz-ungated",
		Answers: map[string]string{"q1": "no"},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.Score != 0 || !result.Passed {
		t.Fatalf("result = %+v, want score 0 passed", result)
	}
}

func TestSubmitRecordsAttemptAndProgress(t *testing.T) {
	svc, db := newQuizServiceForTest(t)
	ctx := context.Background()

	result, err := svc.Submit(ctx, QuizSubmission{
		UserID:  "user-1",
		QuizID:  "quiz-python-basics",
		Answers: map[string]string{"q1": "x = 5", "q2": "def my_func():"},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.Score != 1.0 || !result.Passed {
		t.Fatalf("result = %+v, want score 1.0 passed", result)
	}
	if result.Feedback != "Great job!" {
		t.Errorf("feedback = %q", result.Feedback)
	}

	var attemptCount int64
	db.Model(&model.QuizAttempt{}).Where("user_id = ?", "user-1").Count(&attemptCount)
	if attemptCount != 1 {
		t.Errorf("attempt count = %d, want 1", attemptCount)
	}

	var progress model.UserProgress
	if err := db.Where("user_id = ? AND course_id = ?", "user-1", "course-python-intro").First(&progress).Error; err != nil {
		t.Fatalf("load progress: %v", err)
	}
	entry, ok := progress.QuizScores.Data()["quiz-python-basics"]
	if !ok {
		t.Fatal("quiz score missing from aggregate")
	}
	if entry.Score != 1.0 || !entry.Passed {
		t.Errorf("aggregate entry = %+v", entry)
	}
}

func TestSubmitKeepsFullHistoryButLatestAggregate(t *testing.T) {
	svc, db := newQuizServiceForTest(t)
	ctx := context.Background()

	if _, err := svc.Submit(ctx, QuizSubmission{
		UserID:  "user-1",
		QuizID:  "quiz-python-basics",
		Answers: map[string]string{"q1": "x = 5", "q2": "def my_func():"},
	}); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	second, err := svc.Submit(ctx, QuizSubmission{
		UserID:  "user-1",
		QuizID:  "quiz-python-basics",
		Answers: map[string]string{"q1": "x = 5"},
	})
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if second.Score != 0.5 || second.Passed {
		t.Fatalf("second result = %+v, want 0.5 failed", second)
	}
	if second.Feedback != "Keep studying, you'll get it next time!" {
		t.Errorf("feedback = %q", second.Feedback)
	}

	attempts, err := svc.Attempts("user-1", "quiz-python-basics")
	if err != nil {
		t.Fatalf("Attempts: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("attempt history = %d, want 2", len(attempts))
	}

	var progress model.UserProgress
	if err := db.Where("user_id = ?", "user-1").First(&progress).Error; err != nil {
		t.Fatalf("load progress: %v", err)
	}
	entry := progress.QuizScores.Data()["quiz-python-basics"]
	if entry.Score != 0.5 || entry.Passed {
		t.Errorf("aggregate holds %+v, want the latest result", entry)
	}
}

func TestSubmitUnknownQuiz(t *testing.T) {
	svc, _ := newQuizServiceForTest(t)

	_, err := svc.Submit(context.Background(), QuizSubmission{
		UserID: "user-1",
		QuizID: "quiz-missing",
	})
	if !util.IsNotFound(err) {
		t.Fatalf("err = %v, want not-found", err)
	}
}

func TestAttemptsEmptyWithoutSubmissions(t *testing.T) {
	svc, _ := newQuizServiceForTest(t)

	attempts, err := svc.Attempts("nobody", "quiz-python-basics")
	if err != nil {
		t.Fatalf("Attempts: %v", err)
	}
	if len(attempts) != 0 {
		t.Errorf("attempts = %d, want 0", len(attempts))
	}
}
