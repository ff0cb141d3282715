package service

import (
	"context"
	"math"
	"testing"

	"course_companion_backend/internal/model"
	"course_companion_backend/internal/util"
)

func TestRecordCompletion(t *testing.T) {
	svc, _ := newProgressServiceForTest(t)
	ctx := context.Background()

	view, err := svc.RecordCompletion(ctx, "user-1", "course-python-intro", "ch1-intro")
	if err != nil {
		t.Fatalf("RecordCompletion: %v", err)
	}
	if len(view.CompletedChapters) != 1 || view.CompletedChapters[0] != "ch1-intro" {
		t.Fatalf("completed = %v", view.CompletedChapters)
	}
	if math.Abs(view.CompletionPercentage-100.0/3.0) > 0.01 {
		t.Errorf("percentage = %v, want ~33.33", view.CompletionPercentage)
	}
}

func TestRecordCompletionIdempotent(t *testing.T) {
	svc, _ := newProgressServiceForTest(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		view, err := svc.RecordCompletion(ctx, "user-1", "course-python-intro", "ch1-intro")
		if err != nil {
			t.Fatalf("RecordCompletion #%d: %v", i+1, err)
		}
		if len(view.CompletedChapters) != 1 {
			t.Fatalf("completed after #%d = %v", i+1, view.CompletedChapters)
		}
	}
}

func TestRecordCompletionPercentageMonotonic(t *testing.T) {
	svc, _ := newProgressServiceForTest(t)
	ctx := context.Background()

	chapters := []string{"ch1-intro", "ch2-basics", "ch3-functions"}
	prev := -1.0
	for _, id := range chapters {
		view, err := svc.RecordCompletion(ctx, "user-1", "course-python-intro", id)
		if err != nil {
			t.Fatalf("RecordCompletion(%s): %v", id, err)
		}
		if view.CompletionPercentage <= prev {
			t.Fatalf("percentage %v not greater than %v", view.CompletionPercentage, prev)
		}
		prev = view.CompletionPercentage
	}
	if prev != 100 {
		t.Errorf("final percentage = %v, want 100", prev)
	}
}

func TestRecordCompletionUnknownCourseOrChapter(t *testing.T) {
	svc, _ := newProgressServiceForTest(t)
	ctx := context.Background()

	if _, err := svc.RecordCompletion(ctx, "user-1", "course-missing", "ch1-intro"); !util.IsNotFound(err) {
		t.Errorf("unknown course: err = %v, want not-found", err)
	}
	if _, err := svc.RecordCompletion(ctx, "user-1", "course-python-intro", "ch-missing"); !util.IsNotFound(err) {
		t.Errorf("unknown chapter: err = %v, want not-found", err)
	}
}

func TestGetProgressZeroValueWithoutRecord(t *testing.T) {
	svc, _ := newProgressServiceForTest(t)

	view, err := svc.GetProgress(context.Background(), "fresh-user", "course-python-intro")
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if len(view.CompletedChapters) != 0 {
		t.Errorf("completed = %v, want empty", view.CompletedChapters)
	}
	if len(view.QuizScores) != 0 {
		t.Errorf("scores = %v, want empty", view.QuizScores)
	}
	if view.CompletionPercentage != 0 {
		t.Errorf("percentage = %v, want 0", view.CompletionPercentage)
	}
}

func TestGetProgressUnknownCourse(t *testing.T) {
	svc, _ := newProgressServiceForTest(t)

	if _, err := svc.GetProgress(context.Background(), "user-1", "course-missing"); !util.IsNotFound(err) {
		t.Fatalf("err = %v, want not-found", err)
	}
}

func TestListUserProgress(t *testing.T) {
	svc, _ := newProgressServiceForTest(t)
	ctx := context.Background()

	if _, err := svc.RecordCompletion(ctx, "user-1", "course-python-intro", "ch1-intro"); err != nil {
		t.Fatalf("RecordCompletion: %v", err)
	}

	summaries, err := svc.ListUserProgress(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListUserProgress: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("summaries = %d, want 1", len(summaries))
	}
	s := summaries[0]
	if s.CourseID != "course-python-intro" || s.CourseTitle != "Introduction to Modern Python" {
		t.Errorf("summary = %+v", s)
	}
	if s.CompletedChapters != 1 || s.TotalChapters != 3 {
		t.Errorf("counts = %d/%d, want 1/3", s.CompletedChapters, s.TotalChapters)
	}
}

func TestListUserProgressEmpty(t *testing.T) {
	svc, _ := newProgressServiceForTest(t)

	summaries, err := svc.ListUserProgress(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("ListUserProgress: %v", err)
	}
	if len(summaries) != 0 {
		t.Errorf("summaries = %d, want 0", len(summaries))
	}
}

func TestResetStreak(t *testing.T) {
	svc, db := newProgressServiceForTest(t)
	ctx := context.Background()

	if _, err := svc.RecordCompletion(ctx, "user-1", "course-python-intro", "ch1-intro"); err != nil {
		t.Fatalf("RecordCompletion: %v", err)
	}
	if err := db.Model(&model.UserProgress{}).
		Where("user_id = ?", "user-1").
		Update("streak_days", 7).Error; err != nil {
		t.Fatalf("set streak: %v", err)
	}

	if err := svc.ResetStreak("user-1"); err != nil {
		t.Fatalf("ResetStreak: %v", err)
	}

	var progress model.UserProgress
	if err := db.Where("user_id = ?", "user-1").First(&progress).Error; err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if progress.StreakDays != 0 {
		t.Errorf("streak = %d, want 0", progress.StreakDays)
	}
}
