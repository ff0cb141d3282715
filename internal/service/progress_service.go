package service

import (
	"context"
	"course_companion_backend/internal/model"
	"course_companion_backend/internal/repository"
	"errors"
	"time"

	"gorm.io/gorm"
)

// ProgressService maintains the mutable per-(user, course) aggregate:
// completed chapters, latest quiz scores, streak. Completion percentage
// is always derived from the live chapter count, never stored.
type ProgressService struct {
	CourseRepo   *repository.CourseRepository
	ChapterRepo  *repository.ChapterRepository
	ProgressRepo *repository.ProgressRepository
	DB           *gorm.DB
}

func NewProgressService(
	courseRepo *repository.CourseRepository,
	chapterRepo *repository.ChapterRepository,
	progressRepo *repository.ProgressRepository,
	db *gorm.DB,
) *ProgressService {
	return &ProgressService{
		CourseRepo:   courseRepo,
		ChapterRepo:  chapterRepo,
		ProgressRepo: progressRepo,
		DB:           db,
	}
}

// ProgressView is the per-course progress report. A user with no record
// yet gets the zero-value view rather than a NotFound.
type ProgressView struct {
	UserID               string                          `json:"user_id"`
	CourseID             string                          `json:"course_id"`
	CompletedChapters    []string                        `json:"completed_chapters"`
	QuizScores           map[string]model.QuizScoreEntry `json:"quiz_scores"`
	StreakDays           int                             `json:"streak_days"`
	LastAccessed         time.Time                       `json:"last_accessed"`
	CompletionPercentage float64                         `json:"completion_percentage"`
}

type CourseProgressSummary struct {
	CourseID             string                          `json:"course_id"`
	CourseTitle          string                          `json:"course_title"`
	CompletedChapters    int                             `json:"completed_chapters"`
	TotalChapters        int64                           `json:"total_chapters"`
	CompletionPercentage float64                         `json:"completion_percentage"`
	QuizScores           map[string]model.QuizScoreEntry `json:"quiz_scores"`
	StreakDays           int                             `json:"streak_days"`
	LastAccessed         time.Time                       `json:"last_accessed"`
}

func completionPercentage(completed int, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

// RecordCompletion adds the chapter to the user's completed set.
// Idempotent: marking the same chapter twice changes nothing.
func (s *ProgressService) RecordCompletion(ctx context.Context, userID, courseID, chapterID string) (*ProgressView, error) {
	if _, err := s.ChapterRepo.FindByID(chapterID); err != nil {
		return nil, err
	}
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return nil, err
	}

	var progress *model.UserProgress
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := s.ProgressRepo.GetOrCreateForUpdate(tx, userID, courseID)
		if err != nil {
			return err
		}

		if !p.HasCompleted(chapterID) {
			p.CompletedChapters = append(p.CompletedChapters, chapterID)
			p.LastAccessed = time.Now()
			if err := s.ProgressRepo.Save(tx, p); err != nil {
				return err
			}
		}

		progress = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.buildView(course.ID, progress)
}

// GetProgress returns the user's progress in one course, including the
// derived completion percentage. An absent record yields the empty view.
func (s *ProgressService) GetProgress(ctx context.Context, userID, courseID string) (*ProgressView, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		return nil, err
	}

	progress, err := s.ProgressRepo.Find(userID, courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &ProgressView{
			UserID:            userID,
			CourseID:          courseID,
			CompletedChapters: []string{},
			QuizScores:        map[string]model.QuizScoreEntry{},
			LastAccessed:      time.Now(),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	view, err := s.buildView(courseID, progress)
	if err != nil {
		return nil, err
	}
	view.UserID = userID
	return view, nil
}

// ListUserProgress summarizes a user's progress across every course
// they have touched.
func (s *ProgressService) ListUserProgress(ctx context.Context, userID string) ([]CourseProgressSummary, error) {
	progresses, err := s.ProgressRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]CourseProgressSummary, 0, len(progresses))
	for _, p := range progresses {
		title := "Unknown Course"
		if course, err := s.CourseRepo.FindByID(p.CourseID); err == nil {
			title = course.Title
		}

		total, err := s.ChapterRepo.CountByCourse(p.CourseID)
		if err != nil {
			return nil, err
		}

		scores := p.QuizScores.Data()
		if scores == nil {
			scores = map[string]model.QuizScoreEntry{}
		}

		summaries = append(summaries, CourseProgressSummary{
			CourseID:             p.CourseID,
			CourseTitle:          title,
			CompletedChapters:    len(p.CompletedChapters),
			TotalChapters:        total,
			CompletionPercentage: completionPercentage(len(p.CompletedChapters), total),
			QuizScores:           scores,
			StreakDays:           p.StreakDays,
			LastAccessed:         p.LastAccessed,
		})
	}
	return summaries, nil
}

func (s *ProgressService) ResetStreak(userID string) error {
	return s.ProgressRepo.ResetStreak(userID)
}

func (s *ProgressService) buildView(courseID string, progress *model.UserProgress) (*ProgressView, error) {
	total, err := s.ChapterRepo.CountByCourse(courseID)
	if err != nil {
		return nil, err
	}

	completed := progress.CompletedChapters
	if completed == nil {
		completed = []string{}
	}
	scores := progress.QuizScores.Data()
	if scores == nil {
		scores = map[string]model.QuizScoreEntry{}
	}

	return &ProgressView{
		UserID:               progress.UserID,
		CourseID:             progress.CourseID,
		CompletedChapters:    completed,
		QuizScores:           scores,
		StreakDays:           progress.StreakDays,
		LastAccessed:         progress.LastAccessed,
		CompletionPercentage: completionPercentage(len(completed), total),
	}, nil
}
