package service

import (
	"context"
	"course_companion_backend/internal/model"
	"course_companion_backend/internal/repository"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	feedbackPassed = "Great job!"
	feedbackFailed = "Keep studying, you'll get it next time!"
)

// QuizService implements the grading engine and the submit workflow:
// grade, append the immutable attempt record, merge into the aggregate
// progress row.
type QuizService struct {
	QuizRepo     *repository.QuizRepository
	AttemptRepo  *repository.QuizAttemptRepository
	ProgressRepo *repository.ProgressRepository
	DB           *gorm.DB
}

func NewQuizService(
	quizRepo *repository.QuizRepository,
	attemptRepo *repository.QuizAttemptRepository,
	progressRepo *repository.ProgressRepository,
	db *gorm.DB,
) *QuizService {
	return &QuizService{
		QuizRepo:     quizRepo,
		AttemptRepo:  attemptRepo,
		ProgressRepo: progressRepo,
		DB:           db,
	}
}

type QuizSubmission struct {
	UserID  string            `json:"user_id" binding:"required"`
	QuizID  string            `json:"quiz_id" binding:"required"`
	Answers map[string]string `json:"answers"`
}

type QuizResult struct {
	QuizID   string  `json:"quiz_id"`
	Score    float64 `json:"score"`
	Passed   bool    `json:"passed"`
	Feedback string  `json:"feedback"`
}

// Grade scores answers against the quiz's canonical answers. Policy is
// fixed: exact string equality, no partial credit, no normalization.
// A quiz with zero questions scores 0.
func Grade(quiz *model.Quiz, answers map[string]string) (score float64, passed bool) {
	total := len(quiz.Questions)
	if total == 0 {
		return 0, 0 >= quiz.PassingScore
	}

	correct := 0
	for _, q := range quiz.Questions {
		if submitted, ok := answers[q.ID]; ok && submitted == q.CorrectAnswer {
			correct++
		}
	}

	score = float64(correct) / float64(total)
	return score, score >= quiz.PassingScore
}

// Submit grades the submission, then atomically appends the attempt
// record and overwrites the quiz's entry in the aggregate progress row.
// The attempt log keeps full history; the aggregate keeps only the
// latest result per quiz.
func (s *QuizService) Submit(ctx context.Context, sub QuizSubmission) (*QuizResult, error) {
	quiz, err := s.QuizRepo.FindByID(sub.QuizID)
	if err != nil {
		return nil, err
	}

	score, passed := Grade(quiz, sub.Answers)
	now := time.Now()

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		attempt := &model.QuizAttempt{
			UserID:      sub.UserID,
			QuizID:      sub.QuizID,
			Answers:     datatypes.NewJSONType(sub.Answers),
			Score:       score,
			Passed:      passed,
			CompletedAt: now,
		}
		if err := s.AttemptRepo.Create(tx, attempt); err != nil {
			return err
		}

		progress, err := s.ProgressRepo.GetOrCreateForUpdate(tx, sub.UserID, quiz.CourseID)
		if err != nil {
			return err
		}

		scores := progress.QuizScores.Data()
		if scores == nil {
			scores = make(map[string]model.QuizScoreEntry)
		}
		scores[sub.QuizID] = model.QuizScoreEntry{
			Score:  score,
			Passed: passed,
			Date:   now,
		}
		progress.QuizScores = datatypes.NewJSONType(scores)
		progress.LastAccessed = now

		return s.ProgressRepo.Save(tx, progress)
	})
	if err != nil {
		return nil, err
	}

	feedback := feedbackFailed
	if passed {
		feedback = feedbackPassed
	}

	return &QuizResult{
		QuizID:   sub.QuizID,
		Score:    score,
		Passed:   passed,
		Feedback: feedback,
	}, nil
}

// Attempts returns a user's full submission history for one quiz,
// newest first.
func (s *QuizService) Attempts(userID, quizID string) ([]model.QuizAttempt, error) {
	return s.AttemptRepo.ListByUserAndQuiz(userID, quizID)
}
