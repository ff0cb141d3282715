package service

import (
	"testing"

	"course_companion_backend/internal/repository"
	"course_companion_backend/pkg/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database seeded with the sample
// course. Single connection, so every query sees the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}

func newTestRepos(db *gorm.DB) (
	*repository.CourseRepository,
	*repository.ChapterRepository,
	*repository.QuizRepository,
	*repository.QuizAttemptRepository,
	*repository.ProgressRepository,
) {
	return repository.NewCourseRepository(db),
		repository.NewChapterRepository(db),
		repository.NewQuizRepository(db),
		repository.NewQuizAttemptRepository(db),
		repository.NewProgressRepository(db)
}

func newContentServiceForTest(t *testing.T) (*ContentService, *gorm.DB) {
	db := newTestDB(t)
	courseRepo, chapterRepo, quizRepo, _, _ := newTestRepos(db)
	return NewContentService(courseRepo, chapterRepo, quizRepo, nil), db
}

func newQuizServiceForTest(t *testing.T) (*QuizService, *gorm.DB) {
	db := newTestDB(t)
	_, _, quizRepo, attemptRepo, progressRepo := newTestRepos(db)
	return NewQuizService(quizRepo, attemptRepo, progressRepo, db), db
}

func newProgressServiceForTest(t *testing.T) (*ProgressService, *gorm.DB) {
	db := newTestDB(t)
	courseRepo, chapterRepo, _, _, progressRepo := newTestRepos(db)
	return NewProgressService(courseRepo, chapterRepo, progressRepo, db), db
}
