package service

import (
	"context"
	"course_companion_backend/internal/model"
	"course_companion_backend/internal/repository"
	"course_companion_backend/internal/util"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	courseCacheKeyPrefix  = "course:"
	chapterCacheKeyPrefix = "chapter:"
	quizCacheKeyPrefix    = "quiz:"
	contentCacheTTL       = 5 * time.Minute
)

// ContentService serves the read-mostly content store: courses, their
// chapter chains and quizzes. Single-entity lookups go through a redis
// read-through cache when a client is configured.
type ContentService struct {
	CourseRepo  *repository.CourseRepository
	ChapterRepo *repository.ChapterRepository
	QuizRepo    *repository.QuizRepository
	Redis       *redis.Client
}

func NewContentService(
	courseRepo *repository.CourseRepository,
	chapterRepo *repository.ChapterRepository,
	quizRepo *repository.QuizRepository,
	rdb *redis.Client,
) *ContentService {
	return &ContentService{
		CourseRepo:  courseRepo,
		ChapterRepo: chapterRepo,
		QuizRepo:    quizRepo,
		Redis:       rdb,
	}
}

func cacheGet[T any](ctx context.Context, rdb *redis.Client, key string) (*T, bool) {
	if rdb == nil {
		return nil, false
	}
	raw, err := rdb.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, false
	}
	return &v, true
}

func cacheSet(ctx context.Context, rdb *redis.Client, key string, v interface{}) {
	if rdb == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	rdb.Set(ctx, key, raw, contentCacheTTL)
}

func (s *ContentService) ListCourses() ([]model.Course, error) {
	return s.CourseRepo.List()
}

func (s *ContentService) GetCourse(ctx context.Context, id string) (*model.Course, error) {
	if course, ok := cacheGet[model.Course](ctx, s.Redis, courseCacheKeyPrefix+id); ok {
		return course, nil
	}
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	cacheSet(ctx, s.Redis, courseCacheKeyPrefix+id, course)
	return course, nil
}

// ListChapters returns the course's chapter chain ordered by position.
// An unknown course is a NotFound even when it would also be empty.
func (s *ContentService) ListChapters(ctx context.Context, courseID string) ([]model.Chapter, error) {
	chapters, err := s.ChapterRepo.ListByCourse(courseID)
	if err != nil {
		return nil, err
	}
	if len(chapters) == 0 {
		if _, err := s.GetCourse(ctx, courseID); err != nil {
			return nil, err
		}
	}
	return chapters, nil
}

func (s *ContentService) GetChapter(ctx context.Context, id string) (*model.Chapter, error) {
	if chapter, ok := cacheGet[model.Chapter](ctx, s.Redis, chapterCacheKeyPrefix+id); ok {
		return chapter, nil
	}
	chapter, err := s.ChapterRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	cacheSet(ctx, s.Redis, chapterCacheKeyPrefix+id, chapter)
	return chapter, nil
}

// NextChapter follows the current chapter's forward pointer. A nil
// pointer means the chain ends here; a dangling pointer is a data
// integrity condition and is reported as NotFound, not a failure.
func (s *ContentService) NextChapter(ctx context.Context, chapterID string) (*model.Chapter, error) {
	current, err := s.GetChapter(ctx, chapterID)
	if err != nil {
		return nil, err
	}
	if current.NextChapterID == nil || *current.NextChapterID == "" {
		return nil, util.ErrNoNextChapter
	}
	return s.GetChapter(ctx, *current.NextChapterID)
}

// PrevChapter follows the backward pointer; see NextChapter.
func (s *ContentService) PrevChapter(ctx context.Context, chapterID string) (*model.Chapter, error) {
	current, err := s.GetChapter(ctx, chapterID)
	if err != nil {
		return nil, err
	}
	if current.PrevChapterID == nil || *current.PrevChapterID == "" {
		return nil, util.ErrNoPrevChapter
	}
	return s.GetChapter(ctx, *current.PrevChapterID)
}

func (s *ContentService) GetQuiz(ctx context.Context, id string) (*model.Quiz, error) {
	if quiz, ok := cacheGet[model.Quiz](ctx, s.Redis, quizCacheKeyPrefix+id); ok {
		return quiz, nil
	}
	quiz, err := s.QuizRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	cacheSet(ctx, s.Redis, quizCacheKeyPrefix+id, quiz)
	return quiz, nil
}

func (s *ContentService) ListQuizzesByCourse(courseID string) ([]model.Quiz, error) {
	return s.QuizRepo.ListByCourse(courseID)
}
