package service

import (
	"course_companion_backend/internal/model"
	"sort"
	"strings"

	"gorm.io/gorm"
)

// Fixed relevance scores; ranking is by these constants only, ties keep
// scan order (stable sort).
const (
	relevanceCourse         = 0.9
	relevanceChapterTitle   = 0.8
	relevanceChapterContent = 0.6

	DefaultSearchLimit = 10
)

// SearchService does a case-insensitive substring match over course
// titles/descriptions and chapter titles/content. Deliberately simple:
// LIKE queries, no index, no scoring model.
type SearchService struct {
	db *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

type SearchResult struct {
	Type        string  `json:"type"`
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	CourseID    string  `json:"course_id,omitempty"`
	CourseTitle string  `json:"course_title,omitempty"`
	Relevance   float64 `json:"relevance"`
}

func (s *SearchService) Search(query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	results, err := s.searchCourses(query, limit)
	if err != nil {
		return nil, err
	}

	chapterResults, err := s.searchChapters(query, limit)
	if err != nil {
		return nil, err
	}
	results = append(results, chapterResults...)

	sortByRelevance(results)
	return truncate(results, limit), nil
}

func (s *SearchService) SearchCourses(query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	results, err := s.searchCourses(query, limit)
	if err != nil {
		return nil, err
	}
	sortByRelevance(results)
	return truncate(results, limit), nil
}

func (s *SearchService) SearchChapters(query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	results, err := s.searchChapters(query, limit)
	if err != nil {
		return nil, err
	}
	sortByRelevance(results)
	return truncate(results, limit), nil
}

func (s *SearchService) searchCourses(query string, limit int) ([]SearchResult, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var courses []model.Course
	err := s.db.
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Limit(limit).
		Find(&courses).Error
	if err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(courses))
	for _, course := range courses {
		results = append(results, SearchResult{
			Type:        "course",
			ID:          course.ID,
			Title:       course.Title,
			Description: course.Description,
			Relevance:   relevanceCourse,
		})
	}
	return results, nil
}

func (s *SearchService) searchChapters(query string, limit int) ([]SearchResult, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var chapters []model.Chapter
	err := s.db.
		Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern).
		Limit(limit).
		Find(&chapters).Error
	if err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(chapters))
	for _, chapter := range chapters {
		courseTitle := "Unknown Course"
		var course model.Course
		if err := s.db.First(&course, "id = ?", chapter.CourseID).Error; err == nil {
			courseTitle = course.Title
		}

		relevance := relevanceChapterContent
		if strings.Contains(strings.ToLower(chapter.Title), strings.ToLower(query)) {
			relevance = relevanceChapterTitle
		}

		results = append(results, SearchResult{
			Type:        "chapter",
			ID:          chapter.ID,
			Title:       chapter.Title,
			CourseID:    chapter.CourseID,
			CourseTitle: courseTitle,
			Relevance:   relevance,
		})
	}
	return results, nil
}

func sortByRelevance(results []SearchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})
}

func truncate(results []SearchResult, limit int) []SearchResult {
	if len(results) > limit {
		return results[:limit]
	}
	return results
}
