package util

import "errors"

var (
	ErrCourseNotFound  = errors.New("Course not found")
	ErrChapterNotFound = errors.New("Chapter not found")
	ErrQuizNotFound    = errors.New("Quiz not found")
	ErrNoNextChapter   = errors.New("No next chapter available")
	ErrNoPrevChapter   = errors.New("No previous chapter available")
)

// IsNotFound reports whether err belongs to the not-found taxonomy and
// should surface as a 404 rather than a generic failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCourseNotFound) ||
		errors.Is(err, ErrChapterNotFound) ||
		errors.Is(err, ErrQuizNotFound) ||
		errors.Is(err, ErrNoNextChapter) ||
		errors.Is(err, ErrNoPrevChapter)
}
