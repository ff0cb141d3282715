package service

import (
	"context"
	"errors"
	"testing"

	"course_companion_backend/internal/model"
	"course_companion_backend/internal/util"
)

func TestListCourses(t *testing.T) {
	svc, _ := newContentServiceForTest(t)

	courses, err := svc.ListCourses()
	if err != nil {
		t.Fatalf("ListCourses: %v", err)
	}
	if len(courses) != 1 || courses[0].ID != "course-python-intro" {
		t.Fatalf("courses = %+v", courses)
	}
}

func TestGetCourse(t *testing.T) {
	svc, _ := newContentServiceForTest(t)
	ctx := context.Background()

	course, err := svc.GetCourse(ctx, "course-python-intro")
	if err != nil {
		t.Fatalf("GetCourse: %v", err)
	}
	if course.Title != "Introduction to Modern Python" {
		t.Errorf("title = %q", course.Title)
	}

	if _, err := svc.GetCourse(ctx, "course-missing"); !errors.Is(err, util.ErrCourseNotFound) {
		t.Errorf("err = %v, want ErrCourseNotFound", err)
	}
}

func TestListChaptersOrdered(t *testing.T) {
	svc, _ := newContentServiceForTest(t)

	chapters, err := svc.ListChapters(context.Background(), "course-python-intro")
	if err != nil {
		t.Fatalf("ListChapters: %v", err)
	}
	want := []string{"ch1-intro", "ch2-basics", "ch3-functions"}
	if len(chapters) != len(want) {
		t.Fatalf("chapters = %d, want %d", len(chapters), len(want))
	}
	for i, id := range want {
		if chapters[i].ID != id {
			t.Errorf("chapters[%d] = %s, want %s", i, chapters[i].ID, id)
		}
	}
}

func TestListChaptersUnknownCourse(t *testing.T) {
	svc, _ := newContentServiceForTest(t)

	if _, err := svc.ListChapters(context.Background(), "course-missing"); !errors.Is(err, util.ErrCourseNotFound) {
		t.Fatalf("err = %v, want ErrCourseNotFound", err)
	}
}

func TestChapterNavigation(t *testing.T) {
	svc, _ := newContentServiceForTest(t)
	ctx := context.Background()

	next, err := svc.NextChapter(ctx, "ch1-intro")
	if err != nil {
		t.Fatalf("NextChapter: %v", err)
	}
	if next.ID != "ch2-basics" {
		t.Errorf("next of ch1 = %s", next.ID)
	}

	prev, err := svc.PrevChapter(ctx, "ch2-basics")
	if err != nil {
		t.Fatalf("PrevChapter: %v", err)
	}
	if prev.ID != "ch1-intro" {
		t.Errorf("prev of ch2 = %s", prev.ID)
	}

	// 链两端
	if _, err := svc.NextChapter(ctx, "ch3-functions"); !errors.Is(err, util.ErrNoNextChapter) {
		t.Errorf("next of last: err = %v, want ErrNoNextChapter", err)
	}
	if _, err := svc.PrevChapter(ctx, "ch1-intro"); !errors.Is(err, util.ErrNoPrevChapter) {
		t.Errorf("prev of first: err = %v, want ErrNoPrevChapter", err)
	}
}

func TestNavigationSymmetry(t *testing.T) {
	svc, db := newContentServiceForTest(t)
	ctx := context.Background()

	var chapters []model.Chapter
	if err := db.Find(&chapters).Error; err != nil {
		t.Fatalf("load chapters: %v", err)
	}

	for _, ch := range chapters {
		if ch.NextChapterID != nil {
			next, err := svc.GetChapter(ctx, *ch.NextChapterID)
			if err != nil {
				t.Fatalf("next of %s: %v", ch.ID, err)
			}
			if next.PrevChapterID == nil || *next.PrevChapterID != ch.ID {
				t.Errorf("pointer asymmetry between %s and %s", ch.ID, next.ID)
			}
		}
	}
}

func TestNavigationDanglingPointer(t *testing.T) {
	svc, db := newContentServiceForTest(t)

	dangling := "ch-ghost"
	if err := db.Model(&model.Chapter{}).
		Where("id = ?", "ch3-functions").
		Update("next_chapter_id", dangling).Error; err != nil {
		t.Fatalf("corrupt pointer: %v", err)
	}

	if _, err := svc.NextChapter(context.Background(), "ch3-functions"); !errors.Is(err, util.ErrChapterNotFound) {
		t.Fatalf("err = %v, want ErrChapterNotFound", err)
	}
}

func TestGetQuiz(t *testing.T) {
	svc, _ := newContentServiceForTest(t)
	ctx := context.Background()

	quiz, err := svc.GetQuiz(ctx, "quiz-python-basics")
	if err != nil {
		t.Fatalf("GetQuiz: %v", err)
	}
	if len(quiz.Questions) != 2 {
		t.Errorf("questions = %d, want 2", len(quiz.Questions))
	}
	if quiz.PassingScore != 0.7 {
		t.Errorf("passing score = %v", quiz.PassingScore)
	}

	if _, err := svc.GetQuiz(ctx, "quiz-missing"); !errors.Is(err, util.ErrQuizNotFound) {
		t.Errorf("err = %v, want ErrQuizNotFound", err)
	}
}

func TestListQuizzesByCourse(t *testing.T) {
	svc, _ := newContentServiceForTest(t)

	quizzes, err := svc.ListQuizzesByCourse("course-python-intro")
	if err != nil {
		t.Fatalf("ListQuizzesByCourse: %v", err)
	}
	if len(quizzes) != 1 || quizzes[0].ID != "quiz-python-basics" {
		t.Fatalf("quizzes = %+v", quizzes)
	}
}
