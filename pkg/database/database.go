package database

import (
	"course_companion_backend/internal/config"
	"course_companion_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := Seed(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Course{},
		&model.Chapter{},
		&model.Quiz{},
		&model.QuizAttempt{},
		&model.UserProgress{},
		&model.Subscription{},
		&model.HybridUsage{},
	)
}

// Seed inserts the sample Python course when the content store is empty.
// Idempotent: a non-empty courses table is left untouched.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Course{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	courseID := "course-python-intro"
	course := &model.Course{
		StringIDBase:  model.StringIDBase{ID: courseID},
		Title:         "Introduction to Modern Python",
		Description:   "Learn modern Python with typing and best practices",
		Prerequisites: datatypes.JSONSlice[string]{},
	}
	if err := db.Create(course).Error; err != nil {
		return err
	}

	// 章节链：next/prev 指针必须对称
	ch1 := "ch1-intro"
	ch2 := "ch2-basics"
	ch3 := "ch3-functions"
	chapters := []model.Chapter{
		{
			StringIDBase:  model.StringIDBase{ID: ch1},
			CourseID:      courseID,
			Title:         "Getting Started with Python",
			Content:       "# Getting Started\n\nPython is a versatile programming language...",
			NextChapterID: &ch2,
			Order:         1,
		},
		{
			StringIDBase:  model.StringIDBase{ID: ch2},
			CourseID:      courseID,
			Title:         "Python Basics",
			Content:       "# Python Basics\n\nVariables, data types, and operators...",
			NextChapterID: &ch3,
			PrevChapterID: &ch1,
			Order:         2,
		},
		{
			StringIDBase:  model.StringIDBase{ID: ch3},
			CourseID:      courseID,
			Title:         "Functions and Typing",
			Content:       "# Functions and Type Hints\n\nModern Python uses type hints...",
			PrevChapterID: &ch2,
			Order:         3,
		},
	}
	for i := range chapters {
		if err := db.Create(&chapters[i]).Error; err != nil {
			return err
		}
	}

	quiz := &model.Quiz{
		StringIDBase: model.StringIDBase{ID: "quiz-python-basics"},
		CourseID:     courseID,
		ChapterID:    ch2,
		Title:        "Python Basics Quiz",
		Questions: datatypes.JSONSlice[model.QuizQuestion]{
			{
				ID:            "q1",
				Question:      "What is the correct way to declare a variable in Python?",
				Options:       []string{"int x = 5", "var x = 5", "x = 5", "declare x = 5"},
				CorrectAnswer: "x = 5",
			},
			{
				ID:            "q2",
				Question:      "Which of these is a valid Python function declaration?",
				Options:       []string{"function my_func():", "def my_func():", "func my_func():", "void my_func():"},
				CorrectAnswer: "def my_func():",
			},
		},
		PassingScore: 0.7,
	}
	if err := db.Create(quiz).Error; err != nil {
		return err
	}

	log.Println("Seeded sample course data")
	return nil
}
