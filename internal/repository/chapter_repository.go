package repository

import (
	"course_companion_backend/internal/model"
	"course_companion_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type ChapterRepository struct {
	DB *gorm.DB
}

func NewChapterRepository(db *gorm.DB) *ChapterRepository {
	return &ChapterRepository{DB: db}
}

func (r *ChapterRepository) FindByID(id string) (*model.Chapter, error) {
	var chapter model.Chapter
	err := r.DB.First(&chapter, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrChapterNotFound
	}
	if err != nil {
		return nil, err
	}
	return &chapter, nil
}

// ListByCourse returns the course's chapters ordered by their position
// in the chain.
func (r *ChapterRepository) ListByCourse(courseID string) ([]model.Chapter, error) {
	var chapters []model.Chapter
	err := r.DB.Where("course_id = ?", courseID).Order("`order` asc").Find(&chapters).Error
	return chapters, err
}

func (r *ChapterRepository) ListByIDs(ids []string) ([]model.Chapter, error) {
	var chapters []model.Chapter
	if len(ids) == 0 {
		return chapters, nil
	}
	err := r.DB.Where("id IN ?", ids).Find(&chapters).Error
	return chapters, err
}

func (r *ChapterRepository) CountByCourse(courseID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Chapter{}).Where("course_id = ?", courseID).Count(&count).Error
	return count, err
}

func (r *ChapterRepository) Create(chapter *model.Chapter) error {
	return r.DB.Create(chapter).Error
}
