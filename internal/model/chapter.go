package model

// Chapter belongs to a course and is linked into the course's chapter
// chain via explicit next/prev pointers. Listing uses the Order column;
// navigation follows the pointers.
//
// swagger:model Chapter
type Chapter struct {
	StringIDBase
	CourseID      string  `gorm:"size:64;index;not null" json:"courseId"`
	Title         string  `gorm:"size:255;index" json:"title"`
	Content       string  `gorm:"type:text" json:"content"`
	NextChapterID *string `gorm:"size:64" json:"nextChapterId"`
	PrevChapterID *string `gorm:"size:64" json:"prevChapterId"`
	Order         int     `gorm:"default:0" json:"order"`
}

func (Chapter) TableName() string {
	return "chapters"
}
