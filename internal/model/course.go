package model

import (
	"gorm.io/datatypes"
)

// swagger:model Course
type Course struct {
	StringIDBase
	Title         string                      `gorm:"size:255;index;not null" json:"title"`
	Description   string                      `gorm:"type:text" json:"description"`
	Prerequisites datatypes.JSONSlice[string] `gorm:"type:json" json:"prerequisites"`
}

func (Course) TableName() string {
	return "courses"
}
