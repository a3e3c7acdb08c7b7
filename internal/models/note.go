package models

import (
	"time"
)

type Note struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	AuthorID uint   `gorm:"index;not null"`
	Title    string `json:"title" gorm:"not null"`
	Text     string `json:"text" gorm:"type:text;not null"`
	Slug     string `json:"slug" gorm:"uniqueIndex;not null;size:100"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Author User `json:"-" gorm:"foreignKey:AuthorID"`
}
