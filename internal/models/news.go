// internal/models/news.go
package models

import (
	"github.com/google/uuid"
)

type News struct {
	BaseModel
	Title     string    `json:"title" gorm:"size:255;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	AuthorID  uuid.UUID `json:"author_id" gorm:"type:uuid;not null;index"`
	Published bool      `json:"published" gorm:"default:false;index"`

	// Relationships
	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}
