package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Nickname  string    `gorm:"uniqueIndex;not null" json:"nickname"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"` // stored lowercased
	Password  string    `gorm:"not null" json:"-"`                 // bcrypt hash
	Folders   []Folder  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"folders"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// No DeletedAt: account removal is a hard delete with its own cascade
}
