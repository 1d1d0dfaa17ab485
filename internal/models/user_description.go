package models

import (
	"time"
)

// UserDescription is the extended profile record shown on the profile
// and main pages, upserted separately from the User document.
type UserDescription struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Role      string    `json:"role"`   // e.g. 백엔드, 디자이너
	School    string    `json:"school"` // 학교/전공
	Bio       string    `gorm:"size:500" json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
