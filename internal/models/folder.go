package models

import (
	"time"
)

// Post kinds a folder entry may reference.
const (
	PostKindRecruit   = "recruit"
	PostKindSeeking   = "seeking"
	PostKindCommunity = "community"
)

// ValidPostKind reports whether kind is one of the three post kinds.
func ValidPostKind(kind string) bool {
	return kind == PostKindRecruit || kind == PostKindSeeking || kind == PostKindCommunity
}

// Folder is a user-owned named collection of saved posts.
// Folder names are unique per owner (enforced in the service layer so
// the comparison happens on trimmed names).
type Folder struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	UserID    uint          `gorm:"not null;index" json:"user_id"`
	Name      string        `gorm:"not null" json:"name"`
	Entries   []FolderEntry `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"posts"`
	CreatedAt time.Time     `json:"created_at"`
}

// FolderEntry references a post by (id, kind). Insertion order is the
// display order; ascending primary key preserves it.
type FolderEntry struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	FolderID uint      `gorm:"not null;index;uniqueIndex:idx_folder_post" json:"folder_id"`
	PostID   uint      `gorm:"not null;uniqueIndex:idx_folder_post" json:"post_id"`
	PostType string    `gorm:"size:16;not null;uniqueIndex:idx_folder_post" json:"post_type"`
	AddedAt  time.Time `gorm:"autoCreateTime" json:"added_at"`
}
