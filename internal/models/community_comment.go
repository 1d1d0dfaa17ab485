package models

import (
	"time"
)

// CommunityComment serves every board: the parent is referenced by
// (PostType, PostID). Each collection keeps its own id sequence, so
// the discriminator is required to resolve the parent.
type CommunityComment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index:idx_comment_parent" json:"post_id"`
	PostType  string    `gorm:"size:16;not null;index:idx_comment_parent" json:"post_type"`
	WriterID  uint      `gorm:"not null;index" json:"writer_id"`
	Writer    User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"writer"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Likes     int       `gorm:"not null;default:0" json:"likes"`
	LikedBy   IDList    `gorm:"type:jsonb;serializer:json" json:"liked_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *CommunityComment) ToggleLike(userID uint) bool {
	now := c.LikedBy.Toggle(userID)
	if now {
		c.Likes++
	} else if c.Likes > 0 {
		c.Likes--
	}
	return now
}

func (c *CommunityComment) IsLikedBy(userID uint) bool {
	return c.LikedBy.Contains(userID)
}
