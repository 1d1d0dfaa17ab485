package models

import (
	"time"
)

// Community categories.
const (
	CommunityCategoryFree = "free"
	CommunityCategoryQnA  = "qna"
	CommunityCategoryInfo = "info"
)

// ValidCommunityCategory reports whether c is a known category.
func ValidCommunityCategory(c string) bool {
	return c == CommunityCategoryFree || c == CommunityCategoryQnA || c == CommunityCategoryInfo
}

// CommunityPost 커뮤니티 글
type CommunityPost struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	WriterID  uint      `gorm:"not null;index" json:"writer_id"`
	Writer    User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"writer"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Category  string    `gorm:"size:16;not null;default:'free';index" json:"category"`
	Likes     int       `gorm:"not null;default:0" json:"likes"`
	LikedBy   IDList    `gorm:"type:jsonb;serializer:json" json:"liked_by"`
	Comments  int       `gorm:"not null;default:0" json:"comments"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToggleLike flips userID's like membership. The counter moves by
// exactly one per toggle, clamped at zero; the membership list stays
// authoritative.
func (p *CommunityPost) ToggleLike(userID uint) bool {
	now := p.LikedBy.Toggle(userID)
	if now {
		p.Likes++
	} else if p.Likes > 0 {
		p.Likes--
	}
	return now
}

// IsLikedBy reports whether userID currently likes the post.
func (p *CommunityPost) IsLikedBy(userID uint) bool {
	return p.LikedBy.Contains(userID)
}
