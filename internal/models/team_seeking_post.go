package models

import (
	"time"
)

// TeamSeekingPost 팀 구하기 글 (자기 PR)
type TeamSeekingPost struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Title           string     `gorm:"not null" json:"title"`
	WriterID        uint       `gorm:"not null;index" json:"writer_id"`
	Writer          User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"writer"`
	Content         string     `gorm:"type:text;not null" json:"content"`
	Category        string     `gorm:"size:32;not null;index" json:"category"`
	DesiredFields   StringList `gorm:"type:jsonb;serializer:json" json:"desired_fields"`
	Skills          StringList `gorm:"type:jsonb;serializer:json" json:"skills"`
	Experience      string     `gorm:"type:text" json:"experience"`
	DesiredPosition string     `json:"desired_position"`
	Hashtags        StringList `gorm:"type:jsonb;serializer:json" json:"hashtags"`
	Deadline        time.Time  `gorm:"not null" json:"deadline"`
	Scraps          int        `gorm:"not null;default:0" json:"scraps"`
	ScrappedBy      IDList     `gorm:"type:jsonb;serializer:json" json:"scrapped_by"`
	Comments        int        `gorm:"not null;default:0" json:"comments"`
	Views           int        `gorm:"not null;default:0" json:"views"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (p *TeamSeekingPost) ToggleScrap(userID uint) bool {
	now := p.ScrappedBy.Toggle(userID)
	p.Scraps = len(p.ScrappedBy)
	return now
}

func (p *TeamSeekingPost) IsScrappedBy(userID uint) bool {
	return p.ScrappedBy.Contains(userID)
}
