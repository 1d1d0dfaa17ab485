package models

import (
	"time"
)

// Recruitment post type markers.
const (
	RecruitTypeRecruit = "recruit" // 팀원 모집하기
	RecruitTypeFind    = "find"    // 팀 구하기
)

// Recruitment status.
const (
	StatusRecruiting = "recruiting"
	StatusClosed     = "closed"
)

// Working method.
const (
	MethodOnline  = "online"
	MethodOffline = "offline"
	MethodHybrid  = "hybrid"
)

// Board categories. Campus boards list {project, study}, contest
// boards list {design, develop, planning}; both share the same two
// post collections.
var (
	CampusCategories  = []string{"project", "study"}
	ContestCategories = []string{"design", "develop", "planning"}
)

// RecruitmentPost 팀원 모집 글
type RecruitmentPost struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Title        string     `gorm:"not null" json:"title"`
	WriterID     uint       `gorm:"not null;index" json:"writer_id"`
	Writer       User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"writer"`
	Content      string     `gorm:"type:text;not null" json:"content"`
	Type         string     `gorm:"size:16;not null;default:'recruit'" json:"type"`
	Category     string     `gorm:"size:32;not null;index" json:"category"`
	Deadline     time.Time  `gorm:"not null" json:"deadline"`
	Status       string     `gorm:"size:16;not null;default:'recruiting'" json:"status"`
	RecruitCount int        `gorm:"not null;default:1" json:"recruit_count"`
	CurrentCount int        `gorm:"not null;default:1" json:"current_count"`
	TechStack    StringList `gorm:"type:jsonb;serializer:json" json:"tech_stack"`
	Positions    StringList `gorm:"type:jsonb;serializer:json" json:"positions"`
	Method       string     `gorm:"size:16;not null;default:'online'" json:"method"`
	Hashtags     StringList `gorm:"type:jsonb;serializer:json" json:"hashtags"`
	Scraps       int        `gorm:"not null;default:0" json:"scraps"`
	ScrappedBy   IDList     `gorm:"type:jsonb;serializer:json" json:"scrapped_by"`
	Comments     int        `gorm:"not null;default:0" json:"comments"`
	Views        int        `gorm:"not null;default:0" json:"views"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ToggleScrap flips userID's scrap membership and resyncs the counter
// to the list length, returning the post-toggle membership state.
func (p *RecruitmentPost) ToggleScrap(userID uint) bool {
	now := p.ScrappedBy.Toggle(userID)
	p.Scraps = len(p.ScrappedBy)
	return now
}

// IsScrappedBy reports whether userID currently scraps the post.
func (p *RecruitmentPost) IsScrappedBy(userID uint) bool {
	return p.ScrappedBy.Contains(userID)
}
