package services

import (
	"linker/internal/db"
	"linker/internal/models"

	"gorm.io/gorm"
)

// FindRecruit loads a recruitment post with its writer for the detail
// page and counts the view. Every fetch counts; there is no per-viewer
// dedup.
func FindRecruit(id uint) (*models.RecruitmentPost, error) {
	var post models.RecruitmentPost
	if err := db.DB.Preload("Writer").First(&post, id).Error; err != nil {
		return nil, ErrNotFound
	}
	if err := db.DB.Model(&post).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		return nil, err
	}
	post.Views++
	return &post, nil
}

// FindSeeking is the team-seeking counterpart of FindRecruit.
func FindSeeking(id uint) (*models.TeamSeekingPost, error) {
	var post models.TeamSeekingPost
	if err := db.DB.Preload("Writer").First(&post, id).Error; err != nil {
		return nil, ErrNotFound
	}
	if err := db.DB.Model(&post).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		return nil, err
	}
	post.Views++
	return &post, nil
}
