package services

import (
	"fmt"
	"testing"
	"time"

	"linker/internal/db"
	"linker/internal/models"
)

var userSeq int

// makeUser inserts a user with a unique nickname and email.
func makeUser(t *testing.T, name string) *models.User {
	t.Helper()
	userSeq++
	user := models.User{
		Name:     name,
		Nickname: fmt.Sprintf("%s%d", name, userSeq),
		Email:    fmt.Sprintf("%s%d@test.ac.kr", name, userSeq),
		Password: "hashed-password",
	}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return &user
}

func makeRecruit(t *testing.T, writerID uint, title, category string) *models.RecruitmentPost {
	t.Helper()
	post := models.RecruitmentPost{
		Title:        title,
		WriterID:     writerID,
		Content:      "본문",
		Type:         models.RecruitTypeRecruit,
		Category:     category,
		Deadline:     time.Now().AddDate(0, 1, 0),
		Status:       models.StatusRecruiting,
		RecruitCount: 3,
		CurrentCount: 1,
		Method:       models.MethodOnline,
	}
	if err := db.DB.Create(&post).Error; err != nil {
		t.Fatalf("create recruitment post %s: %v", title, err)
	}
	return &post
}

func makeSeeking(t *testing.T, writerID uint, title, category string) *models.TeamSeekingPost {
	t.Helper()
	post := models.TeamSeekingPost{
		Title:    title,
		WriterID: writerID,
		Content:  "본문",
		Category: category,
		Deadline: time.Now().AddDate(0, 1, 0),
	}
	if err := db.DB.Create(&post).Error; err != nil {
		t.Fatalf("create team seeking post %s: %v", title, err)
	}
	return &post
}

func makeCommunity(t *testing.T, writerID uint, title, category string) *models.CommunityPost {
	t.Helper()
	post := models.CommunityPost{
		Title:    title,
		WriterID: writerID,
		Content:  "본문",
		Category: category,
	}
	if err := db.DB.Create(&post).Error; err != nil {
		t.Fatalf("create community post %s: %v", title, err)
	}
	return &post
}

// scrapRecruit toggles userID's scrap on the post and persists it, the
// way the scrap handler does.
func scrapRecruit(t *testing.T, post *models.RecruitmentPost, userID uint) {
	t.Helper()
	post.ToggleScrap(userID)
	if err := db.DB.Model(post).Select("scraps", "scrapped_by").
		Updates(map[string]interface{}{"scraps": post.Scraps, "scrapped_by": post.ScrappedBy}).Error; err != nil {
		t.Fatalf("persist scrap: %v", err)
	}
}

func scrapSeeking(t *testing.T, post *models.TeamSeekingPost, userID uint) {
	t.Helper()
	post.ToggleScrap(userID)
	if err := db.DB.Model(post).Select("scraps", "scrapped_by").
		Updates(map[string]interface{}{"scraps": post.Scraps, "scrapped_by": post.ScrappedBy}).Error; err != nil {
		t.Fatalf("persist scrap: %v", err)
	}
}

func likeCommunity(t *testing.T, post *models.CommunityPost, userID uint) {
	t.Helper()
	post.ToggleLike(userID)
	if err := db.DB.Model(post).Select("likes", "liked_by").
		Updates(map[string]interface{}{"likes": post.Likes, "liked_by": post.LikedBy}).Error; err != nil {
		t.Fatalf("persist like: %v", err)
	}
}

func recruitByID(t *testing.T, id uint) *models.RecruitmentPost {
	t.Helper()
	var post models.RecruitmentPost
	if err := db.DB.First(&post, id).Error; err != nil {
		t.Fatalf("reload recruitment post %d: %v", id, err)
	}
	return &post
}

func communityByID(t *testing.T, id uint) *models.CommunityPost {
	t.Helper()
	var post models.CommunityPost
	if err := db.DB.First(&post, id).Error; err != nil {
		t.Fatalf("reload community post %d: %v", id, err)
	}
	return &post
}
