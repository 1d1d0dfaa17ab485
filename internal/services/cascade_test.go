package services

import (
	"errors"
	"testing"

	"linker/internal/db"
	"linker/internal/models"
)

func TestDeleteAccountNotFound(t *testing.T) {
	resetTables(t)
	if err := DeleteAccount(12345); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing user: err = %v, want ErrNotFound", err)
	}
}

// TestDeleteAccountRemovesEveryTrace drives the full removal sequence:
// the user's own content disappears, their comments stop counting on
// other people's posts, and every scrap/like list forgets them.
func TestDeleteAccountRemovesEveryTrace(t *testing.T) {
	resetTables(t)
	victim := makeUser(t, "victim")
	other := makeUser(t, "other")

	// Victim's own content.
	victimRecruit := makeRecruit(t, victim.ID, "희생자 모집 글", "project")
	victimCommunity := makeCommunity(t, victim.ID, "희생자 커뮤니티 글", models.CommunityCategoryFree)
	if err := db.DB.Create(&models.UserDescription{
		UserID: victim.ID,
		Role:   "백엔드",
		Bio:    "소개",
	}).Error; err != nil {
		t.Fatalf("create description: %v", err)
	}
	folder, err := CreateFolder(victim.ID, "희생자 폴더")
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}

	// Other's content the victim interacted with.
	otherRecruit := makeRecruit(t, other.ID, "타인 모집 글", "study")
	otherCommunity := makeCommunity(t, other.ID, "타인 커뮤니티 글", models.CommunityCategoryQnA)

	scrapRecruit(t, otherRecruit, victim.ID)
	likeCommunity(t, otherCommunity, victim.ID)

	// Victim comments on other's post; other comments on victim's post.
	if _, _, err := CreateComment(victim.ID, otherCommunity.ID, models.PostKindCommunity, "희생자 댓글"); err != nil {
		t.Fatalf("victim comment: %v", err)
	}
	otherComment, _, err := CreateComment(other.ID, victimRecruit.ID, models.PostKindRecruit, "타인 댓글")
	if err != nil {
		t.Fatalf("other comment: %v", err)
	}
	// Victim likes the other's comment too.
	commentOnOther, _, err := CreateComment(other.ID, otherCommunity.ID, models.PostKindCommunity, "좋아요 받을 댓글")
	if err != nil {
		t.Fatalf("comment to like: %v", err)
	}
	commentOnOther.ToggleLike(victim.ID)
	if err := db.DB.Model(commentOnOther).Select("likes", "liked_by").
		Updates(map[string]interface{}{"likes": commentOnOther.Likes, "liked_by": commentOnOther.LikedBy}).Error; err != nil {
		t.Fatalf("persist comment like: %v", err)
	}

	if err := DeleteAccount(victim.ID); err != nil {
		t.Fatalf("DeleteAccount: %v", err)
	}

	// The user row is gone, folders with it.
	if err := db.DB.First(&models.User{}, victim.ID).Error; err == nil {
		t.Errorf("user row still exists")
	}
	var descCount int64
	db.DB.Model(&models.UserDescription{}).Where("user_id = ?", victim.ID).Count(&descCount)
	if descCount != 0 {
		t.Errorf("description still exists")
	}
	var folderCount int64
	db.DB.Model(&models.Folder{}).Where("id = ?", folder.ID).Count(&folderCount)
	if folderCount != 0 {
		t.Errorf("folder still exists")
	}

	// Authored posts gone, and the comments under them regardless of author.
	var authored int64
	db.DB.Model(&models.RecruitmentPost{}).Where("id = ?", victimRecruit.ID).Count(&authored)
	if authored != 0 {
		t.Errorf("victim recruitment post still exists")
	}
	db.DB.Model(&models.CommunityPost{}).Where("id = ?", victimCommunity.ID).Count(&authored)
	if authored != 0 {
		t.Errorf("victim community post still exists")
	}
	db.DB.Model(&models.CommunityComment{}).Where("id = ?", otherComment.ID).Count(&authored)
	if authored != 0 {
		t.Errorf("comment under victim's post still exists")
	}

	// Victim's comment on the other's post is gone and the counter moved
	// back down. One comment remains (the other's own).
	reloaded := communityByID(t, otherCommunity.ID)
	if reloaded.Comments != 1 {
		t.Errorf("other post comment counter = %d, want 1", reloaded.Comments)
	}
	var victimComments int64
	db.DB.Model(&models.CommunityComment{}).Where("writer_id = ?", victim.ID).Count(&victimComments)
	if victimComments != 0 {
		t.Errorf("victim comments remain = %d", victimComments)
	}

	// Membership lists forgot the victim and counters resynced.
	rec := recruitByID(t, otherRecruit.ID)
	if rec.ScrappedBy.Contains(victim.ID) {
		t.Errorf("scrap list still contains victim")
	}
	if rec.Scraps != len(rec.ScrappedBy) {
		t.Errorf("scraps = %d, list length = %d", rec.Scraps, len(rec.ScrappedBy))
	}
	if reloaded.LikedBy.Contains(victim.ID) {
		t.Errorf("like list still contains victim")
	}
	if reloaded.Likes != 0 {
		t.Errorf("post likes = %d, want 0", reloaded.Likes)
	}
	var likedComment models.CommunityComment
	if err := db.DB.First(&likedComment, commentOnOther.ID).Error; err != nil {
		t.Fatalf("reload liked comment: %v", err)
	}
	if likedComment.LikedBy.Contains(victim.ID) || likedComment.Likes != 0 {
		t.Errorf("comment likes = %d, contains victim = %v", likedComment.Likes, likedComment.LikedBy.Contains(victim.ID))
	}

	// The other user is untouched.
	if err := db.DB.First(&models.User{}, other.ID).Error; err != nil {
		t.Errorf("other user lost: %v", err)
	}
}

// TestDeleteAccountSharedScrap keeps a third party's scrap intact while
// the deleted user's membership goes away.
func TestDeleteAccountSharedScrap(t *testing.T) {
	resetTables(t)
	victim := makeUser(t, "victim")
	keeper := makeUser(t, "keeper")
	writer := makeUser(t, "writer")

	post := makeRecruit(t, writer.ID, "같이 스크랩한 글", "project")
	scrapRecruit(t, post, victim.ID)
	scrapRecruit(t, post, keeper.ID)

	if err := DeleteAccount(victim.ID); err != nil {
		t.Fatalf("DeleteAccount: %v", err)
	}

	rec := recruitByID(t, post.ID)
	if !rec.ScrappedBy.Contains(keeper.ID) {
		t.Errorf("keeper's scrap lost")
	}
	if rec.ScrappedBy.Contains(victim.ID) {
		t.Errorf("victim still in scrap list")
	}
	if rec.Scraps != 1 {
		t.Errorf("scraps = %d, want 1", rec.Scraps)
	}
}
