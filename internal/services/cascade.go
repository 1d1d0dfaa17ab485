package services

import (
	"fmt"
	"log"

	"linker/internal/db"
	"linker/internal/models"

	"gorm.io/gorm"
)

// DeleteAccount removes a user and every trace of them: their
// comments (fixing parent counters), their posts (with all comments
// underneath), their memberships in every scrap/like list, their
// extended profile and finally the user row itself (folders cascade
// with it). Each step is idempotent, but the sequence is not wrapped
// in a single transaction; a mid-sequence failure leaves earlier
// steps applied and reports which step broke so cleanup can be
// re-run.
func DeleteAccount(userID uint) error {
	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return ErrNotFound
	}

	steps := []struct {
		name string
		run  func() error
	}{
		{"delete authored comments", func() error { return deleteAuthoredComments(userID) }},
		{"delete authored posts", func() error { return deleteAuthoredPosts(userID) }},
		{"remove scrap memberships", func() error { return removeScrapMemberships(userID) }},
		{"remove like memberships", func() error { return removeLikeMemberships(userID) }},
		{"delete profile description", func() error {
			return db.DB.Where("user_id = ?", userID).Delete(&models.UserDescription{}).Error
		}},
		{"delete user", func() error { return db.DB.Delete(&models.User{}, userID).Error }},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			log.Printf("account deletion for user %d failed at %q: %v", userID, step.name, err)
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}
	return nil
}

// deleteAuthoredComments removes every comment the user wrote and
// decrements each parent's comment counter by the number removed,
// floored at zero. Comments are grouped by their (post_type, post_id)
// parent reference so only the owning collection is touched.
func deleteAuthoredComments(userID uint) error {
	type commentGroup struct {
		PostID   uint
		PostType string
		Count    int
	}
	var groups []commentGroup
	if err := db.DB.Model(&models.CommunityComment{}).
		Select("post_id, post_type, COUNT(*) as count").
		Where("writer_id = ?", userID).
		Group("post_id, post_type").
		Scan(&groups).Error; err != nil {
		return err
	}

	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("writer_id = ?", userID).
			Delete(&models.CommunityComment{}).Error; err != nil {
			return err
		}
		for _, g := range groups {
			expr := gorm.Expr("GREATEST(comments - ?, 0)", g.Count)
			var err error
			switch g.PostType {
			case models.PostKindRecruit:
				err = tx.Model(&models.RecruitmentPost{}).Where("id = ?", g.PostID).
					UpdateColumn("comments", expr).Error
			case models.PostKindSeeking:
				err = tx.Model(&models.TeamSeekingPost{}).Where("id = ?", g.PostID).
					UpdateColumn("comments", expr).Error
			default:
				err = tx.Model(&models.CommunityPost{}).Where("id = ?", g.PostID).
					UpdateColumn("comments", expr).Error
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// deleteAuthoredPosts removes the user's posts of all three kinds,
// together with every comment under them regardless of author.
func deleteAuthoredPosts(userID uint) error {
	var recruitIDs []uint
	if err := db.DB.Model(&models.RecruitmentPost{}).
		Where("writer_id = ?", userID).Pluck("id", &recruitIDs).Error; err != nil {
		return err
	}
	var seekingIDs []uint
	if err := db.DB.Model(&models.TeamSeekingPost{}).
		Where("writer_id = ?", userID).Pluck("id", &seekingIDs).Error; err != nil {
		return err
	}
	var communityIDs []uint
	if err := db.DB.Model(&models.CommunityPost{}).
		Where("writer_id = ?", userID).Pluck("id", &communityIDs).Error; err != nil {
		return err
	}

	return db.DB.Transaction(func(tx *gorm.DB) error {
		for _, parent := range []struct {
			kind string
			ids  []uint
		}{
			{models.PostKindRecruit, recruitIDs},
			{models.PostKindSeeking, seekingIDs},
			{models.PostKindCommunity, communityIDs},
		} {
			if len(parent.ids) == 0 {
				continue
			}
			if err := tx.Where("post_id IN ? AND post_type = ?", parent.ids, parent.kind).
				Delete(&models.CommunityComment{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("writer_id = ?", userID).
			Delete(&models.RecruitmentPost{}).Error; err != nil {
			return err
		}
		if err := tx.Where("writer_id = ?", userID).
			Delete(&models.TeamSeekingPost{}).Error; err != nil {
			return err
		}
		return tx.Where("writer_id = ?", userID).
			Delete(&models.CommunityPost{}).Error
	})
}

// jsonbMember matches rows whose membership column contains the id.
func jsonbMember(userID uint) string {
	return fmt.Sprintf("[%d]", userID)
}

// removeScrapMemberships strips the user from every ScrappedBy list
// and resyncs the scrap counters to the list lengths.
func removeScrapMemberships(userID uint) error {
	var recruits []models.RecruitmentPost
	if err := db.DB.Where("scrapped_by @> ?::jsonb", jsonbMember(userID)).
		Find(&recruits).Error; err != nil {
		return err
	}
	for i := range recruits {
		p := &recruits[i]
		if p.ScrappedBy.Remove(userID) {
			p.Scraps = len(p.ScrappedBy)
			if err := db.DB.Model(p).Select("scraps", "scrapped_by").
				Updates(map[string]interface{}{"scraps": p.Scraps, "scrapped_by": p.ScrappedBy}).Error; err != nil {
				return err
			}
		}
	}

	var seekings []models.TeamSeekingPost
	if err := db.DB.Where("scrapped_by @> ?::jsonb", jsonbMember(userID)).
		Find(&seekings).Error; err != nil {
		return err
	}
	for i := range seekings {
		p := &seekings[i]
		if p.ScrappedBy.Remove(userID) {
			p.Scraps = len(p.ScrappedBy)
			if err := db.DB.Model(p).Select("scraps", "scrapped_by").
				Updates(map[string]interface{}{"scraps": p.Scraps, "scrapped_by": p.ScrappedBy}).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// removeLikeMemberships strips the user from every LikedBy list on
// community posts and comments, decrementing the like counter by one
// per removal, floored at zero.
func removeLikeMemberships(userID uint) error {
	var posts []models.CommunityPost
	if err := db.DB.Where("liked_by @> ?::jsonb", jsonbMember(userID)).
		Find(&posts).Error; err != nil {
		return err
	}
	for i := range posts {
		p := &posts[i]
		if p.LikedBy.Remove(userID) {
			if p.Likes > 0 {
				p.Likes--
			}
			if err := db.DB.Model(p).Select("likes", "liked_by").
				Updates(map[string]interface{}{"likes": p.Likes, "liked_by": p.LikedBy}).Error; err != nil {
				return err
			}
		}
	}

	var comments []models.CommunityComment
	if err := db.DB.Where("liked_by @> ?::jsonb", jsonbMember(userID)).
		Find(&comments).Error; err != nil {
		return err
	}
	for i := range comments {
		c := &comments[i]
		if c.LikedBy.Remove(userID) {
			if c.Likes > 0 {
				c.Likes--
			}
			if err := db.DB.Model(c).Select("likes", "liked_by").
				Updates(map[string]interface{}{"likes": c.Likes, "liked_by": c.LikedBy}).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
