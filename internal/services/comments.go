package services

import (
	"fmt"
	"strings"

	"linker/internal/db"
	"linker/internal/models"

	"gorm.io/gorm"
)

// parentRef points at the post a comment belongs to. Ids are unique
// only within a collection, so the kind discriminator is part of the
// reference.
type parentRef struct {
	kind string
	id   uint
}

// findParent verifies that a post of the given kind exists.
func findParent(tx *gorm.DB, postType string, postID uint) (*parentRef, error) {
	var n int64
	switch postType {
	case models.PostKindRecruit:
		tx.Model(&models.RecruitmentPost{}).Where("id = ?", postID).Count(&n)
	case models.PostKindSeeking:
		tx.Model(&models.TeamSeekingPost{}).Where("id = ?", postID).Count(&n)
	case models.PostKindCommunity:
		tx.Model(&models.CommunityPost{}).Where("id = ?", postID).Count(&n)
	default:
		return nil, ErrValidation
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return &parentRef{kind: postType, id: postID}, nil
}

func (p *parentRef) addComments(tx *gorm.DB, delta int) error {
	expr := gorm.Expr("GREATEST(comments + ?, 0)", delta)
	switch p.kind {
	case models.PostKindRecruit:
		return tx.Model(&models.RecruitmentPost{}).Where("id = ?", p.id).
			UpdateColumn("comments", expr).Error
	case models.PostKindSeeking:
		return tx.Model(&models.TeamSeekingPost{}).Where("id = ?", p.id).
			UpdateColumn("comments", expr).Error
	default:
		return tx.Model(&models.CommunityPost{}).Where("id = ?", p.id).
			UpdateColumn("comments", expr).Error
	}
}

func (p *parentRef) commentCount(tx *gorm.DB) int {
	var count int
	switch p.kind {
	case models.PostKindRecruit:
		tx.Model(&models.RecruitmentPost{}).Where("id = ?", p.id).Pluck("comments", &count)
	case models.PostKindSeeking:
		tx.Model(&models.TeamSeekingPost{}).Where("id = ?", p.id).Pluck("comments", &count)
	default:
		tx.Model(&models.CommunityPost{}).Where("id = ?", p.id).Pluck("comments", &count)
	}
	return count
}

// CreateComment persists a comment under the (postType, postID) parent
// and increments its comment counter in the same transaction. Returns
// the comment with its writer loaded and the parent's new counter
// value.
func CreateComment(writerID, postID uint, postType, content string) (*models.CommunityComment, int, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, 0, ErrValidation
	}

	var comment models.CommunityComment
	var count int
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		parent, err := findParent(tx, postType, postID)
		if err != nil {
			return err
		}

		comment = models.CommunityComment{
			PostID:   postID,
			PostType: postType,
			WriterID: writerID,
			Content:  content,
		}
		if err := tx.Create(&comment).Error; err != nil {
			return fmt.Errorf("create comment: %w", err)
		}

		if err := parent.addComments(tx, 1); err != nil {
			return fmt.Errorf("increment comment count: %w", err)
		}
		count = parent.commentCount(tx)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	if err := db.DB.Preload("Writer").First(&comment, comment.ID).Error; err != nil {
		return nil, 0, err
	}
	return &comment, count, nil
}

// UpdateComment replaces a comment's content, owner only.
func UpdateComment(actorID, commentID uint, content string) (*models.CommunityComment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrValidation
	}

	var comment models.CommunityComment
	if err := db.DB.First(&comment, commentID).Error; err != nil {
		return nil, ErrNotFound
	}
	if comment.WriterID != actorID {
		return nil, ErrForbidden
	}

	comment.Content = content
	if err := db.DB.Save(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes a comment and decrements the parent's counter,
// floored at zero. A parent that no longer exists is treated as
// already cleaned up.
func DeleteComment(actorID, commentID uint) error {
	var comment models.CommunityComment
	if err := db.DB.First(&comment, commentID).Error; err != nil {
		return ErrNotFound
	}
	if comment.WriterID != actorID {
		return ErrForbidden
	}

	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&comment).Error; err != nil {
			return fmt.Errorf("delete comment: %w", err)
		}
		if parent, err := findParent(tx, comment.PostType, comment.PostID); err == nil {
			if err := parent.addComments(tx, -1); err != nil {
				return fmt.Errorf("decrement comment count: %w", err)
			}
		}
		return nil
	})
}

// CommentsFor loads the comments under a (postType, postID) parent in
// posting order, with writers preloaded.
func CommentsFor(postID uint, postType string) ([]models.CommunityComment, error) {
	var comments []models.CommunityComment
	err := db.DB.Preload("Writer").
		Where("post_id = ? AND post_type = ?", postID, postType).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}
