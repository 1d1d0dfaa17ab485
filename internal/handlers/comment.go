package handlers

import (
	"errors"
	"net/http"

	"linker/internal/db"
	"linker/internal/middleware"
	"linker/internal/models"
	"linker/internal/services"
	"linker/internal/utils"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

// Create returns the POST /{board}/:id/comment handler for one post
// kind; the route prefix fixes which collection the parent lives in.
func (h *CommentHandler) Create(postType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet(middleware.CheckUserKey).(*models.User)

		postID, ok := utils.ParseUintParam(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "글을 찾을 수 없습니다."})
			return
		}

		comment, count, err := services.CreateComment(user.ID, postID, postType, c.PostForm("content"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				JSONError(c, err, "댓글 내용을 입력해주세요.")
			case errors.Is(err, services.ErrNotFound):
				JSONError(c, err, "글을 찾을 수 없습니다.")
			default:
				JSONError(c, err, "댓글 등록에 실패했습니다.")
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"comment":      comment,
			"commentCount": count,
		})
	}
}

// Mutate handles POST /community/comment/:commentId with a _method
// override: PUT edits, DELETE removes and decrements the parent.
func (h *CommentHandler) Mutate(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	commentID, ok := utils.ParseUintParam(c.Param("commentId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "댓글을 찾을 수 없습니다."})
		return
	}

	switch methodOverride(c) {
	case "PUT":
		comment, err := services.UpdateComment(user.ID, commentID, c.PostForm("content"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				JSONError(c, err, "댓글 내용을 입력해주세요.")
			case errors.Is(err, services.ErrNotFound):
				JSONError(c, err, "댓글을 찾을 수 없습니다.")
			case errors.Is(err, services.ErrForbidden):
				JSONError(c, err, "권한이 없습니다.")
			default:
				JSONError(c, err, "댓글 수정에 실패했습니다.")
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "comment": comment})
	case "DELETE":
		if err := services.DeleteComment(user.ID, commentID); err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				JSONError(c, err, "댓글을 찾을 수 없습니다.")
			case errors.Is(err, services.ErrForbidden):
				JSONError(c, err, "권한이 없습니다.")
			default:
				JSONError(c, err, "댓글 삭제에 실패했습니다.")
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "잘못된 요청입니다."})
	}
}

// ToggleLike 댓글 좋아요 토글
func (h *CommentHandler) ToggleLike(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	commentID, ok := utils.ParseUintParam(c.Param("commentId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "댓글을 찾을 수 없습니다."})
		return
	}

	var comment models.CommunityComment
	if err := db.DB.First(&comment, commentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "댓글을 찾을 수 없습니다."})
		return
	}

	isLiked := comment.ToggleLike(user.ID)
	if err := db.DB.Model(&comment).Select("likes", "liked_by").Updates(map[string]interface{}{
		"likes":    comment.Likes,
		"liked_by": comment.LikedBy,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "좋아요 처리에 실패했습니다."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "likes": comment.Likes, "isLiked": isLiked})
}
