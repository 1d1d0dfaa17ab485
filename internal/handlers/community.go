package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"linker/internal/db"
	"linker/internal/middleware"
	"linker/internal/models"
	"linker/internal/services"
	"linker/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommunityHandler struct{}

func NewCommunityHandler() *CommunityHandler {
	return &CommunityHandler{}
}

// List 커뮤니티 글 목록
func (h *CommunityHandler) List(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	category := c.DefaultQuery("category", "all")

	posts, err := services.ListCommunity(category)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "글 목록을 불러오지 못했습니다.")
		return
	}

	folders, _ := services.Folders(user.ID)

	Render(c, http.StatusOK, "community/list.html", gin.H{
		"Title":           "커뮤니티",
		"Posts":           posts,
		"CurrentCategory": category,
		"Folders":         folders,
	})
}

// ShowAdd 커뮤니티 글 작성 폼
func (h *CommunityHandler) ShowAdd(c *gin.Context) {
	Render(c, http.StatusOK, "community/add.html", gin.H{
		"Title": "커뮤니티 글 작성",
	})
}

// Add 커뮤니티 글 작성 처리
func (h *CommunityHandler) Add(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	title := strings.TrimSpace(c.PostForm("title"))
	content := strings.TrimSpace(c.PostForm("content"))
	category := c.PostForm("category")

	if title == "" || content == "" || category == "" {
		Render(c, http.StatusBadRequest, "community/add.html", gin.H{
			"Title":    "커뮤니티 글 작성",
			"Error":    "모든 항목을 입력해주세요.",
			"FormData": gin.H{"Title": title, "Content": content, "Category": category},
		})
		return
	}
	if !models.ValidCommunityCategory(category) {
		Render(c, http.StatusBadRequest, "community/add.html", gin.H{
			"Title":    "커뮤니티 글 작성",
			"Error":    "올바른 카테고리가 아닙니다.",
			"FormData": gin.H{"Title": title, "Content": content, "Category": category},
		})
		return
	}

	post := models.CommunityPost{
		Title:    title,
		Content:  content,
		Category: category,
		WriterID: user.ID,
	}
	if err := db.DB.Create(&post).Error; err != nil {
		Render(c, http.StatusInternalServerError, "community/add.html", gin.H{
			"Title":    "커뮤니티 글 작성",
			"Error":    "글 등록에 실패했습니다.",
			"FormData": gin.H{"Title": title, "Content": content, "Category": category},
		})
		return
	}

	c.Redirect(http.StatusFound, "/community")
}

// Detail 커뮤니티 글 상세 페이지
func (h *CommunityHandler) Detail(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	id, ok := utils.ParseUintParam(c.Param("id"))
	if !ok {
		RenderError(c, http.StatusNotFound, "요청하신 글이 존재하지 않습니다.")
		return
	}

	var post models.CommunityPost
	if err := db.DB.Preload("Writer").First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "요청하신 글이 존재하지 않습니다.")
		return
	}

	comments, _ := services.CommentsFor(post.ID, models.PostKindCommunity)
	folders, _ := services.Folders(user.ID)

	Render(c, http.StatusOK, "community/detail.html", gin.H{
		"Title":    post.Title,
		"Post":     post,
		"IsOwner":  post.WriterID == user.ID,
		"IsLiked":  post.IsLikedBy(user.ID),
		"Comments": comments,
		"Folders":  folders,
		"PostType": models.PostKindCommunity,
	})
}

// ToggleLike 게시글 좋아요 토글
func (h *CommunityHandler) ToggleLike(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	id, ok := utils.ParseUintParam(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "글을 찾을 수 없습니다."})
		return
	}

	var post models.CommunityPost
	if err := db.DB.First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "글을 찾을 수 없습니다."})
		return
	}

	isLiked := post.ToggleLike(user.ID)
	if err := db.DB.Model(&post).Select("likes", "liked_by").Updates(map[string]interface{}{
		"likes":    post.Likes,
		"liked_by": post.LikedBy,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "좋아요 처리에 실패했습니다."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "likes": post.Likes, "isLiked": isLiked})
}

// Delete 게시글 삭제 (POST /community/:id + _method=DELETE)
func (h *CommunityHandler) Delete(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	if methodOverride(c) != "DELETE" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "잘못된 요청입니다."})
		return
	}

	id, ok := utils.ParseUintParam(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "글을 찾을 수 없습니다."})
		return
	}

	var post models.CommunityPost
	if err := db.DB.First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "글을 찾을 수 없습니다."})
		return
	}
	if post.WriterID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "삭제 권한이 없습니다."})
		return
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ? AND post_type = ?", post.ID, models.PostKindCommunity).
			Delete(&models.CommunityComment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "글 삭제에 실패했습니다."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ShowEdit 커뮤니티 글 수정 페이지
func (h *CommunityHandler) ShowEdit(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	id, ok := utils.ParseUintParam(c.Param("id"))
	if !ok {
		c.Redirect(http.StatusFound, "/community")
		return
	}

	var post models.CommunityPost
	if err := db.DB.First(&post, id).Error; err != nil {
		c.Redirect(http.StatusFound, "/community")
		return
	}
	if post.WriterID != user.ID {
		c.Redirect(http.StatusFound, fmt.Sprintf("/community/%d", post.ID))
		return
	}

	Render(c, http.StatusOK, "community/edit.html", gin.H{
		"Title": "커뮤니티 글 수정",
		"Post":  post,
	})
}

// Edit 커뮤니티 글 수정 처리
func (h *CommunityHandler) Edit(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	id, ok := utils.ParseUintParam(c.Param("id"))
	if !ok {
		c.Redirect(http.StatusFound, "/community")
		return
	}

	var post models.CommunityPost
	if err := db.DB.First(&post, id).Error; err != nil {
		c.Redirect(http.StatusFound, "/community")
		return
	}
	if post.WriterID != user.ID {
		c.Redirect(http.StatusFound, fmt.Sprintf("/community/%d", post.ID))
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	content := strings.TrimSpace(c.PostForm("content"))
	category := c.PostForm("category")

	if title == "" || content == "" || category == "" {
		Render(c, http.StatusBadRequest, "community/edit.html", gin.H{
			"Title": "커뮤니티 글 수정",
			"Post":  post,
			"Error": "모든 항목을 입력해주세요.",
		})
		return
	}
	if !models.ValidCommunityCategory(category) {
		Render(c, http.StatusBadRequest, "community/edit.html", gin.H{
			"Title": "커뮤니티 글 수정",
			"Post":  post,
			"Error": "올바른 카테고리가 아닙니다.",
		})
		return
	}

	post.Title = title
	post.Content = content
	post.Category = category
	if err := db.DB.Save(&post).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "글 수정에 실패했습니다.")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/community/%d", post.ID))
}
