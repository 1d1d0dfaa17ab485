package handlers

import (
	"net/http"
	"time"

	"linker/internal/db"
	"linker/internal/middleware"
	"linker/internal/models"
	"linker/internal/services"
	"linker/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Team-seeking routes of the board. Same URL prefix, separate
// collection.

type seekForm struct {
	Title           string
	Content         string
	Category        string
	DesiredFields   string
	Skills          string
	Experience      string
	DesiredPosition string
	Deadline        string
	Hashtags        string
}

func readSeekForm(c *gin.Context) seekForm {
	return seekForm{
		Title:           c.PostForm("title"),
		Content:         c.PostForm("content"),
		Category:        c.PostForm("category"),
		DesiredFields:   c.PostForm("desiredFields"),
		Skills:          c.PostForm("skills"),
		Experience:      c.PostForm("experience"),
		DesiredPosition: c.PostForm("desiredPosition"),
		Deadline:        c.PostForm("deadline"),
		Hashtags:        c.PostForm("hashtags"),
	}
}

func (f seekForm) incomplete() bool {
	return f.Title == "" || f.Content == "" || f.Category == ""
}

// ShowSeekAdd 팀 구하기 글 작성 폼
func (h *BoardHandler) ShowSeekAdd(c *gin.Context) {
	Render(c, http.StatusOK, h.board+"/seek.html", gin.H{
		"Title": "팀 구하기",
		"Board": h.board,
	})
}

// SeekAdd 팀 구하기 글 작성 처리
func (h *BoardHandler) SeekAdd(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	form := readSeekForm(c)

	if form.incomplete() {
		Render(c, http.StatusBadRequest, h.board+"/seek.html", gin.H{
			"Title":    "팀 구하기",
			"Board":    h.board,
			"Error":    "필수 항목을 모두 입력해주세요.",
			"FormData": form,
		})
		return
	}

	deadline := time.Now().AddDate(0, 1, 0)
	if form.Deadline != "" {
		if d, err := time.Parse("2006-01-02", form.Deadline); err == nil {
			deadline = d
		}
	}

	post := models.TeamSeekingPost{
		Title:           form.Title,
		Content:         form.Content,
		WriterID:        user.ID,
		Category:        form.Category,
		DesiredFields:   utils.SplitTrimmed(form.DesiredFields),
		Skills:          utils.SplitTrimmed(form.Skills),
		Experience:      form.Experience,
		DesiredPosition: form.DesiredPosition,
		Hashtags:        utils.SplitHashtags(form.Hashtags),
		Deadline:        deadline,
	}

	if err := db.DB.Create(&post).Error; err != nil {
		Render(c, http.StatusInternalServerError, h.board+"/seek.html", gin.H{
			"Title":    "팀 구하기",
			"Board":    h.board,
			"Error":    "글 등록에 실패했습니다.",
			"FormData": form,
		})
		return
	}

	h.invalidateListCache()
	c.Redirect(http.StatusFound, "/"+h.board)
}

// ShowSeekEdit 팀 구하기 글 수정 폼
func (h *BoardHandler) ShowSeekEdit(c *gin.Context) {
	post, ok := h.findSeekingPage(c)
	if !ok {
		return
	}

	Render(c, http.StatusOK, h.board+"/seek.html", gin.H{
		"Title":    "팀 구하기 글 수정",
		"Board":    h.board,
		"EditMode": true,
		"Post":     post,
	})
}

// SeekMutate dispatches POST /{board}/seek/:id by the _method override.
func (h *BoardHandler) SeekMutate(c *gin.Context) {
	switch methodOverride(c) {
	case "PUT":
		h.seekUpdate(c)
	case "DELETE":
		h.seekDelete(c)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "잘못된 요청입니다."})
	}
}

func (h *BoardHandler) seekUpdate(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	post, ok := h.findSeekingPage(c)
	if !ok {
		return
	}
	if post.WriterID != user.ID {
		RenderError(c, http.StatusForbidden, "글을 수정할 권한이 없습니다.")
		return
	}

	form := readSeekForm(c)
	if form.incomplete() {
		Render(c, http.StatusBadRequest, h.board+"/seek.html", gin.H{
			"Title":    "팀 구하기 글 수정",
			"Board":    h.board,
			"EditMode": true,
			"Post":     post,
			"Error":    "필수 항목을 모두 입력해주세요.",
			"FormData": form,
		})
		return
	}

	post.Title = form.Title
	post.Content = form.Content
	post.Category = form.Category
	post.DesiredFields = utils.SplitTrimmed(form.DesiredFields)
	post.Skills = utils.SplitTrimmed(form.Skills)
	post.Experience = form.Experience
	post.DesiredPosition = form.DesiredPosition
	post.Hashtags = utils.SplitHashtags(form.Hashtags)
	if form.Deadline != "" {
		if d, err := time.Parse("2006-01-02", form.Deadline); err == nil {
			post.Deadline = d
		}
	}

	if err := db.DB.Save(post).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "글 수정에 실패했습니다.")
		return
	}

	h.invalidateListCache()
	c.Redirect(http.StatusFound, "/"+h.board)
}

func (h *BoardHandler) seekDelete(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	id, ok := utils.ParseUintParam(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "글을 찾을 수 없습니다."})
		return
	}

	var post models.TeamSeekingPost
	if err := db.DB.First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "글을 찾을 수 없습니다."})
		return
	}
	if post.WriterID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "삭제 권한이 없습니다."})
		return
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ? AND post_type = ?", post.ID, models.PostKindSeeking).
			Delete(&models.CommunityComment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "글 삭제에 실패했습니다."})
		return
	}

	h.invalidateListCache()
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "글이 삭제되었습니다."})
}

// SeekDetail 팀 구하기 글 상세 페이지
func (h *BoardHandler) SeekDetail(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	id, ok := utils.ParseUintParam(c.Param("id"))
	if !ok {
		RenderError(c, http.StatusNotFound, "요청하신 글이 존재하지 않습니다.")
		return
	}

	post, err := services.FindSeeking(id)
	if err != nil {
		RenderError(c, http.StatusNotFound, "요청하신 글이 존재하지 않습니다.")
		return
	}

	comments, _ := services.CommentsFor(post.ID, models.PostKindSeeking)
	folders, _ := services.Folders(user.ID)

	Render(c, http.StatusOK, h.board+"/seek_detail.html", gin.H{
		"Title":      "Linker",
		"Board":      h.board,
		"Post":       post,
		"IsOwner":    post.WriterID == user.ID,
		"IsScrapped": post.IsScrappedBy(user.ID),
		"Comments":   comments,
		"Folders":    folders,
		"PostType":   models.PostKindSeeking,
	})
}

// SeekToggleScrap 팀 구하기 글 스크랩 토글
func (h *BoardHandler) SeekToggleScrap(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	id, ok := utils.ParseUintParam(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "글을 찾을 수 없습니다."})
		return
	}

	var post models.TeamSeekingPost
	if err := db.DB.First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "글을 찾을 수 없습니다."})
		return
	}

	isScrapped := post.ToggleScrap(user.ID)
	if err := db.DB.Model(&post).Select("scraps", "scrapped_by").Updates(map[string]interface{}{
		"scraps":      post.Scraps,
		"scrapped_by": post.ScrappedBy,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "스크랩 처리에 실패했습니다."})
		return
	}

	h.invalidateListCache()
	c.JSON(http.StatusOK, gin.H{"success": true, "scraps": post.Scraps, "isScrapped": isScrapped})
}

func (h *BoardHandler) findSeekingPage(c *gin.Context) (*models.TeamSeekingPost, bool) {
	id, ok := utils.ParseUintParam(c.Param("id"))
	if !ok {
		RenderError(c, http.StatusNotFound, "요청하신 글이 존재하지 않습니다.")
		return nil, false
	}
	var post models.TeamSeekingPost
	if err := db.DB.First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "요청하신 글이 존재하지 않습니다.")
		return nil, false
	}
	return &post, true
}
