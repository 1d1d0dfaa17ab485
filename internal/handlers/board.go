package handlers

import (
	"fmt"
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

// BoardHandler serves one team-matching board. The campus and contest
// boards share the same post collections and differ only in their
// category sets.
type BoardHandler struct {
	board      string
	boardTitle string
	categories []string
}

func NewBoardHandler(board string) *BoardHandler {
	h := &BoardHandler{board: board}
	switch board {
	case "contest":
		h.boardTitle = "공모전"
		h.categories = models.ContestCategories
	default:
		h.boardTitle = "캠퍼스"
		h.categories = models.CampusCategories
	}
	return h
}

func (h *BoardHandler) listCacheKey(sort string) string {
	return fmt.Sprintf("board:%s:%s", h.board, sort)
}

func (h *BoardHandler) invalidateListCache() {
	for _, sort := range []string{"all", services.SortLatest, services.SortPopular} {
		utils.GetCache().Delete(h.listCacheKey(sort))
	}
}

func (h *BoardHandler) List(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	sort := c.DefaultQuery("sort", "all")

	var posts []services.BoardPost
	if cached := utils.GetCache().Get(h.listCacheKey(sort)); cached != nil {
		posts = cached.([]services.BoardPost)
	} else {
		var err error
		posts, err = services.ListBoard(h.categories, sort)
		if err != nil {
			RenderError(c, http.StatusInternalServerError, "글 목록을 불러오지 못했습니다.")
			return
		}
		utils.GetCache().Set(h.listCacheKey(sort), posts, 1*time.Minute)
	}

	folders, _ := services.Folders(user.ID)

	Render(c, http.StatusOK, h.board+"/list.html", gin.H{
		"Title":       h.boardTitle,
		"Board":       h.board,
		"Posts":       posts,
		"CurrentSort": sort,
		"Folders":     folders,
	})
}

// ShowAdd 팀원 모집하기 글 작성 폼
func (h *BoardHandler) ShowAdd(c *gin.Context) {
	Render(c, http.StatusOK, h.board+"/add.html", gin.H{
		"Title": "팀원 모집하기",
		"Board": h.board,
	})
}

type recruitForm struct {
	Title        string
	Content      string
	Category     string
	Deadline     string
	RecruitCount string
	Positions    string
	TechStack    string
	Method       string
	Hashtags     string
}

func readRecruitForm(c *gin.Context) recruitForm {
	return recruitForm{
		Title:        c.PostForm("title"),
		Content:      c.PostForm("content"),
		Category:     c.PostForm("category"),
		Deadline:     c.PostForm("deadline"),
		RecruitCount: c.PostForm("recruitCount"),
		Positions:    c.PostForm("positions"),
		TechStack:    c.PostForm("techStack"),
		Method:       c.PostForm("method"),
		Hashtags:     c.PostForm("hashtags"),
	}
}

func (f recruitForm) incomplete() bool {
	return f.Title == "" || f.Content == "" || f.Category == "" || f.Deadline == "" || f.RecruitCount == ""
}

// Add 팀원 모집하기 글 작성 처리
func (h *BoardHandler) Add(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	form := readRecruitForm(c)

	if form.incomplete() {
		Render(c, http.StatusBadRequest, h.board+"/add.html", gin.H{
			"Title":    "팀원 모집하기",
			"Board":    h.board,
			"Error":    "필수 항목을 모두 입력해주세요.",
			"FormData": form,
		})
		return
	}

	deadline, err := time.Parse("2006-01-02", form.Deadline)
	if err != nil {
		Render(c, http.StatusBadRequest, h.board+"/add.html", gin.H{
			"Title":    "팀원 모집하기",
			"Board":    h.board,
			"Error":    "마감일 형식이 올바르지 않습니다.",
			"FormData": form,
		})
		return
	}

	method := form.Method
	if method == "" {
		method = models.MethodOnline
	}

	post := models.RecruitmentPost{
		Title:        form.Title,
		Content:      form.Content,
		WriterID:     user.ID,
		Type:         models.RecruitTypeRecruit,
		Category:     form.Category,
		Deadline:     deadline,
		Status:       models.StatusRecruiting,
		RecruitCount: utils.StringToInt(form.RecruitCount),
		Positions:    utils.SplitTrimmed(form.Positions),
		TechStack:    utils.SplitTrimmed(form.TechStack),
		Method:       method,
		Hashtags:     utils.SplitHashtags(form.Hashtags),
	}

	if err := db.DB.Create(&post).Error; err != nil {
		Render(c, http.StatusInternalServerError, h.board+"/add.html", gin.H{
			"Title":    "팀원 모집하기",
			"Board":    h.board,
			"Error":    "글 등록에 실패했습니다.",
			"FormData": form,
		})
		return
	}

	h.invalidateListCache()
	c.Redirect(http.StatusFound, "/"+h.board)
}

// ShowEdit 팀원 모집 글 수정 폼
func (h *BoardHandler) ShowEdit(c *gin.Context) {
	post, ok := h.findRecruitPage(c)
	if !ok {
		return
	}

	Render(c, http.StatusOK, h.board+"/add.html", gin.H{
		"Title":    "팀원 모집 글 수정",
		"Board":    h.board,
		"EditMode": true,
		"Post":     post,
	})
}

// Mutate dispatches POST /{board}/:id by the _method override field:
// PUT updates the post, DELETE removes it together with its comments.
func (h *BoardHandler) Mutate(c *gin.Context) {
	switch methodOverride(c) {
	case "PUT":
		h.update(c)
	case "DELETE":
		h.delete(c)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "잘못된 요청입니다."})
	}
}

func (h *BoardHandler) update(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	post, ok := h.findRecruitPage(c)
	if !ok {
		return
	}
	if post.WriterID != user.ID {
		RenderError(c, http.StatusForbidden, "글을 수정할 권한이 없습니다.")
		return
	}

	form := readRecruitForm(c)
	if form.incomplete() {
		Render(c, http.StatusBadRequest, h.board+"/add.html", gin.H{
			"Title":    "팀원 모집 글 수정",
			"Board":    h.board,
			"EditMode": true,
			"Post":     post,
			"Error":    "필수 항목을 모두 입력해주세요.",
			"FormData": form,
		})
		return
	}

	deadline, err := time.Parse("2006-01-02", form.Deadline)
	if err != nil {
		Render(c, http.StatusBadRequest, h.board+"/add.html", gin.H{
			"Title":    "팀원 모집 글 수정",
			"Board":    h.board,
			"EditMode": true,
			"Post":     post,
			"Error":    "마감일 형식이 올바르지 않습니다.",
			"FormData": form,
		})
		return
	}

	post.Title = form.Title
	post.Content = form.Content
	post.Category = form.Category
	post.Deadline = deadline
	post.RecruitCount = utils.StringToInt(form.RecruitCount)
	post.Positions = utils.SplitTrimmed(form.Positions)
	post.TechStack = utils.SplitTrimmed(form.TechStack)
	if form.Method != "" {
		post.Method = form.Method
	}
	post.Hashtags = utils.SplitHashtags(form.Hashtags)

	if err := db.DB.Save(post).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "글 수정에 실패했습니다.")
		return
	}

	h.invalidateListCache()
	c.Redirect(http.StatusFound, "/"+h.board)
}

func (h *BoardHandler) delete(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	id, ok := utils.ParseUintParam(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "글을 찾을 수 없습니다."})
		return
	}

	var post models.RecruitmentPost
	if err := db.DB.First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "글을 찾을 수 없습니다."})
		return
	}
	if post.WriterID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "삭제 권한이 없습니다."})
		return
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ? AND post_type = ?", post.ID, models.PostKindRecruit).
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

// Detail 팀원 모집하기 글 상세 페이지
func (h *BoardHandler) Detail(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	id, ok := utils.ParseUintParam(c.Param("id"))
	if !ok {
		RenderError(c, http.StatusNotFound, "요청하신 글이 존재하지 않습니다.")
		return
	}

	post, err := services.FindRecruit(id)
	if err != nil {
		RenderError(c, http.StatusNotFound, "요청하신 글이 존재하지 않습니다.")
		return
	}

	comments, _ := services.CommentsFor(post.ID, models.PostKindRecruit)
	folders, _ := services.Folders(user.ID)

	Render(c, http.StatusOK, h.board+"/detail.html", gin.H{
		"Title":      "Linker",
		"Board":      h.board,
		"Post":       post,
		"IsOwner":    post.WriterID == user.ID,
		"IsScrapped": post.IsScrappedBy(user.ID),
		"Comments":   comments,
		"Folders":    folders,
		"PostType":   models.PostKindRecruit,
	})
}

// ToggleScrap 팀원 모집하기 글 스크랩 토글
func (h *BoardHandler) ToggleScrap(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	id, ok := utils.ParseUintParam(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "글을 찾을 수 없습니다."})
		return
	}

	var post models.RecruitmentPost
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

// Close 모집 마감 처리
func (h *BoardHandler) Close(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	id, ok := utils.ParseUintParam(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "글을 찾을 수 없습니다."})
		return
	}

	var post models.RecruitmentPost
	if err := db.DB.First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "글을 찾을 수 없습니다."})
		return
	}
	if post.WriterID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "권한이 없습니다."})
		return
	}

	if err := db.DB.Model(&post).Update("status", models.StatusClosed).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "마감 처리에 실패했습니다."})
		return
	}

	h.invalidateListCache()
	c.JSON(http.StatusOK, gin.H{"success": true, "status": models.StatusClosed})
}

// findRecruitPage loads the recruitment post for a page route,
// rendering the 404 page itself when missing.
func (h *BoardHandler) findRecruitPage(c *gin.Context) (*models.RecruitmentPost, bool) {
	id, ok := utils.ParseUintParam(c.Param("id"))
	if !ok {
		RenderError(c, http.StatusNotFound, "요청하신 글이 존재하지 않습니다.")
		return nil, false
	}
	var post models.RecruitmentPost
	if err := db.DB.First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "요청하신 글이 존재하지 않습니다.")
		return nil, false
	}
	return &post, true
}

// methodOverride returns the effective method for POST routes carrying
// a _method form field or query parameter.
func methodOverride(c *gin.Context) string {
	if m := c.PostForm("_method"); m != "" {
		return m
	}
	return c.Query("_method")
}
