package handlers

import (
	"errors"
	"net/http"

	"linker/internal/middleware"
	"linker/internal/models"
	"linker/internal/services"
	"linker/internal/utils"

	"github.com/gin-gonic/gin"
)

type FolderHandler struct{}

func NewFolderHandler() *FolderHandler {
	return &FolderHandler{}
}

// Create 폴더 생성
func (h *FolderHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	folder, err := services.CreateFolder(user.ID, c.PostForm("name"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			JSONError(c, err, "폴더 이름을 입력해주세요.")
		case errors.Is(err, services.ErrConflict):
			JSONError(c, err, "이미 같은 이름의 폴더가 있습니다.")
		default:
			JSONError(c, err, "폴더 생성에 실패했습니다.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "folder": folder})
}

// Rename 폴더 이름 수정 (PUT /folders/:folderId)
func (h *FolderHandler) Rename(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	folderID, ok := utils.ParseUintParam(c.Param("folderId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "폴더를 찾을 수 없습니다."})
		return
	}

	folder, err := services.RenameFolder(user.ID, folderID, c.PostForm("name"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			JSONError(c, err, "폴더 이름을 입력해주세요.")
		case errors.Is(err, services.ErrNotFound):
			JSONError(c, err, "폴더를 찾을 수 없습니다.")
		case errors.Is(err, services.ErrConflict):
			JSONError(c, err, "이미 같은 이름의 폴더가 있습니다.")
		default:
			JSONError(c, err, "폴더 이름 수정에 실패했습니다.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "folder": folder})
}

// Delete 폴더 삭제
func (h *FolderHandler) Delete(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	folderID, ok := utils.ParseUintParam(c.Param("folderId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "폴더를 찾을 수 없습니다."})
		return
	}

	if err := services.DeleteFolder(user.ID, folderID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			JSONError(c, err, "폴더를 찾을 수 없습니다.")
		} else {
			JSONError(c, err, "폴더 삭제에 실패했습니다.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "폴더가 삭제되었습니다."})
}

// AddPost 폴더에 글 추가
func (h *FolderHandler) AddPost(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	folderID, ok := utils.ParseUintParam(c.Param("folderId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "폴더를 찾을 수 없습니다."})
		return
	}

	postID, ok := utils.ParseUintParam(c.PostForm("postId"))
	postType := c.PostForm("postType")
	if !ok || postType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "글 정보가 필요합니다."})
		return
	}

	folder, err := services.AddFolderEntry(user.ID, folderID, postID, postType)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			JSONError(c, err, "올바른 글 타입이 아닙니다.")
		case errors.Is(err, services.ErrNotFound):
			JSONError(c, err, "폴더를 찾을 수 없습니다.")
		case errors.Is(err, services.ErrConflict):
			JSONError(c, err, "이미 폴더에 추가된 글입니다.")
		case errors.Is(err, services.ErrNotEligible):
			if postType == models.PostKindCommunity {
				JSONError(c, err, "좋아요한 글만 폴더에 추가할 수 있습니다.")
			} else {
				JSONError(c, err, "스크랩한 글만 폴더에 추가할 수 있습니다.")
			}
		default:
			JSONError(c, err, "폴더에 글을 추가하지 못했습니다.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "folder": folder})
}

// RemovePost 폴더에서 글 제거
// (DELETE /folders/:folderId/posts/:postId?postType=...)
func (h *FolderHandler) RemovePost(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	folderID, ok := utils.ParseUintParam(c.Param("folderId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "폴더를 찾을 수 없습니다."})
		return
	}
	postID, ok := utils.ParseUintParam(c.Param("postId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "폴더에서 글을 찾을 수 없습니다."})
		return
	}

	postType := c.Query("postType")
	if postType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "글 타입이 필요합니다."})
		return
	}

	folder, err := services.RemoveFolderEntry(user.ID, folderID, postID, postType)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			JSONError(c, err, "폴더에서 글을 찾을 수 없습니다.")
		} else {
			JSONError(c, err, "폴더에서 글을 제거하지 못했습니다.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "folder": folder})
}

// Detail 폴더별 글 보기
func (h *FolderHandler) Detail(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	folderID, ok := utils.ParseUintParam(c.Param("folderId"))
	if !ok {
		RenderError(c, http.StatusNotFound, "폴더를 찾을 수 없습니다.")
		return
	}

	folder, posts, err := services.ListFolder(user.ID, folderID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			RenderError(c, http.StatusNotFound, "폴더를 찾을 수 없습니다.")
		} else {
			RenderError(c, http.StatusInternalServerError, "폴더를 불러오지 못했습니다.")
		}
		return
	}

	Render(c, http.StatusOK, "folders/detail.html", gin.H{
		"Title":  folder.Name,
		"Folder": folder,
		"Posts":  posts,
	})
}
