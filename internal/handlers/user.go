package handlers

import (
	"log"
	"net/http"
	"strings"

	"linker/internal/db"
	"linker/internal/middleware"
	"linker/internal/models"
	"linker/internal/services"
	"linker/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Profile 마이페이지
func (h *UserHandler) Profile(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var description models.UserDescription
	db.DB.Where("user_id = ?", user.ID).First(&description)

	folders, _ := services.Folders(user.ID)

	Render(c, http.StatusOK, "profile.html", gin.H{
		"Title":           "마이페이지",
		"UserDescription": description,
		"Folders":         folders,
	})
}

// Update 회원정보 수정 (PUT /users/:id)
func (h *UserHandler) Update(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	id, ok := utils.ParseUintParam(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "사용자를 찾을 수 없습니다."})
		return
	}
	if id != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "권한이 없습니다."})
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	nickname := strings.TrimSpace(c.PostForm("nickname"))
	email := strings.ToLower(strings.TrimSpace(c.PostForm("email")))
	password := strings.TrimSpace(c.PostForm("password"))
	currentPassword, hasCurrent := c.GetPostForm("currentPassword")
	currentPassword = strings.TrimSpace(currentPassword)

	if name == "" || email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "이름과 이메일은 필수 정보입니다."})
		return
	}
	if hasCurrent && currentPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "현재 비밀번호를 입력해주세요."})
		return
	}
	if hasCurrent && !utils.CheckPasswordHash(currentPassword, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "현재 비밀번호가 일치하지 않습니다."})
		return
	}

	var count int64
	db.DB.Model(&models.User{}).
		Where("id <> ? AND (email = ? OR nickname = ?)", user.ID, email, nickname).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "이미 사용 중인 닉네임 또는 이메일입니다."})
		return
	}

	user.Name = name
	if nickname != "" {
		user.Nickname = nickname
	}
	user.Email = email
	if password != "" {
		hash, err := utils.HashPassword(password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "회원정보 수정에 실패했습니다."})
			return
		}
		user.Password = hash
	}

	if err := db.DB.Save(user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "회원정보 수정에 실패했습니다."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "회원정보가 수정되었습니다."})
}

// Delete 회원 탈퇴 (DELETE /users/:id)
// 본인 확인 후 작성 글, 댓글, 스크랩/좋아요 흔적까지 정리한다.
func (h *UserHandler) Delete(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	id, ok := utils.ParseUintParam(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "사용자를 찾을 수 없습니다."})
		return
	}
	if id != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "권한이 없습니다."})
		return
	}

	if err := services.DeleteAccount(user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "회원 탈퇴 처리에 실패했습니다."})
		return
	}

	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.SetCookie("linker_session", "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdateDescription 프로필 정보 업데이트 (닉네임 + 소개)
func (h *UserHandler) UpdateDescription(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	nickname := strings.TrimSpace(c.PostForm("nickname"))
	role := strings.TrimSpace(c.PostForm("role"))
	school := strings.TrimSpace(c.PostForm("school"))
	bio := strings.TrimSpace(c.PostForm("bio"))

	if nickname != "" && nickname != user.Nickname {
		var count int64
		db.DB.Model(&models.User{}).
			Where("id <> ? AND nickname = ?", user.ID, nickname).
			Count(&count)
		if count > 0 {
			RenderError(c, http.StatusConflict, "이미 사용 중인 닉네임입니다.")
			return
		}
		if err := db.DB.Model(user).Update("nickname", nickname).Error; err != nil {
			RenderError(c, http.StatusInternalServerError, "프로필 정보 업데이트 중 오류가 발생했습니다.")
			return
		}
	}

	var description models.UserDescription
	err := db.DB.Where("user_id = ?", user.ID).First(&description).Error
	if err != nil {
		description = models.UserDescription{UserID: user.ID, Role: role, School: school, Bio: bio}
		err = db.DB.Create(&description).Error
	} else {
		description.Role = role
		description.School = school
		description.Bio = bio
		err = db.DB.Save(&description).Error
	}
	if err != nil {
		log.Printf("profile description update for user %d: %v", user.ID, err)
		RenderError(c, http.StatusInternalServerError, "프로필 정보 업데이트 중 오류가 발생했습니다.")
		return
	}

	c.Redirect(http.StatusFound, "/profile")
}
