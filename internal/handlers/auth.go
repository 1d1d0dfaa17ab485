package handlers

import (
	"net/http"
	"strings"

	"linker/internal/db"
	"linker/internal/models"
	"linker/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	Render(c, http.StatusOK, "auth/register.html", nil)
}

func (h *AuthHandler) Register(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	nickname := strings.TrimSpace(c.PostForm("nickname"))
	email := strings.ToLower(strings.TrimSpace(c.PostForm("email")))
	password := c.PostForm("password")

	form := gin.H{"Name": name, "Nickname": nickname, "Email": email}

	if name == "" || nickname == "" || email == "" || password == "" {
		form["Error"] = "모든 항목을 입력해 주세요."
		Render(c, http.StatusBadRequest, "auth/register.html", form)
		return
	}
	if !strings.Contains(email, "@") {
		form["Error"] = "이메일 형식이 올바르지 않습니다."
		Render(c, http.StatusBadRequest, "auth/register.html", form)
		return
	}
	if len(password) < 6 {
		form["Error"] = "비밀번호는 6자 이상이어야 합니다."
		Render(c, http.StatusBadRequest, "auth/register.html", form)
		return
	}

	var count int64
	db.DB.Model(&models.User{}).Where("nickname = ?", nickname).Count(&count)
	if count > 0 {
		form["Error"] = "이미 사용 중인 닉네임입니다."
		Render(c, http.StatusConflict, "auth/register.html", form)
		return
	}
	db.DB.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		form["Error"] = "이미 가입된 이메일입니다."
		Render(c, http.StatusConflict, "auth/register.html", form)
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		form["Error"] = "회원가입에 실패했습니다. 잠시 후 다시 시도해 주세요."
		Render(c, http.StatusInternalServerError, "auth/register.html", form)
		return
	}

	user := models.User{
		Name:     name,
		Nickname: nickname,
		Email:    email,
		Password: hash,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		form["Error"] = "회원가입에 실패했습니다. 잠시 후 다시 시도해 주세요."
		Render(c, http.StatusInternalServerError, "auth/register.html", form)
		return
	}

	Render(c, http.StatusOK, "auth/login.html", gin.H{"Success": "회원가입이 완료되었습니다. 로그인해 주세요."})
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(c.PostForm("email")))
	password := c.PostForm("password")

	var user models.User
	if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{"Error": "이메일 또는 비밀번호가 올바르지 않습니다.", "Email": email})
		return
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{"Error": "이메일 또는 비밀번호가 올바르지 않습니다.", "Email": email})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/login")
}
