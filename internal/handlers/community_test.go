package handlers

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"linker/internal/middleware"
	"linker/internal/models"

	"github.com/gin-gonic/gin"
)

// communityAddRouter wires the Add handler with a stub template and a
// logged-in user, enough to exercise the form validation paths.
func communityAddRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("community/add.html").Parse(`{{ .Error }}`)))
	h := NewCommunityHandler()
	r.POST("/community/add", func(c *gin.Context) {
		c.Set(middleware.CheckUserKey, &models.User{ID: 1, Nickname: "tester"})
		h.Add(c)
	})
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCommunityAddRejectsUnknownCategory(t *testing.T) {
	r := communityAddRouter()

	w := postForm(r, "/community/add", url.Values{
		"title":    {"제목"},
		"content":  {"내용"},
		"category": {"random"},
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "올바른 카테고리가 아닙니다.") {
		t.Errorf("missing category error in %q", w.Body.String())
	}
}

func TestCommunityAddRejectsMissingFields(t *testing.T) {
	r := communityAddRouter()

	w := postForm(r, "/community/add", url.Values{
		"title":    {"제목"},
		"category": {models.CommunityCategoryFree},
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "모든 항목을 입력해주세요.") {
		t.Errorf("missing field error in %q", w.Body.String())
	}
}
