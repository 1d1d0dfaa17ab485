package handlers

import (
	"log"
	"net/http"

	"linker/internal/middleware"
	"linker/internal/models"
	"linker/internal/services"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Index 홈 화면: 내 글, 스크랩한 글, 인기 글 블록
func (h *HomeHandler) Index(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	myPosts, err := services.MyCommunityPosts(user.ID, 10)
	if err != nil {
		log.Printf("home: my posts for user %d: %v", user.ID, err)
	}

	scrapped, err := services.ScrappedPosts(user.ID, 20)
	if err != nil {
		log.Printf("home: scrapped posts for user %d: %v", user.ID, err)
	}

	popularCampus, err := services.PopularBoard(models.CampusCategories, 8)
	if err != nil {
		log.Printf("home: popular campus: %v", err)
	}

	popularContest, err := services.PopularBoard(models.ContestCategories, 8)
	if err != nil {
		log.Printf("home: popular contest: %v", err)
	}

	Render(c, http.StatusOK, "main.html", gin.H{
		"Title":          "링커",
		"MyPosts":        myPosts,
		"ScrappedPosts":  scrapped,
		"PopularCampus":  popularCampus,
		"PopularContest": popularContest,
	})
}
