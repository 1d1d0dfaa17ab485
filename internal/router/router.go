package router

import (
	"linker/internal/handlers"
	"linker/internal/middleware"
	"linker/internal/models"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	homeHandler := handlers.NewHomeHandler()
	campusHandler := handlers.NewBoardHandler("campus")
	contestHandler := handlers.NewBoardHandler("contest")
	communityHandler := handlers.NewCommunityHandler()
	commentHandler := handlers.NewCommentHandler()
	folderHandler := handlers.NewFolderHandler()
	userHandler := handlers.NewUserHandler()

	// 공개 라우트
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)
	r.POST("/logout", authHandler.Logout)

	// 페이지 라우트: 미로그인 시 /login 으로 리다이렉트
	pages := r.Group("/")
	pages.Use(middleware.AuthRequired())
	{
		pages.GET("/", homeHandler.Index)
		pages.GET("/profile", userHandler.Profile)
		pages.POST("/user-description/update", userHandler.UpdateDescription)

		for _, board := range []struct {
			prefix string
			h      *handlers.BoardHandler
		}{
			{"/campus", campusHandler},
			{"/contest", contestHandler},
		} {
			pages.GET(board.prefix, board.h.List)
			pages.GET(board.prefix+"/add", board.h.ShowAdd)
			pages.POST(board.prefix+"/add", board.h.Add)
			pages.GET(board.prefix+"/:id", board.h.Detail)
			pages.GET(board.prefix+"/:id/edit", board.h.ShowEdit)
			pages.POST(board.prefix+"/:id", board.h.Mutate)

			pages.GET(board.prefix+"/seek", board.h.ShowSeekAdd)
			pages.POST(board.prefix+"/seek", board.h.SeekAdd)
			pages.GET(board.prefix+"/seek/:id", board.h.SeekDetail)
			pages.GET(board.prefix+"/seek/:id/edit", board.h.ShowSeekEdit)
			pages.POST(board.prefix+"/seek/:id", board.h.SeekMutate)
		}

		pages.GET("/community", communityHandler.List)
		pages.GET("/community/add", communityHandler.ShowAdd)
		pages.POST("/community/add", communityHandler.Add)
		pages.GET("/community/:id", communityHandler.Detail)
		pages.GET("/community/:id/edit", communityHandler.ShowEdit)
		pages.POST("/community/:id/edit", communityHandler.Edit)
		pages.POST("/community/:id", communityHandler.Delete)

		pages.GET("/folders/:folderId", folderHandler.Detail)
	}

	// JSON 라우트: 미로그인 시 401
	api := r.Group("/")
	api.Use(middleware.AuthRequiredJSON())
	{
		api.POST("/campus/:id/scrap", campusHandler.ToggleScrap)
		api.POST("/campus/:id/close", campusHandler.Close)
		api.POST("/campus/:id/comment", commentHandler.Create(models.PostKindRecruit))
		api.POST("/campus/seek/:id/scrap", campusHandler.SeekToggleScrap)
		api.POST("/campus/seek/:id/comment", commentHandler.Create(models.PostKindSeeking))

		api.POST("/contest/:id/scrap", contestHandler.ToggleScrap)
		api.POST("/contest/:id/close", contestHandler.Close)
		api.POST("/contest/:id/comment", commentHandler.Create(models.PostKindRecruit))
		api.POST("/contest/seek/:id/scrap", contestHandler.SeekToggleScrap)
		api.POST("/contest/seek/:id/comment", commentHandler.Create(models.PostKindSeeking))

		api.POST("/community/:id/like", communityHandler.ToggleLike)
		api.POST("/community/:id/comment", commentHandler.Create(models.PostKindCommunity))
		api.POST("/community/comment/:commentId/like", commentHandler.ToggleLike)
		api.POST("/community/comment/:commentId", commentHandler.Mutate)

		api.POST("/folders", folderHandler.Create)
		api.PUT("/folders/:folderId", folderHandler.Rename)
		api.DELETE("/folders/:folderId", folderHandler.Delete)
		api.POST("/folders/:folderId/posts", folderHandler.AddPost)
		api.DELETE("/folders/:folderId/posts/:postId", folderHandler.RemovePost)

		api.PUT("/users/:id", userHandler.Update)
		api.DELETE("/users/:id", userHandler.Delete)
	}
}
