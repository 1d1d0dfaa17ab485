package main

import (
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"linker/internal/db"
	"linker/internal/middleware"
	"linker/internal/router"
	"linker/internal/utils"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Initialize Database
	db.Init()

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "linker-secret-change-me"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("linker_session", store))

	// Load Templates using Multitemplate to avoid collision and allow handler names
	r.HTMLRender = loadTemplates("./web/templates")

	// Static Assets
	r.Static("/static", "./web/static")

	// Middleware
	r.Use(middleware.LoadUser())

	router.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	log.Printf("Linker server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	includes, err := filepath.Glob(templatesDir + "/includes/*.html")
	if err != nil {
		panic(err)
	}

	assemble := func(view string) []string {
		files := make([]string, 0)
		files = append(files, layouts...)
		files = append(files, includes...)
		files = append(files, view)
		return files
	}

	funcMap := template.FuncMap{
		"dict": func(values ...interface{}) (map[string]interface{}, error) {
			if len(values)%2 != 0 {
				return nil, fmt.Errorf("invalid dict call")
			}
			dict := make(map[string]interface{}, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict keys must be strings")
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},
		"add": func(a, b int) int {
			return a + b
		},
		"timeAgo": func(t interface{}) string {
			if v, ok := t.(time.Time); ok {
				return utils.RelativeTime(v)
			}
			return ""
		},
		"dateFormat": func(t time.Time, layout string) string {
			return t.Format(layout)
		},
		"markdown": func(s string) template.HTML {
			return utils.RenderMarkdown(s)
		},
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
		"join": func(items []string, sep string) string {
			return strings.Join(items, sep)
		},
	}

	// Auth
	r.AddFromFilesFuncs("auth/login.html", funcMap, assemble(templatesDir+"/views/auth/login.html")...)
	r.AddFromFilesFuncs("auth/register.html", funcMap, assemble(templatesDir+"/views/auth/register.html")...)

	// Home
	r.AddFromFilesFuncs("main.html", funcMap, assemble(templatesDir+"/views/main.html")...)

	// Campus and contest share the board views; registered once per key
	// so handlers stay board-agnostic.
	for _, board := range []string{"campus", "contest"} {
		r.AddFromFilesFuncs(board+"/list.html", funcMap, assemble(templatesDir+"/views/board/list.html")...)
		r.AddFromFilesFuncs(board+"/add.html", funcMap, assemble(templatesDir+"/views/board/add.html")...)
		r.AddFromFilesFuncs(board+"/seek.html", funcMap, assemble(templatesDir+"/views/board/seek.html")...)
		r.AddFromFilesFuncs(board+"/detail.html", funcMap, assemble(templatesDir+"/views/board/detail.html")...)
		r.AddFromFilesFuncs(board+"/seek_detail.html", funcMap, assemble(templatesDir+"/views/board/seek_detail.html")...)
	}

	// Community
	r.AddFromFilesFuncs("community/list.html", funcMap, assemble(templatesDir+"/views/community/list.html")...)
	r.AddFromFilesFuncs("community/add.html", funcMap, assemble(templatesDir+"/views/community/add.html")...)
	r.AddFromFilesFuncs("community/edit.html", funcMap, assemble(templatesDir+"/views/community/edit.html")...)
	r.AddFromFilesFuncs("community/detail.html", funcMap, assemble(templatesDir+"/views/community/detail.html")...)

	// Folder
	r.AddFromFilesFuncs("folders/detail.html", funcMap, assemble(templatesDir+"/views/folders/detail.html")...)

	// Profile
	r.AddFromFilesFuncs("profile.html", funcMap, assemble(templatesDir+"/views/profile.html")...)

	// Error
	r.AddFromFilesFuncs("error.html", funcMap, assemble(templatesDir+"/views/error.html")...)

	return r
}
