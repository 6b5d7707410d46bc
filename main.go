package main

import (
	"log"
	"net/http"
	"os"

	"goblog/config"
	"goblog/handlers"
	"goblog/middleware"
	"goblog/repositories"
	"goblog/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	postRepo := repositories.NewPostRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	blogService := services.NewBlogService(postRepo, categoryRepo, commentRepo)
	commentService := services.NewCommentService(commentRepo, postRepo, userRepo)
	profileService := services.NewProfileService(profileRepo, postRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	blogHandler := handlers.NewBlogHandler(blogService)
	commentHandler := handlers.NewCommentHandler(commentService)
	profileHandler := handlers.NewProfileHandler(profileService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, X-Requested-With")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Public pages
	router.GET("/", blogHandler.Home)
	router.GET("/posts/", blogHandler.PostList)
	router.GET("/post/:slug/", blogHandler.PostDetail)
	router.GET("/category/:slug/", blogHandler.CategoryDetail)
	router.GET("/search/", blogHandler.Search)

	// Auth pages (public)
	router.GET("/register/", authHandler.ShowRegister)
	router.POST("/register/", authHandler.Register)
	router.GET("/login/", authHandler.ShowLogin)
	router.POST("/login/", authHandler.Login)
	router.GET("/logout/", authHandler.Logout)

	// Session-only routes
	protected := router.Group("/")
	protected.Use(middleware.AuthRequired())
	{
		protected.POST("/comment/:post_slug/", commentHandler.AddComment)
		protected.GET("/profile/", profileHandler.Profile)
		protected.GET("/profile/edit/", profileHandler.ShowEditProfile)
		protected.POST("/profile/edit/", profileHandler.EditProfile)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
