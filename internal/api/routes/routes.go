package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/resenia/reviews-backend/internal/api/handlers"
	"github.com/resenia/reviews-backend/internal/api/middleware"
	"github.com/resenia/reviews-backend/internal/config"
	"github.com/resenia/reviews-backend/internal/services"
	"github.com/resenia/reviews-backend/pkg/logger"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RateLimitMiddleware(cfg))

	// Initialize services
	emailService := services.NewEmailService(cfg)
	authService := services.NewAuthService(db, cfg.JWTSecret, emailService, cfg.BaseURL)
	productService := services.NewProductService(db)
	reviewService := services.NewReviewService(db)
	s3Service := services.NewS3Service(cfg.AWSRegion, cfg.S3Bucket, cfg.AWSAccessKey, cfg.AWSSecretKey)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	passwordHandler := handlers.NewPasswordHandler(authService)
	productHandler := handlers.NewProductHandler(productService, reviewService, s3Service)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "message": "Server is running"})
	})

	// API routes
	api := router.Group("/api/v1")

	// Auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", middleware.AuthMiddleware(cfg), authHandler.Logout)
		auth.POST("/refresh-token", authHandler.RefreshToken)
		auth.GET("/profile", middleware.AuthMiddleware(cfg), authHandler.GetProfile)
		auth.PUT("/profile-update", middleware.AuthMiddleware(cfg), authHandler.UpdateProfile)
	}

	// Password reset routes
	passwordGroup := api.Group("/password")
	{
		passwordGroup.POST("/forgot", passwordHandler.ForgotPassword)
		passwordGroup.GET("/validate-reset-token", passwordHandler.ValidateResetToken)
		passwordGroup.POST("/reset", passwordHandler.ResetPassword)
		passwordGroup.POST("/change", middleware.AuthMiddleware(cfg), passwordHandler.ChangePassword)
	}

	// Product routes: reads are public, writes require authentication
	// and pass only when the row belongs to the requesting user.
	products := api.Group("/products")
	{
		products.GET("/", productHandler.GetAllProducts)
		products.GET("/categories", productHandler.GetCategories)
		products.GET("/mine", middleware.AuthMiddleware(cfg), productHandler.GetMyProducts)
		products.GET("/:product_id", productHandler.GetProduct)
		products.GET("/:product_id/summary", reviewHandler.GetProductSummary)
		products.GET("/:product_id/reviews", reviewHandler.GetProductReviews)
		products.POST("/", middleware.AuthMiddleware(cfg), productHandler.CreateProduct)
		products.POST("/:product_id/reviews", middleware.AuthMiddleware(cfg), reviewHandler.CreateReview)
		products.POST("/:product_id/image", middleware.AuthMiddleware(cfg), productHandler.UploadProductImage)
		products.PUT("/:product_id", middleware.AuthMiddleware(cfg), productHandler.UpdateProduct)
		products.DELETE("/:product_id", middleware.AuthMiddleware(cfg), productHandler.DeleteProduct)
	}

	logger.Info("Routes initialized successfully")
}
