package routes

import (
	"time"

	"ryori-backend/extraction"
	"ryori-backend/handlers"
	"ryori-backend/middleware"
	"ryori-backend/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, storageClient storage.Client, extractor extraction.MenuExtractor) {
	// Initialize handlers
	authHandler := &handlers.AuthHandler{DB: db}
	menuHandler := &handlers.MenuHandler{DB: db, Storage: storageClient}
	uploadHandler := &handlers.MenuUploadHandler{MenuHandler: menuHandler, Extractor: extractor}
	availabilityHandler := &handlers.AvailabilityHandler{DB: db}
	reservationHandler := &handlers.ReservationHandler{DB: db}

	// Rate limit the unauthenticated write endpoints
	loginLimiter := middleware.NewRateLimiter(10, 1*time.Minute)
	inquiryLimiter := middleware.NewRateLimiter(20, 1*time.Minute)

	// Public routes
	api := r.Group("/api")
	{
		api.POST("/auth/login", loginLimiter.Middleware(), authHandler.Login)

		api.GET("/menu", menuHandler.GetMenu)

		api.GET("/availability", availabilityHandler.GetAvailability)
		api.GET("/reservations/slots", reservationHandler.GetSlots)
		api.POST("/reservations/inquiry", inquiryLimiter.Middleware(), reservationHandler.CreateInquiry)
	}

	// Protected routes (any authenticated user)
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/auth/profile", authHandler.GetProfile)
		protected.PUT("/auth/password", authHandler.ChangePassword)
	}

	// Admin routes (require admin role)
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		// Menu management
		admin.GET("/menu", menuHandler.GetAdminMenu)
		admin.POST("/menu/categories", menuHandler.CreateCategory)
		admin.PUT("/menu/categories/:id", menuHandler.UpdateCategory)
		admin.DELETE("/menu/categories/:id", menuHandler.DeleteCategory)
		admin.POST("/menu/items", menuHandler.CreateItem)
		admin.PUT("/menu/items/:id", menuHandler.UpdateItem)
		admin.DELETE("/menu/items/:id", menuHandler.DeleteItem)
		admin.POST("/menu/items/:id/image", menuHandler.UploadItemImage)

		// Menu photo import
		admin.POST("/menu/uploads", uploadHandler.UploadMenuPhoto)
		admin.GET("/menu/uploads", uploadHandler.ListUploads)

		// Reservation availability
		admin.GET("/availability", availabilityHandler.GetSchedule)
		admin.PUT("/availability", availabilityHandler.UpdateSchedule)
		admin.POST("/availability/copy-day", availabilityHandler.CopyDay)
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
