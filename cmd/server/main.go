package main

import (
	"log"
	"os"

	"flower_shop/internal/config"
	"flower_shop/internal/database"
	"flower_shop/internal/handlers"
	"flower_shop/internal/middleware"
	"flower_shop/internal/redis"
	"flower_shop/internal/repository"
	"flower_shop/internal/services"
	"flower_shop/pkg/telegram"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if cfg.BotToken == "" {
		log.Fatal("BOT_TOKEN is required")
	}

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize Telegram client for manager notifications
	telegramClient, err := telegram.NewClient(cfg.BotToken)
	if err != nil {
		log.Fatal("Failed to create Telegram client:", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal("Failed to create upload directory:", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	goodRepo := repository.NewGoodRepository(db)
	imageRepo := repository.NewGoodImageRepository(db)
	addressRepo := repository.NewShopAddressRepository(db)
	bannerRepo := repository.NewPromoBannerRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	goodService := services.NewGoodService(goodRepo, imageRepo, categoryRepo)
	addressService := services.NewShopAddressService(addressRepo)
	bannerService := services.NewPromoBannerService(bannerRepo)
	settingService := services.NewSettingService(settingRepo)
	notifier := services.NewNotificationService(settingRepo, userRepo, telegramClient, services.NewGomailSender())
	orderService := services.NewOrderService(orderRepo, goodRepo, userRepo, notifier)
	uploadService := services.NewUploadService(cfg.UploadDir)
	suggestService := services.NewSuggestService(cfg.DadataAPIKey, redisClient)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, settingService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	goodHandler := handlers.NewGoodHandler(goodService, uploadService)
	addressHandler := handlers.NewShopAddressHandler(addressService)
	bannerHandler := handlers.NewPromoBannerHandler(bannerService)
	orderHandler := handlers.NewOrderHandler(orderService)
	uploadHandler := handlers.NewUploadHandler(uploadService)
	suggestHandler := handlers.NewSuggestHandler(suggestService)

	// Setup routes
	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	auth := middleware.Auth(cfg.BotToken)
	admin := middleware.AdminRequired(userService)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Uploaded images are served from the /api prefix the nginx proxy uses
	router.Static("/api/static", cfg.UploadDir)

	// Public endpoints
	router.GET("/goods", goodHandler.GetGoods)
	router.GET("/categories", categoryHandler.GetCategories)
	router.GET("/promo", bannerHandler.GetPromoBanners)
	router.GET("/shop/addresses", addressHandler.GetShopAddresses)
	router.GET("/dadata/suggest", suggestHandler.SuggestAddress)
	router.POST("/shop/upload", uploadHandler.UploadImages)

	// Authenticated endpoints
	authenticated := router.Group("", auth)
	{
		authenticated.GET("/goods/all", goodHandler.GetAllGoods)
		authenticated.GET("/users/me", userHandler.GetCurrentUser)
		authenticated.PUT("/users/me/phone", userHandler.UpdateCurrentUserPhone)
		authenticated.POST("/orders", orderHandler.CreateOrder)
		authenticated.GET("/orders/my", orderHandler.GetMyOrders)
	}

	// Admin endpoints
	adminOnly := router.Group("", auth, admin)
	{
		adminOnly.POST("/goods/card", goodHandler.CreateGoodCard)
		adminOnly.PUT("/goods/:id", goodHandler.UpdateGoodCard)
		adminOnly.POST("/goods/:id/images", goodHandler.AddGoodImages)
		adminOnly.DELETE("/goods/:id", goodHandler.DeleteGood)
		adminOnly.PUT("/goods/:id/block", goodHandler.BlockGood)
		adminOnly.PUT("/goods/:id/activate", goodHandler.ActivateGood)
		adminOnly.PUT("/goods/:id/images/reorder", goodHandler.ReorderGoodImages)
		adminOnly.DELETE("/goods/:id/images", goodHandler.DeleteGoodImage)

		adminOnly.GET("/categories/all", categoryHandler.GetAllCategories)
		adminOnly.GET("/categories/:id", categoryHandler.GetCategory)
		adminOnly.POST("/categories", categoryHandler.CreateCategory)
		adminOnly.PUT("/categories/:id", categoryHandler.UpdateCategory)
		adminOnly.PUT("/categories/:id/status", categoryHandler.UpdateCategoryStatus)
		adminOnly.DELETE("/categories/:id", categoryHandler.DeleteCategory)

		adminOnly.PUT("/orders/:id", orderHandler.UpdateOrder)
		adminOnly.GET("/orders/:id", orderHandler.GetOrder)
		adminOnly.GET("/orders", orderHandler.GetOrders)
		adminOnly.DELETE("/orders/:id", orderHandler.DeleteOrder)

		adminOnly.PUT("/users/me/mode", userHandler.UpdateCurrentUserMode)
		adminOnly.GET("/users/settings", userHandler.GetSettings)
		adminOnly.POST("/users/settings", userHandler.UpsertSetting)
		adminOnly.DELETE("/users/settings/:type", userHandler.DeleteSetting)

		adminOnly.POST("/shop/addresses", addressHandler.CreateShopAddress)
		adminOnly.PUT("/shop/addresses/:id", addressHandler.UpdateShopAddress)
		adminOnly.DELETE("/shop/addresses/:id", addressHandler.DeleteShopAddress)

		adminOnly.GET("/promo/all", bannerHandler.GetAllPromoBanners)
		adminOnly.POST("/promo", bannerHandler.CreatePromoBanner)
		adminOnly.PUT("/promo/:id", bannerHandler.UpdatePromoBanner)
		adminOnly.PUT("/promo/:id/block", bannerHandler.BlockPromoBanner)
		adminOnly.PUT("/promo/:id/activate", bannerHandler.ActivatePromoBanner)
		adminOnly.DELETE("/promo/:id", bannerHandler.DeletePromoBanner)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
