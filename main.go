package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/indunissanka/qbread/auth"
	"github.com/indunissanka/qbread/config"
	"github.com/indunissanka/qbread/controllers"
	"github.com/indunissanka/qbread/database"
	"github.com/indunissanka/qbread/logger"
	"github.com/indunissanka/qbread/middleware"
	"github.com/indunissanka/qbread/models"
	"github.com/indunissanka/qbread/repository"
	"github.com/indunissanka/qbread/routes"
	"github.com/indunissanka/qbread/services"
	"github.com/indunissanka/qbread/session"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Could not connect to PostgreSQL: %v", err)
	}

	if err := models.Migrate(database.DB); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	if err := database.SeedProducts(database.DB); err != nil {
		log.Fatalf("Product seeding failed: %v", err)
	}

	redisClient := database.NewRedisClient(cfg.RedisURL)
	sessions := session.NewRedisStore(redisClient, cfg.SessionTTL)

	userRepo := repository.NewUserRepository(database.DB)
	productRepo := repository.NewProductRepository(database.DB)
	slotRepo := repository.NewDeliverySlotRepository(database.DB)
	orderRepo := repository.NewOrderRepository(database.DB)

	userService := services.NewUserService(userRepo)
	productService := services.NewProductService(productRepo)
	slotService := services.NewDeliverySlotService(slotRepo)
	orderService := services.NewOrderService(orderRepo)

	lineClient := auth.NewLineClient(cfg.LineChannelID, cfg.LineSecret, cfg.LineCallbackURL)
	guard := middleware.NewAuth(sessions, userRepo)

	authController := controllers.NewAuthController(lineClient, sessions, userService, guard, int(cfg.SessionTTL.Seconds()))
	productController := controllers.NewProductController(productService)
	slotController := controllers.NewDeliverySlotController(slotService)
	orderController := controllers.NewOrderController(orderService)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Register(r, guard, authController, productController, slotController, orderController)

	log.Printf("Storefront API listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
