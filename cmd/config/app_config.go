package config

import (
	"Furnicare-Backend/internal/api/handlers"
	"Furnicare-Backend/internal/api/routes"
	"Furnicare-Backend/internal/middleware"
	"Furnicare-Backend/internal/utils"
	"Furnicare-Backend/internal/utils/storage"
	"Furnicare-Backend/pkg/furniture"
	"Furnicare-Backend/pkg/jwt"
	"Furnicare-Backend/pkg/maintenance"
	"Furnicare-Backend/pkg/subscription"
	"Furnicare-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	furnitureRepository := furniture.NewFurnitureRepository(db)
	maintenanceRepository := maintenance.NewMaintenanceRepository(db)
	subscriptionRepository := subscription.NewSubscriptionRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	maintenanceService := maintenance.NewMaintenanceService(maintenanceRepository)
	furnitureService := furniture.NewFurnitureService(furnitureRepository, userRepository, maintenanceService, s3)
	subscriptionService := subscription.NewSubscriptionService(subscriptionRepository, userRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	furnitureHandler := handlers.NewFurnitureHandler(furnitureService, validator)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceService, validator)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		FurnitureHandler:    furnitureHandler,
		MaintenanceHandler:  maintenanceHandler,
		SubscriptionHandler: subscriptionHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
