package routes

import (
	"Furnicare-Backend/internal/api/handlers"
	"Furnicare-Backend/internal/middleware"
	"Furnicare-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	FurnitureHandler    handlers.FurnitureHandler
	MaintenanceHandler  handlers.MaintenanceHandler
	SubscriptionHandler handlers.SubscriptionHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Furniture()
	c.Maintenance()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
		user.Post("/subscribe", c.Middleware.AuthMiddleware(c.JWTService), c.SubscriptionHandler.CreateSubscription)
	}
}

func (c *Config) Furniture() {
	c.App.Get("/api/v1/categories", c.Middleware.AuthMiddleware(c.JWTService), c.FurnitureHandler.GetCategories)

	locations := c.App.Group("/api/v1/locations", c.Middleware.AuthMiddleware(c.JWTService))
	{
		locations.Post("", c.FurnitureHandler.AddLocation)
		locations.Get("", c.FurnitureHandler.GetLocations)
		locations.Put("/:id", c.FurnitureHandler.UpdateLocation)
		locations.Delete("/:id", c.FurnitureHandler.DeleteLocation)
	}

	furniture := c.App.Group("/api/v1/furniture", c.Middleware.AuthMiddleware(c.JWTService))
	{
		furniture.Post("", c.FurnitureHandler.AddFurniture)
		furniture.Get("", c.FurnitureHandler.GetFurnitureList)
		furniture.Get("/:id", c.FurnitureHandler.GetFurnitureDetails)
		furniture.Put("/:id", c.FurnitureHandler.UpdateFurniture)
		furniture.Delete("/:id", c.FurnitureHandler.DeleteFurniture)
		furniture.Post("/photo", c.FurnitureHandler.UploadFurniturePhoto)
	}
}

func (c *Config) Maintenance() {
	maintenance := c.App.Group("/api/v1/maintenance", c.Middleware.AuthMiddleware(c.JWTService))

	// Calendar and board views
	maintenance.Get("/summary", c.MaintenanceHandler.GetSummary)
	maintenance.Get("/board", c.MaintenanceHandler.GetBoard)

	// Recurring tasks
	maintenance.Post("/tasks", c.MaintenanceHandler.AddTask)
	maintenance.Get("/tasks/furniture/:furniture_id", c.MaintenanceHandler.GetTasks)
	maintenance.Put("/tasks/:id", c.MaintenanceHandler.UpdateTask)
	maintenance.Delete("/tasks/:id", c.MaintenanceHandler.DeleteTask)

	// Performed-maintenance records
	maintenance.Post("/records", c.MaintenanceHandler.LogRecord)
	maintenance.Get("/records/task/:task_id", c.MaintenanceHandler.GetRecords)
	maintenance.Delete("/records/:id", c.MaintenanceHandler.DeleteRecord)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.SubscriptionHandler.MidtransWebhookHandler)
}
