package config

import (
	"breakfast4u-web/internal/api/handlers"
	"breakfast4u-web/internal/api/routes"
	"breakfast4u-web/internal/middleware"
	"breakfast4u-web/internal/utils"
	"breakfast4u-web/pkg/api"
	"breakfast4u-web/pkg/owner"
	"breakfast4u-web/pkg/session"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func NewApp() (*fiber.App, error) {
	utils.LoadConfig()
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
		TimeZone:   "Asia/Kolkata",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// remote API client and session store
	client := api.NewClient(utils.GetConfig("API_URL"))
	sessions := session.NewManager(utils.GetConfig("SESSION_FILE"))
	cookieName := utils.GetConfig("SESSION_COOKIE")

	// Service
	mealService := owner.NewMealService(client, validator)

	// Handler
	authHandler := handlers.NewAuthHandler(client, sessions, validator, cookieName)
	menuHandler := handlers.NewMenuHandler(client)
	storeHandler := handlers.NewStoreHandler(client)
	contactHandler := handlers.NewContactHandler(client, validator)
	dashboardHandler := handlers.NewDashboardHandler(mealService)

	// routes
	routesConfig := routes.Config{
		App:              app,
		AuthHandler:      authHandler,
		MenuHandler:      menuHandler,
		StoreHandler:     storeHandler,
		ContactHandler:   contactHandler,
		DashboardHandler: dashboardHandler,
		Middleware:       middlewares,
		Sessions:         sessions,
		SessionCookie:    cookieName,
	}
	routesConfig.Setup()
	return app, nil
}
