package handlers

import (
	"github.com/raj2411/MusicPlayerBackend/internal/app"
	"github.com/raj2411/MusicPlayerBackend/internal/handlers/middleware"
	logger "github.com/raj2411/MusicPlayerBackend/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) error {
	router.Use(app.Middleware.TraceID())

	api := router.Group("/api")
	HealthHandler(api, app.Config)
	NewRatingHandler(*app, api).Register()
	NewHistoryHandler(*app, api).Register()
	NewFavoritesHandler(*app, api).Register()
	NewUserHandler(*app, api).Register()
	NewRecommendationHandler(*app, api).Register()

	return nil
}
