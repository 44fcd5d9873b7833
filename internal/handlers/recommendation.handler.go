package handlers

import (
	"errors"
	"strings"

	"github.com/raj2411/MusicPlayerBackend/internal/app"
	recommendationController "github.com/raj2411/MusicPlayerBackend/internal/controllers/recommendation"
	logger "github.com/raj2411/MusicPlayerBackend/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type RecommendationHandler struct {
	Handler
	recommendationController recommendationController.RecommendationControllerInterface
}

func NewRecommendationHandler(app app.App, router fiber.Router) *RecommendationHandler {
	log := logger.New("handlers").File("recommendation_handler")
	return &RecommendationHandler{
		recommendationController: app.Controllers.Recommendation,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *RecommendationHandler) Register() {
	h.router.Get("/recommended-songs", h.forUser)
	// Legacy path for genre-seeded fetches; genres arrive with underscores
	// in place of spaces.
	h.router.Get("/recommendedsongs", h.forGenre)
}

func (h *RecommendationHandler) forUser(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "userId is required",
		})
	}

	tracks, err := h.recommendationController.ForUser(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, recommendationController.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		if errors.Is(err, recommendationController.ErrNoPreferences) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "User has no genre preferences",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save songs to database",
		})
	}

	return c.JSON(tracks)
}

func (h *RecommendationHandler) forGenre(c *fiber.Ctx) error {
	genre := c.Query("genre")
	if genre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "genre is required",
		})
	}
	genre = strings.ReplaceAll(genre, "_", " ")

	tracks, err := h.recommendationController.ForGenre(c.UserContext(), genre)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save songs to database",
		})
	}

	return c.JSON(tracks)
}
