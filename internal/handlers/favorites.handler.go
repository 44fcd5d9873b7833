package handlers

import (
	"errors"

	"github.com/raj2411/MusicPlayerBackend/internal/app"
	favoritesController "github.com/raj2411/MusicPlayerBackend/internal/controllers/favorites"
	logger "github.com/raj2411/MusicPlayerBackend/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type FavoritesHandler struct {
	Handler
	favoritesController favoritesController.FavoritesControllerInterface
}

type favoriteRequest struct {
	UserID  string `json:"userId"`
	TrackID string `json:"trackId"`
}

func NewFavoritesHandler(app app.App, router fiber.Router) *FavoritesHandler {
	log := logger.New("handlers").File("favorites_handler")
	return &FavoritesHandler{
		favoritesController: app.Controllers.Favorites,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *FavoritesHandler) Register() {
	h.router.Post("/check-favorite", h.checkFavorite)
	h.router.Post("/toggle-favorite", h.toggleFavorite)
	h.router.Get("/favorite-songs", h.favoriteSongs)
}

func (h *FavoritesHandler) checkFavorite(c *fiber.Ctx) error {
	var req favoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	isFavorite, err := h.favoritesController.Check(c.UserContext(), req.UserID, req.TrackID)
	if err != nil {
		if errors.Is(err, favoritesController.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check favorite",
		})
	}

	return c.JSON(fiber.Map{
		"isFavorite": isFavorite,
	})
}

func (h *FavoritesHandler) toggleFavorite(c *fiber.Ctx) error {
	var req favoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	isFavorite, err := h.favoritesController.Toggle(c.UserContext(), req.UserID, req.TrackID)
	if err != nil {
		if errors.Is(err, favoritesController.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to toggle favorite",
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"isFavorite": isFavorite,
	})
}

func (h *FavoritesHandler) favoriteSongs(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "userId is required",
		})
	}

	tracks, err := h.favoritesController.List(c.UserContext(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch favorite songs",
		})
	}

	return c.JSON(tracks)
}
