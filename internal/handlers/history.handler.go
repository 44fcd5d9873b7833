package handlers

import (
	"errors"

	"github.com/raj2411/MusicPlayerBackend/internal/app"
	historyController "github.com/raj2411/MusicPlayerBackend/internal/controllers/history"
	logger "github.com/raj2411/MusicPlayerBackend/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type HistoryHandler struct {
	Handler
	historyController historyController.HistoryControllerInterface
}

type updateHistoryRequest struct {
	UserID  string `json:"userId"`
	TrackID string `json:"trackId"`
	// Older clients send the track under "songId"
	SongID string `json:"songId"`
}

func NewHistoryHandler(app app.App, router fiber.Router) *HistoryHandler {
	log := logger.New("handlers").File("history_handler")
	return &HistoryHandler{
		historyController: app.Controllers.History,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *HistoryHandler) Register() {
	h.router.Post("/update-history", h.updateHistory)
	h.router.Get("/history", h.getHistory)
}

func (h *HistoryHandler) updateHistory(c *fiber.Ctx) error {
	var req updateHistoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	trackID := req.TrackID
	if trackID == "" {
		trackID = req.SongID
	}

	if req.UserID == "" || trackID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "userId and trackId are required",
		})
	}

	if err := h.historyController.Append(c.UserContext(), req.UserID, trackID); err != nil {
		if errors.Is(err, historyController.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update history",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

func (h *HistoryHandler) getHistory(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "userId is required",
		})
	}

	tracks, err := h.historyController.GetHistory(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, historyController.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch history",
		})
	}

	return c.JSON(tracks)
}
