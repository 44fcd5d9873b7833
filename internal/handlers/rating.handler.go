package handlers

import (
	"errors"

	"github.com/raj2411/MusicPlayerBackend/internal/app"
	feedbackController "github.com/raj2411/MusicPlayerBackend/internal/controllers/feedback"
	logger "github.com/raj2411/MusicPlayerBackend/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type RatingHandler struct {
	Handler
	feedbackController feedbackController.FeedbackControllerInterface
}

func NewRatingHandler(app app.App, router fiber.Router) *RatingHandler {
	log := logger.New("handlers").File("rating_handler")
	return &RatingHandler{
		feedbackController: app.Controllers.Feedback,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *RatingHandler) Register() {
	h.router.Post("/submit-rating", h.submitRating)
}

func (h *RatingHandler) submitRating(c *fiber.Ctx) error {
	var req feedbackController.SubmitRatingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	_, err := h.feedbackController.SubmitRating(c.UserContext(), &req)
	if err != nil {
		var loadingErr *feedbackController.LoadingError
		if errors.As(err, &loadingErr) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error":            "Emotion recognition model is currently loading",
				"estimatedSeconds": loadingErr.EstimatedSeconds,
			})
		}

		var rejectedErr *feedbackController.RejectedError
		if errors.As(err, &rejectedErr) {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "Facial emotion recognition failed",
			})
		}

		if errors.Is(err, feedbackController.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to submit rating",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}
