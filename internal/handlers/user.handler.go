package handlers

import (
	"errors"

	"github.com/raj2411/MusicPlayerBackend/internal/app"
	userController "github.com/raj2411/MusicPlayerBackend/internal/controllers/users"
	logger "github.com/raj2411/MusicPlayerBackend/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	Handler
	userController userController.UserControllerInterface
}

func NewUserHandler(app app.App, router fiber.Router) *UserHandler {
	log := logger.New("handlers").File("user_handler")
	return &UserHandler{
		userController: app.Controllers.User,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *UserHandler) Register() {
	h.router.Get("/user-preferences", h.getPreferences)
}

func (h *UserHandler) getPreferences(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "userId is required",
		})
	}

	preferences, err := h.userController.GetPreferences(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, userController.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch preferences",
		})
	}

	return c.JSON(fiber.Map{
		"preferences": preferences,
	})
}
