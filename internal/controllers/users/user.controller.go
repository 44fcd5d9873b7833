package userController

import (
	"context"
	"errors"

	"github.com/raj2411/MusicPlayerBackend/internal/repositories"
	logger "github.com/raj2411/MusicPlayerBackend/pkg/logger"
)

var ErrUserNotFound = errors.New("user not found")

type UserControllerInterface interface {
	GetPreferences(ctx context.Context, userID string) ([]string, error)
}

type UserController struct {
	userRepo repositories.UserRepository
	log      logger.Logger
}

func New(repos repositories.Repository) UserControllerInterface {
	return &UserController{
		userRepo: repos.User,
		log:      logger.New("userController"),
	}
}

// GetPreferences returns the user's genre preferences as a trimmed list.
func (c *UserController) GetPreferences(ctx context.Context, userID string) ([]string, error) {
	log := c.log.TraceFromContext(ctx).Function("GetPreferences")

	user, found, err := c.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, log.Err("failed to load user", err, "userID", userID)
	}
	if !found {
		return nil, ErrUserNotFound
	}

	return user.PreferenceList(), nil
}
