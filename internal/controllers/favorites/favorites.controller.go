package favoritesController

import (
	"context"
	"errors"

	. "github.com/raj2411/MusicPlayerBackend/internal/models"
	"github.com/raj2411/MusicPlayerBackend/internal/repositories"
	logger "github.com/raj2411/MusicPlayerBackend/pkg/logger"
)

var ErrUserNotFound = errors.New("user not found")

type FavoritesControllerInterface interface {
	Check(ctx context.Context, userID, trackID string) (bool, error)
	Toggle(ctx context.Context, userID, trackID string) (bool, error)
	List(ctx context.Context, userID string) ([]Track, error)
}

type FavoritesController struct {
	userRepo  repositories.UserRepository
	trackRepo repositories.TrackRepository
	log       logger.Logger
}

func New(repos repositories.Repository) FavoritesControllerInterface {
	return &FavoritesController{
		userRepo:  repos.User,
		trackRepo: repos.Track,
		log:       logger.New("favoritesController"),
	}
}

func (c *FavoritesController) Check(ctx context.Context, userID, trackID string) (bool, error) {
	log := c.log.TraceFromContext(ctx).Function("Check")

	user, found, err := c.userRepo.GetUser(ctx, userID)
	if err != nil {
		return false, log.Err("failed to load user", err, "userID", userID)
	}
	if !found {
		return false, ErrUserNotFound
	}

	return user.HasFavorite(trackID), nil
}

// Toggle adds the track to the user's favorites, or removes it if already
// present, and returns the resulting favorite state.
func (c *FavoritesController) Toggle(ctx context.Context, userID, trackID string) (bool, error) {
	log := c.log.TraceFromContext(ctx).Function("Toggle")

	user, found, err := c.userRepo.GetUser(ctx, userID)
	if err != nil {
		return false, log.Err("failed to load user", err, "userID", userID)
	}
	if !found {
		return false, ErrUserNotFound
	}

	favorites := make([]string, 0, len(user.Favorites)+1)
	isFavorite := false
	for _, id := range user.Favorites {
		if id == trackID {
			continue
		}
		favorites = append(favorites, id)
	}
	if len(favorites) == len(user.Favorites) {
		favorites = append(favorites, trackID)
		isFavorite = true
	}

	if err := c.userRepo.UpdateFavorites(ctx, userID, favorites); err != nil {
		return false, log.Err("failed to persist favorites", err, "userID", userID)
	}

	return isFavorite, nil
}

// List resolves the user's favorite track IDs to catalog documents. Missing
// tracks are skipped; an unknown user yields an empty list, which is what
// the clients already expect from this endpoint.
func (c *FavoritesController) List(ctx context.Context, userID string) ([]Track, error) {
	log := c.log.TraceFromContext(ctx).Function("List")

	user, found, err := c.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, log.Err("failed to load user", err, "userID", userID)
	}
	if !found {
		return []Track{}, nil
	}

	tracks := make([]Track, 0, len(user.Favorites))
	for _, trackID := range user.Favorites {
		track, found, err := c.trackRepo.GetTrack(ctx, trackID)
		if err != nil {
			return nil, log.Err("failed to resolve favorite track", err, "trackID", trackID)
		}
		if !found {
			continue
		}
		tracks = append(tracks, *track)
	}

	return tracks, nil
}
