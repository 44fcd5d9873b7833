package recommendationController

import (
	"context"
	"errors"

	. "github.com/raj2411/MusicPlayerBackend/internal/models"
	"github.com/raj2411/MusicPlayerBackend/internal/repositories"
	"github.com/raj2411/MusicPlayerBackend/internal/services"
	logger "github.com/raj2411/MusicPlayerBackend/pkg/logger"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrNoPreferences = errors.New("user has no genre preferences")
)

// RecommendationLimit matches the provider request size; a larger pull
// gives a better chance of tracks with audio previews surviving the filter.
const RecommendationLimit = 20

type RecommendationControllerInterface interface {
	ForUser(ctx context.Context, userID string) ([]Track, error)
	ForGenre(ctx context.Context, genre string) ([]Track, error)
}

type RecommendationController struct {
	userRepo  repositories.UserRepository
	trackRepo repositories.TrackRepository
	catalog   services.MusicCatalog
	log       logger.Logger
}

func New(repos repositories.Repository, services services.Service) RecommendationControllerInterface {
	return &RecommendationController{
		userRepo:  repos.User,
		trackRepo: repos.Track,
		catalog:   services.Catalog,
		log:       logger.New("recommendationController"),
	}
}

// ForUser fetches recommendations seeded by the user's stored genre
// preferences and persists the returned tracks into the catalog.
func (c *RecommendationController) ForUser(ctx context.Context, userID string) ([]Track, error) {
	log := c.log.TraceFromContext(ctx).Function("ForUser")

	user, found, err := c.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, log.Err("failed to load user", err, "userID", userID)
	}
	if !found {
		return nil, ErrUserNotFound
	}

	genres := user.PreferenceList()
	if len(genres) == 0 {
		return nil, ErrNoPreferences
	}

	return c.fetchAndStore(ctx, genres, log)
}

// ForGenre fetches recommendations for a single explicit genre.
func (c *RecommendationController) ForGenre(ctx context.Context, genre string) ([]Track, error) {
	log := c.log.TraceFromContext(ctx).Function("ForGenre")

	return c.fetchAndStore(ctx, []string{genre}, log)
}

func (c *RecommendationController) fetchAndStore(
	ctx context.Context,
	genres []string,
	log logger.Logger,
) ([]Track, error) {
	tracks, err := c.catalog.Recommendations(ctx, genres, RecommendationLimit)
	if err != nil {
		return nil, log.Err("failed to fetch recommendations", err, "genres", genres)
	}

	for i := range tracks {
		// A re-fetched track must not clobber ratings already accumulated
		// on its document.
		existing, found, err := c.trackRepo.GetTrack(ctx, tracks[i].TrackID)
		if err != nil {
			return nil, log.Err("failed to check existing track", err, "trackID", tracks[i].TrackID)
		}
		if found {
			tracks[i].UserRatings = existing.UserRatings
		}

		if err := c.trackRepo.SaveTrack(ctx, tracks[i]); err != nil {
			return nil, log.Err("failed to save recommended track", err, "trackID", tracks[i].TrackID)
		}
	}

	return tracks, nil
}
