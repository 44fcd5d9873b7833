package historyController

import (
	"context"
	"errors"
	"time"

	. "github.com/raj2411/MusicPlayerBackend/internal/models"
	"github.com/raj2411/MusicPlayerBackend/internal/repositories"
	logger "github.com/raj2411/MusicPlayerBackend/pkg/logger"
)

var ErrUserNotFound = errors.New("user not found")

type HistoryControllerInterface interface {
	Append(ctx context.Context, userID, trackID string) error
	GetHistory(ctx context.Context, userID string) ([]Track, error)
}

type HistoryController struct {
	userRepo  repositories.UserRepository
	trackRepo repositories.TrackRepository
	log       logger.Logger
	now       func() time.Time
}

func New(repos repositories.Repository) HistoryControllerInterface {
	return &HistoryController{
		userRepo:  repos.User,
		trackRepo: repos.Track,
		log:       logger.New("historyController"),
		now:       time.Now,
	}
}

// Append records a listen at the end of the user's history log and evicts
// from the front once the log exceeds its cap. The whole sequence is
// persisted as a replacement; the store has no array-append primitive.
func (c *HistoryController) Append(ctx context.Context, userID, trackID string) error {
	log := c.log.TraceFromContext(ctx).Function("Append")

	user, found, err := c.userRepo.GetUser(ctx, userID)
	if err != nil {
		return log.Err("failed to load user for history append", err, "userID", userID)
	}
	if !found {
		return ErrUserNotFound
	}

	history := append(user.History, HistoryEntry{
		TrackID:   trackID,
		Timestamp: c.now().Format(HistoryTimestampFormat),
	})

	if len(history) > MaxHistoryEntries {
		history = history[len(history)-MaxHistoryEntries:]
	}

	if err := c.userRepo.UpdateHistory(ctx, userID, history); err != nil {
		return log.Err("failed to persist history", err, "userID", userID)
	}

	return nil
}

// GetHistory resolves each logged track ID against the catalog, oldest
// first. Entries whose track no longer resolves are filtered out, not
// surfaced as errors.
func (c *HistoryController) GetHistory(ctx context.Context, userID string) ([]Track, error) {
	log := c.log.TraceFromContext(ctx).Function("GetHistory")

	user, found, err := c.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, log.Err("failed to load user for history read", err, "userID", userID)
	}
	if !found {
		return nil, ErrUserNotFound
	}

	tracks := make([]Track, 0, len(user.History))
	for _, entry := range user.History {
		track, found, err := c.trackRepo.GetTrack(ctx, entry.TrackID)
		if err != nil {
			return nil, log.Err("failed to resolve history track", err, "trackID", entry.TrackID)
		}
		if !found {
			log.Warn("history references missing track, omitting",
				"userID", userID,
				"trackID", entry.TrackID,
			)
			continue
		}
		tracks = append(tracks, *track)
	}

	return tracks, nil
}
