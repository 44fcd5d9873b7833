package repositories

import (
	"context"

	"github.com/raj2411/MusicPlayerBackend/internal/database"
	. "github.com/raj2411/MusicPlayerBackend/internal/models"
	logger "github.com/raj2411/MusicPlayerBackend/pkg/logger"
)

// FeedbackRepository persists the write-once audit copies of rating
// submissions. No cache; events are written far more often than read.
type FeedbackRepository interface {
	SaveEvent(ctx context.Context, ratingID string, event FeedbackEvent) error
}

type feedbackRepository struct {
	store database.DocumentStore
	log   logger.Logger
}

func NewFeedbackRepository(store database.DocumentStore) FeedbackRepository {
	return &feedbackRepository{
		store: store,
		log:   logger.New("feedbackRepository"),
	}
}

func (r *feedbackRepository) SaveEvent(
	ctx context.Context,
	ratingID string,
	event FeedbackEvent,
) error {
	log := r.log.Function("SaveEvent")

	if err := r.store.Set(ctx, CollectionFeedback, ratingID, event); err != nil {
		return log.Err("failed to save feedback event", err, "ratingID", ratingID)
	}

	return nil
}
