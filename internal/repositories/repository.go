package repositories

import (
	"github.com/raj2411/MusicPlayerBackend/internal/database"
)

type Repository struct {
	User     UserRepository
	Track    TrackRepository
	Feedback FeedbackRepository
}

func New(store database.DocumentStore, cache database.Cache) Repository {
	return Repository{
		User:     NewUserRepository(store, cache.User),
		Track:    NewTrackRepository(store, cache.Track),
		Feedback: NewFeedbackRepository(store),
	}
}
