package repositories

import (
	"context"
	"time"

	"github.com/raj2411/MusicPlayerBackend/internal/database"
	. "github.com/raj2411/MusicPlayerBackend/internal/models"
	logger "github.com/raj2411/MusicPlayerBackend/pkg/logger"
)

const (
	TRACK_CACHE_PREFIX = "track_doc"
	TRACK_CACHE_EXPIRY = 24 * time.Hour
)

type TrackRepository interface {
	GetTrack(ctx context.Context, trackID string) (*Track, bool, error)
	SaveTrack(ctx context.Context, track Track) error
	UpdateUserRatings(ctx context.Context, trackID string, ratings map[string]RatingEntry) error
}

type trackRepository struct {
	store database.DocumentStore
	cache database.CacheClient
	log   logger.Logger
}

func NewTrackRepository(store database.DocumentStore, cache database.CacheClient) TrackRepository {
	return &trackRepository{
		store: store,
		cache: cache,
		log:   logger.New("trackRepository"),
	}
}

func (r *trackRepository) GetTrack(ctx context.Context, trackID string) (*Track, bool, error) {
	log := r.log.Function("GetTrack")

	if r.cache != nil {
		var cached Track
		found, err := database.NewCacheBuilder(r.cache, trackID).
			WithContext(ctx).
			WithHash(TRACK_CACHE_PREFIX).
			Get(&cached)
		if err != nil {
			log.Warn("failed to get track from cache", "trackID", trackID, "error", err)
		}
		if found {
			return &cached, true, nil
		}
	}

	var track Track
	found, err := r.store.Get(ctx, CollectionTracks, trackID, &track)
	if err != nil {
		return nil, false, log.Err("failed to load track document", err, "trackID", trackID)
	}
	if !found {
		return nil, false, nil
	}

	r.cacheTrack(ctx, trackID, &track)

	return &track, true, nil
}

func (r *trackRepository) SaveTrack(ctx context.Context, track Track) error {
	log := r.log.Function("SaveTrack")

	if err := r.store.Set(ctx, CollectionTracks, track.TrackID, track); err != nil {
		return log.Err("failed to save track document", err, "trackID", track.TrackID)
	}

	r.invalidateTrack(ctx, track.TrackID)
	return nil
}

func (r *trackRepository) UpdateUserRatings(
	ctx context.Context,
	trackID string,
	ratings map[string]RatingEntry,
) error {
	log := r.log.Function("UpdateUserRatings")

	if err := r.store.UpdateField(ctx, CollectionTracks, trackID, "userRatings", ratings); err != nil {
		return log.Err("failed to update track ratings", err, "trackID", trackID)
	}

	r.invalidateTrack(ctx, trackID)
	return nil
}

func (r *trackRepository) cacheTrack(ctx context.Context, trackID string, track *Track) {
	if r.cache == nil {
		return
	}

	err := database.NewCacheBuilder(r.cache, trackID).
		WithContext(ctx).
		WithHash(TRACK_CACHE_PREFIX).
		WithStruct(track).
		WithTTL(TRACK_CACHE_EXPIRY).
		Set()
	if err != nil {
		r.log.Warn("failed to cache track document", "trackID", trackID, "error", err)
	}
}

func (r *trackRepository) invalidateTrack(ctx context.Context, trackID string) {
	if r.cache == nil {
		return
	}

	err := database.NewCacheBuilder(r.cache, trackID).
		WithContext(ctx).
		WithHash(TRACK_CACHE_PREFIX).
		Delete()
	if err != nil {
		r.log.Warn("failed to invalidate track cache", "trackID", trackID, "error", err)
	}
}
