package repositories

import (
	"context"
	"time"

	"github.com/raj2411/MusicPlayerBackend/internal/database"
	. "github.com/raj2411/MusicPlayerBackend/internal/models"
	logger "github.com/raj2411/MusicPlayerBackend/pkg/logger"
)

const (
	USER_CACHE_PREFIX = "user_doc"
	USER_CACHE_EXPIRY = 1 * time.Hour
)

type UserRepository interface {
	GetUser(ctx context.Context, userID string) (*User, bool, error)
	UpdateRatings(ctx context.Context, userID string, ratings map[string]RatingEntry) error
	UpdateHistory(ctx context.Context, userID string, history []HistoryEntry) error
	UpdateFavorites(ctx context.Context, userID string, favorites []string) error
}

type userRepository struct {
	store database.DocumentStore
	cache database.CacheClient
	log   logger.Logger
}

func NewUserRepository(store database.DocumentStore, cache database.CacheClient) UserRepository {
	return &userRepository{
		store: store,
		cache: cache,
		log:   logger.New("userRepository"),
	}
}

func (r *userRepository) GetUser(ctx context.Context, userID string) (*User, bool, error) {
	log := r.log.Function("GetUser")

	if r.cache != nil {
		var cached User
		found, err := database.NewCacheBuilder(r.cache, userID).
			WithContext(ctx).
			WithHash(USER_CACHE_PREFIX).
			Get(&cached)
		if err != nil {
			log.Warn("failed to get user from cache", "userID", userID, "error", err)
		}
		if found {
			return &cached, true, nil
		}
	}

	var user User
	found, err := r.store.Get(ctx, CollectionUsers, userID, &user)
	if err != nil {
		return nil, false, log.Err("failed to load user document", err, "userID", userID)
	}
	if !found {
		return nil, false, nil
	}

	r.cacheUser(ctx, userID, &user)

	return &user, true, nil
}

func (r *userRepository) UpdateRatings(
	ctx context.Context,
	userID string,
	ratings map[string]RatingEntry,
) error {
	log := r.log.Function("UpdateRatings")

	if err := r.store.UpdateField(ctx, CollectionUsers, userID, "ratings", ratings); err != nil {
		return log.Err("failed to update user ratings", err, "userID", userID)
	}

	r.invalidateUser(ctx, userID)
	return nil
}

func (r *userRepository) UpdateHistory(
	ctx context.Context,
	userID string,
	history []HistoryEntry,
) error {
	log := r.log.Function("UpdateHistory")

	if err := r.store.UpdateField(ctx, CollectionUsers, userID, "history", history); err != nil {
		return log.Err("failed to update user history", err, "userID", userID)
	}

	r.invalidateUser(ctx, userID)
	return nil
}

func (r *userRepository) UpdateFavorites(
	ctx context.Context,
	userID string,
	favorites []string,
) error {
	log := r.log.Function("UpdateFavorites")

	if err := r.store.UpdateField(ctx, CollectionUsers, userID, "favorites", favorites); err != nil {
		return log.Err("failed to update user favorites", err, "userID", userID)
	}

	r.invalidateUser(ctx, userID)
	return nil
}

func (r *userRepository) cacheUser(ctx context.Context, userID string, user *User) {
	if r.cache == nil {
		return
	}

	err := database.NewCacheBuilder(r.cache, userID).
		WithContext(ctx).
		WithHash(USER_CACHE_PREFIX).
		WithStruct(user).
		WithTTL(USER_CACHE_EXPIRY).
		Set()
	if err != nil {
		r.log.Warn("failed to cache user document", "userID", userID, "error", err)
	}
}

func (r *userRepository) invalidateUser(ctx context.Context, userID string) {
	if r.cache == nil {
		return
	}

	err := database.NewCacheBuilder(r.cache, userID).
		WithContext(ctx).
		WithHash(USER_CACHE_PREFIX).
		Delete()
	if err != nil {
		r.log.Warn("failed to invalidate user cache", "userID", userID, "error", err)
	}
}
