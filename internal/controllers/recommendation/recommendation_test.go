package recommendationController

import (
	"context"
	"testing"

	"github.com/raj2411/MusicPlayerBackend/internal/database"
	. "github.com/raj2411/MusicPlayerBackend/internal/models"
	"github.com/raj2411/MusicPlayerBackend/internal/repositories"
	logger "github.com/raj2411/MusicPlayerBackend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	tracks    []Track
	err       error
	gotGenres []string
	gotLimit  int
}

func (s *stubCatalog) Recommendations(ctx context.Context, genres []string, limit int) ([]Track, error) {
	s.gotGenres = genres
	s.gotLimit = limit
	if s.err != nil {
		return nil, s.err
	}
	out := make([]Track, len(s.tracks))
	copy(out, s.tracks)
	return out, nil
}

func newTestController(store database.DocumentStore, catalog *stubCatalog) *RecommendationController {
	repos := repositories.New(store, database.Cache{})
	return &RecommendationController{
		userRepo:  repos.User,
		trackRepo: repos.Track,
		catalog:   catalog,
		log:       logger.New("recommendationControllerTest"),
	}
}

func TestForUserSeedsFromPreferences(t *testing.T) {
	store := database.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, CollectionUsers, "u1", User{
		Preferences: "rock,jazz",
	}))

	catalog := &stubCatalog{tracks: []Track{
		{TrackID: "t1", TrackName: "One"},
		{TrackID: "t2", TrackName: "Two"},
	}}
	controller := newTestController(store, catalog)

	tracks, err := controller.ForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, tracks, 2)

	assert.Equal(t, []string{"rock", "jazz"}, catalog.gotGenres)
	assert.Equal(t, RecommendationLimit, catalog.gotLimit)

	// Fetched tracks land in the catalog collection.
	var stored Track
	found, err := store.Get(ctx, CollectionTracks, "t1", &stored)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "One", stored.TrackName)
}

func TestForUserWithoutPreferences(t *testing.T) {
	store := database.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, CollectionUsers, "u1", User{}))

	controller := newTestController(store, &stubCatalog{})

	_, err := controller.ForUser(ctx, "u1")
	assert.ErrorIs(t, err, ErrNoPreferences)
}

func TestForUserUnknownUser(t *testing.T) {
	store := database.NewMemoryStore()
	controller := newTestController(store, &stubCatalog{})

	_, err := controller.ForUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestForGenrePreservesExistingRatings(t *testing.T) {
	store := database.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, CollectionTracks, "t1", Track{
		TrackID:   "t1",
		TrackName: "Stale Name",
		UserRatings: map[string]RatingEntry{
			"u1": {RatingID: "u1_20240101000000", EmotionLabel: EmotionSatisfied},
		},
	}))

	catalog := &stubCatalog{tracks: []Track{
		{TrackID: "t1", TrackName: "Fresh Name"},
	}}
	controller := newTestController(store, catalog)

	tracks, err := controller.ForGenre(ctx, "rock")
	require.NoError(t, err)
	require.Len(t, tracks, 1)

	var stored Track
	found, err := store.Get(ctx, CollectionTracks, "t1", &stored)
	require.NoError(t, err)
	require.True(t, found)

	// Catalog fields refresh; accumulated ratings survive the re-save.
	assert.Equal(t, "Fresh Name", stored.TrackName)
	require.Contains(t, stored.UserRatings, "u1")
	assert.Equal(t, "u1_20240101000000", stored.UserRatings["u1"].RatingID)
}

func TestForGenreCatalogFailure(t *testing.T) {
	store := database.NewMemoryStore()
	controller := newTestController(store, &stubCatalog{err: assert.AnError})

	_, err := controller.ForGenre(context.Background(), "rock")
	assert.Error(t, err)
}
