package feedbackController

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/raj2411/MusicPlayerBackend/internal/database"
	. "github.com/raj2411/MusicPlayerBackend/internal/models"
	"github.com/raj2411/MusicPlayerBackend/internal/repositories"
	"github.com/raj2411/MusicPlayerBackend/internal/services"
	logger "github.com/raj2411/MusicPlayerBackend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC)

type stubInference struct {
	outcome services.InferenceOutcome
	err     error
}

func (s *stubInference) Infer(ctx context.Context, imageRef string) (services.InferenceOutcome, error) {
	return s.outcome, s.err
}

func happyInference() *stubInference {
	return &stubInference{
		outcome: services.InferenceOutcome{
			Status: services.InferenceReady,
			Emotions: []EmotionScore{
				{Label: "happy", Score: 0.9},
				{Label: "neutral", Score: 0.1},
			},
		},
	}
}

func newTestController(store database.DocumentStore, inference services.InferenceClient) *FeedbackController {
	repos := repositories.New(store, database.Cache{})
	return &FeedbackController{
		userRepo:     repos.User,
		trackRepo:    repos.Track,
		feedbackRepo: repos.Feedback,
		inference:    inference,
		emotion:      services.NewEmotionService(),
		log:          logger.New("feedbackControllerTest"),
		now:          func() time.Time { return fixedNow },
	}
}

func seedUserAndTrack(t *testing.T, store *database.MemoryStore) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, CollectionUsers, "u1", User{
		Favorites: []string{},
	}))
	require.NoError(t, store.Set(ctx, CollectionTracks, "t1", Track{
		TrackID:   "t1",
		TrackName: "Midnight City",
	}))
}

func TestSubmitRatingHappyPath(t *testing.T) {
	store := database.NewMemoryStore()
	seedUserAndTrack(t, store)
	controller := newTestController(store, happyInference())

	result, err := controller.SubmitRating(context.Background(), &SubmitRatingRequest{
		UserID:   "u1",
		TrackID:  "t1",
		Rating:   4,
		ImageURL: "https://img.example/u1.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, "u1_20240315103045", result.RatingID)
	assert.Equal(t, EmotionSatisfied, result.EmotionLabel)
	assert.True(t, result.UserUpdated)
	assert.True(t, result.TrackUpdated)

	ctx := context.Background()

	var user User
	found, err := store.Get(ctx, CollectionUsers, "u1", &user)
	require.NoError(t, err)
	require.True(t, found)
	require.Contains(t, user.Ratings, "t1")
	assert.Equal(t, result.RatingID, user.Ratings["t1"].RatingID)
	assert.Equal(t, EmotionSatisfied, user.Ratings["t1"].EmotionLabel)
	assert.EqualValues(t, 4, user.Ratings["t1"].Rating)

	var track Track
	found, err = store.Get(ctx, CollectionTracks, "t1", &track)
	require.NoError(t, err)
	require.True(t, found)
	require.Contains(t, track.UserRatings, "u1")
	assert.Equal(t, EmotionSatisfied, track.UserRatings["u1"].EmotionLabel)
	assert.Equal(t, "Midnight City", track.TrackName)

	var event FeedbackEvent
	found, err = store.Get(ctx, CollectionFeedback, result.RatingID, &event)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "https://img.example/u1.jpg", event.ImageURL)
	assert.Equal(t, EmotionSatisfied, event.EmotionLabel)
}

func TestSubmitRatingValidation(t *testing.T) {
	store := database.NewMemoryStore()
	controller := newTestController(store, happyInference())

	_, err := controller.SubmitRating(context.Background(), &SubmitRatingRequest{
		UserID: "u1",
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = controller.SubmitRating(context.Background(), &SubmitRatingRequest{
		TrackID: "t1",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSubmitRatingModelLoadingWritesNothing(t *testing.T) {
	store := database.NewMemoryStore()
	seedUserAndTrack(t, store)
	controller := newTestController(store, &stubInference{
		outcome: services.InferenceOutcome{
			Status:           services.InferenceLoading,
			EstimatedSeconds: 15,
		},
	})

	_, err := controller.SubmitRating(context.Background(), &SubmitRatingRequest{
		UserID:   "u1",
		TrackID:  "t1",
		Rating:   3,
		ImageURL: "img",
	})

	var loadingErr *LoadingError
	require.ErrorAs(t, err, &loadingErr)
	assert.InDelta(t, 15.0, loadingErr.EstimatedSeconds, 1e-9)

	ctx := context.Background()

	var user User
	_, err = store.Get(ctx, CollectionUsers, "u1", &user)
	require.NoError(t, err)
	assert.Empty(t, user.Ratings)

	var track Track
	_, err = store.Get(ctx, CollectionTracks, "t1", &track)
	require.NoError(t, err)
	assert.Empty(t, track.UserRatings)
}

func TestSubmitRatingInferenceRejectedWritesNothing(t *testing.T) {
	store := database.NewMemoryStore()
	seedUserAndTrack(t, store)
	controller := newTestController(store, &stubInference{
		outcome: services.InferenceOutcome{
			Status:     services.InferenceFailed,
			StatusCode: 429,
		},
	})

	_, err := controller.SubmitRating(context.Background(), &SubmitRatingRequest{
		UserID:   "u1",
		TrackID:  "t1",
		Rating:   3,
		ImageURL: "img",
	})

	var rejectedErr *RejectedError
	require.ErrorAs(t, err, &rejectedErr)
	assert.Equal(t, 429, rejectedErr.StatusCode)

	var user User
	_, err = store.Get(context.Background(), CollectionUsers, "u1", &user)
	require.NoError(t, err)
	assert.Empty(t, user.Ratings)
}

func TestSubmitRatingMissingUserStillWritesTrackAndEvent(t *testing.T) {
	store := database.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, CollectionTracks, "t1", Track{TrackID: "t1"}))

	controller := newTestController(store, happyInference())

	result, err := controller.SubmitRating(ctx, &SubmitRatingRequest{
		UserID:   "ghost",
		TrackID:  "t1",
		Rating:   5,
		ImageURL: "img",
	})
	require.NoError(t, err)

	assert.False(t, result.UserUpdated)
	assert.True(t, result.TrackUpdated)

	var track Track
	found, err := store.Get(ctx, CollectionTracks, "t1", &track)
	require.NoError(t, err)
	require.True(t, found)
	assert.Contains(t, track.UserRatings, "ghost")

	var event FeedbackEvent
	found, err = store.Get(ctx, CollectionFeedback, result.RatingID, &event)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestSubmitRatingMissingBothParentsStillWritesEvent(t *testing.T) {
	store := database.NewMemoryStore()
	controller := newTestController(store, happyInference())

	result, err := controller.SubmitRating(context.Background(), &SubmitRatingRequest{
		UserID:   "ghost",
		TrackID:  "phantom",
		Rating:   1,
		ImageURL: "img",
	})
	require.NoError(t, err)

	assert.False(t, result.UserUpdated)
	assert.False(t, result.TrackUpdated)

	var event FeedbackEvent
	found, err := store.Get(context.Background(), CollectionFeedback, result.RatingID, &event)
	require.NoError(t, err)
	assert.True(t, found)
}

// failingStore breaks UpdateField after the controller has already loaded
// its documents, simulating a storage fault mid-pipeline.
type failingStore struct {
	*database.MemoryStore
}

func (s *failingStore) UpdateField(ctx context.Context, collection, key, field string, value any) error {
	return errors.New("storage unavailable")
}

func TestSubmitRatingStorageFailureIsFatal(t *testing.T) {
	inner := database.NewMemoryStore()
	seedUserAndTrack(t, inner)
	store := &failingStore{MemoryStore: inner}
	controller := newTestController(store, happyInference())

	_, err := controller.SubmitRating(context.Background(), &SubmitRatingRequest{
		UserID:   "u1",
		TrackID:  "t1",
		Rating:   2,
		ImageURL: "img",
	})
	require.Error(t, err)

	// The event is written last, so a failed user write leaves no orphaned
	// audit record.
	var event FeedbackEvent
	found, err := inner.Get(context.Background(), CollectionFeedback, "u1_20240315103045", &event)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSubmitRatingConcurrentLastWriterWins(t *testing.T) {
	store := database.NewMemoryStore()
	seedUserAndTrack(t, store)
	controller := newTestController(store, happyInference())

	ratings := []any{"2", "5"}

	var wg sync.WaitGroup
	errs := make([]error, len(ratings))
	for i, rating := range ratings {
		wg.Add(1)
		go func(i int, rating any) {
			defer wg.Done()
			_, errs[i] = controller.SubmitRating(context.Background(), &SubmitRatingRequest{
				UserID:   "u1",
				TrackID:  "t1",
				Rating:   rating,
				ImageURL: "img",
			})
		}(i, rating)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	var user User
	found, err := store.Get(context.Background(), CollectionUsers, "u1", &user)
	require.NoError(t, err)
	require.True(t, found)
	require.Contains(t, user.Ratings, "t1")
	assert.Contains(t, ratings, user.Ratings["t1"].Rating)
}

func TestBuildRecords(t *testing.T) {
	request := &SubmitRatingRequest{
		UserID:   "alice",
		TrackID:  "t9",
		Rating:   5,
		ImageURL: "https://img.example/a.jpg",
	}

	ratingID, entry, event := BuildRecords(request, EmotionNotSatisfied, fixedNow)

	assert.Equal(t, "alice_20240315103045", ratingID)
	assert.Equal(t, ratingID, entry.RatingID)
	assert.Equal(t, EmotionNotSatisfied, entry.EmotionLabel)
	assert.Equal(t, "https://img.example/a.jpg", entry.ImageURL)
	assert.Equal(t, event.EmotionLabel, entry.EmotionLabel)
	assert.Equal(t, event.Rating, entry.Rating)
}
