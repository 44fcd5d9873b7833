package historyController

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/raj2411/MusicPlayerBackend/internal/database"
	. "github.com/raj2411/MusicPlayerBackend/internal/models"
	"github.com/raj2411/MusicPlayerBackend/internal/repositories"
	logger "github.com/raj2411/MusicPlayerBackend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(store database.DocumentStore, now func() time.Time) *HistoryController {
	repos := repositories.New(store, database.Cache{})
	return &HistoryController{
		userRepo:  repos.User,
		trackRepo: repos.Track,
		log:       logger.New("historyControllerTest"),
		now:       now,
	}
}

// tickingClock hands out strictly increasing second-spaced timestamps so
// eviction order is observable.
func tickingClock() func() time.Time {
	current := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func TestAppendCapsHistoryAtTwenty(t *testing.T) {
	store := database.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, CollectionUsers, "u1", User{}))

	controller := newTestController(store, tickingClock())

	for i := 1; i <= 25; i++ {
		require.NoError(t, controller.Append(ctx, "u1", fmt.Sprintf("t%d", i)))
	}

	var user User
	found, err := store.Get(ctx, CollectionUsers, "u1", &user)
	require.NoError(t, err)
	require.True(t, found)

	require.Len(t, user.History, MaxHistoryEntries)
	// Oldest five evicted, most recent listen last.
	assert.Equal(t, "t6", user.History[0].TrackID)
	assert.Equal(t, "t25", user.History[len(user.History)-1].TrackID)

	// Timestamps carry the at-rest layout and stay in append order.
	previous := ""
	for _, entry := range user.History {
		_, err := time.Parse(HistoryTimestampFormat, entry.Timestamp)
		require.NoError(t, err)
		assert.Greater(t, entry.Timestamp, previous)
		previous = entry.Timestamp
	}
}

func TestAppendUnknownUser(t *testing.T) {
	store := database.NewMemoryStore()
	controller := newTestController(store, tickingClock())

	err := controller.Append(context.Background(), "ghost", "t1")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetHistoryResolvesTracksOldestFirst(t *testing.T) {
	store := database.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, CollectionTracks, "t1", Track{TrackID: "t1", TrackName: "First"}))
	require.NoError(t, store.Set(ctx, CollectionTracks, "t2", Track{TrackID: "t2", TrackName: "Second"}))
	require.NoError(t, store.Set(ctx, CollectionUsers, "u1", User{
		History: []HistoryEntry{
			{TrackID: "t1", Timestamp: "2024-03-15 09:00:01"},
			{TrackID: "t2", Timestamp: "2024-03-15 09:00:02"},
		},
	}))

	controller := newTestController(store, tickingClock())

	tracks, err := controller.GetHistory(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, tracks, 2)
	assert.Equal(t, "First", tracks[0].TrackName)
	assert.Equal(t, "Second", tracks[1].TrackName)
}

func TestGetHistoryOmitsMissingTracks(t *testing.T) {
	store := database.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, CollectionTracks, "t2", Track{TrackID: "t2", TrackName: "Survivor"}))
	require.NoError(t, store.Set(ctx, CollectionUsers, "u1", User{
		History: []HistoryEntry{
			{TrackID: "gone", Timestamp: "2024-03-15 09:00:01"},
			{TrackID: "t2", Timestamp: "2024-03-15 09:00:02"},
		},
	}))

	controller := newTestController(store, tickingClock())

	tracks, err := controller.GetHistory(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, "t2", tracks[0].TrackID)
}

func TestGetHistoryUnknownUser(t *testing.T) {
	store := database.NewMemoryStore()
	controller := newTestController(store, tickingClock())

	_, err := controller.GetHistory(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
