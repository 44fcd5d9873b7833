package models

import (
	"strings"
)

// HistoryEntry is one listen event in a user's bounded activity log.
// Timestamp is a fixed-format wall-clock string, not a sequence number.
type HistoryEntry struct {
	TrackID   string `json:"trackId"`
	Timestamp string `json:"timestamp"`
}

// HistoryTimestampFormat is the at-rest layout of HistoryEntry.Timestamp.
const HistoryTimestampFormat = "2006-01-02 15:04:05"

// MaxHistoryEntries bounds the per-user history log; appends beyond the cap
// evict the oldest entries.
const MaxHistoryEntries = 20

// User is the per-user document. Created by the signup flow outside this
// service; this service only mutates favorites, ratings, and history.
type User struct {
	Favorites   []string               `json:"favorites"`
	Ratings     map[string]RatingEntry `json:"ratings"`
	History     []HistoryEntry         `json:"history"`
	Preferences string                 `json:"preferences"`
}

// PreferenceList splits the comma-separated preferences field into trimmed
// genre names. Empty segments are dropped.
func (u *User) PreferenceList() []string {
	if u.Preferences == "" {
		return nil
	}

	parts := strings.Split(u.Preferences, ",")
	genres := make([]string, 0, len(parts))
	for _, part := range parts {
		if genre := strings.TrimSpace(part); genre != "" {
			genres = append(genres, genre)
		}
	}
	return genres
}

// HasFavorite reports whether trackID is in the user's favorites.
func (u *User) HasFavorite(trackID string) bool {
	for _, id := range u.Favorites {
		if id == trackID {
			return true
		}
	}
	return false
}
