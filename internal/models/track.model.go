package models

// Track is the catalog document for one provider track. Catalog fields are
// written by the recommendation fetch and read-only afterwards; UserRatings
// accumulates per-user rating entries keyed by user ID.
type Track struct {
	TrackID         string                 `json:"track_id"`
	TrackName       string                 `json:"track_name"`
	ArtistNames     []string               `json:"artist_names"`
	AlbumName       string                 `json:"album_name"`
	AlbumID         string                 `json:"album_id"`
	AlbumCover      string                 `json:"album_cover"`
	AudioPreviewURL string                 `json:"audio_preview_url"`
	UserRatings     map[string]RatingEntry `json:"userRatings,omitempty"`
}
