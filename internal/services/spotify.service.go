package services

import (
	"context"

	"github.com/raj2411/MusicPlayerBackend/config"
	. "github.com/raj2411/MusicPlayerBackend/internal/models"
	logger "github.com/raj2411/MusicPlayerBackend/pkg/logger"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"
)

// maxSeedGenres is the provider's cap on seed genres per request.
const maxSeedGenres = 5

// MusicCatalog is the recommendation collaborator: given seed genres it
// returns catalog tracks that have a playable audio preview.
type MusicCatalog interface {
	Recommendations(ctx context.Context, genres []string, limit int) ([]Track, error)
}

type SpotifyService struct {
	client *spotify.Client
	log    logger.Logger
}

// NewSpotifyService builds a Spotify client over the client-credentials
// flow. The oauth2 token source handles token fetch and refresh, so no
// request ever needs to exchange credentials by hand.
func NewSpotifyService(config config.Config) *SpotifyService {
	log := logger.New("SpotifyService")

	auth := &clientcredentials.Config{
		ClientID:     config.SpotifyClientID,
		ClientSecret: config.SpotifyClientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}

	httpClient := auth.Client(context.Background())

	return &SpotifyService{
		client: spotify.New(httpClient),
		log:    log,
	}
}

// Recommendations fetches provider recommendations for the seed genres and
// projects them to the catalog fields this service stores. Tracks without
// an audio preview are dropped; they are not playable in the app.
func (s *SpotifyService) Recommendations(
	ctx context.Context,
	genres []string,
	limit int,
) ([]Track, error) {
	log := s.log.TraceFromContext(ctx).Function("Recommendations")

	if len(genres) == 0 {
		return nil, log.ErrMsg("at least one seed genre is required")
	}
	if len(genres) > maxSeedGenres {
		genres = genres[:maxSeedGenres]
	}

	seeds := spotify.Seeds{Genres: genres}
	recommendations, err := s.client.GetRecommendations(ctx, seeds, nil, spotify.Limit(limit))
	if err != nil {
		return nil, log.Err("failed to fetch recommendations", err, "genres", genres)
	}

	tracks := make([]Track, 0, len(recommendations.Tracks))
	for _, item := range recommendations.Tracks {
		if item.PreviewURL == "" {
			continue
		}

		artists := make([]string, 0, len(item.Artists))
		for _, artist := range item.Artists {
			artists = append(artists, artist.Name)
		}

		var albumCover string
		if len(item.Album.Images) > 0 {
			albumCover = item.Album.Images[0].URL
		}

		tracks = append(tracks, Track{
			TrackID:         string(item.ID),
			TrackName:       item.Name,
			ArtistNames:     artists,
			AlbumName:       item.Album.Name,
			AlbumID:         string(item.Album.ID),
			AlbumCover:      albumCover,
			AudioPreviewURL: item.PreviewURL,
		})
	}

	log.Info("fetched recommendations", "genres", genres, "tracks", len(tracks))
	return tracks, nil
}
