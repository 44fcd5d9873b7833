package jobs

import (
	"context"

	recommendationController "github.com/raj2411/MusicPlayerBackend/internal/controllers/recommendation"
	"github.com/raj2411/MusicPlayerBackend/internal/services"
	logger "github.com/raj2411/MusicPlayerBackend/pkg/logger"
)

// RecommendationWarmJob refreshes the stored track catalog for a configured
// set of genres so the morning's first recommendation requests hit warm
// data instead of waiting on the provider.
type RecommendationWarmJob struct {
	recommendations recommendationController.RecommendationControllerInterface
	genres          []string
	schedule        services.Schedule
	log             logger.Logger
}

func NewRecommendationWarmJob(
	recommendations recommendationController.RecommendationControllerInterface,
	genres []string,
	schedule services.Schedule,
) *RecommendationWarmJob {
	return &RecommendationWarmJob{
		recommendations: recommendations,
		genres:          genres,
		schedule:        schedule,
		log:             logger.New("recommendationWarmJob"),
	}
}

func (j *RecommendationWarmJob) Name() string {
	return "recommendation-warm"
}

func (j *RecommendationWarmJob) Schedule() services.Schedule {
	return j.schedule
}

func (j *RecommendationWarmJob) Execute(ctx context.Context) error {
	log := j.log.Function("Execute")

	var lastErr error
	for _, genre := range j.genres {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		tracks, err := j.recommendations.ForGenre(ctx, genre)
		if err != nil {
			// One failed genre should not starve the rest of the warm run.
			log.Er("failed to warm genre", err, "genre", genre)
			lastErr = err
			continue
		}

		log.Info("warmed genre", "genre", genre, "tracks", len(tracks))
	}

	return lastErr
}
