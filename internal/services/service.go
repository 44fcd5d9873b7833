package services

import (
	"github.com/raj2411/MusicPlayerBackend/config"
)

type Service struct {
	Emotion   *EmotionService
	Inference InferenceClient
	Catalog   MusicCatalog
	Scheduler *SchedulerService
}

func New(config config.Config) Service {
	return Service{
		Emotion:   NewEmotionService(),
		Inference: NewInferenceService(config),
		Catalog:   NewSpotifyService(config),
		Scheduler: NewSchedulerService(),
	}
}
