package controllers

import (
	"github.com/raj2411/MusicPlayerBackend/internal/repositories"
	"github.com/raj2411/MusicPlayerBackend/internal/services"

	favoritesController "github.com/raj2411/MusicPlayerBackend/internal/controllers/favorites"
	feedbackController "github.com/raj2411/MusicPlayerBackend/internal/controllers/feedback"
	historyController "github.com/raj2411/MusicPlayerBackend/internal/controllers/history"
	recommendationController "github.com/raj2411/MusicPlayerBackend/internal/controllers/recommendation"
	userController "github.com/raj2411/MusicPlayerBackend/internal/controllers/users"
)

type Controllers struct {
	Feedback       feedbackController.FeedbackControllerInterface
	History        historyController.HistoryControllerInterface
	Favorites      favoritesController.FavoritesControllerInterface
	User           userController.UserControllerInterface
	Recommendation recommendationController.RecommendationControllerInterface
}

func New(services services.Service, repos repositories.Repository) Controllers {
	return Controllers{
		Feedback:       feedbackController.New(repos, services),
		History:        historyController.New(repos),
		Favorites:      favoritesController.New(repos),
		User:           userController.New(repos),
		Recommendation: recommendationController.New(repos, services),
	}
}
