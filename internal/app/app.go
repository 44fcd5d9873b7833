package app

import (
	"context"
	"strings"

	"github.com/raj2411/MusicPlayerBackend/config"
	"github.com/raj2411/MusicPlayerBackend/internal/controllers"
	"github.com/raj2411/MusicPlayerBackend/internal/database"
	"github.com/raj2411/MusicPlayerBackend/internal/handlers/middleware"
	"github.com/raj2411/MusicPlayerBackend/internal/jobs"
	"github.com/raj2411/MusicPlayerBackend/internal/repositories"
	"github.com/raj2411/MusicPlayerBackend/internal/services"
	logger "github.com/raj2411/MusicPlayerBackend/pkg/logger"
)

type App struct {
	Database     database.DB
	Config       config.Config
	Middleware   middleware.Middleware
	Services     services.Service
	Repositories repositories.Repository
	Controllers  controllers.Controllers
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	service := services.New(config)
	repos := repositories.New(db.Documents, db.Cache)
	controllers := controllers.New(service, repos)
	middleware := middleware.New(config)

	if config.SchedulerEnabled {
		genres := warmGenres(config)
		if len(genres) > 0 {
			warmJob := jobs.NewRecommendationWarmJob(
				controllers.Recommendation,
				genres,
				services.Daily,
			)
			if err := service.Scheduler.AddJob(warmJob); err != nil {
				return &App{}, log.Err("failed to register recommendation warm job", err)
			}
			log.Info("Registered recommendation warm job", "genres", genres)
		}

		if err := service.Scheduler.Start(context.Background()); err != nil {
			return &App{}, log.Err("failed to start scheduler", err)
		}
	}

	app := &App{
		Database:     db,
		Config:       config,
		Middleware:   middleware,
		Services:     service,
		Repositories: repos,
		Controllers:  controllers,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func warmGenres(config config.Config) []string {
	var genres []string
	for _, genre := range strings.Split(config.WarmGenres, ",") {
		if genre = strings.TrimSpace(genre); genre != "" {
			genres = append(genres, genre)
		}
	}
	return genres
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")

	if a.Database.Documents == nil {
		return log.ErrMsg("document store is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.Services.Emotion,
		a.Services.Inference,
		a.Services.Catalog,
		a.Services.Scheduler,
		a.Repositories.User,
		a.Repositories.Track,
		a.Repositories.Feedback,
		a.Controllers.Feedback,
		a.Controllers.History,
		a.Controllers.Favorites,
		a.Controllers.User,
		a.Controllers.Recommendation,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() (err error) {
	if a.Services.Scheduler != nil {
		if closeErr := a.Services.Scheduler.Stop(context.Background()); closeErr != nil {
			err = closeErr
		}
	}

	if dbErr := a.Database.Close(); dbErr != nil {
		err = dbErr
	}

	return err
}
