package middleware

import (
	"github.com/raj2411/MusicPlayerBackend/config"
	logger "github.com/raj2411/MusicPlayerBackend/pkg/logger"
)

type Middleware struct {
	Config config.Config
	log    logger.Logger
}

func New(config config.Config) Middleware {
	return Middleware{
		Config: config,
		log:    logger.New("middleware"),
	}
}
