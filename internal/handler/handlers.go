package handler

import (
	"github.com/mkaraca/go-task-keeper/internal/handler/http"
	"github.com/mkaraca/go-task-keeper/internal/logger"
	"github.com/mkaraca/go-task-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
}
