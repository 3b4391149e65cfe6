package http

import (
	"github.com/antonkuklin/saas-backend/internal/logger"
	"github.com/antonkuklin/saas-backend/internal/service"
	"github.com/antonkuklin/saas-backend/internal/utils"
)

type Handler struct {
	services *service.Services

	uuid   *utils.UUIDGenerator
	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		uuid:     utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
