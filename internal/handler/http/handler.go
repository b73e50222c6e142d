package http

import (
	"github.com/MKhiriev/go-rx-api/internal/logger"
	"github.com/MKhiriev/go-rx-api/internal/store"
	"github.com/MKhiriev/go-rx-api/internal/utils"
	"github.com/MKhiriev/go-rx-api/models"
)

type Handler struct {
	users store.UserRepository
	info  models.AppBuildInfo
	token string

	requestIDs *utils.UUIDGenerator
	logger     *logger.Logger
}

// NewHandler creates the fixture API handler. A non-empty token makes every
// route require "Authorization: Bearer <token>".
func NewHandler(users store.UserRepository, info models.AppBuildInfo, token string, logger *logger.Logger) *Handler {
	logger.Info().Bool("auth", token != "").Msg("http handler created")
	return &Handler{
		users:      users,
		info:       info,
		token:      token,
		requestIDs: utils.NewUUIDGenerator(),
		logger:     logger,
	}
}
