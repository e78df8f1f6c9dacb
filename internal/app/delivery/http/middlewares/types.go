package middlewares

import (
	"shifa-service/internal/app/config"
	"shifa-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(log *zap.Logger, sessionService contracts.SessionService, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            log,
		SessionService: sessionService,
		InternalConfig: internalConfig,
	}
}
