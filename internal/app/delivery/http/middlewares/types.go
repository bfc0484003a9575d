package middlewares

import (
	"medidata-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log         *zap.Logger
	AuthUsecase contracts.AuthUsecase
}

func NewMiddlewares(logger *zap.Logger, authUsecase contracts.AuthUsecase) *Middlewares {
	return &Middlewares{
		Log:         logger,
		AuthUsecase: authUsecase,
	}
}
