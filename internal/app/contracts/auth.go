package contracts

import (
	"context"
	"medidata-service/internal/app/models"
	"medidata-service/internal/pkg/dto/requests"
	"medidata-service/internal/pkg/dto/responses"
	"medidata-service/internal/pkg/gateway_dto"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.Register) (*responses.Auth, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Auth, error)
	ResendVerification(ctx context.Context, request *requests.Email) (*responses.AuthMessage, error)
	ForgotPassword(ctx context.Context, request *requests.Email) (*responses.AuthMessage, error)
	ResetPassword(ctx context.Context, request *requests.ResetPassword) (*responses.AuthMessage, error)
	ResolveUser(ctx context.Context, accessToken string) (*models.AuthUser, error)
}

type AuthGatewayClient interface {
	SignUp(ctx context.Context, email, password string, metadata map[string]string) (*gateway_dto.SignUpResult, error)
	SignInWithPassword(ctx context.Context, email, password string) (*gateway_dto.Session, error)
	ResendSignUpEmail(ctx context.Context, email string) error
	RecoverPassword(ctx context.Context, email, redirectTo string) error
	UpdatePassword(ctx context.Context, accessToken, newPassword string) error
	GetUser(ctx context.Context, accessToken string) (*gateway_dto.User, error)
}

type TokenVerifier interface {
	Verify(accessToken string) (*models.AuthUser, error)
}
