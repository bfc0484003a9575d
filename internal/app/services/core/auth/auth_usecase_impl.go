package auth

import (
	"context"
	"errors"
	"fmt"
	"medidata-service/internal/app/contracts"
	"medidata-service/internal/app/models"
	"medidata-service/internal/app/services/shared/authgateway"
	"medidata-service/internal/pkg/constvars"
	"medidata-service/internal/pkg/dto/requests"
	"medidata-service/internal/pkg/dto/responses"
	"medidata-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type authUsecase struct {
	Gateway            contracts.AuthGatewayClient
	TokenVerifier      contracts.TokenVerifier
	RedisRepository    contracts.RedisRepository
	ProviderRepository contracts.ProviderRepository
	PatientRepository  contracts.PatientRepository
	ResetPasswordURL   string
	CacheTTL           time.Duration
	Log                *zap.Logger
}

func NewAuthUsecase(
	gateway contracts.AuthGatewayClient,
	tokenVerifier contracts.TokenVerifier,
	redisRepository contracts.RedisRepository,
	providerRepository contracts.ProviderRepository,
	patientRepository contracts.PatientRepository,
	resetPasswordURL string,
	cacheTTLInSeconds int,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		Gateway:            gateway,
		TokenVerifier:      tokenVerifier,
		RedisRepository:    redisRepository,
		ProviderRepository: providerRepository,
		PatientRepository:  patientRepository,
		ResetPasswordURL:   resetPasswordURL,
		CacheTTL:           time.Duration(cacheTTLInSeconds) * time.Second,
		Log:                logger,
	}
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) (*responses.Auth, error) {
	if request.Role != constvars.RolePatient && request.Role != constvars.RoleProvider {
		return nil, exceptions.WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientInvalidRole, constvars.ErrDevRoleNotRecognized)
	}

	metadata := map[string]string{
		"first_name": request.FirstName,
		"last_name":  request.LastName,
		"full_name":  fmt.Sprintf("%s %s", request.FirstName, request.LastName),
		"role":       request.Role,
	}
	result, err := uc.Gateway.SignUp(ctx, request.Email, request.Password, metadata)
	if err != nil {
		return nil, mapGatewayError(err)
	}

	uc.createDirectoryRow(ctx, result.User.ID, request)

	accessToken := ""
	if result.Session != nil {
		accessToken = result.Session.AccessToken
	}
	return &responses.Auth{
		User: responses.AuthUserPayload{
			ID:           result.User.ID,
			Email:        result.User.Email,
			UserMetadata: result.User.UserMetadata,
		},
		AccessToken: accessToken,
		Message:     constvars.RegisterSuccessMessage,
	}, nil
}

// createDirectoryRow is best effort. The gateway account already exists, so
// a failed directory insert is logged rather than failing the registration;
// the profile fallback covers the gap until the next profile write.
func (uc *authUsecase) createDirectoryRow(ctx context.Context, userID string, request *requests.Register) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var err error
	if request.Role == constvars.RoleProvider {
		email := request.ProviderEmail
		if email == "" {
			email = request.Email
		}
		err = uc.ProviderRepository.UpsertProvider(ctx, &models.Provider{
			ProviderID: userID,
			FirstName:  request.FirstName,
			LastName:   request.LastName,
			PhoneNum:   request.PhoneNum,
			Gender:     request.Gender,
			State:      request.State,
			City:       request.City,
			Insurance:  request.Insurance,
			Location:   request.Location,
			Taxonomy:   request.Taxonomy,
			Email:      email,
		})
	} else {
		err = uc.PatientRepository.UpsertPatient(ctx, &models.Patient{
			PatientID: userID,
			FirstName: request.FirstName,
			LastName:  request.LastName,
			PhoneNum:  request.PhoneNum,
			Gender:    request.Gender,
			State:     request.State,
			City:      request.City,
			Insurance: request.Insurance,
			Email:     request.Email,
		})
	}
	if err != nil {
		uc.Log.Error("authUsecase.Register failed to create directory row",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Auth, error) {
	session, err := uc.Gateway.SignInWithPassword(ctx, request.Email, request.Password)
	if err != nil {
		return nil, mapGatewayError(err)
	}

	return &responses.Auth{
		User: responses.AuthUserPayload{
			ID:           session.User.ID,
			Email:        session.User.Email,
			UserMetadata: session.User.UserMetadata,
		},
		AccessToken: session.AccessToken,
		Message:     constvars.LoginSuccessMessage,
	}, nil
}

// ResendVerification always answers with the neutral success message so the
// endpoint cannot be used to probe which emails have accounts.
func (uc *authUsecase) ResendVerification(ctx context.Context, request *requests.Email) (*responses.AuthMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := uc.Gateway.ResendSignUpEmail(ctx, request.Email); err != nil {
		uc.Log.Warn("authUsecase.ResendVerification gateway call failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return &responses.AuthMessage{Message: constvars.ResendVerificationSuccessMessage}, nil
}

func (uc *authUsecase) ForgotPassword(ctx context.Context, request *requests.Email) (*responses.AuthMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := uc.Gateway.RecoverPassword(ctx, request.Email, uc.ResetPasswordURL); err != nil {
		uc.Log.Warn("authUsecase.ForgotPassword gateway call failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return &responses.AuthMessage{Message: constvars.ForgotPasswordSuccessMessage}, nil
}

func (uc *authUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) (*responses.AuthMessage, error) {
	if err := uc.Gateway.UpdatePassword(ctx, request.AccessToken, request.NewPassword); err != nil {
		var gatewayErr *authgateway.Error
		if errors.As(err, &gatewayErr) && gatewayErr.Kind == authgateway.KindTokenInvalid {
			return nil, exceptions.WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientResetLinkInvalid, constvars.ErrDevAuthGatewayRejected)
		}
		return nil, mapGatewayError(err)
	}
	return &responses.AuthMessage{Message: constvars.ResetPasswordSuccessMessage}, nil
}

// ResolveUser turns a bearer token into the calling account. The verified
// result is cached briefly so bursts of requests do not re-verify or re-hit
// the gateway on every call.
func (uc *authUsecase) ResolveUser(ctx context.Context, accessToken string) (*models.AuthUser, error) {
	cacheKey := fmt.Sprintf(constvars.RedisAuthUserKeyFormat, accessToken)

	if cached, err := uc.RedisRepository.Get(ctx, cacheKey); err == nil && cached != "" {
		user := new(models.AuthUser)
		if err := json.Unmarshal([]byte(cached), user); err == nil && user.ID != "" {
			return user, nil
		}
	}

	user, err := uc.TokenVerifier.Verify(accessToken)
	if err != nil {
		// Local verification needs the shared signing secret; without it
		// (or on disagreement) the gateway stays the source of truth.
		gatewayUser, gatewayErr := uc.Gateway.GetUser(ctx, accessToken)
		if gatewayErr != nil {
			return nil, exceptions.ErrTokenInvalid(gatewayErr)
		}
		user = &models.AuthUser{
			ID:           gatewayUser.ID,
			Email:        gatewayUser.Email,
			UserMetadata: gatewayUser.UserMetadata,
		}
	}

	if err := uc.RedisRepository.Set(ctx, cacheKey, user, uc.CacheTTL); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("authUsecase.ResolveUser cache write failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return user, nil
}

// mapGatewayError translates a typed gateway failure into the client-facing
// vocabulary of this API.
func mapGatewayError(err error) *exceptions.CustomError {
	var gatewayErr *authgateway.Error
	if !errors.As(err, &gatewayErr) {
		return exceptions.WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGatewayRejected)
	}

	switch gatewayErr.Kind {
	case authgateway.KindAlreadyExists:
		return exceptions.WrapWithError(err, constvars.StatusConflict, constvars.ErrClientEmailAlreadyExists, constvars.ErrDevAuthGatewayRejected)
	case authgateway.KindInvalidCredentials:
		return exceptions.WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientInvalidCredentials, constvars.ErrDevAuthGatewayRejected)
	case authgateway.KindEmailUnverified:
		return exceptions.WrapWithError(err, constvars.StatusForbidden, constvars.ErrClientEmailNotVerified, constvars.ErrDevAuthGatewayRejected)
	case authgateway.KindWeakPassword:
		return exceptions.WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientWeakPassword, constvars.ErrDevAuthGatewayRejected)
	case authgateway.KindNotFound:
		return exceptions.WrapWithError(err, constvars.StatusNotFound, constvars.ErrClientAccountNotFound, constvars.ErrDevAuthGatewayRejected)
	case authgateway.KindTokenInvalid:
		return exceptions.WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalid)
	case authgateway.KindUnavailable:
		return exceptions.WrapWithError(err, constvars.StatusServiceUnavailable, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGatewayUnavailable)
	default:
		return exceptions.WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevAuthGatewayRejected)
	}
}
