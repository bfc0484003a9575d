package auth

import (
	"context"
	"errors"
	"medidata-service/internal/app/models"
	"medidata-service/internal/app/services/shared/authgateway"
	"medidata-service/internal/pkg/constvars"
	"medidata-service/internal/pkg/dto/requests"
	"medidata-service/internal/pkg/exceptions"
	"medidata-service/internal/pkg/gateway_dto"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubGateway struct {
	signUpResult *gateway_dto.SignUpResult
	signUpErr    error
	session      *gateway_dto.Session
	signInErr    error
	user         *gateway_dto.User
	getUserErr   error
	updateErr    error

	resendCalled  bool
	recoverCalled bool
	recoverTarget string
}

func (s *stubGateway) SignUp(ctx context.Context, email, password string, metadata map[string]string) (*gateway_dto.SignUpResult, error) {
	return s.signUpResult, s.signUpErr
}

func (s *stubGateway) SignInWithPassword(ctx context.Context, email, password string) (*gateway_dto.Session, error) {
	return s.session, s.signInErr
}

func (s *stubGateway) ResendSignUpEmail(ctx context.Context, email string) error {
	s.resendCalled = true
	return nil
}

func (s *stubGateway) RecoverPassword(ctx context.Context, email, redirectTo string) error {
	s.recoverCalled = true
	s.recoverTarget = redirectTo
	return nil
}

func (s *stubGateway) UpdatePassword(ctx context.Context, accessToken, newPassword string) error {
	return s.updateErr
}

func (s *stubGateway) GetUser(ctx context.Context, accessToken string) (*gateway_dto.User, error) {
	return s.user, s.getUserErr
}

type stubVerifier struct {
	user *models.AuthUser
	err  error
}

func (s *stubVerifier) Verify(accessToken string) (*models.AuthUser, error) {
	return s.user, s.err
}

type memoryRedis struct {
	values map[string]string
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{values: map[string]string{}}
}

func (m *memoryRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = string(raw)
	return nil
}

func (m *memoryRedis) Get(ctx context.Context, key string) (string, error) {
	return m.values[key], nil
}

func (m *memoryRedis) Delete(ctx context.Context, key string) error {
	delete(m.values, key)
	return nil
}

type stubProviderRepository struct {
	upserted *models.Provider
}

func (s *stubProviderRepository) FindProviders(ctx context.Context, request *requests.SearchProviders) ([]models.Provider, error) {
	return nil, nil
}

func (s *stubProviderRepository) FindByProviderID(ctx context.Context, providerID string) (*models.Provider, error) {
	return nil, nil
}

func (s *stubProviderRepository) FindByProviderIDs(ctx context.Context, providerIDs []string) ([]models.Provider, error) {
	return nil, nil
}

func (s *stubProviderRepository) UpsertProvider(ctx context.Context, provider *models.Provider) error {
	s.upserted = provider
	return nil
}

type stubPatientRepository struct {
	upserted *models.Patient
}

func (s *stubPatientRepository) FindByPatientID(ctx context.Context, patientID string) (*models.Patient, error) {
	return nil, nil
}

func (s *stubPatientRepository) FindByPatientIDs(ctx context.Context, patientIDs []string) ([]models.Patient, error) {
	return nil, nil
}

func (s *stubPatientRepository) UpsertPatient(ctx context.Context, patient *models.Patient) error {
	s.upserted = patient
	return nil
}

func newTestUsecase(gateway *stubGateway, verifier *stubVerifier) (*authUsecase, *stubProviderRepository, *stubPatientRepository) {
	providers := &stubProviderRepository{}
	patients := &stubPatientRepository{}
	uc := NewAuthUsecase(
		gateway,
		verifier,
		newMemoryRedis(),
		providers,
		patients,
		"https://app.example.com/reset-password",
		60,
		zap.NewNop(),
	).(*authUsecase)
	return uc, providers, patients
}

func registerRequest(role string) *requests.Register {
	return &requests.Register{
		Email:     "new@example.com",
		Password:  "secret123",
		FirstName: "Dana",
		LastName:  "Smith",
		Role:      role,
	}
}

func TestRegister(t *testing.T) {
	t.Run("provider signup creates a directory row", func(t *testing.T) {
		gateway := &stubGateway{signUpResult: &gateway_dto.SignUpResult{
			User: gateway_dto.User{ID: "user-1", Email: "new@example.com"},
		}}
		uc, providers, patients := newTestUsecase(gateway, &stubVerifier{})

		request := registerRequest(constvars.RoleProvider)
		request.ProviderEmail = "practice@example.com"
		response, err := uc.Register(context.Background(), request)
		require.NoError(t, err)

		assert.Equal(t, "user-1", response.User.ID)
		assert.Empty(t, response.AccessToken, "no session until the email is confirmed")
		assert.Equal(t, constvars.RegisterSuccessMessage, response.Message)

		require.NotNil(t, providers.upserted)
		assert.Equal(t, "user-1", providers.upserted.ProviderID)
		assert.Equal(t, "practice@example.com", providers.upserted.Email)
		assert.Nil(t, patients.upserted)
	})

	t.Run("patient signup with autoconfirmed session", func(t *testing.T) {
		gateway := &stubGateway{signUpResult: &gateway_dto.SignUpResult{
			User:    gateway_dto.User{ID: "user-2", Email: "new@example.com"},
			Session: &gateway_dto.Session{AccessToken: "token-123", User: gateway_dto.User{ID: "user-2"}},
		}}
		uc, providers, patients := newTestUsecase(gateway, &stubVerifier{})

		response, err := uc.Register(context.Background(), registerRequest(constvars.RolePatient))
		require.NoError(t, err)

		assert.Equal(t, "token-123", response.AccessToken)
		require.NotNil(t, patients.upserted)
		assert.Equal(t, "new@example.com", patients.upserted.Email)
		assert.Nil(t, providers.upserted)
	})

	t.Run("unknown role is rejected before the gateway is called", func(t *testing.T) {
		uc, _, _ := newTestUsecase(&stubGateway{}, &stubVerifier{})

		_, err := uc.Register(context.Background(), registerRequest("admin"))

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientInvalidRole, customErr.ClientMessage)
	})

	t.Run("duplicate email maps to 409", func(t *testing.T) {
		gateway := &stubGateway{signUpErr: &authgateway.Error{Kind: authgateway.KindAlreadyExists}}
		uc, _, _ := newTestUsecase(gateway, &stubVerifier{})

		_, err := uc.Register(context.Background(), registerRequest(constvars.RolePatient))

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})
}

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		gateway := &stubGateway{session: &gateway_dto.Session{
			AccessToken: "token-123",
			User:        gateway_dto.User{ID: "user-1", Email: "user@example.com"},
		}}
		uc, _, _ := newTestUsecase(gateway, &stubVerifier{})

		response, err := uc.Login(context.Background(), &requests.Login{Email: "user@example.com", Password: "secret123"})
		require.NoError(t, err)

		assert.Equal(t, "token-123", response.AccessToken)
		assert.Equal(t, constvars.LoginSuccessMessage, response.Message)
	})

	t.Run("wrong credentials map to 401", func(t *testing.T) {
		gateway := &stubGateway{signInErr: &authgateway.Error{Kind: authgateway.KindInvalidCredentials}}
		uc, _, _ := newTestUsecase(gateway, &stubVerifier{})

		_, err := uc.Login(context.Background(), &requests.Login{Email: "user@example.com", Password: "wrong"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("unverified email maps to 403", func(t *testing.T) {
		gateway := &stubGateway{signInErr: &authgateway.Error{Kind: authgateway.KindEmailUnverified}}
		uc, _, _ := newTestUsecase(gateway, &stubVerifier{})

		_, err := uc.Login(context.Background(), &requests.Login{Email: "user@example.com", Password: "secret123"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}

func TestResendAndForgot_NeverLeakAccountExistence(t *testing.T) {
	gateway := &stubGateway{}
	uc, _, _ := newTestUsecase(gateway, &stubVerifier{})

	resend, err := uc.ResendVerification(context.Background(), &requests.Email{Email: "maybe@example.com"})
	require.NoError(t, err)
	assert.Equal(t, constvars.ResendVerificationSuccessMessage, resend.Message)
	assert.True(t, gateway.resendCalled)

	forgot, err := uc.ForgotPassword(context.Background(), &requests.Email{Email: "maybe@example.com"})
	require.NoError(t, err)
	assert.Equal(t, constvars.ForgotPasswordSuccessMessage, forgot.Message)
	assert.Equal(t, "https://app.example.com/reset-password", gateway.recoverTarget)
}

func TestResetPassword(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc, _, _ := newTestUsecase(&stubGateway{}, &stubVerifier{})

		response, err := uc.ResetPassword(context.Background(), &requests.ResetPassword{AccessToken: "recovery", NewPassword: "newsecret"})
		require.NoError(t, err)
		assert.Equal(t, constvars.ResetPasswordSuccessMessage, response.Message)
	})

	t.Run("stale recovery token maps to 401 with reset-link message", func(t *testing.T) {
		gateway := &stubGateway{updateErr: &authgateway.Error{Kind: authgateway.KindTokenInvalid}}
		uc, _, _ := newTestUsecase(gateway, &stubVerifier{})

		_, err := uc.ResetPassword(context.Background(), &requests.ResetPassword{AccessToken: "stale", NewPassword: "newsecret"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientResetLinkInvalid, customErr.ClientMessage)
	})
}

func TestResolveUser(t *testing.T) {
	t.Run("local verification", func(t *testing.T) {
		verifier := &stubVerifier{user: &models.AuthUser{ID: "user-1", Email: "user@example.com"}}
		uc, _, _ := newTestUsecase(&stubGateway{}, verifier)

		user, err := uc.ResolveUser(context.Background(), "good-token")
		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
	})

	t.Run("gateway fallback when local verification fails", func(t *testing.T) {
		gateway := &stubGateway{user: &gateway_dto.User{ID: "user-2", Email: "user@example.com"}}
		verifier := &stubVerifier{err: errors.New("no shared secret")}
		uc, _, _ := newTestUsecase(gateway, verifier)

		user, err := uc.ResolveUser(context.Background(), "opaque-token")
		require.NoError(t, err)
		assert.Equal(t, "user-2", user.ID)
	})

	t.Run("both paths failing is 401", func(t *testing.T) {
		gateway := &stubGateway{getUserErr: &authgateway.Error{Kind: authgateway.KindTokenInvalid}}
		verifier := &stubVerifier{err: errors.New("bad signature")}
		uc, _, _ := newTestUsecase(gateway, verifier)

		_, err := uc.ResolveUser(context.Background(), "bad-token")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("second resolve hits the cache", func(t *testing.T) {
		verifier := &stubVerifier{user: &models.AuthUser{ID: "user-1", Email: "user@example.com"}}
		uc, _, _ := newTestUsecase(&stubGateway{}, verifier)

		_, err := uc.ResolveUser(context.Background(), "good-token")
		require.NoError(t, err)

		// Local verification breaking now must not matter anymore.
		verifier.user = nil
		verifier.err = errors.New("verifier offline")

		user, err := uc.ResolveUser(context.Background(), "good-token")
		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
	})
}
