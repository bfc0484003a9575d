package authgateway

import (
	"context"
	"io"
	"medidata-service/internal/app/config"
	"medidata-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(baseURL string) *Client {
	cfg := &config.InternalConfig{
		AuthGateway: config.AuthGateway{
			BaseURL:    baseURL,
			AnonKey:    "anon-key",
			CanResend:  true,
			CanRecover: true,
		},
		App: config.App{AuthGatewayTimeoutInSeconds: 5},
	}
	return NewClient(cfg, zap.NewNop())
}

func TestClassify(t *testing.T) {
	cases := []struct {
		statusCode int
		message    string
		want       ErrorKind
	}{
		{422, "User already registered", KindAlreadyExists},
		{400, "Invalid login credentials", KindInvalidCredentials},
		{400, "Email not confirmed", KindEmailUnverified},
		{422, "Password should be at least 6 characters", KindWeakPassword},
		{401, "invalid JWT", KindTokenInvalid},
		{404, "", KindNotFound},
		{400, "User not found", KindNotFound},
		{502, "upstream blew up", KindUnavailable},
		{400, "something odd", KindRejected},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, classify(tc.statusCode, tc.message), "status %d message %q", tc.statusCode, tc.message)
	}
}

func TestSignUp_SessionMode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/signup", r.URL.Path)
		assert.Equal(t, "anon-key", r.Header.Get(constvars.HeaderAPIKey))

		var payload map[string]interface{}
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "new@example.com", payload["email"])
		assert.Equal(t, "patient", payload["data"].(map[string]interface{})["role"])

		w.Write([]byte(`{
			"access_token": "token-123",
			"token_type": "bearer",
			"expires_in": 3600,
			"user": {"id": "user-1", "email": "new@example.com", "user_metadata": {"role": "patient"}}
		}`))
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).SignUp(context.Background(), "new@example.com", "secret123", map[string]string{"role": "patient"})
	require.NoError(t, err)

	assert.Equal(t, "user-1", result.User.ID)
	require.NotNil(t, result.Session)
	assert.Equal(t, "token-123", result.Session.AccessToken)
}

func TestSignUp_ConfirmationMode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "user-1", "email": "new@example.com", "user_metadata": {"role": "patient"}}`))
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).SignUp(context.Background(), "new@example.com", "secret123", nil)
	require.NoError(t, err)

	assert.Equal(t, "user-1", result.User.ID)
	assert.Nil(t, result.Session, "no session until the email is confirmed")
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"msg": "User already registered"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).SignUp(context.Background(), "dup@example.com", "secret123", nil)
	require.Error(t, err)

	var gatewayErr *Error
	require.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, KindAlreadyExists, gatewayErr.Kind)
}

func TestSignInWithPassword(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/token", r.URL.Path)
			assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
			w.Write([]byte(`{"access_token": "token-123", "user": {"id": "user-1", "email": "user@example.com"}}`))
		}))
		defer server.Close()

		session, err := newTestClient(server.URL).SignInWithPassword(context.Background(), "user@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "token-123", session.AccessToken)
		assert.Equal(t, "user-1", session.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error_description": "Invalid login credentials"}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).SignInWithPassword(context.Background(), "user@example.com", "wrong")

		var gatewayErr *Error
		require.ErrorAs(t, err, &gatewayErr)
		assert.Equal(t, KindInvalidCredentials, gatewayErr.Kind)
	})
}

func TestResendAndRecover_RespectCapabilityFlags(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	client.CanResend = false
	client.CanRecover = false

	require.NoError(t, client.ResendSignUpEmail(context.Background(), "user@example.com"))
	require.NoError(t, client.RecoverPassword(context.Background(), "user@example.com", "https://app/reset"))
	assert.False(t, called, "disabled capabilities never reach the gateway")
}

func TestRecoverPassword_EscapesRedirect(t *testing.T) {
	var captured string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.URL.Query().Get("redirect_to")
	}))
	defer server.Close()

	require.NoError(t, newTestClient(server.URL).RecoverPassword(context.Background(), "user@example.com", "https://app/reset?step=1"))
	assert.Equal(t, "https://app/reset?step=1", captured)
}

func TestUpdatePassword_UsesCallerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/user", r.URL.Path)
		assert.Equal(t, "Bearer recovery-token", r.Header.Get(constvars.HeaderAuthorization))
	}))
	defer server.Close()

	require.NoError(t, newTestClient(server.URL).UpdatePassword(context.Background(), "recovery-token", "newsecret123"))
}

func TestGetUser_ExpiredToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"msg": "JWT expired"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetUser(context.Background(), "stale-token")

	var gatewayErr *Error
	require.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, KindTokenInvalid, gatewayErr.Kind)
}
