package authgateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"medidata-service/internal/app/config"
	"medidata-service/internal/pkg/constvars"
	"medidata-service/internal/pkg/gateway_dto"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Client talks to a GoTrue-compatible auth gateway. All account state lives
// on the gateway side; this service never stores passwords or issues its own
// sessions.
type Client struct {
	BaseURL    string
	AnonKey    string
	CanResend  bool
	CanRecover bool
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewClient(cfg *config.InternalConfig, logger *zap.Logger) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(cfg.AuthGateway.BaseURL, "/"),
		AnonKey:    cfg.AuthGateway.AnonKey,
		CanResend:  cfg.AuthGateway.CanResend,
		CanRecover: cfg.AuthGateway.CanRecover,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.App.AuthGatewayTimeoutInSeconds) * time.Second,
		},
		Log: logger,
	}
}

type gatewayErrorBody struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

func (b *gatewayErrorBody) text() string {
	for _, s := range []string{b.ErrorDescription, b.Msg, b.Message, b.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

// classify maps a gateway error response onto an ErrorKind. GoTrue reports
// most failures as 400/422 with a human message, so the message text is the
// only reliable discriminator.
func classify(statusCode int, message string) ErrorKind {
	lower := strings.ToLower(message)
	switch {
	case statusCode == constvars.StatusUnauthorized:
		return KindTokenInvalid
	case strings.Contains(lower, "already registered") || strings.Contains(lower, "already exists"):
		return KindAlreadyExists
	case strings.Contains(lower, "invalid login credentials"):
		return KindInvalidCredentials
	case strings.Contains(lower, "not confirmed"):
		return KindEmailUnverified
	case strings.Contains(lower, "password"):
		return KindWeakPassword
	case statusCode == constvars.StatusNotFound || strings.Contains(lower, "user not found"):
		return KindNotFound
	case statusCode >= constvars.StatusInternalServerError:
		return KindUnavailable
	default:
		return KindRejected
	}
}

func (c *Client) do(ctx context.Context, method, path string, payload interface{}, accessToken string, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return &Error{Kind: KindUnavailable, Message: "marshal request", Err: err}
		}
		body = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return &Error{Kind: KindUnavailable, Message: "create request", Err: err}
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAPIKey, c.AnonKey)
	if accessToken != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+accessToken)
	} else {
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+c.AnonKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("authGatewayClient request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Error(err),
		)
		return &Error{Kind: KindUnavailable, Message: "gateway unreachable", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= constvars.StatusBadRequest {
		bodyBytes, _ := io.ReadAll(resp.Body)
		var errBody gatewayErrorBody
		_ = json.Unmarshal(bodyBytes, &errBody)
		message := errBody.text()
		if message == "" {
			message = fmt.Sprintf("gateway returned status %d", resp.StatusCode)
		}
		kind := classify(resp.StatusCode, message)
		c.Log.Warn("authGatewayClient request rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String("kind", string(kind)),
		)
		return &Error{Kind: kind, StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &Error{Kind: KindUnavailable, Message: "decode response", Err: err}
		}
	}
	return nil
}

func (c *Client) SignUp(ctx context.Context, email, password string, metadata map[string]string) (*gateway_dto.SignUpResult, error) {
	payload := map[string]interface{}{
		"email":    email,
		"password": password,
		"data":     metadata,
	}

	// With autoconfirm off the gateway answers with a bare user object,
	// otherwise with a full session.
	var raw struct {
		gateway_dto.User
		AccessToken string           `json:"access_token"`
		TokenType   string           `json:"token_type"`
		ExpiresIn   int              `json:"expires_in"`
		SessionUser gateway_dto.User `json:"user"`
	}
	if err := c.do(ctx, constvars.MethodPost, "/signup", payload, "", &raw); err != nil {
		return nil, err
	}

	result := &gateway_dto.SignUpResult{}
	if raw.AccessToken != "" {
		result.User = raw.SessionUser
		result.Session = &gateway_dto.Session{
			AccessToken: raw.AccessToken,
			TokenType:   raw.TokenType,
			ExpiresIn:   raw.ExpiresIn,
			User:        raw.SessionUser,
		}
	} else {
		result.User = raw.User
	}
	return result, nil
}

func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*gateway_dto.Session, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}
	session := new(gateway_dto.Session)
	if err := c.do(ctx, constvars.MethodPost, "/token?grant_type=password", payload, "", session); err != nil {
		return nil, err
	}
	return session, nil
}

func (c *Client) ResendSignUpEmail(ctx context.Context, email string) error {
	if !c.CanResend {
		return nil
	}
	payload := map[string]string{
		"type":  "signup",
		"email": email,
	}
	return c.do(ctx, constvars.MethodPost, "/resend", payload, "", nil)
}

func (c *Client) RecoverPassword(ctx context.Context, email, redirectTo string) error {
	if !c.CanRecover {
		return nil
	}
	payload := map[string]string{"email": email}
	path := "/recover"
	if redirectTo != "" {
		path += "?redirect_to=" + url.QueryEscape(redirectTo)
	}
	return c.do(ctx, constvars.MethodPost, path, payload, "", nil)
}

func (c *Client) UpdatePassword(ctx context.Context, accessToken, newPassword string) error {
	payload := map[string]string{"password": newPassword}
	return c.do(ctx, constvars.MethodPut, "/user", payload, accessToken, nil)
}

func (c *Client) GetUser(ctx context.Context, accessToken string) (*gateway_dto.User, error) {
	user := new(gateway_dto.User)
	if err := c.do(ctx, constvars.MethodGet, "/user", nil, accessToken, user); err != nil {
		return nil, err
	}
	return user, nil
}
