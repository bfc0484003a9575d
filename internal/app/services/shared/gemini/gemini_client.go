package gemini

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"medidata-service/internal/app/config"
	"medidata-service/internal/app/contracts"
	"medidata-service/internal/pkg/constvars"
	"medidata-service/internal/pkg/exceptions"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type geminiClient struct {
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewGeminiClient(cfg *config.InternalConfig, logger *zap.Logger) contracts.ChatModelClient {
	return &geminiClient{
		BaseURL: strings.TrimRight(cfg.Gemini.BaseURL, "/"),
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.App.GeminiTimeoutInSeconds) * time.Second,
		},
		Log: logger,
	}
}

func (c *geminiClient) Enabled() bool {
	return c.APIKey != ""
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Role  string         `json:"role,omitempty"`
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

func (c *geminiClient) GenerateReply(ctx context.Context, prompt string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	payload := generateRequest{
		Contents: []generateContent{
			{Role: "user", Parts: []generatePart{{Text: prompt}}},
		},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.BaseURL, c.Model, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, endpoint, bytes.NewBuffer(raw))
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("geminiClient request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientChatGenerationFailed, constvars.ErrDevGeminiTransport)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		statusErr := fmt.Errorf("gemini status %d: %s", resp.StatusCode, string(bodyBytes))
		c.Log.Warn("geminiClient returned non-success status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		if c.isInvalidKey(resp.StatusCode, bodyBytes) {
			return "", exceptions.WrapWithError(statusErr, constvars.StatusUnauthorized, constvars.ErrClientChatInvalidAPIKey, constvars.ErrDevGeminiStatus)
		}
		return "", exceptions.WrapWithError(statusErr, constvars.StatusInternalServerError, constvars.ErrClientChatGenerationFailed, constvars.ErrDevGeminiStatus)
	}

	result := new(generateResponse)
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return "", exceptions.ErrDecodeResponse(err)
	}

	for _, candidate := range result.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				return part.Text, nil
			}
		}
	}
	return "", exceptions.WrapWithoutError(constvars.StatusInternalServerError, constvars.ErrClientChatEmptyResponse, constvars.ErrDevGeminiEmptyCandidate)
}

// A bad key comes back as 400 with an API_KEY_INVALID detail or as a plain
// 401/403.
func (c *geminiClient) isInvalidKey(statusCode int, body []byte) bool {
	if statusCode == constvars.StatusUnauthorized || statusCode == constvars.StatusForbidden {
		return true
	}
	return statusCode == constvars.StatusBadRequest && bytes.Contains(body, []byte("API_KEY_INVALID"))
}
