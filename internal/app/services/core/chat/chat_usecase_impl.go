package chat

import (
	"context"
	"fmt"
	"medidata-service/internal/app/contracts"
	"medidata-service/internal/pkg/constvars"
	"medidata-service/internal/pkg/dto/requests"
	"medidata-service/internal/pkg/dto/responses"
	"medidata-service/internal/pkg/exceptions"
	"strings"

	"go.uber.org/zap"
)

type chatUsecase struct {
	ModelClient contracts.ChatModelClient
	Log         *zap.Logger
}

func NewChatUsecase(modelClient contracts.ChatModelClient, logger *zap.Logger) contracts.ChatUsecase {
	return &chatUsecase{
		ModelClient: modelClient,
		Log:         logger,
	}
}

func (uc *chatUsecase) SendChat(ctx context.Context, request *requests.Chat) (*responses.Chat, error) {
	if len(request.Messages) == 0 {
		return nil, exceptions.WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientChatNoMessages, constvars.ErrDevValidationFailed)
	}
	last := request.Messages[len(request.Messages)-1]
	if !strings.EqualFold(last.Role, constvars.ChatRoleUser) {
		return nil, exceptions.WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientChatLastNotUser, constvars.ErrDevValidationFailed)
	}
	if !uc.ModelClient.Enabled() {
		return nil, exceptions.WrapWithoutError(constvars.StatusServiceUnavailable, constvars.ErrClientChatNotConfigured, constvars.ErrDevGeminiTransport)
	}

	reply, err := uc.ModelClient.GenerateReply(ctx, buildPrompt(request.Messages))
	if err != nil {
		return nil, err
	}
	return &responses.Chat{Message: reply}, nil
}

// buildPrompt flattens a multi-turn conversation into a single contextual
// prompt. A single user message is forwarded as-is.
func buildPrompt(messages []requests.ChatMessage) string {
	if len(messages) == 1 {
		return messages[0].Content
	}

	var builder strings.Builder
	builder.WriteString("You are a helpful healthcare assistant. Continue this conversation:\n\n")
	for _, message := range messages[:len(messages)-1] {
		fmt.Fprintf(&builder, "%s: %s\n", message.Role, message.Content)
	}
	fmt.Fprintf(&builder, "\nRespond to the user's latest message: %s", messages[len(messages)-1].Content)
	return builder.String()
}
