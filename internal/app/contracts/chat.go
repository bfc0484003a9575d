package contracts

import (
	"context"
	"medidata-service/internal/pkg/dto/requests"
	"medidata-service/internal/pkg/dto/responses"
)

type ChatUsecase interface {
	SendChat(ctx context.Context, request *requests.Chat) (*responses.Chat, error)
}

type ChatModelClient interface {
	GenerateReply(ctx context.Context, prompt string) (string, error)
	Enabled() bool
}
