package chat

import (
	"context"
	"medidata-service/internal/app/contracts"
	"medidata-service/internal/pkg/constvars"
	"medidata-service/internal/pkg/dto/requests"
	"medidata-service/internal/pkg/exceptions"
	"medidata-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ChatController struct {
	Log         *zap.Logger
	ChatUsecase contracts.ChatUsecase
}

func NewChatController(logger *zap.Logger, chatUsecase contracts.ChatUsecase) *ChatController {
	return &ChatController{
		Log:         logger,
		ChatUsecase: chatUsecase,
	}
}

func (ctrl *ChatController) SendChat(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Chat)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 35*time.Second)
	defer cancel()

	response, err := ctrl.ChatUsecase.SendChat(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawResponse(w, constvars.StatusOK, response)
}
