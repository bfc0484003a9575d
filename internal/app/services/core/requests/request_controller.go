package requests

import (
	"context"
	"medidata-service/internal/app/contracts"
	"medidata-service/internal/app/models"
	"medidata-service/internal/pkg/constvars"
	"medidata-service/internal/pkg/dto/requests"
	"medidata-service/internal/pkg/dto/responses"
	"medidata-service/internal/pkg/exceptions"
	"medidata-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type RequestController struct {
	Log            *zap.Logger
	RequestUsecase contracts.RequestUsecase
}

func NewRequestController(logger *zap.Logger, requestUsecase contracts.RequestUsecase) *RequestController {
	return &RequestController{
		Log:            logger,
		RequestUsecase: requestUsecase,
	}
}

func authUserFromContext(r *http.Request) *models.AuthUser {
	user, _ := r.Context().Value(constvars.CONTEXT_USER_KEY).(*models.AuthUser)
	return user
}

func (ctrl *RequestController) CreateRequest(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RequestUsecase.CreateRequest(ctx, authUserFromContext(r), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawResponse(w, constvars.StatusOK, response)
}

func (ctrl *RequestController) ListRequests(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	items, err := ctrl.RequestUsecase.ListRequests(ctx, authUserFromContext(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawResponse(w, constvars.StatusOK, responses.RequestList{Requests: items})
}

func (ctrl *RequestController) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, constvars.URLParamRequestID)

	request := new(requests.UpdateRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RequestUsecase.UpdateRequest(ctx, authUserFromContext(r), requestID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawResponse(w, constvars.StatusOK, response)
}

func (ctrl *RequestController) CancelRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, constvars.URLParamRequestID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.RequestUsecase.CancelRequest(ctx, authUserFromContext(r), requestID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawResponse(w, constvars.StatusOK, responses.RequestMutation{Message: constvars.CancelRequestSuccessMessage})
}
