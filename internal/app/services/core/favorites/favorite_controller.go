package favorites

import (
	"context"
	"medidata-service/internal/app/contracts"
	"medidata-service/internal/app/models"
	"medidata-service/internal/pkg/constvars"
	"medidata-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FavoriteController struct {
	Log             *zap.Logger
	FavoriteUsecase contracts.FavoriteUsecase
}

func NewFavoriteController(logger *zap.Logger, favoriteUsecase contracts.FavoriteUsecase) *FavoriteController {
	return &FavoriteController{
		Log:             logger,
		FavoriteUsecase: favoriteUsecase,
	}
}

func authUserFromContext(r *http.Request) *models.AuthUser {
	user, _ := r.Context().Value(constvars.CONTEXT_USER_KEY).(*models.AuthUser)
	return user
}

func (ctrl *FavoriteController) AddFavorite(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, constvars.URLParamProviderID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.FavoriteUsecase.AddFavorite(ctx, authUserFromContext(r), providerID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AddFavoriteSuccessMessage, nil)
}

func (ctrl *FavoriteController) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, constvars.URLParamProviderID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.FavoriteUsecase.RemoveFavorite(ctx, authUserFromContext(r), providerID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RemoveFavoriteSuccessMessage, nil)
}

func (ctrl *FavoriteController) ListFavoriteIDs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.FavoriteUsecase.ListFavoriteIDs(ctx, authUserFromContext(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawResponse(w, constvars.StatusOK, response)
}

func (ctrl *FavoriteController) ListFavoriteProviders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 35*time.Second)
	defer cancel()

	response, err := ctrl.FavoriteUsecase.ListFavoriteProviders(ctx, authUserFromContext(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawResponse(w, constvars.StatusOK, response)
}
