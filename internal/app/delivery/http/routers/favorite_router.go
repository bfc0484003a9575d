package routers

import (
	"fmt"
	"medidata-service/internal/app/delivery/http/middlewares"
	"medidata-service/internal/app/services/core/favorites"
	"medidata-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachFavoriteRoutes(router chi.Router, middlewares *middlewares.Middlewares, favoriteController *favorites.FavoriteController) {
	providerIDPath := fmt.Sprintf("/{%s}", constvars.URLParamProviderID)

	router.With(middlewares.Authentication).Get("/", favoriteController.ListFavoriteIDs)
	router.With(middlewares.Authentication).Get("/providers", favoriteController.ListFavoriteProviders)
	router.With(middlewares.Authentication).Post(providerIDPath, favoriteController.AddFavorite)
	router.With(middlewares.Authentication).Delete(providerIDPath, favoriteController.RemoveFavorite)
}
