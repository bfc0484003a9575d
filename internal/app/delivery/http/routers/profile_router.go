package routers

import (
	"medidata-service/internal/app/delivery/http/middlewares"
	"medidata-service/internal/app/services/core/profiles"

	"github.com/go-chi/chi/v5"
)

func attachProfileRoutes(router chi.Router, middlewares *middlewares.Middlewares, profileController *profiles.ProfileController) {
	router.With(middlewares.Authentication).Get("/", profileController.GetProfile)
	router.With(middlewares.Authentication).Put("/", profileController.UpdateProfile)
	router.With(middlewares.Authentication).Post("/picture", profileController.UploadProfilePicture)
}
