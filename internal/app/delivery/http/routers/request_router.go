package routers

import (
	"fmt"
	"medidata-service/internal/app/delivery/http/middlewares"
	"medidata-service/internal/app/services/core/requests"
	"medidata-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachRequestRoutes(router chi.Router, middlewares *middlewares.Middlewares, requestController *requests.RequestController) {
	requestIDPath := fmt.Sprintf("/{%s}", constvars.URLParamRequestID)

	router.With(middlewares.Authentication).Post("/", requestController.CreateRequest)
	router.With(middlewares.Authentication).Get("/", requestController.ListRequests)
	router.With(middlewares.Authentication).Put(requestIDPath, requestController.UpdateRequest)
	router.With(middlewares.Authentication).Delete(requestIDPath, requestController.CancelRequest)
}
