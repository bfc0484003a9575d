package routers

import (
	"medidata-service/internal/app/config"
	"medidata-service/internal/app/delivery/http/middlewares"
	"medidata-service/internal/app/services/core/auth"
	"medidata-service/internal/app/services/core/chat"
	"medidata-service/internal/app/services/core/favorites"
	"medidata-service/internal/app/services/core/profiles"
	"medidata-service/internal/app/services/core/providers"
	"medidata-service/internal/app/services/core/requests"
	"medidata-service/internal/pkg/constvars"
	"medidata-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	providerController *providers.ProviderController,
	requestController *requests.RequestController,
	favoriteController *favorites.FavoriteController,
	profileController *profiles.ProfileController,
	chatController *chat.ChatController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   strings.Split(internalConfig.App.FrontendOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequestsPerSecond, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthCheck)

		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, authController)
		})

		r.Route("/providers", func(r chi.Router) {
			attachProviderRoutes(r, providerController)
		})

		r.Route("/requests", func(r chi.Router) {
			attachRequestRoutes(r, middlewares, requestController)
		})

		r.Route("/favorites", func(r chi.Router) {
			attachFavoriteRoutes(r, middlewares, favoriteController)
		})

		r.Route("/profile", func(r chi.Router) {
			attachProfileRoutes(r, middlewares, profileController)
		})

		r.Post("/chat", chatController.SendChat)
	})
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	utils.BuildRawResponse(w, constvars.StatusOK, map[string]string{"status": "ok"})
}
