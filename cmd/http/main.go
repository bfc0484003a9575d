package main

import (
	"context"
	"medidata-service/internal/app/config"
	"medidata-service/internal/app/contracts"
	"medidata-service/internal/app/delivery/http/middlewares"
	"medidata-service/internal/app/delivery/http/routers"
	"medidata-service/internal/app/drivers/database"
	"medidata-service/internal/app/drivers/logger"
	"medidata-service/internal/app/drivers/mailer"
	"medidata-service/internal/app/drivers/messaging"
	"medidata-service/internal/app/drivers/storage"
	"medidata-service/internal/app/services/core/auth"
	"medidata-service/internal/app/services/core/chat"
	"medidata-service/internal/app/services/core/favorites"
	"medidata-service/internal/app/services/core/profiles"
	"medidata-service/internal/app/services/core/providers"
	"medidata-service/internal/app/services/core/requests"
	"medidata-service/internal/app/services/shared/authgateway"
	"medidata-service/internal/app/services/shared/gemini"
	"medidata-service/internal/app/services/shared/jwtmanager"
	"medidata-service/internal/app/services/shared/notifications"
	"medidata-service/internal/app/services/shared/redis"
	"medidata-service/internal/app/services/shared/registry"
	sharedStorage "medidata-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig, log)
	redisClient := database.NewRedisClient(driverConfig, log)

	bootstrap := config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         log,
		ZapLogger:      zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if internalConfig.App.NotificationsEnabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig, log)
	}
	if internalConfig.App.ObjectStorageEnabled {
		bootstrap.Minio = storage.NewMinio(driverConfig)
	}

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	bootstrapTheApp(bootstrap, workerCtx)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	stopWorkers()

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap, workerCtx context.Context) {
	// Shared clients
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	gatewayClient := authgateway.NewClient(bootstrap.InternalConfig, bootstrap.ZapLogger)
	registryClient := registry.NewNPIClient(bootstrap.InternalConfig, bootstrap.ZapLogger)
	geminiClient := gemini.NewGeminiClient(bootstrap.InternalConfig, bootstrap.ZapLogger)
	tokenVerifier := jwtmanager.NewJWTManager(bootstrap.InternalConfig)

	// Repositories
	providerRepository := providers.NewProviderMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	patientRepository := profiles.NewPatientMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	requestRepository := requests.NewRequestMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	favoriteRepository := favorites.NewFavoriteMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)

	// Decision notifications ride RabbitMQ into an SMTP worker; both sides
	// are skipped when the deployment runs without a broker.
	var notificationPublisher contracts.NotificationPublisher
	if bootstrap.RabbitMQ != nil {
		publisher, err := notifications.NewAMQPPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.NotificationQueue, bootstrap.ZapLogger)
		if err != nil {
			bootstrap.Logger.Fatalf("Failed to create notification publisher: %v", err)
		}
		notificationPublisher = publisher

		smtpClient := mailer.NewSMTPClient(bootstrap.DriverConfig)
		worker, err := notifications.NewMailerWorker(bootstrap.RabbitMQ, smtpClient, bootstrap.InternalConfig.App.NotificationQueue, bootstrap.ZapLogger)
		if err != nil {
			bootstrap.Logger.Fatalf("Failed to create mailer worker: %v", err)
		}
		go worker.Run(workerCtx)
	}

	var objectStorage contracts.Storage
	if bootstrap.Minio != nil {
		objectStorage = sharedStorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)
	}

	// Auth
	authUsecase := auth.NewAuthUsecase(
		gatewayClient,
		tokenVerifier,
		redisRepository,
		providerRepository,
		patientRepository,
		bootstrap.InternalConfig.App.ResetPasswordURL,
		bootstrap.InternalConfig.App.AuthCacheTTLInSeconds,
		bootstrap.ZapLogger,
	)
	authController := auth.NewAuthController(bootstrap.ZapLogger, authUsecase)

	// Providers
	providerUsecase := providers.NewProviderUsecase(providerRepository, registryClient, bootstrap.ZapLogger)
	providerController := providers.NewProviderController(bootstrap.ZapLogger, providerUsecase)

	// Requests
	requestUsecase := requests.NewRequestUsecase(requestRepository, providerRepository, patientRepository, notificationPublisher, bootstrap.ZapLogger)
	requestController := requests.NewRequestController(bootstrap.ZapLogger, requestUsecase)

	// Favorites
	favoriteUsecase := favorites.NewFavoriteUsecase(favoriteRepository, providerRepository, registryClient, bootstrap.ZapLogger)
	favoriteController := favorites.NewFavoriteController(bootstrap.ZapLogger, favoriteUsecase)

	// Profiles
	profileUsecase := profiles.NewProfileUsecase(
		providerRepository,
		patientRepository,
		objectStorage,
		bootstrap.InternalConfig.App.PictureMaxUploadSizeInMB,
		bootstrap.ZapLogger,
	)
	profileController := profiles.NewProfileController(bootstrap.ZapLogger, profileUsecase, bootstrap.InternalConfig.App.PictureMaxUploadSizeInMB)

	// Chat
	chatUsecase := chat.NewChatUsecase(geminiClient, bootstrap.ZapLogger)
	chatController := chat.NewChatController(bootstrap.ZapLogger, chatUsecase)

	appMiddlewares := middlewares.NewMiddlewares(bootstrap.ZapLogger, authUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		authController,
		providerController,
		requestController,
		favoriteController,
		profileController,
		chatController,
	)
}
