package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Client
		Redis          *redis.Client
		RabbitMQ       *amqp091.Connection
		Minio          *minio.Client
		Logger         *logrus.Logger
		ZapLogger      *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App         App
		AuthGateway AuthGateway
		Registry    Registry
		Gemini      Gemini
		JWT         JWT
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		SMTP     SMTP
		Logger   Logger
	}

	App struct {
		Env                         string
		Port                        string
		Timezone                    string
		FrontendOrigins             string
		ResetPasswordURL            string
		MaxRequestsPerSecond        int
		ShutdownTimeout             int
		RequestTimeoutInSeconds     int
		NotificationQueue           string
		PictureMaxUploadSizeInMB    int64
		AuthCacheTTLInSeconds       int
		NotificationsEnabled        bool
		ObjectStorageEnabled        bool
		RegistryRequestsPerSecond   int
		RegistryTimeoutInSeconds    int
		GeminiTimeoutInSeconds      int
		AuthGatewayTimeoutInSeconds int
	}

	// AuthGateway describes the external auth collaborator. CanResend and
	// CanRecover are deployment capability flags; a gateway without those
	// endpoints is configured off rather than probed at runtime.
	AuthGateway struct {
		BaseURL    string
		AnonKey    string
		CanResend  bool
		CanRecover bool
	}

	Registry struct {
		BaseURL string
	}

	Gemini struct {
		BaseURL string
		APIKey  string
		Model   string
	}

	JWT struct {
		Secret string
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
	Minio struct {
		Host       string
		Port       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
