package config

import (
	"medidata-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "medidata"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "profile-pictures"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "localhost"),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", "no-reply@medidata.local"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                         utils.GetEnvString("APP_ENV", "development"),
			Port:                        utils.GetEnvString("APP_PORT", ":8000"),
			Timezone:                    utils.GetEnvString("APP_TIMEZONE", "America/Chicago"),
			FrontendOrigins:             utils.GetEnvString("APP_FRONTEND_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173"),
			ResetPasswordURL:            utils.GetEnvString("APP_RESET_PASSWORD_URL", "http://localhost:5173/reset-password"),
			MaxRequestsPerSecond:        utils.GetEnvInt("APP_MAX_REQUESTS_PER_SECOND", 20),
			ShutdownTimeout:             utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:     utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 40),
			NotificationQueue:           utils.GetEnvString("APP_NOTIFICATION_QUEUE", "request_decision_notifications"),
			PictureMaxUploadSizeInMB:    utils.GetEnvInt64("APP_PICTURE_MAX_UPLOAD_SIZE_IN_MB", 2),
			AuthCacheTTLInSeconds:       utils.GetEnvInt("APP_AUTH_CACHE_TTL_IN_SECONDS", 60),
			NotificationsEnabled:        utils.GetEnvBool("APP_NOTIFICATIONS_ENABLED", true),
			ObjectStorageEnabled:        utils.GetEnvBool("APP_OBJECT_STORAGE_ENABLED", true),
			RegistryRequestsPerSecond:   utils.GetEnvInt("APP_REGISTRY_REQUESTS_PER_SECOND", 5),
			RegistryTimeoutInSeconds:    utils.GetEnvInt("APP_REGISTRY_TIMEOUT_IN_SECONDS", 30),
			GeminiTimeoutInSeconds:      utils.GetEnvInt("APP_GEMINI_TIMEOUT_IN_SECONDS", 30),
			AuthGatewayTimeoutInSeconds: utils.GetEnvInt("APP_AUTH_GATEWAY_TIMEOUT_IN_SECONDS", 30),
		},
		AuthGateway: AuthGateway{
			BaseURL:    utils.GetEnvString("AUTH_GATEWAY_BASE_URL", "http://localhost:9999/auth/v1"),
			AnonKey:    utils.GetEnvString("AUTH_GATEWAY_ANON_KEY", ""),
			CanResend:  utils.GetEnvBool("AUTH_GATEWAY_CAN_RESEND", true),
			CanRecover: utils.GetEnvBool("AUTH_GATEWAY_CAN_RECOVER", true),
		},
		Registry: Registry{
			BaseURL: utils.GetEnvString("NPI_REGISTRY_BASE_URL", "https://npiregistry.cms.hhs.gov/api/"),
		},
		Gemini: Gemini{
			BaseURL: utils.GetEnvString("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
			APIKey:  utils.GetEnvString("GEMINI_API_KEY", ""),
			Model:   utils.GetEnvString("GEMINI_MODEL", "gemini-1.5-flash"),
		},
		JWT: JWT{
			Secret: utils.GetEnvString("AUTH_GATEWAY_JWT_SECRET", ""),
		},
	}
}
