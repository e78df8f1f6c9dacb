package config

import (
	"shifa-service/internal/pkg/utils"

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
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "shifa"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "shifa-images"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                               utils.GetEnvString("APP_ENV", "development"),
			Port:                              utils.GetEnvString("APP_PORT", ":8080"),
			Version:                           utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                           utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                          utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:                    utils.GetEnvString("APP_ENDPOINT_PREFIX", "/v1"),
			MaxRequests:                       utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:                   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:         utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 10),
			RequestBodyLimitInMegabyte:        utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			RabbitMQNotificationQueue:         utils.GetEnvString("APP_RABBITMQ_NOTIFICATION_QUEUE", "notifications"),
			DepartmentImageMaxUploadSizeInMB:  utils.GetEnvInt("APP_DEPARTMENT_IMAGE_UPLOAD_MAX_SIZE_IN_MB", 2),
			DepartmentImageURLExpiryInHours:   utils.GetEnvInt("APP_DEPARTMENT_IMAGE_URL_EXPIRY_IN_HOURS", 24),
			AppointmentReminderCronExpression: utils.GetEnvString("APP_APPOINTMENT_REMINDER_CRON", "0 8 * * *"),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		OpenAI: OpenAI{
			BaseUrl:           utils.GetEnvString("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			APIKey:            utils.GetEnvString("OPENAI_API_KEY", ""),
			Model:             utils.GetEnvString("OPENAI_MODEL", "gpt-4o-mini"),
			TimeoutInSeconds:  utils.GetEnvInt("OPENAI_TIMEOUT_IN_SECONDS", 30),
			RequestsPerMinute: utils.GetEnvInt("OPENAI_REQUESTS_PER_MINUTE", 20),
		},
	}
}
