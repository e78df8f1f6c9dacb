package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
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
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
)

type (
	InternalConfig struct {
		App    App
		JWT    JWT
		OpenAI OpenAI
	}

	App struct {
		Env                               string
		Port                              string
		Version                           string
		Address                           string
		Timezone                          string
		EndpointPrefix                    string
		MaxRequests                       int
		ShutdownTimeout                   int
		MaxTimeRequestsPerSeconds         int
		RequestBodyLimitInMegabyte        int
		RabbitMQNotificationQueue         string
		DepartmentImageMaxUploadSizeInMB  int
		DepartmentImageURLExpiryInHours   int
		AppointmentReminderCronExpression string
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	OpenAI struct {
		BaseUrl           string
		APIKey            string
		Model             string
		TimeoutInSeconds  int
		RequestsPerMinute int
	}
)
