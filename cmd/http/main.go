package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shifa-service/internal/app/config"
	"shifa-service/internal/app/delivery/http/middlewares"
	"shifa-service/internal/app/delivery/http/routers"
	"shifa-service/internal/app/drivers/database"
	"shifa-service/internal/app/drivers/logger"
	"shifa-service/internal/app/drivers/messaging"
	"shifa-service/internal/app/drivers/storage"
	"shifa-service/internal/app/services/core/appointments"
	"shifa-service/internal/app/services/core/auth"
	"shifa-service/internal/app/services/core/departments"
	"shifa-service/internal/app/services/core/notifications"
	"shifa-service/internal/app/services/core/reminders"
	"shifa-service/internal/app/services/core/reports"
	"shifa-service/internal/app/services/core/reviews"
	"shifa-service/internal/app/services/core/session"
	"shifa-service/internal/app/services/core/users"
	"shifa-service/internal/app/services/shared/push"
	"shifa-service/internal/app/services/shared/redis"
	sharedstorage "shifa-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	accessLogger := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)

	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	bootstrapTheApp(&bootstrap, accessLogger, minioClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("server starting", zap.String("addr", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	zapLogger.Info("shutdown signal received, draining in-flight requests")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error while closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap, accessLogger *logrus.Logger, minioClient *minio.Client) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	pushService := push.NewRabbitMQPushService(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQNotificationQueue)
	minioStorage := sharedstorage.NewMinioStorage(minioClient)

	// Session
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig.JWT.ExpTimeInHour)

	// Middlewares
	mw := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)
	bootstrap.Router.Use(mw.RequestLogger(bootstrap.InternalConfig.App, accessLogger))

	// Repositories
	userRepository := users.NewUserMongoRepository(bootstrap.MongoClient, dbName)
	departmentRepository := departments.NewDepartmentMongoRepository(bootstrap.MongoClient, dbName)
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoClient, dbName)
	notificationRepository := notifications.NewNotificationMongoRepository(bootstrap.MongoClient, dbName)
	reviewRepository := reviews.NewReviewMongoRepository(bootstrap.MongoClient, dbName)
	reportCacheRepository := reports.NewReportCacheMongoRepository(bootstrap.MongoClient, dbName)

	// Notification
	notificationUsecase := notifications.NewNotificationUsecase(notificationRepository, pushService, bootstrap.Logger)
	notificationController := notifications.NewNotificationController(notificationUsecase, bootstrap.Logger)

	// Auth
	authUsecase := auth.NewAuthUsecase(userRepository, sessionService, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(authUsecase, bootstrap.Logger)

	// User
	userUsecase := users.NewUserUsecase(userRepository, departmentRepository, bootstrap.Logger)
	userController := users.NewUserController(userUsecase, bootstrap.Logger)

	// Department
	departmentUsecase := departments.NewDepartmentUsecase(
		departmentRepository,
		userRepository,
		reviewRepository,
		minioStorage,
		bootstrap.InternalConfig,
		bootstrap.DriverConfig,
		bootstrap.Logger,
	)
	departmentController := departments.NewDepartmentController(departmentUsecase, bootstrap.Logger)

	// Appointment
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		userRepository,
		departmentRepository,
		notificationUsecase,
		bootstrap.Logger,
	)
	appointmentController := appointments.NewAppointmentController(appointmentUsecase, bootstrap.Logger)

	// Review
	reviewUsecase := reviews.NewReviewUsecase(
		reviewRepository,
		userRepository,
		departmentRepository,
		appointmentRepository,
		bootstrap.Logger,
	)
	reviewController := reviews.NewReviewController(reviewUsecase, bootstrap.Logger)

	// Report
	reportGenerator := reports.NewOpenAIReportGenerator(bootstrap.InternalConfig.OpenAI, bootstrap.Logger)
	reportUsecase := reports.NewReportUsecase(
		reportCacheRepository,
		reviewRepository,
		reportGenerator,
		redisRepository,
		bootstrap.Logger,
	)
	reportController := reports.NewReportController(reportUsecase, bootstrap.Logger)

	// Reminders
	reminderScheduler := reminders.NewReminderScheduler(appointmentRepository, notificationUsecase, bootstrap.Logger)
	err := reminderScheduler.Start(bootstrap.InternalConfig.App.AppointmentReminderCronExpression)
	if err != nil {
		log.Fatalf("Failed to start reminder scheduler: %v", err)
	}
	bootstrap.ReminderStop = reminderScheduler.Stop

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		mw,
		authController,
		userController,
		departmentController,
		appointmentController,
		notificationController,
		reviewController,
		reportController,
	)
}
