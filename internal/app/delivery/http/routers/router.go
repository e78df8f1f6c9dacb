package routers

import (
	"fmt"
	"time"

	"shifa-service/internal/app/config"
	"shifa-service/internal/app/delivery/http/middlewares"
	"shifa-service/internal/app/services/core/appointments"
	"shifa-service/internal/app/services/core/auth"
	"shifa-service/internal/app/services/core/departments"
	"shifa-service/internal/app/services/core/notifications"
	"shifa-service/internal/app/services/core/reports"
	"shifa-service/internal/app/services/core/reviews"
	"shifa-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	userController *users.UserController,
	departmentController *departments.DepartmentController,
	appointmentController *appointments.AppointmentController,
	notificationController *notifications.NotificationController,
	reviewController *reviews.ReviewController,
	reportController *reports.ReportController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging(middlewares.Log))

	endpointPrefix := internalConfig.App.EndpointPrefix
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, userController)
			})

			r.Route("/departments", func(r chi.Router) {
				attachDepartmentRoutes(r, middlewares, departmentController)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, appointmentController)
			})

			r.Route("/notifications", func(r chi.Router) {
				attachNotificationRoutes(r, middlewares, notificationController)
			})

			r.Route("/reviews", func(r chi.Router) {
				attachReviewRoutes(r, middlewares, reviewController)
			})

			r.Route("/reports", func(r chi.Router) {
				attachReportRoutes(r, middlewares, reportController)
			})
		})
	})
}
