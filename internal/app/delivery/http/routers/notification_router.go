package routers

import (
	"fmt"

	"shifa-service/internal/app/delivery/http/middlewares"
	"shifa-service/internal/app/services/core/notifications"
	"shifa-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, middlewares *middlewares.Middlewares, notificationController *notifications.NotificationController) {
	notificationIDPath := fmt.Sprintf("/{%s}", constvars.URLParamNotificationID)

	router.With(middlewares.Authenticate).Get("/", notificationController.GetNotifications)
	router.With(middlewares.Authenticate).Patch("/read-all", notificationController.MarkAllNotificationsRead)
	router.With(middlewares.Authenticate).Patch("/hide-all", notificationController.HideAllNotifications)
	router.With(middlewares.Authenticate).Patch(notificationIDPath+"/read", notificationController.MarkNotificationRead)
	router.With(middlewares.Authenticate).Patch(notificationIDPath+"/hide", notificationController.HideNotification)
}
