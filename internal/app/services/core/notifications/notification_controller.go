package notifications

import (
	"context"
	"net/http"
	"time"

	"shifa-service/internal/app/contracts"
	"shifa-service/internal/app/delivery/http/middlewares"
	"shifa-service/internal/pkg/constvars"
	"shifa-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type NotificationController struct {
	NotificationUsecase contracts.NotificationUsecase
	Log                 *zap.Logger
}

func NewNotificationController(notificationUsecase contracts.NotificationUsecase, logger *zap.Logger) *NotificationController {
	return &NotificationController{
		NotificationUsecase: notificationUsecase,
		Log:                 logger,
	}
}

func (ctrl *NotificationController) GetNotifications(w http.ResponseWriter, r *http.Request) {
	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session := middlewares.SessionFromContext(r.Context())
	notifications, total, err := ctrl.NotificationUsecase.GetNotifications(ctx, session, pagination)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(int(total), pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetNotificationsSuccessMessage, paginationResponse, notifications)
}

func (ctrl *NotificationController) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	notificationID := chi.URLParam(r, constvars.URLParamNotificationID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session := middlewares.SessionFromContext(r.Context())
	err := ctrl.NotificationUsecase.MarkNotificationRead(ctx, session, notificationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NotificationReadSuccessMessage, nil)
}

func (ctrl *NotificationController) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session := middlewares.SessionFromContext(r.Context())
	if err := ctrl.NotificationUsecase.MarkAllNotificationsRead(ctx, session); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NotificationsReadAllSuccess, nil)
}

func (ctrl *NotificationController) HideAllNotifications(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session := middlewares.SessionFromContext(r.Context())
	if err := ctrl.NotificationUsecase.HideAllNotifications(ctx, session); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NotificationsHideAllSuccess, nil)
}

func (ctrl *NotificationController) HideNotification(w http.ResponseWriter, r *http.Request) {
	notificationID := chi.URLParam(r, constvars.URLParamNotificationID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session := middlewares.SessionFromContext(r.Context())
	err := ctrl.NotificationUsecase.HideNotification(ctx, session, notificationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NotificationHideSuccessMessage, nil)
}
