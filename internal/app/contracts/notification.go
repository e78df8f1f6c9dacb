package contracts

import (
	"context"

	"shifa-service/internal/app/models"
	"shifa-service/internal/pkg/dto/requests"
	"shifa-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationUsecase interface {
	GetNotifications(ctx context.Context, session *models.Session, pagination *requests.Pagination) ([]responses.Notification, int64, error)
	MarkNotificationRead(ctx context.Context, session *models.Session, notificationID string) error
	MarkAllNotificationsRead(ctx context.Context, session *models.Session) error
	HideNotification(ctx context.Context, session *models.Session, notificationID string) error
	HideAllNotifications(ctx context.Context, session *models.Session) error
	// Notify persists and publishes a notification without surfacing errors
	// to the caller; delivery failures must never fail the triggering write.
	Notify(ctx context.Context, recipientID primitive.ObjectID, title, titleAr, message, messageAr string)
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *models.Notification) (*models.Notification, error)
	FindByID(ctx context.Context, notificationID primitive.ObjectID) (*models.Notification, error)
	FindByRecipientID(ctx context.Context, recipientID primitive.ObjectID, pagination *requests.Pagination) ([]models.Notification, int64, error)
	UpdateNotification(ctx context.Context, notification *models.Notification) error
	MarkAllReadByRecipientID(ctx context.Context, recipientID primitive.ObjectID) error
	HideAllByRecipientID(ctx context.Context, recipientID primitive.ObjectID) error
}
