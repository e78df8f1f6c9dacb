package notifications

import (
	"context"
	"sync"
	"time"

	"shifa-service/internal/app/contracts"
	"shifa-service/internal/app/models"
	"shifa-service/internal/pkg/constvars"
	"shifa-service/internal/pkg/dto/requests"
	"shifa-service/internal/pkg/dto/responses"
	"shifa-service/internal/pkg/exceptions"
	"shifa-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type notificationUsecase struct {
	NotificationRepository contracts.NotificationRepository
	PushService            contracts.PushService
	Log                    *zap.Logger
}

var (
	notificationUsecaseInstance contracts.NotificationUsecase
	onceNotificationUsecase     sync.Once
)

func NewNotificationUsecase(
	notificationRepository contracts.NotificationRepository,
	pushService contracts.PushService,
	logger *zap.Logger,
) contracts.NotificationUsecase {
	onceNotificationUsecase.Do(func() {
		notificationUsecaseInstance = &notificationUsecase{
			NotificationRepository: notificationRepository,
			PushService:            pushService,
			Log:                    logger,
		}
	})
	return notificationUsecaseInstance
}

func (uc *notificationUsecase) GetNotifications(ctx context.Context, session *models.Session, pagination *requests.Pagination) ([]responses.Notification, int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.GetNotifications called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	recipientID, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBNotObjectID(err)
	}

	notifications, total, err := uc.NotificationRepository.FindByRecipientID(ctx, recipientID, pagination)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.Notification, 0, len(notifications))
	for i := range notifications {
		result = append(result, utils.ToNotificationResponse(&notifications[i]))
	}
	return result, total, nil
}

func (uc *notificationUsecase) MarkNotificationRead(ctx context.Context, session *models.Session, notificationID string) error {
	notification, err := uc.findOwnNotification(ctx, session, notificationID)
	if err != nil {
		return err
	}

	notification.Read = true
	notification.UpdatedAt = time.Now()
	return uc.NotificationRepository.UpdateNotification(ctx, notification)
}

func (uc *notificationUsecase) MarkAllNotificationsRead(ctx context.Context, session *models.Session) error {
	recipientID, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	return uc.NotificationRepository.MarkAllReadByRecipientID(ctx, recipientID)
}

func (uc *notificationUsecase) HideAllNotifications(ctx context.Context, session *models.Session) error {
	recipientID, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	return uc.NotificationRepository.HideAllByRecipientID(ctx, recipientID)
}

func (uc *notificationUsecase) HideNotification(ctx context.Context, session *models.Session, notificationID string) error {
	notification, err := uc.findOwnNotification(ctx, session, notificationID)
	if err != nil {
		return err
	}

	notification.Hidden = true
	notification.UpdatedAt = time.Now()
	return uc.NotificationRepository.UpdateNotification(ctx, notification)
}

// findOwnNotification treats another user's notification as not found to
// avoid leaking its existence.
func (uc *notificationUsecase) findOwnNotification(ctx context.Context, session *models.Session, notificationID string) (*models.Notification, error) {
	objectID, err := primitive.ObjectIDFromHex(notificationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	notification, err := uc.NotificationRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if notification == nil || notification.RecipientID.Hex() != session.UserID {
		return nil, exceptions.ErrNotificationNotExist(nil)
	}
	return notification, nil
}

// Notify persists and publishes without propagating failure: a lost
// notification must never fail the appointment write that triggered it.
// It runs detached from the request context so the caller's deadline does
// not cancel delivery mid-flight.
func (uc *notificationUsecase) Notify(ctx context.Context, recipientID primitive.ObjectID, title, titleAr, message, messageAr string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	now := time.Now()
	notification := &models.Notification{
		RecipientID: recipientID,
		Title:       title,
		TitleAr:     titleAr,
		Message:     message,
		MessageAr:   messageAr,
		TimeModel:   models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	go func() {
		detachedCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		created, err := uc.NotificationRepository.CreateNotification(detachedCtx, notification)
		if err != nil {
			uc.Log.Error("notificationUsecase.Notify error persisting notification",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRecipientIDKey, recipientID.Hex()),
				zap.Error(err),
			)
			return
		}

		if err := uc.PushService.PublishNotification(detachedCtx, created); err != nil {
			uc.Log.Error("notificationUsecase.Notify error publishing notification",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRecipientIDKey, recipientID.Hex()),
				zap.Error(err),
			)
		}
	}()
}
