package contracts

import (
	"context"
	"shifa-service/internal/app/models"
)

// PushService fans persisted notifications out to the message broker so
// downstream consumers (mobile push, websocket gateways) can deliver them.
type PushService interface {
	PublishNotification(ctx context.Context, notification *models.Notification) error
}
