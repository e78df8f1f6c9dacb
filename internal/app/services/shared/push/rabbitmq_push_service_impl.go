package push

import (
	"context"

	"shifa-service/internal/app/contracts"
	"shifa-service/internal/app/models"
	"shifa-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type rabbitMQPushService struct {
	connection *amqp091.Connection
	queueName  string
}

func NewRabbitMQPushService(connection *amqp091.Connection, queueName string) contracts.PushService {
	return &rabbitMQPushService{
		connection: connection,
		queueName:  queueName,
	}
}

func (s *rabbitMQPushService) PublishNotification(ctx context.Context, notification *models.Notification) error {
	channel, err := s.connection.Channel()
	if err != nil {
		return exceptions.ErrPushPublish(err)
	}
	defer channel.Close()

	_, err = channel.QueueDeclare(s.queueName, true, false, false, false, nil)
	if err != nil {
		return exceptions.ErrPushPublish(err)
	}

	body, err := json.Marshal(notification)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = channel.PublishWithContext(ctx, "", s.queueName, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Body:         body,
	})
	if err != nil {
		return exceptions.ErrPushPublish(err)
	}
	return nil
}
