package notifications

import (
	"context"
	"time"

	"shifa-service/internal/app/contracts"
	"shifa-service/internal/app/models"
	"shifa-service/internal/pkg/constvars"
	"shifa-service/internal/pkg/dto/requests"
	"shifa-service/internal/pkg/exceptions"
	"shifa-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotificationMongoRepository struct {
	Collection *mongo.Collection
}

func NewNotificationMongoRepository(client *mongo.Client, dbName string) contracts.NotificationRepository {
	return &NotificationMongoRepository{
		Collection: client.Database(dbName).Collection(constvars.MongoCollectionNotifications),
	}
}

func (r *NotificationMongoRepository) CreateNotification(ctx context.Context, notification *models.Notification) (*models.Notification, error) {
	result, err := r.Collection.InsertOne(ctx, notification)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	notification.ID = result.InsertedID.(primitive.ObjectID)
	return notification, nil
}

func (r *NotificationMongoRepository) FindByID(ctx context.Context, notificationID primitive.ObjectID) (*models.Notification, error) {
	var notification models.Notification
	err := r.Collection.FindOne(ctx, bson.M{"_id": notificationID}).Decode(&notification)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &notification, nil
}

func (r *NotificationMongoRepository) FindByRecipientID(ctx context.Context, recipientID primitive.ObjectID, pagination *requests.Pagination) ([]models.Notification, int64, error) {
	// Hidden notifications stay in the collection but never reach the list.
	query := bson.M{
		"recipient": recipientID,
		"hidden":    false,
	}

	total, err := r.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if pagination != nil {
		findOptions.SetSkip(int64((pagination.Page - 1) * pagination.PageSize))
		findOptions.SetLimit(int64(pagination.PageSize))
	}

	cursor, err := r.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return notifications, total, nil
}

func (r *NotificationMongoRepository) UpdateNotification(ctx context.Context, notification *models.Notification) error {
	doc, err := utils.ToBsonSetDocument(notification)
	if err != nil {
		return err
	}

	filter := bson.M{"_id": notification.ID}
	update := bson.M{"$set": doc}

	_, err = r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *NotificationMongoRepository) MarkAllReadByRecipientID(ctx context.Context, recipientID primitive.ObjectID) error {
	filter := bson.M{"recipient": recipientID, "read": false}
	update := bson.M{"$set": bson.M{"read": true, "updatedAt": time.Now()}}

	_, err := r.Collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *NotificationMongoRepository) HideAllByRecipientID(ctx context.Context, recipientID primitive.ObjectID) error {
	filter := bson.M{"recipient": recipientID, "hidden": false}
	update := bson.M{"$set": bson.M{"hidden": true, "updatedAt": time.Now()}}

	_, err := r.Collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
