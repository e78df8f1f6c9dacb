package reviews

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

type ReviewMongoRepository struct {
	Collection *mongo.Collection
}

func NewReviewMongoRepository(client *mongo.Client, dbName string) contracts.ReviewRepository {
	return &ReviewMongoRepository{
		Collection: client.Database(dbName).Collection(constvars.MongoCollectionReviews),
	}
}

func (r *ReviewMongoRepository) CreateReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	result, err := r.Collection.InsertOne(ctx, review)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	review.ID = result.InsertedID.(primitive.ObjectID)
	return review, nil
}

func (r *ReviewMongoRepository) FindByID(ctx context.Context, reviewID primitive.ObjectID) (*models.Review, error) {
	var review models.Review
	err := r.Collection.FindOne(ctx, bson.M{"_id": reviewID}).Decode(&review)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &review, nil
}

func (r *ReviewMongoRepository) FindAll(ctx context.Context, scope *contracts.ReviewScope, pagination *requests.Pagination) ([]models.Review, int64, error) {
	query := bson.M{}
	if scope != nil {
		if scope.DoctorID != nil {
			query["doctor"] = *scope.DoctorID
		}
		if scope.DepartmentID != nil {
			query["department"] = *scope.DepartmentID
		}
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

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return reviews, total, nil
}

func (r *ReviewMongoRepository) FindBetween(ctx context.Context, from, to *time.Time) ([]models.Review, error) {
	query := bson.M{}
	dateRange := bson.M{}
	if from != nil {
		dateRange["$gte"] = *from
	}
	if to != nil {
		dateRange["$lte"] = *to
	}
	if len(dateRange) > 0 {
		query["createdAt"] = dateRange
	}

	cursor, err := r.Collection.Find(ctx, query)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return reviews, nil
}

func (r *ReviewMongoRepository) RatingSummaryByDepartmentID(ctx context.Context, departmentID primitive.ObjectID) (float64, int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"department": departmentID}}},
		{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"average": bson.M{"$avg": "$rating"},
			"count":   bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Average float64 `bson:"average"`
		Count   int64   `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	if len(results) == 0 {
		return 0, 0, nil
	}
	return results[0].Average, results[0].Count, nil
}

func (r *ReviewMongoRepository) UpdateReview(ctx context.Context, review *models.Review) error {
	doc, err := utils.ToBsonSetDocument(review)
	if err != nil {
		return err
	}

	filter := bson.M{"_id": review.ID}
	update := bson.M{"$set": doc}

	_, err = r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ReviewMongoRepository) DeleteByID(ctx context.Context, reviewID primitive.ObjectID) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": reviewID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
