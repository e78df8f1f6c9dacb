package reports

import (
	"context"
	"time"

	"shifa-service/internal/app/contracts"
	"shifa-service/internal/app/models"
	"shifa-service/internal/pkg/constvars"
	"shifa-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReportCacheMongoRepository struct {
	Collection *mongo.Collection
}

func NewReportCacheMongoRepository(client *mongo.Client, dbName string) contracts.ReportCacheRepository {
	return &ReportCacheMongoRepository{
		Collection: client.Database(dbName).Collection(constvars.MongoCollectionReportCaches),
	}
}

func (r *ReportCacheMongoRepository) FindLatest(ctx context.Context, reportType, from, to string) (*models.ReportCache, error) {
	query := bson.M{
		"type": reportType,
		"from": from,
		"to":   to,
	}

	findOptions := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var cache models.ReportCache
	err := r.Collection.FindOne(ctx, query, findOptions).Decode(&cache)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &cache, nil
}

func (r *ReportCacheMongoRepository) SaveReport(ctx context.Context, cache *models.ReportCache) error {
	filter := bson.M{
		"type": cache.Type,
		"from": cache.From,
		"to":   cache.To,
	}
	update := bson.M{
		"$set": bson.M{
			"data":      cache.Data,
			"updatedAt": cache.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"createdAt": cache.CreatedAt,
		},
	}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ReportCacheMongoRepository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.Collection.DeleteMany(ctx, bson.M{"updatedAt": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}
