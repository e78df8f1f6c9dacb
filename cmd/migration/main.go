package main

import (
	"context"
	"log"
	"time"

	"shifa-service/internal/app/config"
	"shifa-service/internal/app/drivers/database"
	"shifa-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Creates the indexes the API relies on. Idempotent, run before first deploy
// and after any index change.
func main() {
	driverConfig := config.NewDriverConfig()
	client := database.NewMongoDB(driverConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer client.Disconnect(ctx)

	db := client.Database(driverConfig.MongoDB.DbName)

	specs := map[string][]mongo.IndexModel{
		constvars.MongoCollectionUsers: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "phone", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			// Serves the least-loaded doctor pick.
			{Keys: bson.D{{Key: "role", Value: 1}, {Key: "departmentId", Value: 1}, {Key: "appointmentCount", Value: 1}}},
		},
		constvars.MongoCollectionDepartments: {
			{
				Keys:    bson.D{{Key: "name", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "nameAr", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		constvars.MongoCollectionAppointments: {
			{Keys: bson.D{{Key: "patient", Value: 1}, {Key: "date", Value: 1}}},
			{Keys: bson.D{{Key: "doctor", Value: 1}, {Key: "date", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "date", Value: 1}}},
		},
		constvars.MongoCollectionNotifications: {
			{Keys: bson.D{{Key: "recipient", Value: 1}, {Key: "hidden", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		constvars.MongoCollectionReviews: {
			{Keys: bson.D{{Key: "doctor", Value: 1}}},
			{Keys: bson.D{{Key: "department", Value: 1}}},
			{Keys: bson.D{{Key: "createdAt", Value: 1}}},
		},
		constvars.MongoCollectionReportCaches: {
			{
				Keys:    bson.D{{Key: "type", Value: 1}, {Key: "from", Value: 1}, {Key: "to", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
	}

	for collection, models := range specs {
		names, err := db.Collection(collection).Indexes().CreateMany(ctx, models)
		if err != nil {
			log.Fatalf("Error creating indexes on %s: %v", collection, err)
		}
		log.Printf("Created %d indexes on %s", len(names), collection)
	}

	log.Println("All indexes created")
}
