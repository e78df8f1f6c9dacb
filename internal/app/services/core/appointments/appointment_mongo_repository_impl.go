package appointments

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

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(client *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: client.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	result, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	appointment.ID = result.InsertedID.(primitive.ObjectID)
	return appointment, nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID primitive.ObjectID) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.Collection.FindOne(ctx, bson.M{"_id": appointmentID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindAll(ctx context.Context, scope *contracts.AppointmentScope, filter *requests.AppointmentFilter, pagination *requests.Pagination) ([]models.Appointment, int64, error) {
	query := bson.M{}
	if scope != nil {
		if scope.PatientID != nil {
			query["patient"] = *scope.PatientID
		}
		if scope.DoctorID != nil {
			query["doctor"] = *scope.DoctorID
		}
	}
	if filter != nil {
		if filter.Status != "" {
			query["status"] = filter.Status
		}
		if err := applyDateFilter(query, filter); err != nil {
			return nil, 0, err
		}
	}

	total, err := r.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	if pagination != nil {
		findOptions.SetSkip(int64((pagination.Page - 1) * pagination.PageSize))
		findOptions.SetLimit(int64(pagination.PageSize))
	}

	cursor, err := r.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, total, nil
}

// applyDateFilter narrows the query by date; "on" covers the whole calendar
// day and wins over the before/after pair.
func applyDateFilter(query bson.M, filter *requests.AppointmentFilter) error {
	if filter.On != "" {
		day, err := utils.ParseDate(filter.On)
		if err != nil {
			return err
		}
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		query["date"] = bson.M{"$gte": start, "$lt": start.Add(24 * time.Hour)}
		return nil
	}

	dateRange := bson.M{}
	if filter.After != "" {
		after, err := utils.ParseDate(filter.After)
		if err != nil {
			return err
		}
		dateRange["$gte"] = after
	}
	if filter.Before != "" {
		before, err := utils.ParseDate(filter.Before)
		if err != nil {
			return err
		}
		dateRange["$lte"] = before
	}
	if len(dateRange) > 0 {
		query["date"] = dateRange
	}
	return nil
}

func (r *AppointmentMongoRepository) FindScheduledBetween(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	filter := bson.M{
		"status": constvars.AppointmentStatusScheduled,
		"date":   bson.M{"$gte": from, "$lt": to},
	}

	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (r *AppointmentMongoRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	doc, err := utils.ToBsonSetDocument(appointment)
	if err != nil {
		return err
	}

	filter := bson.M{"_id": appointment.ID}
	update := bson.M{"$set": doc}

	_, err = r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) DeleteByID(ctx context.Context, appointmentID primitive.ObjectID) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": appointmentID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
