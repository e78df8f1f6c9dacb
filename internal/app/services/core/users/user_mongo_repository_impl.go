package users

import (
	"context"
	"strings"

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

type UserMongoRepository struct {
	Collection *mongo.Collection
}

func NewUserMongoRepository(client *mongo.Client, dbName string) contracts.UserRepository {
	return &UserMongoRepository{
		Collection: client.Database(dbName).Collection(constvars.MongoCollectionUsers),
	}
}

func (r *UserMongoRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	result, err := r.Collection.InsertOne(ctx, user)
	if err != nil {
		return nil, mapInsertUserError(err)
	}
	user.ID = result.InsertedID.(primitive.ObjectID)
	return user, nil
}

// mapInsertUserError turns a unique-index violation into the same
// conflict the pre-insert lookup reports; concurrent registrations can
// both pass that lookup and only the index settles the race.
func mapInsertUserError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		if strings.Contains(err.Error(), "phone") {
			return exceptions.ErrPhoneAlreadyExist(err)
		}
		return exceptions.ErrEmailAlreadyExist(err)
	}
	return exceptions.ErrMongoDBInsertDocument(err)
}

func (r *UserMongoRepository) FindByID(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.Collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

func (r *UserMongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

func (r *UserMongoRepository) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	var user models.User
	err := r.Collection.FindOne(ctx, bson.M{"phone": phone}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

func (r *UserMongoRepository) FindAll(ctx context.Context, filter *requests.UserFilter, pagination *requests.Pagination) ([]models.User, int64, error) {
	query := bson.M{}
	if filter != nil {
		if filter.Role != "" {
			query["role"] = filter.Role
		}
		if filter.DepartmentID != "" {
			departmentID, err := primitive.ObjectIDFromHex(filter.DepartmentID)
			if err != nil {
				return nil, 0, exceptions.ErrMongoDBNotObjectID(err)
			}
			query["departmentId"] = departmentID
		}
		if filter.Search != "" {
			query["$or"] = []bson.M{
				{"name": bson.M{"$regex": filter.Search, "$options": "i"}},
				{"email": bson.M{"$regex": filter.Search, "$options": "i"}},
			}
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

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return users, total, nil
}

func (r *UserMongoRepository) FindDoctorsByDepartmentID(ctx context.Context, departmentID primitive.ObjectID) ([]models.User, error) {
	filter := bson.M{
		"role":         constvars.RoleDoctor,
		"departmentId": departmentID,
	}

	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var doctors []models.User
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return doctors, nil
}

func (r *UserMongoRepository) CountByDepartmentID(ctx context.Context, departmentID primitive.ObjectID, roles []string) (int64, error) {
	filter := bson.M{
		"departmentId": departmentID,
		"role":         bson.M{"$in": roles},
	}

	count, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

// PickLeastLoadedDoctor selects and claims in one round trip: sorting by
// appointmentCount and incrementing atomically means two concurrent
// bookings each observe their own consistent pick.
func (r *UserMongoRepository) PickLeastLoadedDoctor(ctx context.Context, departmentID primitive.ObjectID) (*models.User, error) {
	filter := bson.M{
		"role":         constvars.RoleDoctor,
		"departmentId": departmentID,
	}
	update := bson.M{"$inc": bson.M{"appointmentCount": 1}}
	opts := options.FindOneAndUpdate().
		SetSort(bson.D{{Key: "appointmentCount", Value: 1}}).
		SetReturnDocument(options.After)

	var doctor models.User
	err := r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &doctor, nil
}

func (r *UserMongoRepository) UpdateUser(ctx context.Context, user *models.User) error {
	doc, err := utils.ToBsonSetDocument(user)
	if err != nil {
		return err
	}

	filter := bson.M{"_id": user.ID}
	update := bson.M{"$set": doc}

	_, err = r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *UserMongoRepository) DeleteByID(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
