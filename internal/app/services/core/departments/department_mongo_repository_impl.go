package departments

import (
	"context"

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

type DepartmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewDepartmentMongoRepository(client *mongo.Client, dbName string) contracts.DepartmentRepository {
	return &DepartmentMongoRepository{
		Collection: client.Database(dbName).Collection(constvars.MongoCollectionDepartments),
	}
}

func (r *DepartmentMongoRepository) CreateDepartment(ctx context.Context, department *models.Department) (*models.Department, error) {
	result, err := r.Collection.InsertOne(ctx, department)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	department.ID = result.InsertedID.(primitive.ObjectID)
	return department, nil
}

func (r *DepartmentMongoRepository) FindByID(ctx context.Context, departmentID primitive.ObjectID) (*models.Department, error) {
	var department models.Department
	err := r.Collection.FindOne(ctx, bson.M{"_id": departmentID}).Decode(&department)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &department, nil
}

func (r *DepartmentMongoRepository) FindByName(ctx context.Context, name, nameAr string) (*models.Department, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"name": name},
			{"nameAr": nameAr},
		},
	}

	var department models.Department
	err := r.Collection.FindOne(ctx, filter).Decode(&department)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &department, nil
}

func (r *DepartmentMongoRepository) FindByNameExcluding(ctx context.Context, name, nameAr string, excludeID primitive.ObjectID) (*models.Department, error) {
	filter := bson.M{
		"_id": bson.M{"$ne": excludeID},
		"$or": []bson.M{
			{"name": name},
			{"nameAr": nameAr},
		},
	}

	var department models.Department
	err := r.Collection.FindOne(ctx, filter).Decode(&department)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &department, nil
}

func (r *DepartmentMongoRepository) FindAll(ctx context.Context, pagination *requests.Pagination) ([]models.Department, int64, error) {
	total, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	if pagination != nil {
		findOptions.SetSkip(int64((pagination.Page - 1) * pagination.PageSize))
		findOptions.SetLimit(int64(pagination.PageSize))
	}

	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var departments []models.Department
	if err := cursor.All(ctx, &departments); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return departments, total, nil
}

func (r *DepartmentMongoRepository) UpdateDepartment(ctx context.Context, department *models.Department) error {
	doc, err := utils.ToBsonSetDocument(department)
	if err != nil {
		return err
	}

	filter := bson.M{"_id": department.ID}
	update := bson.M{"$set": doc}

	_, err = r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *DepartmentMongoRepository) DeleteByID(ctx context.Context, departmentID primitive.ObjectID) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": departmentID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
