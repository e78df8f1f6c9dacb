package contracts

import (
	"context"
	"shifa-service/internal/app/models"
	"shifa-service/internal/pkg/dto/requests"
	"shifa-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DepartmentUsecase interface {
	CreateDepartment(ctx context.Context, session *models.Session, request *requests.CreateDepartment) (*responses.Department, error)
	GetDepartments(ctx context.Context, pagination *requests.Pagination) ([]responses.Department, int64, error)
	GetDepartmentByID(ctx context.Context, departmentID string) (*responses.Department, error)
	UpdateDepartment(ctx context.Context, session *models.Session, departmentID string, request *requests.UpdateDepartment) (*responses.Department, error)
	DeleteDepartment(ctx context.Context, session *models.Session, departmentID string) error
}

type DepartmentRepository interface {
	CreateDepartment(ctx context.Context, department *models.Department) (*models.Department, error)
	FindByID(ctx context.Context, departmentID primitive.ObjectID) (*models.Department, error)
	FindByName(ctx context.Context, name, nameAr string) (*models.Department, error)
	// FindByNameExcluding matches either name while ignoring the given
	// department, so rename-uniqueness checks never see the document
	// being renamed.
	FindByNameExcluding(ctx context.Context, name, nameAr string, excludeID primitive.ObjectID) (*models.Department, error)
	FindAll(ctx context.Context, pagination *requests.Pagination) ([]models.Department, int64, error)
	UpdateDepartment(ctx context.Context, department *models.Department) error
	DeleteByID(ctx context.Context, departmentID primitive.ObjectID) error
}
