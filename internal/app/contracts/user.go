package contracts

import (
	"context"
	"shifa-service/internal/app/models"
	"shifa-service/internal/pkg/dto/requests"
	"shifa-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserUsecase interface {
	CreateDoctor(ctx context.Context, session *models.Session, request *requests.CreateDoctor) (*responses.User, error)
	CreateNurse(ctx context.Context, session *models.Session, request *requests.CreateNurse) (*responses.User, error)
	CreateStaff(ctx context.Context, session *models.Session, request *requests.CreateStaff) (*responses.User, error)
	GetUsers(ctx context.Context, session *models.Session, filter *requests.UserFilter, pagination *requests.Pagination) ([]responses.User, int64, error)
	GetUserByID(ctx context.Context, session *models.Session, userID string) (*responses.User, error)
	UpdateUser(ctx context.Context, session *models.Session, userID string, request *requests.UpdateUser) (*responses.User, error)
	DeleteUser(ctx context.Context, session *models.Session, userID string) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	FindByID(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByPhone(ctx context.Context, phone string) (*models.User, error)
	FindAll(ctx context.Context, filter *requests.UserFilter, pagination *requests.Pagination) ([]models.User, int64, error)
	FindDoctorsByDepartmentID(ctx context.Context, departmentID primitive.ObjectID) ([]models.User, error)
	CountByDepartmentID(ctx context.Context, departmentID primitive.ObjectID, roles []string) (int64, error)
	// PickLeastLoadedDoctor atomically selects the doctor with the lowest
	// appointmentCount in the department and increments it in the same
	// operation, so concurrent bookings never double-assign the same slot.
	PickLeastLoadedDoctor(ctx context.Context, departmentID primitive.ObjectID) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteByID(ctx context.Context, userID primitive.ObjectID) error
}
