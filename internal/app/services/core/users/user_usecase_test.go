package users

import (
	"context"
	"errors"
	"testing"

	"shifa-service/internal/app/models"
	"shifa-service/internal/pkg/constvars"
	"shifa-service/internal/pkg/dto/requests"
	"shifa-service/internal/pkg/exceptions"
	"shifa-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeUserRepository struct {
	users   map[primitive.ObjectID]*models.User
	created *models.User
	deleted []primitive.ObjectID
}

func newFakeUserRepository(users ...*models.User) *fakeUserRepository {
	repo := &fakeUserRepository{users: make(map[primitive.ObjectID]*models.User)}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (r *fakeUserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	user.ID = primitive.NewObjectID()
	r.users[user.ID] = user
	r.created = user
	return user, nil
}

func (r *fakeUserRepository) FindByID(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	return r.users[userID], nil
}

func (r *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	for _, user := range r.users {
		if user.Phone == phone {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) FindAll(ctx context.Context, filter *requests.UserFilter, pagination *requests.Pagination) ([]models.User, int64, error) {
	result := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		result = append(result, *user)
	}
	return result, int64(len(result)), nil
}

func (r *fakeUserRepository) FindDoctorsByDepartmentID(ctx context.Context, departmentID primitive.ObjectID) ([]models.User, error) {
	return nil, nil
}

func (r *fakeUserRepository) CountByDepartmentID(ctx context.Context, departmentID primitive.ObjectID, roles []string) (int64, error) {
	return 0, nil
}

func (r *fakeUserRepository) PickLeastLoadedDoctor(ctx context.Context, departmentID primitive.ObjectID) (*models.User, error) {
	return nil, nil
}

func (r *fakeUserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepository) DeleteByID(ctx context.Context, userID primitive.ObjectID) error {
	r.deleted = append(r.deleted, userID)
	delete(r.users, userID)
	return nil
}

type fakeDepartmentRepository struct {
	departments map[primitive.ObjectID]*models.Department
}

func newFakeDepartmentRepository(departments ...*models.Department) *fakeDepartmentRepository {
	repo := &fakeDepartmentRepository{departments: make(map[primitive.ObjectID]*models.Department)}
	for _, department := range departments {
		repo.departments[department.ID] = department
	}
	return repo
}

func (r *fakeDepartmentRepository) CreateDepartment(ctx context.Context, department *models.Department) (*models.Department, error) {
	department.ID = primitive.NewObjectID()
	r.departments[department.ID] = department
	return department, nil
}

func (r *fakeDepartmentRepository) FindByID(ctx context.Context, departmentID primitive.ObjectID) (*models.Department, error) {
	return r.departments[departmentID], nil
}

func (r *fakeDepartmentRepository) FindByName(ctx context.Context, name, nameAr string) (*models.Department, error) {
	return nil, nil
}

func (r *fakeDepartmentRepository) FindByNameExcluding(ctx context.Context, name, nameAr string, excludeID primitive.ObjectID) (*models.Department, error) {
	return nil, nil
}

func (r *fakeDepartmentRepository) FindAll(ctx context.Context, pagination *requests.Pagination) ([]models.Department, int64, error) {
	return nil, 0, nil
}

func (r *fakeDepartmentRepository) UpdateDepartment(ctx context.Context, department *models.Department) error {
	return nil
}

func (r *fakeDepartmentRepository) DeleteByID(ctx context.Context, departmentID primitive.ObjectID) error {
	return nil
}

func errorStatusCode(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected a CustomError, got %v", err)
	return customErr.StatusCode
}

func adminSession() *models.Session {
	return &models.Session{UserID: primitive.NewObjectID().Hex(), Role: constvars.RoleAdmin}
}

func doctorRequest(departmentID primitive.ObjectID) *requests.CreateDoctor {
	return &requests.CreateDoctor{
		Name:           "Dr. Omar",
		Email:          "omar@example.com",
		Password:       "Str0ngPass!",
		Phone:          "+966501112222",
		DepartmentID:   departmentID.Hex(),
		Specialization: "Cardiology",
		Shift: &requests.ShiftRequest{
			Days:      []string{"monday", "wednesday"},
			StartTime: "09:00",
			EndTime:   "17:00",
		},
	}
}

func TestCreateDoctor(t *testing.T) {
	department := &models.Department{ID: primitive.NewObjectID(), Name: "Cardiology"}

	t.Run("creates a doctor in the department", func(t *testing.T) {
		userRepo := newFakeUserRepository()
		usecase := &userUsecase{
			UserRepository:       userRepo,
			DepartmentRepository: newFakeDepartmentRepository(department),
			Log:                  zap.NewNop(),
		}

		response, err := usecase.CreateDoctor(context.Background(), adminSession(), doctorRequest(department.ID))
		require.NoError(t, err)

		assert.Equal(t, constvars.RoleDoctor, response.Role)
		require.NotNil(t, userRepo.created)
		assert.Equal(t, department.ID, *userRepo.created.DepartmentID)
		assert.True(t, utils.CheckPasswordHash("Str0ngPass!", userRepo.created.Password))
		require.NotNil(t, userRepo.created.Shift)
		assert.Equal(t, []string{"monday", "wednesday"}, userRepo.created.Shift.Days)
	})

	t.Run("rejects a taken email", func(t *testing.T) {
		existing := &models.User{ID: primitive.NewObjectID(), Email: "omar@example.com"}
		usecase := &userUsecase{
			UserRepository:       newFakeUserRepository(existing),
			DepartmentRepository: newFakeDepartmentRepository(department),
			Log:                  zap.NewNop(),
		}

		_, err := usecase.CreateDoctor(context.Background(), adminSession(), doctorRequest(department.ID))
		assert.Equal(t, constvars.StatusConflict, errorStatusCode(t, err))
	})

	t.Run("rejects a taken phone", func(t *testing.T) {
		existing := &models.User{ID: primitive.NewObjectID(), Email: "other@example.com", Phone: "+966501112222"}
		usecase := &userUsecase{
			UserRepository:       newFakeUserRepository(existing),
			DepartmentRepository: newFakeDepartmentRepository(department),
			Log:                  zap.NewNop(),
		}

		_, err := usecase.CreateDoctor(context.Background(), adminSession(), doctorRequest(department.ID))
		assert.Equal(t, constvars.StatusConflict, errorStatusCode(t, err))
	})

	t.Run("rejects an unknown department", func(t *testing.T) {
		usecase := &userUsecase{
			UserRepository:       newFakeUserRepository(),
			DepartmentRepository: newFakeDepartmentRepository(),
			Log:                  zap.NewNop(),
		}

		_, err := usecase.CreateDoctor(context.Background(), adminSession(), doctorRequest(department.ID))
		assert.Equal(t, constvars.StatusNotFound, errorStatusCode(t, err))
	})
}

func TestGetUserByID(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Role: constvars.RolePatient, Name: "Layla"}

	newUsecase := func() *userUsecase {
		return &userUsecase{
			UserRepository:       newFakeUserRepository(user),
			DepartmentRepository: newFakeDepartmentRepository(),
			Log:                  zap.NewNop(),
		}
	}

	t.Run("admin reads any profile", func(t *testing.T) {
		response, err := newUsecase().GetUserByID(context.Background(), adminSession(), user.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, user.ID.Hex(), response.ID)
	})

	t.Run("user reads own profile", func(t *testing.T) {
		session := &models.Session{UserID: user.ID.Hex(), Role: constvars.RolePatient}
		response, err := newUsecase().GetUserByID(context.Background(), session, user.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, user.ID.Hex(), response.ID)
	})

	t.Run("non-admin cannot read another profile", func(t *testing.T) {
		session := &models.Session{UserID: primitive.NewObjectID().Hex(), Role: constvars.RolePatient}
		_, err := newUsecase().GetUserByID(context.Background(), session, user.ID.Hex())
		assert.Equal(t, constvars.StatusForbidden, errorStatusCode(t, err))
	})
}

func TestUpdateUser(t *testing.T) {
	t.Run("role whitelist ignores fields for other roles", func(t *testing.T) {
		patient := &models.User{ID: primitive.NewObjectID(), Role: constvars.RolePatient, Name: "Layla"}
		usecase := &userUsecase{
			UserRepository:       newFakeUserRepository(patient),
			DepartmentRepository: newFakeDepartmentRepository(),
			Log:                  zap.NewNop(),
		}

		session := &models.Session{UserID: patient.ID.Hex(), Role: constvars.RolePatient}
		_, err := usecase.UpdateUser(context.Background(), session, patient.ID.Hex(), &requests.UpdateUser{
			Name:           "Layla Hassan",
			BloodType:      "A+",
			Specialization: "not a doctor field for patients",
			JobTitle:       "not a staff member",
		})
		require.NoError(t, err)

		assert.Equal(t, "Layla Hassan", patient.Name)
		assert.Equal(t, "A+", patient.BloodType)
		assert.Empty(t, patient.Specialization)
		assert.Empty(t, patient.JobTitle)
	})

	t.Run("department move is ignored for non-admins", func(t *testing.T) {
		originalDepartment := primitive.NewObjectID()
		otherDepartment := &models.Department{ID: primitive.NewObjectID()}
		doctor := &models.User{ID: primitive.NewObjectID(), Role: constvars.RoleDoctor, DepartmentID: &originalDepartment}

		usecase := &userUsecase{
			UserRepository:       newFakeUserRepository(doctor),
			DepartmentRepository: newFakeDepartmentRepository(otherDepartment),
			Log:                  zap.NewNop(),
		}

		session := &models.Session{UserID: doctor.ID.Hex(), Role: constvars.RoleDoctor}
		_, err := usecase.UpdateUser(context.Background(), session, doctor.ID.Hex(), &requests.UpdateUser{
			DepartmentID: otherDepartment.ID.Hex(),
		})
		require.NoError(t, err)
		assert.Equal(t, originalDepartment, *doctor.DepartmentID)
	})

	t.Run("admin moves a doctor between departments", func(t *testing.T) {
		originalDepartment := primitive.NewObjectID()
		otherDepartment := &models.Department{ID: primitive.NewObjectID()}
		doctor := &models.User{ID: primitive.NewObjectID(), Role: constvars.RoleDoctor, DepartmentID: &originalDepartment}

		usecase := &userUsecase{
			UserRepository:       newFakeUserRepository(doctor),
			DepartmentRepository: newFakeDepartmentRepository(otherDepartment),
			Log:                  zap.NewNop(),
		}

		_, err := usecase.UpdateUser(context.Background(), adminSession(), doctor.ID.Hex(), &requests.UpdateUser{
			DepartmentID: otherDepartment.ID.Hex(),
		})
		require.NoError(t, err)
		assert.Equal(t, otherDepartment.ID, *doctor.DepartmentID)
	})
}

func TestDeleteUser(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Role: constvars.RoleNurse}

	t.Run("deletes an existing user", func(t *testing.T) {
		userRepo := newFakeUserRepository(user)
		usecase := &userUsecase{
			UserRepository:       userRepo,
			DepartmentRepository: newFakeDepartmentRepository(),
			Log:                  zap.NewNop(),
		}

		require.NoError(t, usecase.DeleteUser(context.Background(), adminSession(), user.ID.Hex()))
		assert.Contains(t, userRepo.deleted, user.ID)
	})

	t.Run("unknown user returns 404", func(t *testing.T) {
		usecase := &userUsecase{
			UserRepository:       newFakeUserRepository(),
			DepartmentRepository: newFakeDepartmentRepository(),
			Log:                  zap.NewNop(),
		}

		err := usecase.DeleteUser(context.Background(), adminSession(), primitive.NewObjectID().Hex())
		assert.Equal(t, constvars.StatusNotFound, errorStatusCode(t, err))
	})
}
