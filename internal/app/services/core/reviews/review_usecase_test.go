package reviews

import (
	"context"
	"errors"
	"testing"
	"time"

	"shifa-service/internal/app/contracts"
	"shifa-service/internal/app/models"
	"shifa-service/internal/pkg/constvars"
	"shifa-service/internal/pkg/dto/requests"
	"shifa-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeReviewRepository struct {
	reviews map[primitive.ObjectID]*models.Review
	created *models.Review
	updated *models.Review
	deleted []primitive.ObjectID
}

func newFakeReviewRepository() *fakeReviewRepository {
	return &fakeReviewRepository{reviews: make(map[primitive.ObjectID]*models.Review)}
}

func (r *fakeReviewRepository) CreateReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	review.ID = primitive.NewObjectID()
	r.created = review
	r.reviews[review.ID] = review
	return review, nil
}

func (r *fakeReviewRepository) FindByID(ctx context.Context, reviewID primitive.ObjectID) (*models.Review, error) {
	return r.reviews[reviewID], nil
}

func (r *fakeReviewRepository) FindAll(ctx context.Context, scope *contracts.ReviewScope, pagination *requests.Pagination) ([]models.Review, int64, error) {
	result := make([]models.Review, 0, len(r.reviews))
	for _, review := range r.reviews {
		if scope.DoctorID != nil && review.DoctorID != *scope.DoctorID {
			continue
		}
		if scope.DepartmentID != nil && review.DepartmentID != *scope.DepartmentID {
			continue
		}
		result = append(result, *review)
	}
	return result, int64(len(result)), nil
}

func (r *fakeReviewRepository) FindBetween(ctx context.Context, from, to *time.Time) ([]models.Review, error) {
	return nil, nil
}

func (r *fakeReviewRepository) RatingSummaryByDepartmentID(ctx context.Context, departmentID primitive.ObjectID) (float64, int64, error) {
	return 0, 0, nil
}

func (r *fakeReviewRepository) UpdateReview(ctx context.Context, review *models.Review) error {
	r.updated = review
	r.reviews[review.ID] = review
	return nil
}

func (r *fakeReviewRepository) DeleteByID(ctx context.Context, reviewID primitive.ObjectID) error {
	r.deleted = append(r.deleted, reviewID)
	delete(r.reviews, reviewID)
	return nil
}

type fakeUserRepository struct {
	users map[primitive.ObjectID]*models.User
}

func (r *fakeUserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	return user, nil
}

func (r *fakeUserRepository) FindByID(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	return r.users[userID], nil
}

func (r *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, nil
}

func (r *fakeUserRepository) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	return nil, nil
}

func (r *fakeUserRepository) FindAll(ctx context.Context, filter *requests.UserFilter, pagination *requests.Pagination) ([]models.User, int64, error) {
	return nil, 0, nil
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

func (r *fakeUserRepository) UpdateUser(ctx context.Context, user *models.User) error { return nil }

func (r *fakeUserRepository) DeleteByID(ctx context.Context, userID primitive.ObjectID) error {
	return nil
}

type fakeDepartmentRepository struct {
	departments map[primitive.ObjectID]*models.Department
}

func (r *fakeDepartmentRepository) CreateDepartment(ctx context.Context, department *models.Department) (*models.Department, error) {
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

type fakeAppointmentRepository struct {
	appointments map[primitive.ObjectID]*models.Appointment
}

func (r *fakeAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	return appointment, nil
}

func (r *fakeAppointmentRepository) FindByID(ctx context.Context, appointmentID primitive.ObjectID) (*models.Appointment, error) {
	return r.appointments[appointmentID], nil
}

func (r *fakeAppointmentRepository) FindAll(ctx context.Context, scope *contracts.AppointmentScope, filter *requests.AppointmentFilter, pagination *requests.Pagination) ([]models.Appointment, int64, error) {
	return nil, 0, nil
}

func (r *fakeAppointmentRepository) FindScheduledBetween(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func (r *fakeAppointmentRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	return nil
}

func (r *fakeAppointmentRepository) DeleteByID(ctx context.Context, appointmentID primitive.ObjectID) error {
	return nil
}

type reviewFixture struct {
	usecase        *reviewUsecase
	reviewRepo     *fakeReviewRepository
	patientID      primitive.ObjectID
	doctorID       primitive.ObjectID
	departmentID   primitive.ObjectID
	appointmentID  primitive.ObjectID
	patientSession *models.Session
}

func newReviewFixture() *reviewFixture {
	patientID := primitive.NewObjectID()
	doctorID := primitive.NewObjectID()
	departmentID := primitive.NewObjectID()
	appointmentID := primitive.NewObjectID()

	reviewRepo := newFakeReviewRepository()
	userRepo := &fakeUserRepository{users: map[primitive.ObjectID]*models.User{
		doctorID: {ID: doctorID, Role: constvars.RoleDoctor, Name: "Dr. Huda"},
	}}
	departmentRepo := &fakeDepartmentRepository{departments: map[primitive.ObjectID]*models.Department{
		departmentID: {ID: departmentID, Name: "Cardiology"},
	}}
	appointmentRepo := &fakeAppointmentRepository{appointments: map[primitive.ObjectID]*models.Appointment{
		appointmentID: {ID: appointmentID, PatientID: patientID, DoctorID: doctorID, DepartmentID: departmentID},
	}}

	return &reviewFixture{
		usecase: &reviewUsecase{
			ReviewRepository:      reviewRepo,
			UserRepository:        userRepo,
			DepartmentRepository:  departmentRepo,
			AppointmentRepository: appointmentRepo,
			Log:                   zap.NewNop(),
		},
		reviewRepo:     reviewRepo,
		patientID:      patientID,
		doctorID:       doctorID,
		departmentID:   departmentID,
		appointmentID:  appointmentID,
		patientSession: &models.Session{UserID: patientID.Hex(), Role: constvars.RolePatient},
	}
}

func errorStatusCode(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected a CustomError, got %v", err)
	return customErr.StatusCode
}

func TestCreateReview(t *testing.T) {
	t.Run("patient reviews their own appointment", func(t *testing.T) {
		fixture := newReviewFixture()

		response, err := fixture.usecase.CreateReview(context.Background(), fixture.patientSession, &requests.CreateReview{
			DoctorID:      fixture.doctorID.Hex(),
			DepartmentID:  fixture.departmentID.Hex(),
			AppointmentID: fixture.appointmentID.Hex(),
			Rating:        4.5,
			Feedback:      "very attentive",
		})
		require.NoError(t, err)

		assert.Equal(t, 4.5, response.Rating)
		require.NotNil(t, fixture.reviewRepo.created)
		assert.Equal(t, fixture.patientID, fixture.reviewRepo.created.PatientID)
		assert.Equal(t, fixture.doctorID, fixture.reviewRepo.created.DoctorID)
	})

	t.Run("review target must be a doctor", func(t *testing.T) {
		fixture := newReviewFixture()

		_, err := fixture.usecase.CreateReview(context.Background(), fixture.patientSession, &requests.CreateReview{
			DoctorID:      fixture.patientID.Hex(),
			DepartmentID:  fixture.departmentID.Hex(),
			AppointmentID: fixture.appointmentID.Hex(),
			Rating:        3,
		})
		assert.Equal(t, constvars.StatusNotFound, errorStatusCode(t, err))
	})

	t.Run("unknown department is rejected", func(t *testing.T) {
		fixture := newReviewFixture()

		_, err := fixture.usecase.CreateReview(context.Background(), fixture.patientSession, &requests.CreateReview{
			DoctorID:      fixture.doctorID.Hex(),
			DepartmentID:  primitive.NewObjectID().Hex(),
			AppointmentID: fixture.appointmentID.Hex(),
			Rating:        3,
		})
		assert.Equal(t, constvars.StatusNotFound, errorStatusCode(t, err))
	})

	t.Run("someone else's appointment cannot be reviewed", func(t *testing.T) {
		fixture := newReviewFixture()
		otherPatient := &models.Session{UserID: primitive.NewObjectID().Hex(), Role: constvars.RolePatient}

		_, err := fixture.usecase.CreateReview(context.Background(), otherPatient, &requests.CreateReview{
			DoctorID:      fixture.doctorID.Hex(),
			DepartmentID:  fixture.departmentID.Hex(),
			AppointmentID: fixture.appointmentID.Hex(),
			Rating:        3,
		})
		assert.Equal(t, constvars.StatusForbidden, errorStatusCode(t, err))
	})
}

func TestGetReviews(t *testing.T) {
	fixture := newReviewFixture()
	otherDoctorID := primitive.NewObjectID()
	fixture.reviewRepo.reviews[primitive.NewObjectID()] = &models.Review{
		ID: primitive.NewObjectID(), DoctorID: fixture.doctorID, DepartmentID: fixture.departmentID, Rating: 5,
	}
	fixture.reviewRepo.reviews[primitive.NewObjectID()] = &models.Review{
		ID: primitive.NewObjectID(), DoctorID: otherDoctorID, DepartmentID: fixture.departmentID, Rating: 2,
	}

	t.Run("doctor filter narrows the listing", func(t *testing.T) {
		reviews, total, err := fixture.usecase.GetReviews(context.Background(), fixture.doctorID.Hex(), "", &requests.Pagination{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, reviews, 1)
		assert.Equal(t, 5.0, reviews[0].Rating)
	})

	t.Run("malformed doctor id is rejected", func(t *testing.T) {
		_, _, err := fixture.usecase.GetReviews(context.Background(), "not-an-id", "", &requests.Pagination{Page: 1, PageSize: 10})
		assert.Equal(t, constvars.StatusNotFound, errorStatusCode(t, err))
	})
}

func TestUpdateReview(t *testing.T) {
	newRating := 2.0

	t.Run("patient updates their own review", func(t *testing.T) {
		fixture := newReviewFixture()
		reviewID := primitive.NewObjectID()
		fixture.reviewRepo.reviews[reviewID] = &models.Review{ID: reviewID, PatientID: fixture.patientID, Rating: 4, Feedback: "fine"}

		response, err := fixture.usecase.UpdateReview(context.Background(), fixture.patientSession, reviewID.Hex(), &requests.UpdateReview{Rating: &newRating})
		require.NoError(t, err)

		assert.Equal(t, newRating, response.Rating)
		assert.Equal(t, "fine", response.Feedback)
		require.NotNil(t, fixture.reviewRepo.updated)
	})

	t.Run("another patient's review is off limits", func(t *testing.T) {
		fixture := newReviewFixture()
		reviewID := primitive.NewObjectID()
		fixture.reviewRepo.reviews[reviewID] = &models.Review{ID: reviewID, PatientID: primitive.NewObjectID(), Rating: 4}

		_, err := fixture.usecase.UpdateReview(context.Background(), fixture.patientSession, reviewID.Hex(), &requests.UpdateReview{Rating: &newRating})
		assert.Equal(t, constvars.StatusForbidden, errorStatusCode(t, err))
	})

	t.Run("admin can update any review", func(t *testing.T) {
		fixture := newReviewFixture()
		reviewID := primitive.NewObjectID()
		fixture.reviewRepo.reviews[reviewID] = &models.Review{ID: reviewID, PatientID: primitive.NewObjectID(), Rating: 4}
		admin := &models.Session{UserID: primitive.NewObjectID().Hex(), Role: constvars.RoleAdmin}

		_, err := fixture.usecase.UpdateReview(context.Background(), admin, reviewID.Hex(), &requests.UpdateReview{Rating: &newRating})
		assert.NoError(t, err)
	})

	t.Run("missing review yields not found", func(t *testing.T) {
		fixture := newReviewFixture()

		_, err := fixture.usecase.UpdateReview(context.Background(), fixture.patientSession, primitive.NewObjectID().Hex(), &requests.UpdateReview{Rating: &newRating})
		assert.Equal(t, constvars.StatusNotFound, errorStatusCode(t, err))
	})
}

func TestDeleteReview(t *testing.T) {
	t.Run("patient deletes their own review", func(t *testing.T) {
		fixture := newReviewFixture()
		reviewID := primitive.NewObjectID()
		fixture.reviewRepo.reviews[reviewID] = &models.Review{ID: reviewID, PatientID: fixture.patientID}

		err := fixture.usecase.DeleteReview(context.Background(), fixture.patientSession, reviewID.Hex())
		require.NoError(t, err)
		assert.Contains(t, fixture.reviewRepo.deleted, reviewID)
	})

	t.Run("another patient's review cannot be deleted", func(t *testing.T) {
		fixture := newReviewFixture()
		reviewID := primitive.NewObjectID()
		fixture.reviewRepo.reviews[reviewID] = &models.Review{ID: reviewID, PatientID: primitive.NewObjectID()}

		err := fixture.usecase.DeleteReview(context.Background(), fixture.patientSession, reviewID.Hex())
		assert.Equal(t, constvars.StatusForbidden, errorStatusCode(t, err))
		assert.Empty(t, fixture.reviewRepo.deleted)
	})
}
