package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"shifa-service/internal/app/contracts"
	"shifa-service/internal/app/models"
	"shifa-service/internal/pkg/constvars"
	"shifa-service/internal/pkg/dto/requests"
	"shifa-service/internal/pkg/dto/responses"
	"shifa-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeAppointmentRepository struct {
	appointments map[primitive.ObjectID]*models.Appointment
	lastScope    *contracts.AppointmentScope
	updated      *models.Appointment
	deleted      []primitive.ObjectID
}

func newFakeAppointmentRepository(appointments ...*models.Appointment) *fakeAppointmentRepository {
	repo := &fakeAppointmentRepository{appointments: make(map[primitive.ObjectID]*models.Appointment)}
	for _, appointment := range appointments {
		repo.appointments[appointment.ID] = appointment
	}
	return repo
}

func (r *fakeAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	appointment.ID = primitive.NewObjectID()
	r.appointments[appointment.ID] = appointment
	return appointment, nil
}

func (r *fakeAppointmentRepository) FindByID(ctx context.Context, appointmentID primitive.ObjectID) (*models.Appointment, error) {
	return r.appointments[appointmentID], nil
}

func (r *fakeAppointmentRepository) FindAll(ctx context.Context, scope *contracts.AppointmentScope, filter *requests.AppointmentFilter, pagination *requests.Pagination) ([]models.Appointment, int64, error) {
	r.lastScope = scope
	result := make([]models.Appointment, 0, len(r.appointments))
	for _, appointment := range r.appointments {
		result = append(result, *appointment)
	}
	return result, int64(len(result)), nil
}

func (r *fakeAppointmentRepository) FindScheduledBetween(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func (r *fakeAppointmentRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	r.updated = appointment
	return nil
}

func (r *fakeAppointmentRepository) DeleteByID(ctx context.Context, appointmentID primitive.ObjectID) error {
	r.deleted = append(r.deleted, appointmentID)
	delete(r.appointments, appointmentID)
	return nil
}

type fakeUserRepository struct {
	users            map[primitive.ObjectID]*models.User
	leastLoadedPicks int
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
	return nil, 0, nil
}

func (r *fakeUserRepository) FindDoctorsByDepartmentID(ctx context.Context, departmentID primitive.ObjectID) ([]models.User, error) {
	var doctors []models.User
	for _, user := range r.users {
		if user.Role == constvars.RoleDoctor && user.DepartmentID != nil && *user.DepartmentID == departmentID {
			doctors = append(doctors, *user)
		}
	}
	return doctors, nil
}

func (r *fakeUserRepository) CountByDepartmentID(ctx context.Context, departmentID primitive.ObjectID, roles []string) (int64, error) {
	var count int64
	for _, user := range r.users {
		if user.DepartmentID == nil || *user.DepartmentID != departmentID {
			continue
		}
		for _, role := range roles {
			if user.Role == role {
				count++
				break
			}
		}
	}
	return count, nil
}

func (r *fakeUserRepository) PickLeastLoadedDoctor(ctx context.Context, departmentID primitive.ObjectID) (*models.User, error) {
	r.leastLoadedPicks++
	var pick *models.User
	for _, user := range r.users {
		if user.Role != constvars.RoleDoctor || user.DepartmentID == nil || *user.DepartmentID != departmentID {
			continue
		}
		if pick == nil || user.AppointmentCount < pick.AppointmentCount {
			pick = user
		}
	}
	if pick != nil {
		pick.AppointmentCount++
	}
	return pick, nil
}

func (r *fakeUserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepository) DeleteByID(ctx context.Context, userID primitive.ObjectID) error {
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
	for _, department := range r.departments {
		if department.Name == name || department.NameAr == nameAr {
			return department, nil
		}
	}
	return nil, nil
}

func (r *fakeDepartmentRepository) FindByNameExcluding(ctx context.Context, name, nameAr string, excludeID primitive.ObjectID) (*models.Department, error) {
	for _, department := range r.departments {
		if department.ID == excludeID {
			continue
		}
		if department.Name == name || department.NameAr == nameAr {
			return department, nil
		}
	}
	return nil, nil
}

func (r *fakeDepartmentRepository) FindAll(ctx context.Context, pagination *requests.Pagination) ([]models.Department, int64, error) {
	return nil, 0, nil
}

func (r *fakeDepartmentRepository) UpdateDepartment(ctx context.Context, department *models.Department) error {
	r.departments[department.ID] = department
	return nil
}

func (r *fakeDepartmentRepository) DeleteByID(ctx context.Context, departmentID primitive.ObjectID) error {
	delete(r.departments, departmentID)
	return nil
}

type recordedNotification struct {
	RecipientID primitive.ObjectID
	Title       string
}

type fakeNotifier struct {
	sent []recordedNotification
}

func (n *fakeNotifier) GetNotifications(ctx context.Context, session *models.Session, pagination *requests.Pagination) ([]responses.Notification, int64, error) {
	return nil, 0, nil
}

func (n *fakeNotifier) MarkNotificationRead(ctx context.Context, session *models.Session, notificationID string) error {
	return nil
}

func (n *fakeNotifier) HideNotification(ctx context.Context, session *models.Session, notificationID string) error {
	return nil
}

func (n *fakeNotifier) MarkAllNotificationsRead(ctx context.Context, session *models.Session) error {
	return nil
}

func (n *fakeNotifier) HideAllNotifications(ctx context.Context, session *models.Session) error {
	return nil
}

func (n *fakeNotifier) Notify(ctx context.Context, recipientID primitive.ObjectID, title, titleAr, message, messageAr string) {
	n.sent = append(n.sent, recordedNotification{RecipientID: recipientID, Title: title})
}

func errorStatusCode(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected a CustomError, got %v", err)
	return customErr.StatusCode
}

type appointmentFixture struct {
	usecase         *appointmentUsecase
	appointmentRepo *fakeAppointmentRepository
	userRepo        *fakeUserRepository
	departmentRepo  *fakeDepartmentRepository
	notifier        *fakeNotifier
}

func newAppointmentFixture(appointmentRepo *fakeAppointmentRepository, userRepo *fakeUserRepository, departmentRepo *fakeDepartmentRepository) *appointmentFixture {
	notifier := &fakeNotifier{}
	return &appointmentFixture{
		usecase: &appointmentUsecase{
			AppointmentRepository: appointmentRepo,
			UserRepository:        userRepo,
			DepartmentRepository:  departmentRepo,
			NotificationUsecase:   notifier,
			Log:                   zap.NewNop(),
		},
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		departmentRepo:  departmentRepo,
		notifier:        notifier,
	}
}

func TestCreateAppointment(t *testing.T) {
	departmentID := primitive.NewObjectID()
	department := &models.Department{ID: departmentID, Name: "Cardiology"}

	patientID := primitive.NewObjectID()
	patient := &models.User{ID: patientID, Role: constvars.RolePatient, Name: "Layla"}
	session := &models.Session{UserID: patientID.Hex(), Role: constvars.RolePatient}

	futureDate := time.Now().Add(72 * time.Hour).Format(time.RFC3339)

	t.Run("assigns the least loaded doctor and notifies them", func(t *testing.T) {
		busyDoctor := &models.User{ID: primitive.NewObjectID(), Role: constvars.RoleDoctor, DepartmentID: &departmentID, AppointmentCount: 9}
		idleDoctor := &models.User{ID: primitive.NewObjectID(), Role: constvars.RoleDoctor, DepartmentID: &departmentID, AppointmentCount: 2}

		fixture := newAppointmentFixture(
			newFakeAppointmentRepository(),
			newFakeUserRepository(patient, busyDoctor, idleDoctor),
			newFakeDepartmentRepository(department),
		)

		response, err := fixture.usecase.CreateAppointment(context.Background(), session, &requests.CreateAppointment{
			Date:         futureDate,
			DepartmentID: departmentID.Hex(),
			Notes:        "chest pain",
		})
		require.NoError(t, err)

		assert.Equal(t, constvars.AppointmentStatusScheduled, response.Status)
		require.NotNil(t, response.Doctor)
		assert.Equal(t, idleDoctor.ID.Hex(), response.Doctor.ID)
		assert.Equal(t, 3, idleDoctor.AppointmentCount)

		require.Len(t, fixture.notifier.sent, 1)
		assert.Equal(t, idleDoctor.ID, fixture.notifier.sent[0].RecipientID)
		assert.Equal(t, constvars.NotificationTitleAppointmentBooked, fixture.notifier.sent[0].Title)
	})

	t.Run("rejects a date in the past", func(t *testing.T) {
		fixture := newAppointmentFixture(
			newFakeAppointmentRepository(),
			newFakeUserRepository(patient),
			newFakeDepartmentRepository(department),
		)

		_, err := fixture.usecase.CreateAppointment(context.Background(), session, &requests.CreateAppointment{
			Date:         time.Now().Add(-time.Hour).Format(time.RFC3339),
			DepartmentID: departmentID.Hex(),
		})
		assert.Equal(t, constvars.StatusBadRequest, errorStatusCode(t, err))
	})

	t.Run("fails when the department has no doctors", func(t *testing.T) {
		fixture := newAppointmentFixture(
			newFakeAppointmentRepository(),
			newFakeUserRepository(patient),
			newFakeDepartmentRepository(department),
		)

		_, err := fixture.usecase.CreateAppointment(context.Background(), session, &requests.CreateAppointment{
			Date:         futureDate,
			DepartmentID: departmentID.Hex(),
		})
		assert.Equal(t, constvars.StatusNotFound, errorStatusCode(t, err))
	})

	t.Run("fails when the department does not exist", func(t *testing.T) {
		fixture := newAppointmentFixture(
			newFakeAppointmentRepository(),
			newFakeUserRepository(patient),
			newFakeDepartmentRepository(),
		)

		_, err := fixture.usecase.CreateAppointment(context.Background(), session, &requests.CreateAppointment{
			Date:         futureDate,
			DepartmentID: departmentID.Hex(),
		})
		assert.Equal(t, constvars.StatusNotFound, errorStatusCode(t, err))
	})
}

func TestGetAppointmentsScope(t *testing.T) {
	doctorID := primitive.NewObjectID()
	patientID := primitive.NewObjectID()

	testCases := []struct {
		name          string
		session       *models.Session
		expectPatient *primitive.ObjectID
		expectDoctor  *primitive.ObjectID
		expectStatus  int
	}{
		{
			name:    "admin lists everything",
			session: &models.Session{Role: constvars.RoleAdmin, UserID: primitive.NewObjectID().Hex()},
		},
		{
			name:         "doctor only sees assigned appointments",
			session:      &models.Session{Role: constvars.RoleDoctor, UserID: doctorID.Hex()},
			expectDoctor: &doctorID,
		},
		{
			name:          "patient only sees own appointments",
			session:       &models.Session{Role: constvars.RolePatient, UserID: patientID.Hex()},
			expectPatient: &patientID,
		},
		{
			name:         "nurse is forbidden",
			session:      &models.Session{Role: constvars.RoleNurse, UserID: primitive.NewObjectID().Hex()},
			expectStatus: constvars.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fixture := newAppointmentFixture(
				newFakeAppointmentRepository(),
				newFakeUserRepository(),
				newFakeDepartmentRepository(),
			)

			_, _, err := fixture.usecase.GetAppointments(context.Background(), tc.session, &requests.AppointmentFilter{}, &requests.Pagination{Page: 1, PageSize: 10})
			if tc.expectStatus != 0 {
				assert.Equal(t, tc.expectStatus, errorStatusCode(t, err))
				return
			}
			require.NoError(t, err)

			require.NotNil(t, fixture.appointmentRepo.lastScope)
			assert.Equal(t, tc.expectPatient, fixture.appointmentRepo.lastScope.PatientID)
			assert.Equal(t, tc.expectDoctor, fixture.appointmentRepo.lastScope.DoctorID)
		})
	}
}

func TestUpdateAppointment(t *testing.T) {
	departmentID := primitive.NewObjectID()
	department := &models.Department{ID: departmentID, Name: "Cardiology"}

	doctorID := primitive.NewObjectID()
	doctor := &models.User{ID: doctorID, Role: constvars.RoleDoctor, DepartmentID: &departmentID}
	patientID := primitive.NewObjectID()
	patient := &models.User{ID: patientID, Role: constvars.RolePatient}

	newAppointment := func(date time.Time) *models.Appointment {
		return &models.Appointment{
			ID:           primitive.NewObjectID(),
			Date:         date,
			PatientID:    patientID,
			DoctorID:     doctorID,
			DepartmentID: departmentID,
			Status:       constvars.AppointmentStatusScheduled,
		}
	}

	t.Run("doctor updates clinical fields on an assigned appointment", func(t *testing.T) {
		appointment := newAppointment(time.Now().Add(48 * time.Hour))
		fixture := newAppointmentFixture(
			newFakeAppointmentRepository(appointment),
			newFakeUserRepository(doctor, patient),
			newFakeDepartmentRepository(department),
		)

		session := &models.Session{UserID: doctorID.Hex(), Role: constvars.RoleDoctor}
		response, err := fixture.usecase.UpdateAppointment(context.Background(), session, appointment.ID.Hex(), &requests.UpdateAppointment{
			Notes:  "needs a follow up",
			Status: constvars.AppointmentStatusCompleted,
			Prescription: &requests.PrescriptionRequest{
				Medicine: "aspirin",
				Dose:     "75mg daily",
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "needs a follow up", response.Notes)
		assert.Equal(t, constvars.AppointmentStatusCompleted, response.Status)
		require.NotNil(t, response.Prescription)
		assert.Equal(t, "aspirin", response.Prescription.Medicine)

		// Counterpart of a doctor edit is the patient.
		require.Len(t, fixture.notifier.sent, 1)
		assert.Equal(t, patientID, fixture.notifier.sent[0].RecipientID)
	})

	t.Run("doctor cannot update an appointment assigned to someone else", func(t *testing.T) {
		appointment := newAppointment(time.Now().Add(48 * time.Hour))
		fixture := newAppointmentFixture(
			newFakeAppointmentRepository(appointment),
			newFakeUserRepository(doctor, patient),
			newFakeDepartmentRepository(department),
		)

		session := &models.Session{UserID: primitive.NewObjectID().Hex(), Role: constvars.RoleDoctor}
		_, err := fixture.usecase.UpdateAppointment(context.Background(), session, appointment.ID.Hex(), &requests.UpdateAppointment{
			Notes: "not mine",
		})
		assert.Equal(t, constvars.StatusForbidden, errorStatusCode(t, err))
	})

	t.Run("admin cannot patch appointments", func(t *testing.T) {
		appointment := newAppointment(time.Now().Add(48 * time.Hour))
		fixture := newAppointmentFixture(
			newFakeAppointmentRepository(appointment),
			newFakeUserRepository(doctor, patient),
			newFakeDepartmentRepository(department),
		)

		session := &models.Session{UserID: primitive.NewObjectID().Hex(), Role: constvars.RoleAdmin}
		_, err := fixture.usecase.UpdateAppointment(context.Background(), session, appointment.ID.Hex(), &requests.UpdateAppointment{
			Notes: "admin note",
		})
		assert.Equal(t, constvars.StatusForbidden, errorStatusCode(t, err))
		assert.Empty(t, fixture.notifier.sent)
	})

	t.Run("patient reschedules within the window", func(t *testing.T) {
		appointment := newAppointment(time.Now().Add(48 * time.Hour))
		fixture := newAppointmentFixture(
			newFakeAppointmentRepository(appointment),
			newFakeUserRepository(doctor, patient),
			newFakeDepartmentRepository(department),
		)

		newDate := time.Now().Add(96 * time.Hour)
		session := &models.Session{UserID: patientID.Hex(), Role: constvars.RolePatient}
		_, err := fixture.usecase.UpdateAppointment(context.Background(), session, appointment.ID.Hex(), &requests.UpdateAppointment{
			Date: newDate.Format(time.RFC3339),
		})
		require.NoError(t, err)

		require.NotNil(t, fixture.appointmentRepo.updated)
		assert.WithinDuration(t, newDate, fixture.appointmentRepo.updated.Date, time.Second)

		// Counterpart of a patient edit is the doctor.
		require.Len(t, fixture.notifier.sent, 1)
		assert.Equal(t, doctorID, fixture.notifier.sent[0].RecipientID)
	})

	t.Run("patient cannot reschedule inside 24 hours", func(t *testing.T) {
		appointment := newAppointment(time.Now().Add(6 * time.Hour))
		fixture := newAppointmentFixture(
			newFakeAppointmentRepository(appointment),
			newFakeUserRepository(doctor, patient),
			newFakeDepartmentRepository(department),
		)

		session := &models.Session{UserID: patientID.Hex(), Role: constvars.RolePatient}
		_, err := fixture.usecase.UpdateAppointment(context.Background(), session, appointment.ID.Hex(), &requests.UpdateAppointment{
			Date: time.Now().Add(96 * time.Hour).Format(time.RFC3339),
		})
		assert.Equal(t, constvars.StatusForbidden, errorStatusCode(t, err))
	})

	t.Run("patient sending only doctor fields gets a 400", func(t *testing.T) {
		appointment := newAppointment(time.Now().Add(48 * time.Hour))
		fixture := newAppointmentFixture(
			newFakeAppointmentRepository(appointment),
			newFakeUserRepository(doctor, patient),
			newFakeDepartmentRepository(department),
		)

		session := &models.Session{UserID: patientID.Hex(), Role: constvars.RolePatient}
		_, err := fixture.usecase.UpdateAppointment(context.Background(), session, appointment.ID.Hex(), &requests.UpdateAppointment{
			Notes:  "trying to write clinical notes",
			Status: constvars.AppointmentStatusCompleted,
		})
		assert.Equal(t, constvars.StatusBadRequest, errorStatusCode(t, err))
		assert.Nil(t, fixture.appointmentRepo.updated)
	})

	t.Run("unknown appointment returns 404", func(t *testing.T) {
		fixture := newAppointmentFixture(
			newFakeAppointmentRepository(),
			newFakeUserRepository(doctor, patient),
			newFakeDepartmentRepository(department),
		)

		session := &models.Session{UserID: patientID.Hex(), Role: constvars.RolePatient}
		_, err := fixture.usecase.UpdateAppointment(context.Background(), session, primitive.NewObjectID().Hex(), &requests.UpdateAppointment{
			Date: time.Now().Add(96 * time.Hour).Format(time.RFC3339),
		})
		assert.Equal(t, constvars.StatusNotFound, errorStatusCode(t, err))
	})
}

func TestDeleteAppointment(t *testing.T) {
	departmentID := primitive.NewObjectID()
	department := &models.Department{ID: departmentID}
	doctorID := primitive.NewObjectID()
	doctor := &models.User{ID: doctorID, Role: constvars.RoleDoctor, DepartmentID: &departmentID}
	patientID := primitive.NewObjectID()
	patient := &models.User{ID: patientID, Role: constvars.RolePatient}

	newAppointment := func(date time.Time) *models.Appointment {
		return &models.Appointment{
			ID:           primitive.NewObjectID(),
			Date:         date,
			PatientID:    patientID,
			DoctorID:     doctorID,
			DepartmentID: departmentID,
			Status:       constvars.AppointmentStatusScheduled,
		}
	}

	t.Run("patient cancels own appointment within the window", func(t *testing.T) {
		appointment := newAppointment(time.Now().Add(48 * time.Hour))
		fixture := newAppointmentFixture(
			newFakeAppointmentRepository(appointment),
			newFakeUserRepository(doctor, patient),
			newFakeDepartmentRepository(department),
		)

		session := &models.Session{UserID: patientID.Hex(), Role: constvars.RolePatient}
		err := fixture.usecase.DeleteAppointment(context.Background(), session, appointment.ID.Hex())
		require.NoError(t, err)

		assert.Contains(t, fixture.appointmentRepo.deleted, appointment.ID)
		require.Len(t, fixture.notifier.sent, 1)
		assert.Equal(t, doctorID, fixture.notifier.sent[0].RecipientID)
		assert.Equal(t, constvars.NotificationTitleAppointmentCanceled, fixture.notifier.sent[0].Title)
	})

	t.Run("patient cannot cancel inside 24 hours", func(t *testing.T) {
		appointment := newAppointment(time.Now().Add(2 * time.Hour))
		fixture := newAppointmentFixture(
			newFakeAppointmentRepository(appointment),
			newFakeUserRepository(doctor, patient),
			newFakeDepartmentRepository(department),
		)

		session := &models.Session{UserID: patientID.Hex(), Role: constvars.RolePatient}
		err := fixture.usecase.DeleteAppointment(context.Background(), session, appointment.ID.Hex())
		assert.Equal(t, constvars.StatusForbidden, errorStatusCode(t, err))
		assert.Empty(t, fixture.appointmentRepo.deleted)
	})

	t.Run("admin cancels any appointment regardless of window", func(t *testing.T) {
		appointment := newAppointment(time.Now().Add(time.Hour))
		fixture := newAppointmentFixture(
			newFakeAppointmentRepository(appointment),
			newFakeUserRepository(doctor, patient),
			newFakeDepartmentRepository(department),
		)

		session := &models.Session{UserID: primitive.NewObjectID().Hex(), Role: constvars.RoleAdmin}
		err := fixture.usecase.DeleteAppointment(context.Background(), session, appointment.ID.Hex())
		require.NoError(t, err)
		assert.Contains(t, fixture.appointmentRepo.deleted, appointment.ID)

		// An admin is not a participant, so both sides hear about it.
		require.Len(t, fixture.notifier.sent, 2)
		recipients := []primitive.ObjectID{fixture.notifier.sent[0].RecipientID, fixture.notifier.sent[1].RecipientID}
		assert.Contains(t, recipients, patientID)
		assert.Contains(t, recipients, doctorID)
	})

	t.Run("doctor cannot cancel", func(t *testing.T) {
		appointment := newAppointment(time.Now().Add(48 * time.Hour))
		fixture := newAppointmentFixture(
			newFakeAppointmentRepository(appointment),
			newFakeUserRepository(doctor, patient),
			newFakeDepartmentRepository(department),
		)

		session := &models.Session{UserID: doctorID.Hex(), Role: constvars.RoleDoctor}
		err := fixture.usecase.DeleteAppointment(context.Background(), session, appointment.ID.Hex())
		assert.Equal(t, constvars.StatusForbidden, errorStatusCode(t, err))
	})
}
