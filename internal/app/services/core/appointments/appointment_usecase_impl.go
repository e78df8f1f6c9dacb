package appointments

import (
	"context"
	"fmt"
	"sync"
	"time"

	"shifa-service/internal/app/contracts"
	"shifa-service/internal/app/models"
	"shifa-service/internal/pkg/constvars"
	"shifa-service/internal/pkg/dto/requests"
	"shifa-service/internal/pkg/dto/responses"
	"shifa-service/internal/pkg/exceptions"
	"shifa-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	UserRepository        contracts.UserRepository
	DepartmentRepository  contracts.DepartmentRepository
	NotificationUsecase   contracts.NotificationUsecase
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	userRepository contracts.UserRepository,
	departmentRepository contracts.DepartmentRepository,
	notificationUsecase contracts.NotificationUsecase,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			UserRepository:        userRepository,
			DepartmentRepository:  departmentRepository,
			NotificationUsecase:   notificationUsecase,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, session.UserID),
	)

	patientID, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	date, err := utils.ParseDate(request.Date)
	if err != nil {
		return nil, err
	}
	if !date.After(time.Now()) {
		return nil, exceptions.ErrAppointmentDateInPast(nil)
	}

	departmentID, err := primitive.ObjectIDFromHex(request.DepartmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	department, err := uc.DepartmentRepository.FindByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, exceptions.ErrDepartmentNotExist(nil)
	}

	doctor, err := uc.UserRepository.PickLeastLoadedDoctor(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrNoDoctorsAvailable(nil)
	}

	now := time.Now()
	appointment := &models.Appointment{
		Date:         date,
		PatientID:    patientID,
		DoctorID:     doctor.ID,
		DepartmentID: departmentID,
		Notes:        request.Notes,
		Status:       constvars.AppointmentStatusScheduled,
		TimeModel:    models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	if request.Prescription != nil {
		appointment.Prescription = &models.Prescription{
			Medicine: request.Prescription.Medicine,
			Dose:     request.Prescription.Dose,
		}
	}
	if request.FollowUpDate != "" {
		followUpDate, err := utils.ParseDate(request.FollowUpDate)
		if err != nil {
			return nil, err
		}
		appointment.FollowUpDate = &followUpDate
	}

	created, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error creating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.CreateAppointment assigned doctor",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, created.ID.Hex()),
		zap.String(constvars.LoggingDoctorIDKey, doctor.ID.Hex()),
	)

	uc.NotificationUsecase.Notify(ctx, doctor.ID,
		constvars.NotificationTitleAppointmentBooked,
		constvars.NotificationTitleAppointmentBookedAr,
		fmt.Sprintf("You have a new appointment on %s", date.Format(time.RFC1123)),
		"",
	)

	return uc.buildAppointmentResponse(ctx, created)
}

func (uc *appointmentUsecase) GetAppointments(ctx context.Context, session *models.Session, filter *requests.AppointmentFilter, pagination *requests.Pagination) ([]responses.Appointment, int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	scope, err := listScope(session)
	if err != nil {
		return nil, 0, err
	}

	appointments, total, err := uc.AppointmentRepository.FindAll(ctx, scope, filter, pagination)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.Appointment, 0, len(appointments))
	populate := newPopulateCache(uc.UserRepository, uc.DepartmentRepository)
	for i := range appointments {
		response, err := populate.build(ctx, &appointments[i])
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *response)
	}
	return result, total, nil
}

// listScope translates the session role into the repository filter: admins
// list everything, doctors and patients only their side of the collection.
func listScope(session *models.Session) (*contracts.AppointmentScope, error) {
	switch session.Role {
	case constvars.RoleAdmin:
		return &contracts.AppointmentScope{}, nil
	case constvars.RoleDoctor:
		doctorID, err := primitive.ObjectIDFromHex(session.UserID)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		return &contracts.AppointmentScope{DoctorID: &doctorID}, nil
	case constvars.RolePatient:
		patientID, err := primitive.ObjectIDFromHex(session.UserID)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		return &contracts.AppointmentScope{PatientID: &patientID}, nil
	default:
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}
}

func (uc *appointmentUsecase) GetAppointmentByID(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetAppointmentByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.findAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if !CanAccess(session, appointment) {
		return nil, exceptions.ErrAppointmentAccessDenied(nil)
	}

	return uc.buildAppointmentResponse(ctx, appointment)
}

func (uc *appointmentUsecase) UpdateAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.UpdateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.findAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	var changed bool
	switch session.Role {
	case constvars.RoleDoctor:
		if appointment.DoctorID.Hex() != session.UserID {
			return nil, exceptions.ErrAppointmentNotAssignedToDoctor(nil)
		}
		changed, err = uc.applyDoctorUpdate(appointment, request)
	case constvars.RolePatient:
		if appointment.PatientID.Hex() != session.UserID {
			return nil, exceptions.ErrAppointmentNotOwnedByPatient(nil)
		}
		if !WithinModificationWindow(appointment.Date, time.Now()) {
			return nil, exceptions.ErrAppointmentWindowClosed(nil)
		}
		changed, err = uc.applyPatientUpdate(appointment, request)
	default:
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, exceptions.ErrNoValidFieldsToUpdate(nil)
	}

	appointment.UpdatedAt = time.Now()
	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		uc.Log.Error("appointmentUsecase.UpdateAppointment error updating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.notifyCounterpart(ctx, session, appointment,
		constvars.NotificationTitleAppointmentUpdated,
		constvars.NotificationTitleAppointmentUpdatedAr,
		fmt.Sprintf("Appointment on %s was updated", appointment.Date.Format(time.RFC1123)),
	)

	return uc.buildAppointmentResponse(ctx, appointment)
}

// applyDoctorUpdate covers the clinical fields; anything else in the
// request is dropped silently.
func (uc *appointmentUsecase) applyDoctorUpdate(appointment *models.Appointment, request *requests.UpdateAppointment) (bool, error) {
	changed := false
	if request.Notes != "" {
		appointment.Notes = request.Notes
		changed = true
	}
	if request.Prescription != nil {
		appointment.Prescription = &models.Prescription{
			Medicine: request.Prescription.Medicine,
			Dose:     request.Prescription.Dose,
		}
		changed = true
	}
	if request.FollowUpDate != "" {
		followUpDate, err := utils.ParseDate(request.FollowUpDate)
		if err != nil {
			return false, err
		}
		appointment.FollowUpDate = &followUpDate
		changed = true
	}
	if request.Status != "" {
		appointment.Status = request.Status
		changed = true
	}
	return changed, nil
}

// applyPatientUpdate covers rescheduling only.
func (uc *appointmentUsecase) applyPatientUpdate(appointment *models.Appointment, request *requests.UpdateAppointment) (bool, error) {
	if request.Date == "" {
		return false, nil
	}

	date, err := utils.ParseDate(request.Date)
	if err != nil {
		return false, err
	}
	if !date.After(time.Now()) {
		return false, exceptions.ErrAppointmentDateInPast(nil)
	}

	appointment.Date = date
	return true, nil
}

func (uc *appointmentUsecase) DeleteAppointment(ctx context.Context, session *models.Session, appointmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.DeleteAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.findAppointment(ctx, appointmentID)
	if err != nil {
		return err
	}

	switch session.Role {
	case constvars.RoleAdmin:
	case constvars.RolePatient:
		if appointment.PatientID.Hex() != session.UserID {
			return exceptions.ErrAppointmentNotOwnedByPatient(nil)
		}
		if !WithinModificationWindow(appointment.Date, time.Now()) {
			return exceptions.ErrAppointmentWindowClosed(nil)
		}
	default:
		return exceptions.ErrRoleNotAllowed(nil)
	}

	if err := uc.AppointmentRepository.DeleteByID(ctx, appointment.ID); err != nil {
		return err
	}

	uc.notifyCounterpart(ctx, session, appointment,
		constvars.NotificationTitleAppointmentCanceled,
		constvars.NotificationTitleAppointmentCanceledAr,
		fmt.Sprintf("Appointment on %s was canceled", appointment.Date.Format(time.RFC1123)),
	)
	return nil
}

func (uc *appointmentUsecase) findAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(nil)
	}
	return appointment, nil
}

// notifyCounterpart informs the participants who did not make the
// change; the actor already knows what they did. An admin is neither
// side, so both the patient and the doctor hear about it.
func (uc *appointmentUsecase) notifyCounterpart(ctx context.Context, session *models.Session, appointment *models.Appointment, title, titleAr, message string) {
	if session.IsAdmin() {
		uc.NotificationUsecase.Notify(ctx, appointment.PatientID, title, titleAr, message, "")
		uc.NotificationUsecase.Notify(ctx, appointment.DoctorID, title, titleAr, message, "")
		return
	}

	recipientID := appointment.DoctorID
	if session.IsDoctor() {
		recipientID = appointment.PatientID
	}
	uc.NotificationUsecase.Notify(ctx, recipientID, title, titleAr, message, "")
}

func (uc *appointmentUsecase) buildAppointmentResponse(ctx context.Context, appointment *models.Appointment) (*responses.Appointment, error) {
	populate := newPopulateCache(uc.UserRepository, uc.DepartmentRepository)
	return populate.build(ctx, appointment)
}

// populateCache resolves the referenced users and departments once per
// listing instead of once per appointment.
type populateCache struct {
	userRepository       contracts.UserRepository
	departmentRepository contracts.DepartmentRepository
	users                map[primitive.ObjectID]*models.User
	departments          map[primitive.ObjectID]*models.Department
}

func newPopulateCache(userRepository contracts.UserRepository, departmentRepository contracts.DepartmentRepository) *populateCache {
	return &populateCache{
		userRepository:       userRepository,
		departmentRepository: departmentRepository,
		users:                make(map[primitive.ObjectID]*models.User),
		departments:          make(map[primitive.ObjectID]*models.Department),
	}
}

func (p *populateCache) user(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	if user, ok := p.users[userID]; ok {
		return user, nil
	}
	user, err := p.userRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	p.users[userID] = user
	return user, nil
}

func (p *populateCache) department(ctx context.Context, departmentID primitive.ObjectID) (*models.Department, error) {
	if department, ok := p.departments[departmentID]; ok {
		return department, nil
	}
	department, err := p.departmentRepository.FindByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	p.departments[departmentID] = department
	return department, nil
}

func (p *populateCache) build(ctx context.Context, appointment *models.Appointment) (*responses.Appointment, error) {
	response := &responses.Appointment{
		ID:     appointment.ID.Hex(),
		Date:   appointment.Date.Format(time.RFC3339),
		Notes:  appointment.Notes,
		Status: appointment.Status,
	}
	if appointment.Prescription != nil {
		response.Prescription = &responses.PrescriptionResponse{
			Medicine: appointment.Prescription.Medicine,
			Dose:     appointment.Prescription.Dose,
		}
	}
	if appointment.FollowUpDate != nil {
		response.FollowUpDate = appointment.FollowUpDate.Format(time.RFC3339)
	}

	patient, err := p.user(ctx, appointment.PatientID)
	if err != nil {
		return nil, err
	}
	if patient != nil {
		summary := utils.ToUserSummary(patient)
		response.Patient = &summary
	}

	doctor, err := p.user(ctx, appointment.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor != nil {
		summary := utils.ToUserSummary(doctor)
		response.Doctor = &summary
	}

	department, err := p.department(ctx, appointment.DepartmentID)
	if err != nil {
		return nil, err
	}
	if department != nil {
		response.Department = utils.ToDepartmentSummary(department)
	}

	return response, nil
}
