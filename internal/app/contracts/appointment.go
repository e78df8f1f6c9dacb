package contracts

import (
	"context"
	"time"

	"shifa-service/internal/app/models"
	"shifa-service/internal/pkg/dto/requests"
	"shifa-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.Appointment, error)
	GetAppointments(ctx context.Context, session *models.Session, filter *requests.AppointmentFilter, pagination *requests.Pagination) ([]responses.Appointment, int64, error)
	GetAppointmentByID(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error)
	UpdateAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error)
	DeleteAppointment(ctx context.Context, session *models.Session, appointmentID string) error
}

// AppointmentScope restricts a listing to one participant; nil fields mean
// no restriction on that side.
type AppointmentScope struct {
	PatientID *primitive.ObjectID
	DoctorID  *primitive.ObjectID
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	FindByID(ctx context.Context, appointmentID primitive.ObjectID) (*models.Appointment, error)
	FindAll(ctx context.Context, scope *AppointmentScope, filter *requests.AppointmentFilter, pagination *requests.Pagination) ([]models.Appointment, int64, error)
	FindScheduledBetween(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) error
	DeleteByID(ctx context.Context, appointmentID primitive.ObjectID) error
}
