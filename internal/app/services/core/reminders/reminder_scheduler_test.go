package reminders

import (
	"context"
	"testing"
	"time"

	"shifa-service/internal/app/contracts"
	"shifa-service/internal/app/models"
	"shifa-service/internal/pkg/constvars"
	"shifa-service/internal/pkg/dto/requests"
	"shifa-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeAppointmentRepository struct {
	scheduled []models.Appointment
}

func (r *fakeAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	return appointment, nil
}

func (r *fakeAppointmentRepository) FindByID(ctx context.Context, appointmentID primitive.ObjectID) (*models.Appointment, error) {
	return nil, nil
}

func (r *fakeAppointmentRepository) FindAll(ctx context.Context, scope *contracts.AppointmentScope, filter *requests.AppointmentFilter, pagination *requests.Pagination) ([]models.Appointment, int64, error) {
	return nil, 0, nil
}

func (r *fakeAppointmentRepository) FindScheduledBetween(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	return r.scheduled, nil
}

func (r *fakeAppointmentRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	return nil
}

func (r *fakeAppointmentRepository) DeleteByID(ctx context.Context, appointmentID primitive.ObjectID) error {
	return nil
}

type recordedNotification struct {
	RecipientID primitive.ObjectID
	Title       string
	Message     string
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
	n.sent = append(n.sent, recordedNotification{RecipientID: recipientID, Title: title, Message: message})
}

func TestStartRejectsInvalidExpression(t *testing.T) {
	scheduler := NewReminderScheduler(&fakeAppointmentRepository{}, &fakeNotifier{}, zap.NewNop())

	err := scheduler.Start("every day at noon")
	assert.Error(t, err)
}

func TestRunOnceNotifiesUpcomingAppointments(t *testing.T) {
	firstPatient := primitive.NewObjectID()
	secondPatient := primitive.NewObjectID()
	appointmentDate := time.Now().Add(6 * time.Hour)

	notifier := &fakeNotifier{}
	scheduler := NewReminderScheduler(&fakeAppointmentRepository{
		scheduled: []models.Appointment{
			{ID: primitive.NewObjectID(), PatientID: firstPatient, Date: appointmentDate},
			{ID: primitive.NewObjectID(), PatientID: secondPatient, Date: appointmentDate},
		},
	}, notifier, zap.NewNop())

	scheduler.runOnce()

	require.Len(t, notifier.sent, 2)
	assert.Equal(t, firstPatient, notifier.sent[0].RecipientID)
	assert.Equal(t, constvars.NotificationTitleAppointmentReminder, notifier.sent[0].Title)
	assert.Contains(t, notifier.sent[0].Message, appointmentDate.Format(time.RFC1123))
	assert.Equal(t, secondPatient, notifier.sent[1].RecipientID)
}

func TestRunOnceWithNothingScheduled(t *testing.T) {
	notifier := &fakeNotifier{}
	scheduler := NewReminderScheduler(&fakeAppointmentRepository{}, notifier, zap.NewNop())

	scheduler.runOnce()

	assert.Empty(t, notifier.sent)
}
