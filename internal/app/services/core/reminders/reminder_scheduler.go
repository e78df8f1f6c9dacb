package reminders

import (
	"context"
	"fmt"
	"time"

	"shifa-service/internal/app/contracts"
	"shifa-service/internal/pkg/constvars"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ReminderScheduler notifies patients about appointments happening within
// the next day. It runs on a cron expression taken from configuration.
type ReminderScheduler struct {
	AppointmentRepository contracts.AppointmentRepository
	NotificationUsecase   contracts.NotificationUsecase
	Log                   *zap.Logger
	cron                  *cron.Cron
}

func NewReminderScheduler(
	appointmentRepository contracts.AppointmentRepository,
	notificationUsecase contracts.NotificationUsecase,
	logger *zap.Logger,
) *ReminderScheduler {
	return &ReminderScheduler{
		AppointmentRepository: appointmentRepository,
		NotificationUsecase:   notificationUsecase,
		Log:                   logger,
		cron:                  cron.New(),
	}
}

// Start registers the reminder job and launches the cron loop. It returns
// an error only if the expression itself does not parse.
func (s *ReminderScheduler) Start(cronExpression string) error {
	_, err := s.cron.AddFunc(cronExpression, s.runOnce)
	if err != nil {
		return fmt.Errorf("invalid reminder cron expression %q: %w", cronExpression, err)
	}
	s.cron.Start()
	s.Log.Info("appointment reminder scheduler started", zap.String("cron", cronExpression))
	return nil
}

// Stop halts the cron loop and waits for any in-flight run to finish.
func (s *ReminderScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.Log.Info("appointment reminder scheduler stopped")
}

func (s *ReminderScheduler) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()
	appointments, err := s.AppointmentRepository.FindScheduledBetween(ctx, now, now.Add(24*time.Hour))
	if err != nil {
		s.Log.Error("reminder run failed to load appointments", zap.Error(err))
		return
	}

	for i := range appointments {
		appointment := &appointments[i]
		s.NotificationUsecase.Notify(ctx, appointment.PatientID,
			constvars.NotificationTitleAppointmentReminder,
			constvars.NotificationTitleAppointmentReminderAr,
			fmt.Sprintf("Reminder: you have an appointment on %s", appointment.Date.Format(time.RFC1123)),
			"",
		)
	}

	s.Log.Info("appointment reminder run completed",
		zap.Int(constvars.LoggingCountKey, len(appointments)),
	)
}
