package appointments

import (
	"time"

	"shifa-service/internal/app/models"
	"shifa-service/internal/pkg/constvars"
)

// CanAccess reports whether the session may read the appointment: admins
// see everything, doctors their assigned appointments, patients their own.
func CanAccess(session *models.Session, appointment *models.Appointment) bool {
	switch session.Role {
	case constvars.RoleAdmin:
		return true
	case constvars.RoleDoctor:
		return appointment.DoctorID.Hex() == session.UserID
	case constvars.RolePatient:
		return appointment.PatientID.Hex() == session.UserID
	default:
		return false
	}
}

// WithinModificationWindow reports whether a patient may still reschedule
// or cancel: at least 24 hours must remain before the appointment, with
// exactly 24 hours still allowed.
func WithinModificationWindow(appointmentDate, now time.Time) bool {
	window := time.Duration(constvars.PatientModificationWindowInHours) * time.Hour
	return appointmentDate.Sub(now) >= window
}
