package requests

type PrescriptionRequest struct {
	Medicine string `json:"medicine" validate:"required,min=2,max=100"`
	Dose     string `json:"dose" validate:"required,min=2,max=50"`
}

type CreateAppointment struct {
	Date         string               `json:"date" validate:"required"`
	DepartmentID string               `json:"department" validate:"required,object_id"`
	Notes        string               `json:"notes" validate:"omitempty,max=500"`
	Prescription *PrescriptionRequest `json:"prescription" validate:"omitempty"`
	FollowUpDate string               `json:"followUpDate" validate:"omitempty"`
}

// UpdateAppointment carries every patchable field; the usecase applies the
// role whitelist, so a patient sending doctor-only fields simply has them
// dropped rather than rejected.
type UpdateAppointment struct {
	Date         string               `json:"date" validate:"omitempty"`
	Notes        string               `json:"notes" validate:"omitempty,max=500"`
	Prescription *PrescriptionRequest `json:"prescription" validate:"omitempty"`
	FollowUpDate string               `json:"followUpDate" validate:"omitempty"`
	Status       string               `json:"status" validate:"omitempty,oneof=scheduled completed"`
}

// AppointmentFilter holds the optional list filters. Before/After/On are
// RFC3339 or YYYY-MM-DD date strings; On wins over the range pair.
type AppointmentFilter struct {
	Status string `validate:"omitempty,oneof=scheduled completed"`
	Before string `validate:"omitempty"`
	After  string `validate:"omitempty"`
	On     string `validate:"omitempty"`
}
