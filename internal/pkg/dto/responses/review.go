package responses

type Review struct {
	ID            string  `json:"id"`
	PatientID     string  `json:"patientId"`
	DoctorID      string  `json:"doctorId"`
	DepartmentID  string  `json:"departmentId"`
	AppointmentID string  `json:"appointmentId"`
	Rating        float64 `json:"rating"`
	Feedback      string  `json:"feedback,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}
