package responses

type PrescriptionResponse struct {
	Medicine string `json:"medicine"`
	Dose     string `json:"dose"`
}

// Appointment carries the populated patient/doctor/department summaries the
// way the original API returned them, instead of bare reference IDs.
type Appointment struct {
	ID           string                `json:"id"`
	Date         string                `json:"date"`
	Patient      *UserSummary          `json:"patient,omitempty"`
	Doctor       *UserSummary          `json:"doctor,omitempty"`
	Department   *DepartmentSummary    `json:"department,omitempty"`
	Notes        string                `json:"notes,omitempty"`
	Prescription *PrescriptionResponse `json:"prescription,omitempty"`
	FollowUpDate string                `json:"followUpDate,omitempty"`
	Status       string                `json:"status"`
}

type DepartmentSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameAr string `json:"nameAr"`
}
