package responses

type Shift struct {
	Days      []string `json:"days"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
}

// User is the full profile shape; variant fields are omitted when they do
// not apply to the user's role.
type User struct {
	ID               string   `json:"id"`
	Role             string   `json:"role"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Gender           string   `json:"gender,omitempty"`
	DepartmentID     string   `json:"departmentId,omitempty"`
	Shift            *Shift   `json:"shift,omitempty"`
	Specialization   string   `json:"specialization,omitempty"`
	SpecializationAr string   `json:"specializationAr,omitempty"`
	AppointmentCount int      `json:"appointmentCount,omitempty"`
	JobTitle         string   `json:"jobTitle,omitempty"`
	JobTitleAr       string   `json:"jobTitleAr,omitempty"`
	BirthDate        string   `json:"birthDate,omitempty"`
	BloodType        string   `json:"bloodType,omitempty"`
	Allergies        []string `json:"allergies,omitempty"`
	CreatedAt        string   `json:"createdAt"`
}
