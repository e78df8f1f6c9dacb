package responses

// Department includes the read-time aggregates; they are computed per
// request, never stored on the document.
type Department struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	NameAr          string   `json:"nameAr"`
	Description     string   `json:"description"`
	DescriptionAr   string   `json:"descriptionAr,omitempty"`
	AppointmentFee  float64  `json:"appointmentFee"`
	Image           string   `json:"image,omitempty"`
	StaffCount      int      `json:"staffCount"`
	NumberOfReviews int      `json:"numberOfReviews"`
	AverageRating   float64  `json:"averageRating"`
	AvailableDays   []string `json:"availableDays"`
	Doctors         []Doctor `json:"doctors,omitempty"`
}

type Doctor struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Specialization   string   `json:"specialization"`
	SpecializationAr string   `json:"specializationAr,omitempty"`
	ShiftDays        []string `json:"shiftDays,omitempty"`
	AppointmentCount int      `json:"appointmentCount"`
}
