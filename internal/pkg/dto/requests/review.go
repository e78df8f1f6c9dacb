package requests

type CreateReview struct {
	DoctorID      string  `json:"doctor" validate:"required,object_id"`
	DepartmentID  string  `json:"department" validate:"required,object_id"`
	AppointmentID string  `json:"appointment" validate:"required,object_id"`
	Rating        float64 `json:"rating" validate:"gte=0,lte=5"`
	Feedback      string  `json:"feedback" validate:"omitempty,max=500"`
}

type UpdateReview struct {
	Rating   *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Feedback string   `json:"feedback" validate:"omitempty,max=500"`
}
