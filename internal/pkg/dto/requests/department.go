package requests

type CreateDepartment struct {
	Name           string  `json:"name" validate:"required,min=3,max=100"`
	NameAr         string  `json:"nameAr" validate:"required,min=3,max=100"`
	Description    string  `json:"description" validate:"required,min=10,max=500"`
	DescriptionAr  string  `json:"descriptionAr" validate:"omitempty,min=10,max=500"`
	AppointmentFee float64 `json:"appointmentFee" validate:"required,gte=0"`

	// Optional base64-encoded image, stored in object storage.
	Image string `json:"image" validate:"omitempty"`

	ImageData      []byte `json:"-"`
	ImageExtension string `json:"-"`
}

type UpdateDepartment struct {
	Name           string   `json:"name" validate:"omitempty,min=3,max=100"`
	NameAr         string   `json:"nameAr" validate:"omitempty,min=3,max=100"`
	Description    string   `json:"description" validate:"omitempty,min=10,max=500"`
	DescriptionAr  string   `json:"descriptionAr" validate:"omitempty,min=10,max=500"`
	AppointmentFee *float64 `json:"appointmentFee" validate:"omitempty,gte=0"`
	Image          string   `json:"image" validate:"omitempty"`

	ImageData      []byte `json:"-"`
	ImageExtension string `json:"-"`
}
