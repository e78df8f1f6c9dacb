package requests

// RegisterPatient is the public self-registration payload. Staff roles are
// created by admins through the user endpoints instead.
type RegisterPatient struct {
	Name      string   `json:"name" validate:"required,min=3,max=30"`
	Email     string   `json:"email" validate:"required,email"`
	Password  string   `json:"password" validate:"required,password"`
	Phone     string   `json:"phone" validate:"required,phone_number"`
	Gender    string   `json:"gender" validate:"omitempty,oneof=male female"`
	BirthDate string   `json:"birthDate" validate:"required"`
	BloodType string   `json:"bloodType" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Allergies []string `json:"allergies" validate:"omitempty,dive,max=100"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
