package requests

type ShiftRequest struct {
	Days      []string `json:"days" validate:"required,min=1,dive,oneof=saturday sunday monday tuesday wednesday thursday friday"`
	StartTime string   `json:"startTime" validate:"required,shift_time"`
	EndTime   string   `json:"endTime" validate:"required,shift_time"`
}

type CreateDoctor struct {
	Name             string        `json:"name" validate:"required,min=3,max=30"`
	Email            string        `json:"email" validate:"required,email"`
	Password         string        `json:"password" validate:"required,password"`
	Phone            string        `json:"phone" validate:"required,phone_number"`
	Gender           string        `json:"gender" validate:"omitempty,oneof=male female"`
	DepartmentID     string        `json:"departmentId" validate:"required,object_id"`
	Specialization   string        `json:"specialization" validate:"required,min=3,max=100"`
	SpecializationAr string        `json:"specializationAr" validate:"omitempty,min=3,max=100"`
	Shift            *ShiftRequest `json:"shift" validate:"required"`
}

type CreateNurse struct {
	Name         string        `json:"name" validate:"required,min=3,max=30"`
	Email        string        `json:"email" validate:"required,email"`
	Password     string        `json:"password" validate:"required,password"`
	Phone        string        `json:"phone" validate:"required,phone_number"`
	Gender       string        `json:"gender" validate:"omitempty,oneof=male female"`
	DepartmentID string        `json:"departmentId" validate:"required,object_id"`
	Shift        *ShiftRequest `json:"shift" validate:"required"`
}

type CreateStaff struct {
	Name         string        `json:"name" validate:"required,min=3,max=30"`
	Email        string        `json:"email" validate:"required,email"`
	Password     string        `json:"password" validate:"required,password"`
	Phone        string        `json:"phone" validate:"required,phone_number"`
	Gender       string        `json:"gender" validate:"omitempty,oneof=male female"`
	DepartmentID string        `json:"departmentId" validate:"required,object_id"`
	Shift        *ShiftRequest `json:"shift" validate:"required"`
	JobTitle     string        `json:"jobTitle" validate:"required,min=3,max=30"`
	JobTitleAr   string        `json:"jobTitleAr" validate:"omitempty,min=3,max=30"`
}

// UpdateUser carries the mutable common and variant fields. Fields that do
// not apply to the target's role are ignored by the usecase.
type UpdateUser struct {
	Name             string        `json:"name" validate:"omitempty,min=3,max=30"`
	Phone            string        `json:"phone" validate:"omitempty,phone_number"`
	Gender           string        `json:"gender" validate:"omitempty,oneof=male female"`
	DepartmentID     string        `json:"departmentId" validate:"omitempty,object_id"`
	Specialization   string        `json:"specialization" validate:"omitempty,min=3,max=100"`
	SpecializationAr string        `json:"specializationAr" validate:"omitempty,min=3,max=100"`
	Shift            *ShiftRequest `json:"shift" validate:"omitempty"`
	JobTitle         string        `json:"jobTitle" validate:"omitempty,min=3,max=30"`
	JobTitleAr       string        `json:"jobTitleAr" validate:"omitempty,min=3,max=30"`
	BloodType        string        `json:"bloodType" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Allergies        []string      `json:"allergies" validate:"omitempty,dive,max=100"`
}

// UserFilter narrows the admin user listing.
type UserFilter struct {
	Role         string `validate:"omitempty,oneof=Admin DepartmentManager Doctor Nurse Staff Patient"`
	DepartmentID string `validate:"omitempty,object_id"`
	Search       string `validate:"omitempty,max=100"`
}
