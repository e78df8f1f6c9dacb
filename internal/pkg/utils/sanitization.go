package utils

import (
	"shifa-service/internal/pkg/dto/requests"
	"strings"
)

func trimAll(values ...*string) {
	for _, v := range values {
		*v = strings.TrimSpace(*v)
	}
}

func SanitizeRegisterPatientRequest(input *requests.RegisterPatient) {
	trimAll(&input.Name, &input.Email, &input.Phone)
	input.Email = strings.ToLower(input.Email)
}

func SanitizeLoginRequest(input *requests.Login) {
	trimAll(&input.Email)
	input.Email = strings.ToLower(input.Email)
}

func SanitizeCreateDoctorRequest(input *requests.CreateDoctor) {
	trimAll(&input.Name, &input.Email, &input.Phone, &input.Specialization, &input.SpecializationAr)
	input.Email = strings.ToLower(input.Email)
}

func SanitizeCreateNurseRequest(input *requests.CreateNurse) {
	trimAll(&input.Name, &input.Email, &input.Phone)
	input.Email = strings.ToLower(input.Email)
}

func SanitizeCreateStaffRequest(input *requests.CreateStaff) {
	trimAll(&input.Name, &input.Email, &input.Phone, &input.JobTitle, &input.JobTitleAr)
	input.Email = strings.ToLower(input.Email)
}

func SanitizeCreateDepartmentRequest(input *requests.CreateDepartment) {
	trimAll(&input.Name, &input.NameAr, &input.Description, &input.DescriptionAr)
}

func SanitizeUpdateDepartmentRequest(input *requests.UpdateDepartment) {
	trimAll(&input.Name, &input.NameAr, &input.Description, &input.DescriptionAr)
}

func SanitizeCreateReviewRequest(input *requests.CreateReview) {
	trimAll(&input.Feedback)
}
