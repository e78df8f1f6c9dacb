package utils

import (
	"time"

	"shifa-service/internal/app/models"
	"shifa-service/internal/pkg/dto/responses"
)

func ToUserSummary(user *models.User) responses.UserSummary {
	return responses.UserSummary{
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
		Role:  user.Role,
	}
}

func ToUserResponse(user *models.User) *responses.User {
	response := &responses.User{
		ID:               user.ID.Hex(),
		Role:             user.Role,
		Name:             user.Name,
		Email:            user.Email,
		Phone:            user.Phone,
		Gender:           user.Gender,
		Specialization:   user.Specialization,
		SpecializationAr: user.SpecializationAr,
		AppointmentCount: user.AppointmentCount,
		JobTitle:         user.JobTitle,
		JobTitleAr:       user.JobTitleAr,
		BloodType:        user.BloodType,
		Allergies:        user.Allergies,
		CreatedAt:        user.CreatedAt.Format(time.RFC3339),
	}

	if user.DepartmentID != nil {
		response.DepartmentID = user.DepartmentID.Hex()
	}
	if user.Shift != nil {
		response.Shift = &responses.Shift{
			Days:      user.Shift.Days,
			StartTime: user.Shift.StartTime,
			EndTime:   user.Shift.EndTime,
		}
	}
	if user.BirthDate != nil {
		response.BirthDate = user.BirthDate.Format("2006-01-02")
	}

	return response
}

func ToDepartmentSummary(department *models.Department) *responses.DepartmentSummary {
	return &responses.DepartmentSummary{
		ID:     department.ID.Hex(),
		Name:   department.Name,
		NameAr: department.NameAr,
	}
}

func ToReviewResponse(review *models.Review) *responses.Review {
	return &responses.Review{
		ID:            review.ID.Hex(),
		PatientID:     review.PatientID.Hex(),
		DoctorID:      review.DoctorID.Hex(),
		DepartmentID:  review.DepartmentID.Hex(),
		AppointmentID: review.AppointmentID.Hex(),
		Rating:        review.Rating,
		Feedback:      review.Feedback,
		CreatedAt:     review.CreatedAt.Format(time.RFC3339),
	}
}

func ToNotificationResponse(notification *models.Notification) responses.Notification {
	return responses.Notification{
		ID:        notification.ID.Hex(),
		Title:     notification.Title,
		TitleAr:   notification.TitleAr,
		Message:   notification.Message,
		MessageAr: notification.MessageAr,
		Read:      notification.Read,
		CreatedAt: notification.CreatedAt.Format(time.RFC3339),
	}
}
