package utils

import (
	"testing"

	"shifa-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterPatientRequest(t *testing.T) {
	input := &requests.RegisterPatient{
		Name:  "  Amina Hassan  ",
		Email: " Amina@Example.COM ",
		Phone: " +201001234567 ",
	}

	SanitizeRegisterPatientRequest(input)

	assert.Equal(t, "Amina Hassan", input.Name)
	assert.Equal(t, "amina@example.com", input.Email)
	assert.Equal(t, "+201001234567", input.Phone)
}

func TestSanitizeLoginRequest(t *testing.T) {
	input := &requests.Login{Email: " Doctor@Hospital.ORG "}

	SanitizeLoginRequest(input)

	assert.Equal(t, "doctor@hospital.org", input.Email)
}

func TestSanitizeCreateReviewRequest(t *testing.T) {
	input := &requests.CreateReview{Feedback: "  great visit  "}

	SanitizeCreateReviewRequest(input)

	assert.Equal(t, "great visit", input.Feedback)
}
