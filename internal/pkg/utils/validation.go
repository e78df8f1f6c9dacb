package utils

import (
	"regexp"
	"shifa-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("object_id", validateObjectID)
	validate.RegisterValidation("shift_time", validateShiftTime)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(constvars.RegexPhoneNumberGeneral)
	return re.MatchString(fl.Field().String())
}

func validateObjectID(fl validator.FieldLevel) bool {
	return primitive.IsValidObjectID(fl.Field().String())
}

func validateShiftTime(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(constvars.RegexTimeHHMM)
	return re.MatchString(fl.Field().String())
}
