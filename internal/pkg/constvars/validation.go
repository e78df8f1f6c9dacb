package constvars

// CustomValidationErrorMessages maps validator tags to the message fragment
// appended after the lowercased field name.
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email address",
	"min":          "must be at least %s characters",
	"max":          "must be at most %s characters",
	"gte":          "must be greater than or equal to %s",
	"lte":          "must be less than or equal to %s",
	"oneof":        "must be one of: %s",
	"object_id":    "must be a valid object ID",
	"password":     "must be at least 8 characters and contain an uppercase letter and a special character",
	"phone_number": "must be a valid international phone number",
	"shift_time":   "must be a valid HH:mm time",
}

// TagsWithParams marks tags whose message carries the validator parameter.
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}
