package constvars

const (
	RegexContainAtLeastOneSpecialChar = `.*[!@#$%^&*(),.?":{}|<>].*`
	RegexContainAtLeastOneUppercase   = `.*[A-Z].*`
	RegexTimeHHMM                     = `^([01]\d|2[0-3]):[0-5]\d$`
	RegexPhoneNumberGeneral           = `^\+[1-9]\d{9,14}$`
)
