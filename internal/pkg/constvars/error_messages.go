package constvars

// Client messages are safe for API consumers; dev messages stay in logs.
const (
	ErrClientSomethingWrongWithApplication = "something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "cannot process the request, please check your input"
	ErrClientNotAuthorized                 = "you are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "you are not logged in, please login first"
	ErrClientServerLongRespond             = "server took too long to respond, please try again later"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"

	ErrClientEmailAlreadyExists       = "email already exists"
	ErrClientPhoneAlreadyExists       = "phone already exists"
	ErrClientUserNotFound             = "user not found"
	ErrClientDoctorNotFound           = "doctor not found"
	ErrClientPatientNotFound          = "patient not found"
	ErrClientDepartmentNotFound       = "department not found"
	ErrClientDepartmentAlreadyExists  = "department with this name already exists"
	ErrClientNoDoctorsAvailable       = "no doctors available in this department"
	ErrClientAppointmentNotFound      = "appointment not found"
	ErrClientAppointmentAccessDenied  = "you do not have permission to access this appointment"
	ErrClientAppointmentNotYours      = "you can only update appointments assigned to you"
	ErrClientAppointmentNotOwnedByYou = "you can only modify your own appointments"
	ErrClientAppointmentWindowClosed  = "you can only modify the appointment at least 24 hours before the appointment time"
	ErrClientNoValidFieldsToUpdate    = "no valid fields to update"
	ErrClientAppointmentDateInPast    = "appointment date must be in the future"
	ErrClientReviewNotFound           = "review not found"
	ErrClientNotificationNotFound     = "notification not found"
	ErrClientReportTypeUnknown        = "unknown report type, expected performance or complaints"
	ErrClientReportNotReady           = "please wait before requesting this report again"
	ErrClientReportGeneration         = "failed to generate the report, please try again later"
)

const (
	ErrDevValidationFailed             = "request validation failed"
	ErrDevCannotParseJSON              = "failed to parse JSON request body"
	ErrDevCannotParseDate              = "failed to parse date value"
	ErrDevURLParamIDValidationFailed   = "URL parameter %s is not a valid object ID"
	ErrDevFailedToHashPassword         = "failed to hash password"
	ErrDevInvalidCredentials           = "invalid credentials supplied"
	ErrDevAuthTokenMissing             = "authorization token is missing"
	ErrDevAuthTokenInvalidOrExpired    = "authorization token is invalid or expired"
	ErrDevAuthGenerateToken            = "failed to generate auth token"
	ErrDevAuthSigningMethod            = "unexpected JWT signing method"
	ErrDevAuthInvalidSession           = "session not found or expired"
	ErrDevRoleNotAllowed               = "requester role is not allowed for this endpoint"
	ErrDevServerDeadlineExceeded       = "server deadline exceeded"
	ErrDevEmailAlreadyExists           = "a user with this email already exists"
	ErrDevPhoneAlreadyExists           = "a user with this phone already exists"
	ErrDevUserNotExists                = "user does not exist"
	ErrDevDepartmentNotExists          = "department does not exist"
	ErrDevDepartmentNameTaken          = "department name or nameAr already taken"
	ErrDevDoctorPoolEmpty              = "department has no doctors to assign"
	ErrDevAppointmentNotExists         = "appointment does not exist"
	ErrDevAppointmentAccessDenied      = "access policy rejected the requester"
	ErrDevAppointmentWindowClosed      = "24-hour modification window has passed"
	ErrDevAppointmentNoFields          = "role whitelist left no fields to apply"
	ErrDevAppointmentDateInPast        = "requested appointment date is not in the future"
	ErrDevReviewNotExists              = "review does not exist"
	ErrDevNotificationNotExists        = "notification does not exist or belongs to another user"
	ErrDevReportTypeUnknown            = "report type is not a supported value"
	ErrDevReportRegenerateGuard        = "report regenerate guard window still open"
	ErrDevAIServiceRequest             = "AI completion request failed"
	ErrDevAIServiceTimeout             = "AI completion request timed out"
	ErrDevAIServiceMalformedResponse   = "AI completion response could not be decoded"
	ErrDevDBFailedToFindDocument       = "database failed to find document"
	ErrDevDBFailedToInsertDocument     = "database failed to insert document"
	ErrDevDBFailedToUpdateDocument     = "database failed to update document"
	ErrDevDBFailedToDeleteDocument     = "database failed to delete document"
	ErrDevDBFailedToCountDocuments     = "database failed to count documents"
	ErrDevDBFailedToIterateDocuments   = "database failed to iterate documents"
	ErrDevDBStringNotObjectID          = "value is not a valid object ID"
	ErrDevRedisSetFailed               = "redis failed to set key"
	ErrDevRedisGetFailed               = "redis failed to get key"
	ErrDevRedisDeleteFailed            = "redis failed to delete key"
	ErrDevMinioFailedToCreateObject    = "minio failed to create object in bucket %s"
	ErrDevPushPublishFailed            = "push queue publish failed"
	ErrDevCannotMarshalJSON            = "failed to marshal value to JSON"
	ErrDevImageValidationFailed        = "image validation failed"
)

const ResponseUnknown = "unknown"
