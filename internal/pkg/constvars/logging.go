package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingSessionDataKey   = "session_data"
	LoggingQueryParamsKey   = "query_params"
	LoggingUserIDKey        = "user_id"
	LoggingDoctorIDKey      = "doctor_id"
	LoggingPatientIDKey     = "patient_id"
	LoggingDepartmentIDKey  = "department_id"
	LoggingAppointmentIDKey = "appointment_id"
	LoggingRecipientIDKey   = "recipient_id"
	LoggingReportTypeKey    = "report_type"
	LoggingCountKey         = "count"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
)
