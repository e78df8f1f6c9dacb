package constvars

type ContextKey string

const (
	CONTEXT_SESSION_DATA_KEY ContextKey = "sessionData"
	CONTEXT_SESSION_ID_KEY   ContextKey = "sessionID"
	CONTEXT_REQUEST_ID_KEY   ContextKey = "requestID"
)

const (
	MongoCollectionUsers         = "users"
	MongoCollectionDepartments   = "departments"
	MongoCollectionAppointments  = "appointments"
	MongoCollectionNotifications = "notifications"
	MongoCollectionReviews       = "reviews"
	MongoCollectionReportCaches  = "reportcaches"
)

// User roles, stored as the discriminator tag on the users collection.
const (
	RoleAdmin             = "Admin"
	RoleDepartmentManager = "DepartmentManager"
	RoleDoctor            = "Doctor"
	RoleNurse             = "Nurse"
	RoleStaff             = "Staff"
	RolePatient           = "Patient"
)

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
)

const (
	ReportTypePerformance = "performance"
	ReportTypeComplaints  = "complaints"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

const (
	URLParamAppointmentID  = "appointment_id"
	URLParamDepartmentID   = "department_id"
	URLParamUserID         = "user_id"
	URLParamReviewID       = "review_id"
	URLParamNotificationID = "notification_id"
	URLParamReportType     = "report_type"
)

const (
	URLQueryParamPage       = "page"
	URLQueryParamPageSize   = "page_size"
	URLQueryParamSearch     = "search"
	URLQueryParamRole       = "role"
	URLQueryParamDepartment = "department"
	URLQueryParamDoctor     = "doctor"
	URLQueryParamStatus     = "status"
	URLQueryParamBefore     = "before"
	URLQueryParamAfter      = "after"
	URLQueryParamOn         = "on"
	URLQueryParamFrom       = "from"
	URLQueryParamTo         = "to"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

// Notification titles sent alongside appointment lifecycle events.
const (
	NotificationTitleAppointmentBooked    = "New Appointment"
	NotificationTitleAppointmentBookedAr  = "موعد جديد"
	NotificationTitleAppointmentUpdated   = "Appointment Updated"
	NotificationTitleAppointmentUpdatedAr = "تم تحديث الموعد"
	NotificationTitleAppointmentReminder   = "Appointment Reminder"
	NotificationTitleAppointmentReminderAr = "تذكير بالموعد"
	NotificationTitleAppointmentCanceled   = "Appointment Canceled"
	NotificationTitleAppointmentCanceledAr = "تم إلغاء الموعد"
)

const (
	// PatientModificationWindow is the minimum remaining time before an
	// appointment during which its patient may still reschedule or cancel.
	PatientModificationWindowInHours = 24
)

const (
	ReportCachePeriodInHours       = 24 * 7
	ReportRegenerateGuardInSeconds = 60
)
