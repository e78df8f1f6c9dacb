package constvars

const (
	// Auth messages
	RegisterSuccessMessage = "patient registered successfully"
	LoginSuccessMessage    = "login successful"
	LogoutSuccessMessage   = "logout successful"
	GetProfileSuccess      = "profile retrieved successfully"

	// User messages
	CreateUserSuccessMessage = "user created successfully"
	GetUsersSuccessMessage   = "users retrieved successfully"
	GetUserSuccessMessage    = "user retrieved successfully"
	UpdateUserSuccessMessage = "user updated successfully"
	DeleteUserSuccessMessage = "user deleted successfully"

	// Department messages
	CreateDepartmentSuccessMessage = "department created successfully"
	GetDepartmentsSuccessMessage   = "departments retrieved successfully"
	GetDepartmentSuccessMessage    = "department retrieved successfully"
	UpdateDepartmentSuccessMessage = "department updated successfully"
	DeleteDepartmentSuccessMessage = "department deleted successfully"

	// Appointment messages
	CreateAppointmentSuccessMessage = "appointment created successfully"
	GetAppointmentsSuccessMessage   = "appointments retrieved successfully"
	GetAppointmentSuccessMessage    = "appointment retrieved successfully"
	UpdateAppointmentSuccessMessage = "appointment updated successfully"
	DeleteAppointmentSuccessMessage = "appointment deleted successfully"

	// Notification messages
	GetNotificationsSuccessMessage   = "notifications retrieved successfully"
	NotificationReadSuccessMessage   = "notification marked as read"
	NotificationHideSuccessMessage   = "notification hidden"
	NotificationsReadAllSuccess      = "all notifications marked as read"
	NotificationsHideAllSuccess      = "all notifications hidden"

	// Review messages
	CreateReviewSuccessMessage = "review created successfully"
	GetReviewsSuccessMessage   = "reviews retrieved successfully"
	GetReviewSuccessMessage    = "review retrieved successfully"
	UpdateReviewSuccessMessage = "review updated successfully"
	DeleteReviewSuccessMessage = "review deleted successfully"

	// Report messages
	GetReportSuccessMessage = "report generated successfully"
)
