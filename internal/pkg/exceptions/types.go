package exceptions

import (
	"fmt"
	"shifa-service/internal/pkg/constvars"
)

var (
	// Input and parsing
	ErrInputValidation = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotParseDate = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseDate)
	}
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return WrapWithError(err, constvars.StatusNotFound, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrImageValidation = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevImageValidationFailed)
	}

	// Auth
	ErrHashPassword = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevFailedToHashPassword)
	}
	ErrInvalidEmailOrPassword = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientInvalidEmailOrPassword, constvars.ErrDevInvalidCredentials)
	}
	ErrTokenMissing = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrSessionInvalid = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthInvalidSession)
	}
	ErrRoleNotAllowed = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevRoleNotAllowed)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}

	// Users
	ErrEmailAlreadyExist = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusConflict, constvars.ErrClientEmailAlreadyExists, constvars.ErrDevEmailAlreadyExists)
	}
	ErrPhoneAlreadyExist = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusConflict, constvars.ErrClientPhoneAlreadyExists, constvars.ErrDevPhoneAlreadyExists)
	}
	ErrUserNotExist = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusNotFound, constvars.ErrClientUserNotFound, constvars.ErrDevUserNotExists)
	}

	// Departments
	ErrDepartmentNotExist = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusNotFound, constvars.ErrClientDepartmentNotFound, constvars.ErrDevDepartmentNotExists)
	}
	ErrDepartmentNameTaken = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusConflict, constvars.ErrClientDepartmentAlreadyExists, constvars.ErrDevDepartmentNameTaken)
	}
	ErrNoDoctorsAvailable = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusNotFound, constvars.ErrClientNoDoctorsAvailable, constvars.ErrDevDoctorPoolEmpty)
	}

	// Appointments
	ErrAppointmentNotExist = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusNotFound, constvars.ErrClientAppointmentNotFound, constvars.ErrDevAppointmentNotExists)
	}
	ErrAppointmentAccessDenied = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusForbidden, constvars.ErrClientAppointmentAccessDenied, constvars.ErrDevAppointmentAccessDenied)
	}
	ErrAppointmentNotAssignedToDoctor = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusForbidden, constvars.ErrClientAppointmentNotYours, constvars.ErrDevAppointmentAccessDenied)
	}
	ErrAppointmentNotOwnedByPatient = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusForbidden, constvars.ErrClientAppointmentNotOwnedByYou, constvars.ErrDevAppointmentAccessDenied)
	}
	ErrAppointmentWindowClosed = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusForbidden, constvars.ErrClientAppointmentWindowClosed, constvars.ErrDevAppointmentWindowClosed)
	}
	ErrAppointmentDateInPast = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientAppointmentDateInPast, constvars.ErrDevAppointmentDateInPast)
	}
	ErrNoValidFieldsToUpdate = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientNoValidFieldsToUpdate, constvars.ErrDevAppointmentNoFields)
	}

	// Reviews and notifications
	ErrReviewNotExist = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusNotFound, constvars.ErrClientReviewNotFound, constvars.ErrDevReviewNotExists)
	}
	ErrNotificationNotExist = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusNotFound, constvars.ErrClientNotificationNotFound, constvars.ErrDevNotificationNotExists)
	}

	// Reports
	ErrReportTypeUnknown = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientReportTypeUnknown, constvars.ErrDevReportTypeUnknown)
	}
	ErrReportRegenerateGuard = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientReportNotReady, constvars.ErrDevReportRegenerateGuard)
	}
	ErrAIServiceRequest = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientReportGeneration, constvars.ErrDevAIServiceRequest)
	}
	ErrAIServiceTimeout = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientReportGeneration, constvars.ErrDevAIServiceTimeout)
	}
	ErrAIServiceMalformedResponse = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientReportGeneration, constvars.ErrDevAIServiceMalformedResponse)
	}

	// MongoDB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteDocument)
	}
	ErrMongoDBCountDocuments = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToCountDocuments)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDocuments)
	}
	ErrMongoDBNotObjectID = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusNotFound, constvars.ErrClientCannotProcessRequest, constvars.ErrDevDBStringNotObjectID)
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetFailed)
	}
	ErrRedisGet = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetFailed)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteFailed)
	}

	// Messaging
	ErrPushPublish = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPushPublishFailed)
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}
)
