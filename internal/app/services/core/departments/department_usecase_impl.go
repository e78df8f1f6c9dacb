package departments

import (
	"context"
	"sort"
	"sync"
	"time"

	"shifa-service/internal/app/config"
	"shifa-service/internal/app/contracts"
	"shifa-service/internal/app/models"
	"shifa-service/internal/pkg/constvars"
	"shifa-service/internal/pkg/dto/requests"
	"shifa-service/internal/pkg/dto/responses"
	"shifa-service/internal/pkg/exceptions"
	"shifa-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var allowedImageFormats = []string{".jpg", ".jpeg", ".png"}

type departmentUsecase struct {
	DepartmentRepository contracts.DepartmentRepository
	UserRepository       contracts.UserRepository
	ReviewRepository     contracts.ReviewRepository
	Storage              contracts.Storage
	InternalConfig       *config.InternalConfig
	DriverConfig         *config.DriverConfig
	Log                  *zap.Logger
}

var (
	departmentUsecaseInstance contracts.DepartmentUsecase
	onceDepartmentUsecase     sync.Once
)

func NewDepartmentUsecase(
	departmentRepository contracts.DepartmentRepository,
	userRepository contracts.UserRepository,
	reviewRepository contracts.ReviewRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	driverConfig *config.DriverConfig,
	logger *zap.Logger,
) contracts.DepartmentUsecase {
	onceDepartmentUsecase.Do(func() {
		departmentUsecaseInstance = &departmentUsecase{
			DepartmentRepository: departmentRepository,
			UserRepository:       userRepository,
			ReviewRepository:     reviewRepository,
			Storage:              storage,
			InternalConfig:       internalConfig,
			DriverConfig:         driverConfig,
			Log:                  logger,
		}
	})
	return departmentUsecaseInstance
}

func (uc *departmentUsecase) CreateDepartment(ctx context.Context, session *models.Session, request *requests.CreateDepartment) (*responses.Department, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("departmentUsecase.CreateDepartment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existing, err := uc.DepartmentRepository.FindByName(ctx, request.Name, request.NameAr)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrDepartmentNameTaken(nil)
	}

	now := time.Now()
	department := &models.Department{
		Name:           request.Name,
		NameAr:         request.NameAr,
		Description:    request.Description,
		DescriptionAr:  request.DescriptionAr,
		AppointmentFee: request.AppointmentFee,
		TimeModel:      models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	if request.Image != "" {
		objectName, err := uc.uploadImage(ctx, request.Image, request.Name)
		if err != nil {
			return nil, err
		}
		department.Image = objectName
	}

	created, err := uc.DepartmentRepository.CreateDepartment(ctx, department)
	if err != nil {
		uc.Log.Error("departmentUsecase.CreateDepartment error creating department",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return uc.buildDepartmentResponse(ctx, created, false)
}

func (uc *departmentUsecase) uploadImage(ctx context.Context, encodedImage, namePrefix string) (string, error) {
	imageData, extension, err := utils.DecodeBase64Image(encodedImage)
	if err != nil {
		return "", exceptions.ErrImageValidation(err)
	}
	if err := utils.ValidateImageFormat(extension, allowedImageFormats); err != nil {
		return "", exceptions.ErrImageValidation(err)
	}
	if err := utils.ValidateImageSize(imageData, uc.InternalConfig.App.DepartmentImageMaxUploadSizeInMB); err != nil {
		return "", exceptions.ErrImageValidation(err)
	}

	fileName := utils.GenerateFileName("department", namePrefix, extension)
	return uc.Storage.UploadBase64Image(ctx, imageData, uc.DriverConfig.Minio.BucketName, fileName, extension)
}

func (uc *departmentUsecase) GetDepartments(ctx context.Context, pagination *requests.Pagination) ([]responses.Department, int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("departmentUsecase.GetDepartments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	departments, total, err := uc.DepartmentRepository.FindAll(ctx, pagination)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.Department, 0, len(departments))
	for i := range departments {
		// Listings skip the doctor roster; detail responses include it.
		response, err := uc.buildDepartmentResponse(ctx, &departments[i], false)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *response)
	}
	return result, total, nil
}

func (uc *departmentUsecase) GetDepartmentByID(ctx context.Context, departmentID string) (*responses.Department, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("departmentUsecase.GetDepartmentByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDepartmentIDKey, departmentID),
	)

	objectID, err := primitive.ObjectIDFromHex(departmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	department, err := uc.DepartmentRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, exceptions.ErrDepartmentNotExist(nil)
	}

	return uc.buildDepartmentResponse(ctx, department, true)
}

// buildDepartmentResponse computes the read-time aggregates from the users
// and reviews collections; nothing derived is stored on the document.
func (uc *departmentUsecase) buildDepartmentResponse(ctx context.Context, department *models.Department, includeDoctors bool) (*responses.Department, error) {
	staffRoles := []string{constvars.RoleDoctor, constvars.RoleNurse, constvars.RoleStaff}
	staffCount, err := uc.UserRepository.CountByDepartmentID(ctx, department.ID, staffRoles)
	if err != nil {
		return nil, err
	}

	averageRating, reviewCount, err := uc.ReviewRepository.RatingSummaryByDepartmentID(ctx, department.ID)
	if err != nil {
		return nil, err
	}

	doctors, err := uc.UserRepository.FindDoctorsByDepartmentID(ctx, department.ID)
	if err != nil {
		return nil, err
	}

	response := &responses.Department{
		ID:              department.ID.Hex(),
		Name:            department.Name,
		NameAr:          department.NameAr,
		Description:     department.Description,
		DescriptionAr:   department.DescriptionAr,
		AppointmentFee:  department.AppointmentFee,
		StaffCount:      int(staffCount),
		NumberOfReviews: int(reviewCount),
		AverageRating:   averageRating,
		AvailableDays:   availableDays(doctors),
	}

	if department.Image != "" {
		expiry := time.Duration(uc.InternalConfig.App.DepartmentImageURLExpiryInHours) * time.Hour
		imageURL, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.DriverConfig.Minio.BucketName, department.Image, expiry)
		if err != nil {
			return nil, err
		}
		response.Image = imageURL
	}

	if includeDoctors {
		doctorResponses := make([]responses.Doctor, 0, len(doctors))
		for i := range doctors {
			doctor := &doctors[i]
			doctorResponse := responses.Doctor{
				ID:               doctor.ID.Hex(),
				Name:             doctor.Name,
				Specialization:   doctor.Specialization,
				SpecializationAr: doctor.SpecializationAr,
				AppointmentCount: doctor.AppointmentCount,
			}
			if doctor.Shift != nil {
				doctorResponse.ShiftDays = doctor.Shift.Days
			}
			doctorResponses = append(doctorResponses, doctorResponse)
		}
		response.Doctors = doctorResponses
	}

	return response, nil
}

// availableDays is the union of the doctors' shift days, sorted for a
// stable response.
func availableDays(doctors []models.User) []string {
	seen := make(map[string]bool)
	for i := range doctors {
		if doctors[i].Shift == nil {
			continue
		}
		for _, day := range doctors[i].Shift.Days {
			seen[day] = true
		}
	}

	days := make([]string, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}

func (uc *departmentUsecase) UpdateDepartment(ctx context.Context, session *models.Session, departmentID string, request *requests.UpdateDepartment) (*responses.Department, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("departmentUsecase.UpdateDepartment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDepartmentIDKey, departmentID),
	)

	objectID, err := primitive.ObjectIDFromHex(departmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	department, err := uc.DepartmentRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, exceptions.ErrDepartmentNotExist(nil)
	}

	if request.Name != "" || request.NameAr != "" {
		name := request.Name
		if name == "" {
			name = department.Name
		}
		nameAr := request.NameAr
		if nameAr == "" {
			nameAr = department.NameAr
		}

		// The $or over both names would match this department through its
		// own unchanged field, so the query has to exclude it explicitly.
		existing, err := uc.DepartmentRepository.FindByNameExcluding(ctx, name, nameAr, department.ID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, exceptions.ErrDepartmentNameTaken(nil)
		}

		department.Name = name
		department.NameAr = nameAr
	}
	if request.Description != "" {
		department.Description = request.Description
	}
	if request.DescriptionAr != "" {
		department.DescriptionAr = request.DescriptionAr
	}
	if request.AppointmentFee != nil {
		department.AppointmentFee = *request.AppointmentFee
	}
	if request.Image != "" {
		objectName, err := uc.uploadImage(ctx, request.Image, department.Name)
		if err != nil {
			return nil, err
		}
		department.Image = objectName
	}

	department.UpdatedAt = time.Now()
	if err := uc.DepartmentRepository.UpdateDepartment(ctx, department); err != nil {
		uc.Log.Error("departmentUsecase.UpdateDepartment error updating department",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDepartmentIDKey, departmentID),
			zap.Error(err),
		)
		return nil, err
	}

	return uc.buildDepartmentResponse(ctx, department, false)
}

func (uc *departmentUsecase) DeleteDepartment(ctx context.Context, session *models.Session, departmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("departmentUsecase.DeleteDepartment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDepartmentIDKey, departmentID),
	)

	objectID, err := primitive.ObjectIDFromHex(departmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	department, err := uc.DepartmentRepository.FindByID(ctx, objectID)
	if err != nil {
		return err
	}
	if department == nil {
		return exceptions.ErrDepartmentNotExist(nil)
	}

	return uc.DepartmentRepository.DeleteByID(ctx, objectID)
}
