package users

import (
	"context"
	"sync"
	"time"

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

type userUsecase struct {
	UserRepository       contracts.UserRepository
	DepartmentRepository contracts.DepartmentRepository
	Log                  *zap.Logger
}

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

func NewUserUsecase(
	userRepository contracts.UserRepository,
	departmentRepository contracts.DepartmentRepository,
	logger *zap.Logger,
) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		userUsecaseInstance = &userUsecase{
			UserRepository:       userRepository,
			DepartmentRepository: departmentRepository,
			Log:                  logger,
		}
	})
	return userUsecaseInstance
}

// ensureContactUnique rejects the create when another user already holds
// the email or phone.
func (uc *userUsecase) ensureContactUnique(ctx context.Context, email, phone string) error {
	existing, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return exceptions.ErrEmailAlreadyExist(nil)
	}

	existing, err = uc.UserRepository.FindByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if existing != nil {
		return exceptions.ErrPhoneAlreadyExist(nil)
	}
	return nil
}

func (uc *userUsecase) resolveDepartment(ctx context.Context, departmentID string) (*models.Department, error) {
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
	return department, nil
}

func (uc *userUsecase) CreateDoctor(ctx context.Context, session *models.Session, request *requests.CreateDoctor) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := uc.ensureContactUnique(ctx, request.Email, request.Phone); err != nil {
		return nil, err
	}

	department, err := uc.resolveDepartment(ctx, request.DepartmentID)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	doctor := &models.User{
		Role:             constvars.RoleDoctor,
		Name:             request.Name,
		Email:            request.Email,
		Password:         hashedPassword,
		Phone:            request.Phone,
		Gender:           request.Gender,
		DepartmentID:     &department.ID,
		Specialization:   request.Specialization,
		SpecializationAr: request.SpecializationAr,
		Shift: &models.Shift{
			Days:      request.Shift.Days,
			StartTime: request.Shift.StartTime,
			EndTime:   request.Shift.EndTime,
		},
		TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	created, err := uc.UserRepository.CreateUser(ctx, doctor)
	if err != nil {
		uc.Log.Error("userUsecase.CreateDoctor error creating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return utils.ToUserResponse(created), nil
}

func (uc *userUsecase) CreateNurse(ctx context.Context, session *models.Session, request *requests.CreateNurse) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.CreateNurse called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := uc.ensureContactUnique(ctx, request.Email, request.Phone); err != nil {
		return nil, err
	}

	department, err := uc.resolveDepartment(ctx, request.DepartmentID)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	nurse := &models.User{
		Role:         constvars.RoleNurse,
		Name:         request.Name,
		Email:        request.Email,
		Password:     hashedPassword,
		Phone:        request.Phone,
		Gender:       request.Gender,
		DepartmentID: &department.ID,
		Shift: &models.Shift{
			Days:      request.Shift.Days,
			StartTime: request.Shift.StartTime,
			EndTime:   request.Shift.EndTime,
		},
		TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	created, err := uc.UserRepository.CreateUser(ctx, nurse)
	if err != nil {
		uc.Log.Error("userUsecase.CreateNurse error creating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return utils.ToUserResponse(created), nil
}

func (uc *userUsecase) CreateStaff(ctx context.Context, session *models.Session, request *requests.CreateStaff) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.CreateStaff called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := uc.ensureContactUnique(ctx, request.Email, request.Phone); err != nil {
		return nil, err
	}

	department, err := uc.resolveDepartment(ctx, request.DepartmentID)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	staff := &models.User{
		Role:         constvars.RoleStaff,
		Name:         request.Name,
		Email:        request.Email,
		Password:     hashedPassword,
		Phone:        request.Phone,
		Gender:       request.Gender,
		DepartmentID: &department.ID,
		JobTitle:     request.JobTitle,
		JobTitleAr:   request.JobTitleAr,
		Shift: &models.Shift{
			Days:      request.Shift.Days,
			StartTime: request.Shift.StartTime,
			EndTime:   request.Shift.EndTime,
		},
		TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	created, err := uc.UserRepository.CreateUser(ctx, staff)
	if err != nil {
		uc.Log.Error("userUsecase.CreateStaff error creating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return utils.ToUserResponse(created), nil
}

func (uc *userUsecase) GetUsers(ctx context.Context, session *models.Session, filter *requests.UserFilter, pagination *requests.Pagination) ([]responses.User, int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.GetUsers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	users, total, err := uc.UserRepository.FindAll(ctx, filter, pagination)
	if err != nil {
		uc.Log.Error("userUsecase.GetUsers error listing users",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	result := make([]responses.User, 0, len(users))
	for i := range users {
		result = append(result, *utils.ToUserResponse(&users[i]))
	}
	return result, total, nil
}

func (uc *userUsecase) GetUserByID(ctx context.Context, session *models.Session, userID string) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.GetUserByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	// Only admins may read arbitrary profiles.
	if !session.IsAdmin() && session.UserID != userID {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	user, err := uc.UserRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return utils.ToUserResponse(user), nil
}

func (uc *userUsecase) UpdateUser(ctx context.Context, session *models.Session, userID string, request *requests.UpdateUser) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UpdateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	if !session.IsAdmin() && session.UserID != userID {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	user, err := uc.UserRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	applyUserUpdate(user, request)

	// Department moves are admin-only and must reference a real department.
	if request.DepartmentID != "" && session.IsAdmin() {
		department, err := uc.resolveDepartment(ctx, request.DepartmentID)
		if err != nil {
			return nil, err
		}
		user.DepartmentID = &department.ID
	}

	user.UpdatedAt = time.Now()
	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		uc.Log.Error("userUsecase.UpdateUser error updating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return nil, err
	}
	return utils.ToUserResponse(user), nil
}

// applyUserUpdate copies over the mutable fields that apply to the target's
// role; fields for other roles are silently ignored.
func applyUserUpdate(user *models.User, request *requests.UpdateUser) {
	if request.Name != "" {
		user.Name = request.Name
	}
	if request.Phone != "" {
		user.Phone = request.Phone
	}
	if request.Gender != "" {
		user.Gender = request.Gender
	}

	switch user.Role {
	case constvars.RoleDoctor:
		if request.Specialization != "" {
			user.Specialization = request.Specialization
		}
		if request.SpecializationAr != "" {
			user.SpecializationAr = request.SpecializationAr
		}
	case constvars.RoleStaff:
		if request.JobTitle != "" {
			user.JobTitle = request.JobTitle
		}
		if request.JobTitleAr != "" {
			user.JobTitleAr = request.JobTitleAr
		}
	case constvars.RolePatient:
		if request.BloodType != "" {
			user.BloodType = request.BloodType
		}
		if request.Allergies != nil {
			user.Allergies = request.Allergies
		}
	}

	if request.Shift != nil && user.Shift != nil {
		user.Shift = &models.Shift{
			Days:      request.Shift.Days,
			StartTime: request.Shift.StartTime,
			EndTime:   request.Shift.EndTime,
		}
	}
}

func (uc *userUsecase) DeleteUser(ctx context.Context, session *models.Session, userID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.DeleteUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	user, err := uc.UserRepository.FindByID(ctx, objectID)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotExist(nil)
	}

	return uc.UserRepository.DeleteByID(ctx, objectID)
}
