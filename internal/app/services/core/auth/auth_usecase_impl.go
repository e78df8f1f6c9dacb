package auth

import (
	"context"
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

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository: userRepository,
			SessionService: sessionService,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.UserSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.RegisterPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	existing, err = uc.UserRepository.FindByPhone(ctx, request.Phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrPhoneAlreadyExist(nil)
	}

	birthDate, err := utils.ParseDate(request.BirthDate)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	patient := &models.User{
		Role:      constvars.RolePatient,
		Name:      request.Name,
		Email:     request.Email,
		Password:  hashedPassword,
		Phone:     request.Phone,
		Gender:    request.Gender,
		BirthDate: &birthDate,
		BloodType: request.BloodType,
		Allergies: request.Allergies,
		TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	created, err := uc.UserRepository.CreateUser(ctx, patient)
	if err != nil {
		uc.Log.Error("authUsecase.RegisterPatient error creating patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	summary := utils.ToUserSummary(created)
	return &summary, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	session := &models.Session{
		SessionID: uuid.NewString(),
		UserID:    user.ID.Hex(),
		Role:      user.Role,
		ExpiresAt: time.Now().Add(time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour),
	}
	if err := uc.SessionService.CreateSession(ctx, session); err != nil {
		uc.Log.Error("authUsecase.Login error storing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	accessToken, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	return &responses.Login{
		AccessToken: accessToken,
		User:        utils.ToUserSummary(user),
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return uc.SessionService.DeleteSession(ctx, session.SessionID)
}

func (uc *authUsecase) GetProfile(ctx context.Context, session *models.Session) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	objectID, err := primitive.ObjectIDFromHex(session.UserID)
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
