package reviews

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

type reviewUsecase struct {
	ReviewRepository      contracts.ReviewRepository
	UserRepository        contracts.UserRepository
	DepartmentRepository  contracts.DepartmentRepository
	AppointmentRepository contracts.AppointmentRepository
	Log                   *zap.Logger
}

var (
	reviewUsecaseInstance contracts.ReviewUsecase
	onceReviewUsecase     sync.Once
)

func NewReviewUsecase(
	reviewRepository contracts.ReviewRepository,
	userRepository contracts.UserRepository,
	departmentRepository contracts.DepartmentRepository,
	appointmentRepository contracts.AppointmentRepository,
	logger *zap.Logger,
) contracts.ReviewUsecase {
	onceReviewUsecase.Do(func() {
		reviewUsecaseInstance = &reviewUsecase{
			ReviewRepository:      reviewRepository,
			UserRepository:        userRepository,
			DepartmentRepository:  departmentRepository,
			AppointmentRepository: appointmentRepository,
			Log:                   logger,
		}
	})
	return reviewUsecaseInstance
}

func (uc *reviewUsecase) CreateReview(ctx context.Context, session *models.Session, request *requests.CreateReview) (*responses.Review, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reviewUsecase.CreateReview called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, session.UserID),
	)

	patientID, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	doctorID, err := primitive.ObjectIDFromHex(request.DoctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	doctor, err := uc.UserRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil || !doctor.IsDoctor() {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	departmentID, err := primitive.ObjectIDFromHex(request.DepartmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	department, err := uc.DepartmentRepository.FindByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, exceptions.ErrDepartmentNotExist(nil)
	}

	appointmentID, err := primitive.ObjectIDFromHex(request.AppointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(nil)
	}
	if appointment.PatientID != patientID {
		return nil, exceptions.ErrAppointmentNotOwnedByPatient(nil)
	}

	now := time.Now()
	review := &models.Review{
		PatientID:     patientID,
		DoctorID:      doctorID,
		DepartmentID:  departmentID,
		AppointmentID: appointmentID,
		Rating:        request.Rating,
		Feedback:      request.Feedback,
		TimeModel:     models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	created, err := uc.ReviewRepository.CreateReview(ctx, review)
	if err != nil {
		uc.Log.Error("reviewUsecase.CreateReview error creating review",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return utils.ToReviewResponse(created), nil
}

func (uc *reviewUsecase) GetReviews(ctx context.Context, doctorID, departmentID string, pagination *requests.Pagination) ([]responses.Review, int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reviewUsecase.GetReviews called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	scope := &contracts.ReviewScope{}
	if doctorID != "" {
		objectID, err := primitive.ObjectIDFromHex(doctorID)
		if err != nil {
			return nil, 0, exceptions.ErrMongoDBNotObjectID(err)
		}
		scope.DoctorID = &objectID
	}
	if departmentID != "" {
		objectID, err := primitive.ObjectIDFromHex(departmentID)
		if err != nil {
			return nil, 0, exceptions.ErrMongoDBNotObjectID(err)
		}
		scope.DepartmentID = &objectID
	}

	reviews, total, err := uc.ReviewRepository.FindAll(ctx, scope, pagination)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.Review, 0, len(reviews))
	for i := range reviews {
		result = append(result, *utils.ToReviewResponse(&reviews[i]))
	}
	return result, total, nil
}

func (uc *reviewUsecase) UpdateReview(ctx context.Context, session *models.Session, reviewID string, request *requests.UpdateReview) (*responses.Review, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reviewUsecase.UpdateReview called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	review, err := uc.findOwnReview(ctx, session, reviewID)
	if err != nil {
		return nil, err
	}

	if request.Rating != nil {
		review.Rating = *request.Rating
	}
	if request.Feedback != "" {
		review.Feedback = request.Feedback
	}

	review.UpdatedAt = time.Now()
	if err := uc.ReviewRepository.UpdateReview(ctx, review); err != nil {
		return nil, err
	}
	return utils.ToReviewResponse(review), nil
}

func (uc *reviewUsecase) DeleteReview(ctx context.Context, session *models.Session, reviewID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reviewUsecase.DeleteReview called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	review, err := uc.findOwnReview(ctx, session, reviewID)
	if err != nil {
		return err
	}

	return uc.ReviewRepository.DeleteByID(ctx, review.ID)
}

// findOwnReview loads the review and enforces ownership: patients can only
// touch their own reviews, admins any.
func (uc *reviewUsecase) findOwnReview(ctx context.Context, session *models.Session, reviewID string) (*models.Review, error) {
	objectID, err := primitive.ObjectIDFromHex(reviewID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	review, err := uc.ReviewRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, exceptions.ErrReviewNotExist(nil)
	}
	if !session.IsAdmin() && review.PatientID.Hex() != session.UserID {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}
	return review, nil
}
