package contracts

import (
	"context"
	"time"

	"shifa-service/internal/app/models"
	"shifa-service/internal/pkg/dto/requests"
	"shifa-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewUsecase interface {
	CreateReview(ctx context.Context, session *models.Session, request *requests.CreateReview) (*responses.Review, error)
	GetReviews(ctx context.Context, doctorID, departmentID string, pagination *requests.Pagination) ([]responses.Review, int64, error)
	UpdateReview(ctx context.Context, session *models.Session, reviewID string, request *requests.UpdateReview) (*responses.Review, error)
	DeleteReview(ctx context.Context, session *models.Session, reviewID string) error
}

// ReviewScope narrows a review listing; nil fields mean no restriction.
type ReviewScope struct {
	DoctorID     *primitive.ObjectID
	DepartmentID *primitive.ObjectID
}

type ReviewRepository interface {
	CreateReview(ctx context.Context, review *models.Review) (*models.Review, error)
	FindByID(ctx context.Context, reviewID primitive.ObjectID) (*models.Review, error)
	FindAll(ctx context.Context, scope *ReviewScope, pagination *requests.Pagination) ([]models.Review, int64, error)
	FindBetween(ctx context.Context, from, to *time.Time) ([]models.Review, error)
	RatingSummaryByDepartmentID(ctx context.Context, departmentID primitive.ObjectID) (average float64, count int64, err error)
	UpdateReview(ctx context.Context, review *models.Review) error
	DeleteByID(ctx context.Context, reviewID primitive.ObjectID) error
}
