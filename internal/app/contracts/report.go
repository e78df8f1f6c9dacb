package contracts

import (
	"context"
	"time"

	"shifa-service/internal/app/models"
	"shifa-service/internal/pkg/dto/requests"
	"shifa-service/internal/pkg/dto/responses"
)

type ReportUsecase interface {
	GetReport(ctx context.Context, session *models.Session, reportType string, dateRange *requests.ReportRange) (*responses.Report, error)
}

type ReportCacheRepository interface {
	FindLatest(ctx context.Context, reportType, from, to string) (*models.ReportCache, error)
	SaveReport(ctx context.Context, cache *models.ReportCache) error
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// ReportGenerator produces the narrative body of an analytics report from
// the raw review set, typically by calling an external language model.
type ReportGenerator interface {
	GenerateReport(ctx context.Context, reportType string, reviews []models.Review) (*models.ReportData, error)
}
