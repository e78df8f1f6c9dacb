package reports

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"shifa-service/internal/app/contracts"
	"shifa-service/internal/app/models"
	"shifa-service/internal/pkg/constvars"
	"shifa-service/internal/pkg/dto/requests"
	"shifa-service/internal/pkg/dto/responses"
	"shifa-service/internal/pkg/exceptions"
	"shifa-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type reportUsecase struct {
	ReportCacheRepository contracts.ReportCacheRepository
	ReviewRepository      contracts.ReviewRepository
	ReportGenerator       contracts.ReportGenerator
	RedisRepository       contracts.RedisRepository
	Log                   *zap.Logger
}

var (
	reportUsecaseInstance contracts.ReportUsecase
	onceReportUsecase     sync.Once
)

func NewReportUsecase(
	reportCacheRepository contracts.ReportCacheRepository,
	reviewRepository contracts.ReviewRepository,
	reportGenerator contracts.ReportGenerator,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.ReportUsecase {
	onceReportUsecase.Do(func() {
		reportUsecaseInstance = &reportUsecase{
			ReportCacheRepository: reportCacheRepository,
			ReviewRepository:      reviewRepository,
			ReportGenerator:       reportGenerator,
			RedisRepository:       redisRepository,
			Log:                   logger,
		}
	})
	return reportUsecaseInstance
}

func (uc *reportUsecase) GetReport(ctx context.Context, session *models.Session, reportType string, dateRange *requests.ReportRange) (*responses.Report, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reportUsecase.GetReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportTypeKey, reportType),
	)

	if reportType != constvars.ReportTypePerformance && reportType != constvars.ReportTypeComplaints {
		return nil, exceptions.ErrReportTypeUnknown(errors.New("got report type: " + reportType))
	}

	from, to, err := parseRange(dateRange)
	if err != nil {
		return nil, err
	}

	cached, err := uc.ReportCacheRepository.FindLatest(ctx, reportType, dateRange.From, dateRange.To)
	if err != nil {
		return nil, err
	}
	if cached != nil && time.Since(cached.UpdatedAt) < constvars.ReportCachePeriodInHours*time.Hour {
		return buildReportResponse(reportType, dateRange, &cached.Data, true), nil
	}

	// Stale or missing: claim the regenerate slot so concurrent requests
	// for the same key do not all call the AI service.
	guardKey := fmt.Sprintf("report_guard:%s:%s:%s", reportType, dateRange.From, dateRange.To)
	acquired, err := uc.RedisRepository.TrySetNX(ctx, guardKey, requestID, constvars.ReportRegenerateGuardInSeconds*time.Second)
	if err != nil {
		return nil, err
	}
	if !acquired {
		if cached != nil {
			return buildReportResponse(reportType, dateRange, &cached.Data, true), nil
		}
		return nil, exceptions.ErrReportRegenerateGuard(errors.New("guard held for key " + guardKey))
	}

	reviews, err := uc.ReviewRepository.FindBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	data, err := uc.ReportGenerator.GenerateReport(ctx, reportType, reviews)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	cache := &models.ReportCache{
		Type: reportType,
		From: dateRange.From,
		To:   dateRange.To,
		Data: *data,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := uc.ReportCacheRepository.SaveReport(ctx, cache); err != nil {
		return nil, err
	}

	uc.purgeExpiredCaches()

	return buildReportResponse(reportType, dateRange, data, false), nil
}

// purgeExpiredCaches drops cache entries well past their useful life. Runs
// detached; a failed purge only costs disk space.
func (uc *reportUsecase) purgeExpiredCaches() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		cutoff := time.Now().Add(-2 * constvars.ReportCachePeriodInHours * time.Hour)
		purged, err := uc.ReportCacheRepository.PurgeOlderThan(ctx, cutoff)
		if err != nil {
			uc.Log.Warn("report cache purge failed", zap.Error(err))
			return
		}
		if purged > 0 {
			uc.Log.Info("purged expired report caches", zap.Int64("count", purged))
		}
	}()
}

func parseRange(dateRange *requests.ReportRange) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if dateRange.From != "" {
		parsed, err := utils.ParseDate(dateRange.From)
		if err != nil {
			return nil, nil, err
		}
		from = &parsed
	}
	if dateRange.To != "" {
		parsed, err := utils.ParseDate(dateRange.To)
		if err != nil {
			return nil, nil, err
		}
		to = &parsed
	}
	return from, to, nil
}

func buildReportResponse(reportType string, dateRange *requests.ReportRange, data *models.ReportData, cached bool) *responses.Report {
	return &responses.Report{
		Type:          reportType,
		From:          dateRange.From,
		To:            dateRange.To,
		Overview:      data.Overview,
		Pros:          data.Pros,
		Cons:          data.Cons,
		AverageRating: data.AverageRating,
		TotalReviews:  data.TotalReviews,
		Cached:        cached,
	}
}
