package reports

import (
	"context"
	"net/http"
	"time"

	"shifa-service/internal/app/contracts"
	"shifa-service/internal/app/delivery/http/middlewares"
	"shifa-service/internal/pkg/constvars"
	"shifa-service/internal/pkg/dto/requests"
	"shifa-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReportController struct {
	ReportUsecase contracts.ReportUsecase
	Log           *zap.Logger
}

func NewReportController(reportUsecase contracts.ReportUsecase, logger *zap.Logger) *ReportController {
	return &ReportController{
		ReportUsecase: reportUsecase,
		Log:           logger,
	}
}

func (ctrl *ReportController) GetReport(w http.ResponseWriter, r *http.Request) {
	reportType := chi.URLParam(r, constvars.URLParamReportType)
	dateRange := &requests.ReportRange{
		From: r.URL.Query().Get(constvars.URLQueryParamFrom),
		To:   r.URL.Query().Get(constvars.URLQueryParamTo),
	}

	// Report generation may call out to the AI service, so this handler gets
	// a longer deadline than the usual CRUD endpoints.
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	session := middlewares.SessionFromContext(r.Context())
	response, err := ctrl.ReportUsecase.GetReport(ctx, session, reportType, dateRange)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReportSuccessMessage, response)
}
