package routers

import (
	"fmt"

	"shifa-service/internal/app/delivery/http/middlewares"
	"shifa-service/internal/app/services/core/reports"
	"shifa-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachReportRoutes(router chi.Router, middlewares *middlewares.Middlewares, reportController *reports.ReportController) {
	reportTypePath := fmt.Sprintf("/{%s}", constvars.URLParamReportType)

	adminOnly := middlewares.RequireRoles(constvars.RoleAdmin)

	router.With(middlewares.Authenticate, adminOnly).Get(reportTypePath, reportController.GetReport)
}
