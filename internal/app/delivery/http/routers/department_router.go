package routers

import (
	"fmt"

	"shifa-service/internal/app/delivery/http/middlewares"
	"shifa-service/internal/app/services/core/departments"
	"shifa-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDepartmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, departmentController *departments.DepartmentController) {
	departmentIDPath := fmt.Sprintf("/{%s}", constvars.URLParamDepartmentID)

	adminOnly := middlewares.RequireRoles(constvars.RoleAdmin)

	router.With(middlewares.Authenticate).Get("/", departmentController.GetDepartments)
	router.With(middlewares.Authenticate).Get(departmentIDPath, departmentController.GetDepartmentByID)
	router.With(middlewares.Authenticate, adminOnly).Post("/", departmentController.CreateDepartment)
	router.With(middlewares.Authenticate, adminOnly).Put(departmentIDPath, departmentController.UpdateDepartment)
	router.With(middlewares.Authenticate, adminOnly).Delete(departmentIDPath, departmentController.DeleteDepartment)
}
