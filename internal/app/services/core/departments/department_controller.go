package departments

import (
	"context"
	"net/http"
	"time"

	"shifa-service/internal/app/contracts"
	"shifa-service/internal/app/delivery/http/middlewares"
	"shifa-service/internal/pkg/constvars"
	"shifa-service/internal/pkg/dto/requests"
	"shifa-service/internal/pkg/exceptions"
	"shifa-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DepartmentController struct {
	DepartmentUsecase contracts.DepartmentUsecase
	Log               *zap.Logger
}

func NewDepartmentController(departmentUsecase contracts.DepartmentUsecase, logger *zap.Logger) *DepartmentController {
	return &DepartmentController{
		DepartmentUsecase: departmentUsecase,
		Log:               logger,
	}
}

func (ctrl *DepartmentController) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateDepartment)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateDepartmentRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session := middlewares.SessionFromContext(r.Context())
	response, err := ctrl.DepartmentUsecase.CreateDepartment(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateDepartmentSuccessMessage, response)
}

func (ctrl *DepartmentController) GetDepartments(w http.ResponseWriter, r *http.Request) {
	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	departments, total, err := ctrl.DepartmentUsecase.GetDepartments(ctx, pagination)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(int(total), pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetDepartmentsSuccessMessage, paginationResponse, departments)
}

func (ctrl *DepartmentController) GetDepartmentByID(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, constvars.URLParamDepartmentID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DepartmentUsecase.GetDepartmentByID(ctx, departmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDepartmentSuccessMessage, response)
}

func (ctrl *DepartmentController) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, constvars.URLParamDepartmentID)

	request := new(requests.UpdateDepartment)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeUpdateDepartmentRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session := middlewares.SessionFromContext(r.Context())
	response, err := ctrl.DepartmentUsecase.UpdateDepartment(ctx, session, departmentID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateDepartmentSuccessMessage, response)
}

func (ctrl *DepartmentController) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, constvars.URLParamDepartmentID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session := middlewares.SessionFromContext(r.Context())
	err := ctrl.DepartmentUsecase.DeleteDepartment(ctx, session, departmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteDepartmentSuccessMessage, nil)
}
