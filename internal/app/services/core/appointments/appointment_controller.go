package appointments

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

type AppointmentController struct {
	AppointmentUsecase contracts.AppointmentUsecase
	Log                *zap.Logger
}

func NewAppointmentController(appointmentUsecase contracts.AppointmentUsecase, logger *zap.Logger) *AppointmentController {
	return &AppointmentController{
		AppointmentUsecase: appointmentUsecase,
		Log:                logger,
	}
}

func (ctrl *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateAppointment)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session := middlewares.SessionFromContext(r.Context())
	response, err := ctrl.AppointmentUsecase.CreateAppointment(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) GetAppointments(w http.ResponseWriter, r *http.Request) {
	filter := &requests.AppointmentFilter{
		Status: r.URL.Query().Get(constvars.URLQueryParamStatus),
		Before: r.URL.Query().Get(constvars.URLQueryParamBefore),
		After:  r.URL.Query().Get(constvars.URLQueryParamAfter),
		On:     r.URL.Query().Get(constvars.URLQueryParamOn),
	}

	err := utils.ValidateStruct(filter)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session := middlewares.SessionFromContext(r.Context())
	appointments, total, err := ctrl.AppointmentUsecase.GetAppointments(ctx, session, filter, pagination)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(int(total), pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetAppointmentsSuccessMessage, paginationResponse, appointments)
}

func (ctrl *AppointmentController) GetAppointmentByID(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session := middlewares.SessionFromContext(r.Context())
	response, err := ctrl.AppointmentUsecase.GetAppointmentByID(ctx, session, appointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	request := new(requests.UpdateAppointment)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session := middlewares.SessionFromContext(r.Context())
	response, err := ctrl.AppointmentUsecase.UpdateAppointment(ctx, session, appointmentID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session := middlewares.SessionFromContext(r.Context())
	err := ctrl.AppointmentUsecase.DeleteAppointment(ctx, session, appointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAppointmentSuccessMessage, nil)
}
