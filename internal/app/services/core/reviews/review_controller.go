package reviews

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

type ReviewController struct {
	ReviewUsecase contracts.ReviewUsecase
	Log           *zap.Logger
}

func NewReviewController(reviewUsecase contracts.ReviewUsecase, logger *zap.Logger) *ReviewController {
	return &ReviewController{
		ReviewUsecase: reviewUsecase,
		Log:           logger,
	}
}

func (ctrl *ReviewController) CreateReview(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateReview)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateReviewRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session := middlewares.SessionFromContext(r.Context())
	response, err := ctrl.ReviewUsecase.CreateReview(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateReviewSuccessMessage, response)
}

func (ctrl *ReviewController) GetReviews(w http.ResponseWriter, r *http.Request) {
	doctorID := r.URL.Query().Get(constvars.URLQueryParamDoctor)
	departmentID := r.URL.Query().Get(constvars.URLQueryParamDepartment)
	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	reviews, total, err := ctrl.ReviewUsecase.GetReviews(ctx, doctorID, departmentID, pagination)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(int(total), pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetReviewsSuccessMessage, paginationResponse, reviews)
}

func (ctrl *ReviewController) UpdateReview(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, constvars.URLParamReviewID)

	request := new(requests.UpdateReview)
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
	response, err := ctrl.ReviewUsecase.UpdateReview(ctx, session, reviewID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateReviewSuccessMessage, response)
}

func (ctrl *ReviewController) DeleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, constvars.URLParamReviewID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session := middlewares.SessionFromContext(r.Context())
	err := ctrl.ReviewUsecase.DeleteReview(ctx, session, reviewID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteReviewSuccessMessage, nil)
}
