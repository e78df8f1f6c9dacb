package routers

import (
	"fmt"

	"shifa-service/internal/app/delivery/http/middlewares"
	"shifa-service/internal/app/services/core/reviews"
	"shifa-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachReviewRoutes(router chi.Router, middlewares *middlewares.Middlewares, reviewController *reviews.ReviewController) {
	reviewIDPath := fmt.Sprintf("/{%s}", constvars.URLParamReviewID)

	patientOnly := middlewares.RequireRoles(constvars.RolePatient)

	router.With(middlewares.Authenticate, patientOnly).Post("/", reviewController.CreateReview)
	router.With(middlewares.Authenticate).Get("/", reviewController.GetReviews)
	router.With(middlewares.Authenticate).Patch(reviewIDPath, reviewController.UpdateReview)
	router.With(middlewares.Authenticate).Delete(reviewIDPath, reviewController.DeleteReview)
}
