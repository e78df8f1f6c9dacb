package routers

import (
	"fmt"

	"shifa-service/internal/app/delivery/http/middlewares"
	"shifa-service/internal/app/services/core/appointments"
	"shifa-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	appointmentIDPath := fmt.Sprintf("/{%s}", constvars.URLParamAppointmentID)

	patientOnly := middlewares.RequireRoles(constvars.RolePatient)

	router.With(middlewares.Authenticate, patientOnly).Post("/", appointmentController.CreateAppointment)
	router.With(middlewares.Authenticate).Get("/", appointmentController.GetAppointments)
	router.With(middlewares.Authenticate).Get(appointmentIDPath, appointmentController.GetAppointmentByID)
	router.With(middlewares.Authenticate).Patch(appointmentIDPath, appointmentController.UpdateAppointment)
	router.With(middlewares.Authenticate).Delete(appointmentIDPath, appointmentController.DeleteAppointment)
}
