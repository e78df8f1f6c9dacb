package routers

import (
	"fmt"

	"shifa-service/internal/app/delivery/http/middlewares"
	"shifa-service/internal/app/services/core/users"
	"shifa-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *users.UserController) {
	userIDPath := fmt.Sprintf("/{%s}", constvars.URLParamUserID)

	adminOnly := middlewares.RequireRoles(constvars.RoleAdmin)
	staffRead := middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleDepartmentManager)

	router.With(middlewares.Authenticate, adminOnly).Post("/doctors", userController.CreateDoctor)
	router.With(middlewares.Authenticate, adminOnly).Post("/nurses", userController.CreateNurse)
	router.With(middlewares.Authenticate, adminOnly).Post("/staff", userController.CreateStaff)
	router.With(middlewares.Authenticate, staffRead).Get("/", userController.GetUsers)
	router.With(middlewares.Authenticate).Get(userIDPath, userController.GetUserByID)
	router.With(middlewares.Authenticate).Put(userIDPath, userController.UpdateUser)
	router.With(middlewares.Authenticate, adminOnly).Delete(userIDPath, userController.DeleteUser)
}
