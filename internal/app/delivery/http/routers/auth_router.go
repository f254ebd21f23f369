package routers

import (
	"medical-portal/internal/app/delivery/http/controllers"
	"medical-portal/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.With(middlewares.LoginRateLimit).Post("/login", authController.Login)
	router.Post("/logout", authController.Logout)
	router.Post("/register", authController.Register)
	router.Get("/session", authController.Session)
}
