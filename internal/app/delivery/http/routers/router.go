package routers

import (
	"medical-portal/internal/app/config"
	"medical-portal/internal/app/delivery/http/controllers"
	"medical-portal/internal/app/delivery/http/middlewares"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

type Controllers struct {
	Auth       *controllers.AuthController
	Page       *controllers.PageController
	Navigation *controllers.NavigationController
	Booking    *controllers.BookingController
	Directory  *controllers.DirectoryController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	accessLogger *logrus.Logger,
	controllers *Controllers,
) error {
	corsOptions := cors.Options{
		AllowedOrigins:   strings.Split(internalConfig.App.AllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.GlobalRateLimit())
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	if accessLogger != nil {
		router.Use(middlewares.RequestLogger(accessLogger))
	}
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.ClientSession)

	router.NotFound(controllers.Page.NotFound)

	router.Route(endpointPrefix(internalConfig.App.EndpointPrefix), func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, controllers.Auth)
		})

		r.Get("/navigation", controllers.Navigation.GetNavigation)
		r.Get("/directories/{kind}", controllers.Directory.List)

		r.Route("/booking", func(r chi.Router) {
			attachBookingRoutes(r, controllers.Booking)
		})
	})

	return attachPageRoutes(router, middlewares, DefaultPages(controllers.Page, internalConfig.App.LoginPath))
}

func endpointPrefix(prefix string) string {
	prefix = "/" + strings.Trim(prefix, "/")
	if prefix == "/" {
		return "/api"
	}
	return prefix
}
