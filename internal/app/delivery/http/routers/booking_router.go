package routers

import (
	"medical-portal/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, bookingController *controllers.BookingController) {
	router.Post("/", bookingController.Start)
	router.Route("/{bookingID}", func(r chi.Router) {
		r.Get("/", bookingController.Get)
		r.Delete("/", bookingController.Abandon)
		r.Put("/steps/{step}", bookingController.UpdateStep)
		r.Post("/next", bookingController.Next)
		r.Post("/back", bookingController.Back)
		r.Post("/jump/{step}", bookingController.JumpTo)
		r.Post("/confirm", bookingController.Confirm)
		r.Post("/reset", bookingController.Reset)
	})
}
