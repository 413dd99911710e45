package wire

import (
	"safari-booking/internal/adaptor"
	"safari-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireSubmissions(r chi.Router, bookingHandler *adaptor.BookingHandler, contactHandler *adaptor.ContactHandler) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireJSON)

		r.Post("/api/bookings", bookingHandler.Submit) // 201
		r.Post("/api/contact", contactHandler.Submit)  // 202
	})
}
