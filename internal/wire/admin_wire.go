package wire

import (
	"safari-booking/internal/adaptor"
	"safari-booking/pkg/middleware"
	"safari-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(r chi.Router, handler *adaptor.Handler, config *utils.Config, log *zap.Logger) {
	r.Route("/api/admin", func(r chi.Router) {
		// Login is the only admin route reachable without the token.
		r.With(middleware.RequireJSON).Post("/login", handler.Auth.Login)

		r.Group(func(r chi.Router) {
			// The token check runs before any body parsing or storage access.
			r.Use(middleware.RequireAdmin(config.Admin.Secret(), log))
			r.Use(middleware.RequireJSON)

			r.Post("/users", handler.Auth.CreateUser)

			r.Route("/bookings", func(r chi.Router) {
				r.Get("/", handler.Booking.List)
				r.Get("/{id}", handler.Booking.Get)
				r.Patch("/{id}", handler.Booking.Update)
				r.Post("/{id}/complete", handler.Booking.Complete)
				r.Delete("/{id}", handler.Booking.Delete)
			})

			r.Route("/contact-messages", func(r chi.Router) {
				r.Get("/", handler.Contact.List)
				r.Get("/{id}", handler.Contact.Get)
				r.Patch("/{id}", handler.Contact.UpdateStatus)
				r.Delete("/{id}", handler.Contact.Delete)
			})

			wireAdminContent(r, handler.AdminContent)
		})
	})
}

func wireAdminContent(r chi.Router, h *adaptor.AdminContentHandler) {
	r.Route("/packages", func(r chi.Router) {
		r.Get("/", h.ListPackages)
		r.Post("/", h.CreatePackage)
		r.Get("/{id}", h.GetPackage)
		r.Patch("/{id}", h.UpdatePackage)
		r.Delete("/{id}", h.DeletePackage)
		r.Put("/{id}/itinerary", h.ReplaceItinerary)
	})

	r.Route("/lodges", func(r chi.Router) {
		r.Post("/", h.CreateLodge)
		r.Patch("/{id}", h.UpdateLodge)
		r.Delete("/{id}", h.DeleteLodge)
	})

	r.Route("/destinations", func(r chi.Router) {
		r.Post("/", h.CreateDestination)
		r.Patch("/{id}", h.UpdateDestination)
		r.Delete("/{id}", h.DeleteDestination)
	})

	r.Put("/hero", h.SaveHero)
}
