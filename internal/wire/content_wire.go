package wire

import (
	"safari-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireContent(r chi.Router, contentHandler *adaptor.ContentHandler) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/home", contentHandler.GetHome)
	r.Get("/api/hero", contentHandler.GetHero)

	r.Get("/api/packages", contentHandler.ListPackages)
	r.Get("/api/packages/{slug}", contentHandler.GetPackage)
	r.Get("/api/packages/{slug}/itinerary", contentHandler.GetItinerary)

	r.Get("/api/lodges", contentHandler.ListLodges)
	r.Get("/api/lodges/{slug}", contentHandler.GetLodge)

	r.Get("/api/destinations", contentHandler.ListDestinations)
	r.Get("/api/destinations/{slug}", contentHandler.GetDestination)
}
