package adaptor

import (
	"net/http"
	"strconv"

	"safari-booking/internal/usecase"
	"safari-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ContentHandler serves the public catalog. None of its routes return 5xx:
// the service degrades to fallback content instead.
type ContentHandler struct {
	service usecase.ContentService
	log     *zap.Logger
}

func NewContentHandler(service usecase.ContentService, log *zap.Logger) *ContentHandler {
	return &ContentHandler{
		service: service,
		log:     log.With(zap.String("handler", "content")),
	}
}

// ListPackages handles GET /api/packages
func (h *ContentHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	featured, _ := strconv.ParseBool(query.Get("featured"))

	packages := h.service.ListPackages(r.Context(), usecase.PackageQuery{
		FeaturedOnly:    featured,
		DestinationSlug: query.Get("destination"),
	})
	utils.ResponseSuccess(w, packages)
}

// GetPackage handles GET /api/packages/{slug}
func (h *ContentHandler) GetPackage(w http.ResponseWriter, r *http.Request) {
	pkg, err := h.service.GetPackage(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		handleServiceError(w, h.log, err, "get package")
		return
	}
	utils.ResponseSuccess(w, pkg)
}

// GetItinerary handles GET /api/packages/{slug}/itinerary
func (h *ContentHandler) GetItinerary(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, h.service.GetItinerary(r.Context(), chi.URLParam(r, "slug")))
}

func (h *ContentHandler) ListLodges(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, h.service.ListLodges(r.Context()))
}

func (h *ContentHandler) GetLodge(w http.ResponseWriter, r *http.Request) {
	lodge, err := h.service.GetLodge(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		handleServiceError(w, h.log, err, "get lodge")
		return
	}
	utils.ResponseSuccess(w, lodge)
}

func (h *ContentHandler) ListDestinations(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, h.service.ListDestinations(r.Context()))
}

func (h *ContentHandler) GetDestination(w http.ResponseWriter, r *http.Request) {
	dest, err := h.service.GetDestination(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		handleServiceError(w, h.log, err, "get destination")
		return
	}
	utils.ResponseSuccess(w, dest)
}

func (h *ContentHandler) GetHero(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, h.service.GetHero(r.Context()))
}

// GetHome handles GET /api/home: hero, featured packages and destinations in
// one round trip.
func (h *ContentHandler) GetHome(w http.ResponseWriter, r *http.Request) {
	home, err := h.service.GetHome(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get home")
		return
	}
	utils.ResponseSuccess(w, home)
}
