package adaptor

import (
	"net/http"

	"safari-booking/internal/dto/request"
	"safari-booking/internal/usecase"
	"safari-booking/pkg/utils"

	"go.uber.org/zap"
)

// AdminContentHandler exposes catalog editing under /api/admin. Every route
// answers 501 when no database is configured.
type AdminContentHandler struct {
	service usecase.AdminContentService
	log     *zap.Logger
}

func NewAdminContentHandler(service usecase.AdminContentService, log *zap.Logger) *AdminContentHandler {
	return &AdminContentHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin_content")),
	}
}

// ==================== PACKAGES ====================

func (h *AdminContentHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.service.ListPackages(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list packages")
		return
	}
	utils.ResponseSuccess(w, packages)
}

func (h *AdminContentHandler) GetPackage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	pkg, err := h.service.GetPackage(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get package")
		return
	}
	utils.ResponseSuccess(w, pkg)
}

func (h *AdminContentHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req request.TourPackageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	pkg, err := h.service.CreatePackage(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create package")
		return
	}
	utils.ResponseCreated(w, pkg)
}

func (h *AdminContentHandler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.TourPackageUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	pkg, err := h.service.UpdatePackage(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update package")
		return
	}
	utils.ResponseSuccess(w, pkg)
}

func (h *AdminContentHandler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeletePackage(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete package")
		return
	}
	utils.ResponseNoContent(w)
}

// ReplaceItinerary handles PUT /api/admin/packages/{id}/itinerary
func (h *AdminContentHandler) ReplaceItinerary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.ItineraryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	days, err := h.service.ReplaceItinerary(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "replace itinerary")
		return
	}
	utils.ResponseSuccess(w, days)
}

// ==================== LODGES ====================

func (h *AdminContentHandler) CreateLodge(w http.ResponseWriter, r *http.Request) {
	var req request.LodgeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	lodge, err := h.service.CreateLodge(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create lodge")
		return
	}
	utils.ResponseCreated(w, lodge)
}

func (h *AdminContentHandler) UpdateLodge(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.LodgeUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	lodge, err := h.service.UpdateLodge(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update lodge")
		return
	}
	utils.ResponseSuccess(w, lodge)
}

func (h *AdminContentHandler) DeleteLodge(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteLodge(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete lodge")
		return
	}
	utils.ResponseNoContent(w)
}

// ==================== DESTINATIONS ====================

func (h *AdminContentHandler) CreateDestination(w http.ResponseWriter, r *http.Request) {
	var req request.DestinationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	dest, err := h.service.CreateDestination(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create destination")
		return
	}
	utils.ResponseCreated(w, dest)
}

func (h *AdminContentHandler) UpdateDestination(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.DestinationUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	dest, err := h.service.UpdateDestination(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update destination")
		return
	}
	utils.ResponseSuccess(w, dest)
}

func (h *AdminContentHandler) DeleteDestination(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteDestination(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete destination")
		return
	}
	utils.ResponseNoContent(w)
}

// ==================== HERO ====================

// SaveHero handles PUT /api/admin/hero
func (h *AdminContentHandler) SaveHero(w http.ResponseWriter, r *http.Request) {
	var req request.HeroRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	hero, err := h.service.SaveHero(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "save hero")
		return
	}
	utils.ResponseSuccess(w, hero)
}
