package adaptor

import (
	"net/http"

	"safari-booking/internal/dto/request"
	"safari-booking/internal/usecase"
	"safari-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// Submit handles POST /api/bookings
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit booking")
		return
	}

	utils.ResponseCreated(w, resp)
}

// List handles GET /api/admin/bookings
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.List(r.Context(), r.URL.Query().Get("status"), pageFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}
	utils.ResponseSuccess(w, bookings)
}

// Get handles GET /api/admin/bookings/{id}
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	booking, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}
	utils.ResponseSuccess(w, booking)
}

// Update handles PATCH /api/admin/bookings/{id}
func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.UpdateBookingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	booking, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update booking")
		return
	}
	utils.ResponseSuccess(w, booking)
}

// Complete handles POST /api/admin/bookings/{id}/complete
func (h *BookingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	booking, err := h.service.Complete(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "complete booking")
		return
	}
	utils.ResponseSuccess(w, booking)
}

// Delete handles DELETE /api/admin/bookings/{id}
func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete booking")
		return
	}
	utils.ResponseNoContent(w)
}
