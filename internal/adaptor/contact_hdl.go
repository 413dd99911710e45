package adaptor

import (
	"net/http"

	"safari-booking/internal/dto/request"
	"safari-booking/internal/usecase"
	"safari-booking/pkg/utils"

	"go.uber.org/zap"
)

type ContactHandler struct {
	service usecase.ContactService
	log     *zap.Logger
}

func NewContactHandler(service usecase.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		log:     log.With(zap.String("handler", "contact")),
	}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.CreateContactRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit contact message")
		return
	}

	utils.ResponseAccepted(w, resp)
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.List(r.Context(), r.URL.Query().Get("status"), pageFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list contact messages")
		return
	}
	utils.ResponseSuccess(w, messages)
}

func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	msg, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get contact message")
		return
	}
	utils.ResponseSuccess(w, msg)
}

func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.UpdateContactStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	msg, err := h.service.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update contact message")
		return
	}
	utils.ResponseSuccess(w, msg)
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete contact message")
		return
	}
	utils.ResponseNoContent(w)
}
