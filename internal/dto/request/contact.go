package request

import (
	"strings"

	"safari-booking/pkg/utils"
)

type CreateContactRequest struct {
	Name    string  `json:"name" validate:"required,max=120"`
	Email   string  `json:"email" validate:"required,max=160,simple_email"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=40"`
	Message string  `json:"message" validate:"required,max=2000"`
}

func (r *CreateContactRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = utils.TrimPtr(r.Phone)
	r.Message = strings.TrimSpace(r.Message)
}

type UpdateContactStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new in_progress closed"`
}
