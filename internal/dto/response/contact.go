package response

import "safari-booking/internal/data/entity"

type ContactMessageResponse struct {
	ID         int64                `json:"id"`
	Name       string               `json:"name"`
	Email      string               `json:"email"`
	Phone      *string              `json:"phone"`
	Message    string               `json:"message"`
	Status     entity.ContactStatus `json:"status"`
	CreatedAt  string               `json:"created_at"`
	ResolvedAt *string              `json:"resolved_at"`
}

type ContactAcceptedResponse struct {
	Status    string `json:"status"`
	ContactID int64  `json:"contact_id"`
	Message   string `json:"message"`
}

func ContactMessageToResponse(msg *entity.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:         msg.ID,
		Name:       msg.Name,
		Email:      msg.Email,
		Phone:      msg.Phone,
		Message:    msg.Message,
		Status:     msg.Status,
		CreatedAt:  Timestamp(msg.CreatedAt),
		ResolvedAt: timestampPtr(msg.ResolvedAt),
	}
}

func ContactMessagesToResponse(messages []*entity.ContactMessage) []ContactMessageResponse {
	out := make([]ContactMessageResponse, 0, len(messages))
	for _, msg := range messages {
		out = append(out, ContactMessageToResponse(msg))
	}
	return out
}
