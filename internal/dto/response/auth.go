package response

import "safari-booking/internal/data/entity"

type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

type UserResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: Timestamp(user.CreatedAt),
	}
}
