package request

type LoginRequest struct {
	Email    string `json:"email" validate:"omitempty,max=160"`
	Password string `json:"password" validate:"required"`
}

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,simple_email,max=160"`
	Name     string `json:"name" validate:"required,max=120"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}
