package auth

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	Password  string `json:"password" validate:"required,min=8"`
	Password2 string `json:"password2" validate:"required"`
	Role      string `json:"role" validate:"required,oneof=tenant landlord"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
