package dto

// AdminLoginRequest authenticates an admin.
type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminLoginResponse carries the issued token.
type AdminLoginResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
	Token   string `json:"token"`
}

// AdminCreateRequest creates an admin.
type AdminCreateRequest struct {
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// AdminUpdateRequest changes an admin's email or password. A password
// change requires both old and new passwords.
type AdminUpdateRequest struct {
	Email       string `json:"email" validate:"omitempty,email,max=100"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password" validate:"omitempty,min=8,max=72"`
}
