package dto

type CreateUserRequest struct {
	Name     string  `json:"name"     validate:"required,min=3,max=100"`
	Email    string  `json:"email"    validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Phone    *string `json:"phone,omitempty"`
	Role     string  `json:"role"     validate:"omitempty,oneof=admin employee"`
	Position string  `json:"position" validate:"required,min=2,max=100"`
	Address  *string `json:"address,omitempty"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"     validate:"omitempty,min=3,max=100"`
	Email    *string `json:"email,omitempty"    validate:"omitempty,email"`
	Phone    *string `json:"phone,omitempty"`
	Role     *string `json:"role,omitempty"     validate:"omitempty,oneof=admin employee"`
	Position *string `json:"position,omitempty" validate:"omitempty,min=2,max=100"`
	Status   *string `json:"status,omitempty"   validate:"omitempty,oneof=active inactive"`
	Address  *string `json:"address,omitempty"`
}

type SetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

type UpdateProfileRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=3,max=100"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}
