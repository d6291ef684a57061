package dto

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateUserInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=admin super_admin"`
}

// UpdateUserInput leaves Password optional: the hash is only rewritten when a
// new password is supplied.
type UpdateUserInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"omitempty,min=6"`
	Role     string `json:"role" binding:"required,oneof=admin super_admin"`
}
