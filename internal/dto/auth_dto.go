package dto

import "github.com/jihoon-lab/coinboard-api/internal/models"

// SignupRequest carries the registration form fields. The original
// board accepted both form-encoded and JSON bodies; both tags are kept.
type SignupRequest struct {
	Nickname string `json:"nickname" form:"nickname" validate:"required,max=64"`
	Email    string `json:"email" form:"email" validate:"required,email,max=160"`
	Password string `json:"password" form:"password" validate:"required,min=4,max=72"`
}

// LoginRequest carries the login form fields.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// SessionUserResponse is the identity payload stored in the session and
// returned by /get-user and /login.
type SessionUserResponse struct {
	ID       uint   `json:"id"`
	Nickname string `json:"nickname"`
	Role     string `json:"role"`
}

// NewSessionUserResponse maps a user row to its session payload.
func NewSessionUserResponse(user models.User) SessionUserResponse {
	return SessionUserResponse{
		ID:       user.ID,
		Nickname: user.Nickname,
		Role:     user.Role,
	}
}
