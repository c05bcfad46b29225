package dto

import "strings"

// RegisterRequest — pendaftaran user baru (role default: user)
type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email,max=255"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=3,max=100"`
	Password string  `json:"password" validate:"required,min=8"`
}

func (r *RegisterRequest) Normalize() {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	if r.FullName != nil {
		v := strings.TrimSpace(*r.FullName)
		r.FullName = &v
	}
}

// LoginRequest — login dengan email & password
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
}

// TokenResponse — hasil login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
