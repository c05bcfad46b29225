package dto

import (
	"strings"
	"time"

	uModel "riskprofile_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateUserRequest — untuk register / create by admin
type CreateUserRequest struct {
	Email    string  `json:"email" validate:"required,email,max=255"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=3,max=100"`
	Password string  `json:"password" validate:"required,min=8"`
	Role     string  `json:"role" validate:"omitempty,role"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// Normalize — trim & normalisasi dasar
func (r *CreateUserRequest) Normalize() {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Role = strings.TrimSpace(r.Role)
	if r.FullName != nil {
		v := strings.TrimSpace(*r.FullName)
		r.FullName = &v
	}
}

// ToModel — konversi ke model (ingat: hash password di controller!)
func (r *CreateUserRequest) ToModel() *uModel.UserModel {
	m := &uModel.UserModel{
		Email:    r.Email,
		FullName: r.FullName,
		Password: r.Password, // hash di controller
		Role:     r.Role,
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	} else {
		m.IsActive = true
	}
	m.SetDefaultValues()
	return m
}

// UpdateUserRequest — partial update (pakai pointer agar bisa bedakan omit vs null)
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=3,max=100"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8"`
	Role     *string `json:"role,omitempty" validate:"omitempty,role"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// Normalize — trims if present
func (r *UpdateUserRequest) Normalize() {
	if r.Email != nil {
		v := strings.TrimSpace(strings.ToLower(*r.Email))
		r.Email = &v
	}
	if r.FullName != nil {
		v := strings.TrimSpace(*r.FullName)
		r.FullName = &v
	}
	if r.Role != nil {
		v := strings.TrimSpace(*r.Role)
		r.Role = &v
	}
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// UserResponse — data user tanpa password
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func FromModel(m *uModel.UserModel) UserResponse {
	return UserResponse{
		ID:        m.ID,
		Email:     m.Email,
		FullName:  m.FullName,
		Role:      m.Role,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

func FromModels(ms []uModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
