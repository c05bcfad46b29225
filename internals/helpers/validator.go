// file: internals/helpers/validator.go
package helper

import (
	"github.com/go-playground/validator/v10"

	"riskprofile_backend/internals/constants"
)

// NewValidator membuat validator dengan tag kustom aplikasi:
//   - role: nilai harus salah satu constants.AllowedRoles
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return constants.IsAllowedRole(fl.Field().String())
	})
	return v
}
