package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewValidatorRoleTag(t *testing.T) {
	v := NewValidator()

	type req struct {
		Role string `validate:"omitempty,role"`
	}

	assert.NoError(t, v.Struct(req{Role: "super_admin"}))
	assert.NoError(t, v.Struct(req{Role: "admin_erm"}))
	assert.NoError(t, v.Struct(req{Role: "user"}))
	assert.NoError(t, v.Struct(req{})) // omitempty

	assert.Error(t, v.Struct(req{Role: "hacker"}))
	assert.Error(t, v.Struct(req{Role: "SUPER_ADMIN"}))
}
