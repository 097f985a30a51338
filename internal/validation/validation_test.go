package validation

import (
	"testing"

	domainerrors "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Ignored  string `json:"-"`
}

type listForm struct {
	Page  int `query:"page" validate:"omitempty,min=1"`
	Limit int `query:"limit" validate:"omitempty,max=100"`
}

func TestValidator_Struct(t *testing.T) {
	v := New()

	require.NoError(t, v.Struct(&loginForm{Email: "ops@miorish.com", Password: "secret"}))

	err := v.Struct(&loginForm{Email: "not-an-email"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, map[string]string{
		"email":    "Enter a valid email address",
		"password": "This field is required",
	}, validationErr.Fields())
}

func TestValidator_UsesQueryTagNames(t *testing.T) {
	err := New().Struct(&listForm{Page: -1, Limit: 500})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields(), "page")
	assert.Equal(t, "Must be at most 100", validationErr.Fields()["limit"])
}
