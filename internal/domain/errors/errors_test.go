package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := pkgerrors.Wrap(ErrImageTooLarge.WithDetails("6.0 MB"), "read image")

	assert.True(t, stderrors.Is(err, ErrImageTooLarge))
	assert.False(t, stderrors.Is(err, ErrImageInvalidType))

	var appErr AppError
	assert.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, "6.0 MB", appErr.Details())
}

func TestValidationError_Details(t *testing.T) {
	err := NewValidationError(map[string]string{"name": "is required", "image": "is required"})

	assert.Equal(t, "image: is required; name: is required", err.Details())
	assert.Equal(t, http.StatusUnprocessableEntity, err.HTTPCode())
	assert.True(t, stderrors.Is(err, ErrValidationFailed))
}

func TestBackendError_HTTPCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NewBackendError(http.StatusNotFound, "Category not found").HTTPCode())
	assert.Equal(t, http.StatusBadGateway, NewBackendError(http.StatusInternalServerError, "").HTTPCode())
	assert.Equal(t, "Category not found", NewBackendError(http.StatusNotFound, " Category not found ").Message())
	assert.Equal(t, "Request failed with status 409", NewBackendError(http.StatusConflict, "").Message())
}
