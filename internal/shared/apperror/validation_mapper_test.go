package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"go-recruit/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestMapValidationError(t *testing.T) {
	validate := validator.New()

	t.Run("field errors become per-field messages", func(t *testing.T) {
		payload := struct {
			FullName string `validate:"required"`
			Email    string `validate:"required,email"`
		}{Email: "not-an-email"}

		err := apperror.MapValidationError(validate.Struct(payload))

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)

		messages, ok := appErr.Details.([]string)
		assert.True(t, ok)
		assert.Contains(t, messages, "Fullname is required")
		assert.Contains(t, messages, "Email is invalid")
	})

	t.Run("non-validator errors never leak their text", func(t *testing.T) {
		err := apperror.MapValidationError(errors.New("unexpected EOF"))

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
		assert.Equal(t, "Invalid input", appErr.Message)
		assert.NotContains(t, appErr.Error(), "unexpected EOF")
	})
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperror.Wrap(cause, apperror.CodeInternalError, "An unexpected error occurred", http.StatusInternalServerError)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "An unexpected error occurred: connection reset", err.Error())

	assert.Nil(t, apperror.Wrap(nil, apperror.CodeInternalError, "x", http.StatusInternalServerError))
}

func TestValidationCarriesFullList(t *testing.T) {
	err := apperror.Validation([]string{"Position is required", "Department is not a recognized department"})

	assert.Equal(t, "Position is required", err.Message)
	assert.Equal(t, []string{"Position is required", "Department is not a recognized department"}, err.Details)
}
