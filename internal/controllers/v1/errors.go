package v1

import (
	"errors"
	"net/http"

	"github.com/pennywise-app/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errUsernameOrPasswordWrong = errors.New("username or password is wrong")
	errPasswordTooShort        = errors.New("the password must have at least 8 characters")
)
