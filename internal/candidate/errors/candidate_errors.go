package candidateerrors

import (
	"go-recruit/internal/shared/apperror"
	"net/http"
)

var (
	ErrCandidateNotFound = apperror.New(
		apperror.CodeNotFound,
		"Candidate not found",
		http.StatusNotFound,
	)
	ErrCandidateAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"An application with the same email is already in progress",
		http.StatusConflict,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status is not a recognized recruitment status",
		http.StatusBadRequest,
	)
	ErrHiredViaStatusUpdate = apperror.New(
		apperror.CodeInvalidState,
		"HIRED can only be reached through the migration workflow",
		http.StatusUnprocessableEntity,
	)
)
