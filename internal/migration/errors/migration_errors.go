package migrationerrors

import (
	"go-recruit/internal/shared/apperror"
	"net/http"
)

var (
	ErrCandidateAlreadyMigrated = apperror.New(
		apperror.CodeConflict,
		"Candidate is already linked to an active employee",
		http.StatusConflict,
	)
)
