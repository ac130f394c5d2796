package candidate

import (
	"errors"
	"net/http"
	"strings"

	candidateerrors "go-recruit/internal/candidate/errors"
	"go-recruit/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return candidateerrors.ErrCandidateNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_candidate_email_open" {
			return candidateerrors.ErrCandidateAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_candidate_email_open") {
		return candidateerrors.ErrCandidateAlreadyExists
	}

	// Penyebab asli ikut terbungkus untuk log; ToHTTP tetap menyamarkannya jadi 500
	return apperror.Wrap(err, apperror.CodeInternalError, "An unexpected error occurred", http.StatusInternalServerError)
}
