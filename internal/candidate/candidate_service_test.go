package candidate_test

import (
	"context"
	"testing"

	"go-recruit/internal/candidate"
	candidateerrors "go-recruit/internal/candidate/errors"
	candidateMock "go-recruit/internal/candidate/mock"
	"go-recruit/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupCandidateService(t *testing.T) (candidate.Service, *candidateMock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := candidateMock.NewMockRepository(ctrl)
	return candidate.NewService(repo), repo
}

func TestCandidateService_SubmitApplication(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, repo := setupCandidateService(t)
		req := validApplication()

		repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, cand *candidate.Candidate) error {
				assert.Equal(t, req.FullName, cand.FullName)
				assert.Equal(t, req.Email, cand.Email)
				assert.Equal(t, candidate.StatusPending, cand.Status)
				return nil
			})

		resp, err := svc.SubmitApplication(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, "PENDING", resp.Status)
		assert.Equal(t, "PENDING", resp.DashboardStatus)
		assert.Equal(t, "Operator Produksi", resp.PositionLabel)
	})

	t.Run("invalid payload returns every violation, repo untouched", func(t *testing.T) {
		svc, _ := setupCandidateService(t)
		req := validApplication()
		req.FullName = ""
		req.Phone = "12345"
		req.HeightCm = 10

		_, err := svc.SubmitApplication(ctx, req)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		messages, ok := appErr.Details.([]string)
		assert.True(t, ok)
		assert.Contains(t, messages, "Full Name is required")
		assert.Contains(t, messages, "Phone must be a valid Indonesian phone number")
		assert.Contains(t, messages, "Height must be between 100 and 250 cm")
	})

	t.Run("document metadata outside upload rules rejected, repo untouched", func(t *testing.T) {
		svc, _ := setupCandidateService(t)
		req := validApplication()
		req.Documents = []candidate.UploadedFile{
			{Slot: "cv", ContentType: "application/zip", SizeBytes: 1024},
			{Slot: "photo", ContentType: "image/jpeg", SizeBytes: 4 * 1024 * 1024},
			{Slot: "npwp", ContentType: "application/pdf", SizeBytes: 1024},
		}

		_, err := svc.SubmitApplication(ctx, req)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		messages, ok := appErr.Details.([]string)
		assert.True(t, ok)
		assert.Contains(t, messages, "CV has an unsupported file type (application/zip)")
		assert.Contains(t, messages, "Photo exceeds the maximum size of 3 MB")
		assert.Contains(t, messages, `Unknown upload slot "npwp"`)
	})

	t.Run("document metadata within upload rules accepted", func(t *testing.T) {
		svc, repo := setupCandidateService(t)
		req := validApplication()
		req.Documents = []candidate.UploadedFile{
			{Slot: "cv", ContentType: "application/pdf", SizeBytes: 2 * 1024 * 1024},
			{Slot: "photo", ContentType: "image/png", SizeBytes: 512 * 1024},
		}

		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		_, err := svc.SubmitApplication(ctx, req)
		assert.NoError(t, err)
	})

	t.Run("duplicate open application mapped to conflict", func(t *testing.T) {
		svc, repo := setupCandidateService(t)

		repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_candidate_email_open"})

		_, err := svc.SubmitApplication(ctx, validApplication())
		assert.ErrorIs(t, err, candidateerrors.ErrCandidateAlreadyExists)
	})
}

func TestCandidateService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("valid transition persists", func(t *testing.T) {
		svc, repo := setupCandidateService(t)

		repo.EXPECT().
			FindByID(ctx, id.String()).
			Return(&candidate.Candidate{ID: id, FullName: "Budi Santoso", Status: candidate.StatusPending}, nil)
		repo.EXPECT().
			UpdateStatus(ctx, id.String(), candidate.StatusInterview).
			Return(nil)

		resp, err := svc.UpdateStatus(ctx, id.String(), candidate.UpdateStatusRequest{Status: "INTERVIEW"})
		assert.NoError(t, err)
		assert.Equal(t, "INTERVIEW", resp.Status)
		assert.Equal(t, "ON_PROGRESS", resp.DashboardStatus)
	})

	t.Run("HIRED is rejected outside migration", func(t *testing.T) {
		svc, _ := setupCandidateService(t)

		_, err := svc.UpdateStatus(ctx, id.String(), candidate.UpdateStatusRequest{Status: "HIRED"})
		assert.ErrorIs(t, err, candidateerrors.ErrHiredViaStatusUpdate)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		svc, _ := setupCandidateService(t)

		_, err := svc.UpdateStatus(ctx, id.String(), candidate.UpdateStatusRequest{Status: "LIMBO"})
		assert.ErrorIs(t, err, candidateerrors.ErrInvalidStatus)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo := setupCandidateService(t)

		repo.EXPECT().
			FindByID(ctx, id.String()).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.UpdateStatus(ctx, id.String(), candidate.UpdateStatusRequest{Status: "REJECTED"})
		assert.ErrorIs(t, err, candidateerrors.ErrCandidateNotFound)
	})
}

func TestDashboardStatusProjection(t *testing.T) {
	assert.Equal(t, "PENDING", candidate.StatusPending.DashboardStatus())
	assert.Equal(t, "COMPLETED", candidate.StatusHired.DashboardStatus())
	assert.Equal(t, "COMPLETED", candidate.StatusRejected.DashboardStatus())

	for _, s := range []candidate.RecruitmentStatus{
		candidate.StatusOnProgress,
		candidate.StatusInterview,
		candidate.StatusPsikotest,
		candidate.StatusUserInterview,
		candidate.StatusMedicalCheckup,
		candidate.StatusMedicalFollowup,
	} {
		assert.Equal(t, "ON_PROGRESS", s.DashboardStatus(), "status %s", s)
	}

	// proyeksi dan ekspansi harus konsisten bolak-balik
	for _, dash := range []string{"PENDING", "ON_PROGRESS", "COMPLETED"} {
		for _, s := range candidate.ExpandDashboardStatus(dash) {
			assert.Equal(t, dash, s.DashboardStatus())
		}
	}
	assert.Nil(t, candidate.ExpandDashboardStatus("HIRED"))
}
