package migration_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"go-recruit/internal/candidate"
	candidateerrors "go-recruit/internal/candidate/errors"
	"go-recruit/internal/employee"
	employeeerrors "go-recruit/internal/employee/errors"
	"go-recruit/internal/events"
	"go-recruit/internal/messaging/kafka"
	"go-recruit/internal/migration"
	migrationerrors "go-recruit/internal/migration/errors"
	"go-recruit/internal/shared/apperror"

	candidateMock "go-recruit/internal/candidate/mock"
	employeeMock "go-recruit/internal/employee/mock"
	kafkaMock "go-recruit/internal/messaging/kafka/mock"
	counterMock "go-recruit/internal/shared/counter/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type migrationDeps struct {
	db            *sql.DB
	sqlMock       sqlmock.Sqlmock
	service       migration.Service
	candidateRepo *candidateMock.MockRepository
	employeeRepo  *employeeMock.MockRepository
	counterRepo   *counterMock.MockRepository
	outbox        *kafkaMock.MockOutboxRepository
}

func setupMigrationTest(t *testing.T) *migrationDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	candidateRepo := candidateMock.NewMockRepository(ctrl)
	employeeRepo := employeeMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := migration.NewService(db, candidateRepo, employeeRepo, counterRepo, outboxRepo, nil)

	return &migrationDeps{
		db:            db,
		sqlMock:       sqlMock,
		service:       svc,
		candidateRepo: candidateRepo,
		employeeRepo:  employeeRepo,
		counterRepo:   counterRepo,
		outbox:        outboxRepo,
	}
}

func hirableCandidate() *candidate.Candidate {
	return &candidate.Candidate{
		ID:       uuid.New(),
		FullName: "Budi Santoso",
		Email:    "budi.santoso@example.com",
		Status:   candidate.StatusMedicalCheckup,
	}
}

func TestMigrationService_Migrate(t *testing.T) {
	ctx := context.Background()

	t.Run("success with generated employee code", func(t *testing.T) {
		deps := setupMigrationTest(t)
		defer deps.db.Close()

		cand := hirableCandidate()
		req := validMigrateRequest()

		deps.candidateRepo.EXPECT().
			FindByID(ctx, cand.ID.String()).
			Return(cand, nil)
		deps.employeeRepo.EXPECT().
			FindActiveByRecruitmentFormID(ctx, cand.ID.String()).
			Return(nil, gorm.ErrRecordNotFound)
		deps.counterRepo.EXPECT().
			GetNextValue(ctx, "HR", 2026).
			Return(int64(1), nil)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.employeeRepo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.employeeRepo)
		deps.employeeRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "HR-2026-0001", e.EmployeeCode)
				assert.Equal(t, cand.FullName, e.FullName)
				assert.Equal(t, &cand.ID, e.RecruitmentFormID)
				assert.True(t, e.IsActive)
				return nil
			})

		deps.candidateRepo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.candidateRepo)
		deps.candidateRepo.EXPECT().
			UpdateStatus(ctx, cand.ID.String(), candidate.StatusHired).
			Return(nil)

		deps.outbox.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, events.TypeEmployeeMigrated, ev.EventType)
				assert.Equal(t, events.EmployeeLifecycleTopic, ev.Topic)

				var payload events.EmployeeMigratedEvent
				assert.NoError(t, json.Unmarshal(ev.Payload, &payload))
				assert.Equal(t, "HR-2026-0001", payload.EmployeeCode)
				assert.Equal(t, cand.ID.String(), payload.CandidateID)
				return nil
			})

		resp, err := deps.service.Migrate(ctx, cand.ID.String(), req)
		assert.NoError(t, err)
		assert.Equal(t, "HIRED", resp.CandidateStatus)
		assert.Equal(t, "HR-2026-0001", resp.Employee.EmployeeCode)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("omitted employment status defaults to probation", func(t *testing.T) {
		deps := setupMigrationTest(t)
		defer deps.db.Close()

		cand := hirableCandidate()
		req := validMigrateRequest()
		req.EmploymentStatus = ""

		deps.candidateRepo.EXPECT().
			FindByID(ctx, cand.ID.String()).
			Return(cand, nil)
		deps.employeeRepo.EXPECT().
			FindActiveByRecruitmentFormID(ctx, cand.ID.String()).
			Return(nil, gorm.ErrRecordNotFound)
		deps.counterRepo.EXPECT().
			GetNextValue(ctx, "HR", 2026).
			Return(int64(2), nil)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.employeeRepo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.employeeRepo)
		deps.employeeRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, employee.EmploymentProbation, e.EmploymentStatus)
				return nil
			})

		deps.candidateRepo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.candidateRepo)
		deps.candidateRepo.EXPECT().
			UpdateStatus(ctx, cand.ID.String(), candidate.StatusHired).
			Return(nil)

		deps.outbox.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			Return(nil)

		resp, err := deps.service.Migrate(ctx, cand.ID.String(), req)
		assert.NoError(t, err)
		assert.Equal(t, "PROBATION", resp.Employee.EmploymentStatus)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing position stops before any write", func(t *testing.T) {
		deps := setupMigrationTest(t)
		defer deps.db.Close()

		cand := hirableCandidate()
		req := validMigrateRequest()
		req.Position = ""

		deps.candidateRepo.EXPECT().
			FindByID(ctx, cand.ID.String()).
			Return(cand, nil)
		deps.employeeRepo.EXPECT().
			FindActiveByRecruitmentFormID(ctx, cand.ID.String()).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Migrate(ctx, cand.ID.String(), req)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		messages, ok := appErr.Details.([]string)
		assert.True(t, ok)
		assert.Equal(t, []string{"Position is required"}, messages)
		// tanpa ExpectBegin: setiap transaksi akan bikin sqlmock error
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("candidate already linked to active employee", func(t *testing.T) {
		deps := setupMigrationTest(t)
		defer deps.db.Close()

		cand := hirableCandidate()

		deps.candidateRepo.EXPECT().
			FindByID(ctx, cand.ID.String()).
			Return(cand, nil)
		deps.employeeRepo.EXPECT().
			FindActiveByRecruitmentFormID(ctx, cand.ID.String()).
			Return(&employee.Employee{ID: uuid.New()}, nil)

		_, err := deps.service.Migrate(ctx, cand.ID.String(), validMigrateRequest())
		assert.ErrorIs(t, err, migrationerrors.ErrCandidateAlreadyMigrated)
	})

	t.Run("candidate not found", func(t *testing.T) {
		deps := setupMigrationTest(t)
		defer deps.db.Close()

		id := uuid.New().String()
		deps.candidateRepo.EXPECT().
			FindByID(ctx, id).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Migrate(ctx, id, validMigrateRequest())
		assert.ErrorIs(t, err, candidateerrors.ErrCandidateNotFound)
	})

	t.Run("manual employee code collision maps to conflict", func(t *testing.T) {
		deps := setupMigrationTest(t)
		defer deps.db.Close()

		cand := hirableCandidate()
		req := validMigrateRequest()
		req.EmployeeCode = "HR-2026-0001"

		deps.candidateRepo.EXPECT().
			FindByID(ctx, cand.ID.String()).
			Return(cand, nil)
		deps.employeeRepo.EXPECT().
			FindActiveByRecruitmentFormID(ctx, cand.ID.String()).
			Return(nil, gorm.ErrRecordNotFound)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.employeeRepo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.employeeRepo)
		deps.employeeRepo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employees_employee_code"})

		_, err := deps.service.Migrate(ctx, cand.ID.String(), req)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeCodeAlreadyExists)
	})
}
