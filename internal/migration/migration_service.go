package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-recruit/internal/candidate"
	candidateerrors "go-recruit/internal/candidate/errors"
	"go-recruit/internal/employee"
	employeeerrors "go-recruit/internal/employee/errors"
	"go-recruit/internal/events"
	"go-recruit/internal/messaging/kafka"
	migrationerrors "go-recruit/internal/migration/errors"
	"go-recruit/internal/shared/apperror"
	"go-recruit/internal/shared/contextutil"
	"go-recruit/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=migration_service.go -destination=mock/migration_service_mock.go -package=mock
type Service interface {
	Migrate(ctx context.Context, candidateID string, req MigrateRequest) (MigrationResponse, error)
}

type service struct {
	db            *sql.DB
	candidateRepo candidate.Repository
	employeeRepo  employee.Repository
	counterRepo   counter.Repository
	outbox        kafka.OutboxRepository
	rdb           *redis.Client
	logger        *zap.Logger
}

func NewService(
	db *sql.DB,
	candidateRepo candidate.Repository,
	employeeRepo employee.Repository,
	counterRepo counter.Repository,
	outbox kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("migration.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("migration.service")
	}
	return &service{
		db:            db,
		candidateRepo: candidateRepo,
		employeeRepo:  employeeRepo,
		counterRepo:   counterRepo,
		outbox:        outbox,
		rdb:           rdb,
		logger:        l,
	}
}

// Migrate mengangkat kandidat menjadi karyawan dalam satu transaksi:
// insert employee, set status kandidat ke HIRED, dan antre event outbox.
// Gagal di salah satu langkah berarti seluruhnya batal.
func (s *service) Migrate(ctx context.Context, candidateID string, req MigrateRequest) (MigrationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("migrate candidate requested",
		zap.String("request_id", rid),
		zap.String("candidate_id", candidateID),
	)

	cand, err := s.candidateRepo.FindByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MigrationResponse{}, candidateerrors.ErrCandidateNotFound
		}
		s.logger.Error("migrate fetch candidate failed", zap.Error(err))
		return MigrationResponse{}, err
	}

	// Eligibility: belum ada karyawan aktif yang menunjuk lamaran ini.
	// Hard delete melepas tautan, jadi kandidat bisa dimigrasikan ulang.
	if _, err := s.employeeRepo.FindActiveByRecruitmentFormID(ctx, candidateID); err == nil {
		return MigrationResponse{}, migrationerrors.ErrCandidateAlreadyMigrated
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("migrate eligibility check failed", zap.Error(err))
		return MigrationResponse{}, err
	}

	// Status kosong berarti karyawan baru masuk masa percobaan
	if req.EmploymentStatus == "" {
		req.EmploymentStatus = string(employee.EmploymentProbation)
	}

	if errs := ValidateMigration(req); len(errs) > 0 {
		s.logger.Warn("migrate validation failed",
			zap.String("candidate_id", candidateID),
			zap.Strings("errors", errs),
		)
		return MigrationResponse{}, apperror.Validation(errs)
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	dept := employee.Department(req.Department)

	employeeCode := req.EmployeeCode
	if employeeCode == "" {
		seq, err := s.counterRepo.GetNextValue(ctx, dept.Prefix(), startDate.Year())
		if err != nil {
			s.logger.Error("migrate employee code sequence failed", zap.Error(err))
			return MigrationResponse{}, err
		}
		employeeCode = employee.FormatEmployeeCode(dept, startDate.Year(), seq)
	}

	empl := &employee.Employee{
		ID:                uuid.New(),
		EmployeeCode:      employeeCode,
		RecruitmentFormID: &cand.ID,
		FullName:          cand.FullName,
		Position:          req.Position,
		Department:        dept,
		EmploymentStatus:  employee.EmploymentStatus(req.EmploymentStatus),
		ContractType:      employee.ContractType(req.ContractType),
		ShiftPattern:      employee.ShiftPattern(req.ShiftPattern),
		BasicSalary:       req.BasicSalary,
		WorkLocation:      req.WorkLocation,
		StartDate:         startDate,
		IsActive:          true,
	}
	if req.ProbationEndDate != "" {
		probationEnd, _ := time.Parse("2006-01-02", req.ProbationEndDate)
		empl.ProbationEndDate = &probationEnd
	}
	empl.EmergencyContactName = req.EmergencyContactName
	empl.EmergencyContactPhone = req.EmergencyContactPhone

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("migrate begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return MigrationResponse{}, err
	}
	defer tx.Rollback()

	if err := s.employeeRepo.WithTx(tx).Create(ctx, empl); err != nil {
		s.logger.Error("migrate create employee failed", zap.Error(err))
		return MigrationResponse{}, mapRepositoryError(err)
	}

	if err := s.candidateRepo.WithTx(tx).UpdateStatus(ctx, candidateID, candidate.StatusHired); err != nil {
		s.logger.Error("migrate update candidate status failed", zap.Error(err))
		return MigrationResponse{}, err
	}

	if s.outbox != nil {
		event := events.EmployeeMigratedEvent{
			EventType:    events.TypeEmployeeMigrated,
			RequestID:    rid,
			EmployeeID:   empl.ID.String(),
			EmployeeCode: empl.EmployeeCode,
			CandidateID:  candidateID,
			OccurredAt:   time.Now().UTC(),
		}
		body, err := json.Marshal(event)
		if err != nil {
			return MigrationResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeLifecycleTopic,
			Payload:       body,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("migrate outbox persist failed", zap.Error(err))
			return MigrationResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("migrate commit failed", zap.String("request_id", rid), zap.Error(err))
		return MigrationResponse{}, err
	}

	if s.rdb != nil {
		cacheKey := employee.GetSupervisorOptionsKey(string(dept))
		if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
			s.logger.Error("failed to invalidate supervisor options cache",
				zap.Error(err),
				zap.String("key", cacheKey),
			)
		}
	}

	s.logger.Info("migrate candidate success",
		zap.String("request_id", rid),
		zap.String("candidate_id", candidateID),
		zap.String("employee_id", empl.ID.String()),
		zap.String("employee_code", empl.EmployeeCode),
	)

	return MigrationResponse{
		CandidateID:     candidateID,
		CandidateStatus: string(candidate.StatusHired),
		Employee:        employee.ToResponse(*empl),
	}, nil
}

func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return employeeerrors.ErrEmployeeCodeAlreadyExists
	}
	return err
}
