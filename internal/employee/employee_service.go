package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go-recruit/internal/changeset"
	employeeerrors "go-recruit/internal/employee/errors"
	"go-recruit/internal/events"
	"go-recruit/internal/messaging/kafka"
	"go-recruit/internal/shared/apperror"
	"go-recruit/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const SupervisorOptionsKeyPrefix = "employees:supervisors:"

func GetSupervisorOptionsKey(department string) string {
	return SupervisorOptionsKeyPrefix + department
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, filter ListFilter) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetSupervisorOptions(ctx context.Context, department string) ([]SupervisorOption, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Terminate(ctx context.Context, id string, req TerminateRequest) (EmployeeResponse, error)
	Restore(ctx context.Context, id string) (EmployeeResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outbox,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested",
		zap.String("department", filter.Department),
		zap.String("employment_status", filter.EmploymentStatus),
	)

	empls, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) GetSupervisorOptions(ctx context.Context, department string) ([]SupervisorOption, error) {
	if !Department(department).Valid() {
		return nil, apperror.InvalidField("Department")
	}

	cacheKey := GetSupervisorOptionsKey(department)

	// 1. Cek Redis
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []SupervisorOption
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight untuk handle traffic tinggi saat HR buka form edit
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		empls, err := s.repo.FindSupervisorsByDepartment(ctx, department)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]SupervisorOption, len(empls))
		for i, e := range empls {
			resp[i] = SupervisorOption{
				ID:           e.ID.String(),
				EmployeeCode: e.EmployeeCode,
				FullName:     e.FullName,
				Department:   string(e.Department),
			}
		}

		// 3. Simpan ke Redis (TTL 1 jam cukup karena data master)
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]SupervisorOption), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	// Supervisor sah ditentukan per departemen yang dipilih pada draft,
	// bukan departemen lama record.
	var supervisors []SupervisorOption
	if Department(req.Department).Valid() {
		supervisors, err = s.GetSupervisorOptions(ctx, req.Department)
		if err != nil {
			s.logger.Error("update employee load supervisors failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
	}

	if errs := ValidateUpdate(req, UpdateContext{
		CurrentEmployeeID:    id,
		AvailableSupervisors: supervisors,
	}); len(errs) > 0 {
		s.logger.Warn("update employee validation failed",
			zap.String("employee_id", id),
			zap.Strings("errors", errs),
		)
		return EmployeeResponse{}, apperror.Validation(errs)
	}

	if !HasUnsavedChanges(*empl, req) {
		// Tidak ada perubahan: tidak ada side effect sama sekali
		s.logger.Debug("update employee skipped, no changes", zap.String("employee_id", id))
		return mapToResponse(*empl), nil
	}
	changes := changeset.FormatChanges(snapshotOf(*empl), snapshotOfRequest(req), auditFields())

	oldDepartment := empl.Department
	applyUpdate(empl, req)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeUpdatedEvent{
			EventType:  events.TypeEmployeeUpdated,
			RequestID:  rid,
			EmployeeID: empl.ID.String(),
			Changes:    changes,
			OccurredAt: time.Now().UTC(),
		}
		if err := s.queueOutboxEvent(ctx, tx, empl.ID.String(), event.EventType, rid, event); err != nil {
			s.logger.Error("update employee outbox persist failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateSupervisorCache(ctx, string(oldDepartment), string(empl.Department))

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
		zap.Int("changed_fields", len(changes)),
	)

	resp := mapToResponse(*empl)
	resp.Changes = changes
	return resp, nil
}

func (s *service) Terminate(ctx context.Context, id string, req TerminateRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("terminate employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
		zap.Bool("hard_delete", req.HardDelete),
	)

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("terminate employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if errs := ValidateTermination(req, empl.StartDate); len(errs) > 0 {
		s.logger.Warn("terminate employee validation failed",
			zap.String("employee_id", id),
			zap.Strings("errors", errs),
		)
		return EmployeeResponse{}, apperror.Validation(errs)
	}

	if !req.HardDelete && empl.EmploymentStatus == EmploymentTerminated {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeAlreadyTerminated
	}

	terminationDate := time.Now()
	if req.TerminationDate != "" {
		terminationDate, _ = time.Parse("2006-01-02", req.TerminationDate)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("terminate employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if req.HardDelete {
		// Ireversibel: baris dihapus, back-reference kandidat ikut hilang
		// sehingga kandidat asal bisa dimigrasikan ulang.
		if err := qtx.HardDelete(ctx, id); err != nil {
			s.logger.Error("hard delete employee failed", zap.Error(err))
			return EmployeeResponse{}, mapRepositoryError(err)
		}
	} else {
		empl.EmploymentStatus = EmploymentTerminated
		empl.IsActive = false
		empl.TerminationDate = &terminationDate
		empl.TerminationReason = req.TerminationReason
		if err := qtx.Update(ctx, empl); err != nil {
			s.logger.Error("terminate employee persist failed", zap.Error(err))
			return EmployeeResponse{}, mapRepositoryError(err)
		}
	}

	if s.outbox != nil {
		event := events.EmployeeTerminatedEvent{
			EventType:         events.TypeEmployeeTerminated,
			RequestID:         rid,
			EmployeeID:        empl.ID.String(),
			TerminationReason: req.TerminationReason,
			HardDelete:        req.HardDelete,
			OccurredAt:        time.Now().UTC(),
		}
		if err := s.queueOutboxEvent(ctx, tx, empl.ID.String(), event.EventType, rid, event); err != nil {
			s.logger.Error("terminate employee outbox persist failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("terminate employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateSupervisorCache(ctx, string(empl.Department))

	s.logger.Info("terminate employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
		zap.Bool("hard_delete", req.HardDelete),
	)

	return mapToResponse(*empl), nil
}

func (s *service) Restore(ctx context.Context, id string) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("restore employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("restore employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if empl.EmploymentStatus != EmploymentTerminated {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotTerminated
	}

	empl.IsActive = true
	empl.TerminationDate = nil
	empl.TerminationReason = ""
	if empl.ProbationEndDate != nil && empl.ProbationEndDate.After(time.Now()) {
		empl.EmploymentStatus = EmploymentProbation
	} else {
		empl.EmploymentStatus = EmploymentPermanent
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("restore employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("restore employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeRestoredEvent{
			EventType:  events.TypeEmployeeRestored,
			RequestID:  rid,
			EmployeeID: empl.ID.String(),
			OccurredAt: time.Now().UTC(),
		}
		if err := s.queueOutboxEvent(ctx, tx, empl.ID.String(), event.EventType, rid, event); err != nil {
			s.logger.Error("restore employee outbox persist failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("restore employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateSupervisorCache(ctx, string(empl.Department))

	s.logger.Info("restore employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	return mapToResponse(*empl), nil
}

func (s *service) queueOutboxEvent(ctx context.Context, tx *sql.Tx, aggregateID, eventType, rid string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	outboxRepo := s.outbox.WithTx(tx)
	return outboxRepo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "employee",
		AggregateID:   aggregateID,
		EventType:     eventType,
		Topic:         events.EmployeeLifecycleTopic,
		Payload:       body,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) invalidateSupervisorCache(ctx context.Context, departments ...string) {
	if s.rdb == nil {
		return
	}
	seen := make(map[string]struct{}, len(departments))
	for _, dept := range departments {
		if dept == "" {
			continue
		}
		if _, dup := seen[dept]; dup {
			continue
		}
		seen[dept] = struct{}{}

		cacheKey := GetSupervisorOptionsKey(dept)
		if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
			s.logger.Error("failed to invalidate supervisor options cache",
				zap.Error(err),
				zap.String("key", cacheKey),
			)
		}
	}
}

func applyUpdate(empl *Employee, req UpdateEmployeeRequest) {
	startDate, _ := time.Parse("2006-01-02", req.StartDate)

	empl.Position = req.Position
	empl.Department = Department(req.Department)
	empl.EmploymentStatus = EmploymentStatus(req.EmploymentStatus)
	empl.ContractType = ContractType(req.ContractType)
	empl.ShiftPattern = ShiftPattern(req.ShiftPattern)
	empl.BasicSalary = req.BasicSalary
	empl.WorkLocation = req.WorkLocation
	empl.StartDate = startDate
	empl.EmergencyContactName = req.EmergencyContactName
	empl.EmergencyContactPhone = req.EmergencyContactPhone

	if req.ProbationEndDate != "" {
		probationEnd, _ := time.Parse("2006-01-02", req.ProbationEndDate)
		empl.ProbationEndDate = &probationEnd
	} else {
		empl.ProbationEndDate = nil
	}

	if req.SupervisorID != "" {
		if supervisorID, err := uuid.Parse(req.SupervisorID); err == nil {
			empl.SupervisorID = &supervisorID
		}
	} else {
		empl.SupervisorID = nil
	}

	empl.IsActive = empl.EmploymentStatus != EmploymentTerminated &&
		empl.EmploymentStatus != EmploymentResigned
}

// ToResponse dipakai lintas paket (mis. response migrasi).
func ToResponse(empl Employee) EmployeeResponse {
	return mapToResponse(empl)
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                    empl.ID.String(),
		EmployeeCode:          empl.EmployeeCode,
		FullName:              empl.FullName,
		Position:              empl.Position,
		Department:            string(empl.Department),
		DepartmentLabel:       empl.Department.DisplayName(),
		EmploymentStatus:      string(empl.EmploymentStatus),
		EmploymentStatusLabel: empl.EmploymentStatus.DisplayName(),
		ContractType:          string(empl.ContractType),
		ShiftPattern:          string(empl.ShiftPattern),
		BasicSalary:           empl.BasicSalary,
		WorkLocation:          empl.WorkLocation,
		StartDate:             empl.StartDate.Format("2006-01-02"),
		TerminationReason:     empl.TerminationReason,
		EmergencyContactName:  empl.EmergencyContactName,
		EmergencyContactPhone: empl.EmergencyContactPhone,
		SupervisorID:          uuidToString(empl.SupervisorID),
		SubordinatesCount:     empl.SubordinatesCount,
		IsActive:              empl.IsActive,
	}
	if empl.RecruitmentFormID != nil {
		resp.RecruitmentFormID = empl.RecruitmentFormID.String()
	}
	if empl.ProbationEndDate != nil {
		resp.ProbationEndDate = empl.ProbationEndDate.Format("2006-01-02")
	}
	if empl.TerminationDate != nil {
		resp.TerminationDate = empl.TerminationDate.Format("2006-01-02")
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
