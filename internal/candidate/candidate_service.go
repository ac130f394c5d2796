package candidate

import (
	"context"
	"time"

	candidateerrors "go-recruit/internal/candidate/errors"
	"go-recruit/internal/shared/apperror"
	"go-recruit/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=candidate_service.go -destination=mock/candidate_service_mock.go -package=mock
type Service interface {
	SubmitApplication(ctx context.Context, req ApplicationRequest) (CandidateResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]CandidateResponse, error)
	GetByID(ctx context.Context, id string) (CandidateResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (CandidateResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("candidate.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("candidate.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) SubmitApplication(ctx context.Context, req ApplicationRequest) (CandidateResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("submit application requested",
		zap.String("request_id", rid),
		zap.String("applied_position", req.AppliedPosition),
		zap.String("email", req.Email),
	)

	errs := ValidateApplication(req)
	errs = append(errs, ValidateFileUploads(req.Documents)...)
	if len(errs) > 0 {
		s.logger.Warn("submit application validation failed",
			zap.String("request_id", rid),
			zap.Strings("errors", errs),
		)
		return CandidateResponse{}, apperror.Validation(errs)
	}

	birthDate, _ := time.Parse("2006-01-02", req.BirthDate)

	cand := &Candidate{
		ID:              uuid.New(),
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		Address:         req.Address,
		BirthPlace:      req.BirthPlace,
		BirthDate:       birthDate,
		Province:        req.Province,
		HeightCm:        req.HeightCm,
		WeightKg:        req.WeightKg,
		MaritalStatus:   req.MaritalStatus,
		AppliedPosition: req.AppliedPosition,
		Education:       req.Education,
		ExperienceLevel: req.ExperienceLevel,
		Certificates:    req.Certificates,
		PhotoURL:        req.PhotoURL,
		CVURL:           req.CVURL,
		KTPURL:          req.KTPURL,
		SKCKURL:         req.SKCKURL,
		VaccineURL:      req.VaccineURL,
		SupportingURL:   req.SupportingURL,
		Status:          StatusPending,
	}

	if err := s.repo.Create(ctx, cand); err != nil {
		s.logger.Error("submit application persist failed", zap.String("request_id", rid), zap.Error(err))
		return CandidateResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("application submitted",
		zap.String("request_id", rid),
		zap.String("candidate_id", cand.ID.String()),
	)

	return mapToResponse(*cand), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]CandidateResponse, error) {
	s.logger.Debug("get all candidates requested",
		zap.String("status", filter.Status),
		zap.String("dashboard_status", filter.DashboardStatus),
	)

	if filter.Status != "" && !RecruitmentStatus(filter.Status).Valid() {
		return nil, candidateerrors.ErrInvalidStatus
	}

	cands, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all candidates failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(cands), nil
}

func (s *service) GetByID(ctx context.Context, id string) (CandidateResponse, error) {
	s.logger.Debug("get candidate by id requested", zap.String("candidate_id", id))

	cand, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get candidate by id failed", zap.Error(err))
		return CandidateResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*cand), nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (CandidateResponse, error) {
	s.logger.Debug("update candidate status requested",
		zap.String("candidate_id", id),
		zap.String("status", req.Status),
	)

	status := RecruitmentStatus(req.Status)
	if !status.Valid() {
		return CandidateResponse{}, candidateerrors.ErrInvalidStatus
	}
	// HIRED hanya bisa dicapai lewat workflow migrasi
	if status == StatusHired {
		return CandidateResponse{}, candidateerrors.ErrHiredViaStatusUpdate
	}

	cand, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update candidate status fetch failed", zap.Error(err))
		return CandidateResponse{}, mapRepositoryError(err)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		s.logger.Error("update candidate status persist failed", zap.Error(err))
		return CandidateResponse{}, mapRepositoryError(err)
	}

	cand.Status = status
	s.logger.Info("candidate status updated",
		zap.String("candidate_id", id),
		zap.String("status", string(status)),
	)

	return mapToResponse(*cand), nil
}

func mapToResponse(cand Candidate) CandidateResponse {
	return CandidateResponse{
		ID:              cand.ID.String(),
		FullName:        cand.FullName,
		Email:           cand.Email,
		Phone:           cand.Phone,
		Address:         cand.Address,
		BirthPlace:      cand.BirthPlace,
		BirthDate:       cand.BirthDate.Format("2006-01-02"),
		Province:        cand.Province,
		HeightCm:        cand.HeightCm,
		WeightKg:        cand.WeightKg,
		MaritalStatus:   cand.MaritalStatus,
		AppliedPosition: cand.AppliedPosition,
		PositionLabel:   PositionDisplayName(cand.AppliedPosition),
		Education:       cand.Education,
		ExperienceLevel: cand.ExperienceLevel,
		Certificates:    cand.Certificates,
		PhotoURL:        cand.PhotoURL,
		CVURL:           cand.CVURL,
		KTPURL:          cand.KTPURL,
		SKCKURL:         cand.SKCKURL,
		VaccineURL:      cand.VaccineURL,
		SupportingURL:   cand.SupportingURL,
		Status:          string(cand.Status),
		StatusLabel:     cand.Status.DisplayName(),
		DashboardStatus: cand.Status.DashboardStatus(),
		CreatedAt:       cand.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       cand.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(cands []Candidate) []CandidateResponse {
	res := make([]CandidateResponse, len(cands))
	for i, c := range cands {
		res[i] = mapToResponse(c)
	}
	return res
}
