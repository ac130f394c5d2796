package candidate

import (
	"context"
	"database/sql"

	"go-recruit/internal/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=candidate_repo.go -destination=mock/candidate_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, cand *Candidate) error
	FindAll(ctx context.Context, filter ListFilter) ([]Candidate, error)
	FindByID(ctx context.Context, id string) (*Candidate, error)
	UpdateStatus(ctx context.Context, id string, status RecruitmentStatus) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx mengembalikan repository yang seluruh statement-nya berjalan
// di atas tx milik pemanggil. Commit/rollback tetap tanggung jawab pemanggil.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) Create(ctx context.Context, cand *Candidate) error {
	return r.db.WithContext(ctx).Create(cand).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Candidate, error) {
	q := r.db.WithContext(ctx).Model(&Candidate{})

	if filter.Status != "" {
		q = q.Scopes(scope.Status(filter.Status))
	} else if filter.DashboardStatus != "" {
		statuses := ExpandDashboardStatus(filter.DashboardStatus)
		if len(statuses) > 0 {
			q = q.Where("status IN ?", statuses)
		}
	}
	if filter.Position != "" {
		q = q.Where("applied_position = ?", filter.Position)
	}

	var cands []Candidate
	err := q.Order("created_at DESC").Find(&cands).Error
	return cands, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Candidate, error) {
	var cand Candidate
	err := r.db.WithContext(ctx).First(&cand, "id = ?", id).Error
	return &cand, err
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status RecruitmentStatus) error {
	return r.db.WithContext(ctx).
		Model(&Candidate{}).
		Where("id = ?", id).
		Update("status", status).Error
}
