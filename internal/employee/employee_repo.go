package employee

import (
	"context"
	"database/sql"

	"go-recruit/internal/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context, filter ListFilter) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindActiveByRecruitmentFormID(ctx context.Context, recruitmentFormID string) (*Employee, error)
	FindSupervisorsByDepartment(ctx context.Context, department string) ([]Employee, error)
	CountSubordinates(ctx context.Context, supervisorID string) (int64, error)
	Update(ctx context.Context, empl *Employee) error
	HardDelete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Employee, error) {
	q := r.db.WithContext(ctx).Model(&Employee{})

	if filter.Department != "" {
		q = q.Where("department = ?", filter.Department)
	}
	if filter.EmploymentStatus != "" {
		q = q.Where("employment_status = ?", filter.EmploymentStatus)
	}
	if filter.ActiveOnly {
		q = q.Scopes(scope.Active())
	}

	var empls []Employee
	err := q.Order("employee_code ASC").Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}

	count, err := r.CountSubordinates(ctx, id)
	if err != nil {
		return nil, err
	}
	empl.SubordinatesCount = count

	return &empl, nil
}

func (r *repository) FindActiveByRecruitmentFormID(ctx context.Context, recruitmentFormID string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Scopes(scope.Active()).
		First(&empl, "recruitment_form_id = ?", recruitmentFormID).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindSupervisorsByDepartment(ctx context.Context, department string) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Scopes(scope.Active()).
		Where("department = ?", department).
		Order("full_name ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) CountSubordinates(ctx context.Context, supervisorID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(scope.Active()).
		Where("supervisor_id = ?", supervisorID).
		Count(&count).Error
	return count, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) HardDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id).Error
}
