package counter

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	GetNextValue(ctx context.Context, deptPrefix string, year int) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetNextValue(ctx context.Context, deptPrefix string, year int) (int64, error) {
	var nextValue int64

	// Use raw SQL for atomic UPSERT and increment to handle race conditions per department/year
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO employee_code_counters (dept_prefix, year, last_value, updated_at)
		VALUES (?, ?, 1, now())
		ON CONFLICT (dept_prefix, year) DO UPDATE
		SET last_value = employee_code_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, deptPrefix, year).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
