package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode string    `gorm:"uniqueIndex:uq_employee_code"`

	// Referensi balik ke lamaran asal (opsional, satu-satu)
	RecruitmentFormID *uuid.UUID `gorm:"type:uuid;index"`

	FullName         string
	Position         string
	Department       Department       `gorm:"type:varchar(32);index"`
	EmploymentStatus EmploymentStatus `gorm:"type:varchar(16);index"`
	ContractType     ContractType     `gorm:"type:varchar(16)"`
	ShiftPattern     ShiftPattern     `gorm:"type:varchar(16)"`

	BasicSalary       *int64
	WorkLocation      string
	StartDate         time.Time
	ProbationEndDate  *time.Time
	TerminationDate   *time.Time
	TerminationReason string

	EmergencyContactName  string
	EmergencyContactPhone string

	// Maksimal satu supervisor, tidak boleh diri sendiri
	SupervisorID *uuid.UUID `gorm:"type:uuid;index"`

	IsActive  bool `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Derived, diisi repo via subquery
	SubordinatesCount int64 `gorm:"-"`
}
