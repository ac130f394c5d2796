package migration

import "go-recruit/internal/employee"

// MigrateRequest membawa field tambahan yang tidak ada di lamaran.
// EmployeeCode opsional: kosong berarti digenerate dari counter departemen.
// EmploymentStatus opsional: kosong berarti karyawan baru masuk masa PROBATION.
type MigrateRequest struct {
	EmployeeCode string `json:"employee_id"`

	Position         string `json:"position"`
	Department       string `json:"department" binding:"required"`
	EmploymentStatus string `json:"employment_status"`
	ContractType     string `json:"contract_type" binding:"required"`
	ShiftPattern     string `json:"shift_pattern" binding:"required"`

	BasicSalary      *int64 `json:"basic_salary"`
	WorkLocation     string `json:"work_location"`
	StartDate        string `json:"start_date" binding:"required"`
	ProbationEndDate string `json:"probation_end_date"`

	EmergencyContactName  string `json:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone"`
}

type MigrationResponse struct {
	CandidateID     string                    `json:"candidate_id"`
	CandidateStatus string                    `json:"candidate_status"`
	Employee        employee.EmployeeResponse `json:"employee"`
}
