package employee

import "go-recruit/internal/changeset"

// UpdateEmployeeRequest adalah payload edit lengkap (bukan partial patch):
// seluruh field mutable ikut dikirim, diff dihitung di server.
type UpdateEmployeeRequest struct {
	Position         string `json:"position" binding:"required"`
	Department       string `json:"department" binding:"required"`
	EmploymentStatus string `json:"employment_status" binding:"required"`
	ContractType     string `json:"contract_type" binding:"required"`
	ShiftPattern     string `json:"shift_pattern" binding:"required"`

	BasicSalary      *int64 `json:"basic_salary"`
	WorkLocation     string `json:"work_location"`
	StartDate        string `json:"start_date" binding:"required"`
	ProbationEndDate string `json:"probation_end_date"`

	EmergencyContactName  string `json:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone"`

	SupervisorID string `json:"supervisor_id"`
}

type TerminateRequest struct {
	TerminationReason string `json:"termination_reason" binding:"required"`
	TerminationDate   string `json:"termination_date"`
	HardDelete        bool   `json:"hard_delete"`
	ConfirmHardDelete bool   `json:"confirm_hard_delete"`
}

type SupervisorOption struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employee_id"`
	FullName     string `json:"full_name"`
	Department   string `json:"department"`
}

type EmployeeResponse struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employee_id"`

	RecruitmentFormID string `json:"recruitment_form_id,omitempty"`

	FullName              string `json:"full_name"`
	Position              string `json:"position"`
	Department            string `json:"department"`
	DepartmentLabel       string `json:"department_label"`
	EmploymentStatus      string `json:"employment_status"`
	EmploymentStatusLabel string `json:"employment_status_label"`
	ContractType          string `json:"contract_type"`
	ShiftPattern          string `json:"shift_pattern"`

	BasicSalary      *int64 `json:"basic_salary,omitempty"`
	WorkLocation     string `json:"work_location,omitempty"`
	StartDate        string `json:"start_date"`
	ProbationEndDate string `json:"probation_end_date,omitempty"`

	TerminationDate   string `json:"termination_date,omitempty"`
	TerminationReason string `json:"termination_reason,omitempty"`

	EmergencyContactName  string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string `json:"emergency_contact_phone,omitempty"`

	SupervisorID      string `json:"supervisor_id,omitempty"`
	SubordinatesCount int64  `json:"subordinates_count"`

	IsActive bool `json:"is_active"`

	// Diisi hanya pada response Update, untuk tampilan konfirmasi/audit
	Changes []changeset.Change `json:"changes,omitempty"`
}

type ListFilter struct {
	Department       string
	EmploymentStatus string
	ActiveOnly       bool
}

// UpdateContext membawa konteks validasi yang tidak ada di payload:
// identitas karyawan yang diedit dan daftar supervisor sah per departemen.
type UpdateContext struct {
	CurrentEmployeeID    string
	AvailableSupervisors []SupervisorOption
}
