package employee

import (
	"go-recruit/internal/changeset"

	"github.com/google/uuid"
)

// Deskriptor field yang ikut dibandingkan untuk audit "apa yang berubah".
// Kind menentukan strategi equality dan formatnya, bukan nama field.
func auditFields() []changeset.Field {
	return []changeset.Field{
		{Name: "position", Label: "Position", Kind: changeset.KindString},
		{Name: "department", Label: "Department", Kind: changeset.KindEnum, EnumLabels: DepartmentDisplayNames()},
		{Name: "employment_status", Label: "Employment Status", Kind: changeset.KindEnum, EnumLabels: EmploymentStatusDisplayNames()},
		{Name: "contract_type", Label: "Contract Type", Kind: changeset.KindString},
		{Name: "shift_pattern", Label: "Shift Pattern", Kind: changeset.KindString},
		{Name: "basic_salary", Label: "Basic Salary", Kind: changeset.KindCurrency},
		{Name: "work_location", Label: "Work Location", Kind: changeset.KindString},
		{Name: "start_date", Label: "Start Date", Kind: changeset.KindDate},
		{Name: "probation_end_date", Label: "Probation End Date", Kind: changeset.KindDate},
		{Name: "emergency_contact_name", Label: "Emergency Contact Name", Kind: changeset.KindString},
		{Name: "emergency_contact_phone", Label: "Emergency Contact Phone", Kind: changeset.KindString},
		{Name: "supervisor_id", Label: "Supervisor", Kind: changeset.KindString},
	}
}

func snapshotOf(e Employee) changeset.Snapshot {
	return changeset.Snapshot{
		"position":                e.Position,
		"department":              string(e.Department),
		"employment_status":       string(e.EmploymentStatus),
		"contract_type":           string(e.ContractType),
		"shift_pattern":           string(e.ShiftPattern),
		"basic_salary":            e.BasicSalary,
		"work_location":           e.WorkLocation,
		"start_date":              e.StartDate,
		"probation_end_date":      e.ProbationEndDate,
		"emergency_contact_name":  e.EmergencyContactName,
		"emergency_contact_phone": e.EmergencyContactPhone,
		"supervisor_id":           uuidToString(e.SupervisorID),
	}
}

func snapshotOfRequest(req UpdateEmployeeRequest) changeset.Snapshot {
	return changeset.Snapshot{
		"position":                req.Position,
		"department":              req.Department,
		"employment_status":       req.EmploymentStatus,
		"contract_type":           req.ContractType,
		"shift_pattern":           req.ShiftPattern,
		"basic_salary":            req.BasicSalary,
		"work_location":           req.WorkLocation,
		"start_date":              req.StartDate,
		"probation_end_date":      req.ProbationEndDate,
		"emergency_contact_name":  req.EmergencyContactName,
		"emergency_contact_phone": req.EmergencyContactPhone,
		"supervisor_id":           req.SupervisorID,
	}
}

// HasUnsavedChanges membandingkan record tersimpan dengan draft edit;
// dipakai klien untuk prompt "perubahan belum disimpan".
func HasUnsavedChanges(existing Employee, req UpdateEmployeeRequest) bool {
	return changeset.HasUnsavedChanges(snapshotOf(existing), snapshotOfRequest(req), auditFields())
}

func uuidToString(v *uuid.UUID) string {
	if v == nil {
		return ""
	}
	return v.String()
}
