package migration

import (
	"fmt"
	"strings"
	"time"

	"go-recruit/internal/employee"
)

const (
	minBasicSalary = 0
	maxBasicSalary = 1_000_000_000
)

// ValidateMigration mengecek draft migrasi sebelum karyawan dibuat.
// Akumulatif: semua pelanggaran dikembalikan sekaligus.
func ValidateMigration(req MigrateRequest) []string {
	errs := make([]string, 0)

	if strings.TrimSpace(req.Position) == "" {
		errs = append(errs, "Position is required")
	}

	if req.EmployeeCode != "" && !employee.ValidEmployeeCode(req.EmployeeCode) {
		errs = append(errs, "Employee ID must follow the <DEPT>-<YEAR>-<SEQ> format, e.g. HR-2026-0001")
	}

	if !employee.Department(req.Department).Valid() {
		errs = append(errs, "Department is not a recognized department")
	}
	if !employee.EmploymentStatus(req.EmploymentStatus).Valid() {
		errs = append(errs, "Employment Status is not a recognized value")
	}
	if !employee.ContractType(req.ContractType).Valid() {
		errs = append(errs, "Contract Type is not a recognized value")
	}
	if !employee.ShiftPattern(req.ShiftPattern).Valid() {
		errs = append(errs, "Shift Pattern is not a recognized value")
	}

	if req.BasicSalary != nil {
		if *req.BasicSalary < minBasicSalary || *req.BasicSalary > maxBasicSalary {
			errs = append(errs, fmt.Sprintf("Basic Salary must be between %d and %d", minBasicSalary, maxBasicSalary))
		}
	}

	if req.EmergencyContactPhone != "" && !employee.ValidPhone(req.EmergencyContactPhone) {
		errs = append(errs, "Emergency Contact Phone must be a valid Indonesian phone number")
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		errs = append(errs, "Start Date must be a valid date (YYYY-MM-DD)")
	}

	if req.ProbationEndDate != "" {
		probationEnd, perr := time.Parse("2006-01-02", req.ProbationEndDate)
		if perr != nil {
			errs = append(errs, "Probation End Date must be a valid date (YYYY-MM-DD)")
		} else if err == nil && !probationEnd.After(startDate) {
			errs = append(errs, "Probation End Date must be after Start Date")
		}
	}

	return errs
}
