package employee

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Aturan bisnis edit/terminasi karyawan. Murni, akumulatif:
// caller menerima nol error (lanjut) atau daftar lengkap (tampilkan semua).

var phonePattern = regexp.MustCompile(`^(\+62|62|0)[0-9]{8,13}$`)

const (
	minBasicSalary = 0
	maxBasicSalary = 1_000_000_000
)

// ValidPhone menerima format lokal maupun +62, spasi dan strip diabaikan.
func ValidPhone(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(phone)
	return phonePattern.MatchString(cleaned)
}

// ValidateUpdate mengecek payload edit terhadap konteks sesi edit.
func ValidateUpdate(req UpdateEmployeeRequest, uctx UpdateContext) []string {
	errs := make([]string, 0)

	if strings.TrimSpace(req.Position) == "" {
		errs = append(errs, "Position is required")
	}
	if !Department(req.Department).Valid() {
		errs = append(errs, "Department is not a recognized department")
	}
	switch status := EmploymentStatus(req.EmploymentStatus); {
	case !status.Valid():
		errs = append(errs, "Employment Status is not a recognized value")
	case status == EmploymentTerminated || status == EmploymentResigned:
		// Status akhir hanya lewat workflow terminasi, bukan edit biasa
		errs = append(errs, fmt.Sprintf("Employment Status %s can only be set through the termination workflow", status))
	}
	if !ContractType(req.ContractType).Valid() {
		errs = append(errs, "Contract Type is not a recognized value")
	}
	if !ShiftPattern(req.ShiftPattern).Valid() {
		errs = append(errs, "Shift Pattern is not a recognized value")
	}

	if req.BasicSalary != nil {
		if *req.BasicSalary < minBasicSalary || *req.BasicSalary > maxBasicSalary {
			errs = append(errs, fmt.Sprintf("Basic Salary must be between %d and %d", minBasicSalary, maxBasicSalary))
		}
	}

	if req.EmergencyContactPhone != "" && !ValidPhone(req.EmergencyContactPhone) {
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

	if req.SupervisorID != "" {
		if req.SupervisorID == uctx.CurrentEmployeeID {
			errs = append(errs, "An employee cannot be their own supervisor")
		} else {
			found := false
			for _, s := range uctx.AvailableSupervisors {
				if s.ID == req.SupervisorID {
					found = true
					break
				}
			}
			if !found {
				errs = append(errs, "Supervisor must be selected from the available supervisors for the department")
			}
		}
	}

	return errs
}

// ValidateTermination mengecek metadata terminasi, baik soft maupun hard delete.
// startDate dipakai untuk menjaga urutan tanggal; zero value melewatkan cek itu.
func ValidateTermination(req TerminateRequest, startDate time.Time) []string {
	errs := make([]string, 0)

	if strings.TrimSpace(req.TerminationReason) == "" {
		errs = append(errs, "Termination Reason is required")
	}

	if req.TerminationDate != "" {
		terminationDate, err := time.Parse("2006-01-02", req.TerminationDate)
		if err != nil {
			errs = append(errs, "Termination Date must be a valid date (YYYY-MM-DD)")
		} else {
			if terminationDate.After(endOfToday()) {
				errs = append(errs, "Termination Date must not be in the future")
			}
			if !startDate.IsZero() && !terminationDate.After(startDate) {
				errs = append(errs, "Termination Date must be after Start Date")
			}
		}
	}

	if req.HardDelete && !req.ConfirmHardDelete {
		errs = append(errs, "Hard delete requires explicit confirmation")
	}

	return errs
}

func endOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
}
