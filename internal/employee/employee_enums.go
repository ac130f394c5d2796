package employee

import (
	"fmt"
	"regexp"
)

type Department string

const (
	DeptProduction       Department = "PRODUCTION"
	DeptEngineering      Department = "ENGINEERING"
	DeptQualityAssurance Department = "QUALITY_ASSURANCE"
	DeptHumanResources   Department = "HUMAN_RESOURCES"
	DeptFinance          Department = "FINANCE"
	DeptIT               Department = "IT"
	DeptWarehouse        Department = "WAREHOUSE"
	DeptProcurement      Department = "PROCUREMENT"
	DeptMarketing        Department = "MARKETING"
	DeptGeneralAffairs   Department = "GENERAL_AFFAIRS"
)

// Lookup eksplisit, bukan transformasi string saat runtime:
// nilai yang tidak dikenal gagal di boundary validasi.
var departmentDisplayNames = map[Department]string{
	DeptProduction:       "Production",
	DeptEngineering:      "Engineering",
	DeptQualityAssurance: "Quality Assurance",
	DeptHumanResources:   "Human Resources",
	DeptFinance:          "Finance",
	DeptIT:               "IT",
	DeptWarehouse:        "Warehouse",
	DeptProcurement:      "Procurement",
	DeptMarketing:        "Marketing",
	DeptGeneralAffairs:   "General Affairs",
}

var departmentPrefixes = map[Department]string{
	DeptProduction:       "PRD",
	DeptEngineering:      "ENG",
	DeptQualityAssurance: "QA",
	DeptHumanResources:   "HR",
	DeptFinance:          "FIN",
	DeptIT:               "IT",
	DeptWarehouse:        "WH",
	DeptProcurement:      "PRC",
	DeptMarketing:        "MKT",
	DeptGeneralAffairs:   "GA",
}

func (d Department) Valid() bool {
	_, ok := departmentDisplayNames[d]
	return ok
}

func (d Department) DisplayName() string {
	if name, ok := departmentDisplayNames[d]; ok {
		return name
	}
	return string(d)
}

func (d Department) Prefix() string {
	return departmentPrefixes[d]
}

func DepartmentDisplayNames() map[string]string {
	out := make(map[string]string, len(departmentDisplayNames))
	for k, v := range departmentDisplayNames {
		out[string(k)] = v
	}
	return out
}

type EmploymentStatus string

const (
	EmploymentProbation  EmploymentStatus = "PROBATION"
	EmploymentPermanent  EmploymentStatus = "PERMANENT"
	EmploymentContract   EmploymentStatus = "CONTRACT"
	EmploymentTerminated EmploymentStatus = "TERMINATED"
	EmploymentResigned   EmploymentStatus = "RESIGNED"
)

var employmentStatusDisplayNames = map[EmploymentStatus]string{
	EmploymentProbation:  "Probation",
	EmploymentPermanent:  "Permanent",
	EmploymentContract:   "Contract",
	EmploymentTerminated: "Terminated",
	EmploymentResigned:   "Resigned",
}

func (s EmploymentStatus) Valid() bool {
	_, ok := employmentStatusDisplayNames[s]
	return ok
}

func (s EmploymentStatus) DisplayName() string {
	if name, ok := employmentStatusDisplayNames[s]; ok {
		return name
	}
	return string(s)
}

func EmploymentStatusDisplayNames() map[string]string {
	out := make(map[string]string, len(employmentStatusDisplayNames))
	for k, v := range employmentStatusDisplayNames {
		out[string(k)] = v
	}
	return out
}

type ContractType string

const (
	ContractPKWT       ContractType = "PKWT"
	ContractPKWTT      ContractType = "PKWTT"
	ContractInternship ContractType = "INTERNSHIP"
	ContractOutsource  ContractType = "OUTSOURCE"
)

var contractTypes = map[ContractType]struct{}{
	ContractPKWT:       {},
	ContractPKWTT:      {},
	ContractInternship: {},
	ContractOutsource:  {},
}

func (t ContractType) Valid() bool {
	_, ok := contractTypes[t]
	return ok
}

type ShiftPattern string

const (
	ShiftNone  ShiftPattern = "NON_SHIFT"
	ShiftTwo   ShiftPattern = "SHIFT_2"
	ShiftThree ShiftPattern = "SHIFT_3"
)

var shiftPatterns = map[ShiftPattern]struct{}{
	ShiftNone:  {},
	ShiftTwo:   {},
	ShiftThree: {},
}

func (p ShiftPattern) Valid() bool {
	_, ok := shiftPatterns[p]
	return ok
}

// Kode karyawan: <prefix departemen>-<tahun>-<urutan 4 digit>, contoh HR-2026-0001
var employeeCodePattern = regexp.MustCompile(`^(PRD|ENG|QA|HR|FIN|IT|WH|PRC|MKT|GA)-\d{4}-\d{4}$`)

func ValidEmployeeCode(code string) bool {
	return employeeCodePattern.MatchString(code)
}

func FormatEmployeeCode(dept Department, year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%04d", dept.Prefix(), year, seq)
}
