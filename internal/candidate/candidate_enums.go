package candidate

// RecruitmentStatus adalah satu-satunya status kanonik kandidat.
// Dashboard memakai proyeksi 3 nilai via DashboardStatus().
type RecruitmentStatus string

const (
	StatusPending         RecruitmentStatus = "PENDING"
	StatusOnProgress      RecruitmentStatus = "ON_PROGRESS"
	StatusInterview       RecruitmentStatus = "INTERVIEW"
	StatusPsikotest       RecruitmentStatus = "PSIKOTEST"
	StatusUserInterview   RecruitmentStatus = "USER_INTERVIEW"
	StatusMedicalCheckup  RecruitmentStatus = "MEDICAL_CHECKUP"
	StatusMedicalFollowup RecruitmentStatus = "MEDICAL_FOLLOWUP"
	StatusHired           RecruitmentStatus = "HIRED"
	StatusRejected        RecruitmentStatus = "REJECTED"
)

// Dashboard projection values
const (
	DashboardPending    = "PENDING"
	DashboardOnProgress = "ON_PROGRESS"
	DashboardCompleted  = "COMPLETED"
)

var statusDisplayNames = map[RecruitmentStatus]string{
	StatusPending:         "Pending",
	StatusOnProgress:      "On Progress",
	StatusInterview:       "Interview",
	StatusPsikotest:       "Psikotest",
	StatusUserInterview:   "User Interview",
	StatusMedicalCheckup:  "Medical Checkup",
	StatusMedicalFollowup: "Medical Followup",
	StatusHired:           "Hired",
	StatusRejected:        "Rejected",
}

func (s RecruitmentStatus) Valid() bool {
	_, ok := statusDisplayNames[s]
	return ok
}

func (s RecruitmentStatus) DisplayName() string {
	if name, ok := statusDisplayNames[s]; ok {
		return name
	}
	return string(s)
}

// DashboardStatus memproyeksikan 9 status ke 3 nilai tampilan dashboard.
// HIRED dan REJECTED keduanya tampil sebagai COMPLETED.
func (s RecruitmentStatus) DashboardStatus() string {
	switch s {
	case StatusPending:
		return DashboardPending
	case StatusHired, StatusRejected:
		return DashboardCompleted
	default:
		return DashboardOnProgress
	}
}

// ExpandDashboardStatus mengembalikan preimage dari nilai dashboard.
// Nilai yang bukan nilai dashboard mengembalikan nil.
func ExpandDashboardStatus(v string) []RecruitmentStatus {
	switch v {
	case DashboardPending:
		return []RecruitmentStatus{StatusPending}
	case DashboardCompleted:
		return []RecruitmentStatus{StatusHired, StatusRejected}
	case DashboardOnProgress:
		return []RecruitmentStatus{
			StatusOnProgress, StatusInterview, StatusPsikotest,
			StatusUserInterview, StatusMedicalCheckup, StatusMedicalFollowup,
		}
	}
	return nil
}

var positionDisplayNames = map[string]string{
	"OPERATOR_PRODUKSI":       "Operator Produksi",
	"PRODUCTION_GROUP_LEADER": "Production Group Leader",
	"QUALITY_INSPECTOR":       "Quality Inspector",
	"TECHNICIAN":              "Technician",
	"ADMIN_STAFF":             "Admin Staff",
	"WAREHOUSE_STAFF":         "Warehouse Staff",
	"DRIVER":                  "Driver",
	"SECURITY":                "Security",
}

func ValidPosition(v string) bool {
	_, ok := positionDisplayNames[v]
	return ok
}

func PositionDisplayName(v string) string {
	if name, ok := positionDisplayNames[v]; ok {
		return name
	}
	return v
}

var educationLevels = map[string]struct{}{
	"SD":      {},
	"SMP":     {},
	"SMA_SMK": {},
	"D3":      {},
	"S1":      {},
	"S2":      {},
}

var maritalStatuses = map[string]struct{}{
	"SINGLE":   {},
	"MARRIED":  {},
	"DIVORCED": {},
	"WIDOWED":  {},
}

var experienceLevels = map[string]struct{}{
	"FRESH_GRADUATE":      {},
	"ONE_TO_THREE_YEARS":  {},
	"THREE_TO_FIVE_YEARS": {},
	"OVER_FIVE_YEARS":     {},
}

var certificateTypes = map[string]struct{}{
	"K3":           {},
	"SIO_FORKLIFT": {},
	"WELDING":      {},
	"COMPUTER":     {},
	"LANGUAGE":     {},
	"OTHER":        {},
}

var provinces = map[string]struct{}{
	"ACEH": {}, "SUMATERA_UTARA": {}, "SUMATERA_BARAT": {}, "RIAU": {},
	"KEPULAUAN_RIAU": {}, "JAMBI": {}, "SUMATERA_SELATAN": {}, "BENGKULU": {},
	"LAMPUNG": {}, "KEPULAUAN_BANGKA_BELITUNG": {}, "DKI_JAKARTA": {},
	"JAWA_BARAT": {}, "JAWA_TENGAH": {}, "DI_YOGYAKARTA": {}, "JAWA_TIMUR": {},
	"BANTEN": {}, "BALI": {}, "NUSA_TENGGARA_BARAT": {}, "NUSA_TENGGARA_TIMUR": {},
	"KALIMANTAN_BARAT": {}, "KALIMANTAN_TENGAH": {}, "KALIMANTAN_SELATAN": {},
	"KALIMANTAN_TIMUR": {}, "KALIMANTAN_UTARA": {}, "SULAWESI_UTARA": {},
	"SULAWESI_TENGAH": {}, "SULAWESI_SELATAN": {}, "SULAWESI_TENGGARA": {},
	"GORONTALO": {}, "SULAWESI_BARAT": {}, "MALUKU": {}, "MALUKU_UTARA": {},
	"PAPUA": {}, "PAPUA_BARAT": {},
}
