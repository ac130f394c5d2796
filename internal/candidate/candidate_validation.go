package candidate

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Aturan bisnis form lamaran. Murni dan sinkron: tidak ada I/O,
// seluruh pelanggaran diakumulasi dan dikembalikan sekaligus.

var phonePattern = regexp.MustCompile(`^(\+62|62|0)[0-9]{8,13}$`)

const (
	minHeightCm = 100
	maxHeightCm = 250
	minWeightKg = 30
	maxWeightKg = 200
	minAgeYears = 17
	maxAgeYears = 65
)

// ValidPhone mengecek nomor telepon Indonesia setelah membuang spasi dan strip.
func ValidPhone(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(phone)
	return phonePattern.MatchString(cleaned)
}

// ValidateApplication mengembalikan daftar pesan error; kosong berarti valid.
func ValidateApplication(req ApplicationRequest) []string {
	errs := make([]string, 0)

	required := []struct {
		value string
		label string
	}{
		{req.FullName, "Full Name"},
		{req.Email, "Email"},
		{req.Phone, "Phone"},
		{req.BirthPlace, "Birth Place"},
		{req.BirthDate, "Birth Date"},
		{req.Province, "Province"},
		{req.MaritalStatus, "Marital Status"},
		{req.AppliedPosition, "Applied Position"},
		{req.Education, "Education"},
		{req.ExperienceLevel, "Experience Level"},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, f.label+" is required")
		}
	}

	if req.Phone != "" && !ValidPhone(req.Phone) {
		errs = append(errs, "Phone must be a valid Indonesian phone number")
	}

	if req.HeightCm < minHeightCm || req.HeightCm > maxHeightCm {
		errs = append(errs, fmt.Sprintf("Height must be between %d and %d cm", minHeightCm, maxHeightCm))
	}
	if req.WeightKg < minWeightKg || req.WeightKg > maxWeightKg {
		errs = append(errs, fmt.Sprintf("Weight must be between %d and %d kg", minWeightKg, maxWeightKg))
	}

	if req.BirthDate != "" {
		birthDate, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			errs = append(errs, "Birth Date must be a valid date (YYYY-MM-DD)")
		} else {
			age := ageInYears(birthDate, time.Now())
			if age < minAgeYears || age > maxAgeYears {
				errs = append(errs, fmt.Sprintf("Age must be between %d and %d years", minAgeYears, maxAgeYears))
			}
		}
	}

	if req.Province != "" {
		if _, ok := provinces[req.Province]; !ok {
			errs = append(errs, "Province is not a recognized province")
		}
	}
	if req.Education != "" {
		if _, ok := educationLevels[req.Education]; !ok {
			errs = append(errs, "Education is not a recognized education level")
		}
	}
	if req.MaritalStatus != "" {
		if _, ok := maritalStatuses[req.MaritalStatus]; !ok {
			errs = append(errs, "Marital Status is not a recognized value")
		}
	}
	if req.AppliedPosition != "" && !ValidPosition(req.AppliedPosition) {
		errs = append(errs, "Applied Position is not a recognized position")
	}
	if req.ExperienceLevel != "" {
		if _, ok := experienceLevels[req.ExperienceLevel]; !ok {
			errs = append(errs, "Experience Level is not a recognized value")
		}
	}
	for _, cert := range req.Certificates {
		if _, ok := certificateTypes[cert]; !ok {
			errs = append(errs, fmt.Sprintf("Certificate %q is not a recognized certificate type", cert))
		}
	}

	return errs
}

func ageInYears(birthDate, now time.Time) int {
	age := now.Year() - birthDate.Year()
	if now.YearDay() < birthDate.YearDay() {
		age--
	}
	return age
}

// UploadedFile mendeskripsikan satu dokumen lamaran yang dideklarasikan pelamar.
type UploadedFile struct {
	Slot        string `json:"slot"` // photo, cv, ktp, skck, vaccine, supporting
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
}

type uploadRule struct {
	label        string
	maxBytes     int64
	allowedMIMEs map[string]struct{}
}

var imageMIMEs = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

var documentMIMEs = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/png":       {},
	"image/webp":      {},
}

const mb = 1024 * 1024

// Batas per slot bersifat inklusif: ukuran == batas masih lolos.
var uploadRules = map[string]uploadRule{
	"photo":      {label: "Photo", maxBytes: 3 * mb, allowedMIMEs: imageMIMEs},
	"cv":         {label: "CV", maxBytes: 2 * mb, allowedMIMEs: documentMIMEs},
	"ktp":        {label: "KTP", maxBytes: 1 * mb, allowedMIMEs: documentMIMEs},
	"skck":       {label: "SKCK", maxBytes: 2 * mb, allowedMIMEs: documentMIMEs},
	"vaccine":    {label: "Vaccine Certificate", maxBytes: 2 * mb, allowedMIMEs: documentMIMEs},
	"supporting": {label: "Supporting Document", maxBytes: 3 * mb, allowedMIMEs: documentMIMEs},
}

// ValidateFileUploads mengecek tipe MIME dan ukuran per slot.
func ValidateFileUploads(files []UploadedFile) []string {
	errs := make([]string, 0)

	for _, f := range files {
		rule, ok := uploadRules[f.Slot]
		if !ok {
			errs = append(errs, fmt.Sprintf("Unknown upload slot %q", f.Slot))
			continue
		}

		if _, allowed := rule.allowedMIMEs[f.ContentType]; !allowed {
			errs = append(errs, fmt.Sprintf("%s has an unsupported file type (%s)", rule.label, f.ContentType))
		}
		if f.SizeBytes > rule.maxBytes {
			errs = append(errs, fmt.Sprintf("%s exceeds the maximum size of %d MB", rule.label, rule.maxBytes/mb))
		}
	}

	return errs
}
