package candidate

import (
	"time"

	"github.com/google/uuid"
)

type Candidate struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName   string
	Email      string `gorm:"index"`
	Phone      string
	Address    string
	BirthPlace string
	BirthDate  time.Time
	Province   string
	HeightCm   int
	WeightKg   int

	MaritalStatus   string
	AppliedPosition string
	Education       string
	ExperienceLevel string
	Certificates    []string `gorm:"serializer:json"`

	// Referensi dokumen hasil upload (opaque URL)
	PhotoURL      string
	CVURL         string `gorm:"column:cv_url"`
	KTPURL        string `gorm:"column:ktp_url"`
	SKCKURL       string `gorm:"column:skck_url"`
	VaccineURL    string
	SupportingURL string

	Status    RecruitmentStatus `gorm:"type:varchar(32);index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
