package candidate

type ApplicationRequest struct {
	FullName        string   `json:"full_name" binding:"required"`
	Email           string   `json:"email" binding:"required,email"`
	Phone           string   `json:"phone" binding:"required"`
	Address         string   `json:"address"`
	BirthPlace      string   `json:"birth_place" binding:"required"`
	BirthDate       string   `json:"birth_date" binding:"required"`
	Province        string   `json:"province" binding:"required"`
	HeightCm        int      `json:"height_cm" binding:"required"`
	WeightKg        int      `json:"weight_kg" binding:"required"`
	MaritalStatus   string   `json:"marital_status" binding:"required"`
	AppliedPosition string   `json:"applied_position" binding:"required"`
	Education       string   `json:"education" binding:"required"`
	ExperienceLevel string   `json:"experience_level" binding:"required"`
	Certificates    []string `json:"certificates"`

	PhotoURL      string `json:"photo_url"`
	CVURL         string `json:"cv_url"`
	KTPURL        string `json:"ktp_url"`
	SKCKURL       string `json:"skck_url"`
	VaccineURL    string `json:"vaccine_url"`
	SupportingURL string `json:"supporting_url"`

	// Metadata file yang sudah diunggah pelamar ke object storage;
	// dicek terhadap aturan MIME/ukuran per slot sebelum lamaran diterima.
	Documents []UploadedFile `json:"documents"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CandidateResponse struct {
	ID              string   `json:"id"`
	FullName        string   `json:"full_name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Address         string   `json:"address,omitempty"`
	BirthPlace      string   `json:"birth_place"`
	BirthDate       string   `json:"birth_date"`
	Province        string   `json:"province"`
	HeightCm        int      `json:"height_cm"`
	WeightKg        int      `json:"weight_kg"`
	MaritalStatus   string   `json:"marital_status"`
	AppliedPosition string   `json:"applied_position"`
	PositionLabel   string   `json:"position_label"`
	Education       string   `json:"education"`
	ExperienceLevel string   `json:"experience_level"`
	Certificates    []string `json:"certificates,omitempty"`

	PhotoURL      string `json:"photo_url,omitempty"`
	CVURL         string `json:"cv_url,omitempty"`
	KTPURL        string `json:"ktp_url,omitempty"`
	SKCKURL       string `json:"skck_url,omitempty"`
	VaccineURL    string `json:"vaccine_url,omitempty"`
	SupportingURL string `json:"supporting_url,omitempty"`

	Status          string `json:"status"`
	StatusLabel     string `json:"status_label"`
	DashboardStatus string `json:"dashboard_status"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

type ListFilter struct {
	Status          string
	DashboardStatus string
	Position        string
}
