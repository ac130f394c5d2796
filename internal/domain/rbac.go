package domain

// EnforceRequest dipakai lintas paket (middleware dan rbac) agar tidak
// terjadi import cycle antara keduanya.
type EnforceRequest struct {
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}
