package candidate_test

import (
	"os"
	"testing"

	"go-recruit/internal/shared/apperror"
)

// Daftarkan tag-name func sebelum binding pertama: go-playground/validator
// meng-cache metadata struct saat validasi pertama, jadi Init() harus jalan
// lebih dulu agar pesan error memakai nama field dari tag json.
func TestMain(m *testing.M) {
	apperror.Init()
	os.Exit(m.Run())
}
