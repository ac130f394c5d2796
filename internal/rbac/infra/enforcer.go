package infra

import (
	"fmt"

	"github.com/casbin/casbin/v2"
)

// NewEnforcer memuat model otorisasi role/resource/action dari file conf.
// Policy tidak ikut dimuat di sini: rbac.Service menyuntik ulang policy
// dari database setiap kali daftar permission berubah.
func NewEnforcer(modelPath string) (*casbin.Enforcer, error) {
	e, err := casbin.NewEnforcer(modelPath)
	if err != nil {
		return nil, fmt.Errorf("load rbac model %s: %w", modelPath, err)
	}
	return e, nil
}
