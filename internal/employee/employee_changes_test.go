package employee_test

import (
	"testing"

	"go-recruit/internal/employee"

	"github.com/stretchr/testify/assert"
)

func TestHasUnsavedChanges(t *testing.T) {
	empl := storedEmployee()

	t.Run("identical draft reports nothing to save", func(t *testing.T) {
		req := validUpdateRequest()
		req.ProbationEndDate = ""

		assert.False(t, employee.HasUnsavedChanges(*empl, req))
	})

	t.Run("edited field reports unsaved changes", func(t *testing.T) {
		req := validUpdateRequest()
		req.ProbationEndDate = ""
		req.WorkLocation = "Plant 2"

		assert.True(t, employee.HasUnsavedChanges(*empl, req))
	})

	t.Run("date reformatting alone is not a change", func(t *testing.T) {
		req := validUpdateRequest()
		req.ProbationEndDate = ""
		// Tanggal sama, representasi beda: time.Time vs string
		req.StartDate = "2024-03-01"

		assert.False(t, employee.HasUnsavedChanges(*empl, req))
	})
}
