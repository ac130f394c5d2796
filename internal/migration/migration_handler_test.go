package migration_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-recruit/internal/employee"
	"go-recruit/internal/migration"
	migrationerrors "go-recruit/internal/migration/errors"
	"go-recruit/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeMigrationService struct {
	MigrateFn func(ctx context.Context, candidateID string, req migration.MigrateRequest) (migration.MigrationResponse, error)
}

func (f *fakeMigrationService) Migrate(ctx context.Context, candidateID string, req migration.MigrateRequest) (migration.MigrationResponse, error) {
	return f.MigrateFn(ctx, candidateID, req)
}

func migrateBody() string {
	return `{
		"position": "HR Staff",
		"department": "HUMAN_RESOURCES",
		"employment_status": "PROBATION",
		"contract_type": "PKWT",
		"shift_pattern": "NON_SHIFT",
		"start_date": "2026-01-05"
	}`
}

func TestMigrationHandler_Migrate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		candidateID := uuid.New().String()
		svc := &fakeMigrationService{
			MigrateFn: func(ctx context.Context, gotID string, req migration.MigrateRequest) (migration.MigrationResponse, error) {
				assert.Equal(t, candidateID, gotID)
				assert.Equal(t, "HR Staff", req.Position)
				return migration.MigrationResponse{
					CandidateID:     gotID,
					CandidateStatus: "HIRED",
					Employee:        employee.EmployeeResponse{EmployeeCode: "HR-2026-0001"},
				}, nil
			},
		}

		h := migration.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/candidates/"+candidateID+"/migrate", strings.NewReader(migrateBody()))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = []gin.Param{{Key: "id", Value: candidateID}}

		h.Migrate(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "HIRED")
		assert.Contains(t, w.Body.String(), "HR-2026-0001")
	})

	t.Run("binding error", func(t *testing.T) {
		apperror.Init()

		h := migration.NewHandler(&fakeMigrationService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/candidates/123/migrate", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = []gin.Param{{Key: "id", Value: "123"}}

		h.Migrate(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInvalidInput)
		assert.Contains(t, w.Body.String(), "Department is required")
		assert.NotContains(t, w.Body.String(), "validator.ValidationErrors")
	})

	t.Run("employment status may be omitted", func(t *testing.T) {
		svc := &fakeMigrationService{
			MigrateFn: func(ctx context.Context, candidateID string, req migration.MigrateRequest) (migration.MigrationResponse, error) {
				assert.Empty(t, req.EmploymentStatus)
				return migration.MigrationResponse{CandidateStatus: "HIRED"}, nil
			},
		}

		h := migration.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{
			"position": "HR Staff",
			"department": "HUMAN_RESOURCES",
			"contract_type": "PKWT",
			"shift_pattern": "NON_SHIFT",
			"start_date": "2026-01-05"
		}`
		req := httptest.NewRequest(http.MethodPost, "/candidates/123/migrate", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = []gin.Param{{Key: "id", Value: "123"}}

		h.Migrate(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("already migrated conflict", func(t *testing.T) {
		svc := &fakeMigrationService{
			MigrateFn: func(ctx context.Context, candidateID string, req migration.MigrateRequest) (migration.MigrationResponse, error) {
				return migration.MigrationResponse{}, migrationerrors.ErrCandidateAlreadyMigrated
			},
		}

		h := migration.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/candidates/123/migrate", strings.NewReader(migrateBody()))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = []gin.Param{{Key: "id", Value: "123"}}

		h.Migrate(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeConflict)
	})
}
