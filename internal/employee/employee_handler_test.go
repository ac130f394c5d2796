package employee_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-recruit/internal/employee"
	employeeerrors "go-recruit/internal/employee/errors"
	"go-recruit/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	GetAllFn               func(ctx context.Context, filter employee.ListFilter) ([]employee.EmployeeResponse, error)
	GetByIDFn              func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	GetSupervisorOptionsFn func(ctx context.Context, department string) ([]employee.SupervisorOption, error)
	UpdateFn               func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	TerminateFn            func(ctx context.Context, id string, req employee.TerminateRequest) (employee.EmployeeResponse, error)
	RestoreFn              func(ctx context.Context, id string) (employee.EmployeeResponse, error)
}

func (f *fakeEmployeeService) GetAll(ctx context.Context, filter employee.ListFilter) ([]employee.EmployeeResponse, error) {
	return f.GetAllFn(ctx, filter)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) GetSupervisorOptions(ctx context.Context, department string) ([]employee.SupervisorOption, error) {
	return f.GetSupervisorOptionsFn(ctx, department)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Terminate(ctx context.Context, id string, req employee.TerminateRequest) (employee.EmployeeResponse, error) {
	return f.TerminateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Restore(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.RestoreFn(ctx, id)
}

func updateBody() string {
	return `{
		"position": "Quality Inspector",
		"department": "QUALITY_ASSURANCE",
		"employment_status": "PERMANENT",
		"contract_type": "PKWTT",
		"shift_pattern": "NON_SHIFT",
		"work_location": "Plant 2",
		"start_date": "2024-03-01"
	}`
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("sorted by name descending", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context, filter employee.ListFilter) ([]employee.EmployeeResponse, error) {
				return []employee.EmployeeResponse{
					{ID: "1", EmployeeCode: "QA-2024-0001", FullName: "Agus"},
					{ID: "2", EmployeeCode: "QA-2024-0002", FullName: "Zainal"},
				}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/employees?sort_by=name&sort_dir=desc", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Less(t, strings.Index(body, "Zainal"), strings.Index(body, "Agus"))
	})

	t.Run("filter forwarded to service", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context, filter employee.ListFilter) ([]employee.EmployeeResponse, error) {
				assert.Equal(t, "PRODUCTION", filter.Department)
				assert.True(t, filter.ActiveOnly)
				return nil, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/employees?department=production&active_only=true", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context, filter employee.ListFilter) ([]employee.EmployeeResponse, error) {
				return nil, errors.New("database error")
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/employees", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestEmployeeHandler_GetSupervisorOptions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("department query required", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/employees/supervisor-options", nil)

		h.GetSupervisorOptions(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInvalidInput)
		assert.Contains(t, w.Body.String(), "Department is required")
	})

	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetSupervisorOptionsFn: func(ctx context.Context, department string) ([]employee.SupervisorOption, error) {
				assert.Equal(t, "PRODUCTION", department)
				return []employee.SupervisorOption{
					{ID: uuid.New().String(), EmployeeCode: "PRD-2023-0001", FullName: "Siti Rahayu"},
				}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		// lowercase di query tetap dinormalisasi ke uppercase
		c.Request = httptest.NewRequest(http.MethodGet, "/employees/supervisor-options?department=production", nil)

		h.GetSupervisorOptions(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Siti Rahayu")
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns changes", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, gotID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, id, gotID)
				assert.Equal(t, "Plant 2", req.WorkLocation)
				return employee.EmployeeResponse{ID: gotID, WorkLocation: req.WorkLocation}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPut, "/employees/"+id, strings.NewReader(updateBody()))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = []gin.Param{{Key: "id", Value: id}}

		h.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Plant 2")
	})

	t.Run("binding error", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPut, "/employees/123", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = []gin.Param{{Key: "id", Value: "123"}}

		h.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInvalidInput)
		assert.Contains(t, w.Body.String(), "Position is required")
		assert.Contains(t, w.Body.String(), "Start Date is required")
		assert.NotContains(t, w.Body.String(), "validator.ValidationErrors")
	})

	t.Run("validation details surfaced", func(t *testing.T) {
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, apperror.Validation([]string{
					"An employee cannot be their own supervisor",
				})
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPut, "/employees/123", strings.NewReader(updateBody()))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = []gin.Param{{Key: "id", Value: "123"}}

		h.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "An employee cannot be their own supervisor")
	})
}

func TestEmployeeHandler_Terminate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("soft terminate returns employee", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakeEmployeeService{
			TerminateFn: func(ctx context.Context, gotID string, req employee.TerminateRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "Kontrak selesai", req.TerminationReason)
				assert.False(t, req.HardDelete)
				return employee.EmployeeResponse{ID: gotID, EmploymentStatus: "TERMINATED"}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/employees/"+id+"/terminate",
			strings.NewReader(`{"termination_reason":"Kontrak selesai"}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = []gin.Param{{Key: "id", Value: id}}

		h.Terminate(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "TERMINATED")
	})

	t.Run("hard delete returns deleted marker", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakeEmployeeService{
			TerminateFn: func(ctx context.Context, gotID string, req employee.TerminateRequest) (employee.EmployeeResponse, error) {
				assert.True(t, req.HardDelete)
				assert.True(t, req.ConfirmHardDelete)
				return employee.EmployeeResponse{ID: gotID}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/employees/"+id+"/terminate",
			strings.NewReader(`{"termination_reason":"Data ganda","hard_delete":true,"confirm_hard_delete":true}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = []gin.Param{{Key: "id", Value: id}}

		h.Terminate(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"deleted":true`)
		assert.Contains(t, w.Body.String(), id)
	})

	t.Run("already terminated rejected", func(t *testing.T) {
		svc := &fakeEmployeeService{
			TerminateFn: func(ctx context.Context, id string, req employee.TerminateRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeAlreadyTerminated
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/employees/123/terminate",
			strings.NewReader(`{"termination_reason":"Kontrak selesai"}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = []gin.Param{{Key: "id", Value: "123"}}

		h.Terminate(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInvalidState)
	})
}

func TestEmployeeHandler_Restore(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakeEmployeeService{
			RestoreFn: func(ctx context.Context, gotID string) (employee.EmployeeResponse, error) {
				assert.Equal(t, id, gotID)
				return employee.EmployeeResponse{ID: gotID, EmploymentStatus: "PERMANENT", IsActive: true}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/employees/"+id+"/restore", nil)
		c.Params = []gin.Param{{Key: "id", Value: id}}

		h.Restore(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "PERMANENT")
	})

	t.Run("not terminated", func(t *testing.T) {
		svc := &fakeEmployeeService{
			RestoreFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotTerminated
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/employees/123/restore", nil)
		c.Params = []gin.Param{{Key: "id", Value: "123"}}

		h.Restore(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
