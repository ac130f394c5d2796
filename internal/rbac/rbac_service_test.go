package rbac

import (
	"testing"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/stretchr/testify/assert"
)

type mockRepo struct{}

func (m *mockRepo) GetRolePermissions() ([]RolePermissionRow, error) {
	return []RolePermissionRow{
		{Role: "HR", Resource: "candidate", Action: "read"},
		{Role: "HR", Resource: "candidate", Action: "update"},
		{Role: "ADMIN", Resource: "employee", Action: "create"},
	}, nil
}

func (m *mockRepo) ListRoles() ([]RoleRow, error)             { return nil, nil }
func (m *mockRepo) ListPermissions() ([]PermissionRow, error) { return nil, nil }
func (m *mockRepo) GetPermissionsByRole(string) ([]PermissionRow, error) {
	return nil, nil
}
func (m *mockRepo) UpdateRolePermissions(string, []string) error { return nil }

func newTestEnforcer(t *testing.T) *casbin.Enforcer {
	modelText := `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = (g(r.sub, p.sub) || r.sub == p.sub) && r.obj == p.obj && r.act == p.act
`

	m, err := model.NewModelFromString(modelText)
	assert.NoError(t, err)

	e, err := casbin.NewEnforcer(m)
	assert.NoError(t, err)

	return e
}

func TestRBACService_Enforce(t *testing.T) {
	service := NewService(&mockRepo{}, newTestEnforcer(t))

	assert.NoError(t, service.LoadPolicy())

	allowed, err := service.Enforce(EnforceRequest{
		UserID:   "user-1",
		Role:     "HR",
		Resource: "candidate",
		Action:   "read",
	})
	assert.NoError(t, err)
	assert.True(t, allowed)

	// HR tidak boleh bikin karyawan langsung
	denied, err := service.Enforce(EnforceRequest{
		UserID:   "user-1",
		Role:     "HR",
		Resource: "employee",
		Action:   "create",
	})
	assert.NoError(t, err)
	assert.False(t, denied)

	adminAllowed, err := service.Enforce(EnforceRequest{
		UserID:   "user-2",
		Role:     "ADMIN",
		Resource: "employee",
		Action:   "create",
	})
	assert.NoError(t, err)
	assert.True(t, adminAllowed)
}
