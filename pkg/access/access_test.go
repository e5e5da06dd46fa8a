// pkg/access/access_test.go
package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, role := range []string{"owner", "contractor", "customer", "salesperson"} {
		r, err := Parse(role)
		require.NoError(t, err)
		assert.Equal(t, Role(role), r)
	}

	_, err := Parse("admin")
	assert.ErrorIs(t, err, ErrUnknownRole)

	_, err = Parse("")
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestCan(t *testing.T) {
	allOps := []Operation{
		OpScheduleCreate, OpScheduleUpdate, OpScheduleDelete,
		OpTaskCreate, OpTaskUpdate, OpTaskDelete,
	}

	for _, op := range allOps {
		assert.True(t, RoleOwner.Can(op), "owner should hold %s", op)
	}

	for _, op := range allOps {
		if op == OpTaskUpdate {
			assert.True(t, RoleContractor.Can(op))
			continue
		}
		assert.False(t, RoleContractor.Can(op), "contractor should not hold %s", op)
	}

	for _, role := range []Role{RoleCustomer, RoleSalesperson} {
		for _, op := range allOps {
			assert.False(t, role.Can(op), "%s should not hold %s", role, op)
		}
	}
}

func TestDeniedTaskFields(t *testing.T) {
	allFields := []string{
		TaskFieldTitle, TaskFieldDescription, TaskFieldStatus,
		TaskFieldPriority, TaskFieldPeriodStart, TaskFieldPeriodEnd,
		TaskFieldEstimatedHours, TaskFieldHoursSpent, TaskFieldProgress,
		TaskFieldAssignee,
	}

	assert.Empty(t, RoleOwner.DeniedTaskFields(allFields))

	denied := RoleContractor.DeniedTaskFields(allFields)
	assert.Equal(t, []string{
		TaskFieldTitle, TaskFieldDescription, TaskFieldPriority,
		TaskFieldPeriodStart, TaskFieldPeriodEnd,
		TaskFieldEstimatedHours, TaskFieldAssignee,
	}, denied)

	assert.Empty(t, RoleContractor.DeniedTaskFields([]string{
		TaskFieldStatus, TaskFieldHoursSpent, TaskFieldProgress,
	}))
}

func TestScopes(t *testing.T) {
	assert.True(t, RoleContractor.OwnTasksOnly())
	assert.False(t, RoleOwner.OwnTasksOnly())

	assert.True(t, RoleCustomer.ProjectScoped())
	assert.True(t, RoleSalesperson.ProjectScoped())
	assert.False(t, RoleOwner.ProjectScoped())
	assert.False(t, RoleContractor.ProjectScoped())
}
