// pkg/access/access.go
package access

import "errors"

var ErrUnknownRole = errors.New("unknown role")

// Role is a portal role resolved by the external identity provider.
type Role string

const (
	RoleOwner       Role = "owner"
	RoleContractor  Role = "contractor"
	RoleCustomer    Role = "customer"
	RoleSalesperson Role = "salesperson"
)

// Operation names a mutating capability on schedule/task data.
type Operation string

const (
	OpScheduleCreate Operation = "schedule.create"
	OpScheduleUpdate Operation = "schedule.update"
	OpScheduleDelete Operation = "schedule.delete"
	OpTaskCreate     Operation = "task.create"
	OpTaskUpdate     Operation = "task.update"
	OpTaskDelete     Operation = "task.delete"
)

// Task field names used in per-field write checks.
const (
	TaskFieldTitle          = "title"
	TaskFieldDescription    = "description"
	TaskFieldStatus         = "status"
	TaskFieldPriority       = "priority"
	TaskFieldPeriodStart    = "period_start"
	TaskFieldPeriodEnd      = "period_end"
	TaskFieldEstimatedHours = "estimated_hours"
	TaskFieldHoursSpent     = "hours_spent"
	TaskFieldProgress       = "progress"
	TaskFieldAssignee       = "assignee_id"
)

// capabilities is the role -> allowed operation set. Views consult
// membership here instead of branching on role names.
var capabilities = map[Role]map[Operation]bool{
	RoleOwner: {
		OpScheduleCreate: true,
		OpScheduleUpdate: true,
		OpScheduleDelete: true,
		OpTaskCreate:     true,
		OpTaskUpdate:     true,
		OpTaskDelete:     true,
	},
	RoleContractor: {
		OpTaskUpdate: true,
	},
	RoleCustomer:    {},
	RoleSalesperson: {},
}

// taskWriteFields is the per-role set of task fields a role may write.
// Owners edit everything; contractors may only report progress on
// their own tasks.
var taskWriteFields = map[Role]map[string]bool{
	RoleOwner: {
		TaskFieldTitle:          true,
		TaskFieldDescription:    true,
		TaskFieldStatus:         true,
		TaskFieldPriority:       true,
		TaskFieldPeriodStart:    true,
		TaskFieldPeriodEnd:      true,
		TaskFieldEstimatedHours: true,
		TaskFieldHoursSpent:     true,
		TaskFieldProgress:       true,
		TaskFieldAssignee:       true,
	},
	RoleContractor: {
		TaskFieldStatus:     true,
		TaskFieldHoursSpent: true,
		TaskFieldProgress:   true,
	},
}

// Parse validates a role string coming from token claims.
func Parse(role string) (Role, error) {
	switch r := Role(role); r {
	case RoleOwner, RoleContractor, RoleCustomer, RoleSalesperson:
		return r, nil
	default:
		return "", ErrUnknownRole
	}
}

// Can reports whether the role holds the given capability.
func (r Role) Can(op Operation) bool {
	return capabilities[r][op]
}

// CanWriteTaskField reports whether the role may write a single task
// field. Ownership of the task (contractors may only touch their own)
// is checked by the caller against the assignee.
func (r Role) CanWriteTaskField(field string) bool {
	return taskWriteFields[r][field]
}

// DeniedTaskFields returns the subset of fields the role may not
// write, preserving input order for stable error messages.
func (r Role) DeniedTaskFields(fields []string) []string {
	var denied []string
	for _, f := range fields {
		if !r.CanWriteTaskField(f) {
			denied = append(denied, f)
		}
	}
	return denied
}

// OwnTasksOnly reports whether the role's reads and writes are scoped
// to tasks assigned to the caller.
func (r Role) OwnTasksOnly() bool {
	return r == RoleContractor
}

// ProjectScoped reports whether the role's reads are limited to the
// caller's assigned projects.
func (r Role) ProjectScoped() bool {
	return r == RoleCustomer || r == RoleSalesperson
}
