// internal/workflow/create_flow_test.go
package workflow

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFlow_HappyPath(t *testing.T) {
	f := NewCreateFlow()
	assert.Equal(t, FlowIdle, f.State())

	require.NoError(t, f.Begin())
	assert.Equal(t, FlowCreating, f.State())

	scheduleID := uuid.New()
	require.NoError(t, f.ScheduleCreated(scheduleID))
	assert.Equal(t, FlowAwaitingTasks, f.State())
	assert.Equal(t, scheduleID, f.ScheduleID())

	require.NoError(t, f.TasksPopulated(4))
	assert.Equal(t, FlowDone, f.State())
	assert.Equal(t, 4, f.TaskCount())
}

func TestCreateFlow_SkipPopulation(t *testing.T) {
	f := NewCreateFlow()
	require.NoError(t, f.Begin())
	require.NoError(t, f.ScheduleCreated(uuid.New()))

	// Declining the population step is a legal terminal outcome.
	require.NoError(t, f.Skip())
	assert.Equal(t, FlowDone, f.State())
	assert.Equal(t, 0, f.TaskCount())
}

func TestCreateFlow_CancelBeforeCreate(t *testing.T) {
	f := NewCreateFlow()
	require.NoError(t, f.Begin())
	require.NoError(t, f.Cancel())
	assert.Equal(t, FlowIdle, f.State())
	assert.Equal(t, uuid.Nil, f.ScheduleID())

	// The flow is reusable after a cancel.
	require.NoError(t, f.Begin())
}

func TestCreateFlow_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*CreateFlow)
		op    func(*CreateFlow) error
	}{
		{
			name:  "populate before create",
			setup: func(f *CreateFlow) {},
			op:    func(f *CreateFlow) error { return f.TasksPopulated(1) },
		},
		{
			name:  "record schedule while idle",
			setup: func(f *CreateFlow) {},
			op:    func(f *CreateFlow) error { return f.ScheduleCreated(uuid.New()) },
		},
		{
			name:  "cancel while idle",
			setup: func(f *CreateFlow) {},
			op:    func(f *CreateFlow) error { return f.Cancel() },
		},
		{
			name: "cancel after schedule exists",
			setup: func(f *CreateFlow) {
				_ = f.Begin()
				_ = f.ScheduleCreated(uuid.New())
			},
			op: func(f *CreateFlow) error { return f.Cancel() },
		},
		{
			name: "double begin",
			setup: func(f *CreateFlow) {
				_ = f.Begin()
			},
			op: func(f *CreateFlow) error { return f.Begin() },
		},
		{
			name: "populate twice",
			setup: func(f *CreateFlow) {
				_ = f.Begin()
				_ = f.ScheduleCreated(uuid.New())
				_ = f.TasksPopulated(2)
			},
			op: func(f *CreateFlow) error { return f.TasksPopulated(2) },
		},
		{
			name: "skip after done",
			setup: func(f *CreateFlow) {
				_ = f.Begin()
				_ = f.ScheduleCreated(uuid.New())
				_ = f.Skip()
			},
			op: func(f *CreateFlow) error { return f.Skip() },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewCreateFlow()
			tt.setup(f)
			err := tt.op(f)
			require.Error(t, err)
			var terr *TransitionError
			assert.ErrorAs(t, err, &terr)
		})
	}
}

func TestCreateFlowState_String(t *testing.T) {
	assert.Equal(t, "idle", FlowIdle.String())
	assert.Equal(t, "creating", FlowCreating.String())
	assert.Equal(t, "awaiting_task_population", FlowAwaitingTasks.String())
	assert.Equal(t, "done", FlowDone.String())
}
