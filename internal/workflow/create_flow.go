// internal/workflow/create_flow.go
package workflow

import (
	"fmt"

	"github.com/google/uuid"
)

// CreateFlowState is the position of one create-schedule workflow.
type CreateFlowState int

const (
	// FlowIdle: no create in progress.
	FlowIdle CreateFlowState = iota
	// FlowCreating: the schedule form is open, nothing persisted yet.
	FlowCreating
	// FlowAwaitingTasks: the schedule exists; the task population step
	// is open, seeded with the schedule window.
	FlowAwaitingTasks
	// FlowDone: the workflow finished, with or without tasks.
	FlowDone
)

func (s CreateFlowState) String() string {
	switch s {
	case FlowIdle:
		return "idle"
	case FlowCreating:
		return "creating"
	case FlowAwaitingTasks:
		return "awaiting_task_population"
	case FlowDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// TransitionError reports an operation applied in the wrong state.
type TransitionError struct {
	Op    string
	State CreateFlowState
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s while %s", e.Op, e.State)
}

// CreateFlow drives the two-step create-then-populate workflow:
// Idle -> Creating -> AwaitingTasks -> Done. The schedule must exist
// before any task can be attached; skipping the population step is a
// legal terminal outcome (a schedule with zero tasks).
type CreateFlow struct {
	state      CreateFlowState
	scheduleID uuid.UUID
	taskCount  int
}

// NewCreateFlow returns an idle workflow.
func NewCreateFlow() *CreateFlow {
	return &CreateFlow{state: FlowIdle}
}

// State returns the current workflow state.
func (f *CreateFlow) State() CreateFlowState { return f.state }

// ScheduleID returns the schedule created by this flow, or uuid.Nil
// before creation succeeded.
func (f *CreateFlow) ScheduleID() uuid.UUID { return f.scheduleID }

// TaskCount returns the number of tasks attached during population.
func (f *CreateFlow) TaskCount() int { return f.taskCount }

// Begin opens the schedule form.
func (f *CreateFlow) Begin() error {
	if f.state != FlowIdle {
		return &TransitionError{Op: "begin", State: f.state}
	}
	f.state = FlowCreating
	return nil
}

// Cancel abandons the form before anything was persisted.
func (f *CreateFlow) Cancel() error {
	if f.state != FlowCreating {
		return &TransitionError{Op: "cancel", State: f.state}
	}
	f.state = FlowIdle
	return nil
}

// ScheduleCreated records the successful create and opens the task
// population step.
func (f *CreateFlow) ScheduleCreated(scheduleID uuid.UUID) error {
	if f.state != FlowCreating {
		return &TransitionError{Op: "record created schedule", State: f.state}
	}
	f.scheduleID = scheduleID
	f.state = FlowAwaitingTasks
	return nil
}

// TasksPopulated completes the workflow with n attached tasks.
func (f *CreateFlow) TasksPopulated(n int) error {
	if f.state != FlowAwaitingTasks {
		return &TransitionError{Op: "populate tasks", State: f.state}
	}
	f.taskCount = n
	f.state = FlowDone
	return nil
}

// Skip declines the population step, leaving the schedule with zero
// tasks.
func (f *CreateFlow) Skip() error {
	if f.state != FlowAwaitingTasks {
		return &TransitionError{Op: "skip task population", State: f.state}
	}
	f.state = FlowDone
	return nil
}
