// internal/validation/validation_test.go
package validation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildcrew/sitemaster/internal/models"
)

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid date", value: "2026-09-07", wantErr: false},
		{name: "empty", value: "", wantErr: true},
		{name: "wrong layout", value: "07/09/2026", wantErr: true},
		{name: "timestamp rejected", value: "2026-09-07T10:00:00Z", wantErr: true},
		{name: "impossible day", value: "2026-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate("start_date", tt.value)
			if tt.wantErr {
				require.Error(t, err)
				var fe FieldError
				require.ErrorAs(t, err, &fe)
				assert.Equal(t, "start_date", fe.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, FormatDate(got))
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestValidateSchedule(t *testing.T) {
	valid := ScheduleFields{
		Description: "Foundation works",
		LotID:       uuid.New(),
		ProjectID:   "project-1",
		StartDate:   date("2026-09-07"),
		EndDate:     date("2026-10-04"),
	}

	tests := []struct {
		name      string
		mutate    func(*ScheduleFields)
		wantField string
	}{
		{name: "valid", mutate: func(f *ScheduleFields) {}},
		{
			name:      "empty description",
			mutate:    func(f *ScheduleFields) { f.Description = "   " },
			wantField: "description",
		},
		{
			name:      "missing lot",
			mutate:    func(f *ScheduleFields) { f.LotID = uuid.Nil },
			wantField: "lot_id",
		},
		{
			name:      "missing project",
			mutate:    func(f *ScheduleFields) { f.ProjectID = "" },
			wantField: "project_id",
		},
		{
			name:      "end before start",
			mutate:    func(f *ScheduleFields) { f.EndDate = date("2026-09-01") },
			wantField: "end_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)
			err := ValidateSchedule(f)
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verr *Error
			require.ErrorAs(t, err, &verr)
			fields := make([]string, len(verr.Fields))
			for i, fe := range verr.Fields {
				fields[i] = fe.Field
			}
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestValidateSchedule_SingleDayWindow(t *testing.T) {
	f := ScheduleFields{
		Description: "Inspection",
		LotID:       uuid.New(),
		ProjectID:   "project-1",
		StartDate:   date("2026-09-07"),
		EndDate:     date("2026-09-07"),
	}
	require.NoError(t, ValidateSchedule(f))
}

func TestValidateTask(t *testing.T) {
	scheduleStart := date("2026-09-07")
	scheduleEnd := date("2026-10-04")

	hours := func(v float64) *float64 { return &v }

	valid := TaskFields{
		Title:       "Excavation",
		Status:      models.TaskStatusToDo,
		Priority:    models.PriorityMedium,
		PeriodStart: date("2026-09-07"),
		PeriodEnd:   date("2026-09-11"),
		Progress:    0,
	}

	tests := []struct {
		name      string
		mutate    func(*TaskFields)
		wantField string
	}{
		{name: "valid", mutate: func(f *TaskFields) {}},
		{
			name:   "period equals window",
			mutate: func(f *TaskFields) { f.PeriodStart = scheduleStart; f.PeriodEnd = scheduleEnd },
		},
		{
			name:      "empty title",
			mutate:    func(f *TaskFields) { f.Title = "" },
			wantField: "title",
		},
		{
			name:      "unknown status",
			mutate:    func(f *TaskFields) { f.Status = "paused" },
			wantField: "status",
		},
		{
			name:      "unknown priority",
			mutate:    func(f *TaskFields) { f.Priority = "urgent" },
			wantField: "priority",
		},
		{
			name:      "period end before start",
			mutate:    func(f *TaskFields) { f.PeriodEnd = date("2026-09-01") },
			wantField: "period_end",
		},
		{
			name:      "starts before schedule",
			mutate:    func(f *TaskFields) { f.PeriodStart = date("2026-09-01") },
			wantField: "period_start",
		},
		{
			name:      "ends after schedule",
			mutate:    func(f *TaskFields) { f.PeriodEnd = date("2026-10-10") },
			wantField: "period_end",
		},
		{
			name:      "negative estimated hours",
			mutate:    func(f *TaskFields) { f.EstimatedHours = hours(-1) },
			wantField: "estimated_hours",
		},
		{
			name:      "negative hours spent",
			mutate:    func(f *TaskFields) { f.HoursSpent = hours(-0.5) },
			wantField: "hours_spent",
		},
		{
			name:      "progress above 100",
			mutate:    func(f *TaskFields) { f.Progress = 101 },
			wantField: "progress",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)
			err := ValidateTask(f, scheduleStart, scheduleEnd)
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verr *Error
			require.ErrorAs(t, err, &verr)
			fields := make([]string, len(verr.Fields))
			for i, fe := range verr.Fields {
				fields[i] = fe.Field
			}
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestValidateStatusTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr bool
	}{
		{name: "to_do to in_progress", from: models.TaskStatusToDo, to: models.TaskStatusInProgress},
		{name: "to_do to on_hold", from: models.TaskStatusToDo, to: models.TaskStatusOnHold},
		{name: "in_progress to completed", from: models.TaskStatusInProgress, to: models.TaskStatusCompleted},
		{name: "in_progress to on_hold", from: models.TaskStatusInProgress, to: models.TaskStatusOnHold},
		{name: "on_hold to in_progress", from: models.TaskStatusOnHold, to: models.TaskStatusInProgress},
		{name: "same status no-op", from: models.TaskStatusCompleted, to: models.TaskStatusCompleted},
		{name: "to_do straight to completed", from: models.TaskStatusToDo, to: models.TaskStatusCompleted, wantErr: true},
		{name: "completed is terminal", from: models.TaskStatusCompleted, to: models.TaskStatusInProgress, wantErr: true},
		{name: "on_hold cannot complete", from: models.TaskStatusOnHold, to: models.TaskStatusCompleted, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStatusTransition(tt.from, tt.to)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
