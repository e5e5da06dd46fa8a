// internal/validation/validation.go
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/buildcrew/sitemaster/internal/models"
)

// FieldError identifies a single invalid field. Callers surface these
// so the client can flag the offending input.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

// Error aggregates field errors from one validation pass. A mutation
// fails as a whole: either every field passes or nothing is written.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Error()
	}
	return strings.Join(parts, "; ")
}

// Add records a field violation.
func (e *Error) Add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

// Err returns the collected error, or nil if every field passed.
func (e *Error) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// ParseDate parses a YYYY-MM-DD calendar date. The result is midnight
// UTC so date comparisons are exact.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, FieldError{Field: field, Reason: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value)}
	}
	return t.UTC(), nil
}

// FormatDate renders a stored date back to YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// ScheduleFields is the merged state of a schedule under validation.
// On update the caller merges the edit over the stored record first so
// partial edits cannot leave the schedule invalid.
type ScheduleFields struct {
	Description string
	LotID       uuid.UUID
	ProjectID   string
	StartDate   time.Time
	EndDate     time.Time
}

// ValidateSchedule checks the schedule-level invariants.
func ValidateSchedule(f ScheduleFields) error {
	var verr Error
	if strings.TrimSpace(f.Description) == "" {
		verr.Add("description", "must not be empty")
	}
	if f.LotID == uuid.Nil {
		verr.Add("lot_id", "must be supplied")
	}
	if f.ProjectID == "" {
		verr.Add("project_id", "must be supplied")
	}
	if f.StartDate.IsZero() {
		verr.Add("start_date", "must be supplied")
	}
	if f.EndDate.IsZero() {
		verr.Add("end_date", "must be supplied")
	}
	if !f.StartDate.IsZero() && !f.EndDate.IsZero() && f.EndDate.Before(f.StartDate) {
		verr.Add("end_date", "must not precede start_date")
	}
	return verr.Err()
}

// TaskFields is the merged state of a task under validation.
type TaskFields struct {
	Title          string
	Status         string
	Priority       string
	PeriodStart    time.Time
	PeriodEnd      time.Time
	EstimatedHours *float64
	HoursSpent     *float64
	Progress       int
}

// ValidateTask checks the task-level invariants against the current
// parent window. The window is fetched fresh by the caller, never
// cached, so a schedule edited after the task was created still
// constrains it.
func ValidateTask(f TaskFields, scheduleStart, scheduleEnd time.Time) error {
	var verr Error
	if strings.TrimSpace(f.Title) == "" {
		verr.Add("title", "must not be empty")
	}
	if !validStatus(f.Status) {
		verr.Add("status", fmt.Sprintf("unknown status %q", f.Status))
	}
	if !validPriority(f.Priority) {
		verr.Add("priority", fmt.Sprintf("unknown priority %q", f.Priority))
	}
	if f.PeriodStart.IsZero() {
		verr.Add("period_start", "must be supplied")
	}
	if f.PeriodEnd.IsZero() {
		verr.Add("period_end", "must be supplied")
	}
	if !f.PeriodStart.IsZero() && !f.PeriodEnd.IsZero() {
		if f.PeriodEnd.Before(f.PeriodStart) {
			verr.Add("period_end", "must not precede period_start")
		}
		if f.PeriodStart.Before(scheduleStart) {
			verr.Add("period_start", "precedes the schedule start date")
		}
		if f.PeriodEnd.After(scheduleEnd) {
			verr.Add("period_end", "exceeds the schedule end date")
		}
	}
	if f.EstimatedHours != nil && *f.EstimatedHours < 0 {
		verr.Add("estimated_hours", "must not be negative")
	}
	if f.HoursSpent != nil && *f.HoursSpent < 0 {
		verr.Add("hours_spent", "must not be negative")
	}
	if f.Progress < 0 || f.Progress > 100 {
		verr.Add("progress", "must be between 0 and 100")
	}
	return verr.Err()
}

// statusTransitions is the permitted task status graph:
// to_do -> in_progress -> completed, with on_hold reachable from
// to_do and in_progress and returning to in_progress.
var statusTransitions = map[string][]string{
	models.TaskStatusToDo:       {models.TaskStatusInProgress, models.TaskStatusOnHold},
	models.TaskStatusInProgress: {models.TaskStatusCompleted, models.TaskStatusOnHold},
	models.TaskStatusOnHold:     {models.TaskStatusInProgress},
	models.TaskStatusCompleted:  {},
}

// ValidateStatusTransition rejects status changes outside the graph.
// Setting the same status again is a no-op and always allowed.
func ValidateStatusTransition(from, to string) error {
	if from == to {
		return nil
	}
	for _, next := range statusTransitions[from] {
		if next == to {
			return nil
		}
	}
	return FieldError{
		Field:  "status",
		Reason: fmt.Sprintf("transition from %q to %q is not permitted", from, to),
	}
}

func validStatus(s string) bool {
	switch s {
	case models.TaskStatusToDo, models.TaskStatusInProgress, models.TaskStatusCompleted, models.TaskStatusOnHold:
		return true
	}
	return false
}

func validPriority(p string) bool {
	switch p {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh, models.PriorityVeryHigh:
		return true
	}
	return false
}
