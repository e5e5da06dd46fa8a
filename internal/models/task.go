package models

import "time"

// Task status constants
const (
	TaskStatusToDo       = "to_do"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
	TaskStatusOnHold     = "on_hold"
)

// Priority constants
const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityVeryHigh = "very_high"
)

// SummaryRow is the per-contractor aggregate behind the dashboard
// rollup, read with sqlx.
type SummaryRow struct {
	TotalTasks          int     `db:"total_tasks"`
	OpenTasks           int     `db:"open_tasks"`
	CompletedTasks      int     `db:"completed_tasks"`
	OverdueTasks        int     `db:"overdue_tasks"`
	TotalEstimatedHours float64 `db:"total_estimated_hours"`
	TotalHoursSpent     float64 `db:"total_hours_spent"`
}

// TaskPreviewRow backs the next-due and top-priority previews on the
// contractor dashboard.
type TaskPreviewRow struct {
	ID             string    `db:"id"`
	Title          string    `db:"title"`
	Status         string    `db:"status"`
	Priority       string    `db:"priority"`
	PeriodEnd      time.Time `db:"period_end"`
	EstimatedHours float64   `db:"estimated_hours"`
}

// ScheduleIDsRow collects schedule identifiers per project for report
// exports. Rows are grouped in the repository rather than with a
// driver-specific array aggregate.
type ScheduleIDsRow struct {
	ProjectID   string
	ScheduleIDs []string
}
