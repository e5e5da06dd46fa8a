// internal/repository/summary_repository.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/buildcrew/sitemaster/internal/models"
)

// SummaryRepository serves the contractor dashboard rollups and report
// exports with hand-written aggregate SQL. The Ent repositories stay
// the system of record; these are read-only projections over the same
// tables. Queries use ? placeholders and are rebound per driver so
// they run against Postgres in production and SQLite in tests.
type SummaryRepository struct {
	db *sqlx.DB
}

func NewSummaryRepository(db *sqlx.DB) *SummaryRepository {
	return &SummaryRepository{
		db: db,
	}
}

const summaryQuery = `
SELECT
    COUNT(*)                                                         AS total_tasks,
    COUNT(*) FILTER (WHERE status <> 'completed')                    AS open_tasks,
    COUNT(*) FILTER (WHERE status = 'completed')                     AS completed_tasks,
    COUNT(*) FILTER (WHERE status <> 'completed' AND period_end < ?) AS overdue_tasks,
    COALESCE(SUM(estimated_hours), 0)                                AS total_estimated_hours,
    COALESCE(SUM(hours_spent), 0)                                    AS total_hours_spent
FROM tasks
WHERE assignee_id = ?
  AND period_start <= ?
  AND period_end >= ?`

// Summary aggregates the contractor's tasks whose period intersects
// [start, end].
func (r *SummaryRepository) Summary(ctx context.Context, contractorID uuid.UUID, start, end, today time.Time) (*models.SummaryRow, error) {
	var row models.SummaryRow
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(summaryQuery), today, contractorID, end, start); err != nil {
		return nil, fmt.Errorf("query task summary: %w", err)
	}
	return &row, nil
}

const nextDueQuery = `
SELECT id, title, status, priority, period_end,
       COALESCE(estimated_hours, 0) AS estimated_hours
FROM tasks
WHERE assignee_id = ?
  AND status <> 'completed'
  AND period_end >= ?
ORDER BY period_end, id
LIMIT 1`

// NextDue returns the contractor's next task to come due, or nil when
// nothing is pending.
func (r *SummaryRepository) NextDue(ctx context.Context, contractorID uuid.UUID, today time.Time) (*models.TaskPreviewRow, error) {
	var row models.TaskPreviewRow
	err := r.db.GetContext(ctx, &row, r.db.Rebind(nextDueQuery), contractorID, today)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query next due task: %w", err)
	}
	return &row, nil
}

const topPriorityQuery = `
SELECT id, title, status, priority, period_end,
       COALESCE(estimated_hours, 0) AS estimated_hours
FROM tasks
WHERE assignee_id = ?
  AND status <> 'completed'
  AND period_start <= ?
  AND period_end >= ?
ORDER BY CASE priority
             WHEN 'very_high' THEN 1
             WHEN 'high' THEN 2
             WHEN 'medium' THEN 3
             WHEN 'low' THEN 4
         END,
         period_end, id
LIMIT ?`

// TopPriority returns the contractor's highest-priority open tasks in
// the window.
func (r *SummaryRepository) TopPriority(ctx context.Context, contractorID uuid.UUID, start, end time.Time, limit int) ([]models.TaskPreviewRow, error) {
	var rows []models.TaskPreviewRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(topPriorityQuery), contractorID, end, start, limit); err != nil {
		return nil, fmt.Errorf("query top priority tasks: %w", err)
	}
	return rows, nil
}

const scheduleIDsQuery = `
SELECT project_id, id
FROM schedules
ORDER BY project_id, start_date, id`

const scheduleIDsFilteredQuery = `
SELECT project_id, id
FROM schedules
WHERE project_id IN (?)
ORDER BY project_id, start_date, id`

// ScheduleIDsByProject lists schedule identifiers grouped per project,
// ordered by start date within each group. An empty filter covers
// every project.
func (r *SummaryRepository) ScheduleIDsByProject(ctx context.Context, projectIDs []string) ([]models.ScheduleIDsRow, error) {
	query := scheduleIDsQuery
	var args []interface{}
	if len(projectIDs) > 0 {
		expanded, expandedArgs, err := sqlx.In(scheduleIDsFilteredQuery, projectIDs)
		if err != nil {
			return nil, fmt.Errorf("build schedule report query: %w", err)
		}
		query, args = expanded, expandedArgs
	}

	var rows []struct {
		ProjectID string `db:"project_id"`
		ID        string `db:"id"`
	}
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("query schedule ids: %w", err)
	}

	var grouped []models.ScheduleIDsRow
	index := make(map[string]int)
	for _, row := range rows {
		i, ok := index[row.ProjectID]
		if !ok {
			grouped = append(grouped, models.ScheduleIDsRow{ProjectID: row.ProjectID})
			i = len(grouped) - 1
			index[row.ProjectID] = i
		}
		grouped[i].ScheduleIDs = append(grouped[i].ScheduleIDs, row.ID)
	}
	return grouped, nil
}
