// internal/repository/summary_repository_test.go
package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ent "github.com/buildcrew/sitemaster/ent/generated"
	"github.com/buildcrew/sitemaster/ent/generated/enttest"
	"github.com/buildcrew/sitemaster/ent/generated/task"
	"github.com/buildcrew/sitemaster/ent/generated/user"

	_ "github.com/mattn/go-sqlite3"
)

// setupSummaryTest opens the Ent client that owns the schema plus a
// second sqlx handle onto the same shared in-memory database, so the
// aggregate queries read the rows Ent writes. The database name is
// derived from the test name so tests don't see each other's rows.
func setupSummaryTest(t *testing.T) (*ent.Client, *SummaryRepository) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)

	db, err := sqlx.Open("sqlite3", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return client, NewSummaryRepository(db)
}

var summaryUserSeq int

func seedContractor(t *testing.T, client *ent.Client) *ent.User {
	t.Helper()
	summaryUserSeq++
	u, err := client.User.Create().
		SetEmail(fmt.Sprintf("contractor%d@example.com", summaryUserSeq)).
		SetFirstName("Test").
		SetLastName("Contractor").
		SetRole(user.RoleContractor).
		SetIsActive(true).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func seedSchedule(t *testing.T, client *ent.Client, projectID string, start, end time.Time) *ent.Schedule {
	t.Helper()
	sched, err := client.Schedule.Create().
		SetDescription("Schedule for " + projectID).
		SetLotID(uuid.New()).
		SetProjectID(projectID).
		SetStartDate(start).
		SetEndDate(end).
		Save(context.Background())
	require.NoError(t, err)
	return sched
}

type seededTask struct {
	title    string
	status   task.Status
	priority task.Priority
	start    time.Time
	end      time.Time
	est      *float64
	spent    *float64
}

func seedTask(t *testing.T, client *ent.Client, scheduleID, assigneeID uuid.UUID, spec seededTask) *ent.Task {
	t.Helper()
	created, err := client.Task.Create().
		SetScheduleID(scheduleID).
		SetAssigneeID(assigneeID).
		SetTitle(spec.title).
		SetStatus(spec.status).
		SetPriority(spec.priority).
		SetPeriodStart(spec.start).
		SetPeriodEnd(spec.end).
		SetNillableEstimatedHours(spec.est).
		SetNillableHoursSpent(spec.spent).
		Save(context.Background())
	require.NoError(t, err)
	return created
}

func day(month time.Month, d int) time.Time {
	return time.Date(2025, month, d, 0, 0, 0, 0, time.UTC)
}

func hours(v float64) *float64 {
	return &v
}

func TestSummaryRepository_Summary(t *testing.T) {
	client, repo := setupSummaryTest(t)
	ctx := context.Background()

	contractor := seedContractor(t, client)
	other := seedContractor(t, client)
	sched := seedSchedule(t, client, "project-1", day(time.March, 1), day(time.March, 31))

	// Window under test: 2025-03-03 .. 2025-03-09, today 2025-03-05.
	seedTask(t, client, sched.ID, contractor.ID, seededTask{
		title: "Pour footings", status: task.StatusInProgress, priority: task.PriorityVeryHigh,
		start: day(time.March, 3), end: day(time.March, 4), est: hours(10), spent: hours(12),
	})
	seedTask(t, client, sched.ID, contractor.ID, seededTask{
		title: "Frame walls", status: task.StatusToDo, priority: task.PriorityHigh,
		start: day(time.March, 4), end: day(time.March, 6), est: hours(8),
	})
	seedTask(t, client, sched.ID, contractor.ID, seededTask{
		title: "Inspect forms", status: task.StatusCompleted, priority: task.PriorityMedium,
		start: day(time.March, 3), end: day(time.March, 5), est: hours(4), spent: hours(4),
	})
	seedTask(t, client, sched.ID, contractor.ID, seededTask{
		title: "Order rebar", status: task.StatusToDo, priority: task.PriorityMedium,
		start: day(time.March, 5), end: day(time.March, 8), spent: hours(1),
	})
	// Outside the queried window.
	seedTask(t, client, sched.ID, contractor.ID, seededTask{
		title: "Hang drywall", status: task.StatusToDo, priority: task.PriorityLow,
		start: day(time.March, 20), end: day(time.March, 22), est: hours(16),
	})
	// Another contractor's task inside the window.
	seedTask(t, client, sched.ID, other.ID, seededTask{
		title: "Rough plumbing", status: task.StatusToDo, priority: task.PriorityHigh,
		start: day(time.March, 3), end: day(time.March, 7), est: hours(6),
	})

	row, err := repo.Summary(ctx, contractor.ID, day(time.March, 3), day(time.March, 9), day(time.March, 5))
	require.NoError(t, err)

	assert.Equal(t, 4, row.TotalTasks)
	assert.Equal(t, 3, row.OpenTasks)
	assert.Equal(t, 1, row.CompletedTasks)
	// Only the footings task ended before today without completing.
	assert.Equal(t, 1, row.OverdueTasks)
	assert.InDelta(t, 22.0, row.TotalEstimatedHours, 0.001)
	assert.InDelta(t, 17.0, row.TotalHoursSpent, 0.001)
}

func TestSummaryRepository_NextDue(t *testing.T) {
	client, repo := setupSummaryTest(t)
	ctx := context.Background()

	contractor := seedContractor(t, client)
	idle := seedContractor(t, client)
	sched := seedSchedule(t, client, "project-1", day(time.March, 1), day(time.March, 31))

	seedTask(t, client, sched.ID, contractor.ID, seededTask{
		title: "Pour footings", status: task.StatusInProgress, priority: task.PriorityVeryHigh,
		start: day(time.March, 3), end: day(time.March, 4), est: hours(10),
	})
	seedTask(t, client, sched.ID, contractor.ID, seededTask{
		title: "Frame walls", status: task.StatusToDo, priority: task.PriorityHigh,
		start: day(time.March, 4), end: day(time.March, 6), est: hours(8),
	})
	seedTask(t, client, sched.ID, contractor.ID, seededTask{
		title: "Order rebar", status: task.StatusToDo, priority: task.PriorityMedium,
		start: day(time.March, 5), end: day(time.March, 8),
	})
	seedTask(t, client, sched.ID, contractor.ID, seededTask{
		title: "Inspect forms", status: task.StatusCompleted, priority: task.PriorityMedium,
		start: day(time.March, 3), end: day(time.March, 5),
	})

	row, err := repo.NextDue(ctx, contractor.ID, day(time.March, 5))
	require.NoError(t, err)
	require.NotNil(t, row)

	// The footings task is already past due and the inspection is
	// completed; framing has the earliest remaining deadline.
	assert.Equal(t, "Frame walls", row.Title)
	assert.Equal(t, "to_do", row.Status)
	assert.True(t, row.PeriodEnd.Equal(day(time.March, 6)))
	assert.InDelta(t, 8.0, row.EstimatedHours, 0.001)

	none, err := repo.NextDue(ctx, idle.ID, day(time.March, 5))
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestSummaryRepository_TopPriority(t *testing.T) {
	client, repo := setupSummaryTest(t)
	ctx := context.Background()

	contractor := seedContractor(t, client)
	sched := seedSchedule(t, client, "project-1", day(time.March, 1), day(time.March, 31))

	seedTask(t, client, sched.ID, contractor.ID, seededTask{
		title: "Order rebar", status: task.StatusToDo, priority: task.PriorityMedium,
		start: day(time.March, 5), end: day(time.March, 8),
	})
	seedTask(t, client, sched.ID, contractor.ID, seededTask{
		title: "Pour footings", status: task.StatusInProgress, priority: task.PriorityVeryHigh,
		start: day(time.March, 3), end: day(time.March, 4),
	})
	seedTask(t, client, sched.ID, contractor.ID, seededTask{
		title: "Frame walls", status: task.StatusToDo, priority: task.PriorityHigh,
		start: day(time.March, 4), end: day(time.March, 6),
	})
	// Completed work never surfaces on the dashboard.
	seedTask(t, client, sched.ID, contractor.ID, seededTask{
		title: "Inspect forms", status: task.StatusCompleted, priority: task.PriorityVeryHigh,
		start: day(time.March, 3), end: day(time.March, 5),
	})

	rows, err := repo.TopPriority(ctx, contractor.ID, day(time.March, 3), day(time.March, 9), 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Pour footings", rows[0].Title)
	assert.Equal(t, "very_high", rows[0].Priority)
	assert.Equal(t, "Frame walls", rows[1].Title)
	assert.Equal(t, "high", rows[1].Priority)

	all, err := repo.TopPriority(ctx, contractor.ID, day(time.March, 3), day(time.March, 9), 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Order rebar", all[2].Title)
}

func TestSummaryRepository_ScheduleIDsByProject(t *testing.T) {
	client, repo := setupSummaryTest(t)
	ctx := context.Background()

	second := seedSchedule(t, client, "project-1", day(time.April, 1), day(time.April, 30))
	first := seedSchedule(t, client, "project-1", day(time.March, 1), day(time.March, 31))
	otherProject := seedSchedule(t, client, "project-2", day(time.March, 1), day(time.March, 31))

	rows, err := repo.ScheduleIDsByProject(ctx, []string{"project-1", "project-2"})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "project-1", rows[0].ProjectID)
	// Ordered by start date, not insertion order.
	assert.Equal(t, []string{first.ID.String(), second.ID.String()}, rows[0].ScheduleIDs)

	assert.Equal(t, "project-2", rows[1].ProjectID)
	assert.Equal(t, []string{otherProject.ID.String()}, rows[1].ScheduleIDs)

	filtered, err := repo.ScheduleIDsByProject(ctx, []string{"project-2"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "project-2", filtered[0].ProjectID)

	all, err := repo.ScheduleIDsByProject(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
