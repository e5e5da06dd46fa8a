// internal/service/helpers_test.go
package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	ent "github.com/buildcrew/sitemaster/ent/generated"
	"github.com/buildcrew/sitemaster/ent/generated/enttest"
	"github.com/buildcrew/sitemaster/ent/generated/user"
	"github.com/buildcrew/sitemaster/internal/middleware"
	"github.com/buildcrew/sitemaster/internal/repository"
	"github.com/buildcrew/sitemaster/internal/workflow"

	_ "github.com/mattn/go-sqlite3"
)

const testDSN = "file:ent?mode=memory&cache=shared&_fk=1"

// Test helpers
func setupTestDB(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", testDSN)
	return client
}

// setupSummaryDB opens a second handle onto the shared in-memory
// database so the sqlx projections read the rows Ent writes.
func setupSummaryDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite3", testDSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

var testUserSeq int

func createTestUser(t *testing.T, client *ent.Client, role user.Role, projectIDs ...string) *ent.User {
	testUserSeq++
	u, err := client.User.Create().
		SetEmail(fmt.Sprintf("%s%d@example.com", role, testUserSeq)).
		SetFirstName("Test").
		SetLastName("User").
		SetRole(role).
		SetIsActive(true).
		SetProjectIds(projectIDs).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

// authContext mimics what the auth interceptor leaves on the context
// after validating a token.
func authContext(u *ent.User) context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, middleware.ContextKeyUserID, u.ID.String())
	ctx = context.WithValue(ctx, middleware.ContextKeyUserEmail, u.Email)
	ctx = context.WithValue(ctx, middleware.ContextKeyUserRole, string(u.Role))
	return ctx
}

// testServices wires the schedule, task and notification services over
// the same test database, with a fixed clock and a short confirmation
// TTL.
type testServices struct {
	schedules     *ScheduleService
	tasks         *TaskService
	notifications *NotificationService
	deletes       *workflow.DeleteCoordinator
	now           time.Time
}

func newTestServices(t *testing.T, client *ent.Client) *testServices {
	t.Helper()

	notifications := NewNotificationService(client)
	events := NewEventLogger(notifications)
	deletes := workflow.NewDeleteCoordinator(5 * time.Minute)
	summaries := repository.NewSummaryRepository(setupSummaryDB(t))

	scheduleService := NewScheduleService(client, summaries, deletes, events)
	taskService := NewTaskService(client, summaries, events)

	// Pinned mid-week so current-week assertions are stable.
	now := time.Date(2025, time.March, 5, 10, 0, 0, 0, time.UTC)
	scheduleService.nowFn = func() time.Time { return now }
	taskService.nowFn = func() time.Time { return now }

	return &testServices{
		schedules:     scheduleService,
		tasks:         taskService,
		notifications: notifications,
		deletes:       deletes,
		now:           now,
	}
}
