// internal/service/schedule_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	schedulev1 "github.com/buildcrew/sitemaster/api/proto/schedule/v1/generated"
	taskv1 "github.com/buildcrew/sitemaster/api/proto/task/v1/generated"
	ent "github.com/buildcrew/sitemaster/ent/generated"
	"github.com/buildcrew/sitemaster/ent/generated/user"
)

func createScheduleForTest(t *testing.T, svc *testServices, ctx context.Context) *schedulev1.Schedule {
	t.Helper()
	resp, err := svc.schedules.CreateSchedule(ctx, &schedulev1.CreateScheduleRequest{
		Description: "Foundation pour",
		LotId:       uuid.New().String(),
		ProjectId:   "project-1",
		StartDate:   "2025-03-01",
		EndDate:     "2025-03-15",
	})
	require.NoError(t, err)
	return resp.Schedule
}

func TestScheduleService_CreateSchedule(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestServices(t, client)
	owner := createTestUser(t, client, user.RoleOwner)
	ctx := authContext(owner)

	sched := createScheduleForTest(t, svc, ctx)

	assert.NotEmpty(t, sched.Id)
	assert.Equal(t, "Foundation pour", sched.Description)
	assert.Equal(t, "2025-03-01", sched.StartDate)
	assert.Equal(t, "2025-03-15", sched.EndDate)
	assert.Equal(t, int32(0), sched.TaskCount)

	// Retrievable with an empty task list.
	got, err := svc.schedules.GetSchedule(ctx, &schedulev1.GetScheduleRequest{Id: sched.Id})
	require.NoError(t, err)
	assert.Equal(t, int32(0), got.Schedule.TaskCount)
}

func TestScheduleService_CreateSchedule_EndBeforeStart(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestServices(t, client)
	owner := createTestUser(t, client, user.RoleOwner)
	ctx := authContext(owner)

	_, err := svc.schedules.CreateSchedule(ctx, &schedulev1.CreateScheduleRequest{
		Description: "Backwards window",
		LotId:       uuid.New().String(),
		ProjectId:   "project-1",
		StartDate:   "2025-06-15",
		EndDate:     "2025-06-01",
	})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Contains(t, st.Message(), "end_date")

	// Nothing was written.
	count, err := client.Schedule.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestScheduleService_CreateSchedule_RoleDenied(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestServices(t, client)

	for _, role := range []user.Role{user.RoleContractor, user.RoleCustomer, user.RoleSalesperson} {
		caller := createTestUser(t, client, role)
		_, err := svc.schedules.CreateSchedule(authContext(caller), &schedulev1.CreateScheduleRequest{
			Description: "Not allowed",
			LotId:       uuid.New().String(),
			ProjectId:   "project-1",
			StartDate:   "2025-03-01",
			EndDate:     "2025-03-15",
		})
		require.Error(t, err, "role %s", role)
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	}
}

func TestScheduleService_GetSchedule_NotFound(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestServices(t, client)
	owner := createTestUser(t, client, user.RoleOwner)

	_, err := svc.schedules.GetSchedule(authContext(owner), &schedulev1.GetScheduleRequest{Id: uuid.New().String()})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestScheduleService_GetSchedule_RoleVisibility(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestServices(t, client)
	owner := createTestUser(t, client, user.RoleOwner)
	ownerCtx := authContext(owner)

	sched := createScheduleForTest(t, svc, ownerCtx)

	// Customer assigned to the project sees it.
	member := createTestUser(t, client, user.RoleCustomer, "project-1")
	_, err := svc.schedules.GetSchedule(authContext(member), &schedulev1.GetScheduleRequest{Id: sched.Id})
	require.NoError(t, err)

	// Customer on another project gets not-found, not a denial.
	outsider := createTestUser(t, client, user.RoleCustomer, "project-2")
	_, err = svc.schedules.GetSchedule(authContext(outsider), &schedulev1.GetScheduleRequest{Id: sched.Id})
	assert.Equal(t, codes.NotFound, status.Code(err))

	// Contractor without a task on the schedule cannot see it.
	contractor := createTestUser(t, client, user.RoleContractor)
	_, err = svc.schedules.GetSchedule(authContext(contractor), &schedulev1.GetScheduleRequest{Id: sched.Id})
	assert.Equal(t, codes.NotFound, status.Code(err))

	// With an assigned task the same contractor sees it.
	_, err = svc.tasks.CreateTask(ownerCtx, &taskv1.CreateTaskRequest{
		ScheduleId: sched.Id,
		Title:      "Rebar",
		AssigneeId: contractor.ID.String(),
	})
	require.NoError(t, err)
	_, err = svc.schedules.GetSchedule(authContext(contractor), &schedulev1.GetScheduleRequest{Id: sched.Id})
	require.NoError(t, err)
}

func TestScheduleService_ListSchedules_Scoping(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestServices(t, client)
	owner := createTestUser(t, client, user.RoleOwner)
	ownerCtx := authContext(owner)

	createScheduleForTest(t, svc, ownerCtx)
	_, err := svc.schedules.CreateSchedule(ownerCtx, &schedulev1.CreateScheduleRequest{
		Description: "Framing",
		LotId:       uuid.New().String(),
		ProjectId:   "project-2",
		StartDate:   "2025-04-01",
		EndDate:     "2025-04-30",
	})
	require.NoError(t, err)

	// Owner sees everything.
	resp, err := svc.schedules.ListSchedules(ownerCtx, &schedulev1.ListSchedulesRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Schedules, 2)

	// Salesperson sees only their projects.
	sales := createTestUser(t, client, user.RoleSalesperson, "project-2")
	resp, err = svc.schedules.ListSchedules(authContext(sales), &schedulev1.ListSchedulesRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Schedules, 1)
	assert.Equal(t, "project-2", resp.Schedules[0].ProjectId)

	// A customer with no projects sees nothing.
	empty := createTestUser(t, client, user.RoleCustomer)
	resp, err = svc.schedules.ListSchedules(authContext(empty), &schedulev1.ListSchedulesRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.Schedules)
}

func TestScheduleService_ListSchedules_CurrentWeek(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestServices(t, client)
	owner := createTestUser(t, client, user.RoleOwner)
	ctx := authContext(owner)

	// The pinned clock is Wednesday 2025-03-05; the running week is
	// 2025-03-03 .. 2025-03-09.
	createScheduleForTest(t, svc, ctx) // 2025-03-01..15, intersects
	_, err := svc.schedules.CreateSchedule(ctx, &schedulev1.CreateScheduleRequest{
		Description: "Later works",
		LotId:       uuid.New().String(),
		ProjectId:   "project-1",
		StartDate:   "2025-03-10",
		EndDate:     "2025-03-20",
	})
	require.NoError(t, err)

	resp, err := svc.schedules.ListSchedules(ctx, &schedulev1.ListSchedulesRequest{CurrentWeekOnly: true})
	require.NoError(t, err)
	require.Len(t, resp.Schedules, 1)
	assert.Equal(t, "Foundation pour", resp.Schedules[0].Description)
}

func TestScheduleService_UpdateSchedule_ShrinkRejectedWithOrphan(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestServices(t, client)
	owner := createTestUser(t, client, user.RoleOwner)
	ctx := authContext(owner)

	sched := createScheduleForTest(t, svc, ctx)
	task, err := svc.tasks.CreateTask(ctx, &taskv1.CreateTaskRequest{
		ScheduleId:  sched.Id,
		Title:       "Pour and cure",
		PeriodStart: "2025-03-01",
		PeriodEnd:   "2025-03-10",
	})
	require.NoError(t, err)

	// Shrinking the window below the task's period fails as a whole.
	_, err = svc.schedules.UpdateSchedule(ctx, &schedulev1.UpdateScheduleRequest{
		Id:      sched.Id,
		EndDate: "2025-03-05",
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	// The stored end date is untouched.
	got, err := svc.schedules.GetSchedule(ctx, &schedulev1.GetScheduleRequest{Id: sched.Id})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-15", got.Schedule.EndDate)

	// The same shrink succeeds when the task is fixed in the same edit.
	resp, err := svc.schedules.UpdateSchedule(ctx, &schedulev1.UpdateScheduleRequest{
		Id:      sched.Id,
		EndDate: "2025-03-05",
		TaskEdits: []*schedulev1.ScheduleTaskEdit{
			{TaskId: task.Task.Id, PeriodEnd: "2025-03-05"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-05", resp.Schedule.EndDate)

	gotTask, err := svc.tasks.GetTask(ctx, &taskv1.GetTaskRequest{Id: task.Task.Id})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-05", gotTask.Task.PeriodEnd)
}

func TestScheduleService_UpdateSchedule_RemoveOrphanedTask(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestServices(t, client)
	owner := createTestUser(t, client, user.RoleOwner)
	ctx := authContext(owner)

	sched := createScheduleForTest(t, svc, ctx)
	task, err := svc.tasks.CreateTask(ctx, &taskv1.CreateTaskRequest{
		ScheduleId:  sched.Id,
		Title:       "Late finishing",
		PeriodStart: "2025-03-08",
		PeriodEnd:   "2025-03-14",
	})
	require.NoError(t, err)

	// Removing the task in the same edit satisfies the invariant.
	resp, err := svc.schedules.UpdateSchedule(ctx, &schedulev1.UpdateScheduleRequest{
		Id:            sched.Id,
		EndDate:       "2025-03-05",
		RemoveTaskIds: []string{task.Task.Id},
	})
	require.NoError(t, err)
	assert.Equal(t, int32(0), resp.Schedule.TaskCount)

	_, err = svc.tasks.GetTask(ctx, &taskv1.GetTaskRequest{Id: task.Task.Id})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestScheduleService_UpdateSchedule_UnknownTaskEdit(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestServices(t, client)
	owner := createTestUser(t, client, user.RoleOwner)
	ctx := authContext(owner)

	sched := createScheduleForTest(t, svc, ctx)

	_, err := svc.schedules.UpdateSchedule(ctx, &schedulev1.UpdateScheduleRequest{
		Id: sched.Id,
		TaskEdits: []*schedulev1.ScheduleTaskEdit{
			{TaskId: uuid.New().String(), PeriodEnd: "2025-03-10"},
		},
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestScheduleService_TwoPhaseDelete(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestServices(t, client)
	owner := createTestUser(t, client, user.RoleOwner)
	ctx := authContext(owner)

	sched := createScheduleForTest(t, svc, ctx)
	task, err := svc.tasks.CreateTask(ctx, &taskv1.CreateTaskRequest{
		ScheduleId: sched.Id,
		Title:      "Strip formwork",
	})
	require.NoError(t, err)

	// Phase one: nothing is deleted yet.
	reqResp, err := svc.schedules.RequestDeleteSchedule(ctx, &schedulev1.RequestDeleteScheduleRequest{Id: sched.Id})
	require.NoError(t, err)
	assert.Equal(t, int32(1), reqResp.TaskCount)
	assert.Contains(t, reqResp.Warning, "1 associated task")

	_, err = svc.schedules.GetSchedule(ctx, &schedulev1.GetScheduleRequest{Id: sched.Id})
	require.NoError(t, err)

	// Phase two: the cascade runs.
	_, err = svc.schedules.ConfirmDeleteSchedule(ctx, &schedulev1.ConfirmDeleteScheduleRequest{ConfirmationToken: reqResp.ConfirmationToken})
	require.NoError(t, err)

	_, err = svc.schedules.GetSchedule(ctx, &schedulev1.GetScheduleRequest{Id: sched.Id})
	assert.Equal(t, codes.NotFound, status.Code(err))
	_, err = svc.tasks.GetTask(ctx, &taskv1.GetTaskRequest{Id: task.Task.Id})
	assert.Equal(t, codes.NotFound, status.Code(err))

	// Replaying the token reports not-found, never a second success.
	_, err = svc.schedules.ConfirmDeleteSchedule(ctx, &schedulev1.ConfirmDeleteScheduleRequest{ConfirmationToken: reqResp.ConfirmationToken})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestScheduleService_CancelDelete(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestServices(t, client)
	owner := createTestUser(t, client, user.RoleOwner)
	ctx := authContext(owner)

	sched := createScheduleForTest(t, svc, ctx)

	reqResp, err := svc.schedules.RequestDeleteSchedule(ctx, &schedulev1.RequestDeleteScheduleRequest{Id: sched.Id})
	require.NoError(t, err)

	_, err = svc.schedules.CancelDeleteSchedule(ctx, &schedulev1.CancelDeleteScheduleRequest{ConfirmationToken: reqResp.ConfirmationToken})
	require.NoError(t, err)

	// The schedule survives and the token is dead.
	_, err = svc.schedules.GetSchedule(ctx, &schedulev1.GetScheduleRequest{Id: sched.Id})
	require.NoError(t, err)
	_, err = svc.schedules.ConfirmDeleteSchedule(ctx, &schedulev1.ConfirmDeleteScheduleRequest{ConfirmationToken: reqResp.ConfirmationToken})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestScheduleService_DeleteWritesNotifications(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestServices(t, client)
	owner := createTestUser(t, client, user.RoleOwner)
	ctx := authContext(owner)

	sched := createScheduleForTest(t, svc, ctx)

	reqResp, err := svc.schedules.RequestDeleteSchedule(ctx, &schedulev1.RequestDeleteScheduleRequest{Id: sched.Id})
	require.NoError(t, err)
	_, err = svc.schedules.ConfirmDeleteSchedule(ctx, &schedulev1.ConfirmDeleteScheduleRequest{ConfirmationToken: reqResp.ConfirmationToken})
	require.NoError(t, err)

	notifications := NewNotificationService(client)
	records, err := notifications.ListForUser(context.Background(), owner.ID, false)
	require.NoError(t, err)

	var deleted *ent.Notification
	for _, n := range records {
		if n.Category == "schedule_deleted" {
			deleted = n
		}
	}
	require.NotNil(t, deleted, "owner should be notified about the cascade")
	assert.Contains(t, deleted.Message, "Foundation pour")
}

func TestScheduleService_GetScheduleReport(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestServices(t, client)
	owner := createTestUser(t, client, user.RoleOwner)
	ownerCtx := authContext(owner)

	first := createScheduleForTest(t, svc, ownerCtx)
	second := createScheduleForTest(t, svc, ownerCtx)
	otherResp, err := svc.schedules.CreateSchedule(ownerCtx, &schedulev1.CreateScheduleRequest{
		Description: "Roofing",
		LotId:       uuid.New().String(),
		ProjectId:   "project-2",
		StartDate:   "2025-04-01",
		EndDate:     "2025-04-30",
	})
	require.NoError(t, err)

	// Owners export everything when no filter is given.
	resp, err := svc.schedules.GetScheduleReport(ownerCtx, &schedulev1.GetScheduleReportRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Projects, 2)
	assert.Equal(t, "project-1", resp.Projects[0].ProjectId)
	assert.ElementsMatch(t, []string{first.Id, second.Id}, resp.Projects[0].ScheduleIds)
	assert.Equal(t, "project-2", resp.Projects[1].ProjectId)
	assert.Equal(t, []string{otherResp.Schedule.Id}, resp.Projects[1].ScheduleIds)

	// A salesperson's export is clipped to their projects even when
	// they ask for more.
	sales := createTestUser(t, client, user.RoleSalesperson, "project-2")
	salesResp, err := svc.schedules.GetScheduleReport(authContext(sales), &schedulev1.GetScheduleReportRequest{
		ProjectIds: []string{"project-1", "project-2"},
	})
	require.NoError(t, err)
	require.Len(t, salesResp.Projects, 1)
	assert.Equal(t, "project-2", salesResp.Projects[0].ProjectId)

	// A scoped caller with no projects gets an empty report.
	outsider := createTestUser(t, client, user.RoleCustomer)
	emptyResp, err := svc.schedules.GetScheduleReport(authContext(outsider), &schedulev1.GetScheduleReportRequest{})
	require.NoError(t, err)
	assert.Empty(t, emptyResp.Projects)

	// Contractors have no project scope to export.
	contractor := createTestUser(t, client, user.RoleContractor)
	_, err = svc.schedules.GetScheduleReport(authContext(contractor), &schedulev1.GetScheduleReportRequest{})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}
