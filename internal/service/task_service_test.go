// internal/service/task_service_test.go
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
	"github.com/buildcrew/sitemaster/ent/generated/user"
)

func TestTaskService_CreateTask(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestServices(t, client)
	owner := createTestUser(t, client, user.RoleOwner)
	ctx := authContext(owner)

	sched := createScheduleForTest(t, svc, ctx)

	tests := []struct {
		name     string
		request  *taskv1.CreateTaskRequest
		wantErr  bool
		wantCode codes.Code
	}{
		{
			name: "period inside window",
			request: &taskv1.CreateTaskRequest{
				ScheduleId:  sched.Id,
				Title:       "Excavation",
				PeriodStart: "2025-03-01",
				PeriodEnd:   "2025-03-10",
			},
		},
		{
			name: "starts before schedule",
			request: &taskv1.CreateTaskRequest{
				ScheduleId:  sched.Id,
				Title:       "Too early",
				PeriodStart: "2025-02-28",
				PeriodEnd:   "2025-03-05",
			},
			wantErr:  true,
			wantCode: codes.InvalidArgument,
		},
		{
			name: "ends after schedule",
			request: &taskv1.CreateTaskRequest{
				ScheduleId:  sched.Id,
				Title:       "Too late",
				PeriodStart: "2025-03-10",
				PeriodEnd:   "2025-03-20",
			},
			wantErr:  true,
			wantCode: codes.InvalidArgument,
		},
		{
			name: "empty title",
			request: &taskv1.CreateTaskRequest{
				ScheduleId:  sched.Id,
				Title:       "",
				PeriodStart: "2025-03-01",
				PeriodEnd:   "2025-03-05",
			},
			wantErr:  true,
			wantCode: codes.InvalidArgument,
		},
		{
			name: "unknown schedule",
			request: &taskv1.CreateTaskRequest{
				ScheduleId: uuid.New().String(),
				Title:      "Orphan",
			},
			wantErr:  true,
			wantCode: codes.NotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.tasks.CreateTask(ctx, tt.request)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, status.Code(err))
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, resp.Task.Id)
			assert.Equal(t, sched.Id, resp.Task.ScheduleId)
		})
	}
}

func TestTaskService_CreateTask_Defaults(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestServices(t, client)
	owner := createTestUser(t, client, user.RoleOwner)
	ctx := authContext(owner)

	sched := createScheduleForTest(t, svc, ctx)

	resp, err := svc.tasks.CreateTask(ctx, &taskv1.CreateTaskRequest{
		ScheduleId: sched.Id,
		Title:      "Bare minimum",
	})
	require.NoError(t, err)

	// Status, priority, progress and the period all default.
	assert.Equal(t, taskv1.TaskStatus_TASK_STATUS_TO_DO, resp.Task.Status)
	assert.Equal(t, taskv1.Priority_PRIORITY_MEDIUM, resp.Task.Priority)
	assert.Equal(t, int32(0), resp.Task.Progress)
	assert.Equal(t, sched.StartDate, resp.Task.PeriodStart)
	assert.Equal(t, sched.EndDate, resp.Task.PeriodEnd)
	assert.Empty(t, resp.Task.AssigneeId)
	assert.Nil(t, resp.Task.EstimatedHours)
}

func TestTaskService_CreateTask_AssigneeChecks(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestServices(t, client)
	owner := createTestUser(t, client, user.RoleOwner)
	ctx := authContext(owner)

	sched := createScheduleForTest(t, svc, ctx)

	// Unknown assignee.
	_, err := svc.tasks.CreateTask(ctx, &taskv1.CreateTaskRequest{
		ScheduleId: sched.Id,
		Title:      "Unassignable",
		AssigneeId: uuid.New().String(),
	})
	assert.Equal(t, codes.NotFound, status.Code(err))

	// Only contractors carry assigned work.
	customer := createTestUser(t, client, user.RoleCustomer)
	_, err = svc.tasks.CreateTask(ctx, &taskv1.CreateTaskRequest{
		ScheduleId: sched.Id,
		Title:      "Wrong role",
		AssigneeId: customer.ID.String(),
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	contractor := createTestUser(t, client, user.RoleContractor)
	resp, err := svc.tasks.CreateTask(ctx, &taskv1.CreateTaskRequest{
		ScheduleId: sched.Id,
		Title:      "Assigned",
		AssigneeId: contractor.ID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, contractor.ID.String(), resp.Task.AssigneeId)
}

func TestTaskService_UpdateTask_StatusTransitions(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestServices(t, client)
	owner := createTestUser(t, client, user.RoleOwner)
	ctx := authContext(owner)

	sched := createScheduleForTest(t, svc, ctx)
	created, err := svc.tasks.CreateTask(ctx, &taskv1.CreateTaskRequest{
		ScheduleId: sched.Id,
		Title:      "Pour concrete",
	})
	require.NoError(t, err)
	taskID := created.Task.Id

	// Skipping in_progress is rejected.
	_, err = svc.tasks.UpdateTask(ctx, &taskv1.UpdateTaskRequest{
		Id:     taskID,
		Status: taskv1.TaskStatus_TASK_STATUS_COMPLETED,
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	// The legal path works.
	resp, err := svc.tasks.UpdateTask(ctx, &taskv1.UpdateTaskRequest{
		Id:     taskID,
		Status: taskv1.TaskStatus_TASK_STATUS_IN_PROGRESS,
	})
	require.NoError(t, err)
	assert.Equal(t, taskv1.TaskStatus_TASK_STATUS_IN_PROGRESS, resp.Task.Status)

	resp, err = svc.tasks.UpdateTask(ctx, &taskv1.UpdateTaskRequest{
		Id:     taskID,
		Status: taskv1.TaskStatus_TASK_STATUS_COMPLETED,
	})
	require.NoError(t, err)
	assert.Equal(t, taskv1.TaskStatus_TASK_STATUS_COMPLETED, resp.Task.Status)

	// Completed is terminal.
	_, err = svc.tasks.UpdateTask(ctx, &taskv1.UpdateTaskRequest{
		Id:     taskID,
		Status: taskv1.TaskStatus_TASK_STATUS_IN_PROGRESS,
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestTaskService_UpdateTask_ContractorFieldMatrix(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestServices(t, client)
	owner := createTestUser(t, client, user.RoleOwner)
	ownerCtx := authContext(owner)
	contractor := createTestUser(t, client, user.RoleContractor)
	contractorCtx := authContext(contractor)

	sched := createScheduleForTest(t, svc, ownerCtx)
	created, err := svc.tasks.CreateTask(ownerCtx, &taskv1.CreateTaskRequest{
		ScheduleId: sched.Id,
		Title:      "Install rebar",
		AssigneeId: contractor.ID.String(),
	})
	require.NoError(t, err)
	taskID := created.Task.Id

	hours := 6.5
	progress := int32(40)

	// Progress reporting on their own task succeeds.
	resp, err := svc.tasks.UpdateTask(contractorCtx, &taskv1.UpdateTaskRequest{
		Id:         taskID,
		Status:     taskv1.TaskStatus_TASK_STATUS_IN_PROGRESS,
		HoursSpent: &hours,
		Progress:   &progress,
	})
	require.NoError(t, err)
	assert.Equal(t, taskv1.TaskStatus_TASK_STATUS_IN_PROGRESS, resp.Task.Status)
	require.NotNil(t, resp.Task.HoursSpent)
	assert.Equal(t, 6.5, *resp.Task.HoursSpent)
	assert.Equal(t, int32(40), resp.Task.Progress)

	// Title, description and assignee writes are authorization
	// failures, not validation failures.
	denied := []*taskv1.UpdateTaskRequest{
		{Id: taskID, Title: "Renamed"},
		{Id: taskID, Description: "New description"},
		{Id: taskID, AssigneeId: contractor.ID.String()},
		{Id: taskID, ClearAssignee: true},
		{Id: taskID, PeriodEnd: "2025-03-14"},
		{Id: taskID, Priority: taskv1.Priority_PRIORITY_HIGH},
	}
	for _, req := range denied {
		_, err := svc.tasks.UpdateTask(contractorCtx, req)
		require.Error(t, err)
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	}

	// Someone else's task is invisible to them.
	other, err := svc.tasks.CreateTask(ownerCtx, &taskv1.CreateTaskRequest{
		ScheduleId: sched.Id,
		Title:      "Unassigned work",
	})
	require.NoError(t, err)
	prog := int32(10)
	_, err = svc.tasks.UpdateTask(contractorCtx, &taskv1.UpdateTaskRequest{Id: other.Task.Id, Progress: &prog})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestTaskService_UpdateTask_RevalidatesAgainstCurrentWindow(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestServices(t, client)
	owner := createTestUser(t, client, user.RoleOwner)
	ctx := authContext(owner)

	sched := createScheduleForTest(t, svc, ctx)
	created, err := svc.tasks.CreateTask(ctx, &taskv1.CreateTaskRequest{
		ScheduleId:  sched.Id,
		Title:       "Early works",
		PeriodStart: "2025-03-01",
		PeriodEnd:   "2025-03-03",
	})
	require.NoError(t, err)

	// Moving the period outside the window fails even though both new
	// dates are self-consistent.
	_, err = svc.tasks.UpdateTask(ctx, &taskv1.UpdateTaskRequest{
		Id:          created.Task.Id,
		PeriodStart: "2025-03-14",
		PeriodEnd:   "2025-03-16",
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestTaskService_DeleteTask(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestServices(t, client)
	owner := createTestUser(t, client, user.RoleOwner)
	ctx := authContext(owner)

	sched := createScheduleForTest(t, svc, ctx)
	created, err := svc.tasks.CreateTask(ctx, &taskv1.CreateTaskRequest{
		ScheduleId: sched.Id,
		Title:      "Disposable",
	})
	require.NoError(t, err)

	contractor := createTestUser(t, client, user.RoleContractor)
	_, err = svc.tasks.DeleteTask(authContext(contractor), &taskv1.DeleteTaskRequest{Id: created.Task.Id})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = svc.tasks.DeleteTask(ctx, &taskv1.DeleteTaskRequest{Id: created.Task.Id})
	require.NoError(t, err)

	_, err = svc.tasks.GetTask(ctx, &taskv1.GetTaskRequest{Id: created.Task.Id})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = svc.tasks.DeleteTask(ctx, &taskv1.DeleteTaskRequest{Id: created.Task.Id})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestTaskService_PopulateTasks(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestServices(t, client)
	owner := createTestUser(t, client, user.RoleOwner)
	ctx := authContext(owner)

	sched := createScheduleForTest(t, svc, ctx)

	resp, err := svc.tasks.PopulateTasks(ctx, &taskv1.PopulateTasksRequest{
		ScheduleId: sched.Id,
		Tasks: []*taskv1.DraftTask{
			{Title: "Excavation", Priority: taskv1.Priority_PRIORITY_HIGH, PeriodStart: "2025-03-01", PeriodEnd: "2025-03-05"},
			{Title: "Formwork"},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Tasks, 2)
	assert.Equal(t, taskv1.Priority_PRIORITY_HIGH, resp.Tasks[0].Priority)
	// The draft without a period inherits the schedule window.
	assert.Equal(t, sched.StartDate, resp.Tasks[1].PeriodStart)
	assert.Equal(t, sched.EndDate, resp.Tasks[1].PeriodEnd)

	got, err := svc.schedules.GetSchedule(ctx, &schedulev1.GetScheduleRequest{Id: sched.Id})
	require.NoError(t, err)
	assert.Equal(t, int32(2), got.Schedule.TaskCount)
}

func TestTaskService_PopulateTasks_AllOrNothing(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestServices(t, client)
	owner := createTestUser(t, client, user.RoleOwner)
	ctx := authContext(owner)

	sched := createScheduleForTest(t, svc, ctx)

	_, err := svc.tasks.PopulateTasks(ctx, &taskv1.PopulateTasksRequest{
		ScheduleId: sched.Id,
		Tasks: []*taskv1.DraftTask{
			{Title: "Fine"},
			{Title: "Out of window", PeriodStart: "2025-02-01", PeriodEnd: "2025-02-10"},
		},
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	// Nothing from the batch was written.
	listResp, err := svc.tasks.ListTasks(ctx, &taskv1.ListTasksRequest{ScheduleId: sched.Id})
	require.NoError(t, err)
	assert.Empty(t, listResp.Tasks)
}

func TestTaskService_PopulateTasks_EmptyBatch(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestServices(t, client)
	owner := createTestUser(t, client, user.RoleOwner)
	ctx := authContext(owner)

	sched := createScheduleForTest(t, svc, ctx)

	// Skipping the population step leaves a valid empty schedule.
	resp, err := svc.tasks.PopulateTasks(ctx, &taskv1.PopulateTasksRequest{ScheduleId: sched.Id})
	require.NoError(t, err)
	assert.Empty(t, resp.Tasks)
}

func TestTaskService_ListTasks_Scoping(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestServices(t, client)
	owner := createTestUser(t, client, user.RoleOwner)
	ownerCtx := authContext(owner)
	contractor := createTestUser(t, client, user.RoleContractor)

	sched := createScheduleForTest(t, svc, ownerCtx)
	_, err := svc.tasks.CreateTask(ownerCtx, &taskv1.CreateTaskRequest{
		ScheduleId: sched.Id,
		Title:      "Mine",
		AssigneeId: contractor.ID.String(),
	})
	require.NoError(t, err)
	_, err = svc.tasks.CreateTask(ownerCtx, &taskv1.CreateTaskRequest{
		ScheduleId: sched.Id,
		Title:      "Not mine",
	})
	require.NoError(t, err)

	// Owner sees both.
	resp, err := svc.tasks.ListTasks(ownerCtx, &taskv1.ListTasksRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(2), resp.TotalCount)

	// Contractor only sees their own, even with no filter set.
	resp, err = svc.tasks.ListTasks(authContext(contractor), &taskv1.ListTasksRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Tasks, 1)
	assert.Equal(t, "Mine", resp.Tasks[0].Title)

	// Customer scoping follows project membership.
	member := createTestUser(t, client, user.RoleCustomer, "project-1")
	resp, err = svc.tasks.ListTasks(authContext(member), &taskv1.ListTasksRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Tasks, 2)

	outsider := createTestUser(t, client, user.RoleCustomer, "project-9")
	resp, err = svc.tasks.ListTasks(authContext(outsider), &taskv1.ListTasksRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.Tasks)
}

func TestTaskService_ListTasks_Filters(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestServices(t, client)
	owner := createTestUser(t, client, user.RoleOwner)
	ctx := authContext(owner)

	sched := createScheduleForTest(t, svc, ctx)
	created, err := svc.tasks.CreateTask(ctx, &taskv1.CreateTaskRequest{
		ScheduleId: sched.Id,
		Title:      "High priority",
		Priority:   taskv1.Priority_PRIORITY_VERY_HIGH,
	})
	require.NoError(t, err)
	_, err = svc.tasks.CreateTask(ctx, &taskv1.CreateTaskRequest{
		ScheduleId: sched.Id,
		Title:      "Background",
		Priority:   taskv1.Priority_PRIORITY_LOW,
	})
	require.NoError(t, err)

	resp, err := svc.tasks.ListTasks(ctx, &taskv1.ListTasksRequest{
		Priority: taskv1.Priority_PRIORITY_VERY_HIGH,
	})
	require.NoError(t, err)
	require.Len(t, resp.Tasks, 1)
	assert.Equal(t, created.Task.Id, resp.Tasks[0].Id)

	_, err = svc.tasks.UpdateTask(ctx, &taskv1.UpdateTaskRequest{
		Id:     created.Task.Id,
		Status: taskv1.TaskStatus_TASK_STATUS_IN_PROGRESS,
	})
	require.NoError(t, err)

	resp, err = svc.tasks.ListTasks(ctx, &taskv1.ListTasksRequest{
		Status: taskv1.TaskStatus_TASK_STATUS_IN_PROGRESS,
	})
	require.NoError(t, err)
	require.Len(t, resp.Tasks, 1)
	assert.Equal(t, created.Task.Id, resp.Tasks[0].Id)
}

func TestTaskService_GetTaskSummary_RoleChecks(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestServices(t, client)

	// Customers and salespeople have no dashboard rollup.
	for _, role := range []user.Role{user.RoleCustomer, user.RoleSalesperson} {
		caller := createTestUser(t, client, role)
		_, err := svc.tasks.GetTaskSummary(authContext(caller), &taskv1.GetTaskSummaryRequest{CurrentWeekOnly: true})
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	}

	// Owners must name a contractor.
	owner := createTestUser(t, client, user.RoleOwner)
	_, err := svc.tasks.GetTaskSummary(authContext(owner), &taskv1.GetTaskSummaryRequest{CurrentWeekOnly: true})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	// A backwards summary window is rejected before any query runs.
	contractor := createTestUser(t, client, user.RoleContractor)
	_, err = svc.tasks.GetTaskSummary(authContext(contractor), &taskv1.GetTaskSummaryRequest{
		PeriodStart: "2025-03-10",
		PeriodEnd:   "2025-03-01",
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestTaskService_GetTaskSummary_Rollup(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestServices(t, client)
	owner := createTestUser(t, client, user.RoleOwner)
	ownerCtx := authContext(owner)
	contractor := createTestUser(t, client, user.RoleContractor)
	other := createTestUser(t, client, user.RoleContractor)

	sched := createScheduleForTest(t, svc, ownerCtx)

	est10, est8, est4 := 10.0, 8.0, 4.0
	spent30, spent4 := 30.0, 4.0

	// Past due without completing, and already over its estimate.
	_, err := svc.tasks.CreateTask(ownerCtx, &taskv1.CreateTaskRequest{
		ScheduleId: sched.Id, Title: "Pour footings", AssigneeId: contractor.ID.String(),
		Status: taskv1.TaskStatus_TASK_STATUS_IN_PROGRESS, Priority: taskv1.Priority_PRIORITY_VERY_HIGH,
		PeriodStart: "2025-03-03", PeriodEnd: "2025-03-04",
		EstimatedHours: &est10, HoursSpent: &spent30,
	})
	require.NoError(t, err)
	_, err = svc.tasks.CreateTask(ownerCtx, &taskv1.CreateTaskRequest{
		ScheduleId: sched.Id, Title: "Frame walls", AssigneeId: contractor.ID.String(),
		Priority:    taskv1.Priority_PRIORITY_HIGH,
		PeriodStart: "2025-03-04", PeriodEnd: "2025-03-06",
		EstimatedHours: &est8,
	})
	require.NoError(t, err)
	_, err = svc.tasks.CreateTask(ownerCtx, &taskv1.CreateTaskRequest{
		ScheduleId: sched.Id, Title: "Inspect forms", AssigneeId: contractor.ID.String(),
		Status:      taskv1.TaskStatus_TASK_STATUS_COMPLETED,
		PeriodStart: "2025-03-03", PeriodEnd: "2025-03-05",
		EstimatedHours: &est4, HoursSpent: &spent4,
	})
	require.NoError(t, err)
	// Another contractor's work never leaks into the rollup.
	_, err = svc.tasks.CreateTask(ownerCtx, &taskv1.CreateTaskRequest{
		ScheduleId: sched.Id, Title: "Rough plumbing", AssigneeId: other.ID.String(),
		PeriodStart: "2025-03-03", PeriodEnd: "2025-03-07",
	})
	require.NoError(t, err)

	// The clock is pinned to Wednesday 2025-03-05, so the current week
	// runs 2025-03-03 through 2025-03-09.
	resp, err := svc.tasks.GetTaskSummary(authContext(contractor), &taskv1.GetTaskSummaryRequest{
		CurrentWeekOnly: true,
	})
	require.NoError(t, err)

	assert.Equal(t, contractor.ID.String(), resp.ContractorId)
	assert.Equal(t, "2025-03-03", resp.PeriodStart)
	assert.Equal(t, "2025-03-09", resp.PeriodEnd)
	assert.Equal(t, int32(3), resp.TotalTasks)
	assert.Equal(t, int32(2), resp.OpenTasksCount)
	assert.Equal(t, int32(1), resp.CompletedTasksCount)
	assert.Equal(t, int32(1), resp.OverdueTasksCount)
	assert.InDelta(t, 22.0, resp.TotalEstimatedHours, 0.001)
	// 34 hours logged against 22 estimated clamps to zero rather than
	// going negative.
	assert.Zero(t, resp.TotalRemainingHours)

	require.NotNil(t, resp.NextDueTask)
	assert.Equal(t, "Frame walls", resp.NextDueTask.Title)
	assert.Equal(t, "2025-03-06", resp.NextDueTask.DueDate)

	require.Len(t, resp.TopPriorityTasks, 2)
	assert.Equal(t, "Pour footings", resp.TopPriorityTasks[0].Title)
	assert.Equal(t, "Frame walls", resp.TopPriorityTasks[1].Title)

	// Owners read the same rollup by naming the contractor.
	ownerResp, err := svc.tasks.GetTaskSummary(ownerCtx, &taskv1.GetTaskSummaryRequest{
		ContractorId: contractor.ID.String(),
		PeriodStart:  "2025-03-03",
		PeriodEnd:    "2025-03-09",
	})
	require.NoError(t, err)
	assert.Equal(t, int32(3), ownerResp.TotalTasks)
	assert.Equal(t, int32(1), ownerResp.OverdueTasksCount)
}

func TestTaskService_TaskNotifications(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := newTestServices(t, client)
	owner := createTestUser(t, client, user.RoleOwner)
	ctx := authContext(owner)
	contractor := createTestUser(t, client, user.RoleContractor)

	sched := createScheduleForTest(t, svc, ctx)
	created, err := svc.tasks.CreateTask(ctx, &taskv1.CreateTaskRequest{
		ScheduleId: sched.Id,
		Title:      "Waterproofing",
		AssigneeId: contractor.ID.String(),
	})
	require.NoError(t, err)

	_, err = svc.tasks.UpdateTask(ctx, &taskv1.UpdateTaskRequest{
		Id:     created.Task.Id,
		Status: taskv1.TaskStatus_TASK_STATUS_IN_PROGRESS,
	})
	require.NoError(t, err)

	notifications := NewNotificationService(client)
	records, err := notifications.ListForUser(context.Background(), contractor.ID, true)
	require.NoError(t, err)

	categories := make([]string, len(records))
	for i, n := range records {
		categories[i] = string(n.Category)
	}
	assert.Contains(t, categories, "task_created")
	assert.Contains(t, categories, "task_status_changed")
}
