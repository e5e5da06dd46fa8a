// internal/service/task_service.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	taskv1 "github.com/buildcrew/sitemaster/api/proto/task/v1/generated"
	ent "github.com/buildcrew/sitemaster/ent/generated"
	"github.com/buildcrew/sitemaster/ent/generated/user"
	"github.com/buildcrew/sitemaster/internal/models"
	"github.com/buildcrew/sitemaster/internal/repository"
	"github.com/buildcrew/sitemaster/internal/validation"
	"github.com/buildcrew/sitemaster/pkg/access"
)

// topPriorityLimit bounds the dashboard's top-priority preview list.
const topPriorityLimit = 3

// TaskService implements the task gRPC service
type TaskService struct {
	taskv1.UnimplementedTaskServiceServer
	client    *ent.Client
	repo      *repository.EntTaskRepository
	schedules *repository.EntScheduleRepository
	summaries *repository.SummaryRepository
	events    *EventLogger
	nowFn     func() time.Time
}

// NewTaskService creates a new task service
func NewTaskService(client *ent.Client, summaries *repository.SummaryRepository, events *EventLogger) *TaskService {
	return &TaskService{
		client:    client,
		repo:      repository.NewEntTaskRepository(client),
		schedules: repository.NewEntScheduleRepository(client),
		summaries: summaries,
		events:    events,
		nowFn:     time.Now,
	}
}

// CreateTask creates a task inside a schedule's window. Missing period
// bounds default to the full window, missing status and priority to
// their zero-of-the-domain values.
func (s *TaskService) CreateTask(ctx context.Context, req *taskv1.CreateTaskRequest) (*taskv1.CreateTaskResponse, error) {
	c, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !c.Role.Can(access.OpTaskCreate) {
		return nil, status.Error(codes.PermissionDenied, "role may not create tasks")
	}

	scheduleID, err := uuid.Parse(req.ScheduleId)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "schedule_id: must be a valid UUID")
	}

	// Fetched fresh so the task nests inside the window as it is now,
	// not as some client cached it.
	sched, err := s.schedules.GetByID(ctx, scheduleID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "schedule not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to get schedule: %v", err)
	}

	in := &repository.TaskInput{
		ScheduleID:     scheduleID,
		Title:          req.Title,
		Description:    req.Description,
		Status:         statusOrDefault(req.Status),
		Priority:       priorityOrDefault(req.Priority),
		PeriodStart:    sched.StartDate,
		PeriodEnd:      sched.EndDate,
		EstimatedHours: req.EstimatedHours,
		HoursSpent:     req.HoursSpent,
	}
	if req.Progress != nil {
		in.Progress = int(*req.Progress)
	}
	if req.PeriodStart != "" {
		start, err := validation.ParseDate("period_start", req.PeriodStart)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		in.PeriodStart = start
	}
	if req.PeriodEnd != "" {
		end, err := validation.ParseDate("period_end", req.PeriodEnd)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		in.PeriodEnd = end
	}
	if req.AssigneeId != "" {
		assigneeID, err := s.resolveAssignee(ctx, req.AssigneeId)
		if err != nil {
			return nil, err
		}
		in.AssigneeID = assigneeID
	}

	fields := validation.TaskFields{
		Title:          in.Title,
		Status:         in.Status,
		Priority:       in.Priority,
		PeriodStart:    in.PeriodStart,
		PeriodEnd:      in.PeriodEnd,
		EstimatedHours: in.EstimatedHours,
		HoursSpent:     in.HoursSpent,
		Progress:       in.Progress,
	}
	if err := validation.ValidateTask(fields, sched.StartDate, sched.EndDate); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	task, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to create task: %v", err)
	}

	s.events.LogTaskCreated(ctx, task)

	return &taskv1.CreateTaskResponse{
		Task: convertEntTaskToProto(task),
	}, nil
}

// GetTask returns one task, subject to the caller's visibility.
func (s *TaskService) GetTask(ctx context.Context, req *taskv1.GetTaskRequest) (*taskv1.GetTaskResponse, error) {
	c, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id: must be a valid UUID")
	}

	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to get task: %v", err)
	}

	if err := s.authorizeTaskRead(ctx, c, task); err != nil {
		return nil, err
	}

	return &taskv1.GetTaskResponse{
		Task: convertEntTaskToProto(task),
	}, nil
}

// ListTasks returns the tasks visible to the caller, ordered by period
// start. Contractors always get their own tasks regardless of the
// assignee filter.
func (s *TaskService) ListTasks(ctx context.Context, req *taskv1.ListTasksRequest) (*taskv1.ListTasksResponse, error) {
	c, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	filter := repository.TaskFilter{
		ProjectID: req.ProjectId,
	}

	if req.ScheduleId != "" {
		scheduleID, err := uuid.Parse(req.ScheduleId)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "schedule_id: must be a valid UUID")
		}
		filter.ScheduleID = &scheduleID
	}

	if c.Role.OwnTasksOnly() {
		assigneeID := c.ID
		filter.AssigneeID = &assigneeID
	} else {
		if c.Role.ProjectScoped() {
			projectIDs, err := projectIDsForCaller(ctx, s.client, c)
			if err != nil {
				return nil, err
			}
			filter.ProjectIDs = projectIDs
		}
		if req.AssigneeId != "" {
			assigneeID, err := uuid.Parse(req.AssigneeId)
			if err != nil {
				return nil, status.Error(codes.InvalidArgument, "assignee_id: must be a valid UUID")
			}
			filter.AssigneeID = &assigneeID
		}
	}

	if req.Status != taskv1.TaskStatus_TASK_STATUS_UNSPECIFIED {
		st := convertProtoStatusToString(req.Status)
		filter.Status = &st
	}
	if req.Priority != taskv1.Priority_PRIORITY_UNSPECIFIED {
		pr := convertProtoPriorityToString(req.Priority)
		filter.Priority = &pr
	}
	if req.CurrentWeekOnly {
		window := weekWindow(s.nowFn())
		filter.Window = &window
	}

	tasks, totalCount, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list tasks: %v", err)
	}

	protoTasks := make([]*taskv1.Task, len(tasks))
	for i, t := range tasks {
		protoTasks[i] = convertEntTaskToProto(t)
	}

	return &taskv1.ListTasksResponse{
		Tasks:      protoTasks,
		TotalCount: int32(totalCount),
	}, nil
}

// UpdateTask applies a partial task edit. The merged state is
// re-validated against the schedule window as it is now, and status
// changes must follow the transition graph. Contractors may only touch
// their own tasks and only the progress-reporting fields.
func (s *TaskService) UpdateTask(ctx context.Context, req *taskv1.UpdateTaskRequest) (*taskv1.UpdateTaskResponse, error) {
	c, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !c.Role.Can(access.OpTaskUpdate) {
		return nil, status.Error(codes.PermissionDenied, "role may not update tasks")
	}

	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id: must be a valid UUID")
	}

	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to get task: %v", err)
	}

	if c.Role.OwnTasksOnly() && task.AssigneeID != c.ID {
		return nil, status.Error(codes.NotFound, "task not found")
	}

	if denied := c.Role.DeniedTaskFields(requestedTaskFields(req)); len(denied) > 0 {
		return nil, status.Errorf(codes.PermissionDenied, "role may not write: %s", strings.Join(denied, ", "))
	}

	in, fields, err := s.mergeTaskUpdate(ctx, task, req)
	if err != nil {
		return nil, err
	}

	if in.Status != nil {
		if err := validation.ValidateStatusTransition(string(task.Status), *in.Status); err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
	}

	// The parent window constrains the merged task even when the edit
	// touches neither period bound.
	sched, err := s.schedules.GetByID(ctx, task.ScheduleID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "schedule not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to get schedule: %v", err)
	}
	if err := validation.ValidateTask(fields, sched.StartDate, sched.EndDate); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	updated, err := s.repo.Update(ctx, id, in)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to update task: %v", err)
	}

	if in.Status != nil && *in.Status != string(task.Status) {
		s.events.LogTaskStatusChanged(ctx, updated, string(task.Status), *in.Status)
	} else {
		s.events.LogTaskUpdated(ctx, updated)
	}

	return &taskv1.UpdateTaskResponse{
		Task: convertEntTaskToProto(updated),
	}, nil
}

// DeleteTask deletes a single task. Unlike schedules this needs no
// confirmation: nothing else hangs off a task.
func (s *TaskService) DeleteTask(ctx context.Context, req *taskv1.DeleteTaskRequest) (*emptypb.Empty, error) {
	c, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !c.Role.Can(access.OpTaskDelete) {
		return nil, status.Error(codes.PermissionDenied, "role may not delete tasks")
	}

	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id: must be a valid UUID")
	}

	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to get task: %v", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to delete task: %v", err)
	}

	s.events.LogTaskDeleted(ctx, task)

	return &emptypb.Empty{}, nil
}

// PopulateTasks attaches a batch of draft tasks to a schedule, the
// second step of the create-then-populate flow. Every draft is validated
// against the window before any row is written; an empty batch is a
// valid way to finish the flow without tasks.
func (s *TaskService) PopulateTasks(ctx context.Context, req *taskv1.PopulateTasksRequest) (*taskv1.PopulateTasksResponse, error) {
	c, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !c.Role.Can(access.OpTaskCreate) {
		return nil, status.Error(codes.PermissionDenied, "role may not create tasks")
	}

	scheduleID, err := uuid.Parse(req.ScheduleId)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "schedule_id: must be a valid UUID")
	}

	sched, err := s.schedules.GetByID(ctx, scheduleID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "schedule not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to get schedule: %v", err)
	}

	if len(req.Tasks) == 0 {
		return &taskv1.PopulateTasksResponse{}, nil
	}

	inputs := make([]*repository.TaskInput, len(req.Tasks))
	for i, draft := range req.Tasks {
		in := &repository.TaskInput{
			ScheduleID:     scheduleID,
			Title:          draft.Title,
			Description:    draft.Description,
			Status:         models.TaskStatusToDo,
			Priority:       priorityOrDefault(draft.Priority),
			PeriodStart:    sched.StartDate,
			PeriodEnd:      sched.EndDate,
			EstimatedHours: draft.EstimatedHours,
		}
		if draft.PeriodStart != "" {
			start, err := validation.ParseDate(fmt.Sprintf("tasks[%d].period_start", i), draft.PeriodStart)
			if err != nil {
				return nil, status.Error(codes.InvalidArgument, err.Error())
			}
			in.PeriodStart = start
		}
		if draft.PeriodEnd != "" {
			end, err := validation.ParseDate(fmt.Sprintf("tasks[%d].period_end", i), draft.PeriodEnd)
			if err != nil {
				return nil, status.Error(codes.InvalidArgument, err.Error())
			}
			in.PeriodEnd = end
		}
		if draft.AssigneeId != "" {
			assigneeID, err := s.resolveAssignee(ctx, draft.AssigneeId)
			if err != nil {
				return nil, err
			}
			in.AssigneeID = assigneeID
		}

		fields := validation.TaskFields{
			Title:          in.Title,
			Status:         in.Status,
			Priority:       in.Priority,
			PeriodStart:    in.PeriodStart,
			PeriodEnd:      in.PeriodEnd,
			EstimatedHours: in.EstimatedHours,
		}
		if err := validation.ValidateTask(fields, sched.StartDate, sched.EndDate); err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "tasks[%d]: %v", i, err)
		}

		inputs[i] = in
	}

	tasks, err := s.repo.CreateBatch(ctx, inputs)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to create tasks: %v", err)
	}

	protoTasks := make([]*taskv1.Task, len(tasks))
	for i, t := range tasks {
		s.events.LogTaskCreated(ctx, t)
		protoTasks[i] = convertEntTaskToProto(t)
	}

	return &taskv1.PopulateTasksResponse{
		Tasks: protoTasks,
	}, nil
}

// GetTaskSummary produces the contractor dashboard rollup. Contractors
// always get their own summary; owners may ask for any contractor.
func (s *TaskService) GetTaskSummary(ctx context.Context, req *taskv1.GetTaskSummaryRequest) (*taskv1.GetTaskSummaryResponse, error) {
	c, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var contractorID uuid.UUID
	switch {
	case c.Role.OwnTasksOnly():
		contractorID = c.ID
	case c.Role == access.RoleOwner:
		contractorID, err = uuid.Parse(req.ContractorId)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "contractor_id: must be a valid UUID")
		}
	default:
		return nil, status.Error(codes.PermissionDenied, "role may not read task summaries")
	}

	now := s.nowFn()

	var window repository.DateWindow
	if req.CurrentWeekOnly {
		window = weekWindow(now)
	} else {
		start, err := validation.ParseDate("period_start", req.PeriodStart)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		end, err := validation.ParseDate("period_end", req.PeriodEnd)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		if end.Before(start) {
			return nil, status.Error(codes.InvalidArgument, "period_end: must not precede period_start")
		}
		window = repository.DateWindow{Start: start, End: end}
	}

	day := today(now)

	summary, err := s.summaries.Summary(ctx, contractorID, window.Start, window.End, day)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to compute summary: %v", err)
	}

	nextDue, err := s.summaries.NextDue(ctx, contractorID, day)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to find next due task: %v", err)
	}

	topPriority, err := s.summaries.TopPriority(ctx, contractorID, window.Start, window.End, topPriorityLimit)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list top priority tasks: %v", err)
	}

	remaining := summary.TotalEstimatedHours - summary.TotalHoursSpent
	if remaining < 0 {
		remaining = 0
	}

	resp := &taskv1.GetTaskSummaryResponse{
		ContractorId:        contractorID.String(),
		PeriodStart:         validation.FormatDate(window.Start),
		PeriodEnd:           validation.FormatDate(window.End),
		TotalTasks:          int32(summary.TotalTasks),
		OpenTasksCount:      int32(summary.OpenTasks),
		CompletedTasksCount: int32(summary.CompletedTasks),
		OverdueTasksCount:   int32(summary.OverdueTasks),
		TotalEstimatedHours: summary.TotalEstimatedHours,
		TotalRemainingHours: remaining,
		GeneratedAt:         timestamppb.New(now),
	}
	if nextDue != nil {
		resp.NextDueTask = convertPreviewRowToProto(nextDue)
	}
	for i := range topPriority {
		resp.TopPriorityTasks = append(resp.TopPriorityTasks, convertPreviewRowToProto(&topPriority[i]))
	}

	return resp, nil
}

// authorizeTaskRead applies the role visibility rules to a single
// fetched task.
func (s *TaskService) authorizeTaskRead(ctx context.Context, c caller, task *ent.Task) error {
	switch {
	case c.Role.OwnTasksOnly():
		if task.AssigneeID != c.ID {
			return status.Error(codes.NotFound, "task not found")
		}
	case c.Role.ProjectScoped():
		sched, err := s.schedules.GetByID(ctx, task.ScheduleID)
		if err != nil {
			if ent.IsNotFound(err) {
				return status.Error(codes.NotFound, "task not found")
			}
			return status.Errorf(codes.Internal, "failed to get schedule: %v", err)
		}
		projectIDs, err := projectIDsForCaller(ctx, s.client, c)
		if err != nil {
			return err
		}
		if !containsProject(projectIDs, sched.ProjectID) {
			return status.Error(codes.NotFound, "task not found")
		}
	}
	return nil
}

// resolveAssignee checks the assignee exists, is active and holds the
// contractor role. Only contractors carry assigned work.
func (s *TaskService) resolveAssignee(ctx context.Context, raw string) (uuid.UUID, error) {
	assigneeID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "assignee_id: must be a valid UUID")
	}

	u, err := s.client.User.
		Query().
		Where(user.ID(assigneeID), user.IsActive(true)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return uuid.Nil, status.Error(codes.NotFound, "assignee not found")
		}
		return uuid.Nil, status.Errorf(codes.Internal, "failed to resolve assignee: %v", err)
	}
	if u.Role != user.RoleContractor {
		return uuid.Nil, status.Error(codes.InvalidArgument, "assignee_id: assignee must be a contractor")
	}

	return assigneeID, nil
}

// requestedTaskFields lists the fields a partial update actually
// touches, for the per-role write check.
func requestedTaskFields(req *taskv1.UpdateTaskRequest) []string {
	var fields []string
	if req.Title != "" {
		fields = append(fields, access.TaskFieldTitle)
	}
	if req.Description != "" {
		fields = append(fields, access.TaskFieldDescription)
	}
	if req.Status != taskv1.TaskStatus_TASK_STATUS_UNSPECIFIED {
		fields = append(fields, access.TaskFieldStatus)
	}
	if req.Priority != taskv1.Priority_PRIORITY_UNSPECIFIED {
		fields = append(fields, access.TaskFieldPriority)
	}
	if req.PeriodStart != "" {
		fields = append(fields, access.TaskFieldPeriodStart)
	}
	if req.PeriodEnd != "" {
		fields = append(fields, access.TaskFieldPeriodEnd)
	}
	if req.EstimatedHours != nil {
		fields = append(fields, access.TaskFieldEstimatedHours)
	}
	if req.HoursSpent != nil {
		fields = append(fields, access.TaskFieldHoursSpent)
	}
	if req.Progress != nil {
		fields = append(fields, access.TaskFieldProgress)
	}
	if req.AssigneeId != "" || req.ClearAssignee {
		fields = append(fields, access.TaskFieldAssignee)
	}
	return fields
}

// mergeTaskUpdate builds the repository update input and the merged
// task state that validation runs against.
func (s *TaskService) mergeTaskUpdate(ctx context.Context, task *ent.Task, req *taskv1.UpdateTaskRequest) (*repository.TaskUpdateInput, validation.TaskFields, error) {
	in := &repository.TaskUpdateInput{}
	fields := validation.TaskFields{
		Title:          task.Title,
		Status:         string(task.Status),
		Priority:       string(task.Priority),
		PeriodStart:    task.PeriodStart,
		PeriodEnd:      task.PeriodEnd,
		EstimatedHours: task.EstimatedHours,
		HoursSpent:     task.HoursSpent,
		Progress:       task.Progress,
	}

	if req.Title != "" {
		in.Title = &req.Title
		fields.Title = req.Title
	}
	if req.Description != "" {
		in.Description = &req.Description
	}
	if req.Status != taskv1.TaskStatus_TASK_STATUS_UNSPECIFIED {
		st := convertProtoStatusToString(req.Status)
		in.Status = &st
		fields.Status = st
	}
	if req.Priority != taskv1.Priority_PRIORITY_UNSPECIFIED {
		pr := convertProtoPriorityToString(req.Priority)
		in.Priority = &pr
		fields.Priority = pr
	}
	if req.PeriodStart != "" {
		start, err := validation.ParseDate("period_start", req.PeriodStart)
		if err != nil {
			return nil, fields, status.Error(codes.InvalidArgument, err.Error())
		}
		in.PeriodStart = &start
		fields.PeriodStart = start
	}
	if req.PeriodEnd != "" {
		end, err := validation.ParseDate("period_end", req.PeriodEnd)
		if err != nil {
			return nil, fields, status.Error(codes.InvalidArgument, err.Error())
		}
		in.PeriodEnd = &end
		fields.PeriodEnd = end
	}
	if req.EstimatedHours != nil {
		in.EstimatedHours = req.EstimatedHours
		fields.EstimatedHours = req.EstimatedHours
	}
	if req.HoursSpent != nil {
		in.HoursSpent = req.HoursSpent
		fields.HoursSpent = req.HoursSpent
	}
	if req.Progress != nil {
		progress := int(*req.Progress)
		in.Progress = &progress
		fields.Progress = progress
	}
	if req.ClearAssignee {
		in.ClearAssignee = true
	} else if req.AssigneeId != "" {
		assigneeID, err := s.resolveAssignee(ctx, req.AssigneeId)
		if err != nil {
			return nil, fields, err
		}
		in.AssigneeID = &assigneeID
	}

	return in, fields, nil
}

func statusOrDefault(st taskv1.TaskStatus) string {
	if st == taskv1.TaskStatus_TASK_STATUS_UNSPECIFIED {
		return models.TaskStatusToDo
	}
	return convertProtoStatusToString(st)
}

func priorityOrDefault(pr taskv1.Priority) string {
	if pr == taskv1.Priority_PRIORITY_UNSPECIFIED {
		return models.PriorityMedium
	}
	return convertProtoPriorityToString(pr)
}

// convertEntTaskToProto converts an ent task to its proto form.
func convertEntTaskToProto(task *ent.Task) *taskv1.Task {
	pb := &taskv1.Task{
		Id:             task.ID.String(),
		ScheduleId:     task.ScheduleID.String(),
		Title:          task.Title,
		Description:    task.Description,
		Status:         convertStringToProtoStatus(string(task.Status)),
		Priority:       convertStringToProtoPriority(string(task.Priority)),
		PeriodStart:    validation.FormatDate(task.PeriodStart),
		PeriodEnd:      validation.FormatDate(task.PeriodEnd),
		EstimatedHours: task.EstimatedHours,
		HoursSpent:     task.HoursSpent,
		Progress:       int32(task.Progress),
		CreatedAt:      timestamppb.New(task.CreatedAt),
		UpdatedAt:      timestamppb.New(task.UpdatedAt),
	}
	if task.AssigneeID != uuid.Nil {
		pb.AssigneeId = task.AssigneeID.String()
	}
	return pb
}

func convertPreviewRowToProto(row *models.TaskPreviewRow) *taskv1.TaskPreview {
	return &taskv1.TaskPreview{
		Id:             row.ID,
		Title:          row.Title,
		DueDate:        validation.FormatDate(row.PeriodEnd),
		EstimatedHours: row.EstimatedHours,
		Status:         convertStringToProtoStatus(row.Status),
	}
}

func convertStringToProtoStatus(st string) taskv1.TaskStatus {
	switch st {
	case models.TaskStatusToDo:
		return taskv1.TaskStatus_TASK_STATUS_TO_DO
	case models.TaskStatusInProgress:
		return taskv1.TaskStatus_TASK_STATUS_IN_PROGRESS
	case models.TaskStatusCompleted:
		return taskv1.TaskStatus_TASK_STATUS_COMPLETED
	case models.TaskStatusOnHold:
		return taskv1.TaskStatus_TASK_STATUS_ON_HOLD
	default:
		return taskv1.TaskStatus_TASK_STATUS_UNSPECIFIED
	}
}

func convertProtoStatusToString(st taskv1.TaskStatus) string {
	switch st {
	case taskv1.TaskStatus_TASK_STATUS_TO_DO:
		return models.TaskStatusToDo
	case taskv1.TaskStatus_TASK_STATUS_IN_PROGRESS:
		return models.TaskStatusInProgress
	case taskv1.TaskStatus_TASK_STATUS_COMPLETED:
		return models.TaskStatusCompleted
	case taskv1.TaskStatus_TASK_STATUS_ON_HOLD:
		return models.TaskStatusOnHold
	default:
		return ""
	}
}

func convertStringToProtoPriority(pr string) taskv1.Priority {
	switch pr {
	case models.PriorityLow:
		return taskv1.Priority_PRIORITY_LOW
	case models.PriorityMedium:
		return taskv1.Priority_PRIORITY_MEDIUM
	case models.PriorityHigh:
		return taskv1.Priority_PRIORITY_HIGH
	case models.PriorityVeryHigh:
		return taskv1.Priority_PRIORITY_VERY_HIGH
	default:
		return taskv1.Priority_PRIORITY_UNSPECIFIED
	}
}

func convertProtoPriorityToString(pr taskv1.Priority) string {
	switch pr {
	case taskv1.Priority_PRIORITY_LOW:
		return models.PriorityLow
	case taskv1.Priority_PRIORITY_MEDIUM:
		return models.PriorityMedium
	case taskv1.Priority_PRIORITY_HIGH:
		return models.PriorityHigh
	case taskv1.Priority_PRIORITY_VERY_HIGH:
		return models.PriorityVeryHigh
	default:
		return ""
	}
}
