// internal/service/schedule_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	schedulev1 "github.com/buildcrew/sitemaster/api/proto/schedule/v1/generated"
	ent "github.com/buildcrew/sitemaster/ent/generated"
	"github.com/buildcrew/sitemaster/internal/repository"
	"github.com/buildcrew/sitemaster/internal/validation"
	"github.com/buildcrew/sitemaster/internal/workflow"
	"github.com/buildcrew/sitemaster/pkg/access"
)

// ScheduleService implements the schedule gRPC service
type ScheduleService struct {
	schedulev1.UnimplementedScheduleServiceServer
	client  *ent.Client
	repo    *repository.EntScheduleRepository
	tasks   *repository.EntTaskRepository
	reports *repository.SummaryRepository
	deletes *workflow.DeleteCoordinator
	events  *EventLogger
	nowFn   func() time.Time
}

// NewScheduleService creates a new schedule service
func NewScheduleService(client *ent.Client, reports *repository.SummaryRepository, deletes *workflow.DeleteCoordinator, events *EventLogger) *ScheduleService {
	return &ScheduleService{
		client:  client,
		repo:    repository.NewEntScheduleRepository(client),
		tasks:   repository.NewEntTaskRepository(client),
		reports: reports,
		deletes: deletes,
		events:  events,
		nowFn:   time.Now,
	}
}

// CreateSchedule creates a new schedule for a project lot.
func (s *ScheduleService) CreateSchedule(ctx context.Context, req *schedulev1.CreateScheduleRequest) (*schedulev1.CreateScheduleResponse, error) {
	c, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !c.Role.Can(access.OpScheduleCreate) {
		return nil, status.Error(codes.PermissionDenied, "role may not create schedules")
	}

	lotID, err := uuid.Parse(req.LotId)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "lot_id: must be a valid UUID")
	}

	startDate, err := validation.ParseDate("start_date", req.StartDate)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	endDate, err := validation.ParseDate("end_date", req.EndDate)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	fields := validation.ScheduleFields{
		Description: req.Description,
		LotID:       lotID,
		ProjectID:   req.ProjectId,
		StartDate:   startDate,
		EndDate:     endDate,
	}
	if err := validation.ValidateSchedule(fields); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	sched, err := s.repo.Create(ctx, &repository.ScheduleInput{
		Description: req.Description,
		LotID:       lotID,
		ProjectID:   req.ProjectId,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to create schedule: %v", err)
	}

	s.events.LogScheduleCreated(ctx, sched)

	return &schedulev1.CreateScheduleResponse{
		Schedule: convertEntScheduleToProto(sched),
	}, nil
}

// GetSchedule returns one schedule, subject to the caller's visibility.
func (s *ScheduleService) GetSchedule(ctx context.Context, req *schedulev1.GetScheduleRequest) (*schedulev1.GetScheduleResponse, error) {
	c, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id: must be a valid UUID")
	}

	sched, err := s.repo.GetByIDWithTasks(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "schedule not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to get schedule: %v", err)
	}

	if err := s.authorizeScheduleRead(ctx, c, sched); err != nil {
		return nil, err
	}

	return &schedulev1.GetScheduleResponse{
		Schedule: convertEntScheduleToProto(sched),
	}, nil
}

// ListSchedules returns the schedules visible to the caller, ordered by
// start date.
func (s *ScheduleService) ListSchedules(ctx context.Context, req *schedulev1.ListSchedulesRequest) (*schedulev1.ListSchedulesResponse, error) {
	c, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	filter := repository.ScheduleFilter{
		ProjectID: req.ProjectId,
		WithTasks: true,
	}

	switch {
	case c.Role.OwnTasksOnly():
		assigneeID := c.ID
		filter.AssigneeID = &assigneeID
	case c.Role.ProjectScoped():
		projectIDs, err := projectIDsForCaller(ctx, s.client, c)
		if err != nil {
			return nil, err
		}
		filter.ProjectIDs = projectIDs
	}

	if req.CurrentWeekOnly {
		window := weekWindow(s.nowFn())
		filter.Window = &window
	}

	schedules, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list schedules: %v", err)
	}

	protoSchedules := make([]*schedulev1.Schedule, len(schedules))
	for i, sched := range schedules {
		protoSchedules[i] = convertEntScheduleToProto(sched)
	}

	return &schedulev1.ListSchedulesResponse{
		Schedules: protoSchedules,
	}, nil
}

// UpdateSchedule applies a schedule edit together with its nested task
// edits and removals. The merged state is validated as a whole before
// anything is written: a shrunken window is only accepted when every
// surviving task still nests inside it.
func (s *ScheduleService) UpdateSchedule(ctx context.Context, req *schedulev1.UpdateScheduleRequest) (*schedulev1.UpdateScheduleResponse, error) {
	c, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !c.Role.Can(access.OpScheduleUpdate) {
		return nil, status.Error(codes.PermissionDenied, "role may not update schedules")
	}

	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id: must be a valid UUID")
	}

	sched, err := s.repo.GetByIDWithTasks(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "schedule not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to get schedule: %v", err)
	}

	in, merged, err := mergeScheduleUpdate(sched, req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := validation.ValidateSchedule(merged); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	edits, removeIDs, err := parseTaskEdits(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := validateMergedTasks(sched.Edges.Tasks, merged, edits, removeIDs); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	updated, err := s.repo.UpdateWithTasks(ctx, id, in, edits, removeIDs)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "schedule or task no longer exists")
		}
		return nil, status.Errorf(codes.Internal, "failed to update schedule: %v", err)
	}

	s.events.LogScheduleUpdated(ctx, updated)

	return &schedulev1.UpdateScheduleResponse{
		Schedule: convertEntScheduleToProto(updated),
	}, nil
}

// RequestDeleteSchedule opens a delete confirmation. Nothing is deleted
// until the returned token is confirmed.
func (s *ScheduleService) RequestDeleteSchedule(ctx context.Context, req *schedulev1.RequestDeleteScheduleRequest) (*schedulev1.RequestDeleteScheduleResponse, error) {
	c, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !c.Role.Can(access.OpScheduleDelete) {
		return nil, status.Error(codes.PermissionDenied, "role may not delete schedules")
	}

	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id: must be a valid UUID")
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "schedule not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to get schedule: %v", err)
	}

	taskCount, err := s.repo.TaskCount(ctx, id)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to count tasks: %v", err)
	}

	pending := s.deletes.Request(id, taskCount)

	return &schedulev1.RequestDeleteScheduleResponse{
		ConfirmationToken: pending.Token,
		TaskCount:         int32(pending.TaskCount),
		Warning:           pending.Warning,
	}, nil
}

// ConfirmDeleteSchedule resolves a pending confirmation and runs the
// cascade: the schedule and every task it owns are removed atomically.
func (s *ScheduleService) ConfirmDeleteSchedule(ctx context.Context, req *schedulev1.ConfirmDeleteScheduleRequest) (*emptypb.Empty, error) {
	c, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !c.Role.Can(access.OpScheduleDelete) {
		return nil, status.Error(codes.PermissionDenied, "role may not delete schedules")
	}

	scheduleID, err := s.deletes.Resolve(req.ConfirmationToken)
	if err != nil {
		return nil, convertTokenError(err)
	}

	// Captured before the cascade so the notification can still name
	// what was removed.
	sched, err := s.repo.GetByIDWithTasks(ctx, scheduleID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "schedule no longer exists")
		}
		return nil, status.Errorf(codes.Internal, "failed to get schedule: %v", err)
	}

	if err := s.repo.DeleteCascade(ctx, scheduleID); err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "schedule no longer exists")
		}
		return nil, status.Errorf(codes.Internal, "failed to delete schedule: %v", err)
	}

	s.events.LogScheduleDeleted(ctx, scheduleID, sched.ProjectID, sched.Description, len(sched.Edges.Tasks))

	return &emptypb.Empty{}, nil
}

// CancelDeleteSchedule discards a pending confirmation without touching
// any data.
func (s *ScheduleService) CancelDeleteSchedule(ctx context.Context, req *schedulev1.CancelDeleteScheduleRequest) (*emptypb.Empty, error) {
	c, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !c.Role.Can(access.OpScheduleDelete) {
		return nil, status.Error(codes.PermissionDenied, "role may not delete schedules")
	}

	if err := s.deletes.Cancel(req.ConfirmationToken); err != nil {
		return nil, convertTokenError(err)
	}

	return &emptypb.Empty{}, nil
}

// GetScheduleReport returns schedule identifiers grouped per project,
// the raw material for report exports. Owners may export any project;
// project-scoped roles only their own. Contractors have no project
// scope and are refused.
func (s *ScheduleService) GetScheduleReport(ctx context.Context, req *schedulev1.GetScheduleReportRequest) (*schedulev1.GetScheduleReportResponse, error) {
	c, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if c.Role.OwnTasksOnly() {
		return nil, status.Error(codes.PermissionDenied, "role may not export schedule reports")
	}

	projectIDs := req.ProjectIds
	if c.Role.ProjectScoped() {
		scope, err := projectIDsForCaller(ctx, s.client, c)
		if err != nil {
			return nil, err
		}
		if len(projectIDs) == 0 {
			projectIDs = scope
		} else {
			filtered := make([]string, 0, len(projectIDs))
			for _, id := range projectIDs {
				if containsProject(scope, id) {
					filtered = append(filtered, id)
				}
			}
			projectIDs = filtered
		}
		// A scoped caller with no projects sees an empty report, not
		// every project.
		if len(projectIDs) == 0 {
			return &schedulev1.GetScheduleReportResponse{}, nil
		}
	}

	rows, err := s.reports.ScheduleIDsByProject(ctx, projectIDs)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to build schedule report: %v", err)
	}

	groups := make([]*schedulev1.ProjectScheduleGroup, len(rows))
	for i, row := range rows {
		groups[i] = &schedulev1.ProjectScheduleGroup{
			ProjectId:   row.ProjectID,
			ScheduleIds: row.ScheduleIDs,
		}
	}

	return &schedulev1.GetScheduleReportResponse{
		Projects: groups,
	}, nil
}

// authorizeScheduleRead applies the role visibility rules to a single
// fetched schedule. Denials read as NotFound for scoped roles so the
// schedule's existence is not leaked.
func (s *ScheduleService) authorizeScheduleRead(ctx context.Context, c caller, sched *ent.Schedule) error {
	switch {
	case c.Role.OwnTasksOnly():
		for _, t := range sched.Edges.Tasks {
			if t.AssigneeID == c.ID {
				return nil
			}
		}
		return status.Error(codes.NotFound, "schedule not found")
	case c.Role.ProjectScoped():
		projectIDs, err := projectIDsForCaller(ctx, s.client, c)
		if err != nil {
			return err
		}
		if !containsProject(projectIDs, sched.ProjectID) {
			return status.Error(codes.NotFound, "schedule not found")
		}
	}
	return nil
}

// mergeScheduleUpdate builds the repository update input and the merged
// schedule state that validation runs against. Empty request fields keep
// the stored value.
func mergeScheduleUpdate(sched *ent.Schedule, req *schedulev1.UpdateScheduleRequest) (*repository.ScheduleUpdateInput, validation.ScheduleFields, error) {
	in := &repository.ScheduleUpdateInput{}
	merged := validation.ScheduleFields{
		Description: sched.Description,
		LotID:       sched.LotID,
		ProjectID:   sched.ProjectID,
		StartDate:   sched.StartDate,
		EndDate:     sched.EndDate,
	}

	if req.Description != "" {
		in.Description = &req.Description
		merged.Description = req.Description
	}
	if req.LotId != "" {
		lotID, err := uuid.Parse(req.LotId)
		if err != nil {
			return nil, merged, validation.FieldError{Field: "lot_id", Reason: "must be a valid UUID"}
		}
		in.LotID = &lotID
		merged.LotID = lotID
	}
	if req.StartDate != "" {
		startDate, err := validation.ParseDate("start_date", req.StartDate)
		if err != nil {
			return nil, merged, err
		}
		in.StartDate = &startDate
		merged.StartDate = startDate
	}
	if req.EndDate != "" {
		endDate, err := validation.ParseDate("end_date", req.EndDate)
		if err != nil {
			return nil, merged, err
		}
		in.EndDate = &endDate
		merged.EndDate = endDate
	}

	return in, merged, nil
}

// parseTaskEdits converts the request's nested edits and removals.
func parseTaskEdits(req *schedulev1.UpdateScheduleRequest) ([]repository.ScheduleTaskEdit, []uuid.UUID, error) {
	edits := make([]repository.ScheduleTaskEdit, 0, len(req.TaskEdits))
	for _, e := range req.TaskEdits {
		taskID, err := uuid.Parse(e.TaskId)
		if err != nil {
			return nil, nil, validation.FieldError{Field: "task_edits", Reason: "task_id must be a valid UUID"}
		}
		edit := repository.ScheduleTaskEdit{TaskID: taskID}
		if e.PeriodStart != "" {
			start, err := validation.ParseDate("task_edits.period_start", e.PeriodStart)
			if err != nil {
				return nil, nil, err
			}
			edit.PeriodStart = &start
		}
		if e.PeriodEnd != "" {
			end, err := validation.ParseDate("task_edits.period_end", e.PeriodEnd)
			if err != nil {
				return nil, nil, err
			}
			edit.PeriodEnd = &end
		}
		edits = append(edits, edit)
	}

	removeIDs := make([]uuid.UUID, 0, len(req.RemoveTaskIds))
	for _, raw := range req.RemoveTaskIds {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, nil, validation.FieldError{Field: "remove_task_ids", Reason: "must be valid UUIDs"}
		}
		removeIDs = append(removeIDs, id)
	}

	return edits, removeIDs, nil
}

// validateMergedTasks re-checks every task that would survive the update
// against the prospective schedule window, with its own edit applied.
func validateMergedTasks(tasks []*ent.Task, merged validation.ScheduleFields, edits []repository.ScheduleTaskEdit, removeIDs []uuid.UUID) error {
	editByTask := make(map[uuid.UUID]repository.ScheduleTaskEdit, len(edits))
	for _, e := range edits {
		editByTask[e.TaskID] = e
	}
	removed := make(map[uuid.UUID]bool, len(removeIDs))
	for _, id := range removeIDs {
		removed[id] = true
	}

	known := make(map[uuid.UUID]bool, len(tasks))
	for _, t := range tasks {
		known[t.ID] = true
	}
	for _, e := range edits {
		if !known[e.TaskID] {
			return validation.FieldError{Field: "task_edits", Reason: "task " + e.TaskID.String() + " does not belong to this schedule"}
		}
	}
	for _, id := range removeIDs {
		if !known[id] {
			return validation.FieldError{Field: "remove_task_ids", Reason: "task " + id.String() + " does not belong to this schedule"}
		}
	}

	for _, t := range tasks {
		if removed[t.ID] {
			continue
		}

		fields := validation.TaskFields{
			Title:          t.Title,
			Status:         string(t.Status),
			Priority:       string(t.Priority),
			PeriodStart:    t.PeriodStart,
			PeriodEnd:      t.PeriodEnd,
			EstimatedHours: t.EstimatedHours,
			HoursSpent:     t.HoursSpent,
			Progress:       t.Progress,
		}
		if e, ok := editByTask[t.ID]; ok {
			if e.PeriodStart != nil {
				fields.PeriodStart = *e.PeriodStart
			}
			if e.PeriodEnd != nil {
				fields.PeriodEnd = *e.PeriodEnd
			}
		}

		if err := validation.ValidateTask(fields, merged.StartDate, merged.EndDate); err != nil {
			return validation.FieldError{
				Field:  "task " + t.ID.String(),
				Reason: err.Error(),
			}
		}
	}

	return nil
}

// convertTokenError maps confirmation token failures to gRPC codes.
func convertTokenError(err error) error {
	switch {
	case errors.Is(err, workflow.ErrTokenExpired):
		return status.Error(codes.FailedPrecondition, "confirmation token has expired, request deletion again")
	case errors.Is(err, workflow.ErrUnknownToken):
		return status.Error(codes.NotFound, "unknown or already resolved confirmation token")
	default:
		return status.Errorf(codes.Internal, "failed to resolve confirmation token: %v", err)
	}
}

// convertEntScheduleToProto converts an ent schedule to its proto form.
// The task count reflects the tasks edge when loaded.
func convertEntScheduleToProto(sched *ent.Schedule) *schedulev1.Schedule {
	return &schedulev1.Schedule{
		Id:          sched.ID.String(),
		Description: sched.Description,
		LotId:       sched.LotID.String(),
		ProjectId:   sched.ProjectID,
		StartDate:   validation.FormatDate(sched.StartDate),
		EndDate:     validation.FormatDate(sched.EndDate),
		TaskCount:   int32(len(sched.Edges.Tasks)),
		CreatedAt:   timestamppb.New(sched.CreatedAt),
		UpdatedAt:   timestamppb.New(sched.UpdatedAt),
	}
}
