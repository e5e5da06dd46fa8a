// internal/repository/ent_task_repository.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	ent "github.com/buildcrew/sitemaster/ent/generated"
	"github.com/buildcrew/sitemaster/ent/generated/predicate"
	"github.com/buildcrew/sitemaster/ent/generated/schedule"
	"github.com/buildcrew/sitemaster/ent/generated/task"
)

type EntTaskRepository struct {
	client *ent.Client
}

func NewEntTaskRepository(client *ent.Client) *EntTaskRepository {
	return &EntTaskRepository{
		client: client,
	}
}

func (r *EntTaskRepository) Create(ctx context.Context, in *TaskInput) (*ent.Task, error) {
	create := r.client.Task.
		Create().
		SetScheduleID(in.ScheduleID).
		SetTitle(in.Title).
		SetDescription(in.Description).
		SetStatus(task.Status(in.Status)).
		SetPriority(task.Priority(in.Priority)).
		SetPeriodStart(in.PeriodStart).
		SetPeriodEnd(in.PeriodEnd).
		SetNillableEstimatedHours(in.EstimatedHours).
		SetNillableHoursSpent(in.HoursSpent).
		SetProgress(in.Progress)

	if in.AssigneeID != uuid.Nil {
		create = create.SetAssigneeID(in.AssigneeID)
	}

	return create.Save(ctx)
}

// CreateBatch persists the task-population step of a new schedule in
// one bulk insert.
func (r *EntTaskRepository) CreateBatch(ctx context.Context, inputs []*TaskInput) ([]*ent.Task, error) {
	builders := make([]*ent.TaskCreate, len(inputs))

	for i, in := range inputs {
		builder := r.client.Task.
			Create().
			SetScheduleID(in.ScheduleID).
			SetTitle(in.Title).
			SetDescription(in.Description).
			SetStatus(task.Status(in.Status)).
			SetPriority(task.Priority(in.Priority)).
			SetPeriodStart(in.PeriodStart).
			SetPeriodEnd(in.PeriodEnd).
			SetNillableEstimatedHours(in.EstimatedHours).
			SetProgress(in.Progress)

		if in.AssigneeID != uuid.Nil {
			builder = builder.SetAssigneeID(in.AssigneeID)
		}

		builders[i] = builder
	}

	return r.client.Task.CreateBulk(builders...).Save(ctx)
}

func (r *EntTaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Task, error) {
	return r.client.Task.
		Query().
		Where(task.ID(id)).
		Only(ctx)
}

func (r *EntTaskRepository) List(ctx context.Context, filter TaskFilter) ([]*ent.Task, int, error) {
	query := r.client.Task.Query()

	var predicates []predicate.Task

	if filter.ScheduleID != nil {
		predicates = append(predicates, task.ScheduleID(*filter.ScheduleID))
	}

	if filter.ProjectID != "" {
		predicates = append(predicates, task.HasScheduleWith(schedule.ProjectID(filter.ProjectID)))
	}

	// Role scoping: customers and salespeople only see their projects.
	if filter.ProjectIDs != nil {
		predicates = append(predicates, task.HasScheduleWith(schedule.ProjectIDIn(filter.ProjectIDs...)))
	}

	if filter.AssigneeID != nil {
		predicates = append(predicates, task.AssigneeID(*filter.AssigneeID))
	}

	if filter.Status != nil {
		predicates = append(predicates, task.StatusEQ(task.Status(*filter.Status)))
	}

	if filter.Priority != nil {
		predicates = append(predicates, task.PriorityEQ(task.Priority(*filter.Priority)))
	}

	if filter.Window != nil {
		predicates = append(predicates,
			task.PeriodStartLTE(filter.Window.End),
			task.PeriodEndGTE(filter.Window.Start),
		)
	}

	if len(predicates) > 0 {
		query = query.Where(predicates...)
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	tasks, err := query.
		Order(ent.Asc(task.FieldPeriodStart), ent.Asc(task.FieldID)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("query tasks: %w", err)
	}

	return tasks, totalCount, nil
}

func (r *EntTaskRepository) ListForSchedule(ctx context.Context, scheduleID uuid.UUID) ([]*ent.Task, error) {
	tasks, err := r.client.Task.
		Query().
		Where(task.ScheduleID(scheduleID)).
		Order(ent.Asc(task.FieldPeriodStart), ent.Asc(task.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query schedule tasks: %w", err)
	}
	return tasks, nil
}

func (r *EntTaskRepository) Update(ctx context.Context, id uuid.UUID, in *TaskUpdateInput) (*ent.Task, error) {
	update := r.client.Task.UpdateOneID(id)

	if in.Title != nil {
		update = update.SetTitle(*in.Title)
	}
	if in.Description != nil {
		update = update.SetDescription(*in.Description)
	}
	if in.Status != nil {
		update = update.SetStatus(task.Status(*in.Status))
	}
	if in.Priority != nil {
		update = update.SetPriority(task.Priority(*in.Priority))
	}
	if in.PeriodStart != nil {
		update = update.SetPeriodStart(*in.PeriodStart)
	}
	if in.PeriodEnd != nil {
		update = update.SetPeriodEnd(*in.PeriodEnd)
	}
	if in.EstimatedHours != nil {
		update = update.SetEstimatedHours(*in.EstimatedHours)
	}
	if in.HoursSpent != nil {
		update = update.SetHoursSpent(*in.HoursSpent)
	}
	if in.Progress != nil {
		update = update.SetProgress(*in.Progress)
	}
	if in.ClearAssignee {
		update = update.ClearAssigneeID()
	} else if in.AssigneeID != nil {
		update = update.SetAssigneeID(*in.AssigneeID)
	}

	return update.Save(ctx)
}

func (r *EntTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.client.Task.
		DeleteOneID(id).
		Exec(ctx)
}

// Types for repository input
type TaskInput struct {
	ScheduleID     uuid.UUID
	Title          string
	Description    string
	Status         string
	Priority       string
	PeriodStart    time.Time
	PeriodEnd      time.Time
	EstimatedHours *float64
	HoursSpent     *float64
	Progress       int
	AssigneeID     uuid.UUID // uuid.Nil means unassigned
}

type TaskUpdateInput struct {
	Title          *string
	Description    *string
	Status         *string
	Priority       *string
	PeriodStart    *time.Time
	PeriodEnd      *time.Time
	EstimatedHours *float64
	HoursSpent     *float64
	Progress       *int
	AssigneeID     *uuid.UUID
	ClearAssignee  bool
}

type TaskFilter struct {
	ScheduleID *uuid.UUID
	ProjectID  string
	ProjectIDs []string // Restrict to these projects (role scoping)
	AssigneeID *uuid.UUID
	Status     *string
	Priority   *string
	Window     *DateWindow
}
