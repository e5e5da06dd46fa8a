// internal/repository/ent_schedule_repository.go
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

// DateWindow bounds a list query to records whose period intersects
// [Start, End].
type DateWindow struct {
	Start time.Time
	End   time.Time
}

type EntScheduleRepository struct {
	client *ent.Client
}

func NewEntScheduleRepository(client *ent.Client) *EntScheduleRepository {
	return &EntScheduleRepository{
		client: client,
	}
}

func (r *EntScheduleRepository) Create(ctx context.Context, in *ScheduleInput) (*ent.Schedule, error) {
	return r.client.Schedule.
		Create().
		SetDescription(in.Description).
		SetLotID(in.LotID).
		SetProjectID(in.ProjectID).
		SetStartDate(in.StartDate).
		SetEndDate(in.EndDate).
		Save(ctx)
}

func (r *EntScheduleRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Schedule, error) {
	return r.client.Schedule.
		Query().
		Where(schedule.ID(id)).
		Only(ctx)
}

func (r *EntScheduleRepository) GetByIDWithTasks(ctx context.Context, id uuid.UUID) (*ent.Schedule, error) {
	return r.client.Schedule.
		Query().
		Where(schedule.ID(id)).
		WithTasks().
		Only(ctx)
}

func (r *EntScheduleRepository) List(ctx context.Context, filter ScheduleFilter) ([]*ent.Schedule, error) {
	query := r.client.Schedule.Query()

	var predicates []predicate.Schedule

	if filter.ProjectID != "" {
		predicates = append(predicates, schedule.ProjectID(filter.ProjectID))
	}

	// Role scoping: customers and salespeople only see their projects.
	if filter.ProjectIDs != nil {
		predicates = append(predicates, schedule.ProjectIDIn(filter.ProjectIDs...))
	}

	// Contractor scoping: only schedules holding the caller's tasks.
	if filter.AssigneeID != nil {
		predicates = append(predicates, schedule.HasTasksWith(task.AssigneeID(*filter.AssigneeID)))
	}

	// A schedule intersects the window when it starts before the
	// window closes and ends after it opens.
	if filter.Window != nil {
		predicates = append(predicates,
			schedule.StartDateLTE(filter.Window.End),
			schedule.EndDateGTE(filter.Window.Start),
		)
	}

	if len(predicates) > 0 {
		query = query.Where(predicates...)
	}

	if filter.WithTasks {
		query = query.WithTasks()
	}

	// Start date ascending, identifier as deterministic tie-break.
	schedules, err := query.
		Order(ent.Asc(schedule.FieldStartDate), ent.Asc(schedule.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query schedules: %w", err)
	}

	return schedules, nil
}

func (r *EntScheduleRepository) Update(ctx context.Context, id uuid.UUID, in *ScheduleUpdateInput) (*ent.Schedule, error) {
	update := r.client.Schedule.UpdateOneID(id)

	if in.Description != nil {
		update = update.SetDescription(*in.Description)
	}
	if in.LotID != nil {
		update = update.SetLotID(*in.LotID)
	}
	if in.StartDate != nil {
		update = update.SetStartDate(*in.StartDate)
	}
	if in.EndDate != nil {
		update = update.SetEndDate(*in.EndDate)
	}

	return update.Save(ctx)
}

// ScheduleTaskEdit adjusts one owned task inside a schedule update.
type ScheduleTaskEdit struct {
	TaskID      uuid.UUID
	PeriodStart *time.Time
	PeriodEnd   *time.Time
}

// UpdateWithTasks applies a schedule edit together with its nested
// task edits and removals in one transaction. The caller validates the
// merged state first; any failure here rolls the whole mutation back.
func (r *EntScheduleRepository) UpdateWithTasks(ctx context.Context, id uuid.UUID, in *ScheduleUpdateInput, edits []ScheduleTaskEdit, removeIDs []uuid.UUID) (*ent.Schedule, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}

	update := tx.Schedule.UpdateOneID(id)
	if in.Description != nil {
		update = update.SetDescription(*in.Description)
	}
	if in.LotID != nil {
		update = update.SetLotID(*in.LotID)
	}
	if in.StartDate != nil {
		update = update.SetStartDate(*in.StartDate)
	}
	if in.EndDate != nil {
		update = update.SetEndDate(*in.EndDate)
	}
	if err := update.Exec(ctx); err != nil {
		return nil, rollback(tx, err)
	}

	for _, edit := range edits {
		taskUpdate := tx.Task.UpdateOneID(edit.TaskID).Where(task.ScheduleID(id))
		if edit.PeriodStart != nil {
			taskUpdate = taskUpdate.SetPeriodStart(*edit.PeriodStart)
		}
		if edit.PeriodEnd != nil {
			taskUpdate = taskUpdate.SetPeriodEnd(*edit.PeriodEnd)
		}
		if err := taskUpdate.Exec(ctx); err != nil {
			return nil, rollback(tx, fmt.Errorf("update task %s: %w", edit.TaskID, err))
		}
	}

	if len(removeIDs) > 0 {
		if _, err := tx.Task.Delete().
			Where(task.IDIn(removeIDs...), task.ScheduleID(id)).
			Exec(ctx); err != nil {
			return nil, rollback(tx, fmt.Errorf("remove tasks: %w", err))
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit schedule update: %w", err)
	}

	return r.GetByIDWithTasks(ctx, id)
}

// TaskCount reports how many tasks the schedule owns, used for the
// cascade warning in the delete confirmation.
func (r *EntScheduleRepository) TaskCount(ctx context.Context, id uuid.UUID) (int, error) {
	count, err := r.client.Task.
		Query().
		Where(task.ScheduleID(id)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return count, nil
}

// DeleteCascade removes the schedule and every task it owns in one
// transaction, so no reader ever observes an orphaned task.
func (r *EntScheduleRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	if _, err := tx.Task.Delete().Where(task.ScheduleID(id)).Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("delete tasks of schedule %s: %w", id, err))
	}

	if err := tx.Schedule.DeleteOneID(id).Exec(ctx); err != nil {
		return rollback(tx, err)
	}

	return tx.Commit()
}

// Helper function for transaction rollback
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: %v", err, rerr)
	}
	return err
}

// Types for repository input
type ScheduleInput struct {
	Description string
	LotID       uuid.UUID
	ProjectID   string
	StartDate   time.Time
	EndDate     time.Time
}

type ScheduleUpdateInput struct {
	Description *string
	LotID       *uuid.UUID
	StartDate   *time.Time
	EndDate     *time.Time
}

type ScheduleFilter struct {
	ProjectID  string
	ProjectIDs []string   // Restrict to these projects (role scoping)
	AssigneeID *uuid.UUID // Restrict to schedules holding this user's tasks
	Window     *DateWindow
	WithTasks  bool
}
