// internal/service/event_logger.go
package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	ent "github.com/buildcrew/sitemaster/ent/generated"
	"github.com/buildcrew/sitemaster/pkg/notify"
)

// EventLogger fans lifecycle events out as notifications. Failures are
// logged and swallowed so a broken notification write never fails the
// operation that triggered it.
type EventLogger struct {
	notifications *NotificationService
}

// NewEventLogger creates a new event logger
func NewEventLogger(notifications *NotificationService) *EventLogger {
	return &EventLogger{
		notifications: notifications,
	}
}

// LogScheduleCreated notifies the project's members about a new schedule.
func (l *EventLogger) LogScheduleCreated(ctx context.Context, sched *ent.Schedule) {
	l.fanOutToProject(ctx, sched.ProjectID, &CreateNotificationRequest{
		Category: notify.CategoryScheduleCreated,
		Title:    "New schedule",
		Message:  fmt.Sprintf("Schedule %q was created", sched.Description),
		Link:     fmt.Sprintf("/schedules/%s", sched.ID),
		Metadata: map[string]interface{}{
			"schedule_id": sched.ID.String(),
			"project_id":  sched.ProjectID,
		},
	})
}

// LogScheduleUpdated notifies the project's members about schedule changes.
func (l *EventLogger) LogScheduleUpdated(ctx context.Context, sched *ent.Schedule) {
	l.fanOutToProject(ctx, sched.ProjectID, &CreateNotificationRequest{
		Category: notify.CategoryScheduleUpdated,
		Title:    "Schedule updated",
		Message:  fmt.Sprintf("Schedule %q was updated", sched.Description),
		Link:     fmt.Sprintf("/schedules/%s", sched.ID),
		Metadata: map[string]interface{}{
			"schedule_id": sched.ID.String(),
			"project_id":  sched.ProjectID,
		},
	})
}

// LogScheduleDeleted notifies the project's members that a schedule and
// its tasks are gone. Called after the cascade commits, so it carries
// values captured before the delete.
func (l *EventLogger) LogScheduleDeleted(ctx context.Context, scheduleID uuid.UUID, projectID, description string, taskCount int) {
	l.fanOutToProject(ctx, projectID, &CreateNotificationRequest{
		Category: notify.CategoryScheduleDeleted,
		Title:    "Schedule deleted",
		Message:  fmt.Sprintf("Schedule %q and its %d tasks were deleted", description, taskCount),
		Metadata: map[string]interface{}{
			"schedule_id": scheduleID.String(),
			"project_id":  projectID,
			"task_count":  taskCount,
		},
	})
}

// LogTaskCreated notifies the assignee, if any, about a new task.
func (l *EventLogger) LogTaskCreated(ctx context.Context, task *ent.Task) {
	l.notifyAssignee(ctx, task, &CreateNotificationRequest{
		Category: notify.CategoryTaskCreated,
		Title:    "Task assigned",
		Message:  fmt.Sprintf("You were assigned %q", task.Title),
		Link:     fmt.Sprintf("/tasks/%s", task.ID),
		Metadata: taskMetadata(task),
	})
}

// LogTaskUpdated notifies the assignee about task changes.
func (l *EventLogger) LogTaskUpdated(ctx context.Context, task *ent.Task) {
	l.notifyAssignee(ctx, task, &CreateNotificationRequest{
		Category: notify.CategoryTaskUpdated,
		Title:    "Task updated",
		Message:  fmt.Sprintf("Task %q was updated", task.Title),
		Link:     fmt.Sprintf("/tasks/%s", task.ID),
		Metadata: taskMetadata(task),
	})
}

// LogTaskStatusChanged notifies the assignee about a status move.
func (l *EventLogger) LogTaskStatusChanged(ctx context.Context, task *ent.Task, from, to string) {
	meta := taskMetadata(task)
	meta["from_status"] = from
	meta["to_status"] = to
	l.notifyAssignee(ctx, task, &CreateNotificationRequest{
		Category: notify.CategoryTaskStatusChanged,
		Title:    "Task status changed",
		Message:  fmt.Sprintf("Task %q moved from %s to %s", task.Title, from, to),
		Link:     fmt.Sprintf("/tasks/%s", task.ID),
		Metadata: meta,
	})
}

// LogTaskDeleted notifies the former assignee that the task is gone.
func (l *EventLogger) LogTaskDeleted(ctx context.Context, task *ent.Task) {
	l.notifyAssignee(ctx, task, &CreateNotificationRequest{
		Category: notify.CategoryTaskDeleted,
		Title:    "Task deleted",
		Message:  fmt.Sprintf("Task %q was deleted", task.Title),
		Metadata: taskMetadata(task),
	})
}

func (l *EventLogger) fanOutToProject(ctx context.Context, projectID string, req *CreateNotificationRequest) {
	if l == nil || l.notifications == nil {
		return
	}

	recipients, err := l.notifications.RecipientsForProject(ctx, projectID)
	if err != nil {
		log.Printf("Failed to resolve notification recipients: %v", err)
		return
	}

	for _, recipient := range recipients {
		r := *req
		r.UserID = recipient.ID
		if err := l.notifications.CreateNotification(ctx, &r); err != nil {
			log.Printf("Failed to record notification: %v", err)
		}
	}
}

func (l *EventLogger) notifyAssignee(ctx context.Context, task *ent.Task, req *CreateNotificationRequest) {
	if l == nil || l.notifications == nil {
		return
	}
	if task.AssigneeID == uuid.Nil {
		return
	}

	req.UserID = task.AssigneeID
	if err := l.notifications.CreateNotification(ctx, req); err != nil {
		log.Printf("Failed to record notification: %v", err)
	}
}

func taskMetadata(task *ent.Task) map[string]interface{} {
	return map[string]interface{}{
		"task_id":     task.ID.String(),
		"schedule_id": task.ScheduleID.String(),
	}
}
