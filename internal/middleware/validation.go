// internal/middleware/validation.go
package middleware

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	schedulev1 "github.com/buildcrew/sitemaster/api/proto/schedule/v1/generated"
	taskv1 "github.com/buildcrew/sitemaster/api/proto/task/v1/generated"
)

// ValidationConfig holds request-shape validation limits.
type ValidationConfig struct {
	MaxDescriptionLength int
	MaxTitleLength       int
	MaxBatchSize         int
}

// DefaultValidationConfig returns default validation configuration
func DefaultValidationConfig() *ValidationConfig {
	return &ValidationConfig{
		MaxDescriptionLength: 5000,
		MaxTitleLength:       200,
		MaxBatchSize:         100,
	}
}

// ValidationInterceptor rejects malformed requests before they reach
// the services. Semantic rules (date ordering, nesting, transitions)
// live with the lifecycle engine; this layer only checks shape.
type ValidationInterceptor struct {
	config *ValidationConfig
}

// NewValidationInterceptor creates a new validation interceptor
func NewValidationInterceptor(config *ValidationConfig) *ValidationInterceptor {
	if config == nil {
		config = DefaultValidationConfig()
	}
	return &ValidationInterceptor{
		config: config,
	}
}

// Unary returns a unary server interceptor for request validation
func (v *ValidationInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if err := v.validateRequest(req); err != nil {
			return nil, err
		}

		return handler(ctx, req)
	}
}

// Stream returns a stream server interceptor for request validation
func (v *ValidationInterceptor) Stream() grpc.StreamServerInterceptor {
	return func(
		srv interface{},
		stream grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		// No streaming methods carry request payloads to validate.
		return handler(srv, stream)
	}
}

// validateRequest validates different request types
func (v *ValidationInterceptor) validateRequest(req interface{}) error {
	switch r := req.(type) {
	case *schedulev1.CreateScheduleRequest:
		return v.validateCreateScheduleRequest(r)
	case *schedulev1.UpdateScheduleRequest:
		return v.validateUpdateScheduleRequest(r)
	case *schedulev1.RequestDeleteScheduleRequest:
		return requireField("id", r.Id)
	case *schedulev1.ConfirmDeleteScheduleRequest:
		return requireField("confirmation_token", r.ConfirmationToken)
	case *schedulev1.CancelDeleteScheduleRequest:
		return requireField("confirmation_token", r.ConfirmationToken)
	case *taskv1.CreateTaskRequest:
		return v.validateCreateTaskRequest(r)
	case *taskv1.UpdateTaskRequest:
		return v.validateUpdateTaskRequest(r)
	case *taskv1.PopulateTasksRequest:
		return v.validatePopulateTasksRequest(r)
	default:
		return nil
	}
}

func (v *ValidationInterceptor) validateCreateScheduleRequest(req *schedulev1.CreateScheduleRequest) error {
	if len(req.Description) > v.config.MaxDescriptionLength {
		return status.Errorf(codes.InvalidArgument, "description exceeds %d characters", v.config.MaxDescriptionLength)
	}
	if err := validDateFormat("start_date", req.StartDate); err != nil {
		return err
	}
	return validDateFormat("end_date", req.EndDate)
}

func (v *ValidationInterceptor) validateUpdateScheduleRequest(req *schedulev1.UpdateScheduleRequest) error {
	if err := requireField("id", req.Id); err != nil {
		return err
	}
	if len(req.Description) > v.config.MaxDescriptionLength {
		return status.Errorf(codes.InvalidArgument, "description exceeds %d characters", v.config.MaxDescriptionLength)
	}
	if req.StartDate != "" {
		if err := validDateFormat("start_date", req.StartDate); err != nil {
			return err
		}
	}
	if req.EndDate != "" {
		if err := validDateFormat("end_date", req.EndDate); err != nil {
			return err
		}
	}
	for _, edit := range req.TaskEdits {
		if err := requireField("task_edits.task_id", edit.TaskId); err != nil {
			return err
		}
	}
	return nil
}

func (v *ValidationInterceptor) validateCreateTaskRequest(req *taskv1.CreateTaskRequest) error {
	if err := requireField("schedule_id", req.ScheduleId); err != nil {
		return err
	}
	if len(req.Title) > v.config.MaxTitleLength {
		return status.Errorf(codes.InvalidArgument, "title exceeds %d characters", v.config.MaxTitleLength)
	}
	if len(req.Description) > v.config.MaxDescriptionLength {
		return status.Errorf(codes.InvalidArgument, "description exceeds %d characters", v.config.MaxDescriptionLength)
	}
	if req.PeriodStart != "" {
		if err := validDateFormat("period_start", req.PeriodStart); err != nil {
			return err
		}
	}
	if req.PeriodEnd != "" {
		if err := validDateFormat("period_end", req.PeriodEnd); err != nil {
			return err
		}
	}
	return nil
}

func (v *ValidationInterceptor) validateUpdateTaskRequest(req *taskv1.UpdateTaskRequest) error {
	if err := requireField("id", req.Id); err != nil {
		return err
	}
	if len(req.Title) > v.config.MaxTitleLength {
		return status.Errorf(codes.InvalidArgument, "title exceeds %d characters", v.config.MaxTitleLength)
	}
	if req.PeriodStart != "" {
		if err := validDateFormat("period_start", req.PeriodStart); err != nil {
			return err
		}
	}
	if req.PeriodEnd != "" {
		if err := validDateFormat("period_end", req.PeriodEnd); err != nil {
			return err
		}
	}
	if req.AssigneeId != "" && req.ClearAssignee {
		return status.Error(codes.InvalidArgument, "assignee_id and clear_assignee are mutually exclusive")
	}
	return nil
}

func (v *ValidationInterceptor) validatePopulateTasksRequest(req *taskv1.PopulateTasksRequest) error {
	if err := requireField("schedule_id", req.ScheduleId); err != nil {
		return err
	}
	if len(req.Tasks) > v.config.MaxBatchSize {
		return status.Errorf(codes.InvalidArgument, "at most %d draft tasks per populate call", v.config.MaxBatchSize)
	}
	for i, draft := range req.Tasks {
		if len(draft.Title) > v.config.MaxTitleLength {
			return status.Errorf(codes.InvalidArgument, "tasks[%d].title exceeds %d characters", i, v.config.MaxTitleLength)
		}
	}
	return nil
}

func requireField(field, value string) error {
	if value == "" {
		return status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	return nil
}

func validDateFormat(field, value string) error {
	if value == "" {
		return status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	if _, err := time.Parse(time.DateOnly, value); err != nil {
		return status.Error(codes.InvalidArgument, fmt.Sprintf("%s must be a YYYY-MM-DD date", field))
	}
	return nil
}
