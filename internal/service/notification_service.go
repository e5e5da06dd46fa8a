// internal/service/notification_service.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	notificationv1 "github.com/buildcrew/sitemaster/api/proto/notification/v1/generated"
	ent "github.com/buildcrew/sitemaster/ent/generated"
	"github.com/buildcrew/sitemaster/ent/generated/notification"
	"github.com/buildcrew/sitemaster/ent/generated/user"
	"github.com/buildcrew/sitemaster/pkg/notify"
)

// NotificationService records lifecycle notifications and serves the
// in-portal feed over gRPC. Schedule and task mutations write entries
// through the EventLogger; the RPCs only read them back and mark them
// read.
type NotificationService struct {
	notificationv1.UnimplementedNotificationServiceServer
	client *ent.Client
}

// NewNotificationService creates a new notification service
func NewNotificationService(client *ent.Client) *NotificationService {
	return &NotificationService{
		client: client,
	}
}

// CreateNotificationRequest carries one notification to record.
type CreateNotificationRequest struct {
	UserID   uuid.UUID
	Category string
	Title    string
	Message  string
	Link     string
	Metadata map[string]interface{}
}

// CreateNotification persists a single notification record.
func (s *NotificationService) CreateNotification(ctx context.Context, req *CreateNotificationRequest) error {
	category, err := notify.ParseCategory(req.Category)
	if err != nil {
		return fmt.Errorf("invalid category: %w", err)
	}

	create := s.client.Notification.Create().
		SetUserID(req.UserID).
		SetCategory(category).
		SetTitle(req.Title)

	if req.Message != "" {
		create = create.SetMessage(req.Message)
	}
	if req.Link != "" {
		create = create.SetLink(req.Link)
	}
	if len(req.Metadata) > 0 {
		create = create.SetMetadata(req.Metadata)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}

	return nil
}

// RecipientsForProject returns the active users who follow the given
// project, plus every owner. Project membership lives in a JSON column
// so the narrowing happens here rather than in SQL.
func (s *NotificationService) RecipientsForProject(ctx context.Context, projectID string) ([]*ent.User, error) {
	users, err := s.client.User.
		Query().
		Where(user.IsActive(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recipients: %w", err)
	}

	var recipients []*ent.User
	for _, u := range users {
		if u.Role == user.RoleOwner || containsProject(u.ProjectIds, projectID) {
			recipients = append(recipients, u)
		}
	}
	return recipients, nil
}

// MarkRead flags a notification as seen by its recipient.
func (s *NotificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Notification.
		UpdateOneID(id).
		SetRead(true).
		Exec(ctx); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

// ListForUser returns a user's notifications, newest first.
func (s *NotificationService) ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*ent.Notification, error) {
	query := s.client.Notification.
		Query().
		Where(notification.UserID(userID))

	if unreadOnly {
		query = query.Where(notification.Read(false))
	}

	notifications, err := query.
		Order(ent.Desc(notification.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}

	return notifications, nil
}

// ListNotifications returns the caller's own notifications, newest
// first.
func (s *NotificationService) ListNotifications(ctx context.Context, req *notificationv1.ListNotificationsRequest) (*notificationv1.ListNotificationsResponse, error) {
	c, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	notifications, err := s.ListForUser(ctx, c.ID, req.UnreadOnly)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list notifications: %v", err)
	}

	protoNotifications := make([]*notificationv1.Notification, len(notifications))
	for i, n := range notifications {
		protoNotifications[i] = convertEntNotificationToProto(n)
	}

	return &notificationv1.ListNotificationsResponse{
		Notifications: protoNotifications,
	}, nil
}

// MarkNotificationRead marks one of the caller's notifications as
// read. Another user's notification reads as NotFound.
func (s *NotificationService) MarkNotificationRead(ctx context.Context, req *notificationv1.MarkNotificationReadRequest) (*emptypb.Empty, error) {
	c, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id: must be a valid UUID")
	}

	exists, err := s.client.Notification.
		Query().
		Where(notification.ID(id), notification.UserID(c.ID)).
		Exist(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to get notification: %v", err)
	}
	if !exists {
		return nil, status.Error(codes.NotFound, "notification not found")
	}

	if err := s.MarkRead(ctx, id); err != nil {
		return nil, status.Errorf(codes.Internal, "failed to mark notification read: %v", err)
	}

	return &emptypb.Empty{}, nil
}

// convertEntNotificationToProto converts an ent notification to its
// proto form.
func convertEntNotificationToProto(n *ent.Notification) *notificationv1.Notification {
	return &notificationv1.Notification{
		Id:        n.ID.String(),
		Category:  notify.CategoryToString(n.Category),
		Title:     n.Title,
		Message:   n.Message,
		Link:      n.Link,
		Read:      n.Read,
		CreatedAt: timestamppb.New(n.CreatedAt),
	}
}
