// internal/service/notification_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	notificationv1 "github.com/buildcrew/sitemaster/api/proto/notification/v1/generated"
	"github.com/buildcrew/sitemaster/ent/generated/user"
	"github.com/buildcrew/sitemaster/pkg/notify"
)

func TestNotificationService_ListAndMarkRead(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := NewNotificationService(client)

	contractor := createTestUser(t, client, user.RoleContractor)
	stranger := createTestUser(t, client, user.RoleContractor)
	ctx := authContext(contractor)

	for _, title := range []string{"Task assigned", "Task rescheduled"} {
		require.NoError(t, svc.CreateNotification(context.Background(), &CreateNotificationRequest{
			UserID:   contractor.ID,
			Category: notify.CategoryTaskUpdated,
			Title:    title,
		}))
	}

	listed, err := svc.ListNotifications(ctx, &notificationv1.ListNotificationsRequest{UnreadOnly: true})
	require.NoError(t, err)
	require.Len(t, listed.Notifications, 2)
	assert.False(t, listed.Notifications[0].Read)
	assert.Equal(t, "task_updated", listed.Notifications[0].Category)

	// Reading one drops it from the unread feed but not the full feed.
	_, err = svc.MarkNotificationRead(ctx, &notificationv1.MarkNotificationReadRequest{
		Id: listed.Notifications[0].Id,
	})
	require.NoError(t, err)

	unread, err := svc.ListNotifications(ctx, &notificationv1.ListNotificationsRequest{UnreadOnly: true})
	require.NoError(t, err)
	require.Len(t, unread.Notifications, 1)
	assert.NotEqual(t, listed.Notifications[0].Id, unread.Notifications[0].Id)

	all, err := svc.ListNotifications(ctx, &notificationv1.ListNotificationsRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Notifications, 2)

	// Someone else's notification reads as missing, not forbidden.
	_, err = svc.MarkNotificationRead(authContext(stranger), &notificationv1.MarkNotificationReadRequest{
		Id: unread.Notifications[0].Id,
	})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = svc.MarkNotificationRead(ctx, &notificationv1.MarkNotificationReadRequest{Id: uuid.New().String()})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = svc.MarkNotificationRead(ctx, &notificationv1.MarkNotificationReadRequest{Id: "not-a-uuid"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestNotificationService_RecipientsForProject(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	svc := NewNotificationService(client)
	ctx := context.Background()

	owner := createTestUser(t, client, user.RoleOwner)
	member := createTestUser(t, client, user.RoleCustomer, "project-1")
	outsider := createTestUser(t, client, user.RoleCustomer, "project-2")

	inactive, err := client.User.UpdateOneID(createTestUser(t, client, user.RoleSalesperson, "project-1").ID).
		SetIsActive(false).
		Save(ctx)
	require.NoError(t, err)

	recipients, err := svc.RecipientsForProject(ctx, "project-1")
	require.NoError(t, err)

	ids := make([]uuid.UUID, len(recipients))
	for i, r := range recipients {
		ids[i] = r.ID
	}
	assert.Contains(t, ids, owner.ID)
	assert.Contains(t, ids, member.ID)
	assert.NotContains(t, ids, outsider.ID)
	assert.NotContains(t, ids, inactive.ID)
}
