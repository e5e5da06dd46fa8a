// internal/service/service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ent "github.com/buildcrew/sitemaster/ent/generated"
	"github.com/buildcrew/sitemaster/ent/generated/user"
	"github.com/buildcrew/sitemaster/internal/middleware"
	"github.com/buildcrew/sitemaster/internal/repository"
	"github.com/buildcrew/sitemaster/pkg/access"
)

// caller is the resolved identity of the current request.
type caller struct {
	ID   uuid.UUID
	Role access.Role
}

// callerFromContext reads the identity the auth interceptor placed on
// the context.
func callerFromContext(ctx context.Context) (caller, error) {
	idStr, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return caller{}, status.Error(codes.Unauthenticated, "user not authenticated")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return caller{}, status.Error(codes.Unauthenticated, "invalid user ID in token")
	}

	roleStr, ok := middleware.GetUserRoleFromContext(ctx)
	if !ok {
		return caller{}, status.Error(codes.Unauthenticated, "user not authenticated")
	}

	role, err := access.Parse(roleStr)
	if err != nil {
		return caller{}, status.Error(codes.Unauthenticated, "token carries an unknown role")
	}

	return caller{ID: id, Role: role}, nil
}

// projectIDsForCaller resolves the projects a project-scoped role may
// read.
func projectIDsForCaller(ctx context.Context, client *ent.Client, c caller) ([]string, error) {
	u, err := client.User.
		Query().
		Where(user.ID(c.ID), user.IsActive(true)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.PermissionDenied, "caller is not a registered portal user")
		}
		return nil, status.Errorf(codes.Internal, "failed to resolve caller: %v", err)
	}

	// An empty slice scopes every query to nothing rather than to
	// everything.
	if u.ProjectIds == nil {
		return []string{}, nil
	}
	return u.ProjectIds, nil
}

func containsProject(projectIDs []string, projectID string) bool {
	for _, id := range projectIDs {
		if id == projectID {
			return true
		}
	}
	return false
}

// weekWindow returns the Monday..Sunday calendar week containing now,
// as midnight-UTC dates.
func weekWindow(now time.Time) repository.DateWindow {
	now = now.UTC()
	daysSinceMonday := (int(now.Weekday()) + 6) % 7
	monday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -daysSinceMonday)
	return repository.DateWindow{
		Start: monday,
		End:   monday.AddDate(0, 0, 6),
	}
}

// today returns now truncated to a midnight-UTC date.
func today(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
