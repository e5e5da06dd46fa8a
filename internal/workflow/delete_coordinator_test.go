// internal/workflow/delete_coordinator_test.go
package workflow

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCoordinator_RequestAndResolve(t *testing.T) {
	c := NewDeleteCoordinator(5 * time.Minute)
	scheduleID := uuid.New()

	pending := c.Request(scheduleID, 3)
	assert.NotEmpty(t, pending.Token)
	assert.Equal(t, scheduleID, pending.ScheduleID)
	assert.Equal(t, 3, pending.TaskCount)
	assert.Contains(t, pending.Warning, "3 associated tasks")
	assert.Equal(t, 1, c.PendingCount())

	resolved, err := c.Resolve(pending.Token)
	require.NoError(t, err)
	assert.Equal(t, scheduleID, resolved)
	assert.Equal(t, 0, c.PendingCount())
}

func TestDeleteCoordinator_TokenIsSingleUse(t *testing.T) {
	c := NewDeleteCoordinator(5 * time.Minute)
	pending := c.Request(uuid.New(), 0)

	_, err := c.Resolve(pending.Token)
	require.NoError(t, err)

	_, err = c.Resolve(pending.Token)
	assert.ErrorIs(t, err, ErrUnknownToken)
}

func TestDeleteCoordinator_UnknownToken(t *testing.T) {
	c := NewDeleteCoordinator(5 * time.Minute)

	_, err := c.Resolve("no-such-token")
	assert.ErrorIs(t, err, ErrUnknownToken)

	assert.ErrorIs(t, c.Cancel("no-such-token"), ErrUnknownToken)
}

func TestDeleteCoordinator_Cancel(t *testing.T) {
	c := NewDeleteCoordinator(5 * time.Minute)
	pending := c.Request(uuid.New(), 2)

	require.NoError(t, c.Cancel(pending.Token))
	assert.Equal(t, 0, c.PendingCount())

	// A cancelled token no longer resolves.
	_, err := c.Resolve(pending.Token)
	assert.ErrorIs(t, err, ErrUnknownToken)
}

func TestDeleteCoordinator_Expiry(t *testing.T) {
	c := NewDeleteCoordinator(5 * time.Minute)

	now := time.Now()
	c.nowFn = func() time.Time { return now }

	pending := c.Request(uuid.New(), 1)

	now = now.Add(6 * time.Minute)

	_, err := c.Resolve(pending.Token)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.Equal(t, 0, c.PendingCount())
}

func TestDeleteCoordinator_ExpiredEntriesPruned(t *testing.T) {
	c := NewDeleteCoordinator(5 * time.Minute)

	now := time.Now()
	c.nowFn = func() time.Time { return now }

	c.Request(uuid.New(), 0)
	now = now.Add(10 * time.Minute)
	fresh := c.Request(uuid.New(), 0)

	// The stale entry is gone, the fresh one still resolves.
	assert.Equal(t, 1, c.PendingCount())
	_, err := c.Resolve(fresh.Token)
	require.NoError(t, err)
}

func TestDeleteCoordinator_IndependentRequests(t *testing.T) {
	c := NewDeleteCoordinator(5 * time.Minute)
	first := uuid.New()
	second := uuid.New()

	p1 := c.Request(first, 1)
	p2 := c.Request(second, 2)
	require.NotEqual(t, p1.Token, p2.Token)

	resolved, err := c.Resolve(p2.Token)
	require.NoError(t, err)
	assert.Equal(t, second, resolved)

	resolved, err = c.Resolve(p1.Token)
	require.NoError(t, err)
	assert.Equal(t, first, resolved)
}

func TestDeleteWarning(t *testing.T) {
	assert.Equal(t, "This will permanently delete the scheduled work.", deleteWarning(0))
	assert.Contains(t, deleteWarning(1), "1 associated task")
	assert.Contains(t, deleteWarning(7), "all 7 associated tasks")
}
