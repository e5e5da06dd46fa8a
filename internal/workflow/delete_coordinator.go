// internal/workflow/delete_coordinator.go
package workflow

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnknownToken = errors.New("unknown or already resolved confirmation token")
	ErrTokenExpired = errors.New("confirmation token has expired")
)

// PendingDelete is the phase-one result of a schedule deletion: a
// single-use token plus the cascade warning shown to the caller.
type PendingDelete struct {
	Token      string
	ScheduleID uuid.UUID
	TaskCount  int
	Warning    string
	ExpiresAt  time.Time
}

type pendingEntry struct {
	scheduleID uuid.UUID
	expiresAt  time.Time
}

// DeleteCoordinator implements confirmation-before-destroy for
// schedules. Phase one (Request) records a pending confirmation and
// performs no mutation; phase two (Resolve) hands the schedule ID back
// to the caller exactly once. Cancelling discards the pending entry.
type DeleteCoordinator struct {
	mu      sync.Mutex
	pending map[string]pendingEntry
	ttl     time.Duration
	nowFn   func() time.Time
}

// NewDeleteCoordinator creates a coordinator whose confirmation tokens
// expire after ttl.
func NewDeleteCoordinator(ttl time.Duration) *DeleteCoordinator {
	return &DeleteCoordinator{
		pending: make(map[string]pendingEntry),
		ttl:     ttl,
		nowFn:   time.Now,
	}
}

// Request opens a pending confirmation for the schedule and returns
// the token the caller must present to ConfirmDelete.
func (c *DeleteCoordinator) Request(scheduleID uuid.UUID, taskCount int) PendingDelete {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.nowFn()
	c.expireLocked(now)

	token := uuid.NewString()
	expires := now.Add(c.ttl)
	c.pending[token] = pendingEntry{scheduleID: scheduleID, expiresAt: expires}

	return PendingDelete{
		Token:      token,
		ScheduleID: scheduleID,
		TaskCount:  taskCount,
		Warning:    deleteWarning(taskCount),
		ExpiresAt:  expires,
	}
}

// Resolve consumes the token and returns the schedule it was issued
// for. A token resolves at most once: retries and double-confirms get
// ErrUnknownToken so an earlier deletion is never mistaken for success.
func (c *DeleteCoordinator) Resolve(token string) (uuid.UUID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.pending[token]
	if !ok {
		return uuid.Nil, ErrUnknownToken
	}
	delete(c.pending, token)

	if c.nowFn().After(entry.expiresAt) {
		return uuid.Nil, ErrTokenExpired
	}
	return entry.scheduleID, nil
}

// Cancel discards a pending confirmation without mutating anything.
func (c *DeleteCoordinator) Cancel(token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.pending[token]; !ok {
		return ErrUnknownToken
	}
	delete(c.pending, token)
	return nil
}

// PendingCount reports the number of unresolved confirmations.
func (c *DeleteCoordinator) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expireLocked(c.nowFn())
	return len(c.pending)
}

func (c *DeleteCoordinator) expireLocked(now time.Time) {
	for token, entry := range c.pending {
		if now.After(entry.expiresAt) {
			delete(c.pending, token)
		}
	}
}

func deleteWarning(taskCount int) string {
	switch taskCount {
	case 0:
		return "This will permanently delete the scheduled work."
	case 1:
		return "This will permanently delete the scheduled work and 1 associated task."
	default:
		return fmt.Sprintf("This will permanently delete the scheduled work and all %d associated tasks.", taskCount)
	}
}
