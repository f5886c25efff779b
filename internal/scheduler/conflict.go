package scheduler

import (
	"context"
	"time"

	"github.com/tomengsanchez/ecosys-main-sub000/internal/model"
)

// ConflictChecker decides whether a candidate interval collides with
// existing reservations of the given statuses.  It is a point-in-time
// check over the store; the engine serializes check-then-write per
// resource so the answer cannot go stale between check and commit.
type ConflictChecker struct {
	store ReservationStore
}

// NewConflictChecker returns a checker backed by the given store.
func NewConflictChecker(store ReservationStore) *ConflictChecker {
	if store == nil {
		panic("nil store passed to NewConflictChecker")
	}
	return &ConflictChecker{store: store}
}

// HasConflict reports whether any reservation with a status in statuses
// overlaps [start, end) on the resource, ignoring excludeID when non-zero.
func (c *ConflictChecker) HasConflict(ctx context.Context, resourceID uint64, start, end time.Time, statuses []model.ReservationStatus, excludeID uint64) (bool, error) {
	overlapping, err := c.store.FindOverlapping(ctx, resourceID, start, end, statuses, excludeID)
	if err != nil {
		return false, err
	}
	return len(overlapping) > 0, nil
}

// ListConflicts returns the overlapping reservations themselves.  UIs use
// it to show how many pending requests already queue for a slot.
func (c *ConflictChecker) ListConflicts(ctx context.Context, resourceID uint64, start, end time.Time, statuses []model.ReservationStatus) ([]model.Reservation, error) {
	return c.store.FindOverlapping(ctx, resourceID, start, end, statuses, 0)
}
