package scheduler

import (
	"context"
	"time"

	"github.com/tomengsanchez/ecosys-main-sub000/internal/model"
)

// ReservationStore is the persistence surface the engine writes through.
// Implementations must return *NotFoundError for unknown reservation ids.
type ReservationStore interface {
	// FindOverlapping returns every reservation on resourceID whose
	// half-open interval overlaps [start, end) and whose status is in
	// statuses.  When excludeID is non-zero that reservation is omitted.
	// No ordering is guaranteed.
	FindOverlapping(ctx context.Context, resourceID uint64, start, end time.Time, statuses []model.ReservationStatus, excludeID uint64) ([]model.Reservation, error)

	// GetReservation loads a single reservation by id.
	GetReservation(ctx context.Context, id uint64) (*model.Reservation, error)

	// CreateBatch persists the given reservations atomically, assigning
	// IDs on the passed records.  Either all rows are written or none.
	CreateBatch(ctx context.Context, reservations []*model.Reservation) error

	// UpdateStatus transitions a reservation to the given status and
	// returns the updated record.
	UpdateStatus(ctx context.Context, id uint64, status model.ReservationStatus) (*model.Reservation, error)
}

// ResourceStore looks up resource catalog records.  The engine only reads
// resources; the catalog collaborator owns them.  Implementations must
// return *NotFoundError for unknown resource ids.
type ResourceStore interface {
	GetResource(ctx context.Context, id uint64) (*model.Resource, error)
}

// Notifier is the fire-and-forget notification port.  The engine logs and
// swallows any returned error; a notification failure never fails a state
// transition.
type Notifier interface {
	ReservationCreated(ctx context.Context, r *model.Reservation) error
	ReservationApproved(ctx context.Context, r *model.Reservation) error
	// ReservationDenied carries a revoked flag so the message can say
	// whether a prior approval was withdrawn or a pending request turned
	// down.
	ReservationDenied(ctx context.Context, r *model.Reservation, revoked bool) error
	ReservationCancelled(ctx context.Context, r *model.Reservation) error
}
