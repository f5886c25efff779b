package scheduler

import (
	"context"
	"log"
	"strings"

	"github.com/tomengsanchez/ecosys-main-sub000/internal/model"
)

// Engine drives the reservation lifecycle: create, approve (with the
// auto-deny cascade), deny and cancel.  Every operation that checks
// conflicts and then writes runs under a per-resource lock, so the
// no-approved-overlap invariant holds even under concurrent requests.
type Engine struct {
	store     ReservationStore
	resources ResourceStore
	notifier  Notifier
	checker   *ConflictChecker
	clock     Clock
	locks     *resourceLocks
}

// NewEngine constructs the engine.  Store, resources and notifier must be
// non-nil; a nil clock defaults to the real UTC clock.
func NewEngine(store ReservationStore, resources ResourceStore, notifier Notifier, clock Clock) *Engine {
	if store == nil || resources == nil || notifier == nil {
		panic("nil dependency passed to NewEngine")
	}
	if clock == nil {
		clock = RealClock{}
	}
	return &Engine{
		store:     store,
		resources: resources,
		notifier:  notifier,
		checker:   NewConflictChecker(store),
		clock:     clock,
		locks:     newResourceLocks(),
	}
}

// CreateRequest carries the inputs for reservation creation.  Ranges
// holds the merged contiguous intervals: one element for an explicit
// interval request, one or more for a slot-based request.
type CreateRequest struct {
	ResourceID  uint64
	RequesterID uint64
	Purpose     string
	Destination string
	Ranges      []TimeRange
}

// ApprovalResult reports the outcome of Approve: the now-approved
// reservation and how many overlapping pending reservations were
// auto-denied by the cascade.
type ApprovalResult struct {
	Reservation *model.Reservation
	AutoDenied  int
}

// Create validates the request, checks every range against approved
// reservations, and persists one PENDING reservation per range in a
// single atomic write.  Pending reservations never block creation:
// requesters may queue for a window that other pending requests already
// claim.
func (e *Engine) Create(ctx context.Context, req CreateRequest) ([]*model.Reservation, error) {
	if len(req.Ranges) == 0 {
		return nil, &ValidationError{Reason: "empty slot selection"}
	}
	purpose := strings.TrimSpace(req.Purpose)
	if purpose == "" {
		return nil, &ValidationError{Reason: "purpose is required"}
	}
	now := e.clock.Now()
	for _, rng := range req.Ranges {
		if !rng.Start.Before(rng.End) {
			return nil, &ValidationError{Reason: "interval start must precede end"}
		}
		if rng.Start.Before(now) {
			return nil, &ValidationError{Reason: "reservation cannot start in the past"}
		}
	}

	resource, err := e.resources.GetResource(ctx, req.ResourceID)
	if err != nil {
		return nil, err
	}
	if resource.Status != model.ResourceAvailable {
		return nil, &ValidationError{Reason: "resource is not available for reservation"}
	}
	destination := strings.TrimSpace(req.Destination)
	if resource.Type == model.ResourceVehicle && destination == "" {
		return nil, &ValidationError{Reason: "destination is required for vehicle reservations"}
	}

	lock := e.locks.acquire(req.ResourceID)
	defer lock.Unlock()

	// Only approved reservations block a new request.
	for _, rng := range req.Ranges {
		conflicts, err := e.store.FindOverlapping(ctx, req.ResourceID, rng.Start, rng.End, []model.ReservationStatus{model.StatusApproved}, 0)
		if err != nil {
			return nil, err
		}
		if len(conflicts) > 0 {
			return nil, &ConflictError{ResourceID: req.ResourceID, Conflicts: conflicts}
		}
	}

	created := make([]*model.Reservation, 0, len(req.Ranges))
	for _, rng := range req.Ranges {
		r := &model.Reservation{
			ResourceID:  req.ResourceID,
			RequesterID: req.RequesterID,
			Status:      model.StatusPending,
			Purpose:     purpose,
			StartsAt:    rng.Start,
			EndsAt:      rng.End,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if destination != "" {
			d := destination
			r.Destination = &d
		}
		created = append(created, r)
	}
	if err := e.store.CreateBatch(ctx, created); err != nil {
		return nil, err
	}
	for _, r := range created {
		e.notify(e.notifier.ReservationCreated(ctx, r))
	}
	return created, nil
}

// Approve transitions a pending reservation to APPROVED after rechecking
// conflicts against approved reservations (excluding itself).  On success
// it cascades: every pending reservation overlapping the same interval on
// the same resource is transitioned to DENIED.  The cascade is
// best-effort per item; a failure to deny one competitor neither rolls
// back the approval nor stops the remaining denials.
func (e *Engine) Approve(ctx context.Context, reservationID, actorID uint64) (*ApprovalResult, error) {
	res, err := e.store.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	lock := e.locks.acquire(res.ResourceID)
	defer lock.Unlock()

	// Re-read under the lock; the status may have moved while we waited.
	res, err = e.store.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.Status != model.StatusPending {
		return nil, &InvalidTransitionError{From: res.Status, Action: "approve"}
	}

	conflicts, err := e.store.FindOverlapping(ctx, res.ResourceID, res.StartsAt, res.EndsAt, []model.ReservationStatus{model.StatusApproved}, res.ID)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, &ConflictError{ResourceID: res.ResourceID, Conflicts: conflicts}
	}

	approved, err := e.store.UpdateStatus(ctx, res.ID, model.StatusApproved)
	if err != nil {
		return nil, err
	}
	e.notify(e.notifier.ReservationApproved(ctx, approved))

	// Cascade: deny every pending reservation that overlaps the interval
	// just granted, still under the resource lock.
	losers, err := e.store.FindOverlapping(ctx, res.ResourceID, res.StartsAt, res.EndsAt, []model.ReservationStatus{model.StatusPending}, res.ID)
	if err != nil {
		log.Printf("scheduler: approve %d by %d: cascade query failed: %v", res.ID, actorID, err)
		return &ApprovalResult{Reservation: approved, AutoDenied: 0}, nil
	}
	autoDenied := 0
	for i := range losers {
		denied, err := e.store.UpdateStatus(ctx, losers[i].ID, model.StatusDenied)
		if err != nil {
			log.Printf("scheduler: approve %d: auto-deny of %d failed: %v", res.ID, losers[i].ID, err)
			continue
		}
		autoDenied++
		e.notify(e.notifier.ReservationDenied(ctx, denied, false))
	}
	return &ApprovalResult{Reservation: approved, AutoDenied: autoDenied}, nil
}

// Deny transitions a pending reservation to DENIED, or revokes an
// approved one.  No conflict check is needed: denial only releases
// exclusivity pressure.
func (e *Engine) Deny(ctx context.Context, reservationID, actorID uint64) (*model.Reservation, error) {
	res, err := e.store.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	lock := e.locks.acquire(res.ResourceID)
	defer lock.Unlock()

	res, err = e.store.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.Status != model.StatusPending && res.Status != model.StatusApproved {
		return nil, &InvalidTransitionError{From: res.Status, Action: "deny"}
	}
	revoked := res.Status == model.StatusApproved

	denied, err := e.store.UpdateStatus(ctx, res.ID, model.StatusDenied)
	if err != nil {
		return nil, err
	}
	e.notify(e.notifier.ReservationDenied(ctx, denied, revoked))
	return denied, nil
}

// Cancel lets the requester withdraw their own pending reservation.
// Ownership is a domain rule here, not a capability check: even an
// administrator calling Cancel must be the requester.  Approved
// reservations cannot be self-cancelled; an admin deny revokes those.
func (e *Engine) Cancel(ctx context.Context, reservationID, actorID uint64) (*model.Reservation, error) {
	res, err := e.store.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	lock := e.locks.acquire(res.ResourceID)
	defer lock.Unlock()

	res, err = e.store.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.RequesterID != actorID {
		return nil, &AuthorizationError{Reason: "only the requester may cancel a reservation"}
	}
	if res.Status != model.StatusPending {
		return nil, &InvalidTransitionError{From: res.Status, Action: "cancel"}
	}

	cancelled, err := e.store.UpdateStatus(ctx, res.ID, model.StatusCancelled)
	if err != nil {
		return nil, err
	}
	e.notify(e.notifier.ReservationCancelled(ctx, cancelled))
	return cancelled, nil
}

// ListConflicts exposes the conflict query for UIs ("N pending requests
// for this slot").  Statuses defaults to {PENDING, APPROVED} when empty.
func (e *Engine) ListConflicts(ctx context.Context, resourceID uint64, rng TimeRange, statuses []model.ReservationStatus) ([]model.Reservation, error) {
	if !rng.Start.Before(rng.End) {
		return nil, &ValidationError{Reason: "interval start must precede end"}
	}
	if len(statuses) == 0 {
		statuses = []model.ReservationStatus{model.StatusPending, model.StatusApproved}
	}
	return e.checker.ListConflicts(ctx, resourceID, rng.Start, rng.End, statuses)
}

// Checker exposes the engine's conflict checker for read-only callers
// such as the slot availability view.
func (e *Engine) Checker() *ConflictChecker { return e.checker }

// notify logs and swallows notification failures; the transition that
// triggered them has already committed.
func (e *Engine) notify(err error) {
	if err != nil {
		log.Printf("scheduler: notification failed: %v", err)
	}
}
