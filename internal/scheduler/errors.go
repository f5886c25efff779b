// Package scheduler implements the reservation scheduling and conflict
// resolution engine: interval overlap detection, slot merging, the
// reservation status state machine, and the approval cascade that
// auto-denies competing pending requests.  The package is transport
// agnostic; HTTP handlers call into it and translate its typed errors.
package scheduler

import (
	"fmt"

	"github.com/tomengsanchez/ecosys-main-sub000/internal/model"
)

// ValidationError reports malformed input: an inverted or past interval,
// an empty slot selection, or a missing required field.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "validation failed: " + e.Reason }

// NotFoundError reports an unknown resource or reservation id.
type NotFoundError struct {
	Kind string // "resource" or "reservation"
	ID   uint64
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s %d not found", e.Kind, e.ID) }

// ConflictError reports that a candidate interval overlaps at least one
// approved reservation on the same resource.
type ConflictError struct {
	ResourceID uint64
	Conflicts  []model.Reservation
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("resource %d: interval overlaps %d approved reservation(s)", e.ResourceID, len(e.Conflicts))
}

// InvalidTransitionError identifies an illegal (fromState, action) pair in
// the reservation state machine.
type InvalidTransitionError struct {
	From   model.ReservationStatus
	Action string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a %s reservation", e.Action, e.From)
}

// AuthorizationError reports that the acting user may not perform the
// operation; the engine raises it only for the ownership rule on cancel.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string { return "not allowed: " + e.Reason }
