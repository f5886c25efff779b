package model

import "time"

// ReservationStatus enumerates the lifecycle states of a reservation.
// PENDING is the only initial state.  DENIED and CANCELLED are terminal.
// APPROVED is not terminal: an administrator may revoke it back to DENIED.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "PENDING"
	StatusApproved  ReservationStatus = "APPROVED"
	StatusDenied    ReservationStatus = "DENIED"
	StatusCancelled ReservationStatus = "CANCELLED"
)

// Terminal reports whether no further transition is allowed from s.
func (s ReservationStatus) Terminal() bool {
	return s == StatusDenied || s == StatusCancelled
}

// Valid reports whether s is one of the known reservation statuses.
func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDenied, StatusCancelled:
		return true
	}
	return false
}

// Reservation records a requester's claim on a resource over a half-open
// time interval [StartsAt, EndsAt).  All timestamps are UTC.
//
// Fields:
//  ID          – primary key identifier.
//  ResourceID  – resource being reserved; immutable after creation.
//  RequesterID – user who created the reservation; immutable.
//  Status      – state of the reservation (PENDING, APPROVED, DENIED,
//                CANCELLED).
//  Purpose     – free-text reason for the reservation; always required.
//  Destination – travel destination; required only for VEHICLE resources.
//  StartsAt    – inclusive interval start.
//  EndsAt      – exclusive interval end; StartsAt < EndsAt always holds.
//  CreatedAt   – creation timestamp, never mutated.
//  UpdatedAt   – last status-transition timestamp.
type Reservation struct {
	ID          uint64            `json:"id"`                    // reservations.id
	ResourceID  uint64            `json:"resource_id"`           // reservations.resource_id
	RequesterID uint64            `json:"requester_id"`          // reservations.requester_id
	Status      ReservationStatus `json:"status"`                // reservations.status
	Purpose     string            `json:"purpose"`               // reservations.purpose
	Destination *string           `json:"destination,omitempty"` // reservations.destination (nullable)
	StartsAt    time.Time         `json:"starts_at"`             // reservations.starts_at
	EndsAt      time.Time         `json:"ends_at"`               // reservations.ends_at
	CreatedAt   time.Time         `json:"created_at"`            // reservations.created_at
	UpdatedAt   time.Time         `json:"updated_at"`            // reservations.updated_at
}

// Overlaps reports whether the reservation's interval intersects the
// half-open window [start, end).  Back-to-back intervals (one ending
// exactly when the other starts) do not overlap.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartsAt.Before(end) && r.EndsAt.After(start)
}
