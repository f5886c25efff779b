// Package queue defines the reservation event payloads exchanged over the
// message broker and the background consumer that turns them into
// requester notifications.
package queue

// Event types carried in ReservationEvent.Type.
const (
	EventReservationCreated   = "reservation.created"
	EventReservationApproved  = "reservation.approved"
	EventReservationDenied    = "reservation.denied"
	EventReservationRevoked   = "reservation.revoked"
	EventReservationCancelled = "reservation.cancelled"
)

// ReservationEvent is published on every reservation state change.  It
// carries enough context for downstream consumers to render a
// notification without querying the primary database.  EventID is a UUID
// assigned at publish time; consumers may use it as a dedup key.
type ReservationEvent struct {
	EventID       string `json:"event_id"`
	Type          string `json:"type"`
	ReservationID uint64 `json:"reservation_id"`
	ResourceID    uint64 `json:"resource_id"`
	RequesterID   uint64 `json:"requester_id"`
	Requester     string `json:"requester,omitempty"`
	Status        string `json:"status"`
	Purpose       string `json:"purpose"`
	Destination   string `json:"destination,omitempty"`
	StartsAt      string `json:"starts_at"`
	EndsAt        string `json:"ends_at"`
	OccurredAt    string `json:"occurred_at"`
}
