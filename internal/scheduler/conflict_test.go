package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/tomengsanchez/ecosys-main-sub000/internal/model"
)

func seedReservation(store *memStore, resourceID uint64, status model.ReservationStatus, start, end time.Time) uint64 {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.nextID++
	store.byID[store.nextID] = &model.Reservation{
		ID:          store.nextID,
		ResourceID:  resourceID,
		RequesterID: 1,
		Status:      status,
		Purpose:     "seed",
		StartsAt:    start,
		EndsAt:      end,
	}
	return store.nextID
}

// Overlap is half-open: intervals sharing only an endpoint do not
// conflict.
func TestHasConflictBoundaries(t *testing.T) {
	store := newMemStore()
	checker := NewConflictChecker(store)
	seedReservation(store, roomID, model.StatusApproved, at(10, 0), at(11, 0))

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{name: "identical interval", start: at(10, 0), end: at(11, 0), want: true},
		{name: "contained interval", start: at(10, 15), end: at(10, 45), want: true},
		{name: "containing interval", start: at(9, 0), end: at(12, 0), want: true},
		{name: "overlaps the start", start: at(9, 30), end: at(10, 30), want: true},
		{name: "overlaps the end", start: at(10, 30), end: at(11, 30), want: true},
		{name: "ends at the start", start: at(9, 0), end: at(10, 0), want: false},
		{name: "starts at the end", start: at(11, 0), end: at(12, 0), want: false},
		{name: "disjoint before", start: at(8, 0), end: at(9, 0), want: false},
		{name: "disjoint after", start: at(12, 0), end: at(13, 0), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := checker.HasConflict(context.Background(), roomID, tt.start, tt.end,
				[]model.ReservationStatus{model.StatusApproved}, 0)
			if err != nil {
				t.Fatalf("HasConflict() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("HasConflict(%s..%s) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestHasConflictFiltersByStatus(t *testing.T) {
	store := newMemStore()
	checker := NewConflictChecker(store)
	seedReservation(store, roomID, model.StatusDenied, at(10, 0), at(11, 0))
	seedReservation(store, roomID, model.StatusCancelled, at(10, 0), at(11, 0))
	pendingID := seedReservation(store, roomID, model.StatusPending, at(10, 0), at(11, 0))

	got, err := checker.HasConflict(context.Background(), roomID, at(10, 0), at(11, 0),
		[]model.ReservationStatus{model.StatusApproved}, 0)
	if err != nil {
		t.Fatalf("HasConflict() error = %v", err)
	}
	if got {
		t.Error("denied/cancelled/pending reservations counted as approved conflicts")
	}

	got, err = checker.HasConflict(context.Background(), roomID, at(10, 0), at(11, 0),
		[]model.ReservationStatus{model.StatusPending}, 0)
	if err != nil {
		t.Fatalf("HasConflict() error = %v", err)
	}
	if !got {
		t.Error("pending reservation not reported when pending status requested")
	}

	// Excluding the only match clears the conflict.
	got, err = checker.HasConflict(context.Background(), roomID, at(10, 0), at(11, 0),
		[]model.ReservationStatus{model.StatusPending}, pendingID)
	if err != nil {
		t.Fatalf("HasConflict() error = %v", err)
	}
	if got {
		t.Error("excluded reservation still reported as a conflict")
	}
}

func TestHasConflictScopedToResource(t *testing.T) {
	store := newMemStore()
	checker := NewConflictChecker(store)
	seedReservation(store, roomID, model.StatusApproved, at(10, 0), at(11, 0))

	got, err := checker.HasConflict(context.Background(), vehicleID, at(10, 0), at(11, 0),
		[]model.ReservationStatus{model.StatusApproved}, 0)
	if err != nil {
		t.Fatalf("HasConflict() error = %v", err)
	}
	if got {
		t.Error("reservation on another resource reported as a conflict")
	}
}

func TestListConflictsReturnsCompetitors(t *testing.T) {
	store := newMemStore()
	checker := NewConflictChecker(store)
	seedReservation(store, roomID, model.StatusPending, at(9, 0), at(10, 0))
	seedReservation(store, roomID, model.StatusPending, at(9, 30), at(10, 30))
	seedReservation(store, roomID, model.StatusApproved, at(11, 0), at(12, 0))

	got, err := checker.ListConflicts(context.Background(), roomID, at(9, 0), at(10, 0),
		[]model.ReservationStatus{model.StatusPending, model.StatusApproved})
	if err != nil {
		t.Fatalf("ListConflicts() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListConflicts() returned %d reservations, want 2", len(got))
	}
}
