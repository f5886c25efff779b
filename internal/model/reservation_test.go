package model

import (
	"testing"
	"time"
)

func ts(h int) time.Time {
	return time.Date(2025, 3, 1, h, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	r := &Reservation{StartsAt: ts(10), EndsAt: ts(12)}

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{name: "same interval", start: ts(10), end: ts(12), want: true},
		{name: "partial overlap", start: ts(11), end: ts(13), want: true},
		{name: "window contains reservation", start: ts(9), end: ts(13), want: true},
		{name: "window ends at start", start: ts(8), end: ts(10), want: false},
		{name: "window starts at end", start: ts(12), end: ts(14), want: false},
		{name: "disjoint", start: ts(14), end: ts(15), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Overlaps(tt.start, tt.end); got != tt.want {
				t.Errorf("Overlaps(%s, %s) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestStatusTerminal(t *testing.T) {
	for status, want := range map[ReservationStatus]bool{
		StatusPending:   false,
		StatusApproved:  false,
		StatusDenied:    true,
		StatusCancelled: true,
	} {
		if got := status.Terminal(); got != want {
			t.Errorf("%s.Terminal() = %v, want %v", status, got, want)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, status := range []ReservationStatus{StatusPending, StatusApproved, StatusDenied, StatusCancelled} {
		if !status.Valid() {
			t.Errorf("%s.Valid() = false", status)
		}
	}
	if ReservationStatus("EXPIRED").Valid() {
		t.Error(`Valid("EXPIRED") = true`)
	}
}
