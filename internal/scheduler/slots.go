package scheduler

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// SlotMinutes is the fixed length of every bookable slot in the catalog.
const SlotMinutes = 60

// Default business-day bounds for the slot catalog, in hours from
// midnight.  Configurable per deployment via config.
const (
	DefaultOpenHour  = 8
	DefaultCloseHour = 20
)

// TimeRange is a half-open interval [Start, End) in UTC.
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Label renders the range as a catalog slot label, e.g. "09:00-10:00".
func (r TimeRange) Label() string {
	return r.Start.Format("15:04") + "-" + r.End.Format("15:04")
}

// parseSlotLabel converts a "HH:MM-HH:MM" catalog label into minute
// offsets from midnight.  A label is rejected when it cannot be parsed,
// is inverted, is not exactly one slot long, or does not sit on a slot
// boundary.
func parseSlotLabel(label string) (startMin, endMin int, err error) {
	parts := strings.Split(strings.TrimSpace(label), "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("unparsable slot %q", label)
	}
	startMin, err = parseTimeOfDay(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("unparsable slot %q", label)
	}
	endMin, err = parseTimeOfDay(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("unparsable slot %q", label)
	}
	if endMin-startMin != SlotMinutes {
		return 0, 0, fmt.Errorf("slot %q is not %d minutes long", label, SlotMinutes)
	}
	if startMin%SlotMinutes != 0 {
		return 0, 0, fmt.Errorf("slot %q not aligned to %d minutes", label, SlotMinutes)
	}
	return startMin, endMin, nil
}

// parseTimeOfDay converts "HH:MM" into minutes from midnight.
func parseTimeOfDay(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// MergeSlots converts a set of discrete slot labels on the given calendar
// date into the minimal list of contiguous time ranges.  Touching or
// overlapping slots (including duplicates) collapse into one range.
//
// The whole selection is rejected when it is empty or when any single
// label is malformed; a partially valid selection never produces a
// partial merge.
func MergeSlots(date time.Time, labels []string) ([]TimeRange, error) {
	if len(labels) == 0 {
		return nil, &ValidationError{Reason: "empty slot selection"}
	}
	type span struct{ start, end int }
	spans := make([]span, 0, len(labels))
	for _, label := range labels {
		s, e, err := parseSlotLabel(label)
		if err != nil {
			return nil, &ValidationError{Reason: err.Error()}
		}
		spans = append(spans, span{start: s, end: e})
	}
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	at := func(min int) time.Time { return day.Add(time.Duration(min) * time.Minute) }

	var out []TimeRange
	cur := spans[0]
	for _, s := range spans[1:] {
		if s.start <= cur.end {
			// Touches or overlaps the open range; extend it.
			if s.end > cur.end {
				cur.end = s.end
			}
			continue
		}
		out = append(out, TimeRange{Start: at(cur.start), End: at(cur.end)})
		cur = s
	}
	out = append(out, TimeRange{Start: at(cur.start), End: at(cur.end)})
	return out, nil
}

// DaySlots generates the full slot catalog for a calendar date between
// openHour and closeHour.  It is used to render the booking grid.
func DaySlots(date time.Time, openHour, closeHour int) []TimeRange {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	var out []TimeRange
	for min := openHour * 60; min+SlotMinutes <= closeHour*60; min += SlotMinutes {
		out = append(out, TimeRange{
			Start: day.Add(time.Duration(min) * time.Minute),
			End:   day.Add(time.Duration(min+SlotMinutes) * time.Minute),
		})
	}
	return out
}
