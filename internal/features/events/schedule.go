package events

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pure transformation rules for direct-manipulation editing. Each function
// returns a new event value; callers persist the full merged result so
// unrelated fields survive the round trip.

// ResolveColor picks the color for an event: an explicit override wins,
// otherwise the palette entry for the type.
func ResolveColor(eventType, override string) string {
	if override != "" {
		return override
	}
	return ColorMap[eventType]
}

// ApplyTypeChange sets the type and unconditionally resets the color from
// the palette, discarding any prior per-instance override.
func ApplyTypeChange(e Event, newType string) Event {
	e.Type = newType
	e.Color = ColorMap[newType]
	return e
}

// ApplyAllDayToggle converts an event to or from all-day form. Enabling
// collapses the event to a single full day anchored on the original start:
// start snaps to 00:00:00.000 and end to 23:59:59.999 of the start's
// calendar day (not the end's). Disabling keeps the start and restores a
// one hour duration; the pre-toggle end is not recoverable.
func ApplyAllDayToggle(e Event, enable bool) Event {
	if enable {
		y, m, d := e.Start.Date()
		loc := e.Start.Location()
		e.Start = time.Date(y, m, d, 0, 0, 0, 0, loc)
		e.End = time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), loc)
		e.AllDay = true
	} else {
		e.End = e.Start.Add(time.Hour)
		e.AllDay = false
	}
	return e
}

// ApplyDurationPreset sets a fixed duration from the current start
func ApplyDurationPreset(e Event, minutes int) Event {
	e.AllDay = false
	e.End = e.Start.Add(time.Duration(minutes) * time.Minute)
	return e
}

// ApplyDrag replaces the time range with the values the drag gesture
// computed. The caller owns duration preservation; the engine trusts the
// supplied pair.
func ApplyDrag(e Event, newStart, newEnd time.Time) Event {
	e.Start = newStart
	e.End = newEnd
	return e
}

// ApplyResize has the same contract as drag; typically only one end of
// the range changes.
func ApplyResize(e Event, newStart, newEnd time.Time) Event {
	return ApplyDrag(e, newStart, newEnd)
}

// Duplicate clones every field except the identity. Start and end are
// preserved exactly, with no offset applied.
func Duplicate(e Event) Event {
	e.ID = primitive.NilObjectID
	e.CreatedAt = time.Time{}
	e.UpdatedAt = time.Time{}
	return e
}
