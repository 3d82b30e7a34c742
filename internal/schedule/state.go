package schedule

import "errors"

type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusBooked    Status = "BOOKED"
	StatusCancelled Status = "CANCELLED"
)

// Event is a slot state transition trigger.
type Event int

const (
	// EventBook claims one spot on the slot.
	EventBook Event = iota
	// EventRelease frees one previously claimed spot.
	EventRelease
	// EventCancel cancels the slot; only legal while no spots are claimed.
	EventCancel
)

var (
	ErrSlotUnavailable = errors.New("time slot is already full or cancelled")
	ErrNoClaimedSpots  = errors.New("time slot has no claimed spots to release")
	ErrSlotHasBookings = errors.New("time slot has active bookings and cannot be cancelled")
)

// State is the capacity-and-status portion of a time slot. Transitions are
// pure so they can be reasoned about and tested apart from persistence; the
// repository's guarded UPDATE statements enforce the same rules atomically.
type State struct {
	Status      Status
	BookedCount int
	Capacity    int
}

// CanBeBooked reports whether one more spot can be claimed.
func (s State) CanBeBooked() bool {
	return s.Status == StatusAvailable && s.BookedCount < s.Capacity
}

// Apply returns the state after ev, or an error when the transition is
// illegal. The input state is never mutated.
func Apply(s State, ev Event) (State, error) {
	switch ev {
	case EventBook:
		if !s.CanBeBooked() {
			return s, ErrSlotUnavailable
		}
		s.BookedCount++
		if s.BookedCount == s.Capacity {
			s.Status = StatusBooked
		}
		return s, nil

	case EventRelease:
		if s.BookedCount <= 0 {
			return s, ErrNoClaimedSpots
		}
		s.BookedCount--
		// A cancelled slot stays cancelled; only a full slot reopens.
		if s.Status == StatusBooked && s.BookedCount < s.Capacity {
			s.Status = StatusAvailable
		}
		return s, nil

	case EventCancel:
		if s.BookedCount > 0 {
			return s, ErrSlotHasBookings
		}
		s.Status = StatusCancelled
		return s, nil

	default:
		return s, errors.New("unknown slot event")
	}
}
