package booking

import "errors"

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

var (
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrCancelCompleted  = errors.New("cannot cancel a completed booking")
)

// Cancel returns the status after a cancel request. Only CONFIRMED bookings
// can be cancelled; CANCELLED and COMPLETED are terminal.
func Cancel(s Status) (Status, error) {
	switch s {
	case StatusConfirmed:
		return StatusCancelled, nil
	case StatusCancelled:
		return s, ErrAlreadyCancelled
	case StatusCompleted:
		return s, ErrCancelCompleted
	default:
		return s, errors.New("unknown booking status")
	}
}
