package schedule

import "time"

type TimeSlot struct {
	ID             int       `db:"id" json:"id"`
	TrainerID      int       `db:"trainer_id" json:"trainer_id"`
	TrainingTypeID int       `db:"training_type_id" json:"training_type_id"`
	StartTime      time.Time `db:"start_time" json:"start_time"`
	EndTime        time.Time `db:"end_time" json:"end_time"`
	Capacity       int       `db:"capacity" json:"capacity"`
	BookedCount    int       `db:"booked_count" json:"booked_count"`
	Status         Status    `db:"status" json:"status"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// State extracts the capacity/status portion for FSM evaluation.
func (s *TimeSlot) State() State {
	return State{Status: s.Status, BookedCount: s.BookedCount, Capacity: s.Capacity}
}

func (s *TimeSlot) CanBeBooked() bool {
	return s.State().CanBeBooked()
}

// TimeSlotWithDetails is a slot joined with display fields for API reads.
// AvailableSpots is computed at the boundary, never stored.
type TimeSlotWithDetails struct {
	TimeSlot
	TrainerName      string `db:"trainer_name" json:"trainer_name"`
	TrainingTypeName string `db:"training_type_name" json:"training_type_name"`
	Category         string `db:"category" json:"category"`
	AvailableSpots   int    `db:"-" json:"available_spots"`
}

type CreateTimeSlotRequest struct {
	TrainerID      int       `json:"trainer_id" binding:"required"`
	TrainingTypeID int       `json:"training_type_id" binding:"required"`
	StartTime      time.Time `json:"start_time" binding:"required"`
	EndTime        time.Time `json:"end_time" binding:"required"`
	Capacity       *int      `json:"capacity"`
}

// BookedClientInfo is one confirmed booker of a slot.
type BookedClientInfo struct {
	ClientID  int       `db:"client_id" json:"client_id"`
	BookingID int       `db:"booking_id" json:"booking_id"`
	FullName  string    `db:"full_name" json:"full_name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	BookedAt  time.Time `db:"booked_at" json:"booked_at"`
}
