package booking

import "time"

type Booking struct {
	ID          int       `db:"id" json:"id"`
	ClientID    int       `db:"client_id" json:"client_id"`
	TimeSlotID  int       `db:"time_slot_id" json:"time_slot_id"`
	TrainerID   int       `db:"trainer_id" json:"trainer_id"`
	Status      Status    `db:"status" json:"status"`
	BookingTime time.Time `db:"booking_time" json:"booking_time"`
}

// BookingWithDetails is a booking joined with display fields. The email
// addresses are carried for notification dispatch and never serialized.
// Formatted date/time are computed at the boundary, not stored.
type BookingWithDetails struct {
	Booking
	ClientName       string    `db:"client_name" json:"client_name"`
	ClientEmail      string    `db:"client_email" json:"-"`
	TrainerName      string    `db:"trainer_name" json:"trainer_name"`
	TrainerEmail     string    `db:"trainer_email" json:"-"`
	TrainingTypeName string    `db:"training_type_name" json:"training_type_name"`
	StartTime        time.Time `db:"start_time" json:"start_time"`
	EndTime          time.Time `db:"end_time" json:"end_time"`
	FormattedDate    string    `db:"-" json:"formatted_date"`
	FormattedTime    string    `db:"-" json:"formatted_time"`
}

// FormatSchedule fills the human-readable date and time range.
func (b *BookingWithDetails) FormatSchedule() {
	b.FormattedDate = b.StartTime.Format("02.01.2006")
	b.FormattedTime = b.StartTime.Format("15:04") + " - " + b.EndTime.Format("15:04")
}

type CreateBookingRequest struct {
	TimeSlotID int `json:"time_slot_id" binding:"required"`
}
