package booking

import (
	"context"

	"github.com/jmoiron/sqlx"

	"fitbook/internal/db"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

const bookingColumns = `id, client_id, time_slot_id, trainer_id, status, booking_time`

const bookingDetailColumns = `
	b.id,
	b.client_id,
	b.time_slot_id,
	b.trainer_id,
	b.status,
	b.booking_time,
	cu.full_name AS client_name,
	cu.email AS client_email,
	tu.full_name AS trainer_name,
	tu.email AS trainer_email,
	tt.name AS training_type_name,
	ts.start_time,
	ts.end_time
`

const bookingDetailJoins = `
	FROM bookings b
	JOIN clients c ON b.client_id = c.id
	JOIN users cu ON c.user_id = cu.id
	JOIN trainers t ON b.trainer_id = t.id
	JOIN users tu ON t.user_id = tu.id
	JOIN time_slots ts ON b.time_slot_id = ts.id
	JOIN training_types tt ON ts.training_type_id = tt.id
`

func (r *repository) Insert(ctx context.Context, q sqlx.ExtContext, clientID, timeSlotID, trainerID int) (*Booking, error) {
	query := `
		INSERT INTO bookings (client_id, time_slot_id, trainer_id, status, booking_time)
		VALUES ($1, $2, $3, 'CONFIRMED', NOW())
		RETURNING ` + bookingColumns

	var b Booking
	err := sqlx.GetContext(ctx, q, &b, query, clientID, timeSlotID, trainerID)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Booking, error) {
	var b Booking
	err := r.db.GetContext(ctx, &b, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) MarkCancelled(ctx context.Context, q sqlx.ExtContext, id int) (bool, error) {
	query := `
		UPDATE bookings
		SET status = 'CANCELLED'
		WHERE id = $1
		  AND status = 'CONFIRMED'
	`

	res, err := q.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected == 1, nil
}

func (r *repository) HasActiveForClientAndSlot(ctx context.Context, clientID, timeSlotID int) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE client_id = $1
			  AND time_slot_id = $2
			  AND status <> 'CANCELLED'
		)
	`

	return db.Exists(ctx, r.db, query, clientID, timeSlotID)
}

func (r *repository) GetByClient(ctx context.Context, clientID int) ([]BookingWithDetails, error) {
	query := `SELECT ` + bookingDetailColumns + bookingDetailJoins + `
		WHERE b.client_id = $1
		ORDER BY ts.start_time DESC
	`

	bookings := []BookingWithDetails{}
	if err := r.db.SelectContext(ctx, &bookings, query, clientID); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) GetDetails(ctx context.Context, id int) (*BookingWithDetails, error) {
	query := `SELECT ` + bookingDetailColumns + bookingDetailJoins + `
		WHERE b.id = $1
	`

	var b BookingWithDetails
	if err := r.db.GetContext(ctx, &b, query, id); err != nil {
		return nil, err
	}

	return &b, nil
}
