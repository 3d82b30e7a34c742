package schedule

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"fitbook/internal/db"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

const slotColumns = `id, trainer_id, training_type_id, start_time, end_time, capacity, booked_count, status, created_at`

const slotDetailColumns = `
	ts.id,
	ts.trainer_id,
	ts.training_type_id,
	ts.start_time,
	ts.end_time,
	ts.capacity,
	ts.booked_count,
	ts.status,
	ts.created_at,
	u.full_name AS trainer_name,
	tt.name AS training_type_name,
	tt.category AS category
`

func (r *repository) Create(ctx context.Context, trainerID, trainingTypeID int, start, end time.Time, capacity int) (*TimeSlot, error) {
	query := `
		INSERT INTO time_slots (trainer_id, training_type_id, start_time, end_time, capacity, booked_count, status)
		VALUES ($1, $2, $3, $4, $5, 0, 'AVAILABLE')
		RETURNING ` + slotColumns

	var slot TimeSlot
	err := r.db.GetContext(ctx, &slot, query, trainerID, trainingTypeID, start, end, capacity)
	if err != nil {
		return nil, err
	}

	return &slot, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*TimeSlot, error) {
	var slot TimeSlot
	err := r.db.GetContext(ctx, &slot, `SELECT `+slotColumns+` FROM time_slots WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}

	return &slot, nil
}

func (r *repository) GetByIDWithDetails(ctx context.Context, id int) (*TimeSlotWithDetails, error) {
	query := `
		SELECT ` + slotDetailColumns + `
		FROM time_slots ts
		JOIN trainers t ON ts.trainer_id = t.id
		JOIN users u ON t.user_id = u.id
		JOIN training_types tt ON ts.training_type_id = tt.id
		WHERE ts.id = $1
	`

	var slot TimeSlotWithDetails
	if err := r.db.GetContext(ctx, &slot, query, id); err != nil {
		return nil, err
	}

	return &slot, nil
}

func (r *repository) GetAllWithDetails(ctx context.Context) ([]TimeSlotWithDetails, error) {
	query := `
		SELECT ` + slotDetailColumns + `
		FROM time_slots ts
		JOIN trainers t ON ts.trainer_id = t.id
		JOIN users u ON t.user_id = u.id
		JOIN training_types tt ON ts.training_type_id = tt.id
		ORDER BY ts.start_time
	`

	slots := []TimeSlotWithDetails{}
	if err := r.db.SelectContext(ctx, &slots, query); err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *repository) GetByTrainerAndRange(ctx context.Context, trainerID int, start, end time.Time) ([]TimeSlotWithDetails, error) {
	query := `
		SELECT ` + slotDetailColumns + `
		FROM time_slots ts
		JOIN trainers t ON ts.trainer_id = t.id
		JOIN users u ON t.user_id = u.id
		JOIN training_types tt ON ts.training_type_id = tt.id
		WHERE ts.trainer_id = $1
		  AND ts.start_time >= $2
		  AND ts.start_time < $3
		ORDER BY ts.start_time
	`

	slots := []TimeSlotWithDetails{}
	if err := r.db.SelectContext(ctx, &slots, query, trainerID, start, end); err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *repository) HasOverlapping(ctx context.Context, trainerID int, start, end time.Time) (bool, error) {
	// Half-open interval comparison; status is deliberately not filtered.
	query := `
		SELECT EXISTS(
			SELECT 1 FROM time_slots
			WHERE trainer_id = $1
			  AND start_time < $3
			  AND end_time > $2
		)
	`

	return db.Exists(ctx, r.db, query, trainerID, start, end)
}

func (r *repository) MarkCancelled(ctx context.Context, id int) (*TimeSlot, error) {
	query := `
		UPDATE time_slots
		SET status = 'CANCELLED'
		WHERE id = $1
		RETURNING ` + slotColumns

	var slot TimeSlot
	if err := r.db.GetContext(ctx, &slot, query, id); err != nil {
		return nil, err
	}

	return &slot, nil
}

func (r *repository) ClaimSpot(ctx context.Context, q sqlx.ExtContext, id int) (bool, error) {
	// Single-statement compare-and-swap: the WHERE clause re-checks
	// availability so two concurrent bookers cannot both claim the last
	// spot. The loser matches zero rows.
	query := `
		UPDATE time_slots
		SET booked_count = booked_count + 1,
		    status = CASE WHEN booked_count + 1 >= capacity THEN 'BOOKED' ELSE status END
		WHERE id = $1
		  AND status = 'AVAILABLE'
		  AND booked_count < capacity
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

func (r *repository) ReleaseSpot(ctx context.Context, q sqlx.ExtContext, id int) (bool, error) {
	// Mirror of ClaimSpot. A cancelled slot keeps its status; only a full
	// slot flips back to AVAILABLE.
	query := `
		UPDATE time_slots
		SET booked_count = booked_count - 1,
		    status = CASE WHEN status = 'BOOKED' THEN 'AVAILABLE' ELSE status END
		WHERE id = $1
		  AND booked_count > 0
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

func (r *repository) GetBookedClients(ctx context.Context, slotID int) ([]BookedClientInfo, error) {
	query := `
		SELECT
			c.id AS client_id,
			b.id AS booking_id,
			u.full_name,
			u.email,
			u.phone,
			b.booking_time AS booked_at
		FROM bookings b
		JOIN clients c ON b.client_id = c.id
		JOIN users u ON c.user_id = u.id
		WHERE b.time_slot_id = $1
		  AND b.status = 'CONFIRMED'
		ORDER BY b.booking_time
	`

	clients := []BookedClientInfo{}
	if err := r.db.SelectContext(ctx, &clients, query, slotID); err != nil {
		return nil, err
	}

	return clients, nil
}
