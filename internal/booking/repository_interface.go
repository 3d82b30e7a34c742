package booking

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	// Insert creates a CONFIRMED booking. It takes a sqlx.ExtContext so the
	// caller can pair it with the slot's spot claim in one transaction.
	Insert(ctx context.Context, q sqlx.ExtContext, clientID, timeSlotID, trainerID int) (*Booking, error)
	GetByID(ctx context.Context, id int) (*Booking, error)
	// MarkCancelled flips a CONFIRMED booking to CANCELLED and reports
	// whether a row was affected; the status guard lives in the statement.
	MarkCancelled(ctx context.Context, q sqlx.ExtContext, id int) (bool, error)
	HasActiveForClientAndSlot(ctx context.Context, clientID, timeSlotID int) (bool, error)
	GetByClient(ctx context.Context, clientID int) ([]BookingWithDetails, error)
	GetDetails(ctx context.Context, id int) (*BookingWithDetails, error)
}
