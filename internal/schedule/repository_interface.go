package schedule

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Create(ctx context.Context, trainerID, trainingTypeID int, start, end time.Time, capacity int) (*TimeSlot, error)
	GetByID(ctx context.Context, id int) (*TimeSlot, error)
	GetByIDWithDetails(ctx context.Context, id int) (*TimeSlotWithDetails, error)
	GetAllWithDetails(ctx context.Context) ([]TimeSlotWithDetails, error)
	GetByTrainerAndRange(ctx context.Context, trainerID int, start, end time.Time) ([]TimeSlotWithDetails, error)
	// HasOverlapping reports whether any slot of the trainer, regardless of
	// status, overlaps [start, end) under half-open comparison.
	HasOverlapping(ctx context.Context, trainerID int, start, end time.Time) (bool, error)
	MarkCancelled(ctx context.Context, id int) (*TimeSlot, error)
	// ClaimSpot atomically claims one spot. It reports false when the slot
	// was full, cancelled or missing, so a losing concurrent booker cannot
	// overbook. Runs on q so the caller can include it in a transaction.
	ClaimSpot(ctx context.Context, q sqlx.ExtContext, id int) (bool, error)
	// ReleaseSpot atomically frees one claimed spot, reopening a full slot.
	// Reports false when no spot was claimed.
	ReleaseSpot(ctx context.Context, q sqlx.ExtContext, id int) (bool, error)
	GetBookedClients(ctx context.Context, slotID int) ([]BookedClientInfo, error)
}
