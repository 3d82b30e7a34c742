package booking

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"fitbook/internal/client"
	"fitbook/internal/db"
	"fitbook/internal/logger"
	"fitbook/internal/metrics"
	"fitbook/internal/schedule"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrClientNotFound  = errors.New("client not found")
	ErrAlreadyBooked   = errors.New("client already has an active booking for this time slot")
	ErrPastSlot        = errors.New("cannot book a time slot in the past")
)

// Notifier is the slice of the email service the booking flow needs.
type Notifier interface {
	SendBookingConfirmationToClient(ctx context.Context, to, clientName, trainingType, trainerName, date, timeRange string) error
	SendBookingNotificationToTrainer(ctx context.Context, to, trainerName, clientName, trainingType, date, timeRange string) error
	SendCancellationToClient(ctx context.Context, to, clientName, trainingType, trainerName, date, timeRange string) error
	SendCancellationToTrainer(ctx context.Context, to, trainerName, clientName, trainingType, date, timeRange string) error
}

type Service interface {
	CreateBooking(ctx context.Context, clientID, timeSlotID int) (*Booking, error)
	CancelBooking(ctx context.Context, id int) (*Booking, error)
	GetByClient(ctx context.Context, clientID int) ([]BookingWithDetails, error)
}

type service struct {
	db       *sqlx.DB
	repo     Repository
	slots    schedule.Repository
	clients  client.Repository
	notifier Notifier
	now      func() time.Time
}

func NewService(database *sqlx.DB, repo Repository, slots schedule.Repository, clients client.Repository, notifier Notifier) Service {
	return &service{
		db:       database,
		repo:     repo,
		slots:    slots,
		clients:  clients,
		notifier: notifier,
		now:      time.Now,
	}
}

// CreateBooking validates in a fixed order so the caller always receives the
// most specific error: existence before state, state before time. A slot
// that is both full and in the past reports the conflict, not the bad
// request.
func (s *service) CreateBooking(ctx context.Context, clientID, timeSlotID int) (*Booking, error) {
	exists, err := s.clients.ExistsByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrClientNotFound
	}

	slot, err := s.slots.GetByID(ctx, timeSlotID)
	if err != nil {
		return nil, schedule.ErrSlotNotFound
	}

	if !slot.CanBeBooked() {
		metrics.RecordBookingConflict("slot_unavailable")
		return nil, schedule.ErrSlotUnavailable
	}

	active, err := s.repo.HasActiveForClientAndSlot(ctx, clientID, timeSlotID)
	if err != nil {
		return nil, err
	}
	if active {
		metrics.RecordBookingConflict("duplicate_booking")
		return nil, ErrAlreadyBooked
	}

	if slot.StartTime.Before(s.now()) {
		return nil, ErrPastSlot
	}

	// The spot claim and the booking row are one atomic unit. The claim is
	// a guarded UPDATE, so a concurrent booker racing for the last spot
	// loses here and the whole transaction rolls back.
	var created *Booking
	err = db.WithinTx(ctx, s.db, func(tx *sqlx.Tx) error {
		claimed, err := s.slots.ClaimSpot(ctx, tx, timeSlotID)
		if err != nil {
			return err
		}
		if !claimed {
			metrics.RecordBookingConflict("lost_claim_race")
			return schedule.ErrSlotUnavailable
		}

		created, err = s.repo.Insert(ctx, tx, clientID, timeSlotID, slot.TrainerID)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordBooking()
	logger.Info("booking created",
		"booking_id", created.ID,
		"client_id", clientID,
		"slot_id", timeSlotID,
	)

	s.notifyBooked(ctx, created.ID)

	return created, nil
}

func (s *service) CancelBooking(ctx context.Context, id int) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	if _, err := Cancel(b.Status); err != nil {
		return nil, err
	}

	// Status flip and spot release commit together or not at all. The
	// guarded UPDATE catches a concurrent cancel of the same booking.
	err = db.WithinTx(ctx, s.db, func(tx *sqlx.Tx) error {
		cancelled, err := s.repo.MarkCancelled(ctx, tx, id)
		if err != nil {
			return err
		}
		if !cancelled {
			return ErrAlreadyCancelled
		}

		released, err := s.slots.ReleaseSpot(ctx, tx, b.TimeSlotID)
		if err != nil {
			return err
		}
		if !released {
			return schedule.ErrNoClaimedSpots
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordBookingCancellation()
	logger.Info("booking cancelled", "booking_id", id, "slot_id", b.TimeSlotID)

	s.notifyCancelled(ctx, id)

	b.Status = StatusCancelled
	return b, nil
}

func (s *service) GetByClient(ctx context.Context, clientID int) ([]BookingWithDetails, error) {
	exists, err := s.clients.ExistsByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrClientNotFound
	}

	bookings, err := s.repo.GetByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	for i := range bookings {
		bookings[i].FormatSchedule()
	}

	return bookings, nil
}

// notifyBooked dispatches the confirmation emails. Failures are logged and
// never surfaced; the booking is already committed.
func (s *service) notifyBooked(ctx context.Context, bookingID int) {
	if s.notifier == nil {
		return
	}

	d, err := s.repo.GetDetails(ctx, bookingID)
	if err != nil {
		logger.Error("failed to load booking details for notification", "booking_id", bookingID, "error", err)
		return
	}
	d.FormatSchedule()

	if err := s.notifier.SendBookingConfirmationToClient(ctx, d.ClientEmail, d.ClientName, d.TrainingTypeName, d.TrainerName, d.FormattedDate, d.FormattedTime); err != nil {
		logger.Error("failed to send booking confirmation", "booking_id", bookingID, "error", err)
	}
	if err := s.notifier.SendBookingNotificationToTrainer(ctx, d.TrainerEmail, d.TrainerName, d.ClientName, d.TrainingTypeName, d.FormattedDate, d.FormattedTime); err != nil {
		logger.Error("failed to send booking notification", "booking_id", bookingID, "error", err)
	}
}

func (s *service) notifyCancelled(ctx context.Context, bookingID int) {
	if s.notifier == nil {
		return
	}

	d, err := s.repo.GetDetails(ctx, bookingID)
	if err != nil {
		logger.Error("failed to load booking details for notification", "booking_id", bookingID, "error", err)
		return
	}
	d.FormatSchedule()

	if err := s.notifier.SendCancellationToClient(ctx, d.ClientEmail, d.ClientName, d.TrainingTypeName, d.TrainerName, d.FormattedDate, d.FormattedTime); err != nil {
		logger.Error("failed to send cancellation email", "booking_id", bookingID, "error", err)
	}
	if err := s.notifier.SendCancellationToTrainer(ctx, d.TrainerEmail, d.TrainerName, d.ClientName, d.TrainingTypeName, d.FormattedDate, d.FormattedTime); err != nil {
		logger.Error("failed to send cancellation email", "booking_id", bookingID, "error", err)
	}
}
