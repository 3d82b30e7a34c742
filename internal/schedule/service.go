package schedule

import (
	"context"
	"errors"
	"time"

	"fitbook/internal/logger"
	"fitbook/internal/metrics"
	"fitbook/internal/trainer"
	"fitbook/internal/trainingtype"
)

var (
	ErrSlotNotFound         = errors.New("time slot not found")
	ErrTrainerNotFound      = errors.New("trainer not found")
	ErrTrainingTypeNotFound = errors.New("training type not found")
	ErrInvalidInterval      = errors.New("start time must be before end time")
	ErrDurationMismatch     = errors.New("slot duration must match the training type duration")
	ErrOverlappingSlot      = errors.New("trainer already has an overlapping time slot")
	ErrInvalidCapacity      = errors.New("capacity is out of the allowed range")
)

type Service interface {
	CreateSlot(ctx context.Context, req CreateTimeSlotRequest) (*TimeSlot, error)
	CancelSlot(ctx context.Context, id int) (*TimeSlot, error)
	GetAll(ctx context.Context) ([]TimeSlotWithDetails, error)
	GetByID(ctx context.Context, id int) (*TimeSlotWithDetails, error)
	GetByTrainer(ctx context.Context, trainerID int, start, end time.Time) ([]TimeSlotWithDetails, error)
	GetBookedClients(ctx context.Context, slotID int) ([]BookedClientInfo, error)
}

type service struct {
	repo     Repository
	trainers trainer.Repository
	types    trainingtype.Repository
}

func NewService(repo Repository, trainers trainer.Repository, types trainingtype.Repository) Service {
	return &service{repo: repo, trainers: trainers, types: types}
}

// CreateSlot validates in a fixed order so the caller always receives the
// most specific error: interval shape, then catalog lookups, then schedule
// conflicts, then capacity.
func (s *service) CreateSlot(ctx context.Context, req CreateTimeSlotRequest) (*TimeSlot, error) {
	if !req.StartTime.Before(req.EndTime) {
		return nil, ErrInvalidInterval
	}

	tt, err := s.types.GetByID(ctx, req.TrainingTypeID)
	if err != nil {
		return nil, ErrTrainingTypeNotFound
	}

	duration := int(req.EndTime.Sub(req.StartTime).Minutes())
	if duration != tt.Duration {
		return nil, ErrDurationMismatch
	}

	exists, err := s.trainers.ExistsByID(ctx, req.TrainerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrTrainerNotFound
	}

	overlaps, err := s.repo.HasOverlapping(ctx, req.TrainerID, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if overlaps {
		return nil, ErrOverlappingSlot
	}

	capacity, err := resolveCapacity(req.Capacity, tt)
	if err != nil {
		return nil, err
	}

	slot, err := s.repo.Create(ctx, req.TrainerID, req.TrainingTypeID, req.StartTime, req.EndTime, capacity)
	if err != nil {
		return nil, err
	}

	metrics.RecordSlotCreated(tt.Category)
	logger.Info("time slot created",
		"slot_id", slot.ID,
		"trainer_id", slot.TrainerID,
		"capacity", slot.Capacity,
	)

	return slot, nil
}

func resolveCapacity(requested *int, tt *trainingtype.TrainingType) (int, error) {
	if requested == nil {
		if tt.Category == trainingtype.CategoryPersonal {
			return 1, nil
		}
		return tt.MaxClients, nil
	}

	capacity := *requested
	if capacity < 1 {
		return 0, ErrInvalidCapacity
	}
	if tt.Category == trainingtype.CategoryPersonal && capacity > 1 {
		return 0, ErrInvalidCapacity
	}
	if tt.Category == trainingtype.CategoryGroup && capacity > tt.MaxClients {
		return 0, ErrInvalidCapacity
	}

	return capacity, nil
}

func (s *service) CancelSlot(ctx context.Context, id int) (*TimeSlot, error) {
	slot, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrSlotNotFound
	}

	// The FSM decides legality; cancelling an already cancelled empty slot
	// passes through as a no-op.
	if _, err := Apply(slot.State(), EventCancel); err != nil {
		return nil, err
	}

	cancelled, err := s.repo.MarkCancelled(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.RecordSlotCancellation()
	logger.Info("time slot cancelled", "slot_id", id)

	return cancelled, nil
}

func (s *service) GetAll(ctx context.Context) ([]TimeSlotWithDetails, error) {
	slots, err := s.repo.GetAllWithDetails(ctx)
	if err != nil {
		return nil, err
	}

	fillAvailableSpots(slots)
	return slots, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*TimeSlotWithDetails, error) {
	slot, err := s.repo.GetByIDWithDetails(ctx, id)
	if err != nil {
		return nil, ErrSlotNotFound
	}

	slot.AvailableSpots = slot.Capacity - slot.BookedCount
	return slot, nil
}

func (s *service) GetByTrainer(ctx context.Context, trainerID int, start, end time.Time) ([]TimeSlotWithDetails, error) {
	exists, err := s.trainers.ExistsByID(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrTrainerNotFound
	}

	slots, err := s.repo.GetByTrainerAndRange(ctx, trainerID, start, end)
	if err != nil {
		return nil, err
	}

	fillAvailableSpots(slots)
	return slots, nil
}

func (s *service) GetBookedClients(ctx context.Context, slotID int) ([]BookedClientInfo, error) {
	if _, err := s.repo.GetByID(ctx, slotID); err != nil {
		return nil, ErrSlotNotFound
	}

	return s.repo.GetBookedClients(ctx, slotID)
}

func fillAvailableSpots(slots []TimeSlotWithDetails) {
	for i := range slots {
		slots[i].AvailableSpots = slots[i].Capacity - slots[i].BookedCount
	}
}
