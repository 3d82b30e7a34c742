package trainingtype

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("training type not found")
	ErrNameTaken = errors.New("a training type with this name already exists")
)

type Service interface {
	GetAll(ctx context.Context) ([]TrainingType, error)
	Create(ctx context.Context, req CreateTrainingTypeRequest) (*TrainingType, error)
	Update(ctx context.Context, id int, req UpdateTrainingTypeRequest) (*TrainingType, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context) ([]TrainingType, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) Create(ctx context.Context, req CreateTrainingTypeRequest) (*TrainingType, error) {
	taken, err := s.repo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrNameTaken
	}

	return s.repo.Create(ctx, req.Name, req.Description, req.Duration, req.Category, req.MaxClients)
}

func (s *service) Update(ctx context.Context, id int, req UpdateTrainingTypeRequest) (*TrainingType, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	// Name uniqueness is rechecked only when the name actually changes.
	if existing.Name != req.Name {
		taken, err := s.repo.ExistsByName(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrNameTaken
		}
	}

	return s.repo.Update(ctx, id, req.Name, req.Description, req.Duration, req.Category, req.MaxClients)
}

func (s *service) Delete(ctx context.Context, id int) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}

	return s.repo.Delete(ctx, id)
}
