package trainer

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"fitbook/internal/db"
)

var (
	ErrProfileNotFound = errors.New("trainer profile not found")
	ErrInvalidPrice    = errors.New("prices must be positive")
)

type Service interface {
	GetAll(ctx context.Context) ([]Profile, error)
	GetProfile(ctx context.Context, id int) (*Profile, error)
	UpdateProfile(ctx context.Context, id int, req UpdateProfileRequest) (*Profile, error)
}

type service struct {
	db   *sqlx.DB
	repo Repository
}

func NewService(database *sqlx.DB, repo Repository) Service {
	return &service{db: database, repo: repo}
}

func (s *service) GetAll(ctx context.Context) ([]Profile, error) {
	profiles, err := s.repo.GetAllProfiles(ctx)
	if err != nil {
		return nil, err
	}

	for i := range profiles {
		ids, err := s.repo.ListTrainingTypeIDs(ctx, profiles[i].ID)
		if err != nil {
			return nil, err
		}
		profiles[i].TrainingTypeIDs = ids
	}

	return profiles, nil
}

func (s *service) GetProfile(ctx context.Context, id int) (*Profile, error) {
	profile, err := s.repo.GetProfile(ctx, id)
	if err != nil {
		return nil, ErrProfileNotFound
	}

	ids, err := s.repo.ListTrainingTypeIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	profile.TrainingTypeIDs = ids

	return profile, nil
}

func (s *service) UpdateProfile(ctx context.Context, id int, req UpdateProfileRequest) (*Profile, error) {
	if _, err := s.repo.GetProfile(ctx, id); err != nil {
		return nil, ErrProfileNotFound
	}

	if req.PersonalPrice != nil && *req.PersonalPrice <= 0 {
		return nil, ErrInvalidPrice
	}
	if req.GroupPrice != nil && *req.GroupPrice <= 0 {
		return nil, ErrInvalidPrice
	}

	// The user row, the trainer row and the offered-types join table are
	// updated as one unit.
	err := db.WithinTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateUserContact(ctx, tx, id, req.FullName, req.Phone); err != nil {
			return err
		}
		if err := s.repo.UpdateProfile(ctx, tx, id, req.Bio, req.Specializations, req.PersonalPrice, req.GroupPrice); err != nil {
			return err
		}
		if req.TrainingTypeIDs != nil {
			return s.repo.ReplaceTrainingTypes(ctx, tx, id, *req.TrainingTypeIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, id)
}
