package client

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"fitbook/internal/db"
)

var (
	ErrProfileNotFound    = errors.New("client profile not found")
	ErrInvalidDateOfBirth = errors.New("invalid date of birth format, use YYYY-MM-DD")
)

type Service interface {
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

func (s *service) GetProfile(ctx context.Context, id int) (*Profile, error) {
	profile, err := s.repo.GetProfile(ctx, id)
	if err != nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

func (s *service) UpdateProfile(ctx context.Context, id int, req UpdateProfileRequest) (*Profile, error) {
	if _, err := s.repo.GetProfile(ctx, id); err != nil {
		return nil, ErrProfileNotFound
	}

	var dateOfBirth *time.Time
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateOfBirth
		}
		dateOfBirth = &parsed
	}

	// The user row and the client row are updated as one unit.
	err := db.WithinTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateUserContact(ctx, tx, id, req.FullName, req.Phone); err != nil {
			return err
		}
		return s.repo.UpdateProfile(ctx, tx, id, dateOfBirth, req.HealthInformation, req.FitnessGoals)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetProfile(ctx, id)
}
