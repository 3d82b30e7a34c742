package user

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"fitbook/internal/auth"
	"fitbook/internal/client"
	"fitbook/internal/db"
	"fitbook/internal/trainer"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidDateOfBirth = errors.New("invalid date of birth format, use YYYY-MM-DD")
	ErrInvalidAge         = errors.New("clients must be between 16 and 100 years old")
	ErrInvalidPrice       = errors.New("prices must be positive")
	ErrUserNotFound       = errors.New("user not found")
)

const (
	minClientAge = 16
	maxClientAge = 100
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	GetByID(ctx context.Context, userID int) (*User, error)
}

type service struct {
	db        *sqlx.DB
	repo      Repository
	clients   client.Repository
	trainers  trainer.Repository
	jwtSecret string
	now       func() time.Time
}

func NewService(database *sqlx.DB, repo Repository, clients client.Repository, trainers trainer.Repository, jwtSecret string) Service {
	return &service{
		db:        database,
		repo:      repo,
		clients:   clients,
		trainers:  trainers,
		jwtSecret: jwtSecret,
		now:       time.Now,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	role := req.Role
	if role == "" {
		role = RoleClient
	}

	var dateOfBirth *time.Time
	if role == RoleClient && req.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateOfBirth
		}
		if age := yearsBetween(parsed, s.now()); age < minClientAge || age > maxClientAge {
			return nil, ErrInvalidAge
		}
		dateOfBirth = &parsed
	}

	if role == RoleTrainer {
		if req.PersonalPrice != nil && *req.PersonalPrice <= 0 {
			return nil, ErrInvalidPrice
		}
		if req.GroupPrice != nil && *req.GroupPrice <= 0 {
			return nil, ErrInvalidPrice
		}
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	// The user row and its profile row are created as one unit.
	var created *User
	var profileID int
	err = db.WithinTx(ctx, s.db, func(tx *sqlx.Tx) error {
		u, err := s.repo.Create(ctx, tx, req.Email, passwordHash, req.FullName, req.Phone, role)
		if err != nil {
			return err
		}
		created = u

		switch role {
		case RoleTrainer:
			tr, err := s.trainers.Create(ctx, tx, u.ID, req.Bio, req.Specializations, req.PersonalPrice, req.GroupPrice)
			if err != nil {
				return err
			}
			profileID = tr.ID
		default:
			cl, err := s.clients.Create(ctx, tx, u.ID, dateOfBirth, req.HealthInformation, req.FitnessGoals)
			if err != nil {
				return err
			}
			profileID = cl.ID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := auth.GenerateToken(created.ID, created.Email, created.Role, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		UserID:    created.ID,
		Email:     created.Email,
		FullName:  created.FullName,
		Role:      created.Role,
		ProfileID: profileID,
		Token:     token,
	}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	profileID, err := s.resolveProfileID(ctx, u)
	if err != nil {
		return nil, err
	}

	token, err := auth.GenerateToken(u.ID, u.Email, u.Role, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		UserID:    u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		ProfileID: profileID,
		Token:     token,
	}, nil
}

func (s *service) GetByID(ctx context.Context, userID int) (*User, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *service) resolveProfileID(ctx context.Context, u *User) (int, error) {
	if u.Role == RoleTrainer {
		tr, err := s.trainers.FindByUserID(ctx, u.ID)
		if err != nil {
			return 0, err
		}
		return tr.ID, nil
	}

	cl, err := s.clients.FindByUserID(ctx, u.ID)
	if err != nil {
		return 0, err
	}
	return cl.ID, nil
}

// yearsBetween returns full years elapsed from birth to now.
func yearsBetween(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	anniversary := birth.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}
