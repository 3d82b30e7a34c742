package client

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

func (r *repository) Create(ctx context.Context, q sqlx.ExtContext, userID int, dateOfBirth *time.Time, healthInformation, fitnessGoals string) (*Client, error) {
	query := `
		INSERT INTO clients (user_id, date_of_birth, health_information, fitness_goals)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, date_of_birth, health_information, fitness_goals
	`

	var cl Client
	err := sqlx.GetContext(ctx, q, &cl, query, userID, dateOfBirth, healthInformation, fitnessGoals)
	if err != nil {
		return nil, err
	}

	return &cl, nil
}

func (r *repository) GetProfile(ctx context.Context, id int) (*Profile, error) {
	query := `
		SELECT
			c.id,
			c.user_id,
			c.date_of_birth,
			c.health_information,
			c.fitness_goals,
			u.full_name,
			u.email,
			u.phone
		FROM clients c
		JOIN users u ON c.user_id = u.id
		WHERE c.id = $1
	`

	var p Profile
	err := r.db.GetContext(ctx, &p, query, id)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) FindByUserID(ctx context.Context, userID int) (*Client, error) {
	query := `
		SELECT id, user_id, date_of_birth, health_information, fitness_goals
		FROM clients
		WHERE user_id = $1
	`

	var cl Client
	err := r.db.GetContext(ctx, &cl, query, userID)
	if err != nil {
		return nil, err
	}

	return &cl, nil
}

func (r *repository) ExistsByID(ctx context.Context, id int) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM clients WHERE id = $1)`, id)
}

func (r *repository) UpdateProfile(ctx context.Context, q sqlx.ExtContext, id int, dateOfBirth *time.Time, healthInformation, fitnessGoals *string) error {
	query := `
		UPDATE clients
		SET date_of_birth = COALESCE($2, date_of_birth),
		    health_information = COALESCE($3, health_information),
		    fitness_goals = COALESCE($4, fitness_goals)
		WHERE id = $1
	`

	_, err := q.ExecContext(ctx, query, id, dateOfBirth, healthInformation, fitnessGoals)
	return err
}

func (r *repository) UpdateUserContact(ctx context.Context, q sqlx.ExtContext, clientID int, fullName, phone *string) error {
	query := `
		UPDATE users
		SET full_name = COALESCE($2, full_name),
		    phone = COALESCE($3, phone)
		WHERE id = (SELECT user_id FROM clients WHERE id = $1)
	`

	_, err := q.ExecContext(ctx, query, clientID, fullName, phone)
	return err
}
