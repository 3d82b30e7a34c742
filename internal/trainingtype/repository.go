package trainingtype

import (
	"context"

	"github.com/jmoiron/sqlx"

	"fitbook/internal/db"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) GetAll(ctx context.Context) ([]TrainingType, error) {
	query := `
		SELECT id, name, description, duration, category, max_clients
		FROM training_types
		ORDER BY name ASC
	`

	var types []TrainingType
	err := r.db.SelectContext(ctx, &types, query)
	if err != nil {
		return nil, err
	}

	return types, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*TrainingType, error) {
	query := `
		SELECT id, name, description, duration, category, max_clients
		FROM training_types
		WHERE id = $1
	`

	var tt TrainingType
	err := r.db.GetContext(ctx, &tt, query, id)
	if err != nil {
		return nil, err
	}

	return &tt, nil
}

func (r *repository) ExistsByID(ctx context.Context, id int) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM training_types WHERE id = $1)`, id)
}

func (r *repository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM training_types WHERE name = $1)`, name)
}

func (r *repository) Create(ctx context.Context, name, description string, duration int, category string, maxClients int) (*TrainingType, error) {
	query := `
		INSERT INTO training_types (name, description, duration, category, max_clients)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, description, duration, category, max_clients
	`

	var tt TrainingType
	err := r.db.GetContext(ctx, &tt, query, name, description, duration, category, maxClients)
	if err != nil {
		return nil, err
	}

	return &tt, nil
}

func (r *repository) Update(ctx context.Context, id int, name, description string, duration int, category string, maxClients int) (*TrainingType, error) {
	query := `
		UPDATE training_types
		SET name = $2, description = $3, duration = $4, category = $5, max_clients = $6
		WHERE id = $1
		RETURNING id, name, description, duration, category, max_clients
	`

	var tt TrainingType
	err := r.db.GetContext(ctx, &tt, query, id, name, description, duration, category, maxClients)
	if err != nil {
		return nil, err
	}

	return &tt, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM training_types WHERE id = $1`, id)
	return err
}
