package trainer

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"fitbook/internal/db"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) Create(ctx context.Context, q sqlx.ExtContext, userID int, bio string, specializations []string, personalPrice, groupPrice *float64) (*Trainer, error) {
	query := `
		INSERT INTO trainers (user_id, bio, specializations, personal_price, group_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, bio, specializations, personal_price, group_price
	`

	var tr Trainer
	err := sqlx.GetContext(ctx, q, &tr, query, userID, bio, pq.Array(specializations), personalPrice, groupPrice)
	if err != nil {
		return nil, err
	}

	return &tr, nil
}

func (r *repository) GetProfile(ctx context.Context, id int) (*Profile, error) {
	query := `
		SELECT
			t.id,
			t.user_id,
			t.bio,
			t.specializations,
			t.personal_price,
			t.group_price,
			u.full_name,
			u.email,
			u.phone
		FROM trainers t
		JOIN users u ON t.user_id = u.id
		WHERE t.id = $1
	`

	var p Profile
	if err := r.db.GetContext(ctx, &p, query, id); err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) GetAllProfiles(ctx context.Context) ([]Profile, error) {
	query := `
		SELECT
			t.id,
			t.user_id,
			t.bio,
			t.specializations,
			t.personal_price,
			t.group_price,
			u.full_name,
			u.email,
			u.phone
		FROM trainers t
		JOIN users u ON t.user_id = u.id
		ORDER BY u.full_name
	`

	profiles := []Profile{}
	if err := r.db.SelectContext(ctx, &profiles, query); err != nil {
		return nil, err
	}

	return profiles, nil
}

func (r *repository) FindByUserID(ctx context.Context, userID int) (*Trainer, error) {
	query := `
		SELECT id, user_id, bio, specializations, personal_price, group_price
		FROM trainers
		WHERE user_id = $1
	`

	var tr Trainer
	if err := r.db.GetContext(ctx, &tr, query, userID); err != nil {
		return nil, err
	}

	return &tr, nil
}

func (r *repository) ExistsByID(ctx context.Context, id int) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM trainers WHERE id = $1)`, id)
}

func (r *repository) UpdateProfile(ctx context.Context, q sqlx.ExtContext, id int, bio *string, specializations *[]string, personalPrice, groupPrice *float64) error {
	var specs interface{}
	if specializations != nil {
		specs = pq.Array(*specializations)
	}

	query := `
		UPDATE trainers
		SET bio = COALESCE($2, bio),
		    specializations = COALESCE($3, specializations),
		    personal_price = COALESCE($4, personal_price),
		    group_price = COALESCE($5, group_price)
		WHERE id = $1
	`

	_, err := q.ExecContext(ctx, query, id, bio, specs, personalPrice, groupPrice)
	return err
}

func (r *repository) UpdateUserContact(ctx context.Context, q sqlx.ExtContext, trainerID int, fullName, phone *string) error {
	query := `
		UPDATE users
		SET full_name = COALESCE($2, full_name),
		    phone = COALESCE($3, phone)
		WHERE id = (SELECT user_id FROM trainers WHERE id = $1)
	`

	_, err := q.ExecContext(ctx, query, trainerID, fullName, phone)
	return err
}

func (r *repository) ListTrainingTypeIDs(ctx context.Context, trainerID int) ([]int, error) {
	query := `
		SELECT training_type_id
		FROM trainer_training_types
		WHERE trainer_id = $1
		ORDER BY training_type_id
	`

	ids := []int{}
	if err := r.db.SelectContext(ctx, &ids, query, trainerID); err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *repository) ReplaceTrainingTypes(ctx context.Context, q sqlx.ExtContext, trainerID int, typeIDs []int) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM trainer_training_types WHERE trainer_id = $1`, trainerID); err != nil {
		return err
	}

	for _, typeID := range typeIDs {
		_, err := q.ExecContext(ctx, `INSERT INTO trainer_training_types (trainer_id, training_type_id) VALUES ($1, $2)`, trainerID, typeID)
		if err != nil {
			return err
		}
	}

	return nil
}
