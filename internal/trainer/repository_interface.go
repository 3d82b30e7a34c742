package trainer

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	// Create inserts a trainer profile row. It takes a sqlx.ExtContext so
	// registration can run it in the same transaction as the user insert.
	Create(ctx context.Context, q sqlx.ExtContext, userID int, bio string, specializations []string, personalPrice, groupPrice *float64) (*Trainer, error)
	GetProfile(ctx context.Context, id int) (*Profile, error)
	GetAllProfiles(ctx context.Context) ([]Profile, error)
	FindByUserID(ctx context.Context, userID int) (*Trainer, error)
	ExistsByID(ctx context.Context, id int) (bool, error)
	UpdateProfile(ctx context.Context, q sqlx.ExtContext, id int, bio *string, specializations *[]string, personalPrice, groupPrice *float64) error
	UpdateUserContact(ctx context.Context, q sqlx.ExtContext, trainerID int, fullName, phone *string) error
	ListTrainingTypeIDs(ctx context.Context, trainerID int) ([]int, error)
	ReplaceTrainingTypes(ctx context.Context, q sqlx.ExtContext, trainerID int, typeIDs []int) error
}
