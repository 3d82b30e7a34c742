package client

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	// Create inserts a client profile row. It takes a sqlx.ExtContext so
	// registration can run it in the same transaction as the user insert.
	Create(ctx context.Context, q sqlx.ExtContext, userID int, dateOfBirth *time.Time, healthInformation, fitnessGoals string) (*Client, error)
	GetProfile(ctx context.Context, id int) (*Profile, error)
	FindByUserID(ctx context.Context, userID int) (*Client, error)
	ExistsByID(ctx context.Context, id int) (bool, error)
	UpdateProfile(ctx context.Context, q sqlx.ExtContext, id int, dateOfBirth *time.Time, healthInformation, fitnessGoals *string) error
	UpdateUserContact(ctx context.Context, q sqlx.ExtContext, clientID int, fullName, phone *string) error
}
