package trainingtype

import "context"

type Repository interface {
	GetAll(ctx context.Context) ([]TrainingType, error)
	GetByID(ctx context.Context, id int) (*TrainingType, error)
	ExistsByID(ctx context.Context, id int) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, name, description string, duration int, category string, maxClients int) (*TrainingType, error)
	Update(ctx context.Context, id int, name, description string, duration int, category string, maxClients int) (*TrainingType, error)
	Delete(ctx context.Context, id int) error
}
