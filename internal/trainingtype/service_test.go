package trainingtype

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepo struct{ mock.Mock }

func (m *MockRepo) GetAll(ctx context.Context) ([]TrainingType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]TrainingType), args.Error(1)
}

func (m *MockRepo) GetByID(ctx context.Context, id int) (*TrainingType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TrainingType), args.Error(1)
}

func (m *MockRepo) ExistsByID(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepo) Create(ctx context.Context, name, description string, duration int, category string, maxClients int) (*TrainingType, error) {
	args := m.Called(ctx, name, description, duration, category, maxClients)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TrainingType), args.Error(1)
}

func (m *MockRepo) Update(ctx context.Context, id int, name, description string, duration int, category string, maxClients int) (*TrainingType, error) {
	args := m.Called(ctx, id, name, description, duration, category, maxClients)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TrainingType), args.Error(1)
}

func (m *MockRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func TestCreateTrainingType(t *testing.T) {
	repo := new(MockRepo)
	repo.On("ExistsByName", mock.Anything, "Yoga").Return(false, nil)
	repo.On("Create", mock.Anything, "Yoga", "Slow flow", 60, CategoryGroup, 10).Return(&TrainingType{
		ID:         1,
		Name:       "Yoga",
		Duration:   60,
		Category:   CategoryGroup,
		MaxClients: 10,
	}, nil)

	svc := NewService(repo)

	tt, err := svc.Create(context.Background(), CreateTrainingTypeRequest{
		Name:        "Yoga",
		Description: "Slow flow",
		Duration:    60,
		Category:    CategoryGroup,
		MaxClients:  10,
	})

	require.NoError(t, err)
	assert.Equal(t, "Yoga", tt.Name)
	repo.AssertExpectations(t)
}

func TestCreateTrainingTypeDuplicateName(t *testing.T) {
	repo := new(MockRepo)
	repo.On("ExistsByName", mock.Anything, "Yoga").Return(true, nil)

	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateTrainingTypeRequest{
		Name:     "Yoga",
		Duration: 60,
		Category: CategoryGroup,
	})

	assert.ErrorIs(t, err, ErrNameTaken)
	repo.AssertNotCalled(t, "Create")
}

func TestUpdateTrainingTypeRename(t *testing.T) {
	repo := new(MockRepo)
	repo.On("GetByID", mock.Anything, 1).Return(&TrainingType{ID: 1, Name: "Yoga", Duration: 60, Category: CategoryGroup, MaxClients: 10}, nil)
	repo.On("ExistsByName", mock.Anything, "Power Yoga").Return(false, nil)
	repo.On("Update", mock.Anything, 1, "Power Yoga", "", 60, CategoryGroup, 10).Return(&TrainingType{ID: 1, Name: "Power Yoga", Duration: 60, Category: CategoryGroup, MaxClients: 10}, nil)

	svc := NewService(repo)

	tt, err := svc.Update(context.Background(), 1, UpdateTrainingTypeRequest{
		Name:       "Power Yoga",
		Duration:   60,
		Category:   CategoryGroup,
		MaxClients: 10,
	})

	require.NoError(t, err)
	assert.Equal(t, "Power Yoga", tt.Name)
	repo.AssertExpectations(t)
}

func TestUpdateTrainingTypeRenameTaken(t *testing.T) {
	repo := new(MockRepo)
	repo.On("GetByID", mock.Anything, 1).Return(&TrainingType{ID: 1, Name: "Yoga", Duration: 60, Category: CategoryGroup, MaxClients: 10}, nil)
	repo.On("ExistsByName", mock.Anything, "Pilates").Return(true, nil)

	svc := NewService(repo)

	_, err := svc.Update(context.Background(), 1, UpdateTrainingTypeRequest{
		Name:       "Pilates",
		Duration:   60,
		Category:   CategoryGroup,
		MaxClients: 10,
	})

	assert.ErrorIs(t, err, ErrNameTaken)
	repo.AssertNotCalled(t, "Update")
}

func TestUpdateTrainingTypeSameNameSkipsUniquenessCheck(t *testing.T) {
	repo := new(MockRepo)
	repo.On("GetByID", mock.Anything, 1).Return(&TrainingType{ID: 1, Name: "Yoga", Duration: 60, Category: CategoryGroup, MaxClients: 10}, nil)
	repo.On("Update", mock.Anything, 1, "Yoga", "New description", 45, CategoryGroup, 12).Return(&TrainingType{ID: 1, Name: "Yoga", Description: "New description", Duration: 45, Category: CategoryGroup, MaxClients: 12}, nil)

	svc := NewService(repo)

	tt, err := svc.Update(context.Background(), 1, UpdateTrainingTypeRequest{
		Name:        "Yoga",
		Description: "New description",
		Duration:    45,
		Category:    CategoryGroup,
		MaxClients:  12,
	})

	require.NoError(t, err)
	assert.Equal(t, 45, tt.Duration)
	repo.AssertNotCalled(t, "ExistsByName")
}

func TestDeleteTrainingTypeNotFound(t *testing.T) {
	repo := new(MockRepo)
	repo.On("ExistsByID", mock.Anything, 99).Return(false, nil)

	svc := NewService(repo)

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertNotCalled(t, "Delete")
}
