package client

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepo struct{ mock.Mock }

func (m *MockRepo) Create(ctx context.Context, q sqlx.ExtContext, userID int, dateOfBirth *time.Time, healthInformation, fitnessGoals string) (*Client, error) {
	args := m.Called(ctx, q, userID, dateOfBirth, healthInformation, fitnessGoals)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Client), args.Error(1)
}

func (m *MockRepo) GetProfile(ctx context.Context, id int) (*Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Profile), args.Error(1)
}

func (m *MockRepo) FindByUserID(ctx context.Context, userID int) (*Client, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Client), args.Error(1)
}

func (m *MockRepo) ExistsByID(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepo) UpdateProfile(ctx context.Context, q sqlx.ExtContext, id int, dateOfBirth *time.Time, healthInformation, fitnessGoals *string) error {
	return m.Called(ctx, q, id, dateOfBirth, healthInformation, fitnessGoals).Error(0)
}

func (m *MockRepo) UpdateUserContact(ctx context.Context, q sqlx.ExtContext, clientID int, fullName, phone *string) error {
	return m.Called(ctx, q, clientID, fullName, phone).Error(0)
}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	rawDB, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { rawDB.Close() })
	return sqlx.NewDb(rawDB, "sqlmock"), mockDB
}

func strPtr(s string) *string { return &s }

func TestUpdateProfile(t *testing.T) {
	database, mockDB := newMockDB(t)
	mockDB.ExpectBegin()
	mockDB.ExpectCommit()

	profile := &Profile{
		Client:   Client{ID: 3, UserID: 7, FitnessGoals: "run a marathon"},
		FullName: "Anna Mayer",
		Email:    "anna@example.com",
	}

	repo := new(MockRepo)
	repo.On("GetProfile", mock.Anything, 3).Return(profile, nil)
	repo.On("UpdateUserContact", mock.Anything, mock.Anything, 3, strPtr("Anna Mayer"), (*string)(nil)).Return(nil)
	repo.On("UpdateProfile", mock.Anything, mock.Anything, 3, (*time.Time)(nil), (*string)(nil), strPtr("run a marathon")).Return(nil)

	svc := NewService(database, repo)

	got, err := svc.UpdateProfile(context.Background(), 3, UpdateProfileRequest{
		FullName:     strPtr("Anna Mayer"),
		FitnessGoals: strPtr("run a marathon"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Anna Mayer", got.FullName)
	repo.AssertExpectations(t)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestUpdateProfileParsesDateOfBirth(t *testing.T) {
	database, mockDB := newMockDB(t)
	mockDB.ExpectBegin()
	mockDB.ExpectCommit()

	dob := time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC)
	profile := &Profile{Client: Client{ID: 3, DateOfBirth: &dob}}

	repo := new(MockRepo)
	repo.On("GetProfile", mock.Anything, 3).Return(profile, nil)
	repo.On("UpdateUserContact", mock.Anything, mock.Anything, 3, (*string)(nil), (*string)(nil)).Return(nil)
	repo.On("UpdateProfile", mock.Anything, mock.Anything, 3, &dob, (*string)(nil), (*string)(nil)).Return(nil)

	svc := NewService(database, repo)

	_, err := svc.UpdateProfile(context.Background(), 3, UpdateProfileRequest{
		DateOfBirth: strPtr("1990-05-12"),
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateProfileBadDateOfBirth(t *testing.T) {
	database, _ := newMockDB(t)

	repo := new(MockRepo)
	repo.On("GetProfile", mock.Anything, 3).Return(&Profile{Client: Client{ID: 3}}, nil)

	svc := NewService(database, repo)

	_, err := svc.UpdateProfile(context.Background(), 3, UpdateProfileRequest{
		DateOfBirth: strPtr("12.05.1990"),
	})

	assert.ErrorIs(t, err, ErrInvalidDateOfBirth)
	repo.AssertNotCalled(t, "UpdateProfile")
}

func TestUpdateProfileNotFound(t *testing.T) {
	database, _ := newMockDB(t)

	repo := new(MockRepo)
	repo.On("GetProfile", mock.Anything, 99).Return(nil, assert.AnError)

	svc := NewService(database, repo)

	_, err := svc.UpdateProfile(context.Background(), 99, UpdateProfileRequest{})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestGetProfileNotFound(t *testing.T) {
	database, _ := newMockDB(t)

	repo := new(MockRepo)
	repo.On("GetProfile", mock.Anything, 99).Return(nil, assert.AnError)

	svc := NewService(database, repo)

	_, err := svc.GetProfile(context.Background(), 99)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
