package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fitbook/internal/client"
	"fitbook/internal/logger"
	"fitbook/internal/schedule"
)

func TestMain(m *testing.M) {
	logger.Init()
	m.Run()
}

type MockRepo struct{ mock.Mock }

func (m *MockRepo) Insert(ctx context.Context, q sqlx.ExtContext, clientID, timeSlotID, trainerID int) (*Booking, error) {
	args := m.Called(ctx, q, clientID, timeSlotID, trainerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockRepo) GetByID(ctx context.Context, id int) (*Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockRepo) MarkCancelled(ctx context.Context, q sqlx.ExtContext, id int) (bool, error) {
	args := m.Called(ctx, q, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepo) HasActiveForClientAndSlot(ctx context.Context, clientID, timeSlotID int) (bool, error) {
	args := m.Called(ctx, clientID, timeSlotID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepo) GetByClient(ctx context.Context, clientID int) ([]BookingWithDetails, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BookingWithDetails), args.Error(1)
}

func (m *MockRepo) GetDetails(ctx context.Context, id int) (*BookingWithDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BookingWithDetails), args.Error(1)
}

type MockSlotRepo struct {
	schedule.Repository
	mock.Mock
}

func (m *MockSlotRepo) GetByID(ctx context.Context, id int) (*schedule.TimeSlot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schedule.TimeSlot), args.Error(1)
}

func (m *MockSlotRepo) ClaimSpot(ctx context.Context, q sqlx.ExtContext, id int) (bool, error) {
	args := m.Called(ctx, q, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockSlotRepo) ReleaseSpot(ctx context.Context, q sqlx.ExtContext, id int) (bool, error) {
	args := m.Called(ctx, q, id)
	return args.Bool(0), args.Error(1)
}

type stubClients struct {
	client.Repository
	exists bool
}

func (s stubClients) ExistsByID(ctx context.Context, id int) (bool, error) {
	return s.exists, nil
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) SendBookingConfirmationToClient(ctx context.Context, to, clientName, trainingType, trainerName, date, timeRange string) error {
	return m.Called(ctx, to, clientName, trainingType, trainerName, date, timeRange).Error(0)
}

func (m *MockNotifier) SendBookingNotificationToTrainer(ctx context.Context, to, trainerName, clientName, trainingType, date, timeRange string) error {
	return m.Called(ctx, to, trainerName, clientName, trainingType, date, timeRange).Error(0)
}

func (m *MockNotifier) SendCancellationToClient(ctx context.Context, to, clientName, trainingType, trainerName, date, timeRange string) error {
	return m.Called(ctx, to, clientName, trainingType, trainerName, date, timeRange).Error(0)
}

func (m *MockNotifier) SendCancellationToTrainer(ctx context.Context, to, trainerName, clientName, trainingType, date, timeRange string) error {
	return m.Called(ctx, to, trainerName, clientName, trainingType, date, timeRange).Error(0)
}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	rawDB, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { rawDB.Close() })
	return sqlx.NewDb(rawDB, "sqlmock"), mockDB
}

func futureSlot(capacity, booked int, status schedule.Status) *schedule.TimeSlot {
	start := time.Now().Add(24 * time.Hour)
	return &schedule.TimeSlot{
		ID: 9, TrainerID: 5, TrainingTypeID: 1,
		StartTime: start, EndTime: start.Add(time.Hour),
		Capacity: capacity, BookedCount: booked, Status: status,
	}
}

func TestCreateBooking(t *testing.T) {
	database, mockDB := newMockDB(t)
	mockDB.ExpectBegin()
	mockDB.ExpectCommit()

	slots := new(MockSlotRepo)
	slots.On("GetByID", mock.Anything, 9).Return(futureSlot(1, 0, schedule.StatusAvailable), nil)
	slots.On("ClaimSpot", mock.Anything, mock.Anything, 9).Return(true, nil)

	repo := new(MockRepo)
	repo.On("HasActiveForClientAndSlot", mock.Anything, 3, 9).Return(false, nil)
	repo.On("Insert", mock.Anything, mock.Anything, 3, 9, 5).
		Return(&Booking{ID: 21, ClientID: 3, TimeSlotID: 9, TrainerID: 5, Status: StatusConfirmed}, nil)
	repo.On("GetDetails", mock.Anything, 21).Return(&BookingWithDetails{
		Booking:     Booking{ID: 21},
		ClientName:  "Anna Mayer", ClientEmail: "anna@example.com",
		TrainerName: "Jonas Berg", TrainerEmail: "jonas@example.com",
		TrainingTypeName: "Yoga",
		StartTime:        time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC),
		EndTime:          time.Date(2025, 7, 1, 11, 0, 0, 0, time.UTC),
	}, nil)

	notifier := new(MockNotifier)
	notifier.On("SendBookingConfirmationToClient", mock.Anything, "anna@example.com", "Anna Mayer", "Yoga", "Jonas Berg", "01.07.2025", "10:00 - 11:00").Return(nil)
	notifier.On("SendBookingNotificationToTrainer", mock.Anything, "jonas@example.com", "Jonas Berg", "Anna Mayer", "Yoga", "01.07.2025", "10:00 - 11:00").Return(nil)

	svc := NewService(database, repo, slots, stubClients{exists: true}, notifier)

	b, err := svc.CreateBooking(context.Background(), 3, 9)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, b.Status)

	repo.AssertExpectations(t)
	slots.AssertExpectations(t)
	notifier.AssertExpectations(t)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

// Second booker of a single-spot slot gets a conflict.
func TestCreateBookingFullSlot(t *testing.T) {
	database, _ := newMockDB(t)

	slots := new(MockSlotRepo)
	slots.On("GetByID", mock.Anything, 9).Return(futureSlot(1, 1, schedule.StatusBooked), nil)

	repo := new(MockRepo)
	svc := NewService(database, repo, slots, stubClients{exists: true}, nil)

	_, err := svc.CreateBooking(context.Background(), 4, 9)
	assert.ErrorIs(t, err, schedule.ErrSlotUnavailable)
	repo.AssertNotCalled(t, "Insert")
}

func TestCreateBookingCancelledSlot(t *testing.T) {
	database, _ := newMockDB(t)

	slots := new(MockSlotRepo)
	slots.On("GetByID", mock.Anything, 9).Return(futureSlot(5, 0, schedule.StatusCancelled), nil)

	svc := NewService(database, new(MockRepo), slots, stubClients{exists: true}, nil)

	_, err := svc.CreateBooking(context.Background(), 3, 9)
	assert.ErrorIs(t, err, schedule.ErrSlotUnavailable)
}

func TestCreateBookingDuplicate(t *testing.T) {
	database, _ := newMockDB(t)

	slots := new(MockSlotRepo)
	slots.On("GetByID", mock.Anything, 9).Return(futureSlot(5, 1, schedule.StatusAvailable), nil)

	repo := new(MockRepo)
	repo.On("HasActiveForClientAndSlot", mock.Anything, 3, 9).Return(true, nil)

	svc := NewService(database, repo, slots, stubClients{exists: true}, nil)

	_, err := svc.CreateBooking(context.Background(), 3, 9)
	assert.ErrorIs(t, err, ErrAlreadyBooked)
	repo.AssertNotCalled(t, "Insert")
}

func TestCreateBookingPastSlot(t *testing.T) {
	database, _ := newMockDB(t)

	past := futureSlot(5, 0, schedule.StatusAvailable)
	past.StartTime = time.Now().Add(-2 * time.Hour)
	past.EndTime = time.Now().Add(-time.Hour)

	slots := new(MockSlotRepo)
	slots.On("GetByID", mock.Anything, 9).Return(past, nil)

	repo := new(MockRepo)
	repo.On("HasActiveForClientAndSlot", mock.Anything, 3, 9).Return(false, nil)

	svc := NewService(database, repo, slots, stubClients{exists: true}, nil)

	_, err := svc.CreateBooking(context.Background(), 3, 9)
	assert.ErrorIs(t, err, ErrPastSlot)
}

// A slot that is both full and in the past reports the conflict: state
// checks come before temporal checks.
func TestCreateBookingFullPastSlotReportsConflict(t *testing.T) {
	database, _ := newMockDB(t)

	slot := futureSlot(1, 1, schedule.StatusBooked)
	slot.StartTime = time.Now().Add(-2 * time.Hour)
	slot.EndTime = time.Now().Add(-time.Hour)

	slots := new(MockSlotRepo)
	slots.On("GetByID", mock.Anything, 9).Return(slot, nil)

	svc := NewService(database, new(MockRepo), slots, stubClients{exists: true}, nil)

	_, err := svc.CreateBooking(context.Background(), 3, 9)
	assert.ErrorIs(t, err, schedule.ErrSlotUnavailable)
	assert.NotErrorIs(t, err, ErrPastSlot)
}

func TestCreateBookingUnknownClient(t *testing.T) {
	database, _ := newMockDB(t)

	slots := new(MockSlotRepo)
	svc := NewService(database, new(MockRepo), slots, stubClients{exists: false}, nil)

	_, err := svc.CreateBooking(context.Background(), 99, 9)
	assert.ErrorIs(t, err, ErrClientNotFound)
	slots.AssertNotCalled(t, "GetByID")
}

func TestCreateBookingUnknownSlot(t *testing.T) {
	database, _ := newMockDB(t)

	slots := new(MockSlotRepo)
	slots.On("GetByID", mock.Anything, 404).Return(nil, assert.AnError)

	svc := NewService(database, new(MockRepo), slots, stubClients{exists: true}, nil)

	_, err := svc.CreateBooking(context.Background(), 3, 404)
	assert.ErrorIs(t, err, schedule.ErrSlotNotFound)
}

// Losing the claim race rolls the whole booking back.
func TestCreateBookingLostClaimRace(t *testing.T) {
	database, mockDB := newMockDB(t)
	mockDB.ExpectBegin()
	mockDB.ExpectRollback()

	slots := new(MockSlotRepo)
	slots.On("GetByID", mock.Anything, 9).Return(futureSlot(1, 0, schedule.StatusAvailable), nil)
	slots.On("ClaimSpot", mock.Anything, mock.Anything, 9).Return(false, nil)

	repo := new(MockRepo)
	repo.On("HasActiveForClientAndSlot", mock.Anything, 3, 9).Return(false, nil)

	svc := NewService(database, repo, slots, stubClients{exists: true}, nil)

	_, err := svc.CreateBooking(context.Background(), 3, 9)
	assert.ErrorIs(t, err, schedule.ErrSlotUnavailable)
	repo.AssertNotCalled(t, "Insert")
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestCancelBooking(t *testing.T) {
	database, mockDB := newMockDB(t)
	mockDB.ExpectBegin()
	mockDB.ExpectCommit()

	repo := new(MockRepo)
	repo.On("GetByID", mock.Anything, 21).
		Return(&Booking{ID: 21, ClientID: 3, TimeSlotID: 9, Status: StatusConfirmed}, nil)
	repo.On("MarkCancelled", mock.Anything, mock.Anything, 21).Return(true, nil)
	repo.On("GetDetails", mock.Anything, 21).Return(&BookingWithDetails{
		Booking:     Booking{ID: 21},
		ClientName:  "Anna Mayer", ClientEmail: "anna@example.com",
		TrainerName: "Jonas Berg", TrainerEmail: "jonas@example.com",
		TrainingTypeName: "Yoga",
		StartTime:        time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC),
		EndTime:          time.Date(2025, 7, 1, 11, 0, 0, 0, time.UTC),
	}, nil)

	slots := new(MockSlotRepo)
	slots.On("ReleaseSpot", mock.Anything, mock.Anything, 9).Return(true, nil)

	notifier := new(MockNotifier)
	notifier.On("SendCancellationToClient", mock.Anything, "anna@example.com", "Anna Mayer", "Yoga", "Jonas Berg", "01.07.2025", "10:00 - 11:00").Return(nil)
	notifier.On("SendCancellationToTrainer", mock.Anything, "jonas@example.com", "Jonas Berg", "Anna Mayer", "Yoga", "01.07.2025", "10:00 - 11:00").Return(nil)

	svc := NewService(database, repo, slots, stubClients{exists: true}, notifier)

	b, err := svc.CancelBooking(context.Background(), 21)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, b.Status)

	slots.AssertExpectations(t)
	notifier.AssertExpectations(t)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestCancelBookingAlreadyCancelled(t *testing.T) {
	database, _ := newMockDB(t)

	repo := new(MockRepo)
	repo.On("GetByID", mock.Anything, 21).
		Return(&Booking{ID: 21, TimeSlotID: 9, Status: StatusCancelled}, nil)

	svc := NewService(database, repo, new(MockSlotRepo), stubClients{exists: true}, nil)

	_, err := svc.CancelBooking(context.Background(), 21)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	repo.AssertNotCalled(t, "MarkCancelled")
}

func TestCancelBookingCompleted(t *testing.T) {
	database, _ := newMockDB(t)

	repo := new(MockRepo)
	repo.On("GetByID", mock.Anything, 21).
		Return(&Booking{ID: 21, TimeSlotID: 9, Status: StatusCompleted}, nil)

	svc := NewService(database, repo, new(MockSlotRepo), stubClients{exists: true}, nil)

	_, err := svc.CancelBooking(context.Background(), 21)
	assert.ErrorIs(t, err, ErrCancelCompleted)
}

func TestCancelBookingNotFound(t *testing.T) {
	database, _ := newMockDB(t)

	repo := new(MockRepo)
	repo.On("GetByID", mock.Anything, 404).Return(nil, assert.AnError)

	svc := NewService(database, repo, new(MockSlotRepo), stubClients{exists: true}, nil)

	_, err := svc.CancelBooking(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

// Notification failure never fails the booking.
func TestCreateBookingSurvivesNotificationFailure(t *testing.T) {
	database, mockDB := newMockDB(t)
	mockDB.ExpectBegin()
	mockDB.ExpectCommit()

	slots := new(MockSlotRepo)
	slots.On("GetByID", mock.Anything, 9).Return(futureSlot(1, 0, schedule.StatusAvailable), nil)
	slots.On("ClaimSpot", mock.Anything, mock.Anything, 9).Return(true, nil)

	repo := new(MockRepo)
	repo.On("HasActiveForClientAndSlot", mock.Anything, 3, 9).Return(false, nil)
	repo.On("Insert", mock.Anything, mock.Anything, 3, 9, 5).
		Return(&Booking{ID: 21, Status: StatusConfirmed}, nil)
	repo.On("GetDetails", mock.Anything, 21).Return(nil, assert.AnError)

	notifier := new(MockNotifier)

	svc := NewService(database, repo, slots, stubClients{exists: true}, notifier)

	b, err := svc.CreateBooking(context.Background(), 3, 9)
	require.NoError(t, err)
	assert.Equal(t, 21, b.ID)
	notifier.AssertNotCalled(t, "SendBookingConfirmationToClient")
}

func TestGetByClientFormatsSchedule(t *testing.T) {
	database, _ := newMockDB(t)

	repo := new(MockRepo)
	repo.On("GetByClient", mock.Anything, 3).Return([]BookingWithDetails{
		{
			Booking:   Booking{ID: 21, ClientID: 3},
			StartTime: time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 7, 1, 11, 0, 0, 0, time.UTC),
		},
	}, nil)

	svc := NewService(database, repo, new(MockSlotRepo), stubClients{exists: true}, nil)

	bookings, err := svc.GetByClient(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "01.07.2025", bookings[0].FormattedDate)
	assert.Equal(t, "10:00 - 11:00", bookings[0].FormattedTime)
}

func TestGetByClientUnknownClient(t *testing.T) {
	database, _ := newMockDB(t)

	svc := NewService(database, new(MockRepo), new(MockSlotRepo), stubClients{exists: false}, nil)

	_, err := svc.GetByClient(context.Background(), 99)
	assert.ErrorIs(t, err, ErrClientNotFound)
}
