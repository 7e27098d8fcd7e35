package stub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divyam007142/Railway-reservation/internal/domain"
	"github.com/divyam007142/Railway-reservation/internal/dto"
)

func seedTrain(s *Store, seats int) *domain.Train {
	return s.AddTrain(&dto.TrainCreateRequest{
		TrainNumber: "12301",
		TrainName:   "Rajdhani Express",
		Source:      "Delhi",
		Destination: "Mumbai",
		TotalSeats:  seats,
		Fare:        1250,
	})
}

func bookingReq(trainID string) *dto.BookingCreateRequest {
	return &dto.BookingCreateRequest{
		TrainID:         trainID,
		PassengerName:   "Asha",
		PassengerAge:    29,
		PassengerGender: "F",
		PassengerPhone:  "9999999999",
	}
}

func TestStore_BookingConfirmsWhileSeatsLast(t *testing.T) {
	s := NewStore()
	train := seedTrain(s, 2)

	first, err := s.CreateBooking("asha", bookingReq(train.ID))
	require.NoError(t, err)
	assert.Equal(t, "confirmed", first.Status)
	assert.NotEmpty(t, first.PNR)
	require.NotNil(t, first.SeatNumber)
	assert.Equal(t, "S1", *first.SeatNumber)

	second, err := s.CreateBooking("ravi", bookingReq(train.ID))
	require.NoError(t, err)
	assert.Equal(t, "confirmed", second.Status)
	assert.Equal(t, "S2", *second.SeatNumber)

	assert.Equal(t, 0, s.ListTrains()[0].AvailableSeats)
}

func TestStore_WaitingListPositions(t *testing.T) {
	s := NewStore()
	train := seedTrain(s, 1)

	_, err := s.CreateBooking("asha", bookingReq(train.ID))
	require.NoError(t, err)

	w1, err := s.CreateBooking("ravi", bookingReq(train.ID))
	require.NoError(t, err)
	assert.Equal(t, "waiting", w1.Status)
	assert.Equal(t, 1, w1.Position)
	assert.Nil(t, w1.SeatNumber)

	w2, err := s.CreateBooking("meera", bookingReq(train.ID))
	require.NoError(t, err)
	assert.Equal(t, 2, w2.Position)
}

func TestStore_CancelPromotesWaitingHead(t *testing.T) {
	s := NewStore()
	train := seedTrain(s, 1)

	confirmed, err := s.CreateBooking("asha", bookingReq(train.ID))
	require.NoError(t, err)
	w1, err := s.CreateBooking("ravi", bookingReq(train.ID))
	require.NoError(t, err)
	w2, err := s.CreateBooking("meera", bookingReq(train.ID))
	require.NoError(t, err)

	require.NoError(t, s.CancelBooking("asha", confirmed.PNR))

	// The freed seat goes to the head of the waiting list, not back to
	// the pool, and the remaining waiter moves up.
	promoted, err := s.LookupPNR(w1.PNR)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, promoted.BookingStatus)
	require.NotNil(t, promoted.SeatNumber)
	assert.Equal(t, "S1", *promoted.SeatNumber)

	waiter, err := s.LookupPNR(w2.PNR)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusWaiting, waiter.BookingStatus)
	assert.Equal(t, 1, waiter.Position)

	assert.Equal(t, 0, s.ListTrains()[0].AvailableSeats)

	cancelled, err := s.LookupPNR(confirmed.PNR)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, cancelled.BookingStatus)
	assert.Nil(t, cancelled.SeatNumber)
}

func TestStore_CancelWithoutWaitersFreesSeat(t *testing.T) {
	s := NewStore()
	train := seedTrain(s, 1)

	confirmed, err := s.CreateBooking("asha", bookingReq(train.ID))
	require.NoError(t, err)

	require.NoError(t, s.CancelBooking("asha", confirmed.PNR))
	assert.Equal(t, 1, s.ListTrains()[0].AvailableSeats)
}

func TestStore_CancelRules(t *testing.T) {
	s := NewStore()
	train := seedTrain(s, 1)

	confirmed, err := s.CreateBooking("asha", bookingReq(train.ID))
	require.NoError(t, err)
	waiting, err := s.CreateBooking("ravi", bookingReq(train.ID))
	require.NoError(t, err)

	assert.ErrorIs(t, s.CancelBooking("ravi", confirmed.PNR), ErrNotOwner)
	assert.ErrorIs(t, s.CancelBooking("ravi", waiting.PNR), ErrNotCancellable)
	assert.ErrorIs(t, s.CancelBooking("asha", "PNR999999"), ErrBookingNotFound)
}

func TestStore_SearchTrains(t *testing.T) {
	s := NewStore()
	seedTrain(s, 10)
	s.AddTrain(&dto.TrainCreateRequest{
		TrainNumber: "12621", TrainName: "Tamil Nadu Express",
		Source: "Chennai", Destination: "Delhi", TotalSeats: 20, Fare: 1420,
	})

	assert.Len(t, s.SearchTrains("delhi", ""), 1)
	assert.Len(t, s.SearchTrains("", "DELHI"), 1)
	assert.Len(t, s.SearchTrains("", ""), 2)
	assert.Empty(t, s.SearchTrains("Delhi", "Chennai"))
}

func TestStore_Summary(t *testing.T) {
	s := NewStore()
	train := seedTrain(s, 1)

	confirmed, err := s.CreateBooking("asha", bookingReq(train.ID))
	require.NoError(t, err)
	_, err = s.CreateBooking("ravi", bookingReq(train.ID))
	require.NoError(t, err)

	report := s.Summary()
	assert.Equal(t, 1, report.TotalTrains)
	assert.Equal(t, 2, report.TotalBookings)
	assert.Equal(t, 1, report.ConfirmedBookings)
	assert.Equal(t, 1, report.WaitingBookings)
	assert.Equal(t, 1250.0, report.TotalRevenue)

	require.NoError(t, s.CancelBooking("asha", confirmed.PNR))
	report = s.Summary()
	assert.Equal(t, 1, report.CancelledBookings)
	assert.Equal(t, 1, report.ConfirmedBookings, "promotion keeps one booking confirmed")
	assert.Equal(t, 0, report.WaitingBookings)
}

func TestStore_RegisterAndAuthenticate(t *testing.T) {
	s := NewStore()

	req := &dto.RegisterRequest{Username: "asha", Password: "secret1", FullName: "Asha Verma"}
	require.NoError(t, s.Register(req))
	assert.ErrorIs(t, s.Register(req), ErrUserExists)

	identity, err := s.Authenticate("asha", "secret1")
	require.NoError(t, err)
	assert.Equal(t, domain.RolePassenger, identity.Role)

	_, err = s.Authenticate("asha", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	admin, err := s.Authenticate("admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
}
