package stub

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/divyam007142/Railway-reservation/internal/domain"
	"github.com/divyam007142/Railway-reservation/internal/dto"
)

// Store errors
var (
	ErrUserExists         = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTrainNotFound      = errors.New("train not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrNotOwner           = errors.New("booking belongs to another user")
	ErrNotCancellable     = errors.New("only confirmed bookings can be cancelled")
)

type user struct {
	identity domain.Identity
	password string
	email    string
	phone    string
}

// Store is the in-memory state behind the stub server. It is deliberately
// simple: a mutex around maps, no persistence.
type Store struct {
	mu       sync.Mutex
	users    map[string]*user
	trains   map[string]*domain.Train
	bookings map[string]*domain.Booking
	pnrSeq   int
}

// NewStore creates a Store seeded with a default admin account.
func NewStore() *Store {
	s := &Store{
		users:    make(map[string]*user),
		trains:   make(map[string]*domain.Train),
		bookings: make(map[string]*domain.Booking),
	}
	s.users["admin"] = &user{
		identity: domain.Identity{
			ID:       uuid.New().String(),
			Username: "admin",
			FullName: "Administrator",
			Role:     domain.RoleAdmin,
		},
		password: "admin123",
	}
	return s
}

// Register adds a passenger account.
func (s *Store) Register(req *dto.RegisterRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[req.Username]; exists {
		return ErrUserExists
	}
	s.users[req.Username] = &user{
		identity: domain.Identity{
			ID:       uuid.New().String(),
			Username: req.Username,
			FullName: req.FullName,
			Role:     domain.RolePassenger,
		},
		password: req.Password,
		email:    req.Email,
		phone:    req.Phone,
	}
	return nil
}

// Authenticate checks credentials and returns the identity.
func (s *Store) Authenticate(username, password string) (*domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[username]
	if !ok || u.password != password {
		return nil, ErrInvalidCredentials
	}
	identity := u.identity
	return &identity, nil
}

// AddTrain inserts a train record and returns it with an assigned ID.
func (s *Store) AddTrain(req *dto.TrainCreateRequest) *domain.Train {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &domain.Train{
		ID:             uuid.New().String(),
		TrainNumber:    req.TrainNumber,
		TrainName:      req.TrainName,
		Source:         req.Source,
		Destination:    req.Destination,
		TotalSeats:     req.TotalSeats,
		AvailableSeats: req.TotalSeats,
		Fare:           req.Fare,
		DepartureTime:  req.DepartureTime,
		ArrivalTime:    req.ArrivalTime,
	}
	s.trains[t.ID] = t
	copied := *t
	return &copied
}

// DeleteTrain removes a train record.
func (s *Store) DeleteTrain(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.trains[id]; !ok {
		return ErrTrainNotFound
	}
	delete(s.trains, id)
	return nil
}

// ListTrains returns all trains sorted by train number.
func (s *Store) ListTrains() []domain.Train {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listTrainsLocked("", "")
}

// SearchTrains returns trains matching source and/or destination,
// case-insensitively. Empty fields match everything.
func (s *Store) SearchTrains(source, destination string) []domain.Train {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listTrainsLocked(source, destination)
}

func (s *Store) listTrainsLocked(source, destination string) []domain.Train {
	out := make([]domain.Train, 0, len(s.trains))
	for _, t := range s.trains {
		if source != "" && !strings.EqualFold(t.Source, source) {
			continue
		}
		if destination != "" && !strings.EqualFold(t.Destination, destination) {
			continue
		}
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TrainNumber < out[j].TrainNumber })
	return out
}

// CreateBooking books a seat on the train or places the request on the
// waiting list when none is free. The returned outcome's status is the
// single source of truth for the caller.
func (s *Store) CreateBooking(username string, req *dto.BookingCreateRequest) (*dto.BookingOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.trains[req.TrainID]
	if !ok {
		return nil, ErrTrainNotFound
	}

	s.pnrSeq++
	b := &domain.Booking{
		ID:              uuid.New().String(),
		PNR:             fmt.Sprintf("PNR%06d", s.pnrSeq),
		Username:        username,
		TrainID:         t.ID,
		TrainName:       t.TrainName,
		TrainNumber:     t.TrainNumber,
		PassengerName:   req.PassengerName,
		PassengerAge:    req.PassengerAge,
		PassengerGender: req.PassengerGender,
		PassengerPhone:  req.PassengerPhone,
		Source:          t.Source,
		Destination:     t.Destination,
		Fare:            t.Fare,
		BookingDate:     time.Now().UTC(),
	}

	if t.AvailableSeats > 0 {
		seat := s.nextSeatLocked(t)
		t.AvailableSeats--
		b.BookingStatus = domain.BookingStatusConfirmed
		b.SeatNumber = &seat
		s.bookings[b.PNR] = b
		return &dto.BookingOutcome{Status: "confirmed", PNR: b.PNR, SeatNumber: &seat}, nil
	}

	b.BookingStatus = domain.BookingStatusWaiting
	b.Position = s.waitingCountLocked(t.ID) + 1
	s.bookings[b.PNR] = b
	return &dto.BookingOutcome{Status: "waiting", PNR: b.PNR, Position: b.Position}, nil
}

// CancelBooking cancels a confirmed booking, frees its seat, and promotes
// the head of the train's waiting list into it.
func (s *Store) CancelBooking(username, pnr string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[pnr]
	if !ok {
		return ErrBookingNotFound
	}
	if b.Username != username {
		return ErrNotOwner
	}
	if b.BookingStatus != domain.BookingStatusConfirmed {
		return ErrNotCancellable
	}

	seat := b.SeatNumber
	b.BookingStatus = domain.BookingStatusCancelled
	b.SeatNumber = nil

	t, ok := s.trains[b.TrainID]
	if !ok {
		return nil
	}

	if head := s.waitingHeadLocked(t.ID); head != nil {
		head.BookingStatus = domain.BookingStatusConfirmed
		head.SeatNumber = seat
		head.Position = 0
		s.renumberWaitingLocked(t.ID)
	} else {
		t.AvailableSeats++
	}
	return nil
}

// LookupPNR resolves a booking by reference code.
func (s *Store) LookupPNR(pnr string) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[pnr]
	if !ok {
		return nil, ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

// BookingsFor returns the bookings owned by username, newest first.
func (s *Store) BookingsFor(username string) []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookingsLocked(func(b *domain.Booking) bool { return b.Username == username })
}

// AllBookings returns every booking, newest first.
func (s *Store) AllBookings() []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookingsLocked(func(*domain.Booking) bool { return true })
}

// Summary computes the aggregate statistics report.
func (s *Store) Summary() *dto.SummaryReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := &dto.SummaryReport{TotalTrains: len(s.trains)}
	for _, t := range s.trains {
		report.TotalSeats += t.TotalSeats
		report.AvailableSeats += t.AvailableSeats
	}
	for _, b := range s.bookings {
		report.TotalBookings++
		switch b.BookingStatus {
		case domain.BookingStatusConfirmed:
			report.ConfirmedBookings++
			report.TotalRevenue += b.Fare
		case domain.BookingStatusWaiting:
			report.WaitingBookings++
		case domain.BookingStatusCancelled:
			report.CancelledBookings++
		}
	}
	return report
}

func (s *Store) bookingsLocked(keep func(*domain.Booking) bool) []domain.Booking {
	out := make([]domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if keep(b) {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BookingDate.After(out[j].BookingDate) })
	return out
}

// nextSeatLocked picks the lowest seat number not held by a confirmed
// booking on the train.
func (s *Store) nextSeatLocked(t *domain.Train) string {
	used := make(map[string]bool)
	for _, b := range s.bookings {
		if b.TrainID == t.ID && b.BookingStatus == domain.BookingStatusConfirmed && b.SeatNumber != nil {
			used[*b.SeatNumber] = true
		}
	}
	for n := 1; n <= t.TotalSeats; n++ {
		seat := fmt.Sprintf("S%d", n)
		if !used[seat] {
			return seat
		}
	}
	return fmt.Sprintf("S%d", t.TotalSeats)
}

func (s *Store) waitingCountLocked(trainID string) int {
	count := 0
	for _, b := range s.bookings {
		if b.TrainID == trainID && b.BookingStatus == domain.BookingStatusWaiting {
			count++
		}
	}
	return count
}

func (s *Store) waitingHeadLocked(trainID string) *domain.Booking {
	var head *domain.Booking
	for _, b := range s.bookings {
		if b.TrainID != trainID || b.BookingStatus != domain.BookingStatusWaiting {
			continue
		}
		if head == nil || b.Position < head.Position {
			head = b
		}
	}
	return head
}

func (s *Store) renumberWaitingLocked(trainID string) {
	var waiters []*domain.Booking
	for _, b := range s.bookings {
		if b.TrainID == trainID && b.BookingStatus == domain.BookingStatusWaiting {
			waiters = append(waiters, b)
		}
	}
	sort.Slice(waiters, func(i, j int) bool { return waiters[i].Position < waiters[j].Position })
	for i, b := range waiters {
		b.Position = i + 1
	}
}
