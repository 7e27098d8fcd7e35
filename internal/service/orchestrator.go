package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/divyam007142/Railway-reservation/internal/domain"
	"github.com/divyam007142/Railway-reservation/internal/dto"
	"github.com/divyam007142/Railway-reservation/internal/logger"
)

// AttemptState is the state of the current booking attempt
type AttemptState int

const (
	StateIdle AttemptState = iota
	StateAwaitingSeatCheck
	StateFormOpen
	StateSubmitting
	StateSettled
	StateFailed
)

// String returns the string representation of AttemptState
func (s AttemptState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingSeatCheck:
		return "awaiting_seat_check"
	case StateFormOpen:
		return "form_open"
	case StateSubmitting:
		return "submitting"
	case StateSettled:
		return "settled"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// BookingAPI is the slice of the reservation API the orchestrator drives
type BookingAPI interface {
	CreateBooking(ctx context.Context, req *dto.BookingCreateRequest) (*dto.BookingOutcome, error)
	CancelBooking(ctx context.Context, pnr string) (*dto.CancelResponse, error)
}

// Confirmer obtains an explicit yes/no from the user before an action with
// consequences proceeds.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Refresher re-fetches the train catalog and the caller's booking ledger.
// Running it unconditionally after every settled or failed mutation is the
// sole mechanism keeping displayed seat counts and ledger entries in step
// with server state.
type Refresher interface {
	RefreshAfterMutation(ctx context.Context)
}

const waitlistPrompt = "No seats available. Do you want to join the waiting list?"
const cancelPrompt = "Are you sure you want to cancel this booking?"

// Orchestrator drives a single booking attempt through
// Idle -> AwaitingSeatCheck -> FormOpen -> Submitting -> Settled | Failed.
// It holds one mutable attempt slot and rejects concurrent re-entry.
type Orchestrator struct {
	api     BookingAPI
	confirm Confirmer
	refresh Refresher

	mu    sync.Mutex
	state AttemptState
	train *domain.Train
	epoch uint64
}

// NewOrchestrator creates an Orchestrator
func NewOrchestrator(bookingAPI BookingAPI, confirm Confirmer, refresh Refresher) *Orchestrator {
	return &Orchestrator{
		api:     bookingAPI,
		confirm: confirm,
		refresh: refresh,
		state:   StateIdle,
	}
}

// State returns the current attempt state
func (o *Orchestrator) State() AttemptState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// SelectedTrain returns the train of the current attempt, or nil
func (o *Orchestrator) SelectedTrain() *domain.Train {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.train == nil {
		return nil
	}
	copied := *o.train
	return &copied
}

// Select starts a booking attempt for train. The last fetched seat count is
// inspected: with free seats the form opens directly; with none the user
// must explicitly agree to the waiting list first. Declining returns to
// Idle with no side effects. The returned bool reports whether the form is
// now open.
func (o *Orchestrator) Select(train domain.Train) (bool, error) {
	o.mu.Lock()
	if o.state == StateSubmitting {
		o.mu.Unlock()
		return false, domain.ErrSubmitInFlight
	}
	o.state = StateAwaitingSeatCheck
	o.mu.Unlock()

	if !train.HasSeats() {
		if !o.confirm.Confirm(waitlistPrompt) {
			o.mu.Lock()
			o.state = StateIdle
			o.train = nil
			o.mu.Unlock()
			return false, nil
		}
	}

	o.mu.Lock()
	o.state = StateFormOpen
	o.train = &train
	o.mu.Unlock()
	return true, nil
}

// Submit sends the booking request for the selected train. The server's
// returned status alone decides confirmed versus waiting; a waiting-list
// placement is a success, never an error. Whichever way the attempt
// settles, the catalog and ledger are re-fetched before Submit returns.
func (o *Orchestrator) Submit(ctx context.Context, form domain.PassengerForm) (*dto.BookingOutcome, error) {
	o.mu.Lock()
	if o.state == StateSubmitting {
		o.mu.Unlock()
		return nil, domain.ErrSubmitInFlight
	}
	if o.state != StateFormOpen || o.train == nil {
		o.mu.Unlock()
		return nil, domain.ErrAttemptNotOpen
	}
	if err := form.Validate(); err != nil {
		o.mu.Unlock()
		return nil, err
	}
	o.state = StateSubmitting
	trainID := o.train.ID
	epoch := o.epoch
	o.mu.Unlock()

	outcome, err := o.api.CreateBooking(ctx, &dto.BookingCreateRequest{
		TrainID:         trainID,
		PassengerName:   form.Name,
		PassengerAge:    form.Age,
		PassengerGender: form.Gender,
		PassengerPhone:  form.Phone,
	})

	o.mu.Lock()
	if o.epoch != epoch {
		// The attempt was torn down (logout or reset) while the request
		// was in flight; the response must not touch view state.
		o.mu.Unlock()
		return nil, domain.ErrStaleAttempt
	}
	if err != nil {
		o.state = StateFailed
	} else {
		o.state = StateSettled
	}
	o.train = nil
	o.mu.Unlock()

	o.refresh.RefreshAfterMutation(ctx)

	if err != nil {
		logger.Warn("booking submission failed", zap.String("train_id", trainID), zap.Error(err))
		return nil, err
	}
	logger.Info("booking settled",
		zap.String("train_id", trainID),
		zap.String("status", outcome.Status),
	)
	return outcome, nil
}

// Cancel cancels a booking by PNR after explicit confirmation. The returned
// bool reports whether the user confirmed; a declined confirmation performs
// no request. On success the catalog and ledger are re-fetched exactly as
// after a booking.
func (o *Orchestrator) Cancel(ctx context.Context, pnr string) (bool, *dto.CancelResponse, error) {
	if !o.confirm.Confirm(cancelPrompt) {
		return false, nil, nil
	}

	o.mu.Lock()
	epoch := o.epoch
	o.mu.Unlock()

	resp, err := o.api.CancelBooking(ctx, pnr)

	o.mu.Lock()
	stale := o.epoch != epoch
	o.mu.Unlock()
	if stale {
		return true, nil, domain.ErrStaleAttempt
	}
	if err != nil {
		logger.Warn("cancellation failed", zap.String("pnr", pnr), zap.Error(err))
		return true, nil, err
	}

	o.refresh.RefreshAfterMutation(ctx)
	logger.Info("booking cancelled", zap.String("pnr", pnr))
	return true, resp, nil
}

// Reset tears the current attempt down and invalidates any in-flight
// response. Called on logout and when a dashboard unmounts.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.epoch++
	o.state = StateIdle
	o.train = nil
}
