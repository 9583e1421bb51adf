package commands

import (
	"context"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase/notify"
	"restaurant-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrDuplicateContact        = errs.New("email or phone number already exists")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ReservationInput carries the guest-supplied fields. The identifier is
// never part of the input: on create the store assigns it, on update the
// path parameter wins unconditionally.
type ReservationInput struct {
	Name    string
	Phone   string
	Email   string
	Date    string
	Time    string
	Persons int32
	Message string
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (*queries.ReservationView, error)
	Replace(ctx context.Context, id uuid.UUID, res *reservation.Reservation) (*queries.ReservationView, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ContactExists(ctx context.Context, phone, email string) (bool, error)
}

type ReservationCommands interface {
	// Create validates, rejects duplicate contact identities, stores the
	// reservation and schedules the confirmation dispatch. A *Validation
	// Error from the domain layer is returned before any store access.
	Create(ctx context.Context, input ReservationInput) (*queries.ReservationView, error)
	Update(ctx context.Context, id uuid.UUID, input ReservationInput) (*queries.ReservationView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	repo       ReservationRepository
	dispatcher notify.Dispatcher
}

func NewReservationCommands(repo ReservationRepository, dispatcher notify.Dispatcher) ReservationCommands {
	return &reservationCommandsImpl{
		repo:       repo,
		dispatcher: dispatcher,
	}
}

func (c *reservationCommandsImpl) Create(ctx context.Context, input ReservationInput) (*queries.ReservationView, error) {
	res, err := newReservation(input)
	if err != nil {
		return nil, err
	}

	exists, err := c.repo.ContactExists(ctx, res.Phone(), res.Email())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if exists {
		return nil, ErrDuplicateContact
	}

	view, err := c.repo.Create(ctx, res)
	if err != nil {
		// A concurrent writer may have won the race between the pre-check
		// and the insert; the unique indexes report it here.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateContact)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Fire-and-forget: the booking result never depends on the outcome.
	c.dispatcher.Dispatch(view)

	return view, nil
}

// Update replaces all fields of an existing reservation. It intentionally
// skips the duplicate-contact pre-check against other records (deployed
// behavior, flagged as an open product question); the unique indexes still
// reject a collision at write time.
func (c *reservationCommandsImpl) Update(ctx context.Context, id uuid.UUID, input ReservationInput) (*queries.ReservationView, error) {
	res, err := newReservation(input)
	if err != nil {
		return nil, err
	}

	view, err := c.repo.Replace(ctx, id, res)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateContact)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return view, nil
}

func (c *reservationCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrReservationNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func newReservation(input ReservationInput) (*reservation.Reservation, error) {
	return reservation.NewReservation(
		input.Name, input.Phone, input.Email,
		input.Date, input.Time, input.Persons, input.Message,
	)
}
