package reservation

import (
	"github.com/google/uuid"
)

// Reservation is a guest's request to hold a table. The identifier is
// assigned by the store on insert, never by the caller; a freshly built
// entity carries uuid.Nil until then.
type Reservation struct {
	id      uuid.UUID
	name    string
	phone   string
	email   string
	date    string
	time    string
	persons int32
	message string
}

func NewReservation(name, phone, email, date, timeOfDay string, persons int32, message string) (*Reservation, error) {
	if err := validateFields(name, phone, email, date, timeOfDay); err != nil {
		return nil, err
	}

	return &Reservation{
		name:    name,
		phone:   phone,
		email:   email,
		date:    date,
		time:    timeOfDay,
		persons: persons,
		message: message,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	name, phone, email, date, timeOfDay string,
	persons int32,
	message string,
) *Reservation {
	return &Reservation{
		id:      id,
		name:    name,
		phone:   phone,
		email:   email,
		date:    date,
		time:    timeOfDay,
		persons: persons,
		message: message,
	}
}

func (r *Reservation) ID() uuid.UUID   { return r.id }
func (r *Reservation) Name() string    { return r.name }
func (r *Reservation) Phone() string   { return r.phone }
func (r *Reservation) Email() string   { return r.email }
func (r *Reservation) Date() string    { return r.date }
func (r *Reservation) Time() string    { return r.time }
func (r *Reservation) Persons() int32  { return r.persons }
func (r *Reservation) Message() string { return r.message }

func (r *Reservation) HasMessage() bool {
	return r.message != ""
}
