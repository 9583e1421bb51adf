//go:build unit || e2e

package builder

import (
	"time"

	domreservation "restaurant-booking/internal/domain/reservation"
	reqdto "restaurant-booking/internal/handler/dto/request"
	"restaurant-booking/internal/usecase/commands"
	"restaurant-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	Name      string
	Phone     string
	Email     string
	Date      string
	Time      string
	Persons   int32
	Message   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	return &ReservationBuilder{
		Name:      "Asha Rao",
		Phone:     "+91 98765 43210",
		Email:     "asha@example.com",
		Date:      "2025-11-02",
		Time:      "19:30",
		Persons:   4,
		Message:   "Window seat please",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	return domreservation.NewReservation(r.Name, r.Phone, r.Email, r.Date, r.Time, r.Persons, r.Message)
}

func (r *ReservationBuilder) BuildInput() commands.ReservationInput {
	return commands.ReservationInput{
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Date:    r.Date,
		Time:    r.Time,
		Persons: r.Persons,
		Message: r.Message,
	}
}

func (r *ReservationBuilder) BuildRequestDTO() reqdto.ReservationRequest {
	return reqdto.ReservationRequest{
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Date:    r.Date,
		Time:    r.Time,
		Persons: r.Persons,
		Message: r.Message,
	}
}

func (r *ReservationBuilder) BuildViewQuery() *queries.ReservationView {
	view := &queries.ReservationView{
		ID:        uuid.New(),
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		Date:      r.Date,
		Time:      r.Time,
		Persons:   r.Persons,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Message != "" {
		msg := r.Message
		view.Message = &msg
	}
	return view
}

// Fluent builder methods
func (r *ReservationBuilder) WithName(name string) *ReservationBuilder {
	r.Name = name
	return r
}

func (r *ReservationBuilder) WithPhone(phone string) *ReservationBuilder {
	r.Phone = phone
	return r
}

func (r *ReservationBuilder) WithEmail(email string) *ReservationBuilder {
	r.Email = email
	return r
}

func (r *ReservationBuilder) WithDate(date string) *ReservationBuilder {
	r.Date = date
	return r
}

func (r *ReservationBuilder) WithTime(timeOfDay string) *ReservationBuilder {
	r.Time = timeOfDay
	return r
}

func (r *ReservationBuilder) WithPersons(persons int32) *ReservationBuilder {
	r.Persons = persons
	return r
}

func (r *ReservationBuilder) WithMessage(message string) *ReservationBuilder {
	r.Message = message
	return r
}

func (r *ReservationBuilder) WithoutMessage() *ReservationBuilder {
	r.Message = ""
	return r
}

func (r *ReservationBuilder) AsSecondGuest() *ReservationBuilder {
	r.Name = "Rahul Nair"
	r.Phone = "+91 91234 56789"
	r.Email = "rahul@example.com"
	return r
}
