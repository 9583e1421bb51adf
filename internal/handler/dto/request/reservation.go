package request

import (
	"restaurant-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

// ReservationRequest carries the booking form fields. Field-level rules are
// enforced by the domain layer, not by binding tags, so a bad value yields
// the full list of field errors in one response.
type ReservationRequest struct {
	// Accepted but ignored: the store assigns ids on create and the path id
	// wins on update.
	ID      *uuid.UUID `json:"id,omitempty"`
	Name    string     `json:"name"`
	Phone   string     `json:"phone"`
	Email   string     `json:"email"`
	Date    string     `json:"date"`
	Time    string     `json:"time"`
	Persons int32      `json:"persons"`
	Message string     `json:"message,omitempty"`
}

func (r ReservationRequest) ToInput() commands.ReservationInput {
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
