package response

import (
	"time"

	"restaurant-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Persons   int32     `json:"persons"`
	Message   *string   `json:"message,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateReservationResponse struct {
	Message     string               `json:"message"`
	Reservation *ReservationResponse `json:"reservation"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:        rm.ID,
		Name:      rm.Name,
		Phone:     rm.Phone,
		Email:     rm.Email,
		Date:      rm.Date,
		Time:      rm.Time,
		Persons:   rm.Persons,
		Message:   rm.Message,
		CreatedAt: rm.CreatedAt,
		UpdatedAt: rm.UpdatedAt,
	}
}
