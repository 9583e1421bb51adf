package api

import (
	"errors"
	"net/http"

	"restaurant-booking/internal/domain/reservation"
	reqdto "restaurant-booking/internal/handler/dto/request"
	resdto "restaurant-booking/internal/handler/dto/response"
	"restaurant-booking/internal/handler/httperr"
	"restaurant-booking/internal/usecase/commands"
	"restaurant-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(reservationCommands commands.ReservationCommands, reservationQueries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Create reservation
// @Description Book a table; confirmation email and SMS are sent asynchronously
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.ReservationRequest true "Reservation request"
// @Success 201 {object} resdto.CreateReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.ReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.reservationCommands.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		var validationErr *reservation.ValidationError
		switch {
		case errors.As(err, &validationErr):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", validationErr.Fields)
		case errors.Is(err, commands.ErrDuplicateContact):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Email or phone number already exists", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Error in booking. Please try again.", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateReservationResponse{
		Message:     "Reservation successful",
		Reservation: resdto.FromReservationView(view),
	})
}

// @Summary List reservations
// @Description List every reservation
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Success 204 "empty store"
// @Failure 500 {object} httperr.Response
// @Router /api/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	views, err := h.reservationQueries.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	if len(views) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	result := make([]*resdto.ReservationResponse, len(views))
	for i, view := range views {
		result[i] = resdto.FromReservationView(view)
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/id/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Update reservation
// @Description Replace all fields of an existing reservation; the path id always wins
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ReservationRequest true "Reservation request"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/id/{id} [put]
func (h *ReservationHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req reqdto.ReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.reservationCommands.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		var validationErr *reservation.ValidationError
		switch {
		case errors.As(err, &validationErr):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", validationErr.Fields)
		case errors.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errors.Is(err, commands.ErrDuplicateContact):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Email or phone number already exists", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Delete reservation
// @Description Remove a reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/id/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.reservationCommands.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reservation deleted successfully"})
}

func (h *ReservationHandler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}
