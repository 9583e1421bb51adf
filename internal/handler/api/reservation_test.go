//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/handler/api"
	resdto "restaurant-booking/internal/handler/dto/response"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase/commands"
	"restaurant-booking/internal/usecase/queries"
	"restaurant-booking/tests/common/builder"
	"restaurant-booking/tests/common/httptest"
	"restaurant-booking/tests/common/testutil"
	commandsmock "restaurant-booking/tests/mock/commands"
	queriesmock "restaurant-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	// Mirrors the production route table
	reservations := s.router.Group("/api/reservations")
	reservations.POST("", s.handler.Create)
	reservations.GET("", s.handler.List)
	reservations.GET("/id/:id", s.handler.Get)
	reservations.PUT("/id/:id", s.handler.Update)
	reservations.DELETE("/id/:id", s.handler.Delete)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// The usecases never hand the handler bare sentinels on storage paths; they
// mark a wrapped repository error. These mirror that shape so the
// status mapping is proven against what production wiring produces.

func notFoundErr(sentinel error) error {
	return errs.Mark(infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound), sentinel)
}

func duplicateKeyErr(sentinel error) error {
	return errs.Mark(
		infra.WrapRepoErr("phone or email already reserved",
			errors.New("SQLSTATE 23505"), infra.KindDuplicateKey),
		sentinel)
}

func dbFailureErr(sentinel error) error {
	return errs.Mark(
		infra.WrapRepoErr("query failed", errors.New("connection reset")),
		sentinel)
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/api/reservations"

	reqBody := builder.NewReservationBuilder().BuildRequestDTO()
	returnView := builder.NewReservationBuilder().BuildViewQuery()

	s.Run("success: returns 201 Created with the stored reservation", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody.ToInput()).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.CreateReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("Reservation successful", body.Message)
		s.Require().NotNil(body.Reservation)
		s.Equal(returnView.ID, body.Reservation.ID)
		s.Equal(returnView.Name, body.Reservation.Name)
	})

	s.Run("success: a client-supplied id is ignored", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("id", uuid.New().String()))

		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody.ToInput()).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)

		var body resdto.CreateReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.Reservation.ID)
	})

	s.Run("error: 400 Bad Request on malformed body", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("persons", "four"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 Bad Request with field details on validation failure", func() {
		vErr := &reservation.ValidationError{Fields: []reservation.FieldError{
			{Field: "email", Message: "Invalid email format"},
			{Field: "phone", Message: "Phone number is required"},
		}}
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, vErr)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")

		var body struct {
			Detail []reservation.FieldError `json:"detail"`
		}
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.Len(body.Detail, 2)
		s.Equal("email", body.Detail[0].Field)
	})

	s.Run("error: 400 Bad Request for a duplicate found by the pre-check", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrDuplicateContact)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Email or phone number already exists")
	})

	s.Run("error: 400 Bad Request for a duplicate caught by the store constraint", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, duplicateKeyErr(commands.ErrDuplicateContact))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Email or phone number already exists")
	})

	s.Run("error: 500 Internal Server Error on storage failure", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, dbFailureErr(commands.ErrDatabaseOperationFailed))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Error in booking. Please try again.")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ReservationHandlerTestSuite) TestList() {
	url := "/api/reservations"

	s.Run("success: returns 200 OK with every reservation", func() {
		views := []*queries.ReservationView{
			builder.NewReservationBuilder().BuildViewQuery(),
			builder.NewReservationBuilder().AsSecondGuest().BuildViewQuery(),
		}
		s.mockQueries.EXPECT().ListAll(gomock.Any()).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal(views[0].ID, body[0].ID)
		s.Equal("Rahul Nair", body[1].Name)
	})

	s.Run("success: returns 204 No Content for an empty store", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any()).Return([]*queries.ReservationView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.Bytes())
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("connection refused"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	returnView := builder.NewReservationBuilder().BuildViewQuery()
	url := "/api/reservations/id/" + returnView.ID.String()

	s.Run("success: returns 200 OK with the reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).Return(returnView, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal(returnView.Phone, body.Phone)
	})

	s.Run("error: 400 Bad Request for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/id/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID format")
	})

	s.Run("error: 404 Not Found for an unknown id", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(nil, notFoundErr(queries.ErrReservationNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestUpdate() {
	reqBody := builder.NewReservationBuilder().BuildRequestDTO()
	returnView := builder.NewReservationBuilder().BuildViewQuery()
	url := "/api/reservations/id/" + returnView.ID.String()

	s.Run("success: returns 200 OK with the replaced reservation", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), returnView.ID, reqBody.ToInput()).
			Return(returnView, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID, body.ID)
	})

	s.Run("success: a mismatched body id loses to the path id", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("id", uuid.New().String()))

		s.mockCommands.EXPECT().Update(gomock.Any(), returnView.ID, reqBody.ToInput()).
			Return(returnView, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID, body.ID)
	})

	s.Run("error: 400 Bad Request for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/reservations/id/42", reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID format")
	})

	s.Run("error: 400 Bad Request on validation failure", func() {
		vErr := &reservation.ValidationError{Fields: []reservation.FieldError{
			{Field: "name", Message: "Name should contain only alphabets"},
		}}
		s.mockCommands.EXPECT().Update(gomock.Any(), returnView.ID, gomock.Any()).Return(nil, vErr)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})

	s.Run("error: 404 Not Found for an unknown id", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), returnView.ID, gomock.Any()).
			Return(nil, notFoundErr(commands.ErrReservationNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 400 Bad Request when the contact collides with another reservation", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), returnView.ID, gomock.Any()).
			Return(nil, duplicateKeyErr(commands.ErrDuplicateContact))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Email or phone number already exists")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *ReservationHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/api/reservations/id/" + id.String()

	s.Run("success: returns 200 OK with a confirmation message", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Reservation deleted successfully", body["message"])
	})

	s.Run("error: 400 Bad Request for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/reservations/id/xyz", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID format")
	})

	s.Run("error: 404 Not Found for an unknown id", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).
			Return(notFoundErr(commands.ErrReservationNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 500 Internal Server Error on storage failure", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).
			Return(dbFailureErr(commands.ErrDatabaseOperationFailed))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
