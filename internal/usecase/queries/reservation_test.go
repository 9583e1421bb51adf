//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/usecase/queries"
	"restaurant-booking/tests/common/builder"
	queriesmock "restaurant-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationQueriesTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockStore *queriesmock.MockReservationReadStore
	queries   queries.ReservationQueries
}

func (s *ReservationQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = queriesmock.NewMockReservationReadStore(s.mockCtrl)
	s.queries = queries.NewReservationQueries(s.mockStore)
}

func (s *ReservationQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationQueriesSuite(t *testing.T) {
	suite.Run(t, new(ReservationQueriesTestSuite))
}

func (s *ReservationQueriesTestSuite) TestGetByID() {
	ctx := context.Background()
	id := uuid.New()

	s.Run("success", func() {
		view := builder.NewReservationBuilder().BuildViewQuery()
		s.mockStore.EXPECT().FindByID(gomock.Any(), id).Return(view, nil)

		got, err := s.queries.GetByID(ctx, id)
		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("error: a missing row surfaces as the not-found sentinel", func() {
		s.mockStore.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		_, err := s.queries.GetByID(ctx, id)

		// Plain errors.Is, the same check the handler's 404 branch runs
		s.Require().True(errors.Is(err, queries.ErrReservationNotFound))
	})

	s.Run("error: store failure passes through unmarked", func() {
		s.mockStore.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("query failed", errors.New("connection reset")))

		_, err := s.queries.GetByID(ctx, id)
		s.Require().Error(err)
		s.False(errors.Is(err, queries.ErrReservationNotFound))
	})
}

func (s *ReservationQueriesTestSuite) TestListAll() {
	ctx := context.Background()

	s.Run("success: views pass through", func() {
		views := []*queries.ReservationView{builder.NewReservationBuilder().BuildViewQuery()}
		s.mockStore.EXPECT().FindAll(gomock.Any()).Return(views, nil)

		got, err := s.queries.ListAll(ctx)
		s.Require().NoError(err)
		s.Equal(views, got)
	})

	s.Run("success: nil from the store becomes an empty slice", func() {
		s.mockStore.EXPECT().FindAll(gomock.Any()).Return(nil, nil)

		got, err := s.queries.ListAll(ctx)
		s.Require().NoError(err)
		s.NotNil(got)
		s.Empty(got)
	})

	s.Run("error: store failure passes through", func() {
		s.mockStore.EXPECT().FindAll(gomock.Any()).
			Return(nil, infra.WrapRepoErr("query failed", errors.New("connection reset")))

		_, err := s.queries.ListAll(ctx)
		s.Require().Error(err)
	})
}
