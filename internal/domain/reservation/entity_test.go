//go:build unit

package reservation_test

import (
	"errors"
	"testing"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name       string
	mutate     func(*builder.ReservationBuilder)
	wantField  string
	wantErrMsg string
}

func TestReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		// The store assigns ids; a freshly built entity carries none.
		assert.Equal(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Asha Rao", actual.Name())
		assert.Equal(t, "+91 98765 43210", actual.Phone())
		assert.Equal(t, "asha@example.com", actual.Email())
		assert.Equal(t, "2025-11-02", actual.Date())
		assert.Equal(t, "19:30", actual.Time())
		assert.Equal(t, int32(4), actual.Persons())
		assert.True(t, actual.HasMessage())
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "name with spaces",
				mutate: func(b *builder.ReservationBuilder) { b.WithName("Mary Ann Kurien") },
			},
			{
				name:       "empty name",
				mutate:     func(b *builder.ReservationBuilder) { b.WithName("") },
				wantField:  "name",
				wantErrMsg: "Name cannot be empty",
			},
			{
				name:       "name with digits",
				mutate:     func(b *builder.ReservationBuilder) { b.WithName("Asha Rao 2") },
				wantField:  "name",
				wantErrMsg: "Name should contain only alphabets",
			},
			{
				name:       "name with punctuation",
				mutate:     func(b *builder.ReservationBuilder) { b.WithName("O'Brien") },
				wantField:  "name",
				wantErrMsg: "Name should contain only alphabets",
			},
		})
	})

	t.Run("phone validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "well-formed Indian mobile number",
				mutate: func(b *builder.ReservationBuilder) { b.WithPhone("+91 00000 00000") },
			},
			{
				name:       "empty phone",
				mutate:     func(b *builder.ReservationBuilder) { b.WithPhone("") },
				wantField:  "phone",
				wantErrMsg: "Phone number is required",
			},
			{
				name:       "missing country code",
				mutate:     func(b *builder.ReservationBuilder) { b.WithPhone("98765 43210") },
				wantField:  "phone",
				wantErrMsg: "Phone number must be in the format '+91 XXXXX XXXXX'",
			},
			{
				name:       "no spaces between groups",
				mutate:     func(b *builder.ReservationBuilder) { b.WithPhone("+919876543210") },
				wantField:  "phone",
				wantErrMsg: "Phone number must be in the format '+91 XXXXX XXXXX'",
			},
			{
				name:       "too few digits",
				mutate:     func(b *builder.ReservationBuilder) { b.WithPhone("+91 9876 43210") },
				wantField:  "phone",
				wantErrMsg: "Phone number must be in the format '+91 XXXXX XXXXX'",
			},
		})
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "email with subdomain",
				mutate: func(b *builder.ReservationBuilder) { b.WithEmail("asha@mail.example.co.in") },
			},
			{
				name:       "empty email",
				mutate:     func(b *builder.ReservationBuilder) { b.WithEmail("") },
				wantField:  "email",
				wantErrMsg: "Email is required",
			},
			{
				name:   "dotless domain accepted",
				mutate: func(b *builder.ReservationBuilder) { b.WithEmail("asha@example") },
			},
			{
				name:       "missing at sign",
				mutate:     func(b *builder.ReservationBuilder) { b.WithEmail("asha.example.com") },
				wantField:  "email",
				wantErrMsg: "Invalid email format",
			},
			{
				name:       "embedded whitespace",
				mutate:     func(b *builder.ReservationBuilder) { b.WithEmail("asha rao@example.com") },
				wantField:  "email",
				wantErrMsg: "Invalid email format",
			},
		})
	})

	t.Run("visit date and time validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:       "empty date",
				mutate:     func(b *builder.ReservationBuilder) { b.WithDate("") },
				wantField:  "date",
				wantErrMsg: "Date is required",
			},
			{
				name:       "empty time",
				mutate:     func(b *builder.ReservationBuilder) { b.WithTime("") },
				wantField:  "time",
				wantErrMsg: "Time is required",
			},
			{
				// date and time are opaque strings; the form controls the format
				name:   "free-form date accepted",
				mutate: func(b *builder.ReservationBuilder) { b.WithDate("2nd November") },
			},
		})
	})

	t.Run("persons is not range checked", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero persons",
				mutate: func(b *builder.ReservationBuilder) { b.WithPersons(0) },
			},
			{
				name:   "negative persons",
				mutate: func(b *builder.ReservationBuilder) { b.WithPersons(-3) },
			},
		})
	})

	t.Run("message is optional", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().WithoutMessage().BuildDomain()
		require.NoError(t, err)
		assert.False(t, actual.HasMessage())
	})

	t.Run("all invalid fields reported together", func(t *testing.T) {
		_, err := builder.NewReservationBuilder().
			WithName("").
			WithPhone("12345").
			WithEmail("not-an-email").
			WithDate("").
			WithTime("").
			BuildDomain()
		require.Error(t, err)

		var vErr *reservation.ValidationError
		require.True(t, errors.As(err, &vErr))
		require.Len(t, vErr.Fields, 5)

		got := make(map[string]string, len(vErr.Fields))
		for _, f := range vErr.Fields {
			got[f.Field] = f.Message
		}
		assert.Equal(t, "Name cannot be empty", got["name"])
		assert.Equal(t, "Phone number must be in the format '+91 XXXXX XXXXX'", got["phone"])
		assert.Equal(t, "Invalid email format", got["email"])
		assert.Equal(t, "Date is required", got["date"])
		assert.Equal(t, "Time is required", got["time"])
	})
}

func TestReconstructReservation(t *testing.T) {
	// Reconstruct trusts stored rows and skips validation entirely
	id := uuid.New()
	actual := reservation.ReconstructReservation(id, "legacy", "000", "bad-email", "", "", 0, "")
	assert.Equal(t, id, actual.ID())
	assert.Equal(t, "legacy", actual.Name())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReservationBuilder()
			tc.mutate(b)
			actual, err := b.BuildDomain()

			if tc.wantField == "" {
				require.NoError(t, err)
				require.NotNil(t, actual)
				return
			}

			require.Error(t, err)
			require.Nil(t, actual)

			var vErr *reservation.ValidationError
			require.True(t, errors.As(err, &vErr), "expected a *ValidationError, got %T", err)

			found := false
			for _, f := range vErr.Fields {
				if f.Field == tc.wantField {
					found = true
					assert.Equal(t, tc.wantErrMsg, f.Message)
				}
			}
			assert.True(t, found, "no error reported for field %q", tc.wantField)
		})
	}
}
