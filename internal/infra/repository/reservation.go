package repository

import (
	"context"
	"errors"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/pkg/pgconv"
	"restaurant-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// unique_violation; raised by the phone/email indexes when a concurrent
// insert slips past the usecase pre-check.
const pgErrCodeUniqueViolation = "23505"

const reservationColumns = `id, name, phone, email, visit_date, visit_time, persons, message, created_at, updated_at`

const createReservationSQL = `
INSERT INTO reservations (name, phone, email, visit_date, visit_time, persons, message)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + reservationColumns

const replaceReservationSQL = `
UPDATE reservations
SET name = $2, phone = $3, email = $4, visit_date = $5, visit_time = $6, persons = $7, message = $8, updated_at = now()
WHERE id = $1
RETURNING ` + reservationColumns

type ReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, createReservationSQL,
		res.Name(), res.Phone(), res.Email(), res.Date(), res.Time(), res.Persons(), messageParam(res))

	view, err := scanReservationView(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, infra.WrapRepoErr("phone or email already reserved", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return view, nil
}

// Replace overwrites every column except id. Uniqueness of the new contact
// values is left to the indexes, matching create-time race handling.
func (r *ReservationRepository) Replace(ctx context.Context, id uuid.UUID, res *reservation.Reservation) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, replaceReservationSQL,
		id, res.Name(), res.Phone(), res.Email(), res.Date(), res.Time(), res.Persons(), messageParam(res))

	view, err := scanReservationView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		if isUniqueViolation(err) {
			return nil, infra.WrapRepoErr("phone or email already reserved", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to replace reservation", err)
	}

	return view, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

// ContactExists reports whether any reservation already holds the phone or
// the email. It is a best-effort pre-check; the unique indexes remain the
// source of truth under concurrency.
func (r *ReservationRepository) ContactExists(ctx context.Context, phone, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM reservations WHERE phone = $1 OR email = $2)`,
		phone, email).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check existing contact", err)
	}
	return exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservationView(row rowScanner) (*queries.ReservationView, error) {
	var (
		view      queries.ReservationView
		message   pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&view.ID, &view.Name, &view.Phone, &view.Email,
		&view.Date, &view.Time, &view.Persons,
		&message, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.Message = pgconv.StringPtrFromPgtype(message)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

func messageParam(res *reservation.Reservation) pgtype.Text {
	if !res.HasMessage() {
		return pgtype.Text{Valid: false}
	}
	msg := res.Message()
	return pgconv.StringPtrToPgtype(&msg)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation
}
