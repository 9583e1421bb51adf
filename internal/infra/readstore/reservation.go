package readstore

import (
	"context"

	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/pkg/pgconv"
	"restaurant-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const findReservationByIDSQL = `
SELECT id, name, phone, email, visit_date, visit_time, persons, message, created_at, updated_at
FROM reservations
WHERE id = $1`

const findAllReservationsSQL = `
SELECT id, name, phone, email, visit_date, visit_time, persons, message, created_at, updated_at
FROM reservations
ORDER BY created_at`

type ReservationReadStore struct {
	db *pgxpool.Pool
}

func NewReservationReadStore(db *pgxpool.Pool) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, findReservationByIDSQL, id)

	view, err := scanReservationView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return view, nil
}

func (r *ReservationReadStore) FindAll(ctx context.Context) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, findAllReservationsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*queries.ReservationView
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}

	return result, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
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
