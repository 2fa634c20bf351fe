package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/premek1996/cinema-booking-backend/internal/domain"
)

type PostgresHallRepository struct {
	db *pgxpool.Pool
}

func NewPostgresHallRepository(db *pgxpool.Pool) *PostgresHallRepository {
	return &PostgresHallRepository{
		db: db,
	}
}

// Callers append their WHERE clause, then the trailing GROUP BY.
const hallWithSeatsQuery = `
	SELECT
		h.id,
		h.uuid,
		h.name,
		h.row_count,
		h.seats_per_row,
		h.created_at,
		COALESCE(jsonb_agg(
			jsonb_build_object(
				'id', s.id,
				'rowNumber', s.row_number,
				'seatNumber', s.seat_number
			) ORDER BY s.row_number, s.seat_number
		) FILTER (WHERE s.id IS NOT NULL), '[]') AS seats
	FROM cinema_halls h
	LEFT JOIN seats s ON s.hall_id = h.id`

func (p *PostgresHallRepository) GetAll(ctx context.Context) ([]*domain.CinemaHall, error) {
	rows, err := p.db.Query(ctx, hallWithSeatsQuery+` GROUP BY h.id ORDER BY h.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	halls := []*domain.CinemaHall{}

	for rows.Next() {
		hall, err := scanHall(rows)
		if err != nil {
			return nil, err
		}

		halls = append(halls, hall)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return halls, nil
}

func (p *PostgresHallRepository) GetById(ctx context.Context, id int) (*domain.CinemaHall, error) {
	query := hallWithSeatsQuery + ` WHERE h.id = $1 GROUP BY h.id`

	rows, err := p.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}

		return nil, domain.ErrHallNotFound
	}

	hall, err := scanHall(rows)
	if err != nil {
		return nil, err
	}

	return hall, nil
}

// Create persists the hall and its complete seat set in one transaction, so
// the hall is never observable without its seats.
func (p *PostgresHallRepository) Create(ctx context.Context, hall *domain.CinemaHall) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `INSERT INTO cinema_halls (uuid, name, row_count, seats_per_row)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at`

		err := tx.QueryRow(ctx,
			query,
			hall.UUID,
			hall.Name,
			hall.Rows,
			hall.SeatsPerRow).Scan(&hall.ID, &hall.CreatedAt)

		if err != nil {
			return err
		}

		seatRows := make([][]any, 0, len(hall.Seats))
		for _, seat := range hall.Seats {
			seatRows = append(seatRows, []any{
				hall.ID,
				seat.RowNumber,
				seat.SeatNumber,
			})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"seats"},
			[]string{"hall_id", "row_number", "seat_number"},
			pgx.CopyFromRows(seatRows),
		)
		if err != nil {
			return err
		}

		return reloadSeats(ctx, tx, hall)
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrHallAlreadyExists
		}

		return err
	}

	return nil
}

// Deleting a hall cascades to its seats through the seats.hall_id foreign
// key. Screenings referencing the hall block the delete instead.
func (p *PostgresHallRepository) Delete(ctx context.Context, id int) error {
	result, err := p.db.Exec(ctx, `DELETE FROM cinema_halls WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrHallInUse
		}

		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrHallNotFound
	}

	return nil
}

func reloadSeats(ctx context.Context, tx pgx.Tx, hall *domain.CinemaHall) error {
	query := `SELECT id, row_number, seat_number
		FROM seats
		WHERE hall_id = $1
		ORDER BY row_number, seat_number`

	rows, err := tx.Query(ctx, query, hall.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	seats := make([]domain.Seat, 0, len(hall.Seats))

	for rows.Next() {
		var seat domain.Seat

		err = rows.Scan(&seat.ID, &seat.RowNumber, &seat.SeatNumber)
		if err != nil {
			return err
		}

		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return err
	}

	hall.Seats = seats

	return nil
}

func scanHall(rows pgx.Rows) (*domain.CinemaHall, error) {
	var hall domain.CinemaHall
	var seatsJson json.RawMessage

	err := rows.Scan(
		&hall.ID,
		&hall.UUID,
		&hall.Name,
		&hall.Rows,
		&hall.SeatsPerRow,
		&hall.CreatedAt,
		&seatsJson,
	)

	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(seatsJson, &hall.Seats); err != nil {
		return nil, err
	}

	return &hall, nil
}
