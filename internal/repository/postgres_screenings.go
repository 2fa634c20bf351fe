package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/premek1996/cinema-booking-backend/internal/domain"
)

type PostgresScreeningRepository struct {
	db *pgxpool.Pool
}

func NewPostgresScreeningRepository(db *pgxpool.Pool) *PostgresScreeningRepository {
	return &PostgresScreeningRepository{
		db: db,
	}
}

// All read paths return the enriched view: movie and hall fields are joined
// in live, never stored on the screening row.
const screeningQuery = `
	SELECT
		s.id,
		s.uuid,
		s.movie_id,
		s.hall_id,
		s.start_time,
		s.end_time,
		s.price,
		m.title,
		m.genre,
		m.duration_minutes,
		h.name,
		h.row_count * h.seats_per_row AS capacity
	FROM screenings s
	INNER JOIN movies m ON m.id = s.movie_id
	INNER JOIN cinema_halls h ON h.id = s.hall_id`

func (p *PostgresScreeningRepository) GetAll(ctx context.Context) ([]*domain.Screening, error) {
	return p.queryScreenings(ctx, screeningQuery+` ORDER BY s.start_time, s.id`)
}

func (p *PostgresScreeningRepository) GetById(ctx context.Context, id int) (*domain.Screening, error) {
	rows, err := p.db.Query(ctx, screeningQuery+` WHERE s.id = $1`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}

		return nil, domain.ErrScreeningNotFound
	}

	return scanScreening(rows)
}

func (p *PostgresScreeningRepository) GetAllByMovieId(ctx context.Context, movieId int) ([]*domain.Screening, error) {
	query := screeningQuery + ` WHERE s.movie_id = $1 ORDER BY s.start_time, s.id`

	return p.queryScreenings(ctx, query, movieId)
}

func (p *PostgresScreeningRepository) GetAllByHallId(ctx context.Context, hallId int) ([]*domain.Screening, error) {
	query := screeningQuery + ` WHERE s.hall_id = $1 ORDER BY s.start_time, s.id`

	return p.queryScreenings(ctx, query, hallId)
}

// GetAllByDate returns screenings starting within [date 00:00, date+1 00:00).
func (p *PostgresScreeningRepository) GetAllByDate(ctx context.Context, date time.Time) ([]*domain.Screening, error) {
	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)

	query := screeningQuery + ` WHERE s.start_time >= $1 AND s.start_time < $2 ORDER BY s.start_time, s.id`

	return p.queryScreenings(ctx, query, startOfDay, endOfDay)
}

// Create relies on the UNIQUE (hall_id, start_time) constraint as the
// backstop for the application-level overlap check, so two concurrent
// requests for the same slot cannot both commit.
func (p *PostgresScreeningRepository) Create(ctx context.Context, screening *domain.Screening) error {
	query := `INSERT INTO screenings (uuid, movie_id, hall_id, start_time, end_time, price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := p.db.QueryRow(ctx,
		query,
		screening.UUID,
		screening.MovieID,
		screening.HallID,
		screening.StartTime,
		screening.EndTime,
		screening.Price).Scan(&screening.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return &domain.ScreeningConflictError{
					HallName:  screening.HallName,
					StartTime: screening.StartTime,
					EndTime:   screening.EndTime,
				}
			case pgerrcode.ForeignKeyViolation:
				// The referenced row vanished between resolution and insert.
				if strings.Contains(pgErr.ConstraintName, "movie") {
					return domain.ErrMovieNotFound
				}
				return domain.ErrHallNotFound
			}
		}

		return err
	}

	return nil
}

func (p *PostgresScreeningRepository) Delete(ctx context.Context, id int) error {
	result, err := p.db.Exec(ctx, `DELETE FROM screenings WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrScreeningNotFound
	}

	return nil
}

func (p *PostgresScreeningRepository) queryScreenings(ctx context.Context, query string, args ...any) ([]*domain.Screening, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	screenings := []*domain.Screening{}

	for rows.Next() {
		screening, err := scanScreening(rows)
		if err != nil {
			return nil, err
		}

		screenings = append(screenings, screening)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return screenings, nil
}

func scanScreening(rows pgx.Rows) (*domain.Screening, error) {
	var screening domain.Screening

	err := rows.Scan(
		&screening.ID,
		&screening.UUID,
		&screening.MovieID,
		&screening.HallID,
		&screening.StartTime,
		&screening.EndTime,
		&screening.Price,
		&screening.MovieTitle,
		&screening.MovieGenre,
		&screening.DurationMinutes,
		&screening.HallName,
		&screening.HallCapacity,
	)

	if err != nil {
		return nil, err
	}

	// timestamptz comes back in the local zone; the API always speaks UTC.
	screening.StartTime = screening.StartTime.UTC()
	screening.EndTime = screening.EndTime.UTC()

	return &screening, nil
}
