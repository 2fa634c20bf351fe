package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/premek1996/cinema-booking-backend/internal/domain"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	query := `SELECT id, uuid, title, description, genre, duration_minutes, release_date, age_rating, created_at
		FROM movies
		ORDER BY id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []*domain.Movie{}

	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}

		movies = append(movies, movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	query := `SELECT id, uuid, title, description, genre, duration_minutes, release_date, age_rating, created_at
		FROM movies
		WHERE id = $1`

	var movie domain.Movie

	err := p.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.UUID,
		&movie.Title,
		&movie.Description,
		&movie.Genre,
		&movie.DurationMinutes,
		&movie.ReleaseDate,
		&movie.AgeRating,
		&movie.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMovieNotFound
		}

		return nil, err
	}

	return &movie, nil
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `INSERT INTO movies (uuid, title, description, genre, duration_minutes, release_date, age_rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := p.db.QueryRow(ctx,
		query,
		movie.UUID,
		movie.Title,
		movie.Description,
		movie.Genre,
		movie.DurationMinutes,
		movie.ReleaseDate,
		movie.AgeRating).Scan(&movie.ID, &movie.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrMovieAlreadyExists
		}

		return err
	}

	return nil
}

func (p *PostgresMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	query := `UPDATE movies
		SET title = $1, description = $2, genre = $3, duration_minutes = $4, release_date = $5, age_rating = $6
		WHERE id = $7`

	result, err := p.db.Exec(ctx,
		query,
		movie.Title,
		movie.Description,
		movie.Genre,
		movie.DurationMinutes,
		movie.ReleaseDate,
		movie.AgeRating,
		movie.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrMovieAlreadyExists
		}

		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrMovieNotFound
	}

	return nil
}

func (p *PostgresMovieRepository) Delete(ctx context.Context, id int) error {
	result, err := p.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrMovieInUse
		}

		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrMovieNotFound
	}

	return nil
}

func scanMovie(rows pgx.Rows) (*domain.Movie, error) {
	var movie domain.Movie

	err := rows.Scan(
		&movie.ID,
		&movie.UUID,
		&movie.Title,
		&movie.Description,
		&movie.Genre,
		&movie.DurationMinutes,
		&movie.ReleaseDate,
		&movie.AgeRating,
		&movie.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &movie, nil
}
