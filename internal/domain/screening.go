package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Screening binds a movie to a hall for a half-open [StartTime, EndTime)
// interval. The movie and hall fields below the price are a projection
// joined in at query time, never stored on the screening row.
type Screening struct {
	ID        int
	UUID      uuid.UUID
	MovieID   int
	HallID    int
	StartTime time.Time
	EndTime   time.Time
	Price     decimal.Decimal

	MovieTitle      string
	MovieGenre      string
	DurationMinutes int
	HallName        string
	HallCapacity    int
}

// Overlaps reports whether the screening's interval intersects the half-open
// interval [startTime, endTime). A screening ending exactly when another
// starts does not overlap, which allows back-to-back scheduling.
func (s *Screening) Overlaps(startTime, endTime time.Time) bool {
	return s.StartTime.Before(endTime) && s.EndTime.After(startTime)
}

type ScreeningRepository interface {
	GetAll(ctx context.Context) ([]*Screening, error)
	GetById(ctx context.Context, id int) (*Screening, error)
	GetAllByMovieId(ctx context.Context, movieId int) ([]*Screening, error)
	GetAllByHallId(ctx context.Context, hallId int) ([]*Screening, error)
	GetAllByDate(ctx context.Context, date time.Time) ([]*Screening, error)
	Create(ctx context.Context, screening *Screening) error
	Delete(ctx context.Context, id int) error
}
