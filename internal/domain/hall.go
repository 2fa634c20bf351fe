package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type CinemaHall struct {
	ID          int
	UUID        uuid.UUID
	Name        string
	Rows        int
	SeatsPerRow int
	Seats       []Seat
	CreatedAt   time.Time
}

// Seat is immutable once its hall is created and only exists as part of a
// hall. The (hall, RowNumber, SeatNumber) triple is unique.
type Seat struct {
	ID         int
	RowNumber  int
	SeatNumber int
}

// NewCinemaHall builds a hall together with its full seat set, one seat per
// (row, seat) pair in row-major order. A hall is never observable without
// its seats, so generation happens here rather than as a follow-up step.
func NewCinemaHall(name string, rows, seatsPerRow int) *CinemaHall {
	hall := &CinemaHall{
		UUID:        uuid.New(),
		Name:        name,
		Rows:        rows,
		SeatsPerRow: seatsPerRow,
		Seats:       make([]Seat, 0, rows*seatsPerRow),
	}

	for row := 1; row <= rows; row++ {
		for seatNumber := 1; seatNumber <= seatsPerRow; seatNumber++ {
			hall.Seats = append(hall.Seats, Seat{
				RowNumber:  row,
				SeatNumber: seatNumber,
			})
		}
	}

	return hall
}

func (h *CinemaHall) Capacity() int {
	return h.Rows * h.SeatsPerRow
}

type HallRepository interface {
	GetAll(ctx context.Context) ([]*CinemaHall, error)
	GetById(ctx context.Context, id int) (*CinemaHall, error)
	Create(ctx context.Context, hall *CinemaHall) error
	Delete(ctx context.Context, id int) error
}
