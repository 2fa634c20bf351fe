package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrMovieNotFound      = errors.New("movie not found")
	ErrMovieAlreadyExists = errors.New("movie title already exists")
	ErrMovieInUse         = errors.New("movie is referenced by existing screenings")
	ErrHallNotFound       = errors.New("cinema hall not found")
	ErrHallAlreadyExists  = errors.New("cinema hall name already exists")
	ErrHallInUse          = errors.New("cinema hall is referenced by existing screenings")
	ErrScreeningNotFound  = errors.New("screening not found")
)

// ScreeningConflictError reports a screening request whose time interval
// overlaps an existing screening in the same hall.
type ScreeningConflictError struct {
	HallName  string
	StartTime time.Time
	EndTime   time.Time
}

func (e *ScreeningConflictError) Error() string {
	return fmt.Sprintf(
		"hall %q is already booked between %s and %s",
		e.HallName,
		e.StartTime.Format(time.RFC3339),
		e.EndTime.Format(time.RFC3339),
	)
}
