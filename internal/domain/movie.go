package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type AgeRating string

const (
	AgeRatingG  AgeRating = "G"
	AgeRatingPG AgeRating = "PG"
	AgeRating12 AgeRating = "AGE_12"
	AgeRating16 AgeRating = "AGE_16"
	AgeRating18 AgeRating = "AGE_18"
)

func (r AgeRating) Valid() bool {
	switch r {
	case AgeRatingG, AgeRatingPG, AgeRating12, AgeRating16, AgeRating18:
		return true
	}
	return false
}

type Movie struct {
	ID              int
	UUID            uuid.UUID
	Title           string
	Description     string
	Genre           string
	DurationMinutes int
	ReleaseDate     time.Time
	AgeRating       AgeRating
	CreatedAt       time.Time
}

// ScreeningEndTime derives when a screening of this movie ends if it starts
// at the given time. Screenings never carry their own duration.
func (m *Movie) ScreeningEndTime(startTime time.Time) time.Time {
	return startTime.Add(time.Duration(m.DurationMinutes) * time.Minute)
}

type MovieRepository interface {
	GetAll(ctx context.Context) ([]*Movie, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	Create(ctx context.Context, movie *Movie) error
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id int) error
}
